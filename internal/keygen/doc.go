// Package keygen generates credential material for the supported proxy
// protocols.
//
// Contents
//
//   - X25519 key pairs for REALITY (X25519)
//   - REALITY short identifiers (ShortID)
//   - ML-DSA-65 seed/verify pairs (MLDSA65)
//   - VLESS post-quantum encryption/decryption strings (VLESSEncryption)
//   - Shadowsocks pre-shared keys (ShadowsocksPassword)
//   - VLESS user UUIDs (ClientID)
//
// # Notes
//
// Every operation draws fresh randomness from the Generator's entropy
// source and returns encoded strings only; raw secret buffers are wiped
// after encoding. All base64 output uses the URL-safe alphabet with
// padding stripped, matching what the core binary parses.
package keygen
