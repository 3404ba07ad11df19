// Package commands defines the keymint CLI.
//
// Commands
//
//   - x25519      Generate a REALITY X25519 key pair
//   - shortid     Generate a REALITY short ID
//   - clientid    Generate a VLESS user UUID
//   - mldsa65     Generate ML-DSA-65 seed and verify key
//   - vlessenc    Generate VLESS encryption/decryption strings
//   - sspassword  Generate a Shadowsocks password for a cipher method
//   - export      Generate a full credential set and seal it to a file
//
// # Implementation
//
// The root command picks the generation backend before any subcommand
// runs: the in-process generator by default, or a running keymintd via
// --server, so the same subcommands work locally and against a daemon.
package commands
