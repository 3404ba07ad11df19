// Package store persists core configuration records and sealed
// credential exports on disk.
//
// Core configs live in a single JSON file written atomically (temp file
// then rename). Credential exports are encrypted with a passphrase via
// scrypt and ChaCha20-Poly1305 in a versioned blob format.
package store
