// Package app wires application dependencies for the daemon.
//
// It builds the generator, slot cache, store, event hub and HTTP server
// from Config, exposing them via the Wire struct.
package app
