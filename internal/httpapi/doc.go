// Package httpapi exposes the dashboard HTTP surface.
//
// Server serves the generation endpoints, core-config CRUD and a
// WebSocket event feed. Client is a typed client for the generation
// endpoints; it implements domain.KeyMaterialGenerator so the CLI can
// swap between local and remote generation.
//
// Errors travel as {"error": "...", "kind": "..."} JSON; kinds form the
// same closed set as the domain sentinels, so both sides match with
// errors.Is rather than probing payload shapes.
package httpapi
