// Command keymintd serves the dashboard API: credential generation
// endpoints, core-config record CRUD and a WebSocket event feed.
package main
