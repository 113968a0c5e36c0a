// Package cli implements the terminal client: a page-based navigation
// machine mirroring the web UI's screens and a REPL that renders each
// page's command set. Commands call the HTTP API through the api package
// and keep session state in the session store.
package cli
