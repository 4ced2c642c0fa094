// Package main provides the entry point for the tunepeek application.
//
// tunepeek is a command-line music discovery tool backed by the Spotify
// catalog API, with best-effort 30-second preview resolution through a
// companion backend service.
package main

import cmd "github.com/tunepeek/tunepeek/cmd/tunepeek"

// main delegates execution to the cmd package which handles all
// command-line interface functionality.
func main() {
	cmd.Execute()
}
