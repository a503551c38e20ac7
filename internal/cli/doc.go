// Package cli is the interactive terminal view of ArtSpace.
//
// It opens the same storage the server uses and acts as one browser
// profile (profile_id), so a session started here survives restarts.
// The REPL is started via App.Run, which blocks until the user exits or
// input ends. See runREPL for the command list.
package cli
