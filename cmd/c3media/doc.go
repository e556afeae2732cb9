// Package main hosts the c3media CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into calls
// against the media.ccc.de public API: conference and event listings,
// recording selection, subtitle probing, and media downloads. It centralizes
// configuration resolution and logger setup so subcommands can focus on
// user experience instead of wiring.
//
// Keep this package lean: add new functionality to internal/ccc first, then
// surface it through dedicated commands or flags here.
package main
