// Package ccc wraps the media.ccc.de public REST API.
//
// The Client fetches conferences, events, and recordings, and the package
// supplies pure filters over those records: events by person, tag, or fuzzy
// title, recordings by language or MIME format, plus best-quality and audio
// recording selection. Subtitle files live on the static CDN rather than in
// the API payloads, so the client probes for them per language and format.
//
// The upstream schema is outside this project's control; the record types
// mirror the JSON shapes and carry no invariants beyond field presence.
package ccc
