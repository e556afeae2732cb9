// Package language normalizes media.ccc.de language codes.
//
// The API labels recordings with ISO 639-2 three-letter codes ("eng", "deu")
// and combines them for live-translated releases ("eng-deu"). All code
// handling (normalization, combined-code splitting, display names) is
// consolidated here so the client and CLI agree on one interpretation.
package language
