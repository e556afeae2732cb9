package ccc

import (
	"slices"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// DefaultTitleThreshold is the minimum fuzzy similarity score (0-100) for a
// title to count as a match.
const DefaultTitleThreshold = 70

// DefaultVideoMimeType is the format BestRecording prefers when none is
// requested.
const DefaultVideoMimeType = "video/mp4"

// DefaultAudioLanguage is the language AudioRecording prefers when none is
// requested.
const DefaultAudioLanguage = "eng"

// EventsByPerson returns the events featuring the named speaker.
func EventsByPerson(events []Event, person string) []Event {
	matched := make([]Event, 0, len(events))
	for _, event := range events {
		if slices.Contains(event.Persons, person) {
			matched = append(matched, event)
		}
	}
	return matched
}

// EventsByTag returns the events carrying the given tag.
func EventsByTag(events []Event, tag string) []Event {
	matched := make([]Event, 0, len(events))
	for _, event := range events {
		if slices.Contains(event.Tags, tag) {
			matched = append(matched, event)
		}
	}
	return matched
}

// EventsByTitle returns the events whose title matches the query with a
// similarity score at or above threshold (0-100). A threshold outside that
// range falls back to DefaultTitleThreshold.
func EventsByTitle(events []Event, query string, threshold int) []Event {
	if threshold <= 0 || threshold > 100 {
		threshold = DefaultTitleThreshold
	}
	metric := metrics.NewLevenshtein()
	metric.CaseSensitive = false
	matched := make([]Event, 0, len(events))
	for _, event := range events {
		score := strutil.Similarity(query, event.Title, metric) * 100
		if int(score) >= threshold {
			matched = append(matched, event)
		}
	}
	return matched
}

// RecordingsByLanguage returns the recordings in the given language code
// (e.g. "eng", "deu", "eng-deu").
func RecordingsByLanguage(recordings []Recording, language string) []Recording {
	matched := make([]Recording, 0, len(recordings))
	for _, recording := range recordings {
		if recording.Language == language {
			matched = append(matched, recording)
		}
	}
	return matched
}

// RecordingsByFormat returns the recordings with the given MIME type.
func RecordingsByFormat(recordings []Recording, mimeType string) []Recording {
	matched := make([]Recording, 0, len(recordings))
	for _, recording := range recordings {
		if recording.MimeType == mimeType {
			matched = append(matched, recording)
		}
	}
	return matched
}

// BestRecording picks the highest quality recording in the given MIME type
// (DefaultVideoMimeType when empty). Quality is judged by file size, with
// height and filename breaking ties so the result is deterministic.
func BestRecording(recordings []Recording, mimeType string) (Recording, bool) {
	if mimeType == "" {
		mimeType = DefaultVideoMimeType
	}
	candidates := RecordingsByFormat(recordings, mimeType)
	if len(candidates) == 0 {
		return Recording{}, false
	}
	best := candidates[0]
	for _, candidate := range candidates[1:] {
		if betterRecording(candidate, best) {
			best = candidate
		}
	}
	return best, true
}

func betterRecording(a, b Recording) bool {
	if a.Size != b.Size {
		return a.Size > b.Size
	}
	if a.Height != b.Height {
		return a.Height > b.Height
	}
	return a.Filename < b.Filename
}

// AudioRecording picks the audio recording for the given language
// (DefaultAudioLanguage when empty), preferring audio/opus when available.
func AudioRecording(recordings []Recording, language string) (Recording, bool) {
	if language == "" {
		language = DefaultAudioLanguage
	}
	audio := make([]Recording, 0, len(recordings))
	for _, recording := range RecordingsByLanguage(recordings, language) {
		if strings.HasPrefix(recording.MimeType, "audio/") {
			audio = append(audio, recording)
		}
	}
	if len(audio) == 0 {
		return Recording{}, false
	}
	for _, recording := range audio {
		if recording.MimeType == "audio/opus" {
			return recording, true
		}
	}
	return audio[0], true
}
