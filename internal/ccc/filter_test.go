package ccc_test

import (
	"testing"

	"c3media/internal/ccc"
)

func TestEventsByPerson(t *testing.T) {
	events := []ccc.Event{
		{Title: "One", Persons: []string{"Alice", "Bob"}},
		{Title: "Two", Persons: []string{"Carol"}},
	}
	matched := ccc.EventsByPerson(events, "Carol")
	if len(matched) != 1 || matched[0].Title != "Two" {
		t.Fatalf("unexpected matches: %#v", matched)
	}
	if got := ccc.EventsByPerson(events, "Dave"); len(got) != 0 {
		t.Fatalf("expected no matches, got %#v", got)
	}
}

func TestEventsByTag(t *testing.T) {
	events := []ccc.Event{
		{Title: "One", Tags: []string{"security", "hardware"}},
		{Title: "Two", Tags: []string{"art"}},
	}
	matched := ccc.EventsByTag(events, "security")
	if len(matched) != 1 || matched[0].Title != "One" {
		t.Fatalf("unexpected matches: %#v", matched)
	}
}

func TestEventsByTitleFuzzy(t *testing.T) {
	events := []ccc.Event{
		{Title: "Breaking Systems"},
		{Title: "Completely Unrelated"},
	}

	// "Braking Systems" vs "Breaking Systems": one edit over sixteen runes
	// scores 93, so it matches at 90 but not at 95.
	if got := ccc.EventsByTitle(events, "Braking Systems", 90); len(got) != 1 || got[0].Title != "Breaking Systems" {
		t.Fatalf("expected fuzzy match at threshold 90, got %#v", got)
	}
	if got := ccc.EventsByTitle(events, "Braking Systems", 95); len(got) != 0 {
		t.Fatalf("expected no match at threshold 95, got %#v", got)
	}
}

func TestEventsByTitleIgnoresCase(t *testing.T) {
	events := []ccc.Event{{Title: "Breaking Systems"}}
	if got := ccc.EventsByTitle(events, "BREAKING SYSTEMS", 100); len(got) != 1 {
		t.Fatalf("expected case-insensitive exact match, got %#v", got)
	}
}

func TestEventsByTitleInvalidThresholdFallsBack(t *testing.T) {
	events := []ccc.Event{{Title: "Breaking Systems"}}
	// 93 >= default 70
	if got := ccc.EventsByTitle(events, "Braking Systems", 0); len(got) != 1 {
		t.Fatalf("expected default threshold match, got %#v", got)
	}
}

func TestRecordingsByLanguageAndFormat(t *testing.T) {
	recordings := []ccc.Recording{
		{Language: "eng", MimeType: "video/mp4"},
		{Language: "deu", MimeType: "video/mp4"},
		{Language: "eng", MimeType: "video/webm"},
	}
	if got := ccc.RecordingsByLanguage(recordings, "eng"); len(got) != 2 {
		t.Fatalf("expected 2 english recordings, got %#v", got)
	}
	if got := ccc.RecordingsByFormat(recordings, "video/webm"); len(got) != 1 {
		t.Fatalf("expected 1 webm recording, got %#v", got)
	}
}

func TestBestRecordingPrefersLargestFile(t *testing.T) {
	recordings := []ccc.Recording{
		{MimeType: "video/mp4", Size: 400, Height: 576, Filename: "sd.mp4"},
		{MimeType: "video/mp4", Size: 900, Height: 1080, Filename: "hd.mp4"},
		{MimeType: "video/webm", Size: 2000, Height: 1080, Filename: "hd.webm"},
	}
	best, ok := ccc.BestRecording(recordings, "")
	if !ok {
		t.Fatal("expected a best recording")
	}
	if best.Filename != "hd.mp4" {
		t.Fatalf("unexpected best recording: %#v", best)
	}
}

func TestBestRecordingTieBreaks(t *testing.T) {
	recordings := []ccc.Recording{
		{MimeType: "video/mp4", Size: 900, Height: 720, Filename: "b.mp4"},
		{MimeType: "video/mp4", Size: 900, Height: 1080, Filename: "a.mp4"},
	}
	best, ok := ccc.BestRecording(recordings, "video/mp4")
	if !ok || best.Filename != "a.mp4" {
		t.Fatalf("expected height tie break to pick a.mp4, got %#v", best)
	}
}

func TestBestRecordingNoMatch(t *testing.T) {
	recordings := []ccc.Recording{{MimeType: "audio/mp3", Size: 50}}
	if _, ok := ccc.BestRecording(recordings, ""); ok {
		t.Fatal("expected no best recording for audio-only event")
	}
}

func TestAudioRecordingPrefersOpus(t *testing.T) {
	recordings := []ccc.Recording{
		{Language: "eng", MimeType: "audio/mp3", Filename: "talk.mp3"},
		{Language: "eng", MimeType: "audio/opus", Filename: "talk.opus"},
		{Language: "eng", MimeType: "video/mp4", Filename: "talk.mp4"},
	}
	audio, ok := ccc.AudioRecording(recordings, "")
	if !ok || audio.MimeType != "audio/opus" {
		t.Fatalf("expected opus recording, got %#v", audio)
	}
}

func TestAudioRecordingFallsBackToFirstMatch(t *testing.T) {
	recordings := []ccc.Recording{
		{Language: "deu", MimeType: "audio/mp3", Filename: "talk-deu.mp3"},
		{Language: "deu", MimeType: "audio/aac", Filename: "talk-deu.aac"},
	}
	audio, ok := ccc.AudioRecording(recordings, "deu")
	if !ok || audio.MimeType != "audio/mp3" {
		t.Fatalf("expected first german audio recording, got %#v", audio)
	}
}

func TestAudioRecordingNoMatch(t *testing.T) {
	recordings := []ccc.Recording{{Language: "eng", MimeType: "video/mp4"}}
	if _, ok := ccc.AudioRecording(recordings, "eng"); ok {
		t.Fatal("expected no audio recording")
	}
}
