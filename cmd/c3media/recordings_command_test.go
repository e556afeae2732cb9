package main

import (
	"testing"

	"c3media/internal/ccc"
)

func TestSelectRecordingsBest(t *testing.T) {
	recordings := []ccc.Recording{
		{MimeType: "video/mp4", Language: "eng", Size: 400, Filename: "sd.mp4"},
		{MimeType: "video/mp4", Language: "eng", Size: 900, Filename: "hd.mp4"},
		{MimeType: "audio/opus", Language: "eng", Size: 40, Filename: "talk.opus"},
	}
	selected, err := selectRecordings(recordings, selectOptions{Best: true})
	if err != nil {
		t.Fatalf("selectRecordings returned error: %v", err)
	}
	if len(selected) != 1 || selected[0].Filename != "hd.mp4" {
		t.Fatalf("unexpected selection: %#v", selected)
	}
}

func TestSelectRecordingsAudio(t *testing.T) {
	recordings := []ccc.Recording{
		{MimeType: "video/mp4", Language: "eng", Filename: "hd.mp4"},
		{MimeType: "audio/mp3", Language: "eng", Filename: "talk.mp3"},
		{MimeType: "audio/opus", Language: "eng", Filename: "talk.opus"},
	}
	selected, err := selectRecordings(recordings, selectOptions{Audio: true})
	if err != nil {
		t.Fatalf("selectRecordings returned error: %v", err)
	}
	if len(selected) != 1 || selected[0].Filename != "talk.opus" {
		t.Fatalf("unexpected selection: %#v", selected)
	}
}

func TestSelectRecordingsBestAndAudioConflict(t *testing.T) {
	if _, err := selectRecordings(nil, selectOptions{Best: true, Audio: true}); err == nil {
		t.Fatal("expected error for conflicting options")
	}
}

func TestSelectRecordingsLanguageAndMime(t *testing.T) {
	recordings := []ccc.Recording{
		{MimeType: "video/mp4", Language: "eng", Filename: "eng.mp4"},
		{MimeType: "video/mp4", Language: "deu", Filename: "deu.mp4"},
		{MimeType: "video/webm", Language: "deu", Filename: "deu.webm"},
	}
	selected, err := selectRecordings(recordings, selectOptions{Language: "deu", MimeType: "video/mp4"})
	if err != nil {
		t.Fatalf("selectRecordings returned error: %v", err)
	}
	if len(selected) != 1 || selected[0].Filename != "deu.mp4" {
		t.Fatalf("unexpected selection: %#v", selected)
	}
}

func TestSelectRecordingsBestNoMatch(t *testing.T) {
	recordings := []ccc.Recording{{MimeType: "audio/opus", Language: "eng"}}
	if _, err := selectRecordings(recordings, selectOptions{Best: true}); err == nil {
		t.Fatal("expected error when no video recording matches")
	}
}
