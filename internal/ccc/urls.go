package ccc

import "regexp"

var recordingIDPattern = regexp.MustCompile(`/recordings/(\d+)$`)

// RecordingIDFromURL extracts the trailing numeric recording ID from an API
// recording URL. Returns the empty string when the URL carries none.
func RecordingIDFromURL(recordingURL string) string {
	match := recordingIDPattern.FindStringSubmatch(recordingURL)
	if match == nil {
		return ""
	}
	return match[1]
}
