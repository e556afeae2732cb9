package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// validateGUID rejects malformed event GUIDs before any request goes out.
// media.ccc.de event GUIDs are UUIDs.
func validateGUID(value string) (string, error) {
	value = strings.TrimSpace(value)
	parsed, err := uuid.Parse(value)
	if err != nil {
		return "", fmt.Errorf("invalid event guid %q: %w", value, err)
	}
	return parsed.String(), nil
}

// fmtSize renders a recording size reported in megabytes.
func fmtSize(megabytes int64) string {
	if megabytes >= 1024 {
		return fmt.Sprintf("%.1f GiB", float64(megabytes)/1024)
	}
	return fmt.Sprintf("%d MiB", megabytes)
}

// fmtDuration renders a length in seconds as h:mm:ss or m:ss.
func fmtDuration(seconds int64) string {
	if seconds <= 0 {
		return "-"
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d:%02d", minutes, secs)
}

// truncate shortens a string to max runes, appending an ellipsis.
func truncate(value string, max int) string {
	if max <= 3 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= max {
		return value
	}
	return string(runes[:max-3]) + "..."
}

// joinOrDash joins values with commas, rendering an empty list as a dash.
func joinOrDash(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	return strings.Join(values, ", ")
}
