package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"c3media/internal/logging"
)

func TestConsoleFormatSingleLine(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("conference fetched", "acronym", "38c3", "events", 312)

	line := buf.String()
	if strings.Count(line, "\n") != 1 {
		t.Fatalf("expected one line, got %q", line)
	}
	for _, want := range []string{"INFO", "conference fetched", "acronym=38c3", "events=312"} {
		if !strings.Contains(line, want) {
			t.Fatalf("expected %q in output %q", want, line)
		}
	}
}

func TestConsoleQuotesValuesWithSpaces(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("event", "title", "Breaking Systems")

	if !strings.Contains(buf.String(), `title="Breaking Systems"`) {
		t.Fatalf("expected quoted value in output %q", buf.String())
	}
}

func TestConsoleGroupsJoinWithDots(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.WithGroup("api").Info("request done", "status", 200)

	if !strings.Contains(buf.String(), "api.status=200") {
		t.Fatalf("expected dotted group key in output %q", buf.String())
	}
}

func TestConsoleLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("hidden")
	logger.Warn("shown")

	output := buf.String()
	if strings.Contains(output, "hidden") {
		t.Fatalf("info record should be filtered, got %q", output)
	}
	if !strings.Contains(output, "shown") {
		t.Fatalf("warn record missing from output %q", output)
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Debug("probe", "url", "https://static.media.ccc.de/x.srt")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if record["msg"] != "probe" {
		t.Fatalf("unexpected msg field: %v", record["msg"])
	}
	if record["level"] != "debug" {
		t.Fatalf("unexpected level field: %v", record["level"])
	}
	if _, ok := record["ts"].(string); !ok {
		t.Fatalf("expected string ts field, got %v", record["ts"])
	}
}

func TestUnsupportedFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
