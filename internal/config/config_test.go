package config_test

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"c3media/internal/config"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, path, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatalf("expected missing config, got exists=true at %s", path)
	}
	if cfg.API.BaseURL != "https://api.media.ccc.de/public" {
		t.Fatalf("unexpected base URL %q", cfg.API.BaseURL)
	}
	if cfg.API.RequestTimeout != 30 {
		t.Fatalf("unexpected request timeout %d", cfg.API.RequestTimeout)
	}
	if !slices.Equal(cfg.Subtitles.Languages, []string{"eng", "deu", "eng-deu"}) {
		t.Fatalf("unexpected subtitle languages %v", cfg.Subtitles.Languages)
	}
	if cfg.Search.FuzzyThreshold != 70 {
		t.Fatalf("unexpected fuzzy threshold %d", cfg.Search.FuzzyThreshold)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging config %+v", cfg.Logging)
	}
	if cfg.SubtitleCacheEnabled() {
		t.Fatal("expected subtitle cache to be disabled by default")
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[api]
base_url = "https://api.example.org/public/"
request_timeout = 10

[subtitles]
languages = ["ENG", "eng", "deu"]
cache_dir = "~/cache/subs"

[search]
fuzzy_threshold = 85
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected config at %s, got %s (exists=%v)", path, resolved, exists)
	}
	if cfg.API.BaseURL != "https://api.example.org/public" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.API.BaseURL)
	}
	if !slices.Equal(cfg.Subtitles.Languages, []string{"eng", "deu"}) {
		t.Fatalf("unexpected subtitle languages %v", cfg.Subtitles.Languages)
	}
	if cfg.Subtitles.CacheDir != filepath.Join(home, "cache", "subs") {
		t.Fatalf("expected tilde expansion, got %q", cfg.Subtitles.CacheDir)
	}
	if cfg.Search.FuzzyThreshold != 85 {
		t.Fatalf("unexpected fuzzy threshold %d", cfg.Search.FuzzyThreshold)
	}
	if !cfg.SubtitleCacheEnabled() {
		t.Fatal("expected subtitle cache to be enabled")
	}
}

func TestLoadEnvOverridesBaseURL(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("C3MEDIA_BASE_URL", "http://127.0.0.1:9999/api/")

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.API.BaseURL != "http://127.0.0.1:9999/api" {
		t.Fatalf("unexpected base URL %q", cfg.API.BaseURL)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "bad scheme",
			content: "[api]\nbase_url = \"ftp://example.org\"\n",
			wantErr: "http or https",
		},
		{
			name:    "bad timeout",
			content: "[api]\nrequest_timeout = -5\n",
			wantErr: "request_timeout",
		},
		{
			name:    "bad threshold",
			content: "[search]\nfuzzy_threshold = 101\n",
			wantErr: "fuzzy_threshold",
		},
		{
			name:    "bad log format",
			content: "[logging]\nformat = \"xml\"\n",
			wantErr: "logging.format",
		},
		{
			name:    "bad log level",
			content: "[logging]\nlevel = \"verbose\"\n",
			wantErr: "logging.level",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(path)
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestCreateSampleIsLoadable(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}
	if _, _, _, err := config.Load(path); err != nil {
		t.Fatalf("sample config does not load: %v", err)
	}
}

func TestEnsureDirectories(t *testing.T) {
	base := t.TempDir()
	cfg := config.Default()
	cfg.Downloads.Dir = filepath.Join(base, "downloads")
	cfg.Subtitles.CacheDir = filepath.Join(base, "subs")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories returned error: %v", err)
	}
	for _, dir := range []string{cfg.Downloads.Dir, cfg.Subtitles.CacheDir} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Fatalf("expected directory %s, err=%v", dir, err)
		}
	}
}

func TestExpandPathTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := config.ExpandPath("~/some/dir")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	if got != filepath.Join(home, "some", "dir") {
		t.Fatalf("ExpandPath = %q", got)
	}
}
