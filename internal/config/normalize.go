package config

import (
	"os"
	"strings"

	"c3media/internal/language"
)

// normalize trims and expands configuration values and applies environment
// fallbacks. Runs before Validate.
func (c *Config) normalize() error {
	if env := strings.TrimSpace(os.Getenv("C3MEDIA_BASE_URL")); env != "" {
		c.API.BaseURL = env
	}
	c.API.BaseURL = strings.TrimRight(strings.TrimSpace(c.API.BaseURL), "/")
	if c.API.BaseURL == "" {
		c.API.BaseURL = defaultBaseURL
	}
	c.API.UserAgent = strings.TrimSpace(c.API.UserAgent)
	if c.API.UserAgent == "" {
		c.API.UserAgent = defaultUserAgent
	}

	c.Subtitles.Languages = language.NormalizeList(c.Subtitles.Languages)
	if len(c.Subtitles.Languages) == 0 {
		c.Subtitles.Languages = defaultSubtitleLanguages()
	}
	if dir := strings.TrimSpace(c.Subtitles.CacheDir); dir != "" {
		expanded, err := expandPath(dir)
		if err != nil {
			return err
		}
		c.Subtitles.CacheDir = expanded
	} else {
		c.Subtitles.CacheDir = ""
	}

	if dir := strings.TrimSpace(c.Downloads.Dir); dir != "" {
		expanded, err := expandPath(dir)
		if err != nil {
			return err
		}
		c.Downloads.Dir = expanded
	}

	if c.Search.FuzzyThreshold == 0 {
		c.Search.FuzzyThreshold = defaultFuzzyThreshold
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	return nil
}
