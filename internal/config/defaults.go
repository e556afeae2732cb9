package config

const (
	defaultBaseURL        = "https://api.media.ccc.de/public"
	defaultUserAgent      = "c3media/dev"
	defaultRequestTimeout = 30
	defaultDownloadsDir   = "~/Downloads/c3media"
	defaultFuzzyThreshold = 70
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

func defaultSubtitleLanguages() []string {
	return []string{"eng", "deu", "eng-deu"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		API: API{
			BaseURL:        defaultBaseURL,
			UserAgent:      defaultUserAgent,
			RequestTimeout: defaultRequestTimeout,
		},
		Subtitles: Subtitles{
			Languages: defaultSubtitleLanguages(),
		},
		Downloads: Downloads{
			Dir: defaultDownloadsDir,
		},
		Search: Search{
			FuzzyThreshold: defaultFuzzyThreshold,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
