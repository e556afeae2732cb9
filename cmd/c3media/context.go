package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"c3media/internal/ccc"
	"c3media/internal/config"
	"c3media/internal/logging"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	clientOnce sync.Once
	client     *ccc.Client
	logger     *slog.Logger
	cache      *ccc.SubtitleCache
	clientErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureClient() (*ccc.Client, error) {
	c.clientOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.clientErr = err
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.clientErr = fmt.Errorf("build logger: %w", err)
			return
		}
		client, err := ccc.New(ccc.Config{
			BaseURL:           cfg.API.BaseURL,
			UserAgent:         cfg.API.UserAgent,
			SubtitleLanguages: cfg.Subtitles.Languages,
			HTTPClient:        &http.Client{Timeout: time.Duration(cfg.API.RequestTimeout) * time.Second},
			Logger:            logger,
		})
		if err != nil {
			c.clientErr = err
			return
		}
		c.logger = logger
		c.client = client
		if cfg.SubtitleCacheEnabled() {
			cache, err := ccc.NewSubtitleCache(cfg.Subtitles.CacheDir, logger)
			if err != nil {
				c.clientErr = fmt.Errorf("open subtitle cache: %w", err)
				return
			}
			c.cache = cache
		}
	})
	return c.client, c.clientErr
}

// subtitleCache returns the configured cache, nil when disabled.
func (c *commandContext) subtitleCache() *ccc.SubtitleCache {
	_, _ = c.ensureClient()
	return c.cache
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
