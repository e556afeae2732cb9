package ccc

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
)

// CacheEntry captures metadata about a cached subtitle file.
type CacheEntry struct {
	EventGUID string    `json:"event_guid"`
	Language  string    `json:"language"`
	Format    string    `json:"format"`
	URL       string    `json:"url"`
	StoredAt  time.Time `json:"stored_at"`
}

// CacheResult represents a cache hit including the subtitle payload.
type CacheResult struct {
	Entry   CacheEntry
	Content []byte
	Path    string
}

// SubtitleCache persists fetched subtitle files locally to avoid repeat
// downloads. Writers take a file lock so concurrent CLI invocations sharing
// the directory cannot corrupt entries.
type SubtitleCache struct {
	dir    string
	lock   *flock.Flock
	logger *slog.Logger
}

// NewSubtitleCache initialises a cache rooted at dir.
func NewSubtitleCache(dir string, logger *slog.Logger) (*SubtitleCache, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, errors.New("cache directory is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SubtitleCache{
		dir:    dir,
		lock:   flock.New(filepath.Join(dir, ".lock")),
		logger: logger,
	}, nil
}

// Dir exposes the backing directory for inspection.
func (c *SubtitleCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

// Load returns the cached payload for the subtitle when present.
func (c *SubtitleCache) Load(eventGUID, language, format string) (CacheResult, bool, error) {
	if c == nil {
		return CacheResult{}, false, errors.New("cache unavailable")
	}
	key, err := cacheKey(eventGUID, language, format)
	if err != nil {
		return CacheResult{}, false, err
	}
	dataPath := filepath.Join(c.dir, key)
	content, err := os.ReadFile(dataPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return CacheResult{}, false, nil
		}
		return CacheResult{}, false, fmt.Errorf("read cache data: %w", err)
	}
	metaBytes, err := os.ReadFile(dataPath + ".json")
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// treat as miss so the caller refreshes from the CDN
			_ = os.Remove(dataPath)
			return CacheResult{}, false, nil
		}
		return CacheResult{}, false, fmt.Errorf("read cache metadata: %w", err)
	}
	var entry CacheEntry
	if err := json.Unmarshal(metaBytes, &entry); err != nil {
		return CacheResult{}, false, fmt.Errorf("decode cache metadata: %w", err)
	}
	return CacheResult{Entry: entry, Content: content, Path: dataPath}, true, nil
}

// Store writes the subtitle payload into the cache and returns the data path.
func (c *SubtitleCache) Store(entry CacheEntry, content []byte) (string, error) {
	if c == nil {
		return "", errors.New("cache unavailable")
	}
	key, err := cacheKey(entry.EventGUID, entry.Language, entry.Format)
	if err != nil {
		return "", err
	}
	entry.URL = strings.TrimSpace(entry.URL)
	entry.StoredAt = time.Now().UTC()

	if err := c.lock.Lock(); err != nil {
		return "", fmt.Errorf("lock cache: %w", err)
	}
	defer func() {
		_ = c.lock.Unlock()
	}()

	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return "", fmt.Errorf("ensure cache dir: %w", err)
	}
	dataPath := filepath.Join(c.dir, key)
	if err := writeFileAtomic(dataPath, content, 0o644); err != nil {
		return "", err
	}
	metaBytes, err := json.Marshal(entry)
	if err != nil {
		return "", fmt.Errorf("encode metadata: %w", err)
	}
	if err := writeFileAtomic(dataPath+".json", metaBytes, 0o644); err != nil {
		return "", err
	}
	c.logger.Debug("subtitle cache stored",
		slog.String("event_guid", entry.EventGUID),
		slog.String("language", entry.Language),
		slog.String("path", dataPath),
	)
	return dataPath, nil
}

func cacheKey(eventGUID, language, format string) (string, error) {
	eventGUID = strings.TrimSpace(eventGUID)
	language = strings.TrimSpace(language)
	format = strings.TrimSpace(format)
	if eventGUID == "" || language == "" || format == "" {
		return "", errors.New("cache key requires event guid, language, and format")
	}
	return fmt.Sprintf("%s-%s.%s", eventGUID, language, format), nil
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "cache-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
