package ccc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
)

// Subtitle files live on the static CDN next to the recording, not in the
// API payloads, so discovery is a series of HEAD probes.
const (
	cdnHost    = "cdn.media.ccc.de"
	staticHost = "static.media.ccc.de"
)

// SubtitleFormats lists the file extensions probed for each language.
var SubtitleFormats = []string{"srt", "vtt"}

// DefaultSubtitleLanguages returns the language codes probed when the
// configuration names none. These cover the bulk of congress releases.
func DefaultSubtitleLanguages() []string {
	return []string{"eng", "deu", "eng-deu"}
}

// Subtitles probes the static CDN for subtitle files belonging to the
// recording and returns the ones that exist. Probe failures for individual
// candidates are skipped; availability depends entirely on what was
// published for the recording.
func (c *Client) Subtitles(ctx context.Context, recording Recording) ([]Subtitle, error) {
	dir, guid, err := subtitleLocation(recording)
	if err != nil {
		return nil, err
	}
	subtitles := make([]Subtitle, 0, len(c.subtitleLanguages))
	for _, language := range c.subtitleLanguages {
		for _, format := range SubtitleFormats {
			candidate := fmt.Sprintf("%s/%s-%s.%s", dir, guid, language, format)
			ok, err := c.probe(ctx, candidate)
			if err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				continue
			}
			if ok {
				subtitles = append(subtitles, Subtitle{
					Language: language,
					Format:   format,
					URL:      candidate,
				})
			}
		}
	}
	return subtitles, nil
}

// SubtitleContent fetches the body of a subtitle file.
func (c *Client) SubtitleContent(ctx context.Context, subtitle Subtitle) (string, error) {
	target := strings.TrimSpace(subtitle.URL)
	if target == "" {
		return "", errors.New("ccc: subtitle has no url")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", fmt.Errorf("ccc: build subtitle request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("ccc: subtitle request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return "", fmt.Errorf("%w: subtitle %s", ErrNotFound, target)
	}
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("ccc: subtitle fetch failed (%s)", resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("ccc: read subtitle: %w", err)
	}
	return string(body), nil
}

func (c *Client) probe(ctx context.Context, target string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, target, nil)
	if err != nil {
		return false, fmt.Errorf("ccc: build probe request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	resp, err := c.http.Do(req)
	if err != nil {
		return false, fmt.Errorf("ccc: probe failed: %w", err)
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK, nil
}

// subtitleLocation derives the static CDN directory holding a recording's
// subtitle files, plus the event GUID used in their filenames. The quality
// folder segment is dropped and the CDN host swapped for the static one.
func subtitleLocation(recording Recording) (dir, guid string, err error) {
	source := strings.TrimSpace(recording.RecordingURL)
	if source == "" {
		return "", "", errors.New("ccc: recording has no media url")
	}
	base := source
	if folder := strings.TrimSpace(recording.Folder); folder != "" {
		base = strings.Replace(base, "/"+folder+"/", "/", 1)
	}
	base = strings.Replace(base, cdnHost, staticHost, 1)
	base = strings.Replace(base, "/congress/", "/media/congress/", 1)

	slash := strings.LastIndex(base, "/")
	if slash < 0 {
		return "", "", fmt.Errorf("ccc: cannot derive subtitle directory from %q", source)
	}
	guid = path.Base(recording.EventURL)
	if guid == "" || guid == "." || guid == "/" {
		return "", "", errors.New("ccc: recording has no event url")
	}
	return base[:slash], guid, nil
}
