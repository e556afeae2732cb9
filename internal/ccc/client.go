package ccc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the public media.ccc.de API root.
	DefaultBaseURL = "https://api.media.ccc.de/public"

	defaultUserAgent   = "c3media/dev"
	defaultHTTPTimeout = 30 * time.Second
)

// ErrNotFound reports that the API has no record for the requested
// conference, event, or recording.
var ErrNotFound = errors.New("ccc: not found")

// Config describes the client configuration.
type Config struct {
	BaseURL           string
	UserAgent         string
	SubtitleLanguages []string
	HTTPClient        *http.Client
	Logger            *slog.Logger
}

// Client wraps the media.ccc.de public REST API.
type Client struct {
	baseURL           *url.URL
	userAgent         string
	subtitleLanguages []string
	http              *http.Client
	logger            *slog.Logger
}

// New creates a Client from the supplied configuration.
func New(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}
	baseURL, err := url.Parse(strings.TrimRight(base, "/"))
	if err != nil {
		return nil, fmt.Errorf("ccc: parse base url: %w", err)
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	languages := cfg.SubtitleLanguages
	if len(languages) == 0 {
		languages = DefaultSubtitleLanguages()
	}
	return &Client{
		baseURL:           baseURL,
		userAgent:         userAgent,
		subtitleLanguages: languages,
		http:              httpClient,
		logger:            logger,
	}, nil
}

type conferencesPayload struct {
	Conferences []Conference `json:"conferences"`
}

// Conferences returns every conference known to the API.
func (c *Client) Conferences(ctx context.Context) ([]Conference, error) {
	var payload conferencesPayload
	if err := c.getJSON(ctx, c.baseURL.JoinPath("conferences"), &payload); err != nil {
		return nil, err
	}
	return payload.Conferences, nil
}

// Conference fetches a single conference by numeric ID or acronym. The
// payload includes the conference's events.
func (c *Client) Conference(ctx context.Context, id string) (*Conference, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.New("ccc: conference id must not be empty")
	}
	var conference Conference
	if err := c.getJSON(ctx, c.baseURL.JoinPath("conferences", id), &conference); err != nil {
		return nil, err
	}
	return &conference, nil
}

// ConferenceByAcronym scans the conference list for a case-insensitive
// acronym match. Returns ErrNotFound when no conference matches.
func (c *Client) ConferenceByAcronym(ctx context.Context, acronym string) (*Conference, error) {
	acronym = strings.TrimSpace(acronym)
	if acronym == "" {
		return nil, errors.New("ccc: acronym must not be empty")
	}
	conferences, err := c.Conferences(ctx)
	if err != nil {
		return nil, err
	}
	for i := range conferences {
		if strings.EqualFold(conferences[i].Acronym, acronym) {
			return &conferences[i], nil
		}
	}
	return nil, fmt.Errorf("%w: conference %q", ErrNotFound, acronym)
}

// ConferenceEvents returns the events of a conference, refetching the full
// conference payload when the value in hand carries none.
func (c *Client) ConferenceEvents(ctx context.Context, conference *Conference) ([]Event, error) {
	if conference == nil {
		return nil, errors.New("ccc: conference is nil")
	}
	if len(conference.Events) > 0 {
		return conference.Events, nil
	}
	if strings.TrimSpace(conference.Acronym) == "" {
		return nil, errors.New("ccc: conference has no acronym")
	}
	full, err := c.Conference(ctx, conference.Acronym)
	if err != nil {
		return nil, err
	}
	return full.Events, nil
}

// Event fetches a single event by GUID.
func (c *Client) Event(ctx context.Context, guid string) (*Event, error) {
	guid = strings.TrimSpace(guid)
	if guid == "" {
		return nil, errors.New("ccc: event guid must not be empty")
	}
	var event Event
	if err := c.getJSON(ctx, c.baseURL.JoinPath("events", guid), &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// EventRecordings returns the recordings of an event. List payloads omit
// recordings, so the event is refetched by GUID when necessary. The result
// is never nil for a successful call.
func (c *Client) EventRecordings(ctx context.Context, event *Event) ([]Recording, error) {
	if event == nil {
		return nil, errors.New("ccc: event is nil")
	}
	if len(event.Recordings) > 0 {
		return event.Recordings, nil
	}
	full, err := c.Event(ctx, event.GUID)
	if err != nil {
		return nil, err
	}
	if full.Recordings == nil {
		return []Recording{}, nil
	}
	return full.Recordings, nil
}

// Recording fetches a single recording by numeric ID.
func (c *Client) Recording(ctx context.Context, id string) (*Recording, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.New("ccc: recording id must not be empty")
	}
	var recording Recording
	if err := c.getJSON(ctx, c.baseURL.JoinPath("recordings", id), &recording); err != nil {
		return nil, err
	}
	return &recording, nil
}

// RecordingByURL resolves a recording from its API URL. Returns ErrNotFound
// when the URL carries no recording ID.
func (c *Client) RecordingByURL(ctx context.Context, recordingURL string) (*Recording, error) {
	id := RecordingIDFromURL(recordingURL)
	if id == "" {
		return nil, fmt.Errorf("%w: no recording id in %q", ErrNotFound, recordingURL)
	}
	return c.Recording(ctx, id)
}

// EventRecordingByID finds the recording of an event whose API URL carries
// the given numeric ID. Returns ErrNotFound when the event has no such
// recording.
func (c *Client) EventRecordingByID(ctx context.Context, event *Event, id string) (*Recording, error) {
	recordings, err := c.EventRecordings(ctx, event)
	if err != nil {
		return nil, err
	}
	for i := range recordings {
		if RecordingIDFromURL(recordings[i].URL) == id {
			return &recordings[i], nil
		}
	}
	return nil, fmt.Errorf("%w: recording %q", ErrNotFound, id)
}

// DownloadRecording opens a stream for the recording's media file. The
// caller owns the returned body. Size is the Content-Length when the server
// reports one, -1 otherwise.
func (c *Client) DownloadRecording(ctx context.Context, recording Recording) (io.ReadCloser, int64, error) {
	target := strings.TrimSpace(recording.RecordingURL)
	if target == "" {
		return nil, 0, errors.New("ccc: recording has no media url")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("ccc: build download request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("ccc: download request failed: %w", err)
	}
	if resp.StatusCode >= 400 {
		resp.Body.Close()
		return nil, 0, fmt.Errorf("ccc: download failed (%s)", resp.Status)
	}
	return resp.Body, resp.ContentLength, nil
}

// getJSON issues a GET and decodes the JSON response into out, retrying
// transient failures with doubling backoff.
func (c *Client) getJSON(ctx context.Context, endpoint *url.URL, out any) error {
	var lastErr error
	backoff := initialBackoff
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			if err := SleepWithContext(ctx, backoff); err != nil {
				return err
			}
			if backoff *= 2; backoff > maxBackoff {
				backoff = maxBackoff
			}
		}
		err := c.doJSON(ctx, endpoint, out)
		if err == nil {
			return nil
		}
		if !IsRetriable(err) {
			return err
		}
		lastErr = err
		c.logger.Debug("retrying request",
			slog.String("url", endpoint.String()),
			slog.Int("attempt", attempt+1),
			slog.String("error", err.Error()),
		)
	}
	return lastErr
}

func (c *Client) doJSON(ctx context.Context, endpoint *url.URL, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("ccc: build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	requestStart := time.Now()
	resp, err := c.http.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return fmt.Errorf("ccc: execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrNotFound, endpoint.Path)
	}
	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("ccc: request failed (%s): %s", resp.Status, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("ccc: decode response: %w", err)
	}
	c.logger.Debug("request complete",
		slog.String("url", endpoint.String()),
		slog.Duration("latency", latency),
	)
	return nil
}
