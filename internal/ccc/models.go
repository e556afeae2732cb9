package ccc

// Conference groups the talks of a single CCC event (e.g. "38c3").
type Conference struct {
	Acronym             string  `json:"acronym"`
	AspectRatio         string  `json:"aspect_ratio"`
	UpdatedAt           string  `json:"updated_at"`
	Title               string  `json:"title"`
	ScheduleURL         string  `json:"schedule_url"`
	Slug                string  `json:"slug"`
	EventLastReleasedAt string  `json:"event_last_released_at"`
	Link                string  `json:"link"`
	Description         string  `json:"description"`
	WebgenLocation      string  `json:"webgen_location"`
	LogoURL             string  `json:"logo_url"`
	ImagesURL           string  `json:"images_url"`
	RecordingsURL       string  `json:"recordings_url"`
	URL                 string  `json:"url"`
	Events              []Event `json:"events"`
}

// Event is a single talk or session within a conference.
//
// Recordings is only populated on detail payloads; list payloads leave it
// nil, which is why EventRecordings refetches on demand.
type Event struct {
	GUID             string         `json:"guid"`
	Title            string         `json:"title"`
	Subtitle         string         `json:"subtitle"`
	Slug             string         `json:"slug"`
	Link             string         `json:"link"`
	Description      string         `json:"description"`
	OriginalLanguage string         `json:"original_language"`
	Persons          []string       `json:"persons"`
	Tags             []string       `json:"tags"`
	ViewCount        int64          `json:"view_count"`
	Promoted         bool           `json:"promoted"`
	Date             string         `json:"date"`
	ReleaseDate      string         `json:"release_date"`
	UpdatedAt        string         `json:"updated_at"`
	Length           int64          `json:"length"`
	Duration         int64          `json:"duration"`
	ThumbURL         string         `json:"thumb_url"`
	PosterURL        string         `json:"poster_url"`
	TimelineURL      string         `json:"timeline_url"`
	ThumbnailsURL    string         `json:"thumbnails_url"`
	FrontendLink     string         `json:"frontend_link"`
	URL              string         `json:"url"`
	ConferenceTitle  string         `json:"conference_title"`
	ConferenceURL    string         `json:"conference_url"`
	Related          []RelatedEvent `json:"related"`
	Recordings       []Recording    `json:"recordings,omitempty"`
}

// RelatedEvent is a lightweight pointer to a related talk.
type RelatedEvent struct {
	GUID  string `json:"guid"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Recording is a media artifact (video or audio) of an event. Size is
// reported by the API in megabytes.
type Recording struct {
	Size          int64  `json:"size"`
	Length        int64  `json:"length"`
	MimeType      string `json:"mime_type"`
	Language      string `json:"language"`
	Filename      string `json:"filename"`
	State         string `json:"state"`
	Folder        string `json:"folder"`
	HighQuality   bool   `json:"high_quality"`
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	UpdatedAt     string `json:"updated_at"`
	RecordingURL  string `json:"recording_url"`
	URL           string `json:"url"`
	EventURL      string `json:"event_url"`
	ConferenceURL string `json:"conference_url"`
}

// Subtitle describes a subtitle file discovered on the static CDN.
type Subtitle struct {
	Language string `json:"language"`
	Format   string `json:"format"`
	URL      string `json:"url"`
	Content  string `json:"content,omitempty"`
}
