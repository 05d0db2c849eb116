package domain

import "time"

// Article is a published wellness reference article
type Article struct {
	ID        int64
	SourceID  int64
	GUID      string
	Title     string
	Slug      string
	Summary   string
	Body      string
	Link      string
	Author    string
	Published time.Time
	Status    string // draft or published
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Source is a curated feed of wellness articles
type Source struct {
	ID            int64
	URL           string
	Title         string
	FetchInterval time.Duration
	LastFetched   *time.Time
	NextFetch     *time.Time
	ErrorCount    int
	LastError     string
	Enabled       bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ParsedSource represents a fetched and parsed article source
type ParsedSource struct {
	Title       string
	Description string
	Link        string
	Entries     []ParsedEntry
}

// ParsedEntry represents a single entry from a parsed source
type ParsedEntry struct {
	GUID      string
	Title     string
	Link      string
	Summary   string
	Body      string
	Author    string
	Published time.Time
}
