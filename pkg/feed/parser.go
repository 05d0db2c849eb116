// Package feed fetches and parses RSS/Atom sources of wellness articles.
// Entry bodies are sanitized before they reach storage, feeds are not a
// trusted input.
package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"github.com/ayurscope/ayurscope/pkg/domain"
)

// Parser fetches and parses article sources
type Parser struct {
	client     *http.Client
	userAgent  string
	bodyPolicy *bluemonday.Policy
	textPolicy *bluemonday.Policy
}

// NewParser creates a new source parser
func NewParser(timeout time.Duration, userAgent string) *Parser {
	return &Parser{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent:  userAgent,
		bodyPolicy: bluemonday.UGCPolicy(),
		textPolicy: bluemonday.StrictPolicy(),
	}
}

// Parse fetches and parses a source from the given URL
func (p *Parser) Parse(ctx context.Context, url string) (*domain.ParsedSource, error) {
	body, err := p.fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch source: %w", err)
	}
	defer body.Close()

	parser := gofeed.NewParser()
	parsed, err := parser.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse source: %w", err)
	}

	result := &domain.ParsedSource{
		Title:       parsed.Title,
		Description: parsed.Description,
		Link:        parsed.Link,
		Entries:     make([]domain.ParsedEntry, 0, len(parsed.Items)),
	}

	for _, item := range parsed.Items {
		entry := domain.ParsedEntry{
			Title:   strings.TrimSpace(item.Title),
			Link:    item.Link,
			Summary: strings.TrimSpace(p.textPolicy.Sanitize(item.Description)),
			Body:    p.bodyPolicy.Sanitize(item.Content),
		}

		switch {
		case item.GUID != "":
			entry.GUID = item.GUID
		case item.Link != "":
			entry.GUID = item.Link
		default:
			entry.GUID = fmt.Sprintf("%s-%s", parsed.Title, item.Title)
		}

		if item.Author != nil {
			entry.Author = item.Author.Name
		}

		if item.PublishedParsed != nil {
			entry.Published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			entry.Published = *item.UpdatedParsed
		}

		result.Entries = append(result.Entries, entry)
	}

	return result, nil
}

// fetch retrieves content from a URL
func (p *Parser) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", p.userAgent)
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml, text/xml")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}
