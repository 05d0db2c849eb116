// Package scheduler runs the periodic refresh of wellness article sources.
// Each cycle picks the sources that are due, fetches them with a bounded
// worker pool, and stores new articles.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/ayurscope/ayurscope/pkg/domain"
)

//go:generate moq -out mocks/source_store.go -pkg mocks -skip-ensure -fmt goimports . SourceStore
//go:generate moq -out mocks/article_store.go -pkg mocks -skip-ensure -fmt goimports . ArticleStore
//go:generate moq -out mocks/parser.go -pkg mocks -skip-ensure -fmt goimports . Parser
//go:generate moq -out mocks/extractor.go -pkg mocks -skip-ensure -fmt goimports . Extractor

// SourceStore provides access to article sources
type SourceStore interface {
	ListDue(ctx context.Context, limit int) ([]*domain.Source, error)
	UpdateFetched(ctx context.Context, sourceID int64, nextFetch time.Time) error
	UpdateError(ctx context.Context, sourceID int64, errMsg string) error
}

// ArticleStore persists fetched articles
type ArticleStore interface {
	Upsert(ctx context.Context, article *domain.Article) error
}

// Parser fetches and parses a source URL
type Parser interface {
	Parse(ctx context.Context, url string) (*domain.ParsedSource, error)
}

// Extractor pulls full text from an article page, used when the feed
// entry carries no body
type Extractor interface {
	Extract(ctx context.Context, url string) (string, error)
}

// Scheduler manages periodic source updates
type Scheduler struct {
	sources        SourceStore
	articles       ArticleStore
	parser         Parser
	extractor      Extractor
	updateInterval time.Duration
	maxWorkers     int
	batchSize      int
	wg             sync.WaitGroup
	cancel         context.CancelFunc
}

// Params holds scheduler dependencies and configuration
type Params struct {
	Sources        SourceStore
	Articles       ArticleStore
	Parser         Parser
	Extractor      Extractor // optional, skip body extraction when nil
	UpdateInterval time.Duration
	MaxWorkers     int
	BatchSize      int
}

// NewScheduler creates a new scheduler instance
func NewScheduler(params Params) *Scheduler {
	if params.UpdateInterval == 0 {
		params.UpdateInterval = 30 * time.Minute
	}
	if params.MaxWorkers == 0 {
		params.MaxWorkers = 4
	}
	if params.BatchSize == 0 {
		params.BatchSize = 20
	}

	return &Scheduler{
		sources:        params.Sources,
		articles:       params.Articles,
		parser:         params.Parser,
		extractor:      params.Extractor,
		updateInterval: params.UpdateInterval,
		maxWorkers:     params.MaxWorkers,
		batchSize:      params.BatchSize,
	}
}

// Start begins the periodic refresh loop
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.refreshWorker(ctx)

	lgr.Printf("[INFO] scheduler started with update interval %v, %d workers", s.updateInterval, s.maxWorkers)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// refreshWorker runs RefreshDue on the configured interval
func (s *Scheduler) refreshWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	// run immediately on start
	s.RefreshDue(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RefreshDue(ctx)
		}
	}
}

// RefreshDue fetches every source that is due, bounded by the worker pool
func (s *Scheduler) RefreshDue(ctx context.Context) {
	due, err := s.sources.ListDue(ctx, s.batchSize)
	if err != nil {
		lgr.Printf("[ERROR] failed to list due sources: %v", err)
		return
	}
	if len(due) == 0 {
		return
	}

	lgr.Printf("[INFO] refreshing %d sources", len(due))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxWorkers)
	for _, src := range due {
		g.Go(func() error {
			s.refreshSource(gctx, src)
			return nil
		})
	}
	_ = g.Wait() // workers log their own errors

	lgr.Printf("[INFO] source refresh completed")
}

// refreshSource fetches one source and stores its new articles
func (s *Scheduler) refreshSource(ctx context.Context, src *domain.Source) {
	lgr.Printf("[DEBUG] refreshing source: %s", src.URL)

	parsed, err := s.parser.Parse(ctx, src.URL)
	if err != nil {
		lgr.Printf("[WARN] failed to parse source %s: %v", src.URL, err)
		if updErr := s.sources.UpdateError(ctx, src.ID, err.Error()); updErr != nil {
			lgr.Printf("[ERROR] failed to record source error: %v", updErr)
		}
		return
	}

	stored := 0
	for _, entry := range parsed.Entries {
		if entry.Title == "" {
			continue
		}
		body := entry.Body
		if body == "" && entry.Link != "" && s.extractor != nil {
			extracted, exErr := s.extractor.Extract(ctx, entry.Link)
			if exErr != nil {
				lgr.Printf("[WARN] failed to extract content for %q: %v", entry.Title, exErr)
			} else {
				body = extracted
			}
		}
		article := &domain.Article{
			SourceID:  src.ID,
			GUID:      entry.GUID,
			Title:     entry.Title,
			Summary:   entry.Summary,
			Body:      body,
			Link:      entry.Link,
			Author:    entry.Author,
			Published: entry.Published,
			Status:    "published",
		}
		if err := s.articles.Upsert(ctx, article); err != nil {
			lgr.Printf("[ERROR] failed to store article %q: %v", entry.Title, err)
			continue
		}
		stored++
	}

	interval := src.FetchInterval
	if interval <= 0 {
		interval = time.Hour
	}
	if err := s.sources.UpdateFetched(ctx, src.ID, time.Now().Add(interval)); err != nil {
		lgr.Printf("[ERROR] failed to update source %s: %v", src.URL, err)
		return
	}

	lgr.Printf("[DEBUG] source %s refreshed, %d entries stored", src.URL, stored)
}
