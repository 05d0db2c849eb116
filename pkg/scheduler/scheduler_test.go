package scheduler

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayurscope/ayurscope/pkg/domain"
	"github.com/ayurscope/ayurscope/pkg/scheduler/mocks"
)

func TestNewScheduler_Defaults(t *testing.T) {
	s := NewScheduler(Params{
		Sources:  &mocks.SourceStoreMock{},
		Articles: &mocks.ArticleStoreMock{},
		Parser:   &mocks.ParserMock{},
	})

	assert.Equal(t, 30*time.Minute, s.updateInterval)
	assert.Equal(t, 4, s.maxWorkers)
	assert.Equal(t, 20, s.batchSize)
}

func TestScheduler_RefreshDue(t *testing.T) {
	sources := &mocks.SourceStoreMock{
		ListDueFunc: func(ctx context.Context, limit int) ([]*domain.Source, error) {
			return []*domain.Source{
				{ID: 1, URL: "https://example.com/a.xml", FetchInterval: time.Hour},
				{ID: 2, URL: "https://example.com/b.xml", FetchInterval: time.Hour},
			}, nil
		},
		UpdateFetchedFunc: func(ctx context.Context, sourceID int64, nextFetch time.Time) error {
			return nil
		},
	}
	articles := &mocks.ArticleStoreMock{
		UpsertFunc: func(ctx context.Context, article *domain.Article) error { return nil },
	}
	parser := &mocks.ParserMock{
		ParseFunc: func(ctx context.Context, url string) (*domain.ParsedSource, error) {
			return &domain.ParsedSource{
				Title: "Feed",
				Entries: []domain.ParsedEntry{
					{GUID: url + "/1", Title: "Entry One", Published: time.Now()},
					{GUID: url + "/2", Title: ""}, // untitled entries are skipped
				},
			}, nil
		},
	}

	s := NewScheduler(Params{Sources: sources, Articles: articles, Parser: parser, MaxWorkers: 2})
	s.RefreshDue(context.Background())

	assert.Len(t, parser.ParseCalls(), 2)
	assert.Len(t, articles.UpsertCalls(), 2, "one titled entry per source")
	assert.Len(t, sources.UpdateFetchedCalls(), 2)
	assert.Empty(t, sources.UpdateErrorCalls())

	for _, call := range articles.UpsertCalls() {
		assert.Equal(t, "published", call.Article.Status)
		assert.Equal(t, "Entry One", call.Article.Title)
	}
}

func TestScheduler_RefreshDue_ExtractsMissingBody(t *testing.T) {
	sources := &mocks.SourceStoreMock{
		ListDueFunc: func(ctx context.Context, limit int) ([]*domain.Source, error) {
			return []*domain.Source{{ID: 1, URL: "https://example.com/a.xml", FetchInterval: time.Hour}}, nil
		},
		UpdateFetchedFunc: func(ctx context.Context, sourceID int64, nextFetch time.Time) error { return nil },
	}
	articles := &mocks.ArticleStoreMock{
		UpsertFunc: func(ctx context.Context, article *domain.Article) error { return nil },
	}
	parser := &mocks.ParserMock{
		ParseFunc: func(ctx context.Context, url string) (*domain.ParsedSource, error) {
			return &domain.ParsedSource{
				Entries: []domain.ParsedEntry{
					{GUID: "1", Title: "Summary Only", Link: "https://example.com/full", Summary: "short"},
					{GUID: "2", Title: "Has Body", Link: "https://example.com/other", Body: "already here"},
					{GUID: "3", Title: "Broken Page", Link: "https://example.com/broken", Summary: "short"},
				},
			}, nil
		},
	}
	extractor := &mocks.ExtractorMock{
		ExtractFunc: func(ctx context.Context, url string) (string, error) {
			if url == "https://example.com/broken" {
				return "", fmt.Errorf("no content extracted")
			}
			return "full article text", nil
		},
	}

	s := NewScheduler(Params{Sources: sources, Articles: articles, Parser: parser, Extractor: extractor})
	s.RefreshDue(context.Background())

	// only entries without a body go through the extractor
	require.Len(t, extractor.ExtractCalls(), 2)

	require.Len(t, articles.UpsertCalls(), 3)
	byGUID := map[string]string{}
	for _, call := range articles.UpsertCalls() {
		byGUID[call.Article.GUID] = call.Article.Body
	}
	assert.Equal(t, "full article text", byGUID["1"])
	assert.Equal(t, "already here", byGUID["2"])
	assert.Empty(t, byGUID["3"], "extraction failure keeps the entry with empty body")
}

func TestScheduler_RefreshDue_ParseError(t *testing.T) {
	sources := &mocks.SourceStoreMock{
		ListDueFunc: func(ctx context.Context, limit int) ([]*domain.Source, error) {
			return []*domain.Source{{ID: 7, URL: "https://example.com/broken.xml"}}, nil
		},
		UpdateErrorFunc: func(ctx context.Context, sourceID int64, errMsg string) error { return nil },
	}
	articles := &mocks.ArticleStoreMock{
		UpsertFunc: func(ctx context.Context, article *domain.Article) error { return nil },
	}
	parser := &mocks.ParserMock{
		ParseFunc: func(ctx context.Context, url string) (*domain.ParsedSource, error) {
			return nil, fmt.Errorf("connection refused")
		},
	}

	s := NewScheduler(Params{Sources: sources, Articles: articles, Parser: parser})
	s.RefreshDue(context.Background())

	require.Len(t, sources.UpdateErrorCalls(), 1)
	assert.Equal(t, int64(7), sources.UpdateErrorCalls()[0].SourceID)
	assert.Contains(t, sources.UpdateErrorCalls()[0].ErrMsg, "connection refused")
	assert.Empty(t, articles.UpsertCalls())
}

func TestScheduler_RefreshDue_WorkerLimit(t *testing.T) {
	const sourceCount = 8

	due := make([]*domain.Source, sourceCount)
	for i := range due {
		due[i] = &domain.Source{ID: int64(i + 1), URL: fmt.Sprintf("https://example.com/%d.xml", i), FetchInterval: time.Hour}
	}

	var mu sync.Mutex
	active, maxActive := 0, 0

	sources := &mocks.SourceStoreMock{
		ListDueFunc: func(ctx context.Context, limit int) ([]*domain.Source, error) { return due, nil },
		UpdateFetchedFunc: func(ctx context.Context, sourceID int64, nextFetch time.Time) error {
			return nil
		},
	}
	parser := &mocks.ParserMock{
		ParseFunc: func(ctx context.Context, url string) (*domain.ParsedSource, error) {
			mu.Lock()
			active++
			if active > maxActive {
				maxActive = active
			}
			mu.Unlock()

			time.Sleep(20 * time.Millisecond)

			mu.Lock()
			active--
			mu.Unlock()
			return &domain.ParsedSource{}, nil
		},
	}

	s := NewScheduler(Params{Sources: sources, Articles: &mocks.ArticleStoreMock{}, Parser: parser, MaxWorkers: 2})
	s.RefreshDue(context.Background())

	assert.Len(t, parser.ParseCalls(), sourceCount)
	assert.LessOrEqual(t, maxActive, 2, "concurrency bounded by MaxWorkers")
}

func TestScheduler_StartStop(t *testing.T) {
	var mu sync.Mutex
	listCalls := 0

	sources := &mocks.SourceStoreMock{
		ListDueFunc: func(ctx context.Context, limit int) ([]*domain.Source, error) {
			mu.Lock()
			listCalls++
			mu.Unlock()
			return nil, nil
		},
	}

	s := NewScheduler(Params{
		Sources:        sources,
		Articles:       &mocks.ArticleStoreMock{},
		Parser:         &mocks.ParserMock{},
		UpdateInterval: 50 * time.Millisecond,
	})

	s.Start(context.Background())
	time.Sleep(120 * time.Millisecond)
	s.Stop()

	mu.Lock()
	calls := listCalls
	mu.Unlock()
	assert.GreaterOrEqual(t, calls, 2, "immediate run plus at least one tick")
}
