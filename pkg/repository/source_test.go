package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayurscope/ayurscope/pkg/domain"
)

func TestSourceRepository_ListDue(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	now := time.Now().UTC()

	recent := &domain.Source{URL: "https://example.com/recent.xml", Title: "Recent", Enabled: true}
	stale := &domain.Source{URL: "https://example.com/stale.xml", Title: "Stale", Enabled: true}
	disabled := &domain.Source{URL: "https://example.com/disabled.xml", Title: "Disabled", Enabled: false}
	never := &domain.Source{URL: "https://example.com/never.xml", Title: "Never Fetched", Enabled: true}

	for _, s := range []*domain.Source{recent, stale, disabled, never} {
		require.NoError(t, repos.Source.Create(ctx, s))
	}

	// recent was just fetched, stale is overdue
	require.NoError(t, repos.Source.UpdateFetched(ctx, recent.ID, now.Add(2*time.Hour)))
	require.NoError(t, repos.Source.UpdateFetched(ctx, stale.ID, now.Add(-2*time.Hour)))

	due, err := repos.Source.ListDue(ctx, 10)
	require.NoError(t, err)
	require.Len(t, due, 2)

	urls := []string{due[0].URL, due[1].URL}
	assert.Contains(t, urls, stale.URL)
	assert.Contains(t, urls, never.URL)
}

func TestSourceRepository_CreateAndGet(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	source := &domain.Source{
		URL:           "https://example.com/feed.xml",
		Title:         "Wellness Feed",
		FetchInterval: 30 * time.Minute,
		Enabled:       true,
	}
	require.NoError(t, repos.Source.Create(ctx, source))
	require.NotZero(t, source.ID)

	got, err := repos.Source.Get(ctx, source.ID)
	require.NoError(t, err)
	assert.Equal(t, "Wellness Feed", got.Title)
	assert.Equal(t, 30*time.Minute, got.FetchInterval)
	assert.True(t, got.Enabled)
	assert.Nil(t, got.LastFetched)

	t.Run("zero interval gets default", func(t *testing.T) {
		s := &domain.Source{URL: "https://example.com/other.xml", Title: "Other", Enabled: true}
		require.NoError(t, repos.Source.Create(ctx, s))

		got, err := repos.Source.Get(ctx, s.ID)
		require.NoError(t, err)
		assert.Equal(t, time.Hour, got.FetchInterval)
	})

	t.Run("duplicate url rejected", func(t *testing.T) {
		dup := &domain.Source{URL: "https://example.com/feed.xml", Title: "Dup", Enabled: true}
		require.Error(t, repos.Source.Create(ctx, dup))
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := repos.Source.Get(ctx, 9999)
		require.ErrorIs(t, err, ErrSourceNotFound)
	})
}

func TestSourceRepository_Ensure(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	source := &domain.Source{
		URL:           "https://example.com/feed.xml",
		Title:         "Wellness Feed",
		FetchInterval: 30 * time.Minute,
		Enabled:       true,
	}
	require.NoError(t, repos.Source.Ensure(ctx, source))

	all, err := repos.Source.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Wellness Feed", all[0].Title)
	assert.Equal(t, 30*time.Minute, all[0].FetchInterval)
	assert.True(t, all[0].Enabled)

	t.Run("repeat refreshes title and interval without duplicating", func(t *testing.T) {
		update := &domain.Source{
			URL:           "https://example.com/feed.xml",
			Title:         "Wellness Feed Renamed",
			FetchInterval: time.Hour,
			Enabled:       true,
		}
		require.NoError(t, repos.Source.Ensure(ctx, update))

		all, err := repos.Source.List(ctx, false)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, "Wellness Feed Renamed", all[0].Title)
		assert.Equal(t, time.Hour, all[0].FetchInterval)
	})

	t.Run("disabled source stays disabled", func(t *testing.T) {
		require.NoError(t, repos.Source.SetEnabled(ctx, all[0].ID, false))

		require.NoError(t, repos.Source.Ensure(ctx, source))

		got, err := repos.Source.Get(ctx, all[0].ID)
		require.NoError(t, err)
		assert.False(t, got.Enabled)
	})

	t.Run("zero interval gets default", func(t *testing.T) {
		s := &domain.Source{URL: "https://example.com/other.xml", Title: "Other", Enabled: true}
		require.NoError(t, repos.Source.Ensure(ctx, s))

		all, err := repos.Source.List(ctx, false)
		require.NoError(t, err)
		require.Len(t, all, 2)
		for _, got := range all {
			if got.URL == s.URL {
				assert.Equal(t, time.Hour, got.FetchInterval)
			}
		}
	})
}

func TestSourceRepository_UpdateFetchOutcome(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	source := &domain.Source{URL: "https://example.com/feed.xml", Title: "Feed", Enabled: true}
	require.NoError(t, repos.Source.Create(ctx, source))

	require.NoError(t, repos.Source.UpdateError(ctx, source.ID, "connection refused"))
	require.NoError(t, repos.Source.UpdateError(ctx, source.ID, "timeout"))

	got, err := repos.Source.Get(ctx, source.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.ErrorCount)
	assert.Equal(t, "timeout", got.LastError)

	// a successful fetch clears the error state
	next := time.Now().UTC().Add(time.Hour)
	require.NoError(t, repos.Source.UpdateFetched(ctx, source.ID, next))

	got, err = repos.Source.Get(ctx, source.ID)
	require.NoError(t, err)
	assert.Zero(t, got.ErrorCount)
	assert.Empty(t, got.LastError)
	require.NotNil(t, got.LastFetched)
	require.NotNil(t, got.NextFetch)
}

func TestSourceRepository_SetEnabled(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	source := &domain.Source{URL: "https://example.com/feed.xml", Title: "Feed", Enabled: true}
	require.NoError(t, repos.Source.Create(ctx, source))

	require.NoError(t, repos.Source.SetEnabled(ctx, source.ID, false))

	enabled, err := repos.Source.List(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, enabled)

	all, err := repos.Source.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	t.Run("unknown id rejected", func(t *testing.T) {
		require.ErrorIs(t, repos.Source.SetEnabled(ctx, 9999, true), ErrSourceNotFound)
	})
}
