package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/ayurscope/ayurscope/pkg/domain"
)

// SourceRepository handles article source database operations
type SourceRepository struct {
	db *sqlx.DB
}

// sourceSQL represents an article source for SQL operations
type sourceSQL struct {
	ID            int64      `db:"id"`
	URL           string     `db:"url"`
	Title         string     `db:"title"`
	FetchInterval int        `db:"fetch_interval"`
	LastFetched   *time.Time `db:"last_fetched"`
	NextFetch     *time.Time `db:"next_fetch"`
	ErrorCount    int        `db:"error_count"`
	LastError     string     `db:"last_error"`
	Enabled       bool       `db:"enabled"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
}

// NewSourceRepository creates a new source repository
func NewSourceRepository(database *sqlx.DB) *SourceRepository {
	return &SourceRepository{db: database}
}

// ErrSourceNotFound is returned when no source matches the id
var ErrSourceNotFound = errors.New("source not found")

// Create inserts a new source and sets its ID
func (r *SourceRepository) Create(ctx context.Context, source *domain.Source) error {
	sqlSource := &sourceSQL{
		URL:           source.URL,
		Title:         source.Title,
		FetchInterval: int(source.FetchInterval.Seconds()),
		Enabled:       source.Enabled,
	}
	if sqlSource.FetchInterval <= 0 {
		sqlSource.FetchInterval = 3600
	}

	query := `
		INSERT INTO sources (url, title, fetch_interval, enabled)
		VALUES (:url, :title, :fetch_interval, :enabled)
	`
	result, err := r.db.NamedExecContext(ctx, query, sqlSource)
	if err != nil {
		return fmt.Errorf("create source: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}
	source.ID = id
	return nil
}

// Ensure inserts a source or refreshes the title and interval of an
// existing one, keyed by URL. The enabled flag of an existing source is
// left alone so an operator's disable survives restarts. Used for seeding
// configured feeds at startup, safe to call repeatedly.
func (r *SourceRepository) Ensure(ctx context.Context, source *domain.Source) error {
	sqlSource := &sourceSQL{
		URL:           source.URL,
		Title:         source.Title,
		FetchInterval: int(source.FetchInterval.Seconds()),
		Enabled:       source.Enabled,
	}
	if sqlSource.FetchInterval <= 0 {
		sqlSource.FetchInterval = 3600
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO sources (url, title, fetch_interval, enabled)
			VALUES (:url, :title, :fetch_interval, :enabled)
			ON CONFLICT(url) DO UPDATE SET
				title = excluded.title,
				fetch_interval = excluded.fetch_interval,
				updated_at = CURRENT_TIMESTAMP
		`
		_, err := r.db.NamedExecContext(ctx, query, sqlSource)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("ensure source: %w", err)}
		}
		return nil
	})
}

// Get retrieves a source by ID
func (r *SourceRepository) Get(ctx context.Context, id int64) (*domain.Source, error) {
	var sqlSource sourceSQL
	err := r.db.GetContext(ctx, &sqlSource, "SELECT * FROM sources WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSourceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get source: %w", err)
	}
	return r.toDomainSource(&sqlSource), nil
}

// List retrieves sources with optional filtering to enabled only
func (r *SourceRepository) List(ctx context.Context, enabledOnly bool) ([]*domain.Source, error) {
	query := "SELECT * FROM sources"
	if enabledOnly {
		query += " WHERE enabled = 1"
	}
	query += " ORDER BY title"

	var sqlSources []sourceSQL
	err := r.db.SelectContext(ctx, &sqlSources, query)
	if err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}

	sources := make([]*domain.Source, len(sqlSources))
	for i, s := range sqlSources {
		sources[i] = r.toDomainSource(&s)
	}
	return sources, nil
}

// ListDue retrieves enabled sources that need fetching
func (r *SourceRepository) ListDue(ctx context.Context, limit int) ([]*domain.Source, error) {
	query := `
		SELECT * FROM sources
		WHERE enabled = 1
		AND (next_fetch IS NULL OR next_fetch <= datetime('now'))
		ORDER BY next_fetch ASC
		LIMIT ?
	`
	var sqlSources []sourceSQL
	err := r.db.SelectContext(ctx, &sqlSources, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list due sources: %w", err)
	}

	sources := make([]*domain.Source, len(sqlSources))
	for i, s := range sqlSources {
		sources[i] = r.toDomainSource(&s)
	}
	return sources, nil
}

// UpdateFetched updates a source after a successful fetch
func (r *SourceRepository) UpdateFetched(ctx context.Context, sourceID int64, nextFetch time.Time) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			UPDATE sources
			SET last_fetched = datetime('now'),
			    next_fetch = ?,
			    error_count = 0,
			    last_error = '',
			    updated_at = CURRENT_TIMESTAMP
			WHERE id = ?
		`
		_, err := r.db.ExecContext(ctx, query, nextFetch, sourceID)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("update source fetched: %w", err)}
		}
		return nil
	})
}

// UpdateError updates a source after a fetch error
func (r *SourceRepository) UpdateError(ctx context.Context, sourceID int64, errMsg string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			UPDATE sources
			SET error_count = error_count + 1,
			    last_error = ?,
			    updated_at = CURRENT_TIMESTAMP
			WHERE id = ?
		`
		_, err := r.db.ExecContext(ctx, query, errMsg, sourceID)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("update source error: %w", err)}
		}
		return nil
	})
}

// SetEnabled enables or disables a source
func (r *SourceRepository) SetEnabled(ctx context.Context, sourceID int64, enabled bool) error {
	result, err := r.db.ExecContext(ctx, "UPDATE sources SET enabled = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?", enabled, sourceID)
	if err != nil {
		return fmt.Errorf("set source enabled: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return ErrSourceNotFound
	}
	return nil
}

func (r *SourceRepository) toDomainSource(s *sourceSQL) *domain.Source {
	return &domain.Source{
		ID:            s.ID,
		URL:           s.URL,
		Title:         s.Title,
		FetchInterval: time.Duration(s.FetchInterval) * time.Second,
		LastFetched:   s.LastFetched,
		NextFetch:     s.NextFetch,
		ErrorCount:    s.ErrorCount,
		LastError:     s.LastError,
		Enabled:       s.Enabled,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
