package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/ayurscope/ayurscope/pkg/domain"
)

// ArticleRepository handles wellness article database operations
type ArticleRepository struct {
	db *sqlx.DB
}

// articleSQL represents an article for SQL operations
type articleSQL struct {
	ID        int64      `db:"id"`
	SourceID  int64      `db:"source_id"`
	GUID      string     `db:"guid"`
	Title     string     `db:"title"`
	Slug      string     `db:"slug"`
	Summary   string     `db:"summary"`
	Body      string     `db:"body"`
	Link      string     `db:"link"`
	Author    string     `db:"author"`
	Published *time.Time `db:"published"`
	Status    string     `db:"status"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}

// NewArticleRepository creates a new article repository
func NewArticleRepository(database *sqlx.DB) *ArticleRepository {
	return &ArticleRepository{db: database}
}

// ErrArticleNotFound is returned when no article matches the id
var ErrArticleNotFound = errors.New("article not found")

// Upsert inserts an article, ignoring duplicates by (source_id, guid)
func (r *ArticleRepository) Upsert(ctx context.Context, article *domain.Article) error {
	if article.Slug == "" {
		article.Slug = slugify(article.Title)
	}

	sqlArticle := r.toSQLArticle(article)
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO articles (source_id, guid, title, slug, summary, body, link, author, published, status)
			VALUES (:source_id, :guid, :title, :slug, :summary, :body, :link, :author, :published, :status)
			ON CONFLICT(source_id, guid) DO NOTHING
		`
		_, err := r.db.NamedExecContext(ctx, query, sqlArticle)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("upsert article: %w", err)}
		}
		return nil
	})
}

// Get retrieves an article by ID
func (r *ArticleRepository) Get(ctx context.Context, id int64) (*domain.Article, error) {
	var sqlArticle articleSQL
	err := r.db.GetContext(ctx, &sqlArticle, "SELECT * FROM articles WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrArticleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	return r.toDomainArticle(&sqlArticle), nil
}

// GetByIDs retrieves articles by their IDs, preserving publish order
func (r *ArticleRepository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Article, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In("SELECT * FROM articles WHERE id IN (?) ORDER BY published DESC", ids)
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var sqlArticles []articleSQL
	err = r.db.SelectContext(ctx, &sqlArticles, r.db.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("get articles by ids: %w", err)
	}

	articles := make([]*domain.Article, len(sqlArticles))
	for i, a := range sqlArticles {
		articles[i] = r.toDomainArticle(&a)
	}
	return articles, nil
}

// ListPublished retrieves published articles, newest first
func (r *ArticleRepository) ListPublished(ctx context.Context, limit int) ([]*domain.Article, error) {
	query := `
		SELECT * FROM articles
		WHERE status = 'published'
		ORDER BY published DESC
		LIMIT ?
	`
	var sqlArticles []articleSQL
	err := r.db.SelectContext(ctx, &sqlArticles, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list published articles: %w", err)
	}

	articles := make([]*domain.Article, len(sqlArticles))
	for i, a := range sqlArticles {
		articles[i] = r.toDomainArticle(&a)
	}
	return articles, nil
}

// SetStatus moves an article between draft and published
func (r *ArticleRepository) SetStatus(ctx context.Context, id int64, status string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := "UPDATE articles SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?"
		result, err := r.db.ExecContext(ctx, query, status, id)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("set article status: %w", err)}
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return &criticalError{err: fmt.Errorf("rows affected: %w", err)}
		}
		if rows == 0 {
			return &criticalError{err: ErrArticleNotFound}
		}
		return nil
	})
}

func (r *ArticleRepository) toSQLArticle(a *domain.Article) *articleSQL {
	sqlArticle := &articleSQL{
		SourceID: a.SourceID,
		GUID:     a.GUID,
		Title:    a.Title,
		Slug:     a.Slug,
		Summary:  a.Summary,
		Body:     a.Body,
		Link:     a.Link,
		Author:   a.Author,
		Status:   a.Status,
	}
	if sqlArticle.Status == "" {
		sqlArticle.Status = "draft"
	}
	if !a.Published.IsZero() {
		published := a.Published
		sqlArticle.Published = &published
	}
	return sqlArticle
}

func (r *ArticleRepository) toDomainArticle(a *articleSQL) *domain.Article {
	article := &domain.Article{
		ID:        a.ID,
		SourceID:  a.SourceID,
		GUID:      a.GUID,
		Title:     a.Title,
		Slug:      a.Slug,
		Summary:   a.Summary,
		Body:      a.Body,
		Link:      a.Link,
		Author:    a.Author,
		Status:    a.Status,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
	if a.Published != nil {
		article.Published = *a.Published
	}
	return article
}

// slugify lowercases a title and replaces non-alphanumeric runs with dashes
func slugify(title string) string {
	var b strings.Builder
	lastDash := true // suppress leading dash
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteRune('-')
			lastDash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
