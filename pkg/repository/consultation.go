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

// ConsultationRepository handles the append-only consultation log
type ConsultationRepository struct {
	db *sqlx.DB
}

// consultationSQL represents a consultation for SQL operations
type consultationSQL struct {
	ID              int64       `db:"id"`
	UserID          string      `db:"user_id"`
	Message         string      `db:"message"`
	Symptoms        symptomsSQL `db:"symptoms"`
	Vitals          vitalsSQL   `db:"vitals"`
	Season          string      `db:"season"`
	Response        string      `db:"response"`
	TriageLevel     string      `db:"triage_level"`
	RedFlags        flagsSQL    `db:"red_flags"`
	CautionFlags    flagsSQL    `db:"caution_flags"`
	ArticleIDs      idsSQL      `db:"article_ids"`
	FeedbackHelpful *bool       `db:"feedback_helpful"`
	FeedbackRating  *int        `db:"feedback_rating"`
	FeedbackComment *string     `db:"feedback_comment"`
	FeedbackAt      *time.Time  `db:"feedback_at"`
	CreatedAt       time.Time   `db:"created_at"`
}

// NewConsultationRepository creates a new consultation repository
func NewConsultationRepository(database *sqlx.DB) *ConsultationRepository {
	return &ConsultationRepository{db: database}
}

// ErrConsultationNotFound is returned when no consultation matches the id and user
var ErrConsultationNotFound = errors.New("consultation not found")

// Create inserts a new consultation and sets its ID
func (r *ConsultationRepository) Create(ctx context.Context, c *domain.Consultation) error {
	sqlCons := &consultationSQL{
		UserID:       c.UserID,
		Message:      c.Message,
		Symptoms:     symptomsSQL(c.Symptoms),
		Vitals:       vitalsSQL{Vitals: c.Vitals},
		Season:       c.Season,
		Response:     c.Response,
		TriageLevel:  string(c.TriageLevel),
		RedFlags:     flagsSQL(c.RedFlags),
		CautionFlags: flagsSQL(c.CautionFlags),
		ArticleIDs:   idsSQL(c.ArticleIDs),
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO consultations (user_id, message, symptoms, vitals, season, response,
				triage_level, red_flags, caution_flags, article_ids)
			VALUES (:user_id, :message, :symptoms, :vitals, :season, :response,
				:triage_level, :red_flags, :caution_flags, :article_ids)
		`
		result, err := r.db.NamedExecContext(ctx, query, sqlCons)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("create consultation: %w", err)}
		}

		id, err := result.LastInsertId()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get insert id: %w", err)}
		}
		c.ID = id
		return nil
	})
}

// Get retrieves a single consultation, scoped to its owner
func (r *ConsultationRepository) Get(ctx context.Context, id int64, userID string) (*domain.Consultation, error) {
	var sqlCons consultationSQL
	err := r.db.GetContext(ctx, &sqlCons, "SELECT * FROM consultations WHERE id = ? AND user_id = ?", id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConsultationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get consultation: %w", err)
	}
	return r.toDomainConsultation(&sqlCons), nil
}

// List retrieves a user's consultations, newest first
func (r *ConsultationRepository) List(ctx context.Context, userID string, limit, offset int) ([]*domain.Consultation, error) {
	query := `
		SELECT * FROM consultations
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?
	`
	var sqlConsultations []consultationSQL
	err := r.db.SelectContext(ctx, &sqlConsultations, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list consultations: %w", err)
	}

	consultations := make([]*domain.Consultation, len(sqlConsultations))
	for i, c := range sqlConsultations {
		consultations[i] = r.toDomainConsultation(&c)
	}
	return consultations, nil
}

// Count returns the total number of consultations for a user
func (r *ConsultationRepository) Count(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM consultations WHERE user_id = ?", userID)
	if err != nil {
		return 0, fmt.Errorf("count consultations: %w", err)
	}
	return count, nil
}

// SetFeedback records feedback on a consultation. Feedback is the only
// part of the log mutable after creation.
func (r *ConsultationRepository) SetFeedback(ctx context.Context, id int64, userID string, fb domain.Feedback) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			UPDATE consultations
			SET feedback_helpful = ?, feedback_rating = ?, feedback_comment = ?, feedback_at = ?
			WHERE id = ? AND user_id = ?
		`
		result, err := r.db.ExecContext(ctx, query, fb.Helpful, fb.Rating, fb.Comment, fb.At, id, userID)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("set feedback: %w", err)}
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return &criticalError{err: fmt.Errorf("rows affected: %w", err)}
		}
		if rows == 0 {
			return &criticalError{err: ErrConsultationNotFound}
		}
		return nil
	})
}

// RecentExchanges returns the user's last n exchanges in chronological
// order, ready for prompt history
func (r *ConsultationRepository) RecentExchanges(ctx context.Context, userID string, n int) ([]domain.Exchange, error) {
	query := `
		SELECT * FROM consultations
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`
	var sqlConsultations []consultationSQL
	err := r.db.SelectContext(ctx, &sqlConsultations, query, userID, n)
	if err != nil {
		return nil, fmt.Errorf("recent exchanges: %w", err)
	}

	// query returns newest first, history wants oldest first
	exchanges := make([]domain.Exchange, len(sqlConsultations))
	for i, c := range sqlConsultations {
		exchanges[len(sqlConsultations)-1-i] = domain.Exchange{
			Date:     c.CreatedAt,
			UserSaid: c.Message,
			Reply:    c.Response,
			Triage:   domain.TriageLevel(c.TriageLevel),
		}
	}
	return exchanges, nil
}

// Recent returns the user's last n consultations, newest first
func (r *ConsultationRepository) Recent(ctx context.Context, userID string, n int) ([]*domain.Consultation, error) {
	return r.List(ctx, userID, n, 0)
}

// toDomainConsultation converts SQL consultation to domain consultation
func (r *ConsultationRepository) toDomainConsultation(c *consultationSQL) *domain.Consultation {
	cons := &domain.Consultation{
		ID:           c.ID,
		UserID:       c.UserID,
		Message:      c.Message,
		Symptoms:     c.Symptoms,
		Vitals:       c.Vitals.Vitals,
		Season:       c.Season,
		Response:     c.Response,
		TriageLevel:  domain.TriageLevel(c.TriageLevel),
		RedFlags:     c.RedFlags,
		CautionFlags: c.CautionFlags,
		ArticleIDs:   c.ArticleIDs,
		CreatedAt:    c.CreatedAt,
	}

	if c.FeedbackAt != nil {
		fb := domain.Feedback{At: *c.FeedbackAt}
		if c.FeedbackHelpful != nil {
			fb.Helpful = *c.FeedbackHelpful
		}
		if c.FeedbackRating != nil {
			fb.Rating = *c.FeedbackRating
		}
		if c.FeedbackComment != nil {
			fb.Comment = *c.FeedbackComment
		}
		cons.Feedback = &fb
	}

	return cons
}
