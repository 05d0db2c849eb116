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

// ProfileRepository handles user profile database operations
type ProfileRepository struct {
	db *sqlx.DB
}

// profileSQL represents a profile for SQL operations
type profileSQL struct {
	UserID            string     `db:"user_id"`
	Name              string     `db:"name"`
	DOB               *time.Time `db:"dob"`
	Assessed          bool       `db:"assessed"`
	Vata              int        `db:"vata"`
	Pitta             int        `db:"pitta"`
	Kapha             int        `db:"kapha"`
	Dominant          string     `db:"dominant"`
	AssessedAt        *time.Time `db:"assessed_at"`
	Medications       stringsSQL `db:"medications"`
	Allergies         stringsSQL `db:"allergies"`
	ChronicConditions stringsSQL `db:"chronic_conditions"`
	CreatedAt         time.Time  `db:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at"`
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(database *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: database}
}

// ErrProfileNotFound is returned when no profile exists for a user
var ErrProfileNotFound = errors.New("profile not found")

// Get retrieves a profile by user ID
func (r *ProfileRepository) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	var sqlProfile profileSQL
	err := r.db.GetContext(ctx, &sqlProfile, "SELECT * FROM profiles WHERE user_id = ?", userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return r.toDomainProfile(&sqlProfile), nil
}

// Upsert creates a profile or updates the mutable identity fields of an
// existing one. Dosha scores are left untouched, UpdateScores owns those.
func (r *ProfileRepository) Upsert(ctx context.Context, profile *domain.Profile) error {
	sqlProfile := &profileSQL{
		UserID:            profile.UserID,
		Name:              profile.Name,
		DOB:               profile.DOB,
		Medications:       stringsSQL(profile.Medical.Medications),
		Allergies:         stringsSQL(profile.Medical.Allergies),
		ChronicConditions: stringsSQL(profile.Medical.ChronicConditions),
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO profiles (user_id, name, dob, medications, allergies, chronic_conditions)
			VALUES (:user_id, :name, :dob, :medications, :allergies, :chronic_conditions)
			ON CONFLICT(user_id) DO UPDATE SET
				name = excluded.name,
				dob = excluded.dob,
				medications = excluded.medications,
				allergies = excluded.allergies,
				chronic_conditions = excluded.chronic_conditions,
				updated_at = CURRENT_TIMESTAMP
		`
		_, err := r.db.NamedExecContext(ctx, query, sqlProfile)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("upsert profile: %w", err)}
		}
		return nil
	})
}

// UpdateScores stores a new constitution tally and marks the profile assessed.
// The row is created first if the user has never saved a profile.
func (r *ProfileRepository) UpdateScores(ctx context.Context, userID string, scores domain.DoshaScores, dominant string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO profiles (user_id, assessed, vata, pitta, kapha, dominant, assessed_at)
			VALUES (?, 1, ?, ?, ?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT(user_id) DO UPDATE SET
				assessed = 1,
				vata = excluded.vata,
				pitta = excluded.pitta,
				kapha = excluded.kapha,
				dominant = excluded.dominant,
				assessed_at = CURRENT_TIMESTAMP,
				updated_at = CURRENT_TIMESTAMP
		`
		_, err := r.db.ExecContext(ctx, query, userID, scores.Vata, scores.Pitta, scores.Kapha, dominant)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("update scores: %w", err)}
		}
		return nil
	})
}

// toDomainProfile converts SQL profile to domain profile
func (r *ProfileRepository) toDomainProfile(p *profileSQL) *domain.Profile {
	return &domain.Profile{
		UserID:     p.UserID,
		Name:       p.Name,
		DOB:        p.DOB,
		Assessed:   p.Assessed,
		Scores:     domain.DoshaScores{Vata: p.Vata, Pitta: p.Pitta, Kapha: p.Kapha},
		Dominant:   p.Dominant,
		AssessedAt: p.AssessedAt,
		Medical: domain.MedicalHistory{
			Medications:       p.Medications,
			Allergies:         p.Allergies,
			ChronicConditions: p.ChronicConditions,
		},
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
