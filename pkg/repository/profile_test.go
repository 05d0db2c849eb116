package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayurscope/ayurscope/pkg/domain"
)

func TestProfileRepository_UpsertAndGet(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	dob := time.Date(1990, time.March, 5, 0, 0, 0, 0, time.UTC)

	profile := &domain.Profile{
		UserID: "asha",
		Name:   "Asha",
		DOB:    &dob,
		Medical: domain.MedicalHistory{
			Medications: []string{"triphala"},
			Allergies:   []string{"peanuts"},
		},
	}
	require.NoError(t, repos.Profile.Upsert(ctx, profile))

	got, err := repos.Profile.Get(ctx, "asha")
	require.NoError(t, err)
	assert.Equal(t, "Asha", got.Name)
	assert.False(t, got.Assessed)
	assert.Equal(t, []string{"triphala"}, got.Medical.Medications)
	assert.Equal(t, []string{"peanuts"}, got.Medical.Allergies)
	assert.Empty(t, got.Medical.ChronicConditions)
	require.NotNil(t, got.DOB)
	assert.Equal(t, 1990, got.DOB.Year())

	t.Run("upsert updates identity without touching scores", func(t *testing.T) {
		require.NoError(t, repos.Profile.UpdateScores(ctx, "asha", domain.DoshaScores{Vata: 55, Pitta: 30, Kapha: 15}, "vata"))

		profile.Name = "Asha K"
		require.NoError(t, repos.Profile.Upsert(ctx, profile))

		got, err := repos.Profile.Get(ctx, "asha")
		require.NoError(t, err)
		assert.Equal(t, "Asha K", got.Name)
		assert.True(t, got.Assessed)
		assert.Equal(t, domain.DoshaScores{Vata: 55, Pitta: 30, Kapha: 15}, got.Scores)
		assert.Equal(t, "vata", got.Dominant)
	})
}

func TestProfileRepository_GetNotFound(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repos.Profile.Get(context.Background(), "nobody")
	require.ErrorIs(t, err, ErrProfileNotFound)
}

func TestProfileRepository_UpdateScores(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("creates row for unknown user", func(t *testing.T) {
		err := repos.Profile.UpdateScores(ctx, "fresh", domain.DoshaScores{Vata: 40, Pitta: 35, Kapha: 25}, "vata")
		require.NoError(t, err)

		got, err := repos.Profile.Get(ctx, "fresh")
		require.NoError(t, err)
		assert.True(t, got.Assessed)
		assert.Equal(t, 40, got.Scores.Vata)
		require.NotNil(t, got.AssessedAt)
	})

	t.Run("overwrites previous assessment", func(t *testing.T) {
		err := repos.Profile.UpdateScores(ctx, "fresh", domain.DoshaScores{Vata: 20, Pitta: 50, Kapha: 30}, "pitta")
		require.NoError(t, err)

		got, err := repos.Profile.Get(ctx, "fresh")
		require.NoError(t, err)
		assert.Equal(t, domain.DoshaScores{Vata: 20, Pitta: 50, Kapha: 30}, got.Scores)
		assert.Equal(t, "pitta", got.Dominant)
	})
}

func TestProfileRepository_UpsertReplacesMedical(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	profile := &domain.Profile{
		UserID: "asha",
		Name:   "Asha",
		Medical: domain.MedicalHistory{
			Medications: []string{"ashwagandha"},
			Allergies:   []string{"peanuts"},
		},
	}
	require.NoError(t, repos.Profile.Upsert(ctx, profile))

	profile.Medical = domain.MedicalHistory{
		Medications:       []string{"triphala"},
		ChronicConditions: []string{"hypertension"},
	}
	require.NoError(t, repos.Profile.Upsert(ctx, profile))

	got, err := repos.Profile.Get(ctx, "asha")
	require.NoError(t, err)
	assert.Equal(t, []string{"triphala"}, got.Medical.Medications)
	assert.Equal(t, []string{"hypertension"}, got.Medical.ChronicConditions)
	assert.Empty(t, got.Medical.Allergies, "dropped list replaced, not merged")
}
