package guidance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDietFor(t *testing.T) {
	t.Run("known dosha", func(t *testing.T) {
		p := DietFor("vata")
		require.NotNil(t, p)
		assert.Equal(t, "warm, moist, and soft foods", p.Eat.Description)
		assert.Equal(t, []string{"sweet", "sour", "salty"}, p.Eat.Tastes)
		assert.NotEmpty(t, p.Avoid.Examples)
		assert.NotEmpty(t, p.Beverages.Recommended)
		assert.Len(t, p.CookingTips, 5)
	})

	t.Run("case insensitive", func(t *testing.T) {
		require.NotNil(t, DietFor("Pitta"))
		require.NotNil(t, DietFor("KAPHA"))
	})

	t.Run("no plan for balanced or unknown", func(t *testing.T) {
		assert.Nil(t, DietFor("balanced"))
		assert.Nil(t, DietFor(""))
		assert.Nil(t, DietFor("tridosha"))
	})
}

func TestLifestyleFor(t *testing.T) {
	p := LifestyleFor("kapha")
	require.NotNil(t, p)
	assert.Contains(t, p.Routine[0], "Wake up early")
	assert.NotEmpty(t, p.Exercise)
	assert.NotEmpty(t, p.MentalHealth)
	assert.NotEmpty(t, p.Environment)
	assert.NotEmpty(t, p.Remedies)

	assert.Nil(t, LifestyleFor("balanced"))
}

func TestCharacteristicsFor(t *testing.T) {
	c := CharacteristicsFor("pitta")
	require.NotNil(t, c)
	assert.Equal(t, []string{"Fire", "Water"}, c.Elements)
	assert.NotEmpty(t, c.PhysicalTraits)
	assert.NotEmpty(t, c.PersonalityTraits)
	assert.NotEmpty(t, c.Functions)

	assert.Nil(t, CharacteristicsFor("unknown"))
}

func TestMatchImbalanceSigns(t *testing.T) {
	t.Run("mental signs", func(t *testing.T) {
		matches := MatchImbalanceSigns("my anxiety and restlessness are worse", "vata")
		require.Len(t, matches, 2)
		assert.Equal(t, "mental", matches[0].Type)
		assert.Equal(t, "Fear and anxiety", matches[0].Sign)
		assert.Equal(t, "Restlessness", matches[1].Sign)
	})

	t.Run("physical sign", func(t *testing.T) {
		matches := MatchImbalanceSigns("constipation for a week now", "vata")
		require.NotEmpty(t, matches)
		assert.Equal(t, "physical", matches[0].Type)
		assert.Equal(t, "Irregular bowel movement or constipation", matches[0].Sign)
	})

	t.Run("pitta heat signs", func(t *testing.T) {
		matches := MatchImbalanceSigns("burning sensation after meals", "pitta")
		require.NotEmpty(t, matches)
		assert.Equal(t, "Burning sensation", matches[0].Sign)
	})

	t.Run("no signs for calm message", func(t *testing.T) {
		assert.Empty(t, MatchImbalanceSigns("what teas do you suggest?", "vata"))
	})

	t.Run("unknown dosha", func(t *testing.T) {
		assert.Nil(t, MatchImbalanceSigns("anxiety", "balanced"))
	})
}

func TestKitchenRemedy(t *testing.T) {
	tests := []struct {
		name    string
		message string
		herb    string
	}{
		{"digestion", "my digestion is sluggish", "Ginger"},
		{"constipation", "constipated since monday", "Warm water"},
		{"acidity", "terrible heartburn after lunch", "Coriander"},
		{"sleep", "can't sleep at night", "Nutmeg"},
		{"cough", "dry cough won't go away", "Ginger-Honey"},
		{"joints", "knee joint hurts in the morning", "Ginger"},
		{"group order, fatigue before sleep", "tired and can't sleep", "Turmeric"},
		{"fallback daily wellness", "hello there", "Warm water"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := KitchenRemedy(tt.message)
			assert.Equal(t, tt.herb, r.Herb)
			assert.NotEmpty(t, r.Form)
			assert.NotEmpty(t, r.Rationale)
		})
	}

	t.Run("deterministic", func(t *testing.T) {
		first := KitchenRemedy("stress at work")
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, KitchenRemedy("stress at work"))
		}
	})
}
