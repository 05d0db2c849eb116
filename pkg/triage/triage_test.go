package triage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayurscope/ayurscope/pkg/domain"
)

func TestDetector_DetectRedFlag(t *testing.T) {
	d := NewDefaultDetector()

	tests := []struct {
		name     string
		message  string
		category string
		keyword  string
	}{
		{"chest pain", "I have severe chest pain since morning", "cardiac", "chest pain"},
		{"case insensitive", "SEVERE CHEST PAIN!!", "cardiac", "chest pain"},
		{"stroke", "my father has slurred speech and one side weak", "neurological", "slurred speech"},
		{"overdose", "I think I took too many pills", "poisoning", "took too many pills"},
		{"anaphylaxis", "her tongue swelling is getting worse", "allergic", "tongue swelling"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := d.DetectRedFlag(tt.message)
			require.NotNil(t, m)
			assert.Equal(t, tt.category, m.Category)
			assert.Equal(t, tt.keyword, m.Keyword)
			assert.Equal(t, "critical", m.Severity)
			assert.Contains(t, m.Message, "URGENT")
		})
	}

	t.Run("no match", func(t *testing.T) {
		assert.Nil(t, d.DetectRedFlag("I slept well and feel great"))
	})

	t.Run("first table entry wins", func(t *testing.T) {
		// message matches both cardiac and respiratory, cardiac is first
		m := d.DetectRedFlag("chest pain and can't breathe")
		require.NotNil(t, m)
		assert.Equal(t, "cardiac", m.Category)
	})
}

func TestDetector_DetectCautions(t *testing.T) {
	d := NewDefaultDetector()

	t.Run("single category", func(t *testing.T) {
		matches := d.DetectCautions("I'm pregnant and feeling bloated")
		require.Len(t, matches, 1)
		assert.Equal(t, "pregnancy", matches[0].Category)
		assert.Equal(t, "pregnant", matches[0].Keyword)
	})

	t.Run("one match per category", func(t *testing.T) {
		// "pregnant" and "pregnancy" are both in the pregnancy list
		matches := d.DetectCautions("pregnant, early pregnancy")
		require.Len(t, matches, 1)
		assert.Equal(t, "pregnant", matches[0].Keyword, "first keyword in the list wins")
	})

	t.Run("multiple categories collected", func(t *testing.T) {
		matches := d.DetectCautions("I'm pregnant and diabetic")
		require.Len(t, matches, 2)
		assert.Equal(t, "pregnancy", matches[0].Category)
		assert.Equal(t, "diabetes", matches[1].Category)
	})

	t.Run("substring matching is loose by design", func(t *testing.T) {
		matches := d.DetectCautions("we are expecting guests") // known false positive
		require.Len(t, matches, 1)
		assert.Equal(t, "pregnancy", matches[0].Category)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, d.DetectCautions("how do I improve my sleep?"))
	})
}

func TestDetector_Level(t *testing.T) {
	d := NewDefaultDetector()

	assert.Equal(t, domain.TriageUrgent, d.Level("I have severe chest pain"))
	assert.Equal(t, domain.TriageCaution, d.Level("I'm pregnant and feeling bloated"))
	assert.Equal(t, domain.TriageNone, d.Level("what should I eat for breakfast?"))

	// urgent takes precedence over caution
	assert.Equal(t, domain.TriageUrgent, d.Level("I'm pregnant and have chest pain"))
}

func TestDetector_CustomTables(t *testing.T) {
	d := NewDetector(
		[]Flag{{Category: "test", Severity: "critical", Keywords: []string{"boom"}, Message: "urgent test"}},
		[]Flag{{Category: "warn", Severity: "caution", Keywords: []string{"hmm"}, Message: "caution test"}},
	)

	require.NotNil(t, d.DetectRedFlag("boom goes the dynamite"))
	assert.Nil(t, d.DetectRedFlag("chest pain")) // default tables not in play
	assert.Len(t, d.DetectCautions("hmm, not sure"), 1)
}

func TestSafetyMessage(t *testing.T) {
	d := NewDefaultDetector()

	t.Run("red flag overrides cautions", func(t *testing.T) {
		red := d.DetectRedFlag("chest pain")
		cautions := d.DetectCautions("pregnant")
		msg := SafetyMessage(red, cautions)
		assert.Contains(t, msg, "Chest pain can be life-threatening")
		assert.Contains(t, msg, "cannot safely provide guidance")
		assert.NotContains(t, msg, "pregnancy")
	})

	t.Run("cautions concatenated in order", func(t *testing.T) {
		cautions := d.DetectCautions("I'm pregnant and diabetic")
		msg := SafetyMessage(nil, cautions)
		pregIdx := strings.Index(msg, "pregnancy")
		diabIdx := strings.Index(msg, "diabetes")
		assert.Positive(t, pregIdx)
		assert.Greater(t, diabIdx, pregIdx)
	})

	t.Run("empty for no flags", func(t *testing.T) {
		assert.Empty(t, SafetyMessage(nil, nil))
	})
}

func TestExtractSymptoms(t *testing.T) {
	t.Run("detects known symptoms", func(t *testing.T) {
		symptoms := ExtractSymptoms("I have a headache and feel very tired, can't sleep either")
		names := make([]string, len(symptoms))
		for i, s := range symptoms {
			names[i] = s.Name
		}
		assert.Contains(t, names, "headache")
		assert.Contains(t, names, "fatigue")
		assert.Contains(t, names, "insomnia")
	})

	t.Run("default severity", func(t *testing.T) {
		symptoms := ExtractSymptoms("bad cough")
		require.Len(t, symptoms, 1)
		assert.Equal(t, 5, symptoms[0].Severity)
	})

	t.Run("no symptoms", func(t *testing.T) {
		assert.Empty(t, ExtractSymptoms("tell me about the six tastes"))
	})
}

func TestIsHealthRelated(t *testing.T) {
	assert.True(t, IsHealthRelated("my stomach hurts after meals"))
	assert.True(t, IsHealthRelated("trouble with SLEEP lately"))
	assert.False(t, IsHealthRelated("what is ritucharya?"))
}
