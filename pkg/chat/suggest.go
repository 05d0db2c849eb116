package chat

import (
	"context"
	"fmt"
	"strings"
	"time"
)

var baseSuggestions = []string{
	"How can I improve my digestion naturally?",
	"What are some stress relief techniques?",
	"What should I eat for better sleep?",
	"How can I boost my immunity?",
}

var doshaSuggestions = map[string][]string{
	"vata": {
		"What foods help balance Vata dosha?",
		"How can I reduce anxiety and nervousness?",
		"What's good for dry skin and constipation?",
		"How to improve irregular digestion?",
	},
	"pitta": {
		"What foods cool down Pitta imbalance?",
		"How can I manage anger and irritability?",
		"What helps with acidity and inflammation?",
		"Best foods for Pitta in summer?",
	},
	"kapha": {
		"What foods reduce Kapha imbalance?",
		"How can I increase energy and motivation?",
		"What helps with weight management?",
		"How to reduce congestion naturally?",
	},
}

// followUps maps past symptom names to follow-up questions, checked in order
var followUps = []struct {
	symptoms []string
	question string
}{
	{[]string{"headache", "migraine"}, "Any updates on the headaches we discussed?"},
	{[]string{"insomnia", "sleep"}, "How is your sleep quality now?"},
	{[]string{"digestion", "bloating", "gas"}, "Has your digestion improved?"},
	{[]string{"stress", "anxiety"}, "How are you managing stress lately?"},
	{[]string{"pain", "joint"}, "Is the pain/discomfort better now?"},
}

var seasonalSuggestions = map[string]string{
	"spring": "What herbs are good for spring detox?",
	"summer": "What foods keep me cool in summer?",
	"fall":   "How to boost immunity for fall?",
	"winter": "What keeps me warm in winter?",
}

// Suggestions assembles prompt suggestions for the user: follow-ups on
// recent symptoms first, then dosha-specific questions, one seasonal
// question, and base questions to fill. Assembly is fully deterministic.
func (s *Service) Suggestions(ctx context.Context, userID string) ([]string, error) {
	recent, err := s.consultations.Recent(ctx, userID, 10)
	if err != nil {
		return nil, fmt.Errorf("load recent consultations: %w", err)
	}

	seen := map[string]bool{}
	for _, cons := range recent {
		for _, symptom := range cons.Symptoms {
			seen[strings.ToLower(symptom.Name)] = true
		}
	}

	suggestions := make([]string, 0, s.cfg.SuggestionCount)
	add := func(candidate string) {
		if len(suggestions) >= s.cfg.SuggestionCount {
			return
		}
		for _, existing := range suggestions {
			if existing == candidate {
				return
			}
		}
		suggestions = append(suggestions, candidate)
	}

	// follow-ups are the most relevant, cap at two
	topical := 0
	for _, fu := range followUps {
		if topical >= 2 {
			break
		}
		for _, name := range fu.symptoms {
			if seen[name] {
				add(fu.question)
				topical++
				break
			}
		}
	}

	profile := s.loadProfile(ctx, userID)
	if profile.Assessed {
		if list, ok := doshaSuggestions[strings.ToLower(profile.Dominant)]; ok {
			add(list[0])
			add(list[1])
		}
	}

	add(seasonalSuggestions[westernSeason(s.now())])

	for _, base := range baseSuggestions {
		add(base)
	}

	return suggestions, nil
}

// westernSeason maps the month to the four-season calendar used for
// seasonal suggestions
func westernSeason(t time.Time) string {
	switch t.Month() {
	case time.March, time.April, time.May:
		return "spring"
	case time.June, time.July, time.August:
		return "summer"
	case time.September, time.October, time.November:
		return "fall"
	default:
		return "winter"
	}
}
