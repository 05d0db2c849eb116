// Package guidance holds the ayurvedic reference tables: per-dosha diet
// and lifestyle plans, imbalance signs, constitutional characteristics
// and the kitchen remedy catalog. All tables are fixed at compile time
// and lookups never mutate them.
package guidance

import "strings"

// FoodGuide describes a group of foods to favor or avoid
type FoodGuide struct {
	Description string
	Examples    []string
	Tastes      []string
	Temperature string
	Texture     string
}

// BeverageGuide lists drinks to favor and avoid
type BeverageGuide struct {
	Recommended []string
	Avoid       []string
}

// DietPlan is the complete dietary guideline for one dosha
type DietPlan struct {
	Eat         FoodGuide
	Avoid       FoodGuide
	Beverages   BeverageGuide
	CookingTips []string
}

// LifestylePlan groups daily-living recommendations for one dosha
type LifestylePlan struct {
	Routine      []string
	Exercise     []string
	MentalHealth []string
	Environment  []string
	Remedies     []string
}

// ImbalanceSigns lists the symptoms of an aggravated dosha
type ImbalanceSigns struct {
	Physical []string
	Mental   []string
	Diseases []string
}

// SignMatch is an imbalance sign detected in a user message
type SignMatch struct {
	Type string // "physical" or "mental"
	Sign string
}

// Traits describes the constitutional profile of one dosha
type Traits struct {
	Elements          []string
	Location          string
	Qualities         string
	BodyType          string
	PhysicalTraits    []string
	PersonalityTraits []string
	Functions         string
}

// Remedy is a safe household ingredient with its ayurvedic rationale
type Remedy struct {
	Herb      string
	Form      string
	Dosha     string
	Rationale string
}

// DietFor returns the dietary plan for the given dosha label,
// nil for unknown or "balanced" labels
func DietFor(dosha string) *DietPlan {
	if p, ok := dietPlans[strings.ToLower(dosha)]; ok {
		return &p
	}
	return nil
}

// LifestyleFor returns the lifestyle plan for the given dosha label,
// nil for unknown or "balanced" labels
func LifestyleFor(dosha string) *LifestylePlan {
	if p, ok := lifestylePlans[strings.ToLower(dosha)]; ok {
		return &p
	}
	return nil
}

// CharacteristicsFor returns the constitutional traits for the given
// dosha label, nil for unknown labels
func CharacteristicsFor(dosha string) *Traits {
	if t, ok := doshaTraits[strings.ToLower(dosha)]; ok {
		return &t
	}
	return nil
}

// MatchImbalanceSigns checks the message against the imbalance signs of
// the given dosha. A sign matches when any word of its text appears in
// the message, substring matching without word boundaries, deliberately
// loose. Unknown dosha labels produce no matches.
func MatchImbalanceSigns(message, dosha string) []SignMatch {
	signs, ok := imbalanceSigns[strings.ToLower(dosha)]
	if !ok {
		return nil
	}

	lower := strings.ToLower(message)
	var matched []SignMatch
	for _, sign := range signs.Physical {
		if anyWordContained(lower, sign) {
			matched = append(matched, SignMatch{Type: "physical", Sign: sign})
		}
	}
	for _, sign := range signs.Mental {
		if anyWordContained(lower, sign) {
			matched = append(matched, SignMatch{Type: "mental", Sign: sign})
		}
	}
	return matched
}

func anyWordContained(lowerMessage, sign string) bool {
	for _, word := range strings.Fields(strings.ToLower(sign)) {
		// short connective words match almost anything, skip them
		if len(word) < 4 {
			continue
		}
		if strings.Contains(lowerMessage, word) {
			return true
		}
	}
	return false
}

// KitchenRemedy picks a remedy for the message: the first remedy of the
// first symptom group whose keywords match, or the first daily-wellness
// remedy when nothing matches. The choice is deterministic, callers gate
// on health-relatedness before showing it.
func KitchenRemedy(message string) Remedy {
	lower := strings.ToLower(message)
	for _, g := range remedyGroups {
		for _, kw := range g.keywords {
			if strings.Contains(lower, kw) {
				return g.remedies[0]
			}
		}
	}
	return dailyWellness[0]
}
