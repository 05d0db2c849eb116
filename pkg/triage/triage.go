package triage

import (
	"strings"

	"github.com/ayurscope/ayurscope/pkg/domain"
)

// Flag describes one entry of a safety keyword table
type Flag struct {
	Category string
	Severity string
	Keywords []string
	Message  string
}

// Match is a detected safety flag with the keyword that triggered it
type Match struct {
	Category string
	Severity string
	Keyword  string
	Message  string
}

// FlagMatch converts a match to its domain representation
func (m Match) FlagMatch() domain.FlagMatch {
	return domain.FlagMatch{Category: m.Category, Keyword: m.Keyword, Severity: m.Severity}
}

// Detector screens free-text messages against red-flag and caution tables.
// Matching is case-insensitive substring containment with no word-boundary
// enforcement, deliberately loose so "pregnant" also catches "pregnancy".
type Detector struct {
	redFlags     []Flag
	cautionFlags []Flag
}

// NewDetector creates a detector with the given tables. Tables are treated
// as immutable after construction.
func NewDetector(redFlags, cautionFlags []Flag) *Detector {
	return &Detector{redFlags: redFlags, cautionFlags: cautionFlags}
}

// NewDefaultDetector creates a detector with the built-in tables
func NewDefaultDetector() *Detector {
	return NewDetector(defaultRedFlags, defaultCautionFlags)
}

// DetectRedFlag returns the first red-flag match in the message, or nil.
// Scan order follows the table order; the first keyword hit wins.
func (d *Detector) DetectRedFlag(message string) *Match {
	lower := strings.ToLower(message)
	for _, flag := range d.redFlags {
		for _, kw := range flag.Keywords {
			if strings.Contains(lower, kw) {
				return &Match{Category: flag.Category, Severity: flag.Severity, Keyword: kw, Message: flag.Message}
			}
		}
	}
	return nil
}

// DetectCautions returns all caution matches, at most one per category.
// The first keyword hit within a category wins.
func (d *Detector) DetectCautions(message string) []Match {
	lower := strings.ToLower(message)
	var matches []Match
	for _, flag := range d.cautionFlags {
		for _, kw := range flag.Keywords {
			if strings.Contains(lower, kw) {
				matches = append(matches, Match{Category: flag.Category, Severity: flag.Severity, Keyword: kw, Message: flag.Message})
				break // one match per category
			}
		}
	}
	return matches
}

// Level determines the triage level for a message: urgent beats caution
// beats none. Never fails, an unmatched message is simply "none".
func (d *Detector) Level(message string) domain.TriageLevel {
	if d.DetectRedFlag(message) != nil {
		return domain.TriageUrgent
	}
	if len(d.DetectCautions(message)) > 0 {
		return domain.TriageCaution
	}
	return domain.TriageNone
}

// urgentFooter is always appended to a red-flag safety message
const urgentFooter = "**I cannot safely provide guidance for this condition remotely. Please seek immediate medical attention.**"

// SafetyMessage renders the text shown to the user for detected flags.
// A red flag produces the canned urgent message and nothing else; caution
// matches are concatenated in table order.
func SafetyMessage(red *Match, cautions []Match) string {
	if red != nil {
		return red.Message + "\n\n" + urgentFooter + "\n\n"
	}
	if len(cautions) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, m := range cautions {
		sb.WriteString(m.Message)
		sb.WriteString("\n\n")
	}
	return sb.String()
}

// ExtractSymptoms scans the message for known symptom keywords and returns
// named symptoms with a default medium severity. One symptom per name, the
// first keyword hit wins.
func ExtractSymptoms(message string) []domain.Symptom {
	lower := strings.ToLower(message)
	var symptoms []domain.Symptom
	for _, entry := range symptomKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				symptoms = append(symptoms, domain.Symptom{Name: entry.name, Severity: 5})
				break
			}
		}
	}
	return symptoms
}

// IsHealthRelated reports whether the message mentions any known health
// topic, used to decide if a kitchen remedy tip should be appended
func IsHealthRelated(message string) bool {
	lower := strings.ToLower(message)
	for _, kw := range healthKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
