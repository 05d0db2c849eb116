package domain

import "time"

// DoshaScores holds the three-axis constitution tally. Once a profile is
// assessed the three values sum to exactly 100.
type DoshaScores struct {
	Vata  int `json:"vata"`
	Pitta int `json:"pitta"`
	Kapha int `json:"kapha"`
}

// Total returns the sum of all three scores
func (s DoshaScores) Total() int {
	return s.Vata + s.Pitta + s.Kapha
}

// Profile represents a user's durable wellness profile
type Profile struct {
	UserID     string
	Name       string
	DOB        *time.Time
	Assessed   bool
	Scores     DoshaScores
	Dominant   string // lower-cased dosha name or "balanced"
	AssessedAt *time.Time
	Medical    MedicalHistory
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Age returns full years since DOB at the given moment, or 0 when DOB is unknown
func (p *Profile) Age(now time.Time) int {
	if p.DOB == nil {
		return 0
	}
	age := now.Year() - p.DOB.Year()
	if now.YearDay() < p.DOB.YearDay() {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

// MedicalHistory holds user-reported medical background
type MedicalHistory struct {
	Medications       []string `json:"medications"`
	Allergies         []string `json:"allergies"`
	ChronicConditions []string `json:"chronic_conditions"`
}
