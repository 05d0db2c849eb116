package domain

import "time"

// TriageLevel is the safety classification of a single message
type TriageLevel string

// triage levels, ordered by severity
const (
	TriageNone    TriageLevel = "none"
	TriageCaution TriageLevel = "caution"
	TriageUrgent  TriageLevel = "urgent"
)

// FlagMatch records a single safety keyword hit
type FlagMatch struct {
	Category string `json:"category"`
	Keyword  string `json:"keyword"`
	Severity string `json:"severity"`
}

// Symptom is a named complaint extracted from a message or supplied by the client
type Symptom struct {
	Name     string `json:"name"`
	Severity int    `json:"severity"` // 1-10, 5 when auto-detected
}

// Vitals is an optional snapshot attached to a consultation
type Vitals struct {
	Temperature   float64 `json:"temperature,omitempty"` // celsius
	BloodPressure string  `json:"blood_pressure,omitempty"`
	HeartRate     int     `json:"heart_rate,omitempty"`
	SPO2          int     `json:"spo2,omitempty"`
	Weight        float64 `json:"weight,omitempty"` // kg
	Height        float64 `json:"height,omitempty"` // cm
}

// Feedback is the only sub-record mutable after a consultation is created
type Feedback struct {
	Helpful bool      `json:"helpful"`
	Rating  int       `json:"rating"` // 1-5
	Comment string    `json:"comment,omitempty"`
	At      time.Time `json:"at"`
}

// Consultation is one append-only log entry per user message exchange.
// Triage level and flag lists are immutable once created; only Feedback
// may be set afterwards.
type Consultation struct {
	ID           int64
	UserID       string
	Message      string
	Symptoms     []Symptom
	Vitals       *Vitals
	Season       string
	Response     string
	TriageLevel  TriageLevel
	RedFlags     []FlagMatch
	CautionFlags []FlagMatch
	ArticleIDs   []int64
	Feedback     *Feedback
	CreatedAt    time.Time
}

// Exchange is one prior user/assistant turn pair used for prompt history
type Exchange struct {
	Date     time.Time
	UserSaid string
	Reply    string
	Triage   TriageLevel
}
