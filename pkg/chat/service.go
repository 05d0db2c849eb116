// Package chat orchestrates a consultation: safety triage first, then
// constitution tracking, context composition, the model call, and the
// append-only consultation record. Urgent messages never reach the model.
package chat

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/ayurscope/ayurscope/pkg/almanac"
	"github.com/ayurscope/ayurscope/pkg/composer"
	"github.com/ayurscope/ayurscope/pkg/config"
	"github.com/ayurscope/ayurscope/pkg/domain"
	"github.com/ayurscope/ayurscope/pkg/guidance"
	"github.com/ayurscope/ayurscope/pkg/prakriti"
	"github.com/ayurscope/ayurscope/pkg/repository"
	"github.com/ayurscope/ayurscope/pkg/triage"
)

//go:generate moq -out mocks/profile_store.go -pkg mocks -skip-ensure -fmt goimports . ProfileStore
//go:generate moq -out mocks/consultation_store.go -pkg mocks -skip-ensure -fmt goimports . ConsultationStore
//go:generate moq -out mocks/article_store.go -pkg mocks -skip-ensure -fmt goimports . ArticleStore
//go:generate moq -out mocks/completer.go -pkg mocks -skip-ensure -fmt goimports . Completer

// ProfileStore provides durable user profiles
type ProfileStore interface {
	Get(ctx context.Context, userID string) (*domain.Profile, error)
	UpdateScores(ctx context.Context, userID string, scores domain.DoshaScores, dominant string) error
}

// ConsultationStore persists and reads the consultation log
type ConsultationStore interface {
	Create(ctx context.Context, c *domain.Consultation) error
	RecentExchanges(ctx context.Context, userID string, n int) ([]domain.Exchange, error)
	Recent(ctx context.Context, userID string, n int) ([]*domain.Consultation, error)
}

// ArticleStore provides published reference articles
type ArticleStore interface {
	ListPublished(ctx context.Context, limit int) ([]*domain.Article, error)
}

// Completer generates model responses
type Completer interface {
	Complete(ctx context.Context, turns []domain.Turn) (string, error)
	QuickPractice(ctx context.Context, ritu almanac.Ritu, part almanac.DayPart, dominant string) (string, error)
}

// Service runs consultations end to end
type Service struct {
	profiles      ProfileStore
	consultations ConsultationStore
	articles      ArticleStore
	advisor       Completer
	detector      *triage.Detector
	tracker       *prakriti.Tracker
	cfg           config.ChatConfig
	systemPrompt  string
	now           func() time.Time
}

// Params holds chat service dependencies and configuration
type Params struct {
	Profiles      ProfileStore
	Consultations ConsultationStore
	Articles      ArticleStore
	Advisor       Completer
	Config        config.ChatConfig
	SystemPrompt  string           // optional override for the built-in system prompt
	Now           func() time.Time // defaults to time.Now
}

// NewService creates a chat service
func NewService(params Params) *Service {
	if params.Now == nil {
		params.Now = time.Now
	}
	if params.Config.HistoryLimit == 0 {
		params.Config.HistoryLimit = 5
	}
	if params.Config.ArticleLimit == 0 {
		params.Config.ArticleLimit = 10
	}
	if params.Config.SuggestionCount == 0 {
		params.Config.SuggestionCount = 4
	}

	return &Service{
		profiles:      params.Profiles,
		consultations: params.Consultations,
		articles:      params.Articles,
		advisor:       params.Advisor,
		detector:      triage.NewDefaultDetector(),
		tracker:       prakriti.NewTracker(),
		cfg:           params.Config,
		systemPrompt:  params.SystemPrompt,
		now:           params.Now,
	}
}

// Request is one incoming consultation message
type Request struct {
	UserID   string
	Message  string
	Symptoms []domain.Symptom // optional, replaces auto-extraction when set
	Vitals   *domain.Vitals
}

// Result is the outcome of a consultation
type Result struct {
	Response       string
	TriageLevel    domain.TriageLevel
	ConsultationID int64
	RedFlag        *domain.FlagMatch
	Articles       []*domain.Article
}

// Consult processes one message. Red-flag messages short-circuit with a
// canned referral and are logged without any model call. On model failure
// nothing is persisted and the error propagates.
func (s *Service) Consult(ctx context.Context, req Request) (*Result, error) {
	if req.Message == "" {
		return nil, fmt.Errorf("empty message")
	}

	profile := s.loadProfile(ctx, req.UserID)
	now := s.now()
	ritu := almanac.CurrentRitu(now)
	dayPart := almanac.CurrentDayPart(now)

	// conversation language feeds the constitution tally even when the
	// message later turns out to be urgent
	if indicators := s.tracker.Indicators(req.Message); indicators.Total() > 0 {
		scores := s.tracker.Accumulate(profile.Scores, indicators)
		dominant := prakriti.Dominant(scores)
		if err := s.profiles.UpdateScores(ctx, req.UserID, scores, dominant); err != nil {
			return nil, fmt.Errorf("update constitution scores: %w", err)
		}
		profile.Assessed = true
		profile.Scores = scores
		profile.Dominant = dominant
		lgr.Printf("[DEBUG] constitution updated for %s: vata=%d pitta=%d kapha=%d dominant=%s",
			req.UserID, scores.Vata, scores.Pitta, scores.Kapha, dominant)
	}

	symptoms := req.Symptoms
	if len(symptoms) == 0 {
		symptoms = triage.ExtractSymptoms(req.Message)
	}

	if red := s.detector.DetectRedFlag(req.Message); red != nil {
		return s.urgentShortCircuit(ctx, req, profile, red, symptoms, ritu)
	}

	cautions := s.detector.DetectCautions(req.Message)
	advisory := triage.SafetyMessage(nil, cautions)

	var diet *guidance.DietPlan
	var lifestyle *guidance.LifestylePlan
	var traits *guidance.Traits
	var signs []guidance.SignMatch
	if profile.Assessed {
		diet = guidance.DietFor(profile.Dominant)
		lifestyle = guidance.LifestyleFor(profile.Dominant)
		traits = guidance.CharacteristicsFor(profile.Dominant)
		signs = guidance.MatchImbalanceSigns(req.Message, profile.Dominant)
	}

	articles, err := s.articles.ListPublished(ctx, s.cfg.ArticleLimit)
	if err != nil {
		lgr.Printf("[WARN] failed to load articles for context: %v", err)
		articles = nil
	}

	history, err := s.consultations.RecentExchanges(ctx, req.UserID, s.cfg.HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	input := composer.Input{
		Profile:      *profile,
		SystemPrompt: s.systemPrompt,
		Message:      req.Message,
		Ritu:         ritu,
		DayPart:      dayPart,
		Diet:         diet,
		Lifestyle:    lifestyle,
		Traits:       traits,
		Signs:        signs,
		Symptoms:     symptoms,
		Vitals:       req.Vitals,
		History:      history,
		Advisory:     advisory,
		Articles:     derefArticles(articles),
		Now:          now,
	}

	reply, err := s.advisor.Complete(ctx, composer.Turns(input))
	if err != nil {
		return nil, fmt.Errorf("generate response: %w", err)
	}

	if triage.IsHealthRelated(req.Message) {
		remedy := guidance.KitchenRemedy(req.Message)
		reply += fmt.Sprintf("\n\n**Kitchen Companion:** Try %s — %s (%s)", remedy.Form, remedy.Rationale, remedy.Dosha)
	}

	finalResponse := advisory + reply

	cons := &domain.Consultation{
		UserID:       req.UserID,
		Message:      req.Message,
		Symptoms:     symptoms,
		Vitals:       req.Vitals,
		Season:       ritu.Name,
		Response:     finalResponse,
		TriageLevel:  triageLevelFor(cautions),
		CautionFlags: flagMatches(cautions),
		ArticleIDs:   referencedIDs(articles, 3),
	}
	if err := s.consultations.Create(ctx, cons); err != nil {
		return nil, fmt.Errorf("save consultation: %w", err)
	}

	referenced := articles
	if len(referenced) > 3 {
		referenced = referenced[:3]
	}

	return &Result{
		Response:       finalResponse,
		TriageLevel:    cons.TriageLevel,
		ConsultationID: cons.ID,
		Articles:       referenced,
	}, nil
}

// QuickPractice generates a one-minute balancing practice for the user's
// current season, time of day, and dominant dosha
func (s *Service) QuickPractice(ctx context.Context, userID string) (string, error) {
	profile := s.loadProfile(ctx, userID)
	now := s.now()

	dominant := ""
	if profile.Assessed {
		dominant = profile.Dominant
	}
	return s.advisor.QuickPractice(ctx, almanac.CurrentRitu(now), almanac.CurrentDayPart(now), dominant)
}

// urgentShortCircuit logs and answers a red-flag message without the model
func (s *Service) urgentShortCircuit(ctx context.Context, req Request, profile *domain.Profile,
	red *triage.Match, symptoms []domain.Symptom, ritu almanac.Ritu) (*Result, error) {

	lgr.Printf("[WARN] urgent triage for %s: %s (%s)", req.UserID, red.Keyword, red.Category)

	safety := triage.SafetyMessage(red, nil)
	flag := red.FlagMatch()

	cons := &domain.Consultation{
		UserID:      req.UserID,
		Message:     req.Message,
		Symptoms:    symptoms,
		Vitals:      req.Vitals,
		Season:      ritu.Name,
		Response:    safety,
		TriageLevel: domain.TriageUrgent,
		RedFlags:    []domain.FlagMatch{flag},
	}
	if err := s.consultations.Create(ctx, cons); err != nil {
		return nil, fmt.Errorf("save urgent consultation: %w", err)
	}

	return &Result{
		Response:       safety,
		TriageLevel:    domain.TriageUrgent,
		ConsultationID: cons.ID,
		RedFlag:        &flag,
	}, nil
}

// loadProfile returns the stored profile or an empty unassessed one
func (s *Service) loadProfile(ctx context.Context, userID string) *domain.Profile {
	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrProfileNotFound) {
			lgr.Printf("[WARN] failed to load profile for %s: %v", userID, err)
		}
		return &domain.Profile{UserID: userID}
	}
	return profile
}

func triageLevelFor(cautions []triage.Match) domain.TriageLevel {
	if len(cautions) > 0 {
		return domain.TriageCaution
	}
	return domain.TriageNone
}

func flagMatches(matches []triage.Match) []domain.FlagMatch {
	if len(matches) == 0 {
		return nil
	}
	out := make([]domain.FlagMatch, len(matches))
	for i, m := range matches {
		out[i] = m.FlagMatch()
	}
	return out
}

func referencedIDs(articles []*domain.Article, n int) []int64 {
	if len(articles) > n {
		articles = articles[:n]
	}
	ids := make([]int64, 0, len(articles))
	for _, a := range articles {
		ids = append(ids, a.ID)
	}
	return ids
}

func derefArticles(articles []*domain.Article) []domain.Article {
	out := make([]domain.Article, 0, len(articles))
	for _, a := range articles {
		out = append(out, *a)
	}
	return out
}
