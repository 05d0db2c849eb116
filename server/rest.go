package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/ayurscope/ayurscope/pkg/chat"
	"github.com/ayurscope/ayurscope/pkg/domain"
	"github.com/ayurscope/ayurscope/pkg/prakriti"
	"github.com/ayurscope/ayurscope/pkg/repository"
)

// chatMessageRequest is the body of POST /chat/message
type chatMessageRequest struct {
	Message  string           `json:"message"`
	Symptoms []domain.Symptom `json:"symptoms,omitempty"`
	Vitals   *domain.Vitals   `json:"vitals,omitempty"`
}

// articleRef is the short article representation returned with responses
type articleRef struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
	Link  string `json:"link,omitempty"`
}

func (s *Server) chatMessageHandler(w http.ResponseWriter, r *http.Request) {
	var req chatMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.Message == "" {
		renderError(w, r, fmt.Errorf("message is required"), http.StatusBadRequest)
		return
	}

	result, err := s.chat.Consult(r.Context(), chat.Request{
		UserID:   userID(r),
		Message:  req.Message,
		Symptoms: req.Symptoms,
		Vitals:   req.Vitals,
	})
	if err != nil {
		lgr.Printf("[ERROR] consultation failed for %s: %v", userID(r), err)
		renderError(w, r, fmt.Errorf("consultation failed"), http.StatusInternalServerError)
		return
	}

	refs := make([]articleRef, 0, len(result.Articles))
	for _, a := range result.Articles {
		refs = append(refs, articleRef{ID: a.ID, Title: a.Title, Slug: a.Slug, Link: a.Link})
	}

	resp := map[string]interface{}{
		"response":        result.Response,
		"triage_level":    result.TriageLevel,
		"consultation_id": result.ConsultationID,
		"articles":        refs,
	}
	if result.RedFlag != nil {
		resp["red_flag"] = result.RedFlag
	}
	renderJSON(w, r, http.StatusOK, resp)
}

func (s *Server) chatHistoryHandler(w http.ResponseWriter, r *http.Request) {
	limit := intParam(r, "limit", 10)
	if limit < 1 || limit > 50 {
		limit = 10
	}
	page := intParam(r, "page", 1)
	if page < 1 {
		page = 1
	}

	consultations, err := s.consultations.List(r.Context(), userID(r), limit, (page-1)*limit)
	if err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	total, err := s.consultations.Count(r.Context(), userID(r))
	if err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"consultations": consultations,
		"total":         total,
		"page":          page,
		"limit":         limit,
	})
}

func (s *Server) chatGetHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid consultation id"), http.StatusBadRequest)
		return
	}

	cons, err := s.consultations.Get(r.Context(), id, userID(r))
	if errors.Is(err, repository.ErrConsultationNotFound) {
		renderError(w, r, err, http.StatusNotFound)
		return
	}
	if err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, cons)
}

// feedbackRequest is the body of PUT /chat/{id}/feedback
type feedbackRequest struct {
	Helpful bool   `json:"helpful"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

func (s *Server) chatFeedbackHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid consultation id"), http.StatusBadRequest)
		return
	}

	var req feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		renderError(w, r, fmt.Errorf("rating must be between 1 and 5"), http.StatusBadRequest)
		return
	}

	fb := domain.Feedback{Helpful: req.Helpful, Rating: req.Rating, Comment: req.Comment, At: time.Now().UTC()}
	err = s.consultations.SetFeedback(r.Context(), id, userID(r), fb)
	if errors.Is(err, repository.ErrConsultationNotFound) {
		renderError(w, r, err, http.StatusNotFound)
		return
	}
	if err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"status": "recorded"})
}

func (s *Server) chatSuggestionsHandler(w http.ResponseWriter, r *http.Request) {
	suggestions, err := s.chat.Suggestions(r.Context(), userID(r))
	if err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"suggestions": suggestions})
}

func (s *Server) quickPracticeHandler(w http.ResponseWriter, r *http.Request) {
	practice, err := s.chat.QuickPractice(r.Context(), userID(r))
	if err != nil {
		lgr.Printf("[ERROR] quick practice failed for %s: %v", userID(r), err)
		renderError(w, r, fmt.Errorf("practice generation failed"), http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"practice": practice})
}

// profileResponse is the wire form of a user profile
type profileResponse struct {
	UserID     string                `json:"user_id"`
	Name       string                `json:"name"`
	DOB        string                `json:"dob,omitempty"`
	Assessed   bool                  `json:"assessed"`
	Scores     domain.DoshaScores    `json:"scores"`
	Dominant   string                `json:"dominant,omitempty"`
	AssessedAt *time.Time            `json:"assessed_at,omitempty"`
	Medical    domain.MedicalHistory `json:"medical"`
}

func toProfileResponse(p *domain.Profile) profileResponse {
	resp := profileResponse{
		UserID:     p.UserID,
		Name:       p.Name,
		Assessed:   p.Assessed,
		Scores:     p.Scores,
		Dominant:   p.Dominant,
		AssessedAt: p.AssessedAt,
		Medical:    p.Medical,
	}
	if p.DOB != nil {
		resp.DOB = p.DOB.Format("2006-01-02")
	}
	return resp
}

func (s *Server) profileGetHandler(w http.ResponseWriter, r *http.Request) {
	profile, err := s.profiles.Get(r.Context(), userID(r))
	if errors.Is(err, repository.ErrProfileNotFound) {
		renderJSON(w, r, http.StatusOK, toProfileResponse(&domain.Profile{UserID: userID(r)}))
		return
	}
	if err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, toProfileResponse(profile))
}

// profileUpdateRequest is the body of PUT /profile
type profileUpdateRequest struct {
	Name              string   `json:"name"`
	DOB               string   `json:"dob,omitempty"` // 2006-01-02
	Medications       []string `json:"medications,omitempty"`
	Allergies         []string `json:"allergies,omitempty"`
	ChronicConditions []string `json:"chronic_conditions,omitempty"`
}

func (s *Server) profileUpdateHandler(w http.ResponseWriter, r *http.Request) {
	var req profileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	profile := &domain.Profile{
		UserID: userID(r),
		Name:   req.Name,
		Medical: domain.MedicalHistory{
			Medications:       req.Medications,
			Allergies:         req.Allergies,
			ChronicConditions: req.ChronicConditions,
		},
	}
	if req.DOB != "" {
		dob, err := time.Parse("2006-01-02", req.DOB)
		if err != nil {
			renderError(w, r, fmt.Errorf("invalid dob, expected YYYY-MM-DD"), http.StatusBadRequest)
			return
		}
		profile.DOB = &dob
	}

	if err := s.profiles.Upsert(r.Context(), profile); err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	updated, err := s.profiles.Get(r.Context(), userID(r))
	if err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, toProfileResponse(updated))
}

func (s *Server) constitutionHandler(w http.ResponseWriter, r *http.Request) {
	profile, err := s.profiles.Get(r.Context(), userID(r))
	if errors.Is(err, repository.ErrProfileNotFound) {
		renderJSON(w, r, http.StatusOK, map[string]interface{}{"assessed": false})
		return
	}
	if err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"assessed":    profile.Assessed,
		"scores":      profile.Scores,
		"dominant":    profile.Dominant,
		"assessed_at": profile.AssessedAt,
	})
}

// assessmentRequest is the body of POST /profile/assessment, raw quiz tallies
type assessmentRequest struct {
	Vata  int `json:"vata"`
	Pitta int `json:"pitta"`
	Kapha int `json:"kapha"`
}

func (s *Server) assessmentHandler(w http.ResponseWriter, r *http.Request) {
	var req assessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	if req.Vata < 0 || req.Pitta < 0 || req.Kapha < 0 {
		renderError(w, r, fmt.Errorf("scores must be non-negative"), http.StatusBadRequest)
		return
	}

	scores := domain.DoshaScores{Vata: req.Vata, Pitta: req.Pitta, Kapha: req.Kapha}
	if scores.Total() <= 0 {
		renderError(w, r, fmt.Errorf("scores must be positive"), http.StatusBadRequest)
		return
	}

	// off totals are normalized, never rejected
	warning := ""
	if scores.Total() != 100 {
		warning = fmt.Sprintf("scores total %d, normalized to 100", scores.Total())
	}
	if !prakriti.WithinQuizTolerance(scores) {
		lgr.Printf("[WARN] quiz scores for %s total %d, outside tolerance", userID(r), scores.Total())
	}

	normalized := prakriti.Normalize(scores)
	dominant := prakriti.Dominant(normalized)

	if err := s.profiles.UpdateScores(r.Context(), userID(r), normalized, dominant); err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	resp := map[string]interface{}{
		"scores":   normalized,
		"dominant": dominant,
	}
	if warning != "" {
		resp["warning"] = warning
	}
	renderJSON(w, r, http.StatusOK, resp)
}

func (s *Server) articlesListHandler(w http.ResponseWriter, r *http.Request) {
	limit := intParam(r, "limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}

	articles, err := s.articles.ListPublished(r.Context(), limit)
	if err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	refs := make([]map[string]interface{}, 0, len(articles))
	for _, a := range articles {
		refs = append(refs, map[string]interface{}{
			"id":        a.ID,
			"title":     a.Title,
			"slug":      a.Slug,
			"summary":   a.Summary,
			"link":      a.Link,
			"author":    a.Author,
			"published": a.Published,
		})
	}
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"articles": refs})
}

func (s *Server) articleGetHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid article id"), http.StatusBadRequest)
		return
	}

	article, err := s.articles.Get(r.Context(), id)
	if errors.Is(err, repository.ErrArticleNotFound) {
		renderError(w, r, err, http.StatusNotFound)
		return
	}
	if err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, article)
}

// intParam reads an integer query parameter with a default
func intParam(r *http.Request, name string, def int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return def
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return def
	}
	return n
}
