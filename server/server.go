// Package server exposes the consultation API over HTTP. The caller's
// identity arrives as the X-Auth-User header set by the auth layer in
// front of this service.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/ayurscope/ayurscope/pkg/chat"
	"github.com/ayurscope/ayurscope/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/chat_service.go -pkg mocks -skip-ensure -fmt goimports . ChatService
//go:generate moq -out mocks/profile_store.go -pkg mocks -skip-ensure -fmt goimports . ProfileStore
//go:generate moq -out mocks/consultation_store.go -pkg mocks -skip-ensure -fmt goimports . ConsultationStore
//go:generate moq -out mocks/article_store.go -pkg mocks -skip-ensure -fmt goimports . ArticleStore

// ChatService runs consultations
type ChatService interface {
	Consult(ctx context.Context, req chat.Request) (*chat.Result, error)
	Suggestions(ctx context.Context, userID string) ([]string, error)
	QuickPractice(ctx context.Context, userID string) (string, error)
}

// ProfileStore provides profile operations for the API
type ProfileStore interface {
	Get(ctx context.Context, userID string) (*domain.Profile, error)
	Upsert(ctx context.Context, profile *domain.Profile) error
	UpdateScores(ctx context.Context, userID string, scores domain.DoshaScores, dominant string) error
}

// ConsultationStore provides consultation log access for the API
type ConsultationStore interface {
	Get(ctx context.Context, id int64, userID string) (*domain.Consultation, error)
	List(ctx context.Context, userID string, limit, offset int) ([]*domain.Consultation, error)
	Count(ctx context.Context, userID string) (int, error)
	SetFeedback(ctx context.Context, id int64, userID string, fb domain.Feedback) error
}

// ArticleStore provides article access for the API
type ArticleStore interface {
	ListPublished(ctx context.Context, limit int) ([]*domain.Article, error)
	Get(ctx context.Context, id int64) (*domain.Article, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// Server represents HTTP server instance
type Server struct {
	config        ConfigProvider
	chat          ChatService
	profiles      ProfileStore
	consultations ConsultationStore
	articles      ArticleStore
	version       string
	debug         bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Params holds server dependencies
type Params struct {
	Config        ConfigProvider
	Chat          ChatService
	Profiles      ProfileStore
	Consultations ConsultationStore
	Articles      ArticleStore
	Version       string
	Debug         bool
}

// New initializes a new server instance
func New(params Params) *Server {
	s := &Server{
		config:        params.Config,
		chat:          params.Chat,
		profiles:      params.Profiles,
		consultations: params.Consultations,
		articles:      params.Articles,
		version:       params.Version,
		debug:         params.Debug,
		router:        routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("ayurscope", "ayurscope", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(64 * 1024)) // 64KB, requests are chat messages
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.HandleFunc("GET /api/v1/status", s.statusHandler)

	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.Use(s.authUser)

		r.HandleFunc("POST /chat/message", s.chatMessageHandler)
		r.HandleFunc("GET /chat/history", s.chatHistoryHandler)
		r.HandleFunc("GET /chat/suggestions", s.chatSuggestionsHandler)
		r.HandleFunc("GET /chat/quick-practice", s.quickPracticeHandler)
		r.HandleFunc("GET /chat/{id}", s.chatGetHandler)
		r.HandleFunc("PUT /chat/{id}/feedback", s.chatFeedbackHandler)

		r.HandleFunc("GET /profile", s.profileGetHandler)
		r.HandleFunc("PUT /profile", s.profileUpdateHandler)
		r.HandleFunc("GET /profile/constitution", s.constitutionHandler)
		r.HandleFunc("POST /profile/assessment", s.assessmentHandler)

		r.HandleFunc("GET /articles", s.articlesListHandler)
		r.HandleFunc("GET /articles/{id}", s.articleGetHandler)
	})
}

// authUser requires the X-Auth-User header and rejects requests without it
func (s *Server) authUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Auth-User") == "" {
			renderError(w, r, fmt.Errorf("missing user identity"), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// userID extracts the authenticated user handle from the request
func userID(r *http.Request) string {
	return r.Header.Get("X-Auth-User")
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
