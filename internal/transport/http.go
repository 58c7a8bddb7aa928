package transport

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rpggio/roster/internal/domain/enrollment"
	"github.com/rpggio/roster/internal/domain/roster"
)

// LandingPage is where "/" redirects.
const LandingPage = "/static/index.html"

// RosterService defines roster operations needed by HTTP handlers.
type RosterService interface {
	List(ctx context.Context) ([]roster.Activity, error)
	Get(ctx context.Context, name string) (*roster.Activity, error)
	SignUp(ctx context.Context, name, email string) (*roster.Activity, error)
	Unregister(ctx context.Context, name, email string) (*roster.Activity, error)
}

// EnrollmentService defines journal reads needed by HTTP handlers.
type EnrollmentService interface {
	Recent(ctx context.Context, opts enrollment.ListOptions) ([]enrollment.Event, error)
}

// Config wires the router. Enrollments and MCP are optional.
type Config struct {
	Roster      RosterService
	Enrollments EnrollmentService
	MCP         http.Handler
	StaticDir   string
	Logger      *slog.Logger
}

// Server wires HTTP handlers.
type Server struct {
	roster      RosterService
	enrollments EnrollmentService
	logger      *slog.Logger
}

// NewServer creates an HTTP server router with middleware.
func NewServer(cfg Config) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(cfg.Logger))

	srv := &Server{
		roster:      cfg.Roster,
		enrollments: cfg.Enrollments,
		logger:      cfg.Logger,
	}

	r.Get("/", srv.handleRoot)
	r.Get("/health", srv.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/activities", func(r chi.Router) {
		r.Get("/", srv.handleListActivities)
		r.Get("/{name}", srv.handleGetActivity)
		r.Post("/{name}/signup", srv.handleSignUp)
		r.Delete("/{name}/unregister", srv.handleUnregister)
		if srv.enrollments != nil {
			r.Get("/{name}/history", srv.handleHistory)
		}
	})

	if cfg.MCP != nil {
		r.Handle("/mcp", cfg.MCP)
		r.Handle("/mcp/*", cfg.MCP)
	}

	if cfg.StaticDir != "" {
		if info, err := os.Stat(cfg.StaticDir); err == nil && info.IsDir() {
			root := http.Dir(cfg.StaticDir)
			r.Get(LandingPage, serveLanding(root))
			r.Head(LandingPage, serveLanding(root))
			r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(root)))
		} else if cfg.Logger != nil {
			cfg.Logger.Warn("static directory not found, /static disabled", "dir", cfg.StaticDir)
		}
	}

	return r
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, LandingPage, http.StatusTemporaryRedirect)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := s.roster.List(r.Context())
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, activityMap(activities))
}

func (s *Server) handleGetActivity(w http.ResponseWriter, r *http.Request) {
	act, err := s.roster.Get(r.Context(), activityName(r))
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, act)
}

func (s *Server) handleSignUp(w http.ResponseWriter, r *http.Request) {
	email, ok := requiredQuery(w, r, "email")
	if !ok {
		return
	}
	name := activityName(r)

	if _, err := s.roster.SignUp(r.Context(), name, email); err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: roster.SignupMessage(email, name)})
}

func (s *Server) handleUnregister(w http.ResponseWriter, r *http.Request) {
	email, ok := requiredQuery(w, r, "email")
	if !ok {
		return
	}
	name := activityName(r)

	if _, err := s.roster.Unregister(r.Context(), name, email); err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: roster.UnregisterMessage(email, name)})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	name := activityName(r)
	if _, err := s.roster.Get(r.Context(), name); err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	opts := enrollment.ListOptions{
		Activity: name,
		Email:    r.URL.Query().Get("email"),
	}
	var err error
	if opts.Limit, err = intQuery(r, "limit"); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "limit must be a non-negative integer")
		return
	}
	if opts.Offset, err = intQuery(r, "offset"); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "offset must be a non-negative integer")
		return
	}

	events, err := s.enrollments.Recent(r.Context(), opts)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, HistoryResponse{Events: events})
}

func (s *Server) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	status, detail := statusFor(err)
	if status == http.StatusInternalServerError && s.logger != nil {
		s.logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	}
	writeError(w, status, detail)
}

// statusFor maps domain errors to an HTTP status and detail message.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, roster.ErrActivityNotFound):
		return http.StatusNotFound, "Activity not found"
	case errors.Is(err, roster.ErrAlreadyRegistered):
		return http.StatusBadRequest, "Student is already signed up"
	case errors.Is(err, roster.ErrNotRegistered):
		return http.StatusBadRequest, "Student is not signed up for this activity"
	case errors.Is(err, roster.ErrInvalidInput), errors.Is(err, enrollment.ErrInvalidInput):
		return http.StatusUnprocessableEntity, err.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// activityName returns the decoded {name} path segment.
func activityName(r *http.Request) string {
	name := chi.URLParam(r, "name")
	if r.URL.RawPath == "" {
		return name
	}
	// chi matched against the escaped path, so the param is still escaped.
	if decoded, err := url.PathUnescape(name); err == nil {
		return decoded
	}
	return name
}

func requiredQuery(w http.ResponseWriter, r *http.Request, key string) (string, bool) {
	values, ok := r.URL.Query()[key]
	if !ok || len(values) == 0 {
		writeError(w, http.StatusUnprocessableEntity, key+" query parameter is required")
		return "", false
	}
	return values[0], true
}

func intQuery(r *http.Request, key string) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, errors.New("invalid")
	}
	return v, nil
}
