package ui

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"groupstat/app"
	"groupstat/domain/core"
	"groupstat/internal"
)

// App is the chi-based variant of the JSON API, served on plain net/http
type App struct {
	router     *chi.Mux
	calculator *app.CalculatorService
	logger     *internal.Logger
	port       string
}

// Config holds UI application configuration
type Config struct {
	Port string
}

// NewApp creates a new UI application. A nil logger uses
// internal.DefaultLogger.
func NewApp(config Config, calculator *app.CalculatorService, logger *internal.Logger) *App {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	a := &App{
		router:     chi.NewRouter(),
		calculator: calculator,
		logger:     logger.With("App"),
		port:       config.Port,
	}
	if a.port == "" {
		a.port = "8080"
	}

	a.setupMiddleware()
	a.setupRoutes()
	return a
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.RequestID)
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/healthz", a.handleHealth)
	a.router.Route("/api", func(r chi.Router) {
		r.Post("/calculate", a.handleCalculate)
		r.Get("/modes", a.handleModes)
		r.Get("/modes/{mode}/help", a.handleModeHelp)
	})
}

// Handler exposes the router, mainly for tests
func (a *App) Handler() http.Handler {
	return a.router
}

// Start starts the HTTP server
func (a *App) Start() error {
	addr := ":" + a.port
	a.logger.Info("starting groupstat API server on %s", addr)
	return http.ListenAndServe(addr, a.router)
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, http.StatusOK, healthBody())
}

func (a *App) handleCalculate(w http.ResponseWriter, r *http.Request) {
	req, err := readCalculateRequest(r.Body)
	if err != nil {
		status, payload := errorResponse(err)
		a.writeJSON(w, status, payload)
		return
	}

	calc, err := a.calculator.Calculate(r.Context(), req)
	if err != nil {
		if core.IsInputError(err) {
			a.logger.Debug("calculate rejected: %v", err)
		} else {
			a.logger.Error("calculate failed: %v", err)
		}
		status, payload := errorResponse(err)
		a.writeJSON(w, status, payload)
		return
	}
	a.writeJSON(w, http.StatusOK, calc)
}

func (a *App) handleModes(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, http.StatusOK, map[string]interface{}{
		"default": a.calculator.DefaultMode(),
		"modes":   a.calculator.Modes(),
	})
}

func (a *App) handleModeHelp(w http.ResponseWriter, r *http.Request) {
	help, err := a.calculator.Help(chi.URLParam(r, "mode"))
	if err != nil {
		status, payload := errorResponse(err)
		a.writeJSON(w, status, payload)
		return
	}
	a.writeJSON(w, http.StatusOK, help)
}

func (a *App) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.logger.Error("failed to encode response: %v", err)
	}
}
