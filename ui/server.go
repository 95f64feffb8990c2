package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"groupstat/app"
	"groupstat/domain/core"
	"groupstat/internal"
)

// Server is the gin-based JSON API in front of the calculator
type Server struct {
	router     *gin.Engine
	calculator *app.CalculatorService
	logger     *internal.Logger
}

// NewServer creates a new web server instance. ginMode is one of gin's
// debug/release/test modes; empty keeps gin's current mode.
func NewServer(calculator *app.CalculatorService, ginMode string, logger *internal.Logger) *Server {
	if ginMode != "" {
		gin.SetMode(ginMode)
	}
	if logger == nil {
		logger = internal.DefaultLogger
	}
	s := &Server{
		router:     gin.New(),
		calculator: calculator,
		logger:     logger.With("Server"),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.GET("/healthz", s.handleHealth)

	api := s.router.Group("/api")
	api.POST("/calculate", s.handleCalculate)
	api.GET("/modes", s.handleModes)
	api.GET("/modes/:mode/help", s.handleModeHelp)
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the web server
func (s *Server) Start(addr string) error {
	s.logger.Info("starting groupstat API on http://%s", addr)
	return s.router.Run(addr)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, healthBody())
}

func (s *Server) handleCalculate(c *gin.Context) {
	req, err := readCalculateRequest(c.Request.Body)
	if err != nil {
		c.JSON(errorResponse(err))
		return
	}

	calc, err := s.calculator.Calculate(c.Request.Context(), req)
	if err != nil {
		if core.IsInputError(err) {
			s.logger.Debug("calculate rejected: %v", err)
		} else {
			s.logger.Error("calculate failed: %v", err)
		}
		c.JSON(errorResponse(err))
		return
	}
	c.JSON(http.StatusOK, calc)
}

func (s *Server) handleModes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"default": s.calculator.DefaultMode(),
		"modes":   s.calculator.Modes(),
	})
}

func (s *Server) handleModeHelp(c *gin.Context) {
	help, err := s.calculator.Help(c.Param("mode"))
	if err != nil {
		c.JSON(errorResponse(err))
		return
	}
	c.JSON(http.StatusOK, help)
}
