package ui

import (
	"time"

	"github.com/gin-gonic/gin"

	"groupstat/domain/core"
	"groupstat/internal"
)

// setupMiddleware configures Gin middleware
func (s *Server) setupMiddleware() {
	s.router.Use(gin.Recovery())
	s.router.Use(s.requestID())
	if s.logger.GetLevel() >= internal.LogLevelDebug {
		s.router.Use(s.requestLogger())
	}
}

// requestID tags every response with an X-Request-ID. The caller's ID is
// reused only when it is a UUID.
func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := core.ParseID(c.GetHeader("X-Request-ID"))
		if err != nil {
			id = core.NewID()
		}
		c.Header("X-Request-ID", id.String())
		c.Set("request_id", id.String())
		c.Next()
	}
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("%s %s -> %d (%s) id=%s",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start), c.GetString("request_id"))
	}
}
