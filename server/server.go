// Package server is the reference passport backend: authentication, record
// persistence and history queries over Postgres. Real OCR extraction is an
// external service; the upload handler here returns a canned extraction so
// the client can be exercised end to end.
package server

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	_ "github.com/lib/pq"
	"github.com/stamptrail/stampbook/internal/logger"
)

// Server is the passport backend
type Server struct {
	db   *sql.DB
	echo *echo.Echo
}

// New creates a new server
func New(dbURL string) (*Server, error) {
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	s := &Server{db: db}

	// Run migrations
	if err := s.migrate(); err != nil {
		return nil, err
	}

	// Setup Echo
	s.setupEcho()

	return s, nil
}

func (s *Server) setupEcho() {
	e := echo.New()
	e.HideBanner = true

	// Custom logging middleware
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			err := next(c)

			res := c.Response()
			logger.Info("HTTP request",
				logger.F("method", req.Method),
				logger.F("uri", req.RequestURI),
				logger.F("status", res.Status),
				logger.F("size", res.Size),
				logger.F("duration", time.Since(start).String()))

			return err
		}
	})

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORS())

	// Health check
	e.GET("/health", s.handleHealth)

	api := e.Group("/api")

	// Auth endpoints (public)
	api.POST("/auth/signup", s.handleSignup)
	api.POST("/auth/login", s.handleLogin)

	// Extraction is public: the page is uploaded before the rows are tied
	// to an account on save.
	api.POST("/passport/upload", s.handleUpload)

	// Protected endpoints
	protected := api.Group("/passport")
	protected.Use(s.authMiddleware)
	protected.POST("/data", s.handleSaveData)
	protected.GET("/user-history", s.handleHistory)
	protected.GET("/user-history-map", s.handleHistoryMap)

	s.echo = e
}

// Close closes the database connection
func (s *Server) Close() error {
	return s.db.Close()
}

// Router returns the HTTP handler
func (s *Server) Router() http.Handler {
	return s.echo
}

// Start starts the server
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
