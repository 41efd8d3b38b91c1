package server

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

// handleSignup creates an account and issues its first session token
func (s *Server) handleSignup(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid request"})
	}

	// Validate
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "username and password required"})
	}

	if len(req.Password) < 8 {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "password must be at least 8 characters"})
	}

	// Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.Logger().Error("bcrypt error:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "internal error"})
	}

	// Insert user
	userID := uuid.New().String()
	_, err = s.db.Exec(`
		INSERT INTO users (id, username, password_hash)
		VALUES ($1, $2, $3)`,
		userID, req.Username, string(hash),
	)

	if err != nil {
		if strings.Contains(err.Error(), "unique") {
			return c.JSON(http.StatusConflict, map[string]string{"message": "username already exists"})
		}
		c.Logger().Error("db error:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "internal error"})
	}

	// Create session
	token, err := s.createSession(userID)
	if err != nil {
		c.Logger().Error("session error:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "internal error"})
	}

	c.Logger().Infof("User registered: %s", req.Username)

	return c.JSON(http.StatusOK, authResponse{
		Token:   token,
		Message: "account created",
	})
}

// handleLogin verifies credentials and issues a session token
func (s *Server) handleLogin(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid request"})
	}

	// Find user
	var userID, passwordHash string
	err := s.db.QueryRow(`
		SELECT id, password_hash FROM users WHERE username = $1`,
		req.Username,
	).Scan(&userID, &passwordHash)

	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "invalid credentials"})
	}

	// Check password
	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)); err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "invalid credentials"})
	}

	// Create session
	token, err := s.createSession(userID)
	if err != nil {
		c.Logger().Error("session error:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "internal error"})
	}

	c.Logger().Infof("User logged in: %s", req.Username)

	return c.JSON(http.StatusOK, authResponse{
		Token:   token,
		Message: "logged in",
	})
}

// createSession creates a new session for a user
func (s *Server) createSession(userID string) (string, error) {
	// Generate token
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", err
	}
	token := hex.EncodeToString(tokenBytes)

	// Session expires in 30 days
	expiresAt := time.Now().Add(30 * 24 * time.Hour)

	_, err := s.db.Exec(`
		INSERT INTO sessions (id, user_id, token, expires_at)
		VALUES ($1, $2, $3, $4)`,
		uuid.New().String(), userID, token, expiresAt,
	)

	return token, err
}
