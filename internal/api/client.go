// Package api is the HTTP client for the passport backend. All real work,
// extraction, persistence and authentication, happens on the server side;
// this client just moves records back and forth and attaches the bearer
// token.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/stamptrail/stampbook/internal/model"
)

// TokenSource supplies the current bearer token, or "" when logged out.
// session.Store.Token satisfies it.
type TokenSource func() string

// Client talks to the passport backend.
type Client struct {
	baseURL    string
	token      TokenSource
	httpClient *http.Client
}

// NewClient creates a client for the backend at baseURL.
func NewClient(baseURL string, token TokenSource) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	return c.authenticate(ctx, "/api/auth/login", username, password)
}

// Signup creates an account and returns its first session token.
func (c *Client) Signup(ctx context.Context, username, password string) (string, error) {
	return c.authenticate(ctx, "/api/auth/signup", username, password)
}

func (c *Client) authenticate(ctx context.Context, path, username, password string) (string, error) {
	body, err := json.Marshal(credentialsRequest{Username: username, Password: password})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to connect: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", serviceError(resp)
	}

	var result tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("malformed response: %w", err)
	}
	if result.Token == "" {
		return "", fmt.Errorf("server returned no token")
	}
	return result.Token, nil
}

// Upload sends a passport page image for extraction and returns the parsed
// rows. The multipart field name is part of the backend contract.
func (c *Client) Upload(ctx context.Context, filename string, r io.Reader) ([]model.Entry, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("passportPage", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/passport/upload", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, serviceError(resp)
	}

	var rows []model.Entry
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("malformed response: %w", err)
	}
	return rows, nil
}

// SaveEntries persists the normalized grid rows.
func (c *Client) SaveEntries(ctx context.Context, rows []model.Entry) error {
	body, err := json.Marshal(rows)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/passport/data", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("save failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return serviceError(resp)
	}
	return nil
}

type historyResponse struct {
	Data []model.Entry `json:"data"`
}

type historyMapResponse struct {
	Data []model.MapEntry `json:"data"`
}

// History fetches the caller's persisted records.
func (c *Client) History(ctx context.Context) ([]model.Entry, error) {
	var result historyResponse
	if err := c.getJSON(ctx, "/api/passport/user-history", &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

// HistoryMap fetches the records with geocoded coordinates for the map
// screen.
func (c *Client) HistoryMap(ctx context.Context) ([]model.MapEntry, error) {
	var result historyMapResponse
	if err := c.getJSON(ctx, "/api/passport/user-history-map", &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return serviceError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("malformed response: %w", err)
	}
	return nil
}

func (c *Client) authorize(req *http.Request) {
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// serviceError surfaces the server-provided message when the body carries
// one, falling back to the HTTP status.
func serviceError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return fmt.Errorf("server error: %s", payload.Message)
		}
		if payload.Error != "" {
			return fmt.Errorf("server error: %s", payload.Error)
		}
	}
	return fmt.Errorf("server error: %s", resp.Status)
}
