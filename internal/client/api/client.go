// Package api implements the HTTP client for the miniter server used by
// the CLI.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dmitrijs2005/miniter/internal/common"
)

// User is an account record as returned by the server.
type User struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Profile string `json:"profile"`
}

// TimelineEntry is one post in a timeline response.
type TimelineEntry struct {
	UserID int64  `json:"user_id"`
	Tweet  string `json:"tweet"`
}

// Timeline is the server's timeline response.
type Timeline struct {
	UserID   int64           `json:"user_id"`
	Timeline []TimelineEntry `json:"timeline"`
}

// Client talks JSON over HTTP to a miniter server. The access token
// obtained at login is attached to protected requests.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	accessToken string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// SetAccessToken stores the token attached to subsequent protected calls.
func (c *Client) SetAccessToken(token string) {
	c.accessToken = token
}

// HasAccessToken reports whether a login token is held.
func (c *Client) HasAccessToken() bool {
	return c.accessToken != ""
}

// doJSON sends a request with an optional JSON body and decodes a JSON
// response into out (if out is non-nil). Non-2xx statuses are mapped to
// errors; 401 becomes common.ErrorUnauthorized.
func (c *Client) doJSON(ctx context.Context, method, path string, body any, out any) error {

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.accessToken != "" {
		req.Header.Set(common.AccessTokenHeaderName, "Bearer "+c.accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return common.ErrorUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&e); err == nil && e.Error != "" {
			return fmt.Errorf("server error: %s", e.Error)
		}
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// Ping checks server liveness.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/ping", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}

// SignUp registers a new account and returns the created user.
func (c *Client) SignUp(ctx context.Context, name, email, profile, password string) (*User, error) {
	body := map[string]string{
		"name":     name,
		"email":    email,
		"profile":  profile,
		"password": password,
	}
	user := &User{}
	if err := c.doJSON(ctx, http.MethodPost, "/sign-up", body, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login exchanges credentials for an access token and stores it on the
// client for subsequent protected calls.
func (c *Client) Login(ctx context.Context, email, password string) error {
	body := map[string]string{"email": email, "password": password}
	var resp struct {
		AccessToken string `json:"access_token"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/login", body, &resp); err != nil {
		return err
	}
	c.accessToken = resp.AccessToken
	return nil
}

// Tweet publishes a post as the logged-in user.
func (c *Client) Tweet(ctx context.Context, text string) error {
	return c.doJSON(ctx, http.MethodPost, "/tweet", map[string]string{"tweet": text}, nil)
}

// Follow adds the user with followeeID to the logged-in user's followees.
func (c *Client) Follow(ctx context.Context, followeeID int64) error {
	return c.doJSON(ctx, http.MethodPost, "/follow", map[string]int64{"follow": followeeID}, nil)
}

// Unfollow removes the user with followeeID from the logged-in user's
// followees.
func (c *Client) Unfollow(ctx context.Context, followeeID int64) error {
	return c.doJSON(ctx, http.MethodPost, "/unfollow", map[string]int64{"unfollow": followeeID}, nil)
}

// Timeline fetches the timeline of userID. No login is required.
func (c *Client) Timeline(ctx context.Context, userID int64) (*Timeline, error) {
	timeline := &Timeline{}
	path := fmt.Sprintf("/timeline/%d", userID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, timeline); err != nil {
		return nil, err
	}
	return timeline, nil
}
