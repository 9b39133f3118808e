// Package api implements the REST backend port. It translates domain
// values to the backend's JSON wire format and back, normalizing ids to
// strings on the way in so the rest of the app never sees the backend's
// numeric ids.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/TomasUhiaOtero/Kairos/internal/domain"
)

// Config holds connection settings for the backend.
type Config struct {
	// BaseURL is the backend origin, e.g. "https://kairos.example.com".
	// Trailing slashes are stripped.
	BaseURL string
	// Token is sent as a Bearer token when non-empty.
	Token string
	// Timeout bounds each request. Zero means 30 seconds.
	Timeout time.Duration
}

// Client talks to the Kairos REST backend.
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient creates a backend client.
func NewClient(cfg Config) *Client {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

// Ensure the client satisfies the backend port.
var _ domain.RemoteAPI = (*Client)(nil)

// errorEnvelope is the backend's error payload shape. Different route
// families use different keys, so all of them are tried.
type errorEnvelope struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Msg     string `json:"msg"`
	Detail  string `json:"detail"`
}

func (e errorEnvelope) text(fallback string) string {
	msg := e.Message
	if msg == "" {
		msg = e.Error
	}
	if msg == "" {
		msg = e.Msg
	}
	if msg == "" {
		msg = fallback
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// roundTrip performs one HTTP exchange and returns the status code and
// raw body. Transport failures are returned as-is; HTTP-level rejections
// are left to the caller, which may want to retry with another verb.
func (c *Client) roundTrip(ctx context.Context, method, path string, query url.Values, header http.Header, body any) (int, []byte, error) {
	u := c.cfg.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return 0, nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Set(k, v)
		}
	}

	log.Debug().Str("method", method).Str("path", path).Msg("backend request")
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, raw, nil
}

// do performs a request and decodes a 2xx response into out (out may be
// nil). Non-2xx responses become *domain.RemoteError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	status, raw, err := c.roundTrip(ctx, method, path, nil, nil, body)
	if err != nil {
		return err
	}
	if status < 200 || status > 299 {
		return remoteErr(status, raw)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func remoteErr(status int, raw []byte) error {
	var env errorEnvelope
	_ = json.Unmarshal(raw, &env)
	return &domain.RemoteError{
		Status:  status,
		Message: env.text(http.StatusText(status)),
	}
}

// methodNotAllowed detects verb rejections, including backends that wrap
// a 405 inside a 500 with "405" in the message.
func methodNotAllowed(status int, raw []byte) bool {
	if status == http.StatusMethodNotAllowed {
		return true
	}
	var env errorEnvelope
	_ = json.Unmarshal(raw, &env)
	return status == http.StatusInternalServerError && strings.Contains(env.text(""), "405")
}
