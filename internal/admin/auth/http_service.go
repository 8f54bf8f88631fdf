package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// HTTPClient matches the subset of http.Client used by HTTPService.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// HTTPService implements Service against the backend's auth endpoints:
// POST /admin/signin and POST /api/user/check.
type HTTPService struct {
	base   *url.URL
	client HTTPClient
}

// NewHTTPService constructs a Service that talks to the backend auth API.
func NewHTTPService(baseURL string, client HTTPClient) (*HTTPService, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("auth: base URL is required")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("auth: parse base URL: %w", err)
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPService{base: parsed, client: client}, nil
}

// SignIn posts the credentials and returns the issued token with its expiry.
// The backend reports expiry as a millisecond epoch timestamp.
func (s *HTTPService) SignIn(ctx context.Context, username, password string) (Credentials, error) {
	body := map[string]string{"username": username, "password": password}
	req, err := s.newJSONRequest(ctx, "/admin/signin", body, "")
	if err != nil {
		return Credentials{}, err
	}

	resp, err := s.do(req)
	if err != nil {
		return Credentials{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusBadRequest {
		return Credentials{}, fmt.Errorf("%w: %s", ErrInvalidCredentials, s.messageFromResponse(resp))
	}
	if resp.StatusCode != http.StatusOK {
		return Credentials{}, s.errorFromResponse(resp)
	}

	var payload struct {
		Token   string `json:"token"`
		Expired int64  `json:"expired"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Credentials{}, fmt.Errorf("auth: decode signin response: %w", err)
	}
	if payload.Token == "" {
		return Credentials{}, errors.New("auth: signin response carried no token")
	}
	return Credentials{
		Token:  payload.Token,
		Expiry: time.UnixMilli(payload.Expired),
	}, nil
}

// Check validates the token against the backend session-check endpoint.
func (s *HTTPService) Check(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return ErrTokenRejected
	}
	req, err := s.newJSONRequest(ctx, "/api/user/check", nil, token)
	if err != nil {
		return err
	}

	resp, err := s.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return fmt.Errorf("%w: %s", ErrTokenRejected, s.messageFromResponse(resp))
	}
	if resp.StatusCode != http.StatusOK {
		return s.errorFromResponse(resp)
	}
	io.Copy(io.Discard, resp.Body)
	return nil
}

func (s *HTTPService) do(req *http.Request) (*http.Response, error) {
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("auth: request failed: %w", err)
	}
	return resp, nil
}

func (s *HTTPService) newJSONRequest(ctx context.Context, endpoint string, payload any, token string) (*http.Request, error) {
	var buf bytes.Buffer
	if payload != nil {
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(payload); err != nil {
			return nil, fmt.Errorf("auth: encode payload: %w", err)
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.resolve(endpoint), &buf)
	if err != nil {
		return nil, fmt.Errorf("auth: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

func (s *HTTPService) resolve(endpoint string) string {
	trimmed := strings.TrimPrefix(endpoint, "/")
	ref := &url.URL{Path: trimmed}
	return s.base.ResolveReference(ref).String()
}

func (s *HTTPService) messageFromResponse(resp *http.Response) string {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	var payload struct {
		Message string `json:"message"`
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
			return payload.Message
		}
	}
	return http.StatusText(resp.StatusCode)
}

func (s *HTTPService) errorFromResponse(resp *http.Response) error {
	return fmt.Errorf("auth: backend error (%d): %s", resp.StatusCode, s.messageFromResponse(resp))
}
