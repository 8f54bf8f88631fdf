package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
)

// HTTPClient matches the subset of http.Client used by HTTPService.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// HTTPService implements Service against the REST endpoints of the backend
// catalog API. Admin routes live under /api/{apiPath}/admin/.
type HTTPService struct {
	base    *url.URL
	apiPath string
	client  HTTPClient
}

// NewHTTPService constructs a Service that talks to the backend catalog API.
func NewHTTPService(baseURL, apiPath string, client HTTPClient) (*HTTPService, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("catalog: base URL is required")
	}
	if strings.TrimSpace(apiPath) == "" {
		return nil, errors.New("catalog: API path segment is required")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("catalog: parse base URL: %w", err)
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPService{
		base:    parsed,
		apiPath: strings.Trim(apiPath, "/"),
		client:  client,
	}, nil
}

// List retrieves every product visible to the admin account.
func (s *HTTPService) List(ctx context.Context, token string) ([]Product, error) {
	req, err := s.newRequest(ctx, http.MethodGet, s.adminPath("products"), nil, token)
	if err != nil {
		return nil, err
	}
	resp, err := s.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, s.errorFromResponse(resp)
	}

	var payload struct {
		Products []Product `json:"products"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("catalog: decode product list: %w", err)
	}
	return payload.Products, nil
}

// Create stores a new product record.
func (s *HTTPService) Create(ctx context.Context, token string, product Product) error {
	req, err := s.newJSONRequest(ctx, http.MethodPost, s.adminPath("product"), envelope{Data: product}, token)
	if err != nil {
		return err
	}
	return s.expectOK(req)
}

// Update replaces the product identified by product.ID.
func (s *HTTPService) Update(ctx context.Context, token string, product Product) error {
	if strings.TrimSpace(product.ID) == "" {
		return errors.New("catalog: update requires a product ID")
	}
	endpoint := s.adminPath(path.Join("product", url.PathEscape(product.ID)))
	req, err := s.newJSONRequest(ctx, http.MethodPut, endpoint, envelope{Data: product}, token)
	if err != nil {
		return err
	}
	return s.expectOK(req)
}

// Delete removes the product with the given ID.
func (s *HTTPService) Delete(ctx context.Context, token, id string) error {
	if strings.TrimSpace(id) == "" {
		return errors.New("catalog: delete requires a product ID")
	}
	endpoint := s.adminPath(path.Join("product", url.PathEscape(id)))
	req, err := s.newRequest(ctx, http.MethodDelete, endpoint, nil, token)
	if err != nil {
		return err
	}
	return s.expectOK(req)
}

// envelope is the mutation body wrapper expected by the backend.
type envelope struct {
	Data Product `json:"data"`
}

func (s *HTTPService) adminPath(suffix string) string {
	return path.Join("/api", s.apiPath, "admin", suffix)
}

func (s *HTTPService) expectOK(req *http.Request) error {
	resp, err := s.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return s.errorFromResponse(resp)
	}
	io.Copy(io.Discard, resp.Body)
	return nil
}

func (s *HTTPService) do(req *http.Request) (*http.Response, error) {
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog: request failed: %w", err)
	}
	return resp, nil
}

func (s *HTTPService) newRequest(ctx context.Context, method, endpoint string, body io.Reader, token string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, s.resolve(endpoint), body)
	if err != nil {
		return nil, fmt.Errorf("catalog: build request: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

func (s *HTTPService) newJSONRequest(ctx context.Context, method, endpoint string, payload any, token string) (*http.Request, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		return nil, fmt.Errorf("catalog: encode payload: %w", err)
	}
	req, err := s.newRequest(ctx, method, endpoint, &buf, token)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func (s *HTTPService) resolve(endpoint string) string {
	trimmed := strings.TrimPrefix(endpoint, "/")
	ref := &url.URL{Path: trimmed}
	return s.base.ResolveReference(ref).String()
}

func (s *HTTPService) errorFromResponse(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))

	if resp.StatusCode == http.StatusNotFound {
		return ErrProductNotFound
	}

	var payload struct {
		Message string `json:"message"`
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
			return fmt.Errorf("catalog: backend error (%d): %s", resp.StatusCode, payload.Message)
		}
		return fmt.Errorf("catalog: backend error (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return fmt.Errorf("catalog: backend error (%d): %s", resp.StatusCode, http.StatusText(resp.StatusCode))
}
