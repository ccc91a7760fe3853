package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/sopeal/AskYourFeed/configs"
	"github.com/sopeal/AskYourFeed/internal/domain"
	"github.com/sopeal/AskYourFeed/internal/ports/output"

	"github.com/sirupsen/logrus"
)

const (
	headerAuthorization = "Authorization"
	headerContentType   = "Content-Type"
	contentTypeJSON     = "application/json"
)

// Compile-time check to ensure Client implements FeedQAAPI interface
var _ output.FeedQAAPI = (*Client)(nil)

// Client struct - Output adapter for the AskYourFeed backend REST API.
// Attaches the bearer token from the session store when one is present and
// carries ambient cookie credentials on every request. Non-2xx responses are
// normalized into *domain.APIError; the client never retries.
type Client struct {
	httpClient *http.Client
	baseURL    string
	sessions   output.SessionStore
}

// NewClient func - Creates new AskYourFeed API client adapter
func NewClient(config configs.API, sessions output.SessionStore) (*Client, error) {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	timeout := time.Duration(config.Timeout) * time.Second
	if config.Timeout <= 0 {
		timeout = 60 * time.Second
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	httpClient := &http.Client{
		Timeout: timeout,
		Jar:     jar,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 100,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	logrus.Infof("AskYourFeed API client initialized with base URL: %s, timeout: %v", baseURL, timeout)

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		sessions:   sessions,
	}, nil
}

// doRequest performs an HTTP request and handles common error cases.
func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set(headerContentType, contentTypeJSON)
	}
	if c.sessions != nil {
		if sess, err := c.sessions.Load(); err == nil && sess != nil {
			req.Header.Set(headerAuthorization, "Bearer "+sess.Token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// No response received at all: timeouts, refused connections, DNS.
		return &domain.APIError{
			Code:    domain.CodeNetworkError,
			Message: err.Error(),
		}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.APIError{
			Code:    domain.CodeNetworkError,
			Message: err.Error(),
		}
	}

	if resp.StatusCode >= 400 {
		return parseError(resp.StatusCode, respBody)
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}

	return nil
}

// get performs a GET request.
func (c *Client) get(ctx context.Context, path string, result interface{}) error {
	return c.doRequest(ctx, http.MethodGet, path, nil, result)
}

// post performs a POST request.
func (c *Client) post(ctx context.Context, path string, body interface{}, result interface{}) error {
	return c.doRequest(ctx, http.MethodPost, path, body, result)
}

// delete performs a DELETE request.
func (c *Client) delete(ctx context.Context, path string, result interface{}) error {
	return c.doRequest(ctx, http.MethodDelete, path, nil, result)
}

// parseError parses an error response from the API into the normalized shape.
func parseError(statusCode int, body []byte) error {
	// Standard envelope: {"error": {"code", "message", "details"}}
	var envelope struct {
		Error struct {
			Code    string                 `json:"code"`
			Message string                 `json:"message"`
			Details map[string]interface{} `json:"details,omitempty"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Code != "" {
		return &domain.APIError{
			HTTPStatus: statusCode,
			Code:       envelope.Error.Code,
			Message:    envelope.Error.Message,
			Details:    envelope.Error.Details,
		}
	}

	// Flat fallback some middlewares emit
	var flat struct {
		Code    string                 `json:"code"`
		Message string                 `json:"message"`
		Details map[string]interface{} `json:"details,omitempty"`
	}
	if err := json.Unmarshal(body, &flat); err == nil && flat.Message != "" {
		return &domain.APIError{
			HTTPStatus: statusCode,
			Code:       flat.Code,
			Message:    flat.Message,
			Details:    flat.Details,
		}
	}

	return &domain.APIError{
		HTTPStatus: statusCode,
		Code:       http.StatusText(statusCode),
		Message:    string(body),
	}
}
