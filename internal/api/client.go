package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

const apiKeyHeader = "Api-Key"

type Client struct {
	baseURL string

	headers http.Header

	apiKey string

	userAgent string

	httpClient *http.Client
}

type ClientOptions struct {
	BaseURL   string
	Headers   map[string]string
	APIKey    string
	UserAgent string
}

func NewClient(opts ClientOptions) *Client {
	headers := make(http.Header, len(opts.Headers))
	for k, v := range opts.Headers {
		headers.Set(k, v)
	}

	return &Client{
		baseURL:    strings.TrimSuffix(opts.BaseURL, "/"),
		headers:    headers,
		apiKey:     opts.APIKey,
		userAgent:  opts.UserAgent,
		httpClient: http.DefaultClient,
	}
}

func (c *Client) SetAPIKey(apiKey string) {
	c.apiKey = apiKey
}

// StatusError is returned for every reply whose status is not exactly 200.
type StatusError struct {
	Code int
	Body []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request failed with status %d: %s", e.Code, e.Body)
}

// ErrUnexpectedResponse is returned when a 200 reply lacks the field a
// wrapper derives its result from.
var ErrUnexpectedResponse = errors.New("unexpected response")

func missingField(name string) error {
	return fmt.Errorf("%w: missing %q", ErrUnexpectedResponse, name)
}

// StatusCode reports the HTTP status carried by err, if any.
func StatusCode(err error) (int, bool) {
	var serr *StatusError
	if errors.As(err, &serr) {
		return serr.Code, true
	}
	return 0, false
}

func (c *Client) Get(
	ctx context.Context,
	path string,
	query url.Values,
	headers http.Header,
) (*http.Response, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, query, headers, nil)
	if err != nil {
		return nil, err
	}

	return c.doRequest(req)
}

func (c *Client) GetInto(
	ctx context.Context,
	path string,
	query url.Values,
	headers http.Header,
	into any,
) error {
	resp, err := c.Get(ctx, path, query, headers)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return decodeBody(resp, into)
}

func (c *Client) Post(
	ctx context.Context,
	path string,
	query url.Values,
	headers http.Header,
	body io.Reader,
) (*http.Response, error) {
	req, err := c.newRequest(ctx, http.MethodPost, path, query, headers, body)
	if err != nil {
		return nil, err
	}

	return c.doRequest(req)
}

func (c *Client) PostInto(
	ctx context.Context,
	path string,
	query url.Values,
	headers http.Header,
	body io.Reader,
	into any,
) error {
	resp, err := c.Post(ctx, path, query, headers, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return decodeBody(resp, into)
}

// postJSON sends payload as a JSON body and decodes the reply into into.
func (c *Client) postJSON(ctx context.Context, path string, payload any, into any) error {
	body, err := toJSONBody(payload)
	if err != nil {
		return err
	}

	headers := make(http.Header)
	headers.Set("Content-Type", "application/json")

	return c.PostInto(ctx, path, nil, headers, body, into)
}

func (c *Client) newRequest(
	ctx context.Context,
	method,
	path string,
	query url.Values,
	headers http.Header,
	body io.Reader,
) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}

	req.Header = c.headers.Clone()
	for k, vs := range headers {
		req.Header[k] = append([]string(nil), vs...)
	}

	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}

	return req, nil
}

func (c *Client) doRequest(req *http.Request) (*http.Response, error) {
	slog.Debug("Sending API request", "method", req.Method, "url", req.URL.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	slog.Debug("API response received", "method", req.Method, "url", req.URL.String(), "status", resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, &StatusError{Code: resp.StatusCode, Body: body}
	}

	return resp, nil
}

func decodeBody(resp *http.Response, into any) error {
	if err := json.NewDecoder(resp.Body).Decode(into); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}

func toJSONBody(req any) (io.Reader, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(req); err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}
	return &buf, nil
}

// pathID escapes an opaque identifier for use as a single path segment.
func pathID(id string) string {
	return "/" + url.PathEscape(id)
}

// bodyID renders an opaque identifier for a JSON body: numeric identifiers
// are sent as JSON numbers, anything else as a string.
func bodyID(id string) any {
	if id == "" || (len(id) > 1 && id[0] == '0') {
		return id
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return id
		}
	}
	return json.Number(id)
}
