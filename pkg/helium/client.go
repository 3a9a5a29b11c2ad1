package helium

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultBaseURL is the public API endpoint.
	DefaultBaseURL = "https://api.helium.io/v1"

	defaultUserAgent = "helium-sync"
)

// Config configures a Client. The zero value targets the public API with
// a retrying HTTP transport.
type Config struct {
	// BaseURL overrides the API endpoint. Defaults to DefaultBaseURL.
	BaseURL string
	// HTTPClient overrides the transport. Retry, backoff and pooling
	// behavior belong to this client, not to the library.
	HTTPClient *http.Client
	// UserAgent overrides the User-Agent header sent with every request.
	UserAgent string
}

// Client queries the blockchain REST API. It holds no per-call state and
// is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a new API client.
func NewClient(cfg Config) (*Client, error) {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("invalid base URL: scheme must be http or https")
	}
	if strings.TrimSpace(parsed.Host) == "" {
		return nil, fmt.Errorf("invalid base URL: host is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		rc := retryablehttp.NewClient()
		rc.Logger = newRetryLogger(log.With().Str("component", "heliumApi").Logger())
		httpClient = rc.StandardClient()
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &Client{
		baseURL:    strings.TrimRight(parsed.String(), "/"),
		httpClient: httpClient,
		userAgent:  userAgent,
	}, nil
}

// BaseURL returns the endpoint the client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// envelope is the wire frame around every response. List responses carry
// a cursor when further pages exist.
type envelope struct {
	Data   json.RawMessage `json:"data"`
	Cursor string          `json:"cursor"`
}

type errorBody struct {
	Error string `json:"error"`
}

// fetch performs a single GET and decodes the data envelope into T.
func fetch[T any](ctx context.Context, c *Client, path string, params url.Values) (T, error) {
	var out T
	env, err := c.getEnvelope(ctx, path, params, "")
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return out, &DecodeError{Path: path, Err: err}
	}
	return out, nil
}

// fetchStream returns a lazy sequence over a paginated list endpoint. No
// request is issued until the stream is first advanced.
func fetchStream[T any](c *Client, path string, params url.Values) *Stream[T] {
	return &Stream[T]{
		client: c,
		path:   path,
		params: params,
	}
}

func (c *Client) getEnvelope(ctx context.Context, path string, params url.Values, cursor string) (*envelope, error) {
	requestURL := c.baseURL + path
	query := url.Values{}
	for key, values := range params {
		query[key] = values
	}
	if cursor != "" {
		query.Set("cursor", cursor)
	}
	if encoded := query.Encode(); encoded != "" {
		requestURL = requestURL + "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var structured errorBody
		if err := json.Unmarshal(body, &structured); err == nil && structured.Error != "" {
			apiErr.Message = structured.Error
		} else {
			apiErr.Message = strings.TrimSpace(string(body))
		}
		return nil, apiErr
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	return &env, nil
}
