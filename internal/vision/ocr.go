package vision

import (
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

const defaultEndpoint = "https://api.ocr.space/parse/image"

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("ocr service not configured")

// OCRService extracts raw text from an image that is reachable at a public URL.
type OCRService interface {
	ParseImageURL(ctx context.Context, imageURL string) (string, error)
}

// Client calls the ocr.space parse endpoint.
type Client struct {
	apiKey     string
	engine     string
	endpoint   string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint overrides the parse endpoint, mainly for tests.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) { c.endpoint = endpoint }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// NewClient constructs an ocr.space client. Engine 2 handles ID cards better
// than the default engine.
func NewClient(apiKey, engine string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("OCR_SPACE_API_KEY is required")
	}
	if strings.TrimSpace(engine) == "" {
		engine = "2"
	}
	c := &Client{
		apiKey:   apiKey,
		engine:   engine,
		endpoint: defaultEndpoint,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type parseResponse struct {
	ParsedResults []struct {
		ParsedText string `json:"ParsedText"`
	} `json:"ParsedResults"`
	IsErroredOnProcessing bool            `json:"IsErroredOnProcessing"`
	ErrorMessage          json.RawMessage `json:"ErrorMessage"`
}

// ParseImageURL submits an image URL for recognition and returns the raw text.
func (c *Client) ParseImageURL(ctx context.Context, imageURL string) (string, error) {
	form := url.Values{}
	form.Set("url", imageURL)
	form.Set("apikey", c.apiKey)
	form.Set("OCREngine", c.engine)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ocr.space status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed parseResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("ocr.space response parse: %w", err)
	}
	if parsed.IsErroredOnProcessing {
		return "", fmt.Errorf("ocr.space processing error: %s", errorMessage(parsed.ErrorMessage))
	}
	if len(parsed.ParsedResults) == 0 {
		return "", fmt.Errorf("ocr.space response missing parsed results")
	}

	return parsed.ParsedResults[0].ParsedText, nil
}

// errorMessage renders ocr.space's ErrorMessage field, which is sometimes a
// string and sometimes an array of strings.
func errorMessage(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "unknown error"
	}
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return single
	}
	var many []string
	if err := json.Unmarshal(raw, &many); err == nil {
		return strings.Join(many, "; ")
	}
	return string(raw)
}

// PlaceholderClient is a stub implementation until provider wiring is added.
type PlaceholderClient struct{}

// ParseImageURL returns ErrNotConfigured.
func (PlaceholderClient) ParseImageURL(ctx context.Context, imageURL string) (string, error) {
	_ = ctx
	_ = imageURL
	return "", ErrNotConfigured
}

var _ OCRService = (*Client)(nil)
