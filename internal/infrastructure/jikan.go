package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	DefaultJikanURL = "https://api.jikan.moe/v4"
	DefaultTimeout  = 30 * time.Second
)

// JikanGateway issues GET requests against the Jikan API and unwraps the "data" envelope
type JikanGateway struct {
	baseURL string
	client  *http.Client
}

// NewJikanGateway initializes a JikanGateway. An empty baseURL falls back to the public API.
func NewJikanGateway(baseURL string, timeout time.Duration) *JikanGateway {
	if baseURL == "" {
		baseURL = DefaultJikanURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &JikanGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

type envelope struct {
	Data json.RawMessage `json:"data"`
}

// Get fetches baseURL+path and decodes the payload found under "data" into v
func (g JikanGateway) Get(ctx context.Context, path string, v any) error {
	url := g.baseURL + path
	log.Debug().Str("url", url).Msg("Requesting Jikan")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &UpstreamError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Status:     http.StatusText(resp.StatusCode),
		}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return &MalformedResponseError{URL: url, Reason: "body is not JSON", Err: err}
	}
	if len(env.Data) == 0 || bytes.Equal(env.Data, []byte("null")) {
		return &MalformedResponseError{URL: url, Reason: `missing "data" envelope`}
	}
	if err := json.Unmarshal(env.Data, v); err != nil {
		return &MalformedResponseError{URL: url, Reason: "unexpected payload shape", Err: err}
	}
	return nil
}
