package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/gmehub/gme-app/internal/model"
)

// Header carrying the static audio-service key.
const apiKeyHeader = "X-API-Key"

// AudioClient lists analysis providers on the audio processing service.
// When an API key is configured it authenticates with the key header,
// otherwise it rides on the shared session cookie jar.
type AudioClient struct {
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewAudioClient creates an audio service client. The jar is shared with
// the management client so cookie-based auth works without a key.
func NewAudioClient(baseURL, apiKey string, timeout time.Duration, jar http.CookieJar, version string, logger *zap.Logger) *AudioClient {
	return &AudioClient{
		baseURL:   baseURL,
		apiKey:    apiKey,
		userAgent: "gme-app/" + version,
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Available reports whether the audio service is configured.
func (c *AudioClient) Available() bool {
	return c.baseURL != ""
}

// ListProviders fetches the audio analysis providers.
func (c *AudioClient) ListProviders(ctx context.Context) ([]model.AudioProvider, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/providers", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, wrapTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, buildResponseError(resp)
	}

	var providers []model.AudioProvider
	if err := json.NewDecoder(resp.Body).Decode(&providers); err != nil {
		return nil, fmt.Errorf("failed to decode providers: %w", err)
	}

	c.logger.Debug("listed audio providers", zap.Int("count", len(providers)))
	return providers, nil
}
