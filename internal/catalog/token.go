package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// ErrUnavailable marks any catalog failure after retries are spent.
// Handlers treat it as "degrade this request", not a fatal condition.
var ErrUnavailable = errors.New("catalog unavailable")

const (
	defaultTokenURL = "https://id.twitch.tv/oauth2/token"

	// Refresh the token once it is within this window of expiring.
	refreshWindow = 60 * time.Second

	tokenFetchAttempts = 3
	tokenFetchTimeout  = 15 * time.Second
)

// TokenManager owns the shared IGDB bearer token. Concurrent callers
// needing a refresh are collapsed into a single upstream request.
type TokenManager struct {
	clientID     string
	clientSecret string
	TokenURL     string
	httpClient   *http.Client
	retryDelay   time.Duration

	mu        sync.Mutex
	token     string
	expiresAt time.Time

	group singleflight.Group
}

// NewTokenManager creates a token manager for the Twitch OAuth2
// client-credentials endpoint.
func NewTokenManager(clientID, clientSecret string) *TokenManager {
	return &TokenManager{
		clientID:     clientID,
		clientSecret: clientSecret,
		TokenURL:     defaultTokenURL,
		httpClient:   &http.Client{Timeout: tokenFetchTimeout},
		retryDelay:   2 * time.Second,
	}
}

// Token returns a bearer token valid for at least the refresh window,
// fetching a new one if needed.
func (m *TokenManager) Token(ctx context.Context) (string, error) {
	m.mu.Lock()
	if m.token != "" && time.Until(m.expiresAt) > refreshWindow {
		token := m.token
		m.mu.Unlock()
		return token, nil
	}
	m.mu.Unlock()

	v, err, _ := m.group.Do("token", func() (interface{}, error) {
		// A caller that queued behind a finished refresh can use its result.
		m.mu.Lock()
		if m.token != "" && time.Until(m.expiresAt) > refreshWindow {
			token := m.token
			m.mu.Unlock()
			return token, nil
		}
		m.mu.Unlock()

		token, expiresIn, err := m.fetch(ctx)
		if err != nil {
			return nil, err
		}

		m.mu.Lock()
		m.token = token
		m.expiresAt = time.Now().Add(time.Duration(expiresIn) * time.Second)
		m.mu.Unlock()
		return token, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// fetch requests a fresh token, retrying transient failures with a
// fixed backoff. Exhausted retries surface as ErrUnavailable.
func (m *TokenManager) fetch(ctx context.Context) (token string, expiresIn int64, err error) {
	var lastErr error
	for attempt := 1; attempt <= tokenFetchAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-time.After(m.retryDelay):
			case <-ctx.Done():
				return "", 0, fmt.Errorf("%w: %v", ErrUnavailable, ctx.Err())
			}
		}

		token, expiresIn, lastErr = m.fetchOnce(ctx)
		if lastErr == nil {
			return token, expiresIn, nil
		}
	}
	return "", 0, fmt.Errorf("%w: token fetch failed after %d attempts: %v", ErrUnavailable, tokenFetchAttempts, lastErr)
}

func (m *TokenManager) fetchOnce(ctx context.Context) (string, int64, error) {
	form := url.Values{
		"client_id":     {m.clientID},
		"client_secret": {m.clientSecret},
		"grant_type":    {"client_credentials"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", 0, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return "", 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", 0, fmt.Errorf("token endpoint returned status %d", resp.StatusCode)
	}

	var body struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", 0, err
	}
	if body.AccessToken == "" {
		return "", 0, errors.New("token endpoint returned an empty token")
	}

	return body.AccessToken, body.ExpiresIn, nil
}
