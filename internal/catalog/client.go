package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.igdb.com/v4"

// GameFields is the field list requested for every game query.
var GameFields = []string{
	"name",
	"summary",
	"cover.url",
	"first_release_date",
	"total_rating",
	"genres.name",
	"platforms.name",
	"involved_companies.company.name",
	"involved_companies.developer",
	"involved_companies.publisher",
}

// Game is the wire shape of an IGDB game record.
type Game struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Summary          string  `json:"summary"`
	FirstReleaseDate int64   `json:"first_release_date"`
	TotalRating      float64 `json:"total_rating"`
	Cover            struct {
		URL string `json:"url"`
	} `json:"cover"`
	Genres    []namedRef `json:"genres"`
	Platforms []namedRef `json:"platforms"`

	InvolvedCompanies []involvedCompany `json:"involved_companies"`
}

type namedRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type involvedCompany struct {
	Company   namedRef `json:"company"`
	Developer bool     `json:"developer"`
	Publisher bool     `json:"publisher"`
}

// Client queries the IGDB catalog, attaching the shared bearer token
// to every request.
type Client struct {
	tokens     *TokenManager
	clientID   string
	BaseURL    string
	httpClient *http.Client
}

// NewClient creates an IGDB client on top of a token manager.
func NewClient(clientID string, tokens *TokenManager) *Client {
	return &Client{
		tokens:     tokens,
		clientID:   clientID,
		BaseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Games runs a query against the games endpoint.
func (c *Client) Games(ctx context.Context, q *Query) ([]Game, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/games", strings.NewReader(q.Build()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Client-ID", c.clientID)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: games endpoint returned status %d", ErrUnavailable, resp.StatusCode)
	}

	var games []Game
	if err := json.NewDecoder(resp.Body).Decode(&games); err != nil {
		return nil, fmt.Errorf("%w: decoding games response: %v", ErrUnavailable, err)
	}

	return games, nil
}

// GameByID fetches the single game with the given IGDB ID, or nil if
// the catalog has no such record.
func (c *Client) GameByID(ctx context.Context, id int64) (*Game, error) {
	q := NewQuery().
		Fields(GameFields...).
		Where(fmt.Sprintf("id = %d", id)).
		Limit(1)

	games, err := c.Games(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(games) == 0 {
		return nil, nil
	}
	return &games[0], nil
}
