package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"hitbox/backend/internal/models"
)

const defaultRAWGBaseURL = "https://api.rawg.io/api"

// RAWGGame is the wire shape of a RAWG game detail record.
type RAWGGame struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	DescriptionRaw  string `json:"description_raw"`
	BackgroundImage string `json:"background_image"`
	Released        string `json:"released"`
	Genres          []struct {
		Name string `json:"name"`
	} `json:"genres"`
	Platforms []struct {
		Platform struct {
			Name string `json:"name"`
		} `json:"platform"`
	} `json:"platforms"`
	Developers []struct {
		Name string `json:"name"`
	} `json:"developers"`
	Publishers []struct {
		Name string `json:"name"`
	} `json:"publishers"`
}

// RAWGClient is the secondary catalog, queried by its own numeric ID
// scheme for list-add lookups.
type RAWGClient struct {
	apiKey     string
	BaseURL    string
	httpClient *http.Client
}

func NewRAWGClient(apiKey string) *RAWGClient {
	return &RAWGClient{
		apiKey:     apiKey,
		BaseURL:    defaultRAWGBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// GameByID fetches a game detail by RAWG ID, or nil if the catalog has
// no such record.
func (c *RAWGClient) GameByID(ctx context.Context, id int64) (*RAWGGame, error) {
	url := fmt.Sprintf("%s/games/%d?key=%s", c.BaseURL, id, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: rawg endpoint returned status %d", ErrUnavailable, resp.StatusCode)
	}

	var game RAWGGame
	if err := json.NewDecoder(resp.Body).Decode(&game); err != nil {
		return nil, fmt.Errorf("%w: decoding rawg response: %v", ErrUnavailable, err)
	}

	return &game, nil
}

// ToModel maps a RAWG record into the local game schema.
func (g *RAWGGame) ToModel() models.Game {
	externalID := g.ID
	game := models.Game{
		Title:       g.Name,
		Description: g.DescriptionRaw,
		CoverURL:    g.BackgroundImage,
		RAWGID:      &externalID,
	}

	if g.Released != "" {
		if released, err := time.Parse("2006-01-02", g.Released); err == nil {
			game.ReleaseDate = &released
		}
	}

	for _, genre := range g.Genres {
		game.Genres = append(game.Genres, genre.Name)
	}
	for _, platform := range g.Platforms {
		game.Platforms = append(game.Platforms, platform.Platform.Name)
	}
	if len(g.Developers) > 0 {
		game.Developer = g.Developers[0].Name
	}
	if len(g.Publishers) > 0 {
		game.Publisher = g.Publishers[0].Name
	}

	return game
}
