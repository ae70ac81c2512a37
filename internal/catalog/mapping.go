package catalog

import (
	"strings"
	"time"

	"hitbox/backend/internal/models"
)

// ImageURL normalizes a catalog image reference: protocol-relative
// URLs become absolute and thumbnail renditions are upgraded to
// cover-sized ones.
func ImageURL(raw string) string {
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "//") {
		raw = "https:" + raw
	}
	return strings.Replace(raw, "/t_thumb/", "/t_cover_big/", 1)
}

// ToModel maps a catalog record into the local game schema.
func (g *Game) ToModel() models.Game {
	externalID := g.ID
	game := models.Game{
		Title:       g.Name,
		Description: g.Summary,
		CoverURL:    ImageURL(g.Cover.URL),
		IGDBID:      &externalID,
	}

	if g.FirstReleaseDate > 0 {
		released := time.Unix(g.FirstReleaseDate, 0).UTC()
		game.ReleaseDate = &released
	}

	for _, genre := range g.Genres {
		game.Genres = append(game.Genres, genre.Name)
	}
	for _, platform := range g.Platforms {
		game.Platforms = append(game.Platforms, platform.Name)
	}

	for _, ic := range g.InvolvedCompanies {
		if ic.Developer && game.Developer == "" {
			game.Developer = ic.Company.Name
		}
		if ic.Publisher && game.Publisher == "" {
			game.Publisher = ic.Company.Name
		}
	}

	return game
}
