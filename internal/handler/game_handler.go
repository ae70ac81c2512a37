package handler

import (
	"errors"
	"net/http"
	"time"

	"hitbox/backend/internal/apierr"
	"hitbox/backend/internal/catalog"
	"hitbox/backend/internal/database"
	"hitbox/backend/internal/models"
	"hitbox/backend/internal/resolver"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// region --- DTOs ---

// GameResponse is a game as the API serves it. LocalID is set only for
// games cached in the local store.
type GameResponse struct {
	LocalID       *uuid.UUID `json:"local_id,omitempty"`
	IGDBID        *int64     `json:"igdb_id,omitempty"`
	RAWGID        *int64     `json:"rawg_id,omitempty"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	CoverURL      string     `json:"cover_url"`
	ReleaseDate   *time.Time `json:"release_date"`
	Genres        []string   `json:"genres"`
	Platforms     []string   `json:"platforms"`
	Developer     string     `json:"developer"`
	Publisher     string     `json:"publisher"`
	AverageRating float64    `json:"average_rating"`
}

func newGameResponse(game models.Game) GameResponse {
	localID := game.ID
	return GameResponse{
		LocalID:       &localID,
		IGDBID:        game.IGDBID,
		RAWGID:        game.RAWGID,
		Title:         game.Title,
		Description:   game.Description,
		CoverURL:      game.CoverURL,
		ReleaseDate:   game.ReleaseDate,
		Genres:        game.Genres,
		Platforms:     game.Platforms,
		Developer:     game.Developer,
		Publisher:     game.Publisher,
		AverageRating: game.AverageRating,
	}
}

// newTransientGameResponse shapes a catalog record that is not cached
// locally.
func newTransientGameResponse(game models.Game) GameResponse {
	response := newGameResponse(game)
	response.LocalID = nil
	return response
}

// endregion

// region --- Handlers ---

// BrowseGames godoc
// @Summary      Browse and search games
// @Description  Proxies browse/search to the external catalog, overlaying local average ratings onto cached games. Results are not persisted.
// @Tags         games
// @Produce      json
// @Param        q        query  string  false  "Free-text search term"
// @Param        genre    query  string  false  "Genre slug (e.g. rpg, shooter)"
// @Param        platform query  string  false  "Platform slug (e.g. pc, ps5)"
// @Param        sort     query  string  false  "Sort key: rating, release or name; ignored when searching"
// @Param        page     query  int     false  "Page number" default(1)
// @Param        limit    query  int     false  "Items per page" default(20)
// @Success      200  {array}   GameResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /games [get]
func BrowseGames(c *gin.Context) {
	page, limit := pageParams(c)

	query := catalog.NewQuery().
		Fields(catalog.GameFields...).
		Limit(limit).
		Offset((page - 1) * limit)

	if q := c.Query("q"); q != "" {
		query.Search(q)
	}
	if genre := c.Query("genre"); genre != "" {
		query.Genre(genre)
	}
	if platform := c.Query("platform"); platform != "" {
		query.Platform(platform)
	}
	query.Sort(c.DefaultQuery("sort", "rating"))

	remote, err := Catalog.Games(c.Request.Context(), query)
	if err != nil {
		apierr.Respond(c, apierr.Unavailable(err))
		return
	}

	response := make([]GameResponse, 0, len(remote))
	local := localGamesByIGDBID(remote)
	for _, rg := range remote {
		if cached, ok := local[rg.ID]; ok {
			response = append(response, newGameResponse(cached))
			continue
		}
		response = append(response, newTransientGameResponse(rg.ToModel()))
	}

	c.JSON(http.StatusOK, response)
}

// GetGameByID godoc
// @Summary      Get a single game
// @Description  Local-first detail fetch: UUIDs name local records, numbers are IGDB IDs. Uncached remote games are served transiently, not persisted.
// @Tags         games
// @Produce      json
// @Param        id path string true "Game ID (UUID or IGDB ID)"
// @Success      200  {object}  GameResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Router       /games/{id} [get]
func GetGameByID(c *gin.Context) {
	ref, err := resolver.ParseRef(c.Param("id"))
	if err != nil {
		apierr.Respond(c, err)
		return
	}

	if ref.IsLocal() {
		var game models.Game
		if err := database.DB.First(&game, "id = ?", ref.LocalID()).Error; err != nil {
			apierr.Respond(c, apierr.NotFound("Game not found"))
			return
		}
		c.JSON(http.StatusOK, newGameResponse(game))
		return
	}

	_, externalID := ref.External()

	var game models.Game
	err = database.DB.Where("igdb_id = ?", externalID).First(&game).Error
	if err == nil {
		c.JSON(http.StatusOK, newGameResponse(game))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		apierr.Respond(c, err)
		return
	}

	remote, err := Catalog.GameByID(c.Request.Context(), externalID)
	if err != nil {
		apierr.Respond(c, apierr.Unavailable(err))
		return
	}
	if remote == nil {
		apierr.Respond(c, apierr.NotFound("Game not found"))
		return
	}

	c.JSON(http.StatusOK, newTransientGameResponse(remote.ToModel()))
}

// endregion

// localGamesByIGDBID loads the cached rows matching a page of catalog
// results, keyed by IGDB ID.
func localGamesByIGDBID(remote []catalog.Game) map[int64]models.Game {
	ids := make([]int64, 0, len(remote))
	for _, rg := range remote {
		ids = append(ids, rg.ID)
	}

	byID := make(map[int64]models.Game)
	if len(ids) == 0 {
		return byID
	}

	var cached []models.Game
	if err := database.DB.Where("igdb_id IN ?", ids).Find(&cached).Error; err != nil {
		return byID
	}
	for _, game := range cached {
		if game.IGDBID != nil {
			byID[*game.IGDBID] = game
		}
	}
	return byID
}
