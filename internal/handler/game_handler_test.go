package handler

import (
	"net/http"
	"testing"

	"hitbox/backend/internal/database"
	"hitbox/backend/internal/models"

	"github.com/gin-gonic/gin"
)

func TestBrowseGamesTransient(t *testing.T) {
	router := setupServer(t)

	w := doRequest(router, http.MethodGet, "/api/v1/games", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("browse status = %d, body = %s", w.Code, w.Body.String())
	}
	var games []GameResponse
	decodeBody(t, w, &games)
	if len(games) != 2 {
		t.Fatalf("games = %d, want 2", len(games))
	}
	for _, game := range games {
		if game.LocalID != nil {
			t.Errorf("%q has a local ID on an uncached browse", game.Title)
		}
	}

	// Browsing never writes to the local store.
	var count int64
	database.DB.Model(&models.Game{}).Count(&count)
	if count != 0 {
		t.Errorf("game rows after browse = %d, want 0", count)
	}
}

func TestBrowseGamesLocalOverlay(t *testing.T) {
	router := setupServer(t)
	token := registerUser(t, router, "alice")

	// Reviewing caches the game and sets its average rating.
	w := doRequest(router, http.MethodPost, "/api/v1/reviews", gin.H{
		"gameId": 1020, "rating": 4,
	}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("review status = %d", w.Code)
	}

	w = doRequest(router, http.MethodGet, "/api/v1/games", nil, "")
	var games []GameResponse
	decodeBody(t, w, &games)
	if len(games) != 2 {
		t.Fatalf("games = %d, want 2", len(games))
	}

	var cached, transient *GameResponse
	for i := range games {
		switch {
		case games[i].IGDBID != nil && *games[i].IGDBID == 1020:
			cached = &games[i]
		case games[i].IGDBID != nil && *games[i].IGDBID == 119388:
			transient = &games[i]
		}
	}
	if cached == nil || transient == nil {
		t.Fatal("browse page missing expected games")
	}
	if cached.LocalID == nil {
		t.Error("cached game has no local ID in browse")
	}
	if cached.AverageRating != 4.0 {
		t.Errorf("cached average = %v, want 4.0", cached.AverageRating)
	}
	if transient.LocalID != nil {
		t.Error("uncached game has a local ID in browse")
	}
}

func TestGetGameByExternalID(t *testing.T) {
	router := setupServer(t)

	w := doRequest(router, http.MethodGet, "/api/v1/games/1020", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("detail status = %d, body = %s", w.Code, w.Body.String())
	}
	var game GameResponse
	decodeBody(t, w, &game)
	if game.Title != "Grand Theft Auto V" {
		t.Errorf("title = %q", game.Title)
	}
	if game.LocalID != nil {
		t.Error("transient detail has a local ID")
	}
	if game.CoverURL != "https://images.igdb.com/igdb/image/upload/t_cover_big/co1rgi.jpg" {
		t.Errorf("cover URL = %q, want normalized big cover", game.CoverURL)
	}

	// Detail fetches stay transient.
	var count int64
	database.DB.Model(&models.Game{}).Count(&count)
	if count != 0 {
		t.Errorf("game rows after detail = %d, want 0", count)
	}
}

func TestGetGameByLocalID(t *testing.T) {
	router := setupServer(t)
	token := registerUser(t, router, "alice")

	doRequest(router, http.MethodPost, "/api/v1/game-status", gin.H{
		"gameId": 1020, "status": "playing",
	}, token)

	var cached models.Game
	if err := database.DB.Where("igdb_id = ?", 1020).First(&cached).Error; err != nil {
		t.Fatalf("loading cached game: %v", err)
	}

	w := doRequest(router, http.MethodGet, "/api/v1/games/"+cached.ID.String(), nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("detail status = %d", w.Code)
	}
	var game GameResponse
	decodeBody(t, w, &game)
	if game.LocalID == nil || *game.LocalID != cached.ID {
		t.Error("local detail missing its local ID")
	}

	// A cached game is served locally by its external ID too.
	w = doRequest(router, http.MethodGet, "/api/v1/games/1020", nil, "")
	decodeBody(t, w, &game)
	if game.LocalID == nil || *game.LocalID != cached.ID {
		t.Error("external ID detail did not hit the cached record")
	}
}

func TestGetGameNotFound(t *testing.T) {
	router := setupServer(t)

	w := doRequest(router, http.MethodGet, "/api/v1/games/424242", nil, "")
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown external ID status = %d, want 404", w.Code)
	}

	w = doRequest(router, http.MethodGet, "/api/v1/games/not-an-id", nil, "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("garbage ID status = %d, want 400", w.Code)
	}
}
