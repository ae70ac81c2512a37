package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hitbox/backend/internal/auth"
	"hitbox/backend/internal/catalog"
	"hitbox/backend/internal/config"
	"hitbox/backend/internal/database"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupServer wires a full test stack: in-memory database, mocked
// catalog servers and the production route table.
func setupServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	config.AppConfig = &config.Config{JWTSecret: "test-secret"}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrapping test database: %v", err)
	}
	// A pooled second connection would get its own empty in-memory DB.
	sqlDB.SetMaxOpenConns(1)
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}
	database.DB = db

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"access_token":"test-token","expires_in":3600}`)
	})
	mux.HandleFunc("/games", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		query := string(body)
		switch {
		case strings.Contains(query, "id = 1020"):
			fmt.Fprint(w, `[{"id":1020,"name":"Grand Theft Auto V","summary":"Open world.","cover":{"url":"//images.igdb.com/igdb/image/upload/t_thumb/co1rgi.jpg"},"first_release_date":1379376000,"genres":[{"id":5,"name":"Shooter"}]}]`)
		case strings.Contains(query, "id = 119388"):
			fmt.Fprint(w, `[{"id":119388,"name":"The Last of Us Part II","summary":"Revenge story."}]`)
		case strings.Contains(query, "id ="):
			fmt.Fprint(w, `[]`)
		default:
			// Browse/search queries get a fixed page.
			fmt.Fprint(w, `[{"id":1020,"name":"Grand Theft Auto V"},{"id":119388,"name":"The Last of Us Part II"}]`)
		}
	})
	mux.HandleFunc("/rawg/games/3498", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id":3498,"name":"Grand Theft Auto V","released":"2013-09-17"}`)
	})
	mux.HandleFunc("/rawg/games/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	tokens := catalog.NewTokenManager("client-id", "client-secret")
	tokens.TokenURL = server.URL + "/oauth2/token"
	igdb := catalog.NewClient("client-id", tokens)
	igdb.BaseURL = server.URL
	rawg := catalog.NewRAWGClient("test-key")
	rawg.BaseURL = server.URL + "/rawg"
	Init(igdb, rawg)

	return buildRouter()
}

// buildRouter mirrors the route table in cmd/server.
func buildRouter() *gin.Engine {
	router := gin.New()
	apiV1 := router.Group("/api/v1")

	authRoutes := apiV1.Group("/auth")
	authRoutes.POST("/register", RegisterUser)
	authRoutes.POST("/login", LoginUser)
	authRoutes.POST("/logout", auth.AuthMiddleware(), LogoutUser)
	authRoutes.GET("/me", auth.AuthMiddleware(), GetMe)
	authRoutes.PUT("/me", auth.AuthMiddleware(), UpdateMe)

	gameRoutes := apiV1.Group("/games")
	gameRoutes.Use(auth.OptionalAuthMiddleware())
	gameRoutes.GET("", BrowseGames)
	gameRoutes.GET("/:id", GetGameByID)

	reviewRoutes := apiV1.Group("/reviews")
	reviewRoutes.POST("", auth.AuthMiddleware(), CreateReview)
	reviewRoutes.GET("/game/:gameId", GetGameReviews)

	listRoutes := apiV1.Group("/lists")
	listRoutes.GET("", auth.AuthMiddleware(), GetMyLists)
	listRoutes.POST("", auth.AuthMiddleware(), CreateList)
	listRoutes.GET("/:id", GetList)
	listRoutes.POST("/:id/add", auth.AuthMiddleware(), AddGameToList)
	listRoutes.DELETE("/:id", auth.AuthMiddleware(), DeleteList)
	listRoutes.DELETE("/:id/games/:gameId", auth.AuthMiddleware(), RemoveGameFromList)

	statusRoutes := apiV1.Group("/game-status")
	statusRoutes.Use(auth.AuthMiddleware())
	statusRoutes.GET("", GetMyStatuses)
	statusRoutes.POST("", SetGameStatus)
	statusRoutes.GET("/counts", GetStatusCounts)
	statusRoutes.GET("/game/:gameId", GetGameStatus)
	statusRoutes.DELETE("/:gameId", DeleteGameStatus)

	commentRoutes := apiV1.Group("/comments")
	commentRoutes.GET("/list/:listId", GetListComments)
	commentRoutes.GET("/list/:listId/events", StreamListComments)
	commentRoutes.POST("/list/:listId", auth.AuthMiddleware(), CreateComment)
	commentRoutes.DELETE("/:commentId", auth.AuthMiddleware(), DeleteComment)

	userRoutes := apiV1.Group("/users")
	userRoutes.GET("", GetMembers)
	userRoutes.GET("/:username", GetUserByUsername)
	userRoutes.GET("/:username/reviews", GetUserReviews)
	userRoutes.GET("/:username/lists", GetUserLists)

	apiV1.GET("/stats", GetStats)

	return router
}

// doRequest performs one request against the test router.
func doRequest(router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		encoded, _ := json.Marshal(body)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(auth.HeaderName, token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// registerUser registers a user and returns their session token.
func registerUser(t *testing.T, router *gin.Engine, username string) string {
	t.Helper()

	w := doRequest(router, http.MethodPost, "/api/v1/auth/register", gin.H{
		"username": username,
		"email":    username + "@example.com",
		"password": "password123",
	}, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s: status = %d, body = %s", username, w.Code, w.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("register %s: decoding response: %v", username, err)
	}
	return resp["token"]
}

// decodeBody unmarshals a response body into dest.
func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dest); err != nil {
		t.Fatalf("decoding response %q: %v", w.Body.String(), err)
	}
}
