package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// newCatalogClient wires a Client against a test server exposing a
// token endpoint and the given /games handler.
func newCatalogClient(t *testing.T, games http.HandlerFunc) *Client {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"access_token":"test-token","expires_in":3600}`)
	})
	mux.HandleFunc("/games", games)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	tokens := NewTokenManager("client-id", "client-secret")
	tokens.TokenURL = server.URL + "/oauth2/token"

	client := NewClient("client-id", tokens)
	client.BaseURL = server.URL
	return client
}

func TestClientGamesSendsAuthHeaders(t *testing.T) {
	var gotClientID, gotAuth, gotBody string
	client := newCatalogClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotClientID = r.Header.Get("Client-ID")
		gotAuth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		fmt.Fprint(w, `[{"id":1020,"name":"Grand Theft Auto V"}]`)
	})

	games, err := client.Games(context.Background(), NewQuery().Fields("name").Where("id = 1020"))
	if err != nil {
		t.Fatalf("Games() error = %v", err)
	}

	if len(games) != 1 || games[0].ID != 1020 {
		t.Fatalf("Games() = %+v, want one record with ID 1020", games)
	}
	if gotClientID != "client-id" {
		t.Errorf("Client-ID header = %q", gotClientID)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("Authorization header = %q", gotAuth)
	}
	if !strings.Contains(gotBody, "where id = 1020") {
		t.Errorf("request body = %q, want the built query", gotBody)
	}
}

func TestClientGameByIDMiss(t *testing.T) {
	client := newCatalogClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	})

	game, err := client.GameByID(context.Background(), 404404)
	if err != nil {
		t.Fatalf("GameByID() error = %v", err)
	}
	if game != nil {
		t.Errorf("GameByID() = %+v, want nil for a miss", game)
	}
}

func TestClientGamesUpstreamError(t *testing.T) {
	client := newCatalogClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.Games(context.Background(), NewQuery().Fields("name"))
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Games() error = %v, want ErrUnavailable", err)
	}
}

func TestRAWGClientGameByID(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/games/3498", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		fmt.Fprint(w, `{"id":3498,"name":"Grand Theft Auto V","released":"2013-09-17"}`)
	})
	mux.HandleFunc("/games/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := NewRAWGClient("test-key")
	client.BaseURL = server.URL

	game, err := client.GameByID(context.Background(), 3498)
	if err != nil {
		t.Fatalf("GameByID() error = %v", err)
	}
	if game == nil || game.Name != "Grand Theft Auto V" {
		t.Fatalf("GameByID() = %+v", game)
	}

	missing, err := client.GameByID(context.Background(), 999999)
	if err != nil {
		t.Fatalf("GameByID() miss error = %v", err)
	}
	if missing != nil {
		t.Errorf("GameByID() = %+v, want nil for 404", missing)
	}
}
