package handler

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"hitbox/backend/internal/database"
	"hitbox/backend/internal/models"

	"github.com/gin-gonic/gin"
)

func TestCreateComment(t *testing.T) {
	router := setupServer(t)
	token := registerUser(t, router, "alice")
	list := createList(t, router, token, "Backlog")
	path := fmt.Sprintf("/api/v1/comments/list/%d", list.ID)

	w := doRequest(router, http.MethodPost, path, gin.H{"text": "  Great picks.  "}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("comment status = %d, body = %s", w.Code, w.Body.String())
	}
	var comment CommentResponse
	decodeBody(t, w, &comment)
	if comment.Text != "Great picks." {
		t.Errorf("text = %q, want trimmed", comment.Text)
	}

	w = doRequest(router, http.MethodPost, path, gin.H{"text": "anything"}, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("anonymous comment status = %d, want 401", w.Code)
	}
}

func TestCreateCommentValidation(t *testing.T) {
	router := setupServer(t)
	token := registerUser(t, router, "alice")
	list := createList(t, router, token, "Backlog")
	path := fmt.Sprintf("/api/v1/comments/list/%d", list.ID)

	tests := []struct {
		name string
		text string
	}{
		{name: "whitespace only", text: "   \n\t "},
		{name: "too long", text: strings.Repeat("a", models.MaxCommentLength+1)},
		{name: "too long multibyte", text: strings.Repeat("あ", models.MaxCommentLength+1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, http.MethodPost, path, gin.H{"text": tt.text}, token)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}

	// Nothing persisted on either rejection.
	var count int64
	database.DB.Model(&models.Comment{}).Count(&count)
	if count != 0 {
		t.Errorf("comments = %d, want 0", count)
	}

	// Exactly the limit is allowed.
	w := doRequest(router, http.MethodPost, path, gin.H{"text": strings.Repeat("a", models.MaxCommentLength)}, token)
	if w.Code != http.StatusCreated {
		t.Errorf("limit-length comment status = %d, want 201", w.Code)
	}

	// The limit counts characters, not bytes.
	w = doRequest(router, http.MethodPost, path, gin.H{"text": strings.Repeat("あ", 600)}, token)
	if w.Code != http.StatusCreated {
		t.Errorf("multibyte comment status = %d, want 201 (body %s)", w.Code, w.Body.String())
	}
}

func TestCommentOnMissingList(t *testing.T) {
	router := setupServer(t)
	token := registerUser(t, router, "alice")

	w := doRequest(router, http.MethodPost, "/api/v1/comments/list/9999", gin.H{"text": "hello"}, token)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestGetListComments(t *testing.T) {
	router := setupServer(t)
	token := registerUser(t, router, "alice")
	list := createList(t, router, token, "Backlog")
	path := fmt.Sprintf("/api/v1/comments/list/%d", list.ID)

	for _, text := range []string{"first", "second"} {
		w := doRequest(router, http.MethodPost, path, gin.H{"text": text}, token)
		if w.Code != http.StatusCreated {
			t.Fatalf("comment %q status = %d", text, w.Code)
		}
	}

	w := doRequest(router, http.MethodGet, path, nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("comments status = %d", w.Code)
	}
	var comments []CommentResponse
	decodeBody(t, w, &comments)
	if len(comments) != 2 {
		t.Fatalf("comments = %d, want 2", len(comments))
	}
	// Newest first.
	if comments[0].Text != "second" || comments[1].Text != "first" {
		t.Errorf("order = [%q, %q], want newest first", comments[0].Text, comments[1].Text)
	}
	if comments[0].Username != "alice" {
		t.Errorf("username = %q, want alice", comments[0].Username)
	}
}

func TestDeleteCommentOwnerOnly(t *testing.T) {
	router := setupServer(t)
	aliceToken := registerUser(t, router, "alice")
	bobToken := registerUser(t, router, "bob")
	list := createList(t, router, aliceToken, "Backlog")

	w := doRequest(router, http.MethodPost, fmt.Sprintf("/api/v1/comments/list/%d", list.ID), gin.H{"text": "mine"}, aliceToken)
	var comment CommentResponse
	decodeBody(t, w, &comment)

	w = doRequest(router, http.MethodDelete, fmt.Sprintf("/api/v1/comments/%d", comment.ID), nil, bobToken)
	if w.Code != http.StatusForbidden {
		t.Errorf("non-owner delete status = %d, want 403", w.Code)
	}

	w = doRequest(router, http.MethodDelete, fmt.Sprintf("/api/v1/comments/%d", comment.ID), nil, aliceToken)
	if w.Code != http.StatusOK {
		t.Fatalf("owner delete status = %d", w.Code)
	}

	w = doRequest(router, http.MethodDelete, fmt.Sprintf("/api/v1/comments/%d", comment.ID), nil, aliceToken)
	if w.Code != http.StatusNotFound {
		t.Errorf("repeat delete status = %d, want 404", w.Code)
	}
}
