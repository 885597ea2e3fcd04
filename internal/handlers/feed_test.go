package handlers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/connectly-app/backend/internal/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feedTitles(t *testing.T, e *echo.Echo, token, path string) []string {
	t.Helper()
	rec := doRequest(t, e, http.MethodGet, path, token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	data := decodeBody(t, rec)["data"].(map[string]any)
	raw := data["posts"].([]any)
	titles := make([]string, len(raw))
	for i, p := range raw {
		titles[i] = p.(map[string]any)["title"].(string)
	}
	return titles
}

func TestGetFeed(t *testing.T) {
	e, db := setupServer(t)

	_, aliceToken := registerUser(t, e, "alice")
	bobID, bobToken := registerUser(t, e, "bob")
	carolID, carolToken := registerUser(t, e, "carol")

	bobPost := createPost(t, e, bobToken, "bob's post")
	carolPost := createPost(t, e, carolToken, "carol's post")
	alicePost := createPost(t, e, aliceToken, "alice's own post")

	// pin creation times so the expected ordering is unambiguous
	base := time.Now().Add(-time.Hour)
	db.Model(&models.Post{}).Where("id = ?", bobPost).Update("created_at", base)
	db.Model(&models.Post{}).Where("id = ?", carolPost).Update("created_at", base.Add(time.Minute))
	db.Model(&models.Post{}).Where("id = ?", alicePost).Update("created_at", base.Add(2*time.Minute))

	doRequest(t, e, http.MethodPost, fmt.Sprintf("/api/accounts/follow/%d", bobID), aliceToken, nil)

	t.Run("Only followed authors appear", func(t *testing.T) {
		titles := feedTitles(t, e, aliceToken, "/api/posts/feed")
		assert.Equal(t, []string{"bob's post"}, titles)
	})

	t.Run("Newest first across authors", func(t *testing.T) {
		doRequest(t, e, http.MethodPost, fmt.Sprintf("/api/accounts/follow/%d", carolID), aliceToken, nil)

		titles := feedTitles(t, e, aliceToken, "/api/posts/feed")
		assert.Equal(t, []string{"carol's post", "bob's post"}, titles)
	})

	t.Run("include_self mixes in own posts", func(t *testing.T) {
		titles := feedTitles(t, e, aliceToken, "/api/posts/feed?include_self=true")
		assert.Equal(t, []string{"alice's own post", "carol's post", "bob's post"}, titles)
	})

	t.Run("Posts carry author and like flags", func(t *testing.T) {
		doRequest(t, e, http.MethodPost, fmt.Sprintf("/api/posts/%d/like", bobPost), aliceToken, nil)

		rec := doRequest(t, e, http.MethodGet, "/api/posts/feed", aliceToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		data := decodeBody(t, rec)["data"].(map[string]any)
		posts := data["posts"].([]any)
		require.Len(t, posts, 2)

		oldest := posts[1].(map[string]any)
		author := oldest["author"].(map[string]any)
		assert.Equal(t, "bob", author["username"])
		assert.EqualValues(t, bobID, author["id"])
		assert.Equal(t, true, oldest["is_liked"])
		assert.Equal(t, false, oldest["is_saved"])
	})

	t.Run("Empty feed for a loner", func(t *testing.T) {
		titles := feedTitles(t, e, bobToken, "/api/posts/feed")
		assert.Empty(t, titles)
	})

	t.Run("Requires authentication", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodGet, "/api/posts/feed", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
