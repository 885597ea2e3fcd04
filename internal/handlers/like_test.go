package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/connectly-app/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikePost(t *testing.T) {
	e, db := setupServer(t)
	_, aliceToken := registerUser(t, e, "alice")
	bobID, bobToken := registerUser(t, e, "bob")
	postID := createPost(t, e, bobToken, "bob's post")

	likePath := fmt.Sprintf("/api/posts/%d/like", postID)

	t.Run("First like created", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodPost, likePath, aliceToken, nil)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Equal(t, "Post liked", decodeBody(t, rec)["detail"])

		assert.EqualValues(t, 1, notificationCount(t, db, bobID, models.VerbLiked))
	})

	t.Run("Second like is a no-op", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodPost, likePath, aliceToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Already liked", decodeBody(t, rec)["detail"])

		var likes int64
		db.Model(&models.Like{}).Where("post_id = ?", postID).Count(&likes)
		assert.EqualValues(t, 1, likes)
		assert.EqualValues(t, 1, notificationCount(t, db, bobID, models.VerbLiked))
	})

	t.Run("Like count annotated on the post", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodGet, fmt.Sprintf("/api/posts/%d", postID), "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.EqualValues(t, 1, decodeBody(t, rec)["likes_count"])
	})

	t.Run("Liking your own post notifies nobody", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodPost, likePath, bobToken, nil)
		require.Equal(t, http.StatusCreated, rec.Code)

		// still only alice's like notification in bob's ledger
		assert.EqualValues(t, 1, notificationCount(t, db, bobID, models.VerbLiked))
	})

	t.Run("Like unknown post", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodPost, "/api/posts/9999/like", aliceToken, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Requires authentication", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodPost, likePath, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestUnlikePost(t *testing.T) {
	e, db := setupServer(t)
	_, aliceToken := registerUser(t, e, "alice")
	_, bobToken := registerUser(t, e, "bob")
	postID := createPost(t, e, bobToken, "bob's post")

	t.Run("Unlike without a like is a reported no-op", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodPost, fmt.Sprintf("/api/posts/%d/unlike", postID), aliceToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "No like to remove", decodeBody(t, rec)["detail"])
	})

	t.Run("Unlike removes the like", func(t *testing.T) {
		doRequest(t, e, http.MethodPost, fmt.Sprintf("/api/posts/%d/like", postID), aliceToken, nil)

		rec := doRequest(t, e, http.MethodPost, fmt.Sprintf("/api/posts/%d/unlike", postID), aliceToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Post unliked", decodeBody(t, rec)["detail"])

		var likes int64
		db.Model(&models.Like{}).Count(&likes)
		assert.EqualValues(t, 0, likes)
	})

	t.Run("Re-like after unlike works", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodPost, fmt.Sprintf("/api/posts/%d/like", postID), aliceToken, nil)
		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}
