package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile(t *testing.T) {
	e, _ := setupServer(t)
	aliceID, aliceToken := registerUser(t, e, "alice")

	t.Run("Own profile", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodGet, "/api/accounts/profile", aliceToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, "alice", body["username"])
		assert.EqualValues(t, aliceID, body["id"])
		assert.NotContains(t, body, "password")
		assert.Empty(t, body["followers"])
		assert.Empty(t, body["following"])
	})

	t.Run("Update bio and picture", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodPut, "/api/accounts/profile", aliceToken, map[string]any{
			"bio":             "gopher",
			"profile_picture": "https://example.com/alice.png",
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		body := decodeBody(t, rec)
		assert.Equal(t, "gopher", body["bio"])
		assert.Equal(t, "https://example.com/alice.png", body["profile_picture"])
	})

	t.Run("Invalid picture URL rejected", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodPut, "/api/accounts/profile", aliceToken, map[string]any{
			"profile_picture": "not a url",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Another user's profile by ID", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodGet, fmt.Sprintf("/api/accounts/users/%d", aliceID), aliceToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "gopher", decodeBody(t, rec)["bio"])
	})

	t.Run("Unknown user", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodGet, "/api/accounts/users/9999", aliceToken, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Requires authentication", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodGet, "/api/accounts/profile", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestSearchUsers(t *testing.T) {
	e, _ := setupServer(t)
	_, token := registerUser(t, e, "alice")
	registerUser(t, e, "alicia")
	registerUser(t, e, "bob")

	t.Run("Matches by username substring", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodGet, "/api/accounts/users/search?q=ali", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		users := decodeBody(t, rec)["data"].(map[string]any)["users"].([]any)
		require.Len(t, users, 2)
		names := []string{
			users[0].(map[string]any)["username"].(string),
			users[1].(map[string]any)["username"].(string),
		}
		assert.ElementsMatch(t, []string{"alice", "alicia"}, names)
	})

	t.Run("No matches", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodGet, "/api/accounts/users/search?q=zzz", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		users := decodeBody(t, rec)["data"].(map[string]any)["users"].([]any)
		assert.Empty(t, users)
	})

	t.Run("Missing query rejected", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodGet, "/api/accounts/users/search", token, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
