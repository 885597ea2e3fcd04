package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/connectly-app/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowUser(t *testing.T) {
	e, db := setupServer(t)
	aliceID, aliceToken := registerUser(t, e, "alice")
	bobID, _ := registerUser(t, e, "bob")

	followPath := fmt.Sprintf("/api/accounts/follow/%d", bobID)

	t.Run("Follow creates edge and notification", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodPost, followPath, aliceToken, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "You are now following bob", decodeBody(t, rec)["detail"])

		var edges int64
		db.Model(&models.Follow{}).Where("follower_id = ? AND followee_id = ?", aliceID, bobID).Count(&edges)
		assert.EqualValues(t, 1, edges)

		assert.EqualValues(t, 1, notificationCount(t, db, bobID, models.VerbFollowed))
	})

	t.Run("Repeat follow is idempotent", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodPost, followPath, aliceToken, nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		var edges int64
		db.Model(&models.Follow{}).Where("follower_id = ?", aliceID).Count(&edges)
		assert.EqualValues(t, 1, edges, "duplicate follow must not add an edge")

		assert.EqualValues(t, 1, notificationCount(t, db, bobID, models.VerbFollowed),
			"duplicate follow must not add a notification")
	})

	t.Run("Notification carries actor and unread flag", func(t *testing.T) {
		var notif models.Notification
		require.NoError(t, db.Where("recipient_id = ?", bobID).First(&notif).Error)
		assert.Equal(t, aliceID, notif.ActorID)
		assert.Equal(t, models.VerbFollowed, notif.Verb)
		assert.Equal(t, models.TargetUser, notif.TargetType)
		assert.Equal(t, aliceID, notif.TargetID)
		assert.False(t, notif.IsRead)
	})

	t.Run("Self-follow rejected", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodPost, fmt.Sprintf("/api/accounts/follow/%d", aliceID), aliceToken, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var edges int64
		db.Model(&models.Follow{}).Where("follower_id = ? AND followee_id = ?", aliceID, aliceID).Count(&edges)
		assert.EqualValues(t, 0, edges)
		assert.EqualValues(t, 0, notificationCount(t, db, aliceID, ""))
	})

	t.Run("Follow unknown user", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodPost, "/api/accounts/follow/9999", aliceToken, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Requires authentication", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodPost, followPath, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestUnfollowUser(t *testing.T) {
	e, db := setupServer(t)
	aliceID, aliceToken := registerUser(t, e, "alice")
	bobID, _ := registerUser(t, e, "bob")

	doRequest(t, e, http.MethodPost, fmt.Sprintf("/api/accounts/follow/%d", bobID), aliceToken, nil)

	t.Run("Unfollow removes edge", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodPost, fmt.Sprintf("/api/accounts/unfollow/%d", bobID), aliceToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "You have unfollowed bob", decodeBody(t, rec)["detail"])

		var edges int64
		db.Model(&models.Follow{}).Where("follower_id = ?", aliceID).Count(&edges)
		assert.EqualValues(t, 0, edges)
	})

	t.Run("Unfollow keeps the original notification", func(t *testing.T) {
		assert.EqualValues(t, 1, notificationCount(t, db, bobID, models.VerbFollowed))
	})

	t.Run("Unfollow of nonexistent edge succeeds", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodPost, fmt.Sprintf("/api/accounts/unfollow/%d", bobID), aliceToken, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestFollowersListing(t *testing.T) {
	e, _ := setupServer(t)
	_, aliceToken := registerUser(t, e, "alice")
	bobID, bobToken := registerUser(t, e, "bob")
	_, carolToken := registerUser(t, e, "carol")

	doRequest(t, e, http.MethodPost, fmt.Sprintf("/api/accounts/follow/%d", bobID), aliceToken, nil)
	doRequest(t, e, http.MethodPost, fmt.Sprintf("/api/accounts/follow/%d", bobID), carolToken, nil)

	rec := doRequest(t, e, http.MethodGet, fmt.Sprintf("/api/accounts/users/%d/followers", bobID), bobToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	followers := body["data"].(map[string]interface{})["followers"].([]interface{})
	assert.Len(t, followers, 2)

	// The profile also carries the graph neighbourhood
	profile := doRequest(t, e, http.MethodGet, "/api/accounts/profile", bobToken, nil)
	require.Equal(t, http.StatusOK, profile.Code)
	profileBody := decodeBody(t, profile)
	assert.ElementsMatch(t, []interface{}{"alice", "carol"}, profileBody["followers"])
	assert.Empty(t, profileBody["following"])
}
