package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	e, _ := setupServer(t)

	tests := []struct {
		name           string
		requestBody    map[string]string
		expectedStatus int
	}{
		{
			name: "Valid registration",
			requestBody: map[string]string{
				"username": "alice",
				"email":    "alice@example.com",
				"password": "secret123",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Missing username",
			requestBody: map[string]string{
				"email":    "no-name@example.com",
				"password": "secret123",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Invalid email",
			requestBody: map[string]string{
				"username": "bob",
				"email":    "not-an-email",
				"password": "secret123",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Password too short",
			requestBody: map[string]string{
				"username": "carol",
				"email":    "carol@example.com",
				"password": "short",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Duplicate username",
			requestBody: map[string]string{
				"username": "alice",
				"email":    "alice2@example.com",
				"password": "secret123",
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, e, http.MethodPost, "/api/accounts/register", "", tt.requestBody)
			assert.Equal(t, tt.expectedStatus, rec.Code, rec.Body.String())

			if tt.expectedStatus == http.StatusCreated {
				body := decodeBody(t, rec)
				assert.NotEmpty(t, body["token"])
				assert.Equal(t, tt.requestBody["username"], body["username"])
				assert.Equal(t, tt.requestBody["email"], body["email"])
				assert.NotZero(t, body["id"])
			}
		})
	}
}

func TestLogin(t *testing.T) {
	e, _ := setupServer(t)
	aliceID, _ := registerUser(t, e, "alice")

	t.Run("Valid credentials", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodPost, "/api/accounts/login", "", map[string]string{
			"username": "alice",
			"password": "secret123",
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		body := decodeBody(t, rec)
		assert.NotEmpty(t, body["token"])
		assert.Equal(t, float64(aliceID), body["user_id"])
		assert.Equal(t, "alice", body["username"])
	})

	t.Run("Wrong password", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodPost, "/api/accounts/login", "", map[string]string{
			"username": "alice",
			"password": "wrongpassword",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Unknown user", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodPost, "/api/accounts/login", "", map[string]string{
			"username": "nobody",
			"password": "secret123",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Token works against a protected route", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodPost, "/api/accounts/login", "", map[string]string{
			"username": "alice",
			"password": "secret123",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		token := decodeBody(t, rec)["token"].(string)

		profile := doRequest(t, e, http.MethodGet, "/api/accounts/profile", token, nil)
		assert.Equal(t, http.StatusOK, profile.Code)
	})

	t.Run("Protected route without token", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodGet, "/api/accounts/profile", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
