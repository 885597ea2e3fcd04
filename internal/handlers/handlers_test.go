package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/connectly-app/backend/internal/models"
	"github.com/connectly-app/backend/internal/router"
	"github.com/connectly-app/backend/pkg/config"
	"github.com/connectly-app/backend/validators"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testJWTSecret = "test-secret-key"

// setupServer builds a full application instance over an in-memory
// SQLite database, without Redis (the cache layer is nil-safe).
func setupServer(t *testing.T) (*echo.Echo, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open test database")

	e := echo.New()
	e.Validator = validators.NewValidator()
	router.SetupRoutes(e, db, nil, &config.Config{JWTSecret: testJWTSecret})

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return e, db
}

// doRequest performs one request against the app and returns the recorder.
func doRequest(t *testing.T, e *echo.Echo, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// decodeBody unmarshals a recorder's JSON body into a generic map.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// decodeInto unmarshals a recorder's JSON body into out.
func decodeInto(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

// registerUser registers a user through the API and returns its ID and token.
func registerUser(t *testing.T, e *echo.Echo, username string) (uint, string) {
	t.Helper()

	rec := doRequest(t, e, http.MethodPost, "/api/accounts/register", "", map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, rec.Code, "registration failed: %s", rec.Body.String())

	body := decodeBody(t, rec)
	token, ok := body["token"].(string)
	require.True(t, ok, "register response missing token")
	id, ok := body["id"].(float64)
	require.True(t, ok, "register response missing id")

	return uint(id), token
}

// createPost creates a post through the API and returns its ID.
func createPost(t *testing.T, e *echo.Echo, token, title string) uint {
	t.Helper()

	rec := doRequest(t, e, http.MethodPost, "/api/posts", token, map[string]string{
		"title":   title,
		"content": "content of " + title,
	})
	require.Equal(t, http.StatusCreated, rec.Code, "post creation failed: %s", rec.Body.String())

	var post models.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &post))
	return post.ID
}

// setRole changes a user's role directly in the store.
func setRole(t *testing.T, db *gorm.DB, userID uint, role string) {
	t.Helper()
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", userID).Update("role", role).Error)
}

// notificationCount counts ledger entries for a recipient, optionally by verb.
func notificationCount(t *testing.T, db *gorm.DB, recipientID uint, verb string) int64 {
	t.Helper()
	q := db.Model(&models.Notification{}).Where("recipient_id = ?", recipientID)
	if verb != "" {
		q = q.Where("verb = ?", verb)
	}
	var count int64
	require.NoError(t, q.Count(&count).Error)
	return count
}
