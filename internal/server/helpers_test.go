package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"murmur/internal/config"
	"murmur/internal/models"
	"murmur/internal/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testPassword = "SecurePass12!@"

// newTestServer builds a server over a fresh in-memory database, without a
// cache client, and mounts the full route table.
func newTestServer(t *testing.T, policy string) (*Server, *fiber.App) {
	t.Helper()

	db := testutil.OpenTestDB(t)
	cfg := &config.Config{
		JWTSecret:       "unit-test-secret-0123456789abcdef",
		OwnershipPolicy: policy,
		FeatureFlags:    "feed_cache=on",
	}

	s, err := NewServerWithDeps(cfg, db, nil)
	require.NoError(t, err)

	app := fiber.New()
	s.SetupRoutes(app)
	return s, app
}

// createTestUser persists a user and returns it along with a valid token.
func createTestUser(t *testing.T, s *Server, username string, admin bool) (*models.User, string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: string(hash),
		IsAdmin:  admin,
	}
	require.NoError(t, s.userRepo.Create(context.Background(), user))

	token, err := s.generateToken(user.ID, user.Username)
	require.NoError(t, err)
	return user, token
}

func jsonRequest(method, target string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func authed(req *http.Request, token string) *http.Request {
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func decodeBody(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, dest), "body: %s", data)
}
