package server

import (
	"net/http"
	"testing"

	"murmur/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFeatureFlags(t *testing.T) {
	s, app := newTestServer(t, config.OwnershipRedirect)
	_, userToken := createTestUser(t, s, "leo", false)
	_, adminToken := createTestUser(t, s, "root", true)

	resp, err := app.Test(authed(jsonRequest(http.MethodGet, "/api/admin/flags", nil), userToken))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, err = app.Test(authed(jsonRequest(http.MethodGet, "/api/admin/flags", nil), adminToken))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Raw       map[string]string `json:"raw"`
		Evaluated map[string]bool   `json:"evaluated"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "on", body.Raw["feed_cache"])
	assert.True(t, body.Evaluated["feed_cache"])
}
