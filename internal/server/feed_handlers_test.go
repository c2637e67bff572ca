package server

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"murmur/internal/config"
	"murmur/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFeedWindowing(t *testing.T) {
	s, app := newTestServer(t, config.OwnershipRedirect)
	author, _ := createTestUser(t, s, "leo", false)

	for i := 0; i < 15; i++ {
		require.NoError(t, s.postRepo.Create(context.Background(), &models.Post{
			Text:     fmt.Sprintf("post %d", i),
			AuthorID: author.ID,
		}))
	}

	type feedBody struct {
		Posts      []models.Post `json:"posts"`
		Page       int           `json:"page"`
		PageSize   int           `json:"page_size"`
		TotalItems int64         `json:"total_items"`
		TotalPages int           `json:"total_pages"`
	}

	t.Run("First Page", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/feed", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body feedBody
		decodeBody(t, resp, &body)
		assert.Len(t, body.Posts, 10)
		assert.Equal(t, 1, body.Page)
		assert.Equal(t, 10, body.PageSize)
		assert.Equal(t, int64(15), body.TotalItems)
		assert.Equal(t, 2, body.TotalPages)
		// Newest first.
		assert.Equal(t, "post 14", body.Posts[0].Text)
	})

	t.Run("Second Page", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/feed?page=2", nil))
		require.NoError(t, err)

		var body feedBody
		decodeBody(t, resp, &body)
		assert.Len(t, body.Posts, 5)
		assert.Equal(t, 2, body.Page)
	})

	t.Run("Overshoot Clamps To Last Page", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/feed?page=99", nil))
		require.NoError(t, err)

		var body feedBody
		decodeBody(t, resp, &body)
		assert.Equal(t, 2, body.Page)
		assert.Len(t, body.Posts, 5)
	})

	t.Run("Junk Page Falls Back To First", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/feed?page=banana", nil))
		require.NoError(t, err)

		var body feedBody
		decodeBody(t, resp, &body)
		assert.Equal(t, 1, body.Page)
	})
}

func TestGetFollowingFeed(t *testing.T) {
	s, app := newTestServer(t, config.OwnershipRedirect)
	author, _ := createTestUser(t, s, "leo", false)
	reader, readerToken := createTestUser(t, s, "mona", false)

	require.NoError(t, s.postRepo.Create(context.Background(), &models.Post{
		Text: "from leo", AuthorID: author.ID,
	}))

	t.Run("Requires Auth", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/feed/following", nil))
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Empty Before Following", func(t *testing.T) {
		resp, err := app.Test(authed(httptest.NewRequest(http.MethodGet, "/api/feed/following", nil), readerToken))
		require.NoError(t, err)

		var body struct {
			Posts []models.Post `json:"posts"`
		}
		decodeBody(t, resp, &body)
		assert.Empty(t, body.Posts)
	})

	t.Run("Populated After Following", func(t *testing.T) {
		require.NoError(t, s.followRepo.Follow(context.Background(), reader.ID, author.ID))

		resp, err := app.Test(authed(httptest.NewRequest(http.MethodGet, "/api/feed/following", nil), readerToken))
		require.NoError(t, err)

		var body struct {
			Posts []models.Post `json:"posts"`
		}
		decodeBody(t, resp, &body)
		require.Len(t, body.Posts, 1)
		assert.Equal(t, "from leo", body.Posts[0].Text)
	})
}
