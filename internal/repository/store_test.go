package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"murmur/internal/models"
	"murmur/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// The tests in this file run against a real in-memory SQLite store with
// foreign key enforcement on, so referential actions and unique indexes
// behave the same way they do in production.

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed-password",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedGroup(t *testing.T, db *gorm.DB, slug string) *models.Group {
	t.Helper()
	group := &models.Group{
		Title:       "Group " + slug,
		Slug:        slug,
		Description: "A group for " + slug,
	}
	require.NoError(t, db.Create(group).Error)
	return group
}

func seedPost(t *testing.T, db *gorm.DB, author *models.User, group *models.Group, text string) *models.Post {
	t.Helper()
	post := &models.Post{Text: text, AuthorID: author.ID}
	if group != nil {
		post.GroupID = &group.ID
	}
	require.NoError(t, db.Create(post).Error)
	return post
}

func TestFollowRepository_FollowIsIdempotent(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	follower := seedUser(t, db, "leo")
	author := seedUser(t, db, "mona")

	require.NoError(t, repo.Follow(ctx, follower.ID, author.ID))
	require.NoError(t, repo.Follow(ctx, follower.ID, author.ID))

	var count int64
	require.NoError(t, db.Model(&models.Follow{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	following, err := repo.IsFollowing(ctx, follower.ID, author.ID)
	require.NoError(t, err)
	assert.True(t, following)
}

func TestFollowRepository_UniqueIndexBlocksDuplicates(t *testing.T) {
	db := testutil.OpenTestDB(t)
	ctx := context.Background()

	follower := seedUser(t, db, "leo")
	author := seedUser(t, db, "mona")

	require.NoError(t, NewFollowRepository(db).Follow(ctx, follower.ID, author.ID))

	// A plain insert that skips the conflict clause must hit the index.
	err := db.Exec(
		"INSERT INTO follows (user_id, author_id, created_at) VALUES (?, ?, ?)",
		follower.ID, author.ID, time.Now(),
	).Error
	require.Error(t, err)
	assert.True(t, isUniqueConstraintError(err))
}

func TestFollowRepository_UnfollowMissingEdge(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	follower := seedUser(t, db, "leo")
	author := seedUser(t, db, "mona")

	// Never followed; unfollow is still not an error.
	require.NoError(t, repo.Unfollow(ctx, follower.ID, author.ID))

	require.NoError(t, repo.Follow(ctx, follower.ID, author.ID))
	require.NoError(t, repo.Unfollow(ctx, follower.ID, author.ID))

	following, err := repo.IsFollowing(ctx, follower.ID, author.ID)
	require.NoError(t, err)
	assert.False(t, following)
}

func TestFollowRepository_FollowedAuthors(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	follower := seedUser(t, db, "leo")
	zoe := seedUser(t, db, "zoe")
	abel := seedUser(t, db, "abel")
	seedUser(t, db, "nobody")

	require.NoError(t, repo.Follow(ctx, follower.ID, zoe.ID))
	require.NoError(t, repo.Follow(ctx, follower.ID, abel.ID))

	authors, err := repo.FollowedAuthors(ctx, follower.ID)
	require.NoError(t, err)
	require.Len(t, authors, 2)
	assert.Equal(t, "abel", authors[0].Username)
	assert.Equal(t, "zoe", authors[1].Username)
}

func TestPostRepository_DeleteRemovesComments(t *testing.T) {
	db := testutil.OpenTestDB(t)
	postRepo := NewPostRepository(db)
	commentRepo := NewCommentRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "leo")
	post := seedPost(t, db, author, nil, "about to vanish")
	other := seedPost(t, db, author, nil, "survivor")

	for i := 0; i < 3; i++ {
		require.NoError(t, commentRepo.Create(ctx, &models.Comment{
			PostID:   post.ID,
			AuthorID: author.ID,
			Text:     fmt.Sprintf("comment %d", i),
		}))
	}
	require.NoError(t, commentRepo.Create(ctx, &models.Comment{
		PostID:   other.ID,
		AuthorID: author.ID,
		Text:     "kept",
	}))

	require.NoError(t, postRepo.Delete(ctx, post.ID))

	var count int64
	require.NoError(t, db.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&count).Error)
	assert.Zero(t, count)

	kept, err := commentRepo.ListByPost(ctx, other.ID)
	require.NoError(t, err)
	assert.Len(t, kept, 1)
}

func TestGroupRepository_DeleteDetachesPosts(t *testing.T) {
	db := testutil.OpenTestDB(t)
	groupRepo := NewGroupRepository(db)
	postRepo := NewPostRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "leo")
	group := seedGroup(t, db, "cats")
	post := seedPost(t, db, author, group, "group post")

	require.NoError(t, groupRepo.DeleteBySlug(ctx, group.Slug))

	got, err := postRepo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Nil(t, got.GroupID)
	assert.Equal(t, "group post", got.Text)
}

func TestGroupRepository_DuplicateSlug(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewGroupRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Group{Title: "First", Slug: "cats"}))

	err := repo.Create(ctx, &models.Group{Title: "Second", Slug: "cats"})
	require.Error(t, err)
	assert.True(t, models.IsValidation(err))
}

func TestPostRepository_ListNewestFirst(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "leo")
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		post := &models.Post{
			Text:     fmt.Sprintf("post %d", i),
			AuthorID: author.ID,
			PubDate:  base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(post).Error)
	}

	posts, err := repo.List(ctx, PostFilter{}, 10, 0)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "post 2", posts[0].Text)
	assert.Equal(t, "post 1", posts[1].Text)
	assert.Equal(t, "post 0", posts[2].Text)
}

func TestPostRepository_Windowing(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "leo")
	for i := 0; i < 15; i++ {
		seedPost(t, db, author, nil, fmt.Sprintf("post %d", i))
	}

	total, err := repo.Count(ctx, PostFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(15), total)

	first, err := repo.List(ctx, PostFilter{}, 10, 0)
	require.NoError(t, err)
	assert.Len(t, first, 10)

	second, err := repo.List(ctx, PostFilter{}, 10, 10)
	require.NoError(t, err)
	assert.Len(t, second, 5)

	// No overlap between the two windows.
	seen := make(map[uint]bool)
	for _, p := range first {
		seen[p.ID] = true
	}
	for _, p := range second {
		assert.False(t, seen[p.ID])
	}
}

func TestPostRepository_FilterScopes(t *testing.T) {
	db := testutil.OpenTestDB(t)
	postRepo := NewPostRepository(db)
	followRepo := NewFollowRepository(db)
	ctx := context.Background()

	leo := seedUser(t, db, "leo")
	mona := seedUser(t, db, "mona")
	zoe := seedUser(t, db, "zoe")
	cats := seedGroup(t, db, "cats")

	seedPost(t, db, leo, cats, "leo in cats")
	seedPost(t, db, leo, nil, "leo ungrouped")
	seedPost(t, db, mona, cats, "mona in cats")
	seedPost(t, db, zoe, nil, "zoe ungrouped")

	require.NoError(t, followRepo.Follow(ctx, zoe.ID, leo.ID))

	t.Run("by group", func(t *testing.T) {
		posts, err := postRepo.List(ctx, PostFilter{GroupID: &cats.ID}, 10, 0)
		require.NoError(t, err)
		assert.Len(t, posts, 2)
		for _, p := range posts {
			require.NotNil(t, p.GroupID)
			assert.Equal(t, cats.ID, *p.GroupID)
		}
	})

	t.Run("by author", func(t *testing.T) {
		posts, err := postRepo.List(ctx, PostFilter{AuthorID: &leo.ID}, 10, 0)
		require.NoError(t, err)
		assert.Len(t, posts, 2)
		for _, p := range posts {
			assert.Equal(t, leo.ID, p.AuthorID)
		}
	})

	t.Run("by followed authors", func(t *testing.T) {
		posts, err := postRepo.List(ctx, PostFilter{FollowerID: &zoe.ID}, 10, 0)
		require.NoError(t, err)
		require.Len(t, posts, 2)
		for _, p := range posts {
			assert.Equal(t, leo.ID, p.AuthorID)
		}

		count, err := postRepo.Count(ctx, PostFilter{FollowerID: &zoe.ID})
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("follower with no follows sees nothing", func(t *testing.T) {
		posts, err := postRepo.List(ctx, PostFilter{FollowerID: &mona.ID}, 10, 0)
		require.NoError(t, err)
		assert.Empty(t, posts)
	})
}

func TestPostRepository_CommentsCount(t *testing.T) {
	db := testutil.OpenTestDB(t)
	postRepo := NewPostRepository(db)
	commentRepo := NewCommentRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "leo")
	post := seedPost(t, db, author, nil, "popular")
	quiet := seedPost(t, db, author, nil, "quiet")

	for i := 0; i < 4; i++ {
		require.NoError(t, commentRepo.Create(ctx, &models.Comment{
			PostID:   post.ID,
			AuthorID: author.ID,
			Text:     "nice",
		}))
	}

	got, err := postRepo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, got.CommentsCount)
	assert.Equal(t, "leo", got.Author.Username)

	posts, err := postRepo.List(ctx, PostFilter{}, 10, 0)
	require.NoError(t, err)
	counts := make(map[uint]int)
	for _, p := range posts {
		counts[p.ID] = p.CommentsCount
	}
	assert.Equal(t, 4, counts[post.ID])
	assert.Equal(t, 0, counts[quiet.ID])
}

func TestPostRepository_GetByID_Missing(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewPostRepository(db)

	post, err := repo.GetByID(context.Background(), 9999)
	require.Error(t, err)
	assert.Nil(t, post)
	assert.True(t, models.IsNotFound(err))
}

func TestCommentRepository_ListByPostNewestFirst(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "leo")
	post := seedPost(t, db, author, nil, "discussed")

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		comment := &models.Comment{
			PostID:   post.ID,
			AuthorID: author.ID,
			Text:     fmt.Sprintf("comment %d", i),
			Created:  base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(comment).Error)
	}

	comments, err := repo.ListByPost(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	assert.Equal(t, "comment 2", comments[0].Text)
	assert.Equal(t, "comment 0", comments[2].Text)
	assert.Equal(t, "leo", comments[0].Author.Username)
}

func TestCommentRepository_CreateRequiresPost(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "leo")

	err := repo.Create(ctx, &models.Comment{
		PostID:   424242,
		AuthorID: author.ID,
		Text:     "orphan",
	})
	assert.Error(t, err)
}
