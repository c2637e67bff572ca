package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"murmur/internal/models"
)

func TestPostServiceCreateRequiresText(t *testing.T) {
	svc := NewPostService(noopPostRepo(), noopGroupRepo())

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := svc.CreatePost(context.Background(), CreatePostInput{UserID: 1, Text: text})
		if err == nil {
			t.Fatalf("expected validation error for %q", text)
		}
		if !models.IsValidation(err) {
			t.Fatalf("expected validation app error, got %#v", err)
		}
	}
}

func TestPostServiceCreateTextTooLong(t *testing.T) {
	svc := NewPostService(noopPostRepo(), noopGroupRepo())

	_, err := svc.CreatePost(context.Background(), CreatePostInput{
		UserID: 1,
		Text:   strings.Repeat("a", maxPostTextLen+1),
	})
	if !models.IsValidation(err) {
		t.Fatalf("expected validation app error, got %#v", err)
	}
}

func TestPostServiceCreateUnknownGroup(t *testing.T) {
	groups := noopGroupRepo()
	groups.getBySlugFn = func(_ context.Context, slug string) (*models.Group, error) {
		return nil, models.NewNotFoundError("Group", slug)
	}

	svc := NewPostService(noopPostRepo(), groups)
	_, err := svc.CreatePost(context.Background(), CreatePostInput{
		UserID:    1,
		Text:      "hello",
		GroupSlug: "missing",
	})
	if !models.IsNotFound(err) {
		t.Fatalf("expected not-found app error, got %#v", err)
	}
}

func TestPostServiceCreateBindsGroup(t *testing.T) {
	groups := noopGroupRepo()
	groups.getBySlugFn = func(_ context.Context, slug string) (*models.Group, error) {
		return &models.Group{ID: 7, Slug: slug}, nil
	}

	var created *models.Post
	posts := noopPostRepo()
	posts.createFn = func(_ context.Context, p *models.Post) error {
		p.ID = 42
		created = p
		return nil
	}

	svc := NewPostService(posts, groups)
	_, err := svc.CreatePost(context.Background(), CreatePostInput{
		UserID:    3,
		Text:      "  padded  ",
		GroupSlug: "cats",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created == nil || created.GroupID == nil || *created.GroupID != 7 {
		t.Fatalf("expected post bound to group 7, got %#v", created)
	}
	if created.Text != "padded" {
		t.Fatalf("expected trimmed text, got %q", created.Text)
	}
	if created.AuthorID != 3 {
		t.Fatalf("expected author 3, got %d", created.AuthorID)
	}
}

func TestPostServiceUpdateNotOwner(t *testing.T) {
	posts := noopPostRepo()
	posts.getByIDFn = func(context.Context, uint) (*models.Post, error) {
		return &models.Post{ID: 5, AuthorID: 10, Text: "original"}, nil
	}
	updated := false
	posts.updateFn = func(context.Context, *models.Post) error {
		updated = true
		return nil
	}

	svc := NewPostService(posts, noopGroupRepo())
	post, err := svc.UpdatePost(context.Background(), UpdatePostInput{UserID: 11, PostID: 5, Text: "hijack"})
	if !models.IsForbidden(err) {
		t.Fatalf("expected forbidden app error, got %#v", err)
	}
	if updated {
		t.Fatal("update must not reach the repository for a non-owner")
	}
	// The post comes back so the caller can build a redirect to its detail.
	if post == nil || post.ID != 5 {
		t.Fatalf("expected post returned alongside the error, got %#v", post)
	}
}

func TestPostServiceUpdateClearsGroup(t *testing.T) {
	posts := noopPostRepo()
	groupID := uint(7)
	posts.getByIDFn = func(context.Context, uint) (*models.Post, error) {
		return &models.Post{ID: 5, AuthorID: 10, Text: "original", GroupID: &groupID}, nil
	}
	var saved *models.Post
	posts.updateFn = func(_ context.Context, p *models.Post) error {
		saved = p
		return nil
	}

	svc := NewPostService(posts, noopGroupRepo())
	empty := ""
	_, err := svc.UpdatePost(context.Background(), UpdatePostInput{
		UserID:    10,
		PostID:    5,
		Text:      "updated",
		GroupSlug: &empty,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved == nil || saved.GroupID != nil {
		t.Fatalf("expected group cleared, got %#v", saved)
	}
	if saved.Text != "updated" {
		t.Fatalf("expected updated text, got %q", saved.Text)
	}
}

func TestPostServiceDeleteNotOwner(t *testing.T) {
	posts := noopPostRepo()
	posts.getByIDFn = func(context.Context, uint) (*models.Post, error) {
		return &models.Post{ID: 5, AuthorID: 10}, nil
	}
	deleted := false
	posts.deleteFn = func(context.Context, uint) error {
		deleted = true
		return nil
	}

	svc := NewPostService(posts, noopGroupRepo())
	err := svc.DeletePost(context.Background(), DeletePostInput{UserID: 11, PostID: 5})
	if !models.IsForbidden(err) {
		t.Fatalf("expected forbidden app error, got %#v", err)
	}
	if deleted {
		t.Fatal("delete must not reach the repository for a non-owner")
	}
}

func TestPostServiceDeleteMissing(t *testing.T) {
	posts := noopPostRepo()
	posts.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return nil, models.NewNotFoundError("Post", id)
	}

	svc := NewPostService(posts, noopGroupRepo())
	err := svc.DeletePost(context.Background(), DeletePostInput{UserID: 1, PostID: 99})
	if !models.IsNotFound(err) {
		t.Fatalf("expected not-found app error, got %#v", err)
	}
}

func TestPostServiceCreateRepoFailure(t *testing.T) {
	posts := noopPostRepo()
	posts.createFn = func(context.Context, *models.Post) error {
		return models.NewInternalError(errors.New("db down"))
	}

	svc := NewPostService(posts, noopGroupRepo())
	_, err := svc.CreatePost(context.Background(), CreatePostInput{UserID: 1, Text: "hello"})
	if err == nil {
		t.Fatal("expected error")
	}
}
