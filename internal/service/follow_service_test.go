package service

import (
	"context"
	"testing"

	"murmur/internal/models"
)

func TestFollowServiceSelfFollowIsNoop(t *testing.T) {
	users := noopUserRepo()
	users.getByUsernameFn = func(_ context.Context, username string) (*models.User, error) {
		return &models.User{ID: 3, Username: username}, nil
	}
	followed := false
	follows := noopFollowRepo()
	follows.followFn = func(context.Context, uint, uint) error {
		followed = true
		return nil
	}

	svc := NewFollowService(follows, users)
	if err := svc.Follow(context.Background(), 3, "myself"); err != nil {
		t.Fatalf("self-follow must be a silent no-op, got %v", err)
	}
	if followed {
		t.Fatal("self-follow must not create an edge")
	}
}

func TestFollowServiceUnknownAuthor(t *testing.T) {
	users := noopUserRepo()
	users.getByUsernameFn = func(_ context.Context, username string) (*models.User, error) {
		return nil, models.NewNotFoundError("User", username)
	}

	svc := NewFollowService(noopFollowRepo(), users)
	if err := svc.Follow(context.Background(), 1, "ghost"); !models.IsNotFound(err) {
		t.Fatalf("expected not-found app error, got %#v", err)
	}
	if err := svc.Unfollow(context.Background(), 1, "ghost"); !models.IsNotFound(err) {
		t.Fatalf("expected not-found app error, got %#v", err)
	}
}

func TestFollowServiceFollowCreatesEdge(t *testing.T) {
	users := noopUserRepo()
	users.getByUsernameFn = func(_ context.Context, username string) (*models.User, error) {
		return &models.User{ID: 9, Username: username}, nil
	}
	var gotUser, gotAuthor uint
	follows := noopFollowRepo()
	follows.followFn = func(_ context.Context, userID, authorID uint) error {
		gotUser, gotAuthor = userID, authorID
		return nil
	}

	svc := NewFollowService(follows, users)
	if err := svc.Follow(context.Background(), 3, "mona"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotUser != 3 || gotAuthor != 9 {
		t.Fatalf("expected edge 3->9, got %d->%d", gotUser, gotAuthor)
	}
}

func TestFollowServiceUnfollowAlwaysDeletes(t *testing.T) {
	users := noopUserRepo()
	users.getByUsernameFn = func(_ context.Context, username string) (*models.User, error) {
		return &models.User{ID: 9, Username: username}, nil
	}
	called := false
	follows := noopFollowRepo()
	follows.unfollowFn = func(context.Context, uint, uint) error {
		called = true
		return nil
	}

	svc := NewFollowService(follows, users)
	if err := svc.Unfollow(context.Background(), 3, "mona"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Fatal("expected unfollow to reach the repository")
	}
}
