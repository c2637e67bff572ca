package service

import (
	"context"

	"murmur/internal/models"
	"murmur/internal/repository"
)

// FollowService maintains follow relationships between users.
type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{followRepo: followRepo, userRepo: userRepo}
}

// Follow makes userID follow the author with the given username. Following
// an already-followed author and following yourself are both silent no-ops;
// only an unknown username is an error.
func (s *FollowService) Follow(ctx context.Context, userID uint, username string) error {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}

	if author.ID == userID {
		return nil
	}

	return s.followRepo.Follow(ctx, userID, author.ID)
}

// Unfollow removes the follow edge if present. Unfollowing someone never
// followed is not an error.
func (s *FollowService) Unfollow(ctx context.Context, userID uint, username string) error {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}

	return s.followRepo.Unfollow(ctx, userID, author.ID)
}

// IsFollowing reports whether userID follows the given author.
func (s *FollowService) IsFollowing(ctx context.Context, userID, authorID uint) (bool, error) {
	return s.followRepo.IsFollowing(ctx, userID, authorID)
}

// FollowedAuthors lists the authors the user follows, ordered by username.
func (s *FollowService) FollowedAuthors(ctx context.Context, userID uint) ([]models.User, error) {
	return s.followRepo.FollowedAuthors(ctx, userID)
}
