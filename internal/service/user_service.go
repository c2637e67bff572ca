package service

import (
	"context"

	"murmur/internal/models"
	"murmur/internal/repository"
)

// UserService exposes profile lookups.
type UserService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
}

// Profile is a user profile plus the viewer's relationship to it.
type Profile struct {
	User *models.User `json:"user"`
	// Following is true when the viewer follows this user. Always false for
	// anonymous viewers and for a user's own profile.
	Following bool `json:"following"`
}

func NewUserService(userRepo repository.UserRepository, followRepo repository.FollowRepository) *UserService {
	return &UserService{userRepo: userRepo, followRepo: followRepo}
}

// GetProfile returns the profile for username as seen by viewerID. A zero
// viewerID means an anonymous viewer.
func (s *UserService) GetProfile(ctx context.Context, username string, viewerID uint) (*Profile, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	profile := &Profile{User: user}
	if viewerID != 0 && viewerID != user.ID {
		following, err := s.followRepo.IsFollowing(ctx, viewerID, user.ID)
		if err != nil {
			return nil, err
		}
		profile.Following = following
	}
	return profile, nil
}
