package service

import (
	"context"

	"murmur/internal/models"
	"murmur/internal/repository"
	"murmur/internal/validation"
)

const (
	maxGroupTitleLen       = 200
	maxGroupDescriptionLen = 400
)

// GroupService implements the administrative group surface.
type GroupService struct {
	groupRepo repository.GroupRepository
}

type CreateGroupInput struct {
	Title       string
	Slug        string
	Description string
}

func NewGroupService(groupRepo repository.GroupRepository) *GroupService {
	return &GroupService{groupRepo: groupRepo}
}

func (s *GroupService) CreateGroup(ctx context.Context, in CreateGroupInput) (*models.Group, error) {
	if in.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if len(in.Title) > maxGroupTitleLen {
		return nil, models.NewValidationError("Title too long (max 200 characters)")
	}
	if len(in.Description) > maxGroupDescriptionLen {
		return nil, models.NewValidationError("Description too long (max 400 characters)")
	}
	if err := validation.ValidateGroupSlug(in.Slug); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	group := &models.Group{
		Title:       in.Title,
		Slug:        in.Slug,
		Description: in.Description,
	}
	if err := s.groupRepo.Create(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

func (s *GroupService) GetGroup(ctx context.Context, slug string) (*models.Group, error) {
	return s.groupRepo.GetBySlug(ctx, slug)
}

func (s *GroupService) ListGroups(ctx context.Context) ([]models.Group, error) {
	return s.groupRepo.List(ctx)
}

// DeleteGroup removes a group. Its posts are detached, never deleted.
func (s *GroupService) DeleteGroup(ctx context.Context, slug string) error {
	if _, err := s.groupRepo.GetBySlug(ctx, slug); err != nil {
		return err
	}
	return s.groupRepo.DeleteBySlug(ctx, slug)
}
