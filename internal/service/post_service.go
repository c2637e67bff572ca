package service

import (
	"context"
	"strings"

	"murmur/internal/models"
	"murmur/internal/repository"
)

const maxPostTextLen = 10000

// PostService implements post authoring. Ownership checks live here; how an
// ownership failure surfaces over HTTP (redirect or forbidden) is the
// handler's concern.
type PostService struct {
	postRepo  repository.PostRepository
	groupRepo repository.GroupRepository
}

type CreatePostInput struct {
	UserID    uint
	Text      string
	GroupSlug string
	ImageURL  string
}

type UpdatePostInput struct {
	UserID    uint
	PostID    uint
	Text      string
	GroupSlug *string
	ImageURL  *string
}

type DeletePostInput struct {
	UserID uint
	PostID uint
}

func NewPostService(postRepo repository.PostRepository, groupRepo repository.GroupRepository) *PostService {
	return &PostService{postRepo: postRepo, groupRepo: groupRepo}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, models.NewValidationError("Text is required")
	}
	if len(text) > maxPostTextLen {
		return nil, models.NewValidationError("Text too long (max 10000 characters)")
	}

	post := &models.Post{
		Text:     text,
		AuthorID: in.UserID,
		ImageURL: in.ImageURL,
	}

	if in.GroupSlug != "" {
		group, err := s.groupRepo.GetBySlug(ctx, in.GroupSlug)
		if err != nil {
			return nil, err
		}
		post.GroupID = &group.ID
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// UpdatePost edits a post's text, group, or image. Only the author may edit;
// anyone else gets a forbidden error carrying the post for the caller to
// build its redirect target from.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}

	if post.AuthorID != in.UserID {
		return post, models.NewForbiddenError("You can only edit your own posts")
	}

	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, models.NewValidationError("Text is required")
	}
	if len(text) > maxPostTextLen {
		return nil, models.NewValidationError("Text too long (max 10000 characters)")
	}
	post.Text = text

	if in.GroupSlug != nil {
		if *in.GroupSlug == "" {
			post.GroupID = nil
			post.Group = nil
		} else {
			group, err := s.groupRepo.GetBySlug(ctx, *in.GroupSlug)
			if err != nil {
				return nil, err
			}
			post.GroupID = &group.ID
			post.Group = nil
		}
	}
	if in.ImageURL != nil {
		post.ImageURL = *in.ImageURL
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

// DeletePost removes a post and, through the storage cascade, its comments.
// Only the author may delete.
func (s *PostService) DeletePost(ctx context.Context, in DeletePostInput) error {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return err
	}

	if post.AuthorID != in.UserID {
		return models.NewForbiddenError("You can only delete your own posts")
	}

	return s.postRepo.Delete(ctx, in.PostID)
}
