package service

import (
	"context"

	"murmur/internal/cache"
	"murmur/internal/featureflags"
	"murmur/internal/models"
	"murmur/internal/pagination"
	"murmur/internal/repository"
)

// FeedService composes paginated post feeds. Every scope shares the same
// ordering (newest first) and the same fixed window size; only the filter
// changes. The "all posts" scope is served through the page cache.
type FeedService struct {
	postRepo   repository.PostRepository
	groupRepo  repository.GroupRepository
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
	flags      *featureflags.Manager
}

// FeedPage is one window of a feed plus its pagination envelope.
type FeedPage struct {
	Posts      []*models.Post `json:"posts"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalItems int64          `json:"total_items"`
	TotalPages int            `json:"total_pages"`
}

func NewFeedService(
	postRepo repository.PostRepository,
	groupRepo repository.GroupRepository,
	userRepo repository.UserRepository,
	followRepo repository.FollowRepository,
) *FeedService {
	return &FeedService{
		postRepo:   postRepo,
		groupRepo:  groupRepo,
		userRepo:   userRepo,
		followRepo: followRepo,
	}
}

// WithFlags attaches a feature-flag manager. When unset, flag-gated behavior
// stays at its default (main-feed caching on).
func (s *FeedService) WithFlags(flags *featureflags.Manager) *FeedService {
	s.flags = flags
	return s
}

// All returns a page of the main feed. Pages are cached for a short, bounded
// interval; post writes do not invalidate them, so readers may see content up
// to cache.FeedIndexTTL stale. Only the TTL and the explicit clear remove
// entries. The feed_cache flag acts as an operational kill switch for the
// whole cache layer.
func (s *FeedService) All(ctx context.Context, page int) (*FeedPage, error) {
	if s.flags != nil && !s.flags.Enabled(featureflags.FeedCache, 0) {
		return s.compose(ctx, repository.PostFilter{}, page)
	}

	// Clamp before the cache lookup so every alias of the same window (page
	// 99 of a 2-page feed, negative pages) shares one key.
	total, err := s.postRepo.Count(ctx, repository.PostFilter{})
	if err != nil {
		return nil, err
	}
	page = pagination.Resolve(page, total).Page

	var result FeedPage
	err = cache.Aside(ctx, cache.FeedPageKey(page), &result, cache.FeedIndexTTL, func() error {
		fetched, fetchErr := s.compose(ctx, repository.PostFilter{}, page)
		if fetchErr != nil {
			return fetchErr
		}
		result = *fetched
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ByGroup returns a page of posts in the group with the given slug. Unknown
// slugs are a not-found error, never an empty feed.
func (s *FeedService) ByGroup(ctx context.Context, slug string, page int) (*models.Group, *FeedPage, error) {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}

	feed, err := s.compose(ctx, repository.PostFilter{GroupID: &group.ID}, page)
	if err != nil {
		return nil, nil, err
	}
	return group, feed, nil
}

// ByAuthor returns a page of posts authored by the given username.
func (s *FeedService) ByAuthor(ctx context.Context, username string, page int) (*models.User, *FeedPage, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, nil, err
	}

	feed, err := s.compose(ctx, repository.PostFilter{AuthorID: &author.ID}, page)
	if err != nil {
		return nil, nil, err
	}
	return author, feed, nil
}

// Followed returns a page of posts authored by anyone the user follows. A
// user who follows nobody gets an empty page, not an error.
func (s *FeedService) Followed(ctx context.Context, userID uint, page int) (*FeedPage, error) {
	return s.compose(ctx, repository.PostFilter{FollowerID: &userID}, page)
}

func (s *FeedService) compose(ctx context.Context, f repository.PostFilter, page int) (*FeedPage, error) {
	total, err := s.postRepo.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	w := pagination.Resolve(page, total)
	posts, err := s.postRepo.List(ctx, f, w.PageSize, w.Offset)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []*models.Post{}
	}

	return &FeedPage{
		Posts:      posts,
		Page:       w.Page,
		PageSize:   w.PageSize,
		TotalItems: w.TotalItems,
		TotalPages: w.TotalPages,
	}, nil
}
