package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetProfile handles GET /api/users/:username. Authenticated viewers also
// get their follow relationship to the profile.
func (s *Server) GetProfile(c *fiber.Ctx) error {
	username := c.Params("username")

	viewerID, _ := s.optionalUserID(c)
	profile, err := s.userService.GetProfile(c.UserContext(), username, viewerID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile)
}

// GetUserPosts handles GET /api/users/:username/posts — the author scope.
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	username := c.Params("username")

	author, feed, err := s.feedService.ByAuthor(c.UserContext(), username, parsePage(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"author":      author,
		"posts":       feed.Posts,
		"page":        feed.Page,
		"page_size":   feed.PageSize,
		"total_items": feed.TotalItems,
		"total_pages": feed.TotalPages,
	})
}

// FollowUser handles POST /api/users/:username/follow (protected). The
// operation is idempotent and self-follow is silently skipped; either way the
// client lands back on the profile.
func (s *Server) FollowUser(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	username := c.Params("username")

	if err := s.followService.Follow(c.UserContext(), userID, username); err != nil {
		return respondServiceError(c, err)
	}
	return c.Redirect(profilePath(username), fiber.StatusSeeOther)
}

// UnfollowUser handles DELETE /api/users/:username/follow (protected).
// Unfollowing someone never followed is not an error.
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	username := c.Params("username")

	if err := s.followService.Unfollow(c.UserContext(), userID, username); err != nil {
		return respondServiceError(c, err)
	}
	return c.Redirect(profilePath(username), fiber.StatusSeeOther)
}
