package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetFeed handles GET /api/feed — the main feed, readable by everyone.
// Responses ride through the page cache, so a just-published post may take
// up to the cache TTL to appear here.
func (s *Server) GetFeed(c *fiber.Ctx) error {
	page, err := s.feedService.All(c.UserContext(), parsePage(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(page)
}

// GetFollowingFeed handles GET /api/feed/following (protected)
func (s *Server) GetFollowingFeed(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	page, err := s.feedService.Followed(c.UserContext(), userID, parsePage(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(page)
}
