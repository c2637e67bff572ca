package server

import (
	"murmur/internal/cache"
	"murmur/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ClearFeedCache handles POST /api/admin/cache/feed/clear (admin only).
// This is the only write path that removes cached feed pages before their
// TTL runs out.
func (s *Server) ClearFeedCache(c *fiber.Ctx) error {
	if err := cache.ClearFeedIndex(c.UserContext()); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	return c.JSON(fiber.Map{
		"status": "cleared",
	})
}

// GetFeatureFlags handles GET /api/admin/flags (admin only). Percentage
// rollouts are evaluated for the requesting admin.
func (s *Server) GetFeatureFlags(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	return c.JSON(fiber.Map{
		"raw":       s.flags.Raw(),
		"evaluated": s.flags.Snapshot(userID),
	})
}
