package server

import (
	"context"
	"errors"
	"fmt"

	"murmur/internal/config"
	"murmur/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parseID extracts the "id" route parameter as a positive uint. On failure
// it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid ID"))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// parsePage extracts the page query parameter. Out-of-range values are left
// to the pagination layer, which clamps rather than errors.
func parsePage(c *fiber.Ctx) int {
	return c.QueryInt("page", 1)
}

// respondServiceError maps the application error taxonomy onto HTTP statuses.
func respondServiceError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case "NOT_FOUND":
			status = fiber.StatusNotFound
		case "VALIDATION_ERROR":
			status = fiber.StatusBadRequest
		case "UNAUTHORIZED":
			status = fiber.StatusUnauthorized
		case "FORBIDDEN":
			status = fiber.StatusForbidden
		}
	}
	return models.RespondWithError(c, status, err)
}

// respondOwnershipFailure answers a non-owner mutation attempt on a post.
// Under the redirect policy the client is sent back to the post detail, the
// way the platform has always behaved; under the forbid policy the failure
// surfaces as 403.
func (s *Server) respondOwnershipFailure(c *fiber.Ctx, postID uint, err error) error {
	if s.config.OwnershipPolicy == config.OwnershipForbid {
		return models.RespondWithError(c, fiber.StatusForbidden, err)
	}
	return c.Redirect(postDetailPath(postID), fiber.StatusSeeOther)
}

func postDetailPath(postID uint) string {
	return fmt.Sprintf("/api/posts/%d", postID)
}

func profilePath(username string) string {
	return "/api/users/" + username
}

func (s *Server) isAdminByUserID(ctx context.Context, userID uint) (bool, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Select("is_admin").First(&user, userID).Error; err != nil {
		return false, err
	}
	return user.IsAdmin, nil
}
