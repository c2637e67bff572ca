package server

import (
	"murmur/internal/models"
	"murmur/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPost handles GET /api/posts/:id — post detail with its comments.
func (s *Server) GetPost(c *fiber.Ctx) error {
	postID, err := s.parseID(c)
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.UserContext(), postID)
	if err != nil {
		return respondServiceError(c, err)
	}

	comments, err := s.commentService.ListComments(c.UserContext(), postID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"post":     post,
		"comments": comments,
	})
}

// CreatePost handles POST /api/posts (protected). On success the client is
// pointed back at the author's profile, where the new post now leads.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Text     string `json:"text"`
		Group    string `json:"group,omitempty"`
		ImageURL string `json:"image_url,omitempty"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.UserContext(), service.CreatePostInput{
		UserID:    userID,
		Text:      req.Text,
		GroupSlug: req.Group,
		ImageURL:  req.ImageURL,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	c.Set(fiber.HeaderLocation, profilePath(post.Author.Username))
	return c.Status(fiber.StatusCreated).JSON(post)
}

// UpdatePost handles PUT /api/posts/:id (protected, owner only).
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	postID, err := s.parseID(c)
	if err != nil {
		return nil
	}

	var req struct {
		Text     string  `json:"text"`
		Group    *string `json:"group,omitempty"`
		ImageURL *string `json:"image_url,omitempty"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.UpdatePost(c.UserContext(), service.UpdatePostInput{
		UserID:    userID,
		PostID:    postID,
		Text:      req.Text,
		GroupSlug: req.Group,
		ImageURL:  req.ImageURL,
	})
	if err != nil {
		if models.IsForbidden(err) {
			return s.respondOwnershipFailure(c, postID, err)
		}
		return respondServiceError(c, err)
	}

	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id?confirm=true (protected, owner
// only). Without the confirm flag the client is sent back to the post detail
// to confirm, mirroring the confirmation page flow.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	postID, err := s.parseID(c)
	if err != nil {
		return nil
	}

	if !c.QueryBool("confirm", false) {
		return c.Redirect(postDetailPath(postID), fiber.StatusSeeOther)
	}

	err = s.postService.DeletePost(c.UserContext(), service.DeletePostInput{
		UserID: userID,
		PostID: postID,
	})
	if err != nil {
		if models.IsForbidden(err) {
			return s.respondOwnershipFailure(c, postID, err)
		}
		return respondServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
