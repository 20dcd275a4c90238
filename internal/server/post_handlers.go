package server

import (
	"retrospace/internal/document"
	"retrospace/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ListPosts returns the post collection, most recent first.
func (s *Server) ListPosts(c *fiber.Ctx) error {
	var posts []models.Post
	if err := document.ReadJSON(c.UserContext(), s.store, document.KeyPosts, &posts); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if posts == nil {
		posts = []models.Post{}
	}
	return c.JSON(posts)
}

// CreatePost inserts at the head of the collection, preserving the
// most-recent-first storage contract.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var post models.Post
	if err := c.BodyParser(&post); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid post payload"))
	}
	if post.ID == "" || post.AuthorID == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("id and authorId are required"))
	}

	ctx := c.UserContext()
	var posts []models.Post
	if err := document.ReadJSON(ctx, s.store, document.KeyPosts, &posts); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	posts = append([]models.Post{post}, posts...)
	if err := document.WriteJSON(ctx, s.store, document.KeyPosts, posts); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// UpdatePost shallow-merges the request body into the stored record.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id := c.Params("id")
	patch, err := parsePatch(c)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid post payload"))
	}

	ctx := c.UserContext()
	var posts []models.Post
	if err := document.ReadJSON(ctx, s.store, document.KeyPosts, &posts); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	for i := range posts {
		if posts[i].ID != id {
			continue
		}
		var updated models.Post
		if err := shallowMerge(posts[i], patch, &updated); err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid post payload"))
		}
		updated.ID = id
		posts[i] = updated
		if err := document.WriteJSON(ctx, s.store, document.KeyPosts, posts); err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError, err)
		}
		return c.JSON(updated)
	}
	return models.RespondWithError(c, fiber.StatusNotFound, models.NewNotFoundError("Post", id))
}

// DeletePost removes the post; deleting an absent id still returns 204.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id := c.Params("id")

	ctx := c.UserContext()
	var posts []models.Post
	if err := document.ReadJSON(ctx, s.store, document.KeyPosts, &posts); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	kept := posts[:0]
	for _, p := range posts {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if err := document.WriteJSON(ctx, s.store, document.KeyPosts, kept); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
