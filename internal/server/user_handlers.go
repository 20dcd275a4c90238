package server

import (
	"strings"

	"retrospace/internal/document"
	"retrospace/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ListUsers returns the full user collection.
func (s *Server) ListUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := document.ReadJSON(c.UserContext(), s.store, document.KeyUsers, &users); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if users == nil {
		users = []models.User{}
	}
	return c.JSON(users)
}

// CreateUser appends a new user. Usernames are unique case-insensitively;
// a duplicate gets 409.
func (s *Server) CreateUser(c *fiber.Ctx) error {
	var user models.User
	if err := c.BodyParser(&user); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid user payload"))
	}
	if user.ID == "" || user.Username == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("id and username are required"))
	}

	ctx := c.UserContext()
	var users []models.User
	if err := document.ReadJSON(ctx, s.store, document.KeyUsers, &users); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	for i := range users {
		if strings.EqualFold(users[i].Username, user.Username) {
			return models.RespondWithError(c, fiber.StatusConflict, models.NewConflictError("Username taken"))
		}
	}

	users = append(users, user)
	if err := document.WriteJSON(ctx, s.store, document.KeyUsers, users); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// UpdateUser shallow-merges the request body into the stored record.
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	id := c.Params("id")
	patch, err := parsePatch(c)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid user payload"))
	}

	ctx := c.UserContext()
	var users []models.User
	if err := document.ReadJSON(ctx, s.store, document.KeyUsers, &users); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	for i := range users {
		if users[i].ID != id {
			continue
		}
		var updated models.User
		if err := shallowMerge(users[i], patch, &updated); err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid user payload"))
		}
		updated.ID = id
		users[i] = updated
		if err := document.WriteJSON(ctx, s.store, document.KeyUsers, users); err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError, err)
		}
		return c.JSON(updated)
	}
	return models.RespondWithError(c, fiber.StatusNotFound, models.NewNotFoundError("User", id))
}
