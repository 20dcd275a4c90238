package server

import (
	"retrospace/internal/document"
	"retrospace/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ListMessages returns the message collection in append order.
func (s *Server) ListMessages(c *fiber.Ctx) error {
	var msgs []models.Message
	if err := document.ReadJSON(c.UserContext(), s.store, document.KeyMessages, &msgs); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if msgs == nil {
		msgs = []models.Message{}
	}
	return c.JSON(msgs)
}

// CreateMessage appends a message.
func (s *Server) CreateMessage(c *fiber.Ctx) error {
	var msg models.Message
	if err := c.BodyParser(&msg); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid message payload"))
	}
	if msg.ID == "" || msg.SenderID == "" || msg.ReceiverID == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("id, senderId and receiverId are required"))
	}

	ctx := c.UserContext()
	var msgs []models.Message
	if err := document.ReadJSON(ctx, s.store, document.KeyMessages, &msgs); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	msgs = append(msgs, msg)
	if err := document.WriteJSON(ctx, s.store, document.KeyMessages, msgs); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.Status(fiber.StatusCreated).JSON(msg)
}

// UpdateMessage shallow-merges the request body into the stored record; the
// mark-read flow is its only caller today.
func (s *Server) UpdateMessage(c *fiber.Ctx) error {
	id := c.Params("id")
	patch, err := parsePatch(c)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid message payload"))
	}

	ctx := c.UserContext()
	var msgs []models.Message
	if err := document.ReadJSON(ctx, s.store, document.KeyMessages, &msgs); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	for i := range msgs {
		if msgs[i].ID != id {
			continue
		}
		var updated models.Message
		if err := shallowMerge(msgs[i], patch, &updated); err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid message payload"))
		}
		updated.ID = id
		msgs[i] = updated
		if err := document.WriteJSON(ctx, s.store, document.KeyMessages, msgs); err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError, err)
		}
		return c.JSON(updated)
	}
	return models.RespondWithError(c, fiber.StatusNotFound, models.NewNotFoundError("Message", id))
}
