package app

import (
	"context"

	"retrospace/internal/feed"
	"retrospace/internal/models"
)

// SendMessage delivers a direct message from the viewer to receiverID.
// Delivery is unconditional; blocks are applied on the reading side, so a
// blocked sender's messages exist in the store but never surface for the
// receiver.
func (a *App) SendMessage(ctx context.Context, receiverID, content string) (*models.Message, error) {
	v, err := a.requireActive()
	if err != nil {
		return nil, err
	}
	if content == "" {
		return nil, models.NewValidationError("Message content is required")
	}

	a.mu.RLock()
	receiver := findUser(a.users, receiverID)
	a.mu.RUnlock()
	if receiver == nil {
		return nil, models.NewNotFoundError("User", receiverID)
	}

	msg := &models.Message{
		ID:         models.NewID(models.MessageIDPrefix),
		SenderID:   v.ID,
		ReceiverID: receiverID,
		Content:    content,
		Timestamp:  a.timestamp(),
		CreatedAt:  a.now().UnixMilli(),
	}
	if err := a.gw.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}
	if err := a.Reload(ctx); err != nil {
		return nil, err
	}
	return msg, nil
}

// MarkMessageRead flips the read flag on a message addressed to the viewer.
// This is the only operation that changes read state.
func (a *App) MarkMessageRead(ctx context.Context, messageID string) error {
	v, err := a.requireActive()
	if err != nil {
		return err
	}

	a.mu.RLock()
	var msg *models.Message
	for i := range a.msgs {
		if a.msgs[i].ID == messageID {
			m := a.msgs[i]
			msg = &m
			break
		}
	}
	a.mu.RUnlock()
	if msg == nil {
		return models.NewNotFoundError("Message", messageID)
	}
	if msg.ReceiverID != v.ID {
		return models.NewUnauthorizedError("Only the receiver can mark a message read")
	}
	if msg.Read {
		return nil
	}

	msg.Read = true
	if err := a.gw.UpdateMessage(ctx, msg); err != nil {
		return err
	}
	return a.Reload(ctx)
}

// Inbox returns the messages addressed to the viewer, minus those from
// senders the viewer has blocked. Sent messages are not listed.
func (a *App) Inbox() []models.Message {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return feed.VisibleSenders(a.msgs, a.viewer)
}

// UnreadCount counts unread messages in the inbox, with blocked senders
// excluded so they cannot raise the badge.
func (a *App) UnreadCount() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	n := 0
	for _, m := range feed.VisibleSenders(a.msgs, a.viewer) {
		if !m.Read {
			n++
		}
	}
	return n
}
