package models

// Message is a private message between two users. Messages are append-only;
// the only mutation ever applied is flipping Read via an explicit mark-read
// operation by the receiver.
type Message struct {
	ID         string `json:"id"`
	SenderID   string `json:"senderId"`
	ReceiverID string `json:"receiverId"`
	Content    string `json:"content"`
	// Timestamp is the human-readable display time.
	Timestamp string `json:"timestamp"`
	// CreatedAt is epoch milliseconds, used for sorting.
	CreatedAt int64 `json:"createdAt"`
	Read      bool  `json:"read"`
}
