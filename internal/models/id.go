package models

import "github.com/google/uuid"

// ID prefixes keep entity ids greppable in stored documents.
const (
	UserIDPrefix    = "user-"
	PostIDPrefix    = "p-"
	CommentIDPrefix = "c-"
	MessageIDPrefix = "m-"
)

// NewID returns an opaque stable id with the given prefix.
func NewID(prefix string) string {
	return prefix + uuid.NewString()
}
