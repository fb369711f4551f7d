package request

import (
	"time"

	"customer-feedback/internal/data/entity"
)

// CreateCommentRequest is accepted by the built-in mock API.
// Rating may arrive as a number or a numeric string.
type CreateCommentRequest struct {
	Name       string        `json:"name" validate:"required,max=200"`
	Email      string        `json:"email" validate:"required,email,max=320"`
	Rating     entity.Rating `json:"rating" validate:"required,min=1,max=5"`
	Comment    string        `json:"comment" validate:"required,max=5000"`
	DatePosted *time.Time    `json:"datePosted,omitempty"`
}
