package response

import (
	"time"

	"customer-feedback/internal/data/entity"
)

type CommentResponse struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Email      string        `json:"email"`
	Rating     entity.Rating `json:"rating"`
	Comment    string        `json:"comment"`
	DatePosted time.Time     `json:"datePosted"`
}

// Helper converter
func CommentToResponse(comment *entity.Comment) CommentResponse {
	return CommentResponse{
		ID:         comment.ID.String(),
		Name:       comment.Name,
		Email:      comment.Email,
		Rating:     comment.Rating,
		Comment:    comment.Text,
		DatePosted: comment.DatePosted,
	}
}

// SubmissionResponse is returned by the JSON feedback endpoint on success
type SubmissionResponse struct {
	RedirectTo string    `json:"redirect_to"`
	DatePosted time.Time `json:"datePosted"`
}
