package request

import "time"

// FeedbackForm holds the raw values of the feedback form, exactly as entered
type FeedbackForm struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Rating  string `json:"rating" validate:"required,oneof=1 2 3 4 5"`
	Comment string `json:"comment" validate:"required"`
}

// FeedbackPayload is the body written to the feedback API
type FeedbackPayload struct {
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Rating     string    `json:"rating"`
	Comment    string    `json:"comment"`
	DatePosted time.Time `json:"datePosted"`
}

func NewFeedbackPayload(form *FeedbackForm, postedAt time.Time) *FeedbackPayload {
	return &FeedbackPayload{
		Name:       form.Name,
		Email:      form.Email,
		Rating:     form.Rating,
		Comment:    form.Comment,
		DatePosted: postedAt.UTC(),
	}
}
