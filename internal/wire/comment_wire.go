package wire

import (
	"customer-feedback/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireComment mounts the mock feedback API when it is enabled
func wireComment(r chi.Router, commentHandler *adaptor.CommentHandler) {
	if commentHandler == nil {
		return
	}

	r.Route("/api/comments", func(r chi.Router) {
		r.Get("/", commentHandler.ListComments)
		r.Post("/", commentHandler.CreateComment)
	})
}
