package wire

import (
	"net/http"

	"customer-feedback/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireFeedback(r chi.Router, feedbackHandler *adaptor.FeedbackHandler, chartHandler *adaptor.ChartHandler) {
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/feedback/new", http.StatusFound)
	})

	// GET /feedback/new - feedback form
	r.Get("/feedback/new", feedbackHandler.ShowForm)

	// POST /feedback/new - form submit, redirects to the confirmation route
	r.Post("/feedback/new", feedbackHandler.SubmitForm)

	// POST /api/feedback - same workflow for JSON clients
	r.Post("/api/feedback", feedbackHandler.SubmitJSON)

	// GET /feedback - ratings chart (confirmation route)
	r.Get("/feedback", chartHandler.ShowChart)

	// GET /api/ratings/distribution - chart dataset
	r.Get("/api/ratings/distribution", chartHandler.GetDistribution)
}
