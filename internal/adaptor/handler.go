package adaptor

import (
	"customer-feedback/internal/usecase"
	"customer-feedback/internal/view"

	"go.uber.org/zap"
)

type Handler struct {
	Feedback *FeedbackHandler
	Chart    *ChartHandler
	Comment  *CommentHandler
}

func NewHandler(service *usecase.Service, renderer *view.Renderer, log *zap.Logger) *Handler {
	handler := &Handler{
		Feedback: NewFeedbackHandler(service.Feedback, renderer, log),
		Chart:    NewChartHandler(service.Chart, renderer, log),
	}
	if service.Comment != nil {
		handler.Comment = NewCommentHandler(service.Comment, log)
	}
	return handler
}
