package usecase

import (
	"time"

	"customer-feedback/internal/data/cache"
	"customer-feedback/internal/data/feedbackapi"
	"customer-feedback/internal/data/repository"
	"customer-feedback/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Feedback FeedbackService
	Chart    ChartService
	// Comment is nil unless the mock API is enabled
	Comment CommentService
}

func NewService(repo *repository.Repository, api feedbackapi.Client, distCache cache.DistributionCache, config *utils.Config, log *zap.Logger) *Service {
	chart := NewChartService(api, distCache, log)

	service := &Service{
		Feedback: NewFeedbackService(api, chart, config.Feedback.ConfirmationRoute, time.Now, log),
		Chart:    chart,
	}

	if repo != nil && repo.Comment != nil {
		service.Comment = NewCommentService(repo.Comment, time.Now, log)
	}

	return service
}
