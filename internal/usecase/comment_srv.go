package usecase

import (
	"context"
	"fmt"
	"time"

	"customer-feedback/internal/data/entity"
	"customer-feedback/internal/data/repository"
	"customer-feedback/internal/dto/request"
	"customer-feedback/internal/dto/response"
	"customer-feedback/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CommentService backs the built-in mock feedback API
type CommentService interface {
	CreateComment(ctx context.Context, req *request.CreateCommentRequest) (*response.CommentResponse, error)
	// ListComments returns every comment when page is nil
	ListComments(ctx context.Context, page *request.PaginatedRequest) ([]response.CommentResponse, int64, error)
}

type commentService struct {
	repo repository.CommentRepository
	now  func() time.Time
	log  *zap.Logger
}

func NewCommentService(repo repository.CommentRepository, now func() time.Time, log *zap.Logger) CommentService {
	if now == nil {
		now = time.Now
	}
	return &commentService{
		repo: repo,
		now:  now,
		log:  log.With(zap.String("service", "comment")),
	}
}

func (s *commentService) CreateComment(ctx context.Context, req *request.CreateCommentRequest) (*response.CommentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create comment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	now := s.now().UTC()
	datePosted := now
	if req.DatePosted != nil && !req.DatePosted.IsZero() {
		datePosted = req.DatePosted.UTC()
	}

	comment := &entity.Comment{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		Name:       req.Name,
		Email:      req.Email,
		Rating:     req.Rating,
		Text:       req.Comment,
		DatePosted: datePosted,
	}

	if err := s.repo.Create(ctx, comment); err != nil {
		s.log.Error("Failed to create comment", zap.Error(err))
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.log.Info("Comment created",
		zap.String("comment_id", comment.ID.String()),
		zap.Int("rating", int(comment.Rating)),
	)

	resp := response.CommentToResponse(comment)
	return &resp, nil
}

func (s *commentService) ListComments(ctx context.Context, page *request.PaginatedRequest) ([]response.CommentResponse, int64, error) {
	var (
		comments []*entity.Comment
		err      error
	)
	if page == nil {
		comments, err = s.repo.ListAll(ctx)
	} else {
		comments, err = s.repo.List(ctx, page.Limit(), page.Offset())
	}
	if err != nil {
		return nil, 0, fmt.Errorf("list comments: %w", err)
	}

	total := int64(len(comments))
	if page != nil {
		if total, err = s.repo.Count(ctx); err != nil {
			return nil, 0, fmt.Errorf("count comments: %w", err)
		}
	}

	resp := make([]response.CommentResponse, len(comments))
	for i, comment := range comments {
		resp[i] = response.CommentToResponse(comment)
	}

	return resp, total, nil
}
