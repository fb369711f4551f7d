package usecase

import (
	"context"

	"customer-feedback/internal/data/entity"
	"customer-feedback/internal/dto/request"

	"github.com/stretchr/testify/mock"
)

type mockFeedbackAPI struct {
	mock.Mock
}

func (m *mockFeedbackAPI) CreateComment(ctx context.Context, payload *request.FeedbackPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func (m *mockFeedbackAPI) ListComments(ctx context.Context) ([]entity.Comment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Comment), args.Error(1)
}

type mockDistributionCache struct {
	mock.Mock
}

func (m *mockDistributionCache) Get(ctx context.Context) ([]int, bool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]int), args.Bool(1), args.Error(2)
}

func (m *mockDistributionCache) Set(ctx context.Context, counts []int) error {
	args := m.Called(ctx, counts)
	return args.Error(0)
}

func (m *mockDistributionCache) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type mockCommentRepo struct {
	mock.Mock
}

func (m *mockCommentRepo) EnsureSchema(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockCommentRepo) Create(ctx context.Context, comment *entity.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *mockCommentRepo) List(ctx context.Context, limit, offset int) ([]*entity.Comment, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Comment), args.Error(1)
}

func (m *mockCommentRepo) ListAll(ctx context.Context) ([]*entity.Comment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Comment), args.Error(1)
}

func (m *mockCommentRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
