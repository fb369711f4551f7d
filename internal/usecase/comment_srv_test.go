package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"customer-feedback/internal/data/entity"
	"customer-feedback/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCommentService(repo *mockCommentRepo) CommentService {
	return NewCommentService(repo, func() time.Time { return fixedNow }, zap.NewNop())
}

func TestCommentService_CreateDefaultsDatePosted(t *testing.T) {
	repo := &mockCommentRepo{}
	repo.On("Create", mock.Anything, mock.MatchedBy(func(c *entity.Comment) bool {
		return c.ID != uuid.Nil &&
			c.Rating == 4 &&
			c.Text == "Great service" &&
			c.DatePosted.Equal(fixedNow) &&
			c.CreatedAt.Equal(fixedNow)
	})).Return(nil).Once()

	resp, err := newCommentService(repo).CreateComment(context.Background(), &request.CreateCommentRequest{
		Name:    "Alice",
		Email:   "alice@example.com",
		Rating:  4,
		Comment: "Great service",
	})
	require.NoError(t, err)

	assert.Equal(t, "Alice", resp.Name)
	assert.Equal(t, entity.Rating(4), resp.Rating)
	assert.Equal(t, fixedNow, resp.DatePosted)
	repo.AssertExpectations(t)
}

func TestCommentService_CreateKeepsClientDate(t *testing.T) {
	posted := time.Date(2023, 12, 24, 18, 0, 0, 0, time.FixedZone("CET", 3600))

	repo := &mockCommentRepo{}
	repo.On("Create", mock.Anything, mock.MatchedBy(func(c *entity.Comment) bool {
		return c.DatePosted.Equal(posted) && c.DatePosted.Location() == time.UTC
	})).Return(nil).Once()

	_, err := newCommentService(repo).CreateComment(context.Background(), &request.CreateCommentRequest{
		Name:       "Bob",
		Email:      "bob@example.com",
		Rating:     2,
		Comment:    "Slow",
		DatePosted: &posted,
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCommentService_CreateRejectsInvalid(t *testing.T) {
	repo := &mockCommentRepo{}

	_, err := newCommentService(repo).CreateComment(context.Background(), &request.CreateCommentRequest{
		Name:    "Bob",
		Email:   "bob@example.com",
		Rating:  7,
		Comment: "?",
	})
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "rating: Maximum value is 5")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCommentService_CreateRepoError(t *testing.T) {
	repo := &mockCommentRepo{}
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down")).Once()

	_, err := newCommentService(repo).CreateComment(context.Background(), &request.CreateCommentRequest{
		Name: "A", Email: "a@b.co", Rating: 1, Comment: "x",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create comment")
}

func TestCommentService_ListAllWithoutPage(t *testing.T) {
	repo := &mockCommentRepo{}
	repo.On("ListAll", mock.Anything).Return([]*entity.Comment{
		{Name: "A", Rating: 5},
		{Name: "B", Rating: 3},
	}, nil).Once()

	comments, total, err := newCommentService(repo).ListComments(context.Background(), nil)
	require.NoError(t, err)

	assert.Len(t, comments, 2)
	assert.Equal(t, int64(2), total)
	repo.AssertNotCalled(t, "Count", mock.Anything)
}

func TestCommentService_ListPage(t *testing.T) {
	repo := &mockCommentRepo{}
	repo.On("List", mock.Anything, 5, 10).Return([]*entity.Comment{{Name: "C", Rating: 1}}, nil).Once()
	repo.On("Count", mock.Anything).Return(int64(11), nil).Once()

	comments, total, err := newCommentService(repo).ListComments(context.Background(), &request.PaginatedRequest{Page: 3, PerPage: 5})
	require.NoError(t, err)

	assert.Len(t, comments, 1)
	assert.Equal(t, int64(11), total)
	repo.AssertExpectations(t)
}
