package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"customer-feedback/internal/data/entity"
	"customer-feedback/internal/dto/request"
	"customer-feedback/internal/dto/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestChartService_ComputesAndRemembers(t *testing.T) {
	api := &mockFeedbackAPI{}
	distCache := &mockDistributionCache{}

	api.On("ListComments", mock.Anything).Return(commentsWithRatings(1, 1, 3, 5, 5, 5), nil).Once()
	distCache.On("Set", mock.Anything, []int{2, 0, 1, 0, 3}).Return(nil).Once()

	chart, err := NewChartService(api, distCache, zap.NewNop()).Dataset(context.Background())
	require.NoError(t, err)

	assert.Equal(t, response.RatingLabels, chart.Labels)
	require.Len(t, chart.Datasets, 1)
	assert.Equal(t, response.DistributionLabel, chart.Datasets[0].Label)
	assert.Equal(t, []int{2, 0, 1, 0, 3}, chart.Datasets[0].Data)
	assert.Equal(t, 6, chart.Total)

	api.AssertExpectations(t)
	distCache.AssertExpectations(t)
	distCache.AssertNotCalled(t, "Get", mock.Anything)
}

func TestChartService_CachedValueNeverReplacesFreshListing(t *testing.T) {
	api := &mockFeedbackAPI{}
	distCache := &mockDistributionCache{}

	distCache.On("Get", mock.Anything).Return([]int{9, 9, 9, 9, 9}, true, nil).Maybe()
	distCache.On("Set", mock.Anything, mock.Anything).Return(nil)
	api.On("ListComments", mock.Anything).Return(commentsWithRatings(2), nil).Twice()

	svc := NewChartService(api, distCache, zap.NewNop())
	for i := 0; i < 2; i++ {
		dist, err := svc.Distribution(context.Background())
		require.NoError(t, err)
		assert.Equal(t, RatingDistribution{0, 1, 0, 0, 0}, dist)
	}
	api.AssertNumberOfCalls(t, "ListComments", 2)
}

func TestChartService_ListingFailureFallsBackToLastKnown(t *testing.T) {
	api := &mockFeedbackAPI{}
	distCache := &mockDistributionCache{}

	api.On("ListComments", mock.Anything).Return(nil, errors.New("timeout")).Once()
	distCache.On("Get", mock.Anything).Return([]int{0, 1, 0, 1, 0}, true, nil).Once()

	dist, err := NewChartService(api, distCache, zap.NewNop()).Distribution(context.Background())
	require.NoError(t, err)
	assert.Equal(t, RatingDistribution{0, 1, 0, 1, 0}, dist)
	distCache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
}

func TestChartService_ListingFailureWithoutUsableFallback(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		ok     bool
		err    error
	}{
		{name: "nothing cached"},
		{name: "wrong length", values: []int{1, 2}, ok: true},
		{name: "cache down", err: errors.New("redis down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &mockFeedbackAPI{}
			distCache := &mockDistributionCache{}
			if tt.values == nil {
				distCache.On("Get", mock.Anything).Return(nil, tt.ok, tt.err)
			} else {
				distCache.On("Get", mock.Anything).Return(tt.values, tt.ok, tt.err)
			}
			api.On("ListComments", mock.Anything).Return(nil, errors.New("timeout")).Once()

			_, err := NewChartService(api, distCache, zap.NewNop()).Dataset(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), "fetch comments")
		})
	}
}

// memoryFeedbackAPI stores comments in memory. When hold is set, the first
// listing takes its snapshot, signals snapshotTaken and waits on hold.
type memoryFeedbackAPI struct {
	mu            sync.Mutex
	comments      []entity.Comment
	hold          chan struct{}
	snapshotTaken chan struct{}
	held          sync.Once
}

func (a *memoryFeedbackAPI) CreateComment(_ context.Context, payload *request.FeedbackPayload) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.comments = append(a.comments, entity.Comment{
		Name:       payload.Name,
		Email:      payload.Email,
		Rating:     entity.ParseRating(payload.Rating),
		Text:       payload.Comment,
		DatePosted: payload.DatePosted,
	})
	return nil
}

func (a *memoryFeedbackAPI) ListComments(context.Context) ([]entity.Comment, error) {
	a.mu.Lock()
	snapshot := append([]entity.Comment(nil), a.comments...)
	a.mu.Unlock()

	if a.hold != nil {
		a.held.Do(func() {
			close(a.snapshotTaken)
			<-a.hold
		})
	}
	return snapshot, nil
}

// memoryDistributionCache keeps the last stored distribution in memory
type memoryDistributionCache struct {
	mu     sync.Mutex
	values []int
}

func (c *memoryDistributionCache) Get(context.Context) ([]int, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.values == nil {
		return nil, false, nil
	}
	return append([]int(nil), c.values...), true, nil
}

func (c *memoryDistributionCache) Set(_ context.Context, counts []int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values = append([]int(nil), counts...)
	return nil
}

func (c *memoryDistributionCache) Invalidate(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values = nil
	return nil
}

func TestChartService_SubmissionDuringSlowRenderShowsOnNextRender(t *testing.T) {
	api := &memoryFeedbackAPI{
		hold:          make(chan struct{}),
		snapshotTaken: make(chan struct{}),
	}
	distCache := &memoryDistributionCache{}

	chart := NewChartService(api, distCache, zap.NewNop())
	feedback := NewFeedbackService(api, chart, "/feedback", func() time.Time { return fixedNow }, zap.NewNop())

	var wg sync.WaitGroup
	var staleDist RatingDistribution
	wg.Add(1)
	go func() {
		defer wg.Done()
		staleDist, _ = chart.Distribution(context.Background())
	}()

	<-api.snapshotTaken

	result, err := feedback.Submit(context.Background(), "form-race", validForm())
	require.NoError(t, err)
	assert.Equal(t, "/feedback", result.RedirectTo)

	close(api.hold)
	wg.Wait()

	// the slow render finished after the submission and stored its older snapshot
	assert.Equal(t, RatingDistribution{}, staleDist)
	cached, ok, _ := distCache.Get(context.Background())
	require.True(t, ok)
	assert.Equal(t, []int{0, 0, 0, 0, 0}, cached)

	dist, err := chart.Distribution(context.Background())
	require.NoError(t, err)
	assert.Equal(t, RatingDistribution{0, 0, 0, 1, 0}, dist)
}
