package usecase

import (
	"context"
	"fmt"

	"customer-feedback/internal/data/cache"
	"customer-feedback/internal/data/feedbackapi"
	"customer-feedback/internal/dto/response"

	"go.uber.org/zap"
)

type ChartService interface {
	Distribution(ctx context.Context) (RatingDistribution, error)
	Dataset(ctx context.Context) (*response.ChartData, error)
	Invalidate(ctx context.Context)
}

type chartService struct {
	api   feedbackapi.Client
	cache cache.DistributionCache
	log   *zap.Logger
}

func NewChartService(api feedbackapi.Client, distCache cache.DistributionCache, log *zap.Logger) ChartService {
	if distCache == nil {
		distCache = cache.NoopDistributionCache{}
	}
	return &chartService{
		api:   api,
		cache: distCache,
		log:   log.With(zap.String("service", "chart")),
	}
}

// Distribution always recomputes from a fresh comment listing. The cache
// only holds the last good result, served when the listing fails.
func (s *chartService) Distribution(ctx context.Context) (RatingDistribution, error) {
	comments, err := s.api.ListComments(ctx)
	if err != nil {
		s.log.Error("Failed to fetch comments", zap.Error(err))
		if dist, ok := s.lastKnown(ctx); ok {
			s.log.Warn("Serving last known distribution")
			return dist, nil
		}
		return RatingDistribution{}, fmt.Errorf("fetch comments: %w", err)
	}

	dist := CalculateDistribution(comments)

	if err := s.cache.Set(ctx, dist.Values()); err != nil {
		s.log.Warn("Distribution cache write failed", zap.Error(err))
	}

	s.log.Debug("Distribution computed",
		zap.Int("comments", len(comments)),
		zap.Int("rated", dist.Total()),
	)

	return dist, nil
}

func (s *chartService) lastKnown(ctx context.Context) (RatingDistribution, bool) {
	values, ok, err := s.cache.Get(ctx)
	if err != nil {
		s.log.Warn("Distribution cache read failed", zap.Error(err))
		return RatingDistribution{}, false
	}
	if !ok {
		return RatingDistribution{}, false
	}
	return distributionFromValues(values)
}

func (s *chartService) Dataset(ctx context.Context) (*response.ChartData, error) {
	dist, err := s.Distribution(ctx)
	if err != nil {
		return nil, err
	}
	return response.NewRatingsChart(dist.Values()), nil
}

func (s *chartService) Invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn("Distribution cache invalidation failed", zap.Error(err))
	}
}
