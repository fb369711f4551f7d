// internal/wire/wire.go
package wire

import (
	"fmt"
	"net/http"

	"customer-feedback/internal/adaptor"
	"customer-feedback/internal/data/cache"
	"customer-feedback/internal/data/feedbackapi"
	"customer-feedback/internal/data/repository"
	"customer-feedback/internal/usecase"
	"customer-feedback/internal/view"
	"customer-feedback/pkg/httpclient"
	"customer-feedback/pkg/middleware"
	"customer-feedback/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App holds the wired router and the pieces tests want to reach
type App struct {
	Router   *chi.Mux
	Service  *usecase.Service
	Renderer *view.Renderer
}

// Wiring builds every dependency. repo may be nil when the mock API is off;
// distCache may be nil when no redis is configured.
func Wiring(repo *repository.Repository, distCache cache.DistributionCache, config *utils.Config, logger *zap.Logger) (*App, error) {
	api := newFeedbackAPI(config.Feedback, logger)

	service := usecase.NewService(repo, api, distCache, config, logger)

	renderer, err := view.NewRenderer(logger)
	if err != nil {
		return nil, fmt.Errorf("init renderer: %w", err)
	}

	handler := adaptor.NewHandler(service, renderer, logger)

	return &App{
		Router:   setupRouter(handler, logger),
		Service:  service,
		Renderer: renderer,
	}, nil
}

// newFeedbackAPI pairs a non-retrying, breaker-guarded writer for submissions
// with a retrying reader for chart data
func newFeedbackAPI(config utils.FeedbackConfig, logger *zap.Logger) feedbackapi.Client {
	writerCfg := httpclient.DefaultConfig()
	writerCfg.Timeout = config.ClientTimeout
	writer := httpclient.NewCircuitBreakerClient(
		httpclient.New(writerCfg),
		httpclient.DefaultCircuitBreakerConfig("feedback_api"),
		logger,
	)

	readerCfg := writerCfg
	readerCfg.MaxRetries = 2
	reader := httpclient.New(readerCfg)

	return feedbackapi.NewClient(config.APIURL, writer, reader, logger)
}

func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.Metrics())

	// Apply routes
	wireFeedback(r, handler.Feedback, handler.Chart)
	wireComment(r, handler.Comment)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Page not found")
	})

	return r
}
