package adaptor

import (
	"net/http"

	"customer-feedback/internal/dto/response"
	"customer-feedback/internal/usecase"
	"customer-feedback/internal/view"
	"customer-feedback/pkg/utils"

	"go.uber.org/zap"
)

const noticeRatingsUnavailable = "Ratings are unavailable right now."

type ChartHandler struct {
	service  usecase.ChartService
	renderer *view.Renderer
	log      *zap.Logger
}

func NewChartHandler(service usecase.ChartService, renderer *view.Renderer, log *zap.Logger) *ChartHandler {
	return &ChartHandler{
		service:  service,
		renderer: renderer,
		log:      log.With(zap.String("handler", "chart")),
	}
}

// ShowChart handles GET /feedback, the confirmation route
func (h *ChartHandler) ShowChart(w http.ResponseWriter, r *http.Request) {
	notice := ""
	chart, err := h.service.Dataset(r.Context())
	if err != nil {
		h.log.Warn("Showing empty chart", zap.Error(err))
		chart = response.NewRatingsChart(nil)
		notice = noticeRatingsUnavailable
	}

	page, err := view.NewChartPage(chart, notice)
	if err != nil {
		h.log.Error("Failed to build chart page", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	if err := h.renderer.Render(w, http.StatusOK, view.PageChart, page); err != nil {
		h.log.Error("Failed to render chart", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// GetDistribution handles GET /api/ratings/distribution
func (h *ChartHandler) GetDistribution(w http.ResponseWriter, r *http.Request) {
	chart, err := h.service.Dataset(r.Context())
	if err != nil {
		h.log.Error("Failed to get rating distribution", zap.Error(err))
		utils.ResponseBadGateway(w, noticeRatingsUnavailable)
		return
	}

	utils.ResponseSuccess(w, "success", chart)
}
