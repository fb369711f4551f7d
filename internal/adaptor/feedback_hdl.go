package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"customer-feedback/internal/dto/request"
	"customer-feedback/internal/dto/response"
	"customer-feedback/internal/usecase"
	"customer-feedback/internal/view"
	"customer-feedback/pkg/utils"

	"go.uber.org/zap"
)

const (
	FormIDHeader = "X-Form-ID"

	noticeSubmitFailed = "We could not send your feedback. Please try again."
	noticeInFlight     = "Your feedback is already being sent."
)

type FeedbackHandler struct {
	service  usecase.FeedbackService
	renderer *view.Renderer
	log      *zap.Logger
}

func NewFeedbackHandler(service usecase.FeedbackService, renderer *view.Renderer, log *zap.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		service:  service,
		renderer: renderer,
		log:      log.With(zap.String("handler", "feedback")),
	}
}

// ShowForm handles GET /feedback/new
func (h *FeedbackHandler) ShowForm(w http.ResponseWriter, r *http.Request) {
	page := view.NewFormPage(h.service.NewFormID(), request.FeedbackForm{}, nil, "")
	h.render(w, http.StatusOK, page)
}

// SubmitForm handles POST /feedback/new
func (h *FeedbackHandler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		utils.ResponseBadRequest(w, "Invalid form body", nil)
		return
	}

	form := request.FeedbackForm{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Rating:  r.PostFormValue("rating"),
		Comment: r.PostFormValue("comment"),
	}

	result, err := h.service.Submit(r.Context(), r.PostFormValue("form_id"), &form)
	switch {
	case err == nil:
		http.Redirect(w, r, result.RedirectTo, http.StatusSeeOther)

	case errors.Is(err, usecase.ErrValidation):
		h.render(w, http.StatusUnprocessableEntity, view.NewFormPage(result.FormID, form, result.FieldErrors, ""))

	case errors.Is(err, usecase.ErrSubmissionInFlight):
		h.render(w, http.StatusConflict, view.NewFormPage(result.FormID, form, nil, noticeInFlight))

	case errors.Is(err, usecase.ErrSubmitFailed):
		h.render(w, http.StatusBadGateway, view.NewFormPage(result.FormID, form, nil, noticeSubmitFailed))

	default:
		h.log.Error("Failed to submit feedback form", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// SubmitJSON handles POST /api/feedback. Clients must send X-Form-ID and
// reuse it for retries of the same form, so duplicates are detected.
func (h *FeedbackHandler) SubmitJSON(w http.ResponseWriter, r *http.Request) {
	formID := strings.TrimSpace(r.Header.Get(FormIDHeader))
	if formID == "" {
		utils.ResponseBadRequest(w, "X-Form-ID header is required", nil)
		return
	}

	var req request.FeedbackForm
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.Submit(r.Context(), formID, &req)
	switch {
	case err == nil:
		utils.ResponseCreated(w, "success", response.SubmissionResponse{
			RedirectTo: result.RedirectTo,
			DatePosted: result.Payload.DatePosted,
		})

	case errors.Is(err, usecase.ErrValidation):
		utils.ResponseValidationFailed(w, "Validation failed", result.FieldErrors)

	case errors.Is(err, usecase.ErrSubmissionInFlight):
		utils.ResponseConflict(w, noticeInFlight)

	case errors.Is(err, usecase.ErrSubmitFailed):
		utils.ResponseBadGateway(w, noticeSubmitFailed)

	default:
		h.log.Error("Failed to submit feedback", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

func (h *FeedbackHandler) render(w http.ResponseWriter, status int, page view.FormPage) {
	if err := h.renderer.Render(w, status, view.PageForm, page); err != nil {
		h.log.Error("Failed to render feedback form", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
