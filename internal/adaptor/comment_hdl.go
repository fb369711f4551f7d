package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"customer-feedback/internal/dto/request"
	"customer-feedback/internal/usecase"
	"customer-feedback/pkg/utils"

	"go.uber.org/zap"
)

// TotalCountHeader carries the unpaginated comment count, as json-server does
const TotalCountHeader = "X-Total-Count"

// CommentHandler serves the built-in mock feedback API. Bodies are bare JSON
// so the form and chart can talk to it or to json-server interchangeably.
type CommentHandler struct {
	service usecase.CommentService
	log     *zap.Logger
}

func NewCommentHandler(service usecase.CommentService, log *zap.Logger) *CommentHandler {
	return &CommentHandler{
		service: service,
		log:     log.With(zap.String("handler", "comment")),
	}
}

// CreateComment handles POST /api/comments
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	comment, err := h.service.CreateComment(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrValidation) {
			utils.ResponseBadRequest(w, err.Error(), nil)
			return
		}
		h.log.Error("Failed to create comment", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, comment)
}

// ListComments handles GET /api/comments[?_page=&_limit=]
func (h *CommentHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	var page *request.PaginatedRequest

	query := r.URL.Query()
	if query.Has("_page") || query.Has("_limit") {
		page = &request.PaginatedRequest{
			Page:    utils.ParseInt(query.Get("_page"), 1),
			PerPage: utils.ParseInt(query.Get("_limit"), 10),
		}
	}

	comments, total, err := h.service.ListComments(r.Context(), page)
	if err != nil {
		h.log.Error("Failed to list comments", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	w.Header().Set(TotalCountHeader, strconv.FormatInt(total, 10))
	writeJSON(w, http.StatusOK, comments)
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}
