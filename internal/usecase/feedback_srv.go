package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"customer-feedback/internal/data/feedbackapi"
	"customer-feedback/internal/dto/request"
	"customer-feedback/pkg/utils"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrSubmissionInFlight = errors.New("submission already in progress")
	ErrSubmitFailed       = errors.New("feedback submission failed")
)

var submissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "feedback_submissions_total",
		Help: "Feedback submission attempts by terminal state",
	},
	[]string{"state"},
)

type SubmissionState string

const (
	StateIdle             SubmissionState = "idle"
	StateValidating       SubmissionState = "validating"
	StateSubmitting       SubmissionState = "submitting"
	StateSucceeded        SubmissionState = "succeeded"
	StateFailedValidation SubmissionState = "failed_validation"
	StateFailed           SubmissionState = "failed"
)

// SubmissionResult describes how one attempt ended
type SubmissionResult struct {
	FormID      string
	State       SubmissionState
	Trace       []SubmissionState
	FieldErrors map[string]string
	Payload     *request.FeedbackPayload
	RedirectTo  string
}

func (r *SubmissionResult) advance(state SubmissionState) {
	r.State = state
	r.Trace = append(r.Trace, state)
}

type FeedbackService interface {
	NewFormID() string
	Submit(ctx context.Context, formID string, form *request.FeedbackForm) (*SubmissionResult, error)
	InFlight(formID string) bool
}

type feedbackService struct {
	api               feedbackapi.Client
	chart             ChartService
	confirmationRoute string
	now               func() time.Time
	inFlight          sync.Map
	log               *zap.Logger
}

func NewFeedbackService(api feedbackapi.Client, chart ChartService, confirmationRoute string, now func() time.Time, log *zap.Logger) FeedbackService {
	if now == nil {
		now = time.Now
	}
	return &feedbackService{
		api:               api,
		chart:             chart,
		confirmationRoute: confirmationRoute,
		now:               now,
		log:               log.With(zap.String("service", "feedback")),
	}
}

func (s *feedbackService) NewFormID() string {
	return uuid.NewString()
}

func (s *feedbackService) InFlight(formID string) bool {
	_, ok := s.inFlight.Load(formID)
	return ok
}

// Submit runs one attempt: validate, stamp datePosted, write once. A form id
// that is already being submitted is rejected without any network call.
func (s *feedbackService) Submit(ctx context.Context, formID string, form *request.FeedbackForm) (*SubmissionResult, error) {
	if formID == "" {
		formID = s.NewFormID()
	}

	result := &SubmissionResult{FormID: formID}
	result.advance(StateIdle)

	if _, busy := s.inFlight.LoadOrStore(formID, struct{}{}); busy {
		s.log.Warn("Duplicate submit ignored", zap.String("form_id", formID))
		result.State = StateSubmitting
		return result, ErrSubmissionInFlight
	}
	defer s.inFlight.Delete(formID)

	result.advance(StateValidating)
	if errs := utils.ValidateStruct(form); len(errs) > 0 {
		result.FieldErrors = errs
		result.advance(StateFailedValidation)
		submissionsTotal.WithLabelValues(string(StateFailedValidation)).Inc()
		s.log.Info("Feedback validation failed",
			zap.String("form_id", formID),
			zap.Any("errors", errs),
		)
		return result, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	result.Payload = request.NewFeedbackPayload(form, s.now())
	result.advance(StateSubmitting)

	// An issued write runs to completion even if the caller goes away
	if err := s.api.CreateComment(context.WithoutCancel(ctx), result.Payload); err != nil {
		result.advance(StateFailed)
		submissionsTotal.WithLabelValues(string(StateFailed)).Inc()
		s.log.Error("Failed to submit feedback",
			zap.Error(err),
			zap.String("form_id", formID),
		)
		return result, fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}

	result.advance(StateSucceeded)
	result.RedirectTo = s.confirmationRoute
	submissionsTotal.WithLabelValues(string(StateSucceeded)).Inc()

	if s.chart != nil {
		s.chart.Invalidate(ctx)
	}

	s.log.Info("Feedback submitted",
		zap.String("form_id", formID),
		zap.String("rating", form.Rating),
		zap.Time("date_posted", result.Payload.DatePosted),
	)

	return result, nil
}
