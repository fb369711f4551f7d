package feedbackapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"customer-feedback/internal/data/entity"
	"customer-feedback/internal/dto/request"
	"customer-feedback/pkg/httpclient"

	"go.uber.org/zap"
)

// maxListBody caps how much of a comment listing is read
const maxListBody = 8 << 20

// Client talks to the endpoint that stores feedback comments
type Client interface {
	CreateComment(ctx context.Context, payload *request.FeedbackPayload) error
	ListComments(ctx context.Context) ([]entity.Comment, error)
}

type client struct {
	writer  httpclient.Doer
	reader  httpclient.Doer
	baseURL string
	log     *zap.Logger
}

// NewClient builds a client for baseURL. writer carries submissions and must
// not retry; reader is used for listings.
func NewClient(baseURL string, writer, reader httpclient.Doer, log *zap.Logger) Client {
	return &client{
		writer:  writer,
		reader:  reader,
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     log.With(zap.String("client", "feedback_api")),
	}
}

func (c *client) CreateComment(ctx context.Context, payload *request.FeedbackPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode feedback payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create feedback request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.writer.Do(ctx, req)
	if err != nil {
		return fmt.Errorf("post feedback: %w", err)
	}
	defer resp.Body.Close()

	if !httpclient.IsSuccess(resp.StatusCode) {
		return fmt.Errorf("post feedback: %w", httpclient.ParseResponseError(resp))
	}

	_, _ = io.Copy(io.Discard, resp.Body)

	c.log.Debug("Feedback posted", zap.Int("status", resp.StatusCode))
	return nil
}

// remoteComment is a comment as the API lists it. ids and dates vary between
// mock backends so both are read loosely.
type remoteComment struct {
	Name       string        `json:"name"`
	Email      string        `json:"email"`
	Rating     entity.Rating `json:"rating"`
	Comment    string        `json:"comment"`
	DatePosted string        `json:"datePosted"`
}

func (rc remoteComment) toEntity() entity.Comment {
	comment := entity.Comment{
		Name:   rc.Name,
		Email:  rc.Email,
		Rating: rc.Rating,
		Text:   rc.Comment,
	}
	if t, err := time.Parse(time.RFC3339Nano, rc.DatePosted); err == nil {
		comment.DatePosted = t
	}
	return comment
}

func (c *client) ListComments(ctx context.Context) ([]entity.Comment, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create list request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.reader.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer resp.Body.Close()

	if !httpclient.IsSuccess(resp.StatusCode) {
		return nil, fmt.Errorf("list comments: %w", httpclient.ParseResponseError(resp))
	}

	var remote []remoteComment
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxListBody)).Decode(&remote); err != nil {
		return nil, fmt.Errorf("decode comments: %w", err)
	}

	comments := make([]entity.Comment, 0, len(remote))
	for _, rc := range remote {
		comments = append(comments, rc.toEntity())
	}

	c.log.Debug("Comments listed", zap.Int("count", len(comments)))
	return comments, nil
}
