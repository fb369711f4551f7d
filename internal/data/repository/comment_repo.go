package repository

import (
	"context"
	"fmt"

	"customer-feedback/internal/data/entity"
	"customer-feedback/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const commentsSchema = `
	CREATE TABLE IF NOT EXISTS comments (
		id          UUID PRIMARY KEY,
		name        TEXT NOT NULL,
		email       TEXT NOT NULL,
		rating      INTEGER NOT NULL,
		comment     TEXT NOT NULL,
		date_posted TIMESTAMPTZ NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_comments_date_posted ON comments (date_posted DESC);
`

type CommentRepository interface {
	EnsureSchema(ctx context.Context) error
	Create(ctx context.Context, comment *entity.Comment) error
	List(ctx context.Context, limit, offset int) ([]*entity.Comment, error)
	ListAll(ctx context.Context) ([]*entity.Comment, error)
	Count(ctx context.Context) (int64, error)
}

type commentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCommentRepository(db database.PgxIface, log *zap.Logger) CommentRepository {
	return &commentRepository{
		db:  db,
		log: log.With(zap.String("repository", "comment")),
	}
}

func (r *commentRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, commentsSchema); err != nil {
		r.log.Error("Failed to ensure comments schema", zap.Error(err))
		return fmt.Errorf("ensure comments schema: %w", err)
	}
	return nil
}

func (r *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	query := `
		INSERT INTO comments (id, name, email, rating, comment, date_posted, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		comment.ID,
		comment.Name,
		comment.Email,
		int(comment.Rating),
		comment.Text,
		comment.DatePosted,
		comment.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create comment",
			zap.Error(err),
			zap.String("comment_id", comment.ID.String()),
		)
		return fmt.Errorf("create comment %s: %w", comment.ID.String(), err)
	}

	return nil
}

func (r *commentRepository) List(ctx context.Context, limit, offset int) ([]*entity.Comment, error) {
	query := `
		SELECT id, name, email, rating, comment, date_posted, created_at
		FROM comments
		ORDER BY date_posted DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list comments",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("list comments: %w", err)
	}

	return r.scanComments(rows)
}

func (r *commentRepository) ListAll(ctx context.Context) ([]*entity.Comment, error) {
	query := `
		SELECT id, name, email, rating, comment, date_posted, created_at
		FROM comments
		ORDER BY date_posted DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list all comments", zap.Error(err))
		return nil, fmt.Errorf("list all comments: %w", err)
	}

	return r.scanComments(rows)
}

func (r *commentRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM comments`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count comments", zap.Error(err))
		return 0, fmt.Errorf("count comments: %w", err)
	}

	return count, nil
}

func (r *commentRepository) scanComments(rows pgx.Rows) ([]*entity.Comment, error) {
	defer rows.Close()

	comments := []*entity.Comment{}
	for rows.Next() {
		var comment entity.Comment
		var rating int
		err := rows.Scan(
			&comment.ID,
			&comment.Name,
			&comment.Email,
			&rating,
			&comment.Text,
			&comment.DatePosted,
			&comment.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan comment row", zap.Error(err))
			return nil, fmt.Errorf("scan comment row: %w", err)
		}
		comment.Rating = entity.Rating(rating)
		comments = append(comments, &comment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comment rows: %w", err)
	}

	return comments, nil
}
