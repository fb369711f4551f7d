package repository

import (
	"customer-feedback/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Comment CommentRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Comment: NewCommentRepository(db, log),
	}
}
