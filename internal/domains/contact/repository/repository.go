package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"ridebook/config"
	"ridebook/infras/otel"
	"ridebook/infras/postgres"
	"ridebook/internal/domains/contact/model"
)

// Contact stores contact form submissions. Submissions are append-only.
type Contact interface {
	Insert(ctx context.Context, submission model.ContactSubmission) error
	GetAll(ctx context.Context) ([]model.ContactSubmission, error)
}

// New returns the Postgres-backed store when a database connection is
// configured, and the in-memory store otherwise.
func New(cfg *config.Config, db *postgres.Connection, otel otel.Otel) Contact {
	if db != nil {
		return NewPostgres(db, otel)
	}

	return NewMemory(otel)
}
