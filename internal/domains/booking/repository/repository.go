package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"ridebook/config"
	"ridebook/infras/otel"
	"ridebook/infras/postgres"
	"ridebook/internal/domains/booking/model"
)

// Booking is the store for confirmed bookings. CreateOrGet is the only write
// path: it atomically stores the booking keyed by its payment intent id, or
// returns the record already stored for that intent. There is no update or
// delete in this domain.
type Booking interface {
	CreateOrGet(ctx context.Context, booking model.Booking) (model.Booking, bool, error)
	Get(ctx context.Context, id string) (model.Booking, error)
	GetByPaymentIntentID(ctx context.Context, paymentIntentID string) (model.Booking, error)
	GetAll(ctx context.Context) ([]model.Booking, error)
}

// New returns the Postgres-backed store when a database connection is
// configured, and the in-memory store otherwise.
func New(cfg *config.Config, db *postgres.Connection, otel otel.Otel) Booking {
	if db != nil {
		return NewPostgres(db, otel)
	}

	return NewMemory(otel)
}
