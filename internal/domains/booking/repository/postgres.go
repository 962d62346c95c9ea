package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ridebook/infras/otel"
	"ridebook/infras/postgres"
	"ridebook/internal/domains/booking/model"
	"ridebook/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	insertBookingQuery = `
		INSERT INTO bookings (id, payment_intent_id, status, customer_email, service_type, service_date, service_time, amount, currency, created_at)
		VALUES (:id, :payment_intent_id, :status, :customer_email, :service_type, :service_date, :service_time, :amount, :currency, :created_at)
		ON CONFLICT (payment_intent_id) DO NOTHING`

	selectBookingColumns = `
		SELECT id, payment_intent_id, status, customer_email, service_type, service_date, service_time, amount, currency, created_at
		FROM bookings`
)

type postgresImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func NewPostgres(db *postgres.Connection, otel otel.Otel) Booking {
	return &postgresImpl{
		db:   db,
		otel: otel,
	}
}

// CreateOrGet relies on the unique index on payment_intent_id: the insert is
// a no-op when a row for the intent already exists, and the subsequent read
// returns whichever row won.
func (r *postgresImpl) CreateOrGet(ctx context.Context, booking model.Booking) (res model.Booking, created bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".CreateOrGet")
	defer scope.End()
	defer scope.TraceIfError(err)

	result, err := r.db.DB.NamedExecContext(ctx, insertBookingQuery, booking)
	if err != nil {
		log.Error().Err(err).Msg("failed to insert booking")

		return model.Booking{}, false, fmt.Errorf("failed to insert booking: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return model.Booking{}, false, fmt.Errorf("failed to read insert result: %w", err)
	}

	stored, err := r.GetByPaymentIntentID(ctx, booking.PaymentIntentID)
	if err != nil {
		return model.Booking{}, false, err
	}

	return stored, rows == 1, nil
}

func (r *postgresImpl) Get(ctx context.Context, id string) (res model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = r.db.DB.GetContext(ctx, &res, selectBookingColumns+` WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Booking{}, nil
	}

	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get booking")

		return model.Booking{}, fmt.Errorf("failed to get booking: %w", err)
	}

	return res, nil
}

func (r *postgresImpl) GetByPaymentIntentID(ctx context.Context, paymentIntentID string) (res model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetByPaymentIntentID")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = r.db.DB.GetContext(ctx, &res, selectBookingColumns+` WHERE payment_intent_id = $1`, paymentIntentID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Booking{}, nil
	}

	if err != nil {
		log.Error().Err(err).Str("paymentIntentID", paymentIntentID).Msg("failed to get booking by payment intent")

		return model.Booking{}, fmt.Errorf("failed to get booking by payment intent: %w", err)
	}

	return res, nil
}

func (r *postgresImpl) GetAll(ctx context.Context) (res []model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = r.db.DB.SelectContext(ctx, &res, selectBookingColumns+` ORDER BY created_at ASC, id ASC`)
	if err != nil {
		log.Error().Err(err).Msg("failed to list bookings")

		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	return res, nil
}
