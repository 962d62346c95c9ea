package repository

import (
	"context"
	"fmt"

	"ridebook/infras/otel"
	"ridebook/infras/postgres"
	"ridebook/internal/domains/contact/model"
	"ridebook/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	insertContactQuery = `
		INSERT INTO contact_submissions (id, name, email, subject, message, created_at)
		VALUES (:id, :name, :email, :subject, :message, :created_at)`

	selectContactQuery = `
		SELECT id, name, email, subject, message, created_at
		FROM contact_submissions
		ORDER BY created_at ASC, id ASC`
)

type postgresImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func NewPostgres(db *postgres.Connection, otel otel.Otel) Contact {
	return &postgresImpl{
		db:   db,
		otel: otel,
	}
}

func (r *postgresImpl) Insert(ctx context.Context, submission model.ContactSubmission) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Insert")
	defer scope.End()
	defer scope.TraceIfError(err)

	_, err = r.db.DB.NamedExecContext(ctx, insertContactQuery, submission)
	if err != nil {
		log.Error().Err(err).Msg("failed to insert contact submission")

		return fmt.Errorf("failed to insert contact submission: %w", err)
	}

	return nil
}

func (r *postgresImpl) GetAll(ctx context.Context) (res []model.ContactSubmission, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = r.db.DB.SelectContext(ctx, &res, selectContactQuery)
	if err != nil {
		log.Error().Err(err).Msg("failed to list contact submissions")

		return nil, fmt.Errorf("failed to list contact submissions: %w", err)
	}

	return res, nil
}
