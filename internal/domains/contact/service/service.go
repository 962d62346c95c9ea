package service

import (
	"context"
	"fmt"
	"html"

	"ridebook/config"
	"ridebook/infras/mail"
	"ridebook/infras/otel"
	"ridebook/internal/domains/contact/model"
	"ridebook/internal/domains/contact/model/dto"
	"ridebook/internal/domains/contact/repository"
	"ridebook/shared/constant"
	"ridebook/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Contact handles contact form intake. Submissions are stored first; the
// forwarding email to the operator inbox is best-effort.
type Contact interface {
	Submit(ctx context.Context, req dto.SubmitContactRequest) (dto.SubmitContactResponse, error)
	GetAll(ctx context.Context) (dto.GetContactsResponse, error)
}

type serviceImpl struct {
	repo   repository.Contact
	mailer mail.Mailer
	cfg    *config.Config
	otel   otel.Otel
}

func New(repo repository.Contact, mailer mail.Mailer, cfg *config.Config, otel otel.Otel) Contact {
	return &serviceImpl{
		repo:   repo,
		mailer: mailer,
		cfg:    cfg,
		otel:   otel,
	}
}

func (s *serviceImpl) Submit(ctx context.Context, req dto.SubmitContactRequest) (res dto.SubmitContactResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	subject := req.Subject
	if subject == constant.Empty {
		subject = constant.DefaultContactSubject
	}

	submission := model.ContactSubmission{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Subject:   subject,
		Message:   req.Message,
		CreatedAt: timezone.Now(),
	}

	err = s.repo.Insert(ctx, submission)
	if err != nil {
		log.Error().Err(err).Msg("failed to store contact submission")

		return res, fmt.Errorf("failed to store contact submission: %w", err)
	}

	s.forwardToInbox(ctx, submission)

	res.Success = true
	res.Message = "Message received"

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetContactsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	submissions, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list contact submissions")

		return res, fmt.Errorf("failed to list contact submissions: %w", err)
	}

	res.FromModels(submissions)

	return res, nil
}

// forwardToInbox relays the submission to the configured operator inbox. A
// missing inbox or a mail failure never fails the submission.
func (s *serviceImpl) forwardToInbox(ctx context.Context, submission model.ContactSubmission) {
	if s.cfg.Mail.ContactInbox == constant.Empty {
		return
	}

	msg := mail.Message{
		ToEmail: s.cfg.Mail.ContactInbox,
		Subject: submission.Subject,
		HTMLBody: fmt.Sprintf(
			"<p>From: %s &lt;%s&gt;</p><p>%s</p>",
			html.EscapeString(submission.Name),
			html.EscapeString(submission.Email),
			html.EscapeString(submission.Message),
		),
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		log.Error().Err(err).Str("submissionID", submission.ID).Msg("failed to forward contact submission")
	}
}
