package service

import (
	"context"
	"fmt"
	"strings"

	"ridebook/config"
	"ridebook/infras/kafka"
	"ridebook/infras/mail"
	"ridebook/infras/otel"
	"ridebook/infras/stripe"
	"ridebook/internal/domains/booking/model"
	"ridebook/internal/domains/booking/model/dto"
	"ridebook/internal/domains/booking/repository"
	"ridebook/shared/constant"
	"ridebook/shared/failure"
	"ridebook/shared/money"
	"ridebook/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Booking orchestrates the payment-intent lifecycle: intent creation at the
// gateway, confirmation once payment succeeds, and idempotent reconciliation
// of asynchronous gateway events.
type Booking interface {
	CreateIntent(ctx context.Context, req dto.CreateIntentRequest) (dto.CreateIntentResponse, error)
	ConfirmBooking(ctx context.Context, req dto.ConfirmBookingRequest) (dto.ConfirmBookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetAll(ctx context.Context) (dto.GetBookingsResponse, error)
	HandleGatewayEvent(ctx context.Context, event stripe.Event) error
}

type serviceImpl struct {
	repo    repository.Booking
	gateway stripe.Gateway
	mailer  mail.Mailer
	events  kafka.Publisher
	cfg     *config.Config
	otel    otel.Otel
}

func New(repo repository.Booking, gateway stripe.Gateway, mailer mail.Mailer, events kafka.Publisher, cfg *config.Config, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:    repo,
		gateway: gateway,
		mailer:  mailer,
		events:  events,
		cfg:     cfg,
		otel:    otel,
	}
}

// CreateIntent creates a gateway-side payment intent and returns its client
// secret. The booking id generated here travels as gateway metadata only; no
// local record exists until the payment is confirmed.
func (s *serviceImpl) CreateIntent(ctx context.Context, req dto.CreateIntentRequest) (res dto.CreateIntentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateIntent")
	defer scope.End()
	defer scope.TraceIfError(err)

	currency := strings.ToLower(req.Currency)
	if currency == "" {
		currency = s.cfg.App.DefaultCurrency
	}

	bookingID := uuid.NewString()

	intent, err := s.gateway.CreateIntent(ctx, stripe.CreateIntentInput{
		Amount:       money.ToMinorUnits(req.Amount, currency),
		Currency:     currency,
		ReceiptEmail: req.BookingDetails.CustomerEmail,
		Metadata: map[string]string{
			stripe.MetadataKeyBookingID:     bookingID,
			stripe.MetadataKeyCustomerEmail: req.BookingDetails.CustomerEmail,
			stripe.MetadataKeyServiceType:   req.BookingDetails.ServiceType,
			stripe.MetadataKeyDate:          req.BookingDetails.Date,
			stripe.MetadataKeyTime:          req.BookingDetails.Time,
		},
	})
	if err != nil {
		log.Error().Err(err).Str("bookingID", bookingID).Msg("failed to create payment intent")

		return res, failure.PaymentGateway(err) // nolint:wrapcheck
	}

	scope.AddEvent("Payment intent created for booking " + bookingID)

	res.ClientSecret = intent.ClientSecret
	res.BookingID = bookingID

	return res, nil
}

// ConfirmBooking verifies the intent status against the gateway and stores
// the booking. Retried confirmations for the same intent return the existing
// record without duplicating it.
func (s *serviceImpl) ConfirmBooking(ctx context.Context, req dto.ConfirmBookingRequest) (res dto.ConfirmBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ConfirmBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	intent, err := s.gateway.GetIntent(ctx, req.PaymentIntentID)
	if err != nil {
		log.Error().Err(err).Str("paymentIntentID", req.PaymentIntentID).Msg("failed to retrieve payment intent")

		return res, failure.PaymentGateway(err) // nolint:wrapcheck
	}

	booking, created, err := s.ensureBookingForIntent(ctx, intent, req.BookingDetails)
	if err != nil {
		return res, err
	}

	res.Success = true
	res.BookingID = booking.ID
	res.EmailSent = true
	res.Message = "Booking confirmed successfully"

	if !created {
		scope.AddEvent("Booking already confirmed for intent " + intent.ID)
		res.Message = "Booking already confirmed"

		return res, nil
	}

	res.EmailSent = s.notifyConfirmation(ctx, booking)
	if !res.EmailSent {
		res.Message = "Booking confirmed, confirmation email could not be sent"
	}

	s.publishConfirmed(ctx, booking)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookings, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list bookings")

		return res, fmt.Errorf("failed to list bookings: %w", err)
	}

	res.FromModels(bookings)

	return res, nil
}

// ensureBookingForIntent is the single create-or-skip path shared by explicit
// confirmation and webhook reconciliation. The amount stored always comes
// from the gateway's intent record, never from caller input; the booking id
// comes from intent metadata, with a fresh id when the metadata is absent.
func (s *serviceImpl) ensureBookingForIntent(ctx context.Context, intent *stripe.Intent, details dto.BookingDetails) (model.Booking, bool, error) {
	if intent.Status != stripe.IntentStatusSucceeded {
		log.Warn().
			Str("paymentIntentID", intent.ID).
			Str("status", intent.Status).
			Msg("payment intent not succeeded, refusing to confirm")

		return model.Booking{}, false, failure.PaymentNotConfirmed(intent.Status) // nolint:wrapcheck
	}

	bookingID := intent.Metadata[stripe.MetadataKeyBookingID]
	if bookingID == "" {
		bookingID = uuid.NewString()
	}

	customerEmail := intent.Metadata[stripe.MetadataKeyCustomerEmail]
	if customerEmail == "" {
		customerEmail = details.CustomerEmail
	}

	serviceType := intent.Metadata[stripe.MetadataKeyServiceType]
	if serviceType == "" {
		serviceType = details.ServiceType
	}

	booking := model.Booking{
		ID:              bookingID,
		PaymentIntentID: intent.ID,
		Status:          model.StatusConfirmed,
		CustomerEmail:   customerEmail,
		ServiceType:     serviceType,
		Date:            firstNonEmpty(intent.Metadata[stripe.MetadataKeyDate], details.Date),
		Time:            firstNonEmpty(intent.Metadata[stripe.MetadataKeyTime], details.Time),
		Amount:          money.FromMinorUnits(intent.Amount, intent.Currency),
		Currency:        intent.Currency,
		CreatedAt:       timezone.Now(),
	}

	stored, created, err := s.repo.CreateOrGet(ctx, booking)
	if err != nil {
		log.Error().Err(err).Str("paymentIntentID", intent.ID).Msg("failed to store booking")

		return model.Booking{}, false, fmt.Errorf("failed to store booking: %w", err)
	}

	return stored, created, nil
}

// notifyConfirmation sends the confirmation email. Delivery is best-effort:
// the booking stands even when the mail provider is down.
func (s *serviceImpl) notifyConfirmation(ctx context.Context, booking model.Booking) bool {
	msg := mail.Message{
		ToEmail: booking.CustomerEmail,
		Subject: "Your booking is confirmed",
		HTMLBody: fmt.Sprintf(
			"<p>Your booking <strong>%s</strong> for %s on %s at %s is confirmed.</p><p>Amount paid: %.2f %s.</p>",
			booking.ID, booking.ServiceType, booking.Date, booking.Time, booking.Amount, strings.ToUpper(booking.Currency),
		),
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to send confirmation email")

		return false
	}

	return true
}

type bookingConfirmedEvent struct {
	Event           string  `json:"event"`
	BookingID       string  `json:"booking_id"`
	PaymentIntentID string  `json:"payment_intent_id"`
	ServiceType     string  `json:"service_type"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
	OccurredAt      string  `json:"occurred_at"`
}

// publishConfirmed emits a booking.confirmed domain event. Publishing is
// best-effort and never fails the request.
func (s *serviceImpl) publishConfirmed(ctx context.Context, booking model.Booking) {
	event := bookingConfirmedEvent{
		Event:           "booking.confirmed",
		BookingID:       booking.ID,
		PaymentIntentID: booking.PaymentIntentID,
		ServiceType:     booking.ServiceType,
		Amount:          booking.Amount,
		Currency:        booking.Currency,
		OccurredAt:      timezone.Format(booking.CreatedAt, constant.DateFormat),
	}

	err := s.events.Publish(ctx, s.cfg.Kafka.BookingEventsTopic, kafka.Message{
		Key:   booking.PaymentIntentID,
		Value: event,
	})
	if err != nil {
		log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to publish booking.confirmed event")
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}

	return ""
}
