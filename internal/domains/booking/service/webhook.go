package service

import (
	"context"

	"ridebook/infras/stripe"
	"ridebook/internal/domains/booking/model/dto"
	"ridebook/shared/constant"

	"github.com/rs/zerolog/log"
)

// HandleGatewayEvent reconciles an already-verified gateway event against the
// booking store. Events the service does not act on are acknowledged without
// error so the gateway stops redelivering them; only store failures propagate,
// which signals the gateway to retry.
func (s *serviceImpl) HandleGatewayEvent(ctx context.Context, event stripe.Event) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".HandleGatewayEvent")
	defer scope.End()
	defer scope.TraceIfError(err)

	if event.Type != stripe.EventPaymentIntentSucceeded {
		log.Info().Str("eventID", event.ID).Str("type", event.Type).Msg("ignoring gateway event")

		return nil
	}

	if event.Intent == nil || event.Intent.ID == constant.Empty {
		log.Warn().Str("eventID", event.ID).Msg("gateway event carries no payment intent, acknowledging")

		return nil
	}

	if event.Intent.Status != stripe.IntentStatusSucceeded {
		log.Warn().
			Str("eventID", event.ID).
			Str("paymentIntentID", event.Intent.ID).
			Str("status", event.Intent.Status).
			Msg("succeeded event carries non-succeeded intent, acknowledging")

		return nil
	}

	booking, created, err := s.ensureBookingForIntent(ctx, event.Intent, dto.BookingDetails{})
	if err != nil {
		return err
	}

	if !created {
		log.Info().
			Str("paymentIntentID", event.Intent.ID).
			Str("bookingID", booking.ID).
			Msg("booking already recorded for intent, event reconciled")

		return nil
	}

	log.Info().
		Str("paymentIntentID", event.Intent.ID).
		Str("bookingID", booking.ID).
		Msg("booking created from gateway event")

	if sent := s.notifyConfirmation(ctx, booking); !sent {
		scope.AddEvent("Confirmation email not sent for booking " + booking.ID)
	}

	s.publishConfirmed(ctx, booking)

	return nil
}
