package stripe

//go:generate go run go.uber.org/mock/mockgen -source=./stripe.go -destination=./mocks/stripe_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"

	"ridebook/config"

	"github.com/rs/zerolog/log"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

const (
	IntentStatusSucceeded = "succeeded"

	EventPaymentIntentSucceeded = "payment_intent.succeeded"

	MetadataKeyBookingID     = "booking_id"
	MetadataKeyCustomerEmail = "customer_email"
	MetadataKeyServiceType   = "service_type"
	MetadataKeyDate          = "date"
	MetadataKeyTime          = "time"
)

// Intent is the gateway-side payment intent projection the workflow works
// with. Amount is in minor currency units.
type Intent struct {
	ID           string
	ClientSecret string
	Status       string
	Amount       int64
	Currency     string
	Metadata     map[string]string
}

// Event is a verified gateway lifecycle event. Intent is populated for
// payment_intent.* events and nil otherwise.
type Event struct {
	ID     string
	Type   string
	Intent *Intent
}

type CreateIntentInput struct {
	Amount       int64
	Currency     string
	ReceiptEmail string
	Metadata     map[string]string
}

type Gateway interface {
	CreateIntent(ctx context.Context, input CreateIntentInput) (*Intent, error)
	GetIntent(ctx context.Context, id string) (*Intent, error)
	VerifyEvent(payload []byte, signature string) (Event, error)
}

type gatewayImpl struct {
	api           *client.API
	webhookSecret string
}

func New(cfg *config.Config) Gateway {
	api := &client.API{}
	api.Init(cfg.Stripe.SecretKey, nil)

	return &gatewayImpl{
		api:           api,
		webhookSecret: cfg.Stripe.WebhookSecret,
	}
}

func (g *gatewayImpl) CreateIntent(ctx context.Context, input CreateIntentInput) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Params: stripe.Params{
			Context: ctx,
		},
		Amount:   stripe.Int64(input.Amount),
		Currency: stripe.String(input.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}

	if input.ReceiptEmail != "" {
		params.ReceiptEmail = stripe.String(input.ReceiptEmail)
	}

	for key, value := range input.Metadata {
		params.AddMetadata(key, value)
	}

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		log.Error().Err(err).Msg("failed to create payment intent")

		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return fromPaymentIntent(intent), nil
}

func (g *gatewayImpl) GetIntent(ctx context.Context, id string) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Params: stripe.Params{
			Context: ctx,
		},
	}

	intent, err := g.api.PaymentIntents.Get(id, params)
	if err != nil {
		log.Error().Err(err).Str("paymentIntentID", id).Msg("failed to retrieve payment intent")

		return nil, fmt.Errorf("failed to retrieve payment intent: %w", err)
	}

	return fromPaymentIntent(intent), nil
}

// VerifyEvent checks the webhook signature against the raw payload before any
// of it is parsed. The payload is only unmarshalled once verification passes.
func (g *gatewayImpl) VerifyEvent(payload []byte, signature string) (Event, error) {
	stripeEvent, err := webhook.ConstructEvent(payload, signature, g.webhookSecret)
	if err != nil {
		return Event{}, fmt.Errorf("failed to verify webhook signature: %w", err)
	}

	event := Event{
		ID:   stripeEvent.ID,
		Type: string(stripeEvent.Type),
	}

	var intent stripe.PaymentIntent
	if err := json.Unmarshal(stripeEvent.Data.Raw, &intent); err == nil && intent.ID != "" {
		event.Intent = fromPaymentIntent(&intent)
	}

	return event, nil
}

func fromPaymentIntent(intent *stripe.PaymentIntent) *Intent {
	return &Intent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		Status:       string(intent.Status),
		Amount:       intent.Amount,
		Currency:     string(intent.Currency),
		Metadata:     intent.Metadata,
	}
}
