package webhook_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"ridebook/config"
	kafkaMocks "ridebook/infras/kafka/mocks"
	mailMocks "ridebook/infras/mail/mocks"
	"ridebook/infras/otel/mocks"
	"ridebook/infras/stripe"
	stripeMocks "ridebook/infras/stripe/mocks"
	"ridebook/internal/domains/booking/repository"
	"ridebook/internal/domains/booking/service"
	"ridebook/internal/handlers/webhook"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.DefaultCurrency = "usd"
	cfg.Kafka.BookingEventsTopic = "booking.events"

	return cfg
}

func setupRouter(t *testing.T, gateway *stripeMocks.MockGateway, mailer *mailMocks.MockMailer, events *kafkaMocks.MockPublisher) chi.Router {
	t.Helper()

	mockOtel := mocks.NewOtel()
	repo := repository.NewMemory(mockOtel)
	svc := service.New(repo, gateway, mailer, events, testConfig(), mockOtel)
	handler := webhook.New(svc, gateway, mockOtel)

	router := chi.NewRouter()
	handler.Router(router)

	return router
}

func TestWebhookHandler_HandleEvent(t *testing.T) {
	succeededIntent := &stripe.Intent{
		ID:       "pi_123",
		Status:   stripe.IntentStatusSucceeded,
		Amount:   5000,
		Currency: "usd",
		Metadata: map[string]string{
			stripe.MetadataKeyBookingID:     "booking-1",
			stripe.MetadataKeyCustomerEmail: "rider@example.com",
			stripe.MetadataKeyServiceType:   "airport-transfer",
		},
	}

	t.Run("invalid signature is rejected before any processing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockGateway := stripeMocks.NewMockGateway(ctrl)
		mockMailer := mailMocks.NewMockMailer(ctrl)
		mockEvents := kafkaMocks.NewMockPublisher(ctrl)

		mockGateway.EXPECT().
			VerifyEvent(gomock.Any(), "bad-signature").
			Return(stripe.Event{}, errors.New("no signatures found matching the expected signature"))

		router := setupRouter(t, mockGateway, mockMailer, mockEvents)

		request := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(`{"type":"payment_intent.succeeded"}`))
		request.Header.Set("Stripe-Signature", "bad-signature")
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "signature verification failed")
	})

	t.Run("verified succeeded event is acknowledged and booking stored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockGateway := stripeMocks.NewMockGateway(ctrl)
		mockMailer := mailMocks.NewMockMailer(ctrl)
		mockEvents := kafkaMocks.NewMockPublisher(ctrl)

		mockGateway.EXPECT().
			VerifyEvent(gomock.Any(), "valid-signature").
			Return(stripe.Event{ID: "evt_1", Type: stripe.EventPaymentIntentSucceeded, Intent: succeededIntent}, nil)

		mockMailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
		mockEvents.EXPECT().Publish(gomock.Any(), "booking.events", gomock.Any()).Return(nil)

		router := setupRouter(t, mockGateway, mockMailer, mockEvents)

		request := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(`{}`))
		request.Header.Set("Stripe-Signature", "valid-signature")
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"received": true}`, recorder.Body.String())
	})

	t.Run("unhandled event type is acknowledged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockGateway := stripeMocks.NewMockGateway(ctrl)
		mockMailer := mailMocks.NewMockMailer(ctrl)
		mockEvents := kafkaMocks.NewMockPublisher(ctrl)

		mockGateway.EXPECT().
			VerifyEvent(gomock.Any(), "valid-signature").
			Return(stripe.Event{ID: "evt_2", Type: "charge.refunded"}, nil)

		router := setupRouter(t, mockGateway, mockMailer, mockEvents)

		request := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(`{}`))
		request.Header.Set("Stripe-Signature", "valid-signature")
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"received": true}`, recorder.Body.String())
	})

	t.Run("redelivered event is acknowledged without duplicating the booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockGateway := stripeMocks.NewMockGateway(ctrl)
		mockMailer := mailMocks.NewMockMailer(ctrl)
		mockEvents := kafkaMocks.NewMockPublisher(ctrl)

		mockGateway.EXPECT().
			VerifyEvent(gomock.Any(), "valid-signature").
			Return(stripe.Event{ID: "evt_1", Type: stripe.EventPaymentIntentSucceeded, Intent: succeededIntent}, nil).
			Times(2)

		// Side effects fire only for the first delivery.
		mockMailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
		mockEvents.EXPECT().Publish(gomock.Any(), "booking.events", gomock.Any()).Return(nil)

		router := setupRouter(t, mockGateway, mockMailer, mockEvents)

		for i := 0; i < 2; i++ {
			request := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(`{}`))
			request.Header.Set("Stripe-Signature", "valid-signature")
			recorder := httptest.NewRecorder()

			router.ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusOK, recorder.Code)
		}
	})
}
