package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"ridebook/config"
	kafkaMocks "ridebook/infras/kafka/mocks"
	mailMocks "ridebook/infras/mail/mocks"
	"ridebook/infras/otel/mocks"
	"ridebook/infras/stripe"
	stripeMocks "ridebook/infras/stripe/mocks"
	bookingMocks "ridebook/internal/domains/booking/mocks"
	"ridebook/internal/domains/booking/model"
	"ridebook/internal/domains/booking/model/dto"
	"ridebook/internal/domains/booking/service"
	"ridebook/shared/failure"
	"ridebook/shared/timezone"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.DefaultCurrency = "usd"
	cfg.Kafka.BookingEventsTopic = "booking.events"

	return cfg
}

func TestBookingService_CreateIntent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockGateway := stripeMocks.NewMockGateway(ctrl)
	mockMailer := mailMocks.NewMockMailer(ctrl)
	mockEvents := kafkaMocks.NewMockPublisher(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockGateway, mockMailer, mockEvents, testConfig(), mockOtel)

	tests := []struct {
		name      string
		req       dto.CreateIntentRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful intent creation",
			req: dto.CreateIntentRequest{
				Amount:   50,
				Currency: "USD",
				BookingDetails: dto.BookingDetails{
					CustomerEmail: "rider@example.com",
					ServiceType:   "airport-transfer",
					Date:          "2026-09-01",
					Time:          "14:00",
				},
			},
			setupMock: func() {
				mockGateway.EXPECT().
					CreateIntent(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, input stripe.CreateIntentInput) (*stripe.Intent, error) {
						assert.Equal(t, int64(5000), input.Amount)
						assert.Equal(t, "usd", input.Currency)
						assert.NotEmpty(t, input.Metadata[stripe.MetadataKeyBookingID])

						return &stripe.Intent{
							ID:           "pi_123",
							ClientSecret: "pi_123_secret",
							Status:       "requires_payment_method",
						}, nil
					})
			},
			wantErr: false,
		},
		{
			name: "default currency applied when omitted",
			req: dto.CreateIntentRequest{
				Amount: 10,
				BookingDetails: dto.BookingDetails{
					CustomerEmail: "rider@example.com",
					ServiceType:   "city-ride",
				},
			},
			setupMock: func() {
				mockGateway.EXPECT().
					CreateIntent(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, input stripe.CreateIntentInput) (*stripe.Intent, error) {
						assert.Equal(t, "usd", input.Currency)

						return &stripe.Intent{ID: "pi_456", ClientSecret: "pi_456_secret"}, nil
					})
			},
			wantErr: false,
		},
		{
			name: "gateway error",
			req: dto.CreateIntentRequest{
				Amount: 50,
				BookingDetails: dto.BookingDetails{
					CustomerEmail: "rider@example.com",
					ServiceType:   "airport-transfer",
				},
			},
			setupMock: func() {
				mockGateway.EXPECT().
					CreateIntent(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("stripe unavailable"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.CreateIntent(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, result.ClientSecret)
				assert.NotEmpty(t, result.BookingID)
			}
		})
	}
}

func TestBookingService_ConfirmBooking(t *testing.T) {
	succeededIntent := &stripe.Intent{
		ID:       "pi_123",
		Status:   stripe.IntentStatusSucceeded,
		Amount:   5000,
		Currency: "usd",
		Metadata: map[string]string{
			stripe.MetadataKeyBookingID:     "booking-1",
			stripe.MetadataKeyCustomerEmail: "rider@example.com",
			stripe.MetadataKeyServiceType:   "airport-transfer",
			stripe.MetadataKeyDate:          "2026-09-01",
			stripe.MetadataKeyTime:          "14:00",
		},
	}

	tests := []struct {
		name          string
		req           dto.ConfirmBookingRequest
		setupMock     func(g *stripeMocks.MockGateway, r *bookingMocks.MockBooking, m *mailMocks.MockMailer, e *kafkaMocks.MockPublisher)
		wantErr       bool
		wantCode      int
		wantEmailSent bool
		wantBookingID string
	}{
		{
			name: "successful confirmation",
			req:  dto.ConfirmBookingRequest{PaymentIntentID: "pi_123"},
			setupMock: func(g *stripeMocks.MockGateway, r *bookingMocks.MockBooking, m *mailMocks.MockMailer, e *kafkaMocks.MockPublisher) {
				g.EXPECT().GetIntent(gomock.Any(), "pi_123").Return(succeededIntent, nil)

				r.EXPECT().
					CreateOrGet(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking) (model.Booking, bool, error) {
						assert.Equal(t, "booking-1", booking.ID)
						assert.Equal(t, model.StatusConfirmed, booking.Status)
						assert.Equal(t, float64(50), booking.Amount)

						return booking, true, nil
					})

				m.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
				e.EXPECT().Publish(gomock.Any(), "booking.events", gomock.Any()).Return(nil)
			},
			wantEmailSent: true,
			wantBookingID: "booking-1",
		},
		{
			name: "stored amount comes from the gateway, not the client",
			req: dto.ConfirmBookingRequest{
				PaymentIntentID: "pi_123",
				BookingDetails:  dto.BookingDetails{Amount: 1},
			},
			setupMock: func(g *stripeMocks.MockGateway, r *bookingMocks.MockBooking, m *mailMocks.MockMailer, e *kafkaMocks.MockPublisher) {
				g.EXPECT().GetIntent(gomock.Any(), "pi_123").Return(succeededIntent, nil)

				r.EXPECT().
					CreateOrGet(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking) (model.Booking, bool, error) {
						assert.Equal(t, float64(50), booking.Amount)

						return booking, true, nil
					})

				m.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
				e.EXPECT().Publish(gomock.Any(), "booking.events", gomock.Any()).Return(nil)
			},
			wantEmailSent: true,
			wantBookingID: "booking-1",
		},
		{
			name: "repeated confirmation returns existing booking without side effects",
			req:  dto.ConfirmBookingRequest{PaymentIntentID: "pi_123"},
			setupMock: func(g *stripeMocks.MockGateway, r *bookingMocks.MockBooking, m *mailMocks.MockMailer, e *kafkaMocks.MockPublisher) {
				g.EXPECT().GetIntent(gomock.Any(), "pi_123").Return(succeededIntent, nil)

				r.EXPECT().
					CreateOrGet(gomock.Any(), gomock.Any()).
					Return(model.Booking{ID: "booking-1", PaymentIntentID: "pi_123", Status: model.StatusConfirmed}, false, nil)
			},
			wantEmailSent: true,
			wantBookingID: "booking-1",
		},
		{
			name: "payment not succeeded",
			req:  dto.ConfirmBookingRequest{PaymentIntentID: "pi_123"},
			setupMock: func(g *stripeMocks.MockGateway, r *bookingMocks.MockBooking, m *mailMocks.MockMailer, e *kafkaMocks.MockPublisher) {
				g.EXPECT().
					GetIntent(gomock.Any(), "pi_123").
					Return(&stripe.Intent{ID: "pi_123", Status: "requires_payment_method"}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "gateway lookup error",
			req:  dto.ConfirmBookingRequest{PaymentIntentID: "pi_123"},
			setupMock: func(g *stripeMocks.MockGateway, r *bookingMocks.MockBooking, m *mailMocks.MockMailer, e *kafkaMocks.MockPublisher) {
				g.EXPECT().GetIntent(gomock.Any(), "pi_123").Return(nil, errors.New("stripe unavailable"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "store error",
			req:  dto.ConfirmBookingRequest{PaymentIntentID: "pi_123"},
			setupMock: func(g *stripeMocks.MockGateway, r *bookingMocks.MockBooking, m *mailMocks.MockMailer, e *kafkaMocks.MockPublisher) {
				g.EXPECT().GetIntent(gomock.Any(), "pi_123").Return(succeededIntent, nil)

				r.EXPECT().
					CreateOrGet(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, false, errors.New("database error"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "mail failure degrades to success without email",
			req:  dto.ConfirmBookingRequest{PaymentIntentID: "pi_123"},
			setupMock: func(g *stripeMocks.MockGateway, r *bookingMocks.MockBooking, m *mailMocks.MockMailer, e *kafkaMocks.MockPublisher) {
				g.EXPECT().GetIntent(gomock.Any(), "pi_123").Return(succeededIntent, nil)

				r.EXPECT().
					CreateOrGet(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking) (model.Booking, bool, error) {
						return booking, true, nil
					})

				m.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("mail provider down"))
				e.EXPECT().Publish(gomock.Any(), "booking.events", gomock.Any()).Return(nil)
			},
			wantEmailSent: false,
			wantBookingID: "booking-1",
		},
		{
			name: "publish failure does not fail the confirmation",
			req:  dto.ConfirmBookingRequest{PaymentIntentID: "pi_123"},
			setupMock: func(g *stripeMocks.MockGateway, r *bookingMocks.MockBooking, m *mailMocks.MockMailer, e *kafkaMocks.MockPublisher) {
				g.EXPECT().GetIntent(gomock.Any(), "pi_123").Return(succeededIntent, nil)

				r.EXPECT().
					CreateOrGet(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking) (model.Booking, bool, error) {
						return booking, true, nil
					})

				m.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
				e.EXPECT().Publish(gomock.Any(), "booking.events", gomock.Any()).Return(errors.New("broker unreachable"))
			},
			wantEmailSent: true,
			wantBookingID: "booking-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := bookingMocks.NewMockBooking(ctrl)
			mockGateway := stripeMocks.NewMockGateway(ctrl)
			mockMailer := mailMocks.NewMockMailer(ctrl)
			mockEvents := kafkaMocks.NewMockPublisher(ctrl)
			mockOtel := mocks.NewOtel()

			svc := service.New(mockRepo, mockGateway, mockMailer, mockEvents, testConfig(), mockOtel)

			tt.setupMock(mockGateway, mockRepo, mockMailer, mockEvents)

			result, err := svc.ConfirmBooking(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.True(t, result.Success)
			assert.Equal(t, tt.wantBookingID, result.BookingID)
			assert.Equal(t, tt.wantEmailSent, result.EmailSent)
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockGateway := stripeMocks.NewMockGateway(ctrl)
	mockMailer := mailMocks.NewMockMailer(ctrl)
	mockEvents := kafkaMocks.NewMockPublisher(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockGateway, mockMailer, mockEvents, testConfig(), mockOtel)

	booking := model.Booking{
		ID:              "booking-1",
		PaymentIntentID: "pi_123",
		Status:          model.StatusConfirmed,
		CustomerEmail:   "rider@example.com",
		ServiceType:     "airport-transfer",
		Amount:          50,
		Currency:        "usd",
		CreatedAt:       timezone.Now(),
	}

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful get",
			id:   "booking-1",
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), "booking-1").Return(booking, nil)
			},
			wantErr: false,
		},
		{
			name: "booking not found",
			id:   "missing-id",
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), "missing-id").Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository error",
			id:   "booking-1",
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), "booking-1").Return(model.Booking{}, errors.New("database error"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "booking-1", result.ID)
				assert.Equal(t, "pi_123", result.PaymentIntentID)
			}
		})
	}
}

func TestBookingService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockGateway := stripeMocks.NewMockGateway(ctrl)
	mockMailer := mailMocks.NewMockMailer(ctrl)
	mockEvents := kafkaMocks.NewMockPublisher(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockGateway, mockMailer, mockEvents, testConfig(), mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantLen   int
	}{
		{
			name: "successful list",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any()).
					Return([]model.Booking{
						{ID: "booking-1", PaymentIntentID: "pi_1", CreatedAt: timezone.Now()},
						{ID: "booking-2", PaymentIntentID: "pi_2", CreatedAt: timezone.Now()},
					}, nil)
			},
			wantLen: 2,
		},
		{
			name: "empty list",
			setupMock: func() {
				mockRepo.EXPECT().GetAll(gomock.Any()).Return(nil, nil)
			},
			wantLen: 0,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().GetAll(gomock.Any()).Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.GetAll(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, result.Bookings, tt.wantLen)
			}
		})
	}
}
