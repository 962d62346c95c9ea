package webhook

import (
	"io"
	"net/http"

	"ridebook/infras/otel"
	"ridebook/infras/stripe"
	"ridebook/internal/domains/booking/service"
	"ridebook/shared/constant"
	"ridebook/shared/failure"
	"ridebook/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	gateway stripe.Gateway
	otel    otel.Otel
}

func New(service service.Booking, gateway stripe.Gateway, otel otel.Otel) Handler {
	return Handler{
		service: service,
		gateway: gateway,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/webhook", handler.HandleEvent)
}

// HandleEvent receives gateway webhook deliveries. The signature is verified
// against the raw body before any parsing; an unverifiable delivery is
// rejected, everything else is acknowledged unless the store fails.
// @Summary Receive gateway webhook events
// @Description Verify and reconcile an asynchronous payment gateway event.
// @Tags Webhook
// @Accept json
// @Produce json
// @Success 200 {object} map[string]bool
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /webhook [post]
func (handler *Handler) HandleEvent(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".HandleEvent")
	defer scope.End()

	payload, err := io.ReadAll(request.Body)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read webhook payload")

		response.WithError(writer, failure.BadRequestFromString("unreadable request body"))

		return
	}

	event, err := handler.gateway.VerifyEvent(payload, request.Header.Get(constant.RequestHeaderStripeSignature))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("webhook signature verification failed")

		response.WithError(writer, failure.SignatureVerification(err))

		return
	}

	if err := handler.service.HandleGatewayEvent(ctx, event); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("eventID", event.ID).Msg("failed to handle gateway event")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, map[string]bool{"received": true})
}
