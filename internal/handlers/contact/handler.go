package contact

import (
	"net/http"

	"ridebook/infras/otel"
	"ridebook/internal/domains/contact/model/dto"
	"ridebook/internal/domains/contact/service"
	"ridebook/shared/constant"
	"ridebook/shared/validator"
	"ridebook/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Contact
	otel    otel.Otel
}

func New(service service.Contact, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/contact", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.SubmitContact)
		routerGroup.Get("/", handler.GetContacts)
	})
}

// SubmitContact accepts a contact form submission.
// @Summary Submit a contact message
// @Description Store the contact form submission and forward it to the operator inbox.
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body dto.SubmitContactRequest true "Submit Contact Request"
// @Success 200 {object} dto.SubmitContactResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contact [post]
func (handler *Handler) SubmitContact(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitContact")
	defer scope.End()

	req := dto.SubmitContactRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Submit(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit contact message")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetContacts lists all contact submissions.
// @Summary Get all contact messages
// @Description Retrieve all stored contact form submissions.
// @Tags Contact
// @Produce json
// @Success 200 {object} dto.GetContactsResponse
// @Failure 500 {object} response.Error
// @Router /v1/contact [get]
func (handler *Handler) GetContacts(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContacts")
	defer scope.End()

	res, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get contact messages")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
