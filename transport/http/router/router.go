package router

import (
	"ridebook/internal/handlers/booking"
	"ridebook/internal/handlers/contact"
	"ridebook/internal/handlers/webhook"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Booking booking.Handler
	Contact contact.Handler
	Webhook webhook.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

// SetupRoutes mounts the API under /v1. The webhook stays at the root path
// because that is the endpoint registered with the payment gateway.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Contact.Router(routerGroup)
	})

	r.DomainHandlers.Webhook.Router(router)
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
