package dto

import (
	"ridebook/internal/domains/booking/model"
	"ridebook/shared/constant"
	"ridebook/shared/timezone"
)

// BookingDetails are the caller-supplied booking fields. The amount echoed
// here is never trusted; the gateway's intent record is authoritative.
type BookingDetails struct {
	CustomerEmail string  `json:"email"       validate:"required,email,max=100"`
	ServiceType   string  `json:"serviceType" validate:"required,max=100"`
	Date          string  `json:"date"        validate:"omitempty,max=40"`
	Time          string  `json:"time"        validate:"omitempty,max=40"`
	Amount        float64 `json:"amount"      validate:"omitempty"`
}

type CreateIntentRequest struct {
	Amount         float64        `json:"amount"         validate:"required,gt=0"`
	Currency       string         `json:"currency"       validate:"omitempty,len=3"`
	BookingDetails BookingDetails `json:"bookingDetails" validate:"required"`
}

type CreateIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
	BookingID    string `json:"bookingId"`
}

// ConfirmBookingRequest carries the intent to confirm. BookingDetails are an
// optional fallback for intents created without metadata, so they are not
// validated here.
type ConfirmBookingRequest struct {
	PaymentIntentID string         `json:"paymentIntentId" validate:"required"`
	BookingDetails  BookingDetails `json:"bookingDetails"  validate:"structonly"`
}

type ConfirmBookingResponse struct {
	Success   bool   `json:"success"`
	BookingID string `json:"bookingId"`
	Message   string `json:"message"`
	EmailSent bool   `json:"emailSent"`
}

type BookingResponse struct {
	ID              string  `json:"id"`
	PaymentIntentID string  `json:"paymentIntentId"`
	Status          string  `json:"status"`
	CustomerEmail   string  `json:"email"`
	ServiceType     string  `json:"serviceType"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
	CreatedAt       string  `json:"createdAt"`
}

func (r *BookingResponse) FromModel(mod model.Booking) {
	r.ID = mod.ID
	r.PaymentIntentID = mod.PaymentIntentID
	r.Status = mod.Status
	r.CustomerEmail = mod.CustomerEmail
	r.ServiceType = mod.ServiceType
	r.Date = mod.Date
	r.Time = mod.Time
	r.Amount = mod.Amount
	r.Currency = mod.Currency
	r.CreatedAt = timezone.Format(mod.CreatedAt, constant.DateFormat)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalData int               `json:"totalData"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking) {
	r.TotalData = len(models)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
