package model

import (
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
)

// Booking is a confirmed paid service engagement. A record exists only once
// the gateway reports its payment intent as succeeded; nothing is stored at
// intent-creation time.
type Booking struct {
	ID              string    `db:"id"`
	PaymentIntentID string    `db:"payment_intent_id"`
	Status          string    `db:"status"`
	CustomerEmail   string    `db:"customer_email"`
	ServiceType     string    `db:"service_type"`
	Date            string    `db:"service_date"`
	Time            string    `db:"service_time"`
	Amount          float64   `db:"amount"`
	Currency        string    `db:"currency"`
	CreatedAt       time.Time `db:"created_at"`
}
