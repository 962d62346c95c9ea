package repository

import (
	"context"
	"sync"

	"ridebook/infras/otel"
	"ridebook/internal/domains/booking/model"
	"ridebook/shared/constant"
)

// memoryImpl keeps bookings in process memory. The mutex serializes writes so
// that two callers racing on the same payment intent cannot both create a
// record; reads copy out values so callers never observe a partial write.
type memoryImpl struct {
	mu       sync.RWMutex
	byIntent map[string]int
	byID     map[string]int
	ordered  []model.Booking
	otel     otel.Otel
}

func NewMemory(otel otel.Otel) Booking {
	return &memoryImpl{
		byIntent: make(map[string]int),
		byID:     make(map[string]int),
		otel:     otel,
	}
}

func (r *memoryImpl) CreateOrGet(ctx context.Context, booking model.Booking) (res model.Booking, created bool, err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".CreateOrGet")
	defer scope.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	if idx, ok := r.byIntent[booking.PaymentIntentID]; ok {
		return r.ordered[idx], false, nil
	}

	r.ordered = append(r.ordered, booking)
	idx := len(r.ordered) - 1
	r.byIntent[booking.PaymentIntentID] = idx
	r.byID[booking.ID] = idx

	return booking, true, nil
}

func (r *memoryImpl) Get(ctx context.Context, id string) (res model.Booking, err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Get")
	defer scope.End()

	r.mu.RLock()
	defer r.mu.RUnlock()

	if idx, ok := r.byID[id]; ok {
		return r.ordered[idx], nil
	}

	return model.Booking{}, nil
}

func (r *memoryImpl) GetByPaymentIntentID(ctx context.Context, paymentIntentID string) (res model.Booking, err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetByPaymentIntentID")
	defer scope.End()

	r.mu.RLock()
	defer r.mu.RUnlock()

	if idx, ok := r.byIntent[paymentIntentID]; ok {
		return r.ordered[idx], nil
	}

	return model.Booking{}, nil
}

// GetAll returns all bookings in insertion order.
func (r *memoryImpl) GetAll(ctx context.Context) (res []model.Booking, err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAll")
	defer scope.End()

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Booking, len(r.ordered))
	copy(out, r.ordered)

	return out, nil
}
