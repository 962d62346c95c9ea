package repository

import (
	"context"
	"sync"

	"ridebook/infras/otel"
	"ridebook/internal/domains/contact/model"
	"ridebook/shared/constant"
)

type memoryImpl struct {
	mu          sync.RWMutex
	submissions []model.ContactSubmission
	otel        otel.Otel
}

func NewMemory(otel otel.Otel) Contact {
	return &memoryImpl{
		otel: otel,
	}
}

func (r *memoryImpl) Insert(ctx context.Context, submission model.ContactSubmission) (err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Insert")
	defer scope.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.submissions = append(r.submissions, submission)

	return nil
}

// GetAll returns all submissions in insertion order.
func (r *memoryImpl) GetAll(ctx context.Context) (res []model.ContactSubmission, err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAll")
	defer scope.End()

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.ContactSubmission, len(r.submissions))
	copy(out, r.submissions)

	return out, nil
}
