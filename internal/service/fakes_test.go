package service

import (
	"context"
	"sync"

	"pharmatrade/internal/model"
)

type fakeShipmentRepo struct {
	mu        sync.Mutex
	shipments []model.Shipment
	err       error
	finds     int
	filters   []model.ShipmentFilter
	created   []model.Shipment
}

func (r *fakeShipmentRepo) FindForSummary(_ context.Context, filter model.ShipmentFilter) ([]model.Shipment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.finds++
	r.filters = append(r.filters, filter)
	if r.err != nil {
		return nil, r.err
	}
	return r.shipments, nil
}

func (r *fakeShipmentRepo) List(_ context.Context, page, limit int) ([]model.Shipment, int64, error) {
	if r.err != nil {
		return nil, 0, r.err
	}
	start := (page - 1) * limit
	if start >= len(r.shipments) {
		return nil, int64(len(r.shipments)), nil
	}
	end := min(start+limit, len(r.shipments))
	return r.shipments[start:end], int64(len(r.shipments)), nil
}

func (r *fakeShipmentRepo) CreateBatch(_ context.Context, shipments []model.Shipment) error {
	if r.err != nil {
		return r.err
	}
	r.created = append(r.created, shipments...)
	return nil
}

type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type publishedEvent struct {
	name string
	data interface{}
}

type fakePublisher struct {
	events []publishedEvent
}

func (p *fakePublisher) Publish(event string, data interface{}) {
	p.events = append(p.events, publishedEvent{name: event, data: data})
}

type fakeInvalidator struct {
	calls int
}

func (i *fakeInvalidator) InvalidateCache() {
	i.calls++
}
