package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/CesarJOtizM/didactic-succotash/internal/model"
)

// MemoryOrderRepository is a thread-safe in-memory store keyed by order
// uuid. It backs unit tests and the STORE=memory mode for local runs.
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[string]model.PaymentOrder
}

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{orders: make(map[string]model.PaymentOrder)}
}

func (r *MemoryOrderRepository) Save(_ context.Context, order *model.PaymentOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[order.UUID] = *order
	return nil
}

func (r *MemoryOrderRepository) FindByUUID(_ context.Context, uuid string) (*model.PaymentOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[uuid]
	if !ok {
		return nil, ErrNotFound
	}
	return &order, nil
}

func (r *MemoryOrderRepository) FindAll(_ context.Context) ([]*model.PaymentOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	orders := make([]*model.PaymentOrder, 0, len(r.orders))
	for uuid := range r.orders {
		order := r.orders[uuid]
		orders = append(orders, &order)
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (r *MemoryOrderRepository) Update(_ context.Context, uuid string, update OrderUpdate) (*model.PaymentOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[uuid]
	if !ok {
		return nil, ErrNotFound
	}
	if update.Status != nil {
		order.Status = *update.Status
	}
	if update.Provider != nil {
		order.Provider = *update.Provider
	}
	if update.TransactionID != nil {
		order.TransactionID = *update.TransactionID
	}
	if update.Attempts != nil {
		order.Attempts = *update.Attempts
	}
	if update.ProcessedAt != nil {
		order.ProcessedAt = update.ProcessedAt
	}
	r.orders[uuid] = order
	return &order, nil
}

func (r *MemoryOrderRepository) CountByStatus(_ context.Context, status string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for _, order := range r.orders {
		if order.Status == status {
			count++
		}
	}
	return count, nil
}

var _ OrderRepository = (*MemoryOrderRepository)(nil)
