package order

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/carosellagiuliano-max/SWK-SalonService/internal/domain"
)

// InMemory is the non-persistent fallback store for demo mode.
type InMemory struct {
	mu    sync.RWMutex
	items map[string]*domain.Order
}

func NewInMemory() *InMemory {
	return &InMemory{items: make(map[string]*domain.Order)}
}

func (s *InMemory) Create(_ context.Context, o *domain.Order) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.Status == "" {
		o.Status = domain.OrderPending
	}
	now := time.Now()
	o.CreatedAt = now
	o.UpdatedAt = now

	stored := *o
	s.items[o.ID] = &stored

	return o, nil
}

func (s *InMemory) GetByID(_ context.Context, id string) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.items[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	copied := *o
	return &copied, nil
}

func (s *InMemory) MarkPaid(_ context.Context, id string, paidAt time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.items[id]
	if !ok {
		return false, ErrOrderNotFound
	}
	if o.Status != domain.OrderPending {
		return false, nil
	}

	o.Status = domain.OrderPaid
	o.PaidAt = &paidAt
	o.UpdatedAt = paidAt

	return true, nil
}

func (s *InMemory) TotalPaidByCustomer(_ context.Context, customerID string) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0.0
	for _, o := range s.items {
		if o.CustomerID == customerID && o.Status == domain.OrderPaid {
			total += o.TotalChf
		}
	}

	return total, nil
}
