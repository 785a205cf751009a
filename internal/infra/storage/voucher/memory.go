package voucher

import (
	"context"
	"sync"
	"time"

	"github.com/carosellagiuliano-max/SWK-SalonService/internal/domain"
)

// InMemory is the non-persistent fallback store for demo mode. Vouchers are
// seeded up front; the shop has no voucher creation endpoint.
type InMemory struct {
	mu    sync.Mutex
	items map[string]*domain.Voucher
}

func NewInMemory(seed ...domain.Voucher) *InMemory {
	items := make(map[string]*domain.Voucher, len(seed))
	for _, v := range seed {
		stored := v
		items[v.Code] = &stored
	}
	return &InMemory{items: items}
}

func (s *InMemory) GetByCode(_ context.Context, code string) (*domain.Voucher, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.items[code]
	if !ok {
		return nil, ErrVoucherNotFound
	}
	copied := *v
	return &copied, nil
}

func (s *InMemory) MarkRedeemed(_ context.Context, code string, _ time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.items[code]
	if !ok {
		return ErrVoucherNotFound
	}
	if v.Redeemed {
		return ErrAlreadyRedeemed
	}
	v.Redeemed = true

	return nil
}
