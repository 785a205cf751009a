package salon

import (
	"context"
	"sync"

	"github.com/carosellagiuliano-max/SWK-SalonService/internal/domain"
)

// InMemory serves the default booking policy and a seeded service catalog
// in demo mode.
type InMemory struct {
	mu       sync.RWMutex
	policy   domain.BookingPolicy
	services map[string]domain.Service
}

func NewInMemory(services ...domain.Service) *InMemory {
	catalog := make(map[string]domain.Service, len(services))
	for _, svc := range services {
		catalog[svc.ID] = svc
	}
	return &InMemory{
		policy:   domain.DefaultBookingPolicy(),
		services: catalog,
	}
}

func (s *InMemory) GetBookingPolicy(_ context.Context, _ string) (*domain.BookingPolicy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	policy := s.policy
	return &policy, nil
}

func (s *InMemory) GetService(_ context.Context, salonID, serviceID string) (*domain.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	svc, ok := s.services[serviceID]
	if !ok || svc.SalonID != salonID || !svc.Active {
		return nil, ErrServiceNotFound
	}
	copied := svc
	return &copied, nil
}
