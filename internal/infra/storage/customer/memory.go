package customer

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
	items map[string]*domain.Customer
}

func NewInMemory() *InMemory {
	return &InMemory{items: make(map[string]*domain.Customer)}
}

func (s *InMemory) Create(_ context.Context, c *domain.Customer) (*domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.LoyaltyTier == "" {
		c.LoyaltyTier = domain.TierStandard
	}
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now

	stored := *c
	s.items[c.ID] = &stored

	return c, nil
}

func (s *InMemory) GetByID(_ context.Context, id string) (*domain.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.items[id]
	if !ok {
		return nil, ErrCustomerNotFound
	}
	copied := *c
	return &copied, nil
}

func (s *InMemory) FindByProfile(_ context.Context, salonID, profileID string) (*domain.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.items {
		if c.SalonID == salonID && c.ProfileID == profileID {
			copied := *c
			return &copied, nil
		}
	}

	return nil, ErrCustomerNotFound
}

func (s *InMemory) UpdateLoyalty(_ context.Context, id string, tier domain.LoyaltyTier, pointsEarned int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.items[id]
	if !ok {
		return ErrCustomerNotFound
	}

	c.LoyaltyTier = tier
	c.LoyaltyPoints += pointsEarned
	c.UpdatedAt = time.Now()

	return nil
}
