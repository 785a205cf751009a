package appointment

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/carosellagiuliano-max/SWK-SalonService/internal/domain"
)

// InMemory is the non-persistent fallback store used when the service runs
// without a database (demo mode). Safe for concurrent use.
type InMemory struct {
	mu    sync.RWMutex
	items map[string]*domain.Appointment
}

func NewInMemory() *InMemory {
	return &InMemory{items: make(map[string]*domain.Appointment)}
}

func (s *InMemory) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if appt.ID == "" {
		appt.ID = uuid.NewString()
	}
	now := time.Now()
	appt.CreatedAt = now
	appt.UpdatedAt = now

	stored := *appt
	s.items[appt.ID] = &stored

	return appt, nil
}

func (s *InMemory) GetByID(_ context.Context, id string) (*domain.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	appt, ok := s.items[id]
	if !ok {
		return nil, ErrAppointmentNotFound
	}
	copied := *appt
	return &copied, nil
}

func (s *InMemory) ListScheduledBySalon(_ context.Context, salonID string) ([]*domain.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.Appointment
	for _, appt := range s.items {
		if appt.SalonID == salonID && appt.Status == domain.StatusScheduled {
			copied := *appt
			result = append(result, &copied)
		}
	}
	sortByStart(result)

	return result, nil
}

func (s *InMemory) ListByCustomer(_ context.Context, customerID string, limit uint64) ([]*domain.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.Appointment
	for _, appt := range s.items {
		if appt.CustomerID == customerID {
			copied := *appt
			result = append(result, &copied)
		}
	}
	sortByStart(result)

	if limit > 0 && uint64(len(result)) > limit {
		result = result[:limit]
	}

	return result, nil
}

func (s *InMemory) Cancel(_ context.Context, id string, reason *string, cancelledAt time.Time) (*domain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	appt, ok := s.items[id]
	if !ok {
		return nil, ErrAppointmentNotFound
	}
	if !appt.CanBeCancelled() {
		return nil, ErrCannotCancel
	}

	appt.Status = domain.StatusCancelled
	appt.CancellationReason = reason
	appt.CancelledAt = &cancelledAt
	appt.UpdatedAt = cancelledAt

	copied := *appt
	return &copied, nil
}

func (s *InMemory) CountCompletedSince(_ context.Context, customerID string, since time.Time) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, appt := range s.items {
		if appt.CustomerID == customerID && appt.CountsAsVisit() && !appt.StartAt.Before(since) {
			count++
		}
	}

	return count, nil
}

func sortByStart(appts []*domain.Appointment) {
	sort.Slice(appts, func(i, j int) bool {
		return appts[i].StartAt.Before(appts[j].StartAt)
	})
}
