package order

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/carosellagiuliano-max/SWK-SalonService/internal/domain"
)

type InMemorySuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
}

func TestInMemorySuite(t *testing.T) {
	suite.Run(t, new(InMemorySuite))
}

func (s *InMemorySuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
}

func (s *InMemorySuite) createOrder(totalChf float64) *domain.Order {
	o, err := s.store.Create(s.ctx, &domain.Order{
		SalonID:    "salon-1",
		CustomerID: "customer-1",
		TotalChf:   totalChf,
	})
	s.Require().NoError(err)
	return o
}

func (s *InMemorySuite) TestCreate() {
	o := s.createOrder(120)

	s.NotEmpty(o.ID)
	s.Equal(domain.OrderPending, o.Status)
	s.False(o.CreatedAt.IsZero())

	fetched, err := s.store.GetByID(s.ctx, o.ID)
	s.Require().NoError(err)
	s.Equal(120.0, fetched.TotalChf)
}

func (s *InMemorySuite) TestGetByID_Unknown() {
	_, err := s.store.GetByID(s.ctx, "ghost")
	s.Require().ErrorIs(err, ErrOrderNotFound)
}

func (s *InMemorySuite) TestMarkPaid() {
	o := s.createOrder(120)
	paidAt := time.Now()

	transitioned, err := s.store.MarkPaid(s.ctx, o.ID, paidAt)
	s.Require().NoError(err)
	s.True(transitioned)

	fetched, err := s.store.GetByID(s.ctx, o.ID)
	s.Require().NoError(err)
	s.Equal(domain.OrderPaid, fetched.Status)
	s.Require().NotNil(fetched.PaidAt)

	s.Run("second transition reports false without error", func() {
		transitioned, err := s.store.MarkPaid(s.ctx, o.ID, time.Now())
		s.Require().NoError(err)
		s.False(transitioned)
	})
}

func (s *InMemorySuite) TestTotalPaidByCustomer() {
	first := s.createOrder(100)
	s.createOrder(40) // stays pending, must not count
	_, err := s.store.MarkPaid(s.ctx, first.ID, time.Now())
	s.Require().NoError(err)

	total, err := s.store.TotalPaidByCustomer(s.ctx, "customer-1")
	s.Require().NoError(err)
	s.Equal(100.0, total)
}
