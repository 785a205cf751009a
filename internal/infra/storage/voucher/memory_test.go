package voucher

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
	s.store = NewInMemory(domain.Voucher{
		Code:      "XMAS",
		AmountChf: 50,
		ExpiresAt: time.Now().Add(24 * time.Hour),
	})
	s.ctx = context.Background()
}

func (s *InMemorySuite) TestGetByCode() {
	s.Run("returns seeded voucher", func() {
		v, err := s.store.GetByCode(s.ctx, "XMAS")
		s.Require().NoError(err)
		s.Equal(50.0, v.AmountChf)
		s.False(v.Redeemed)
	})

	s.Run("returns ErrVoucherNotFound for unknown code", func() {
		_, err := s.store.GetByCode(s.ctx, "NOPE")
		s.Require().ErrorIs(err, ErrVoucherNotFound)
	})
}

func (s *InMemorySuite) TestMarkRedeemed() {
	s.Require().NoError(s.store.MarkRedeemed(s.ctx, "XMAS", time.Now()))

	v, err := s.store.GetByCode(s.ctx, "XMAS")
	s.Require().NoError(err)
	s.True(v.Redeemed)

	s.Run("second redemption is rejected", func() {
		err := s.store.MarkRedeemed(s.ctx, "XMAS", time.Now())
		s.Require().ErrorIs(err, ErrAlreadyRedeemed)
	})
}
