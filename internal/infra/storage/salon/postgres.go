package salon

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/carosellagiuliano-max/SWK-SalonService/internal/domain"
	"github.com/carosellagiuliano-max/SWK-SalonService/pkg/psqlbuilder"
	"github.com/carosellagiuliano-max/SWK-SalonService/pkg/txmanager"
)

// Postgres reads salon configuration (booking policy, services) from
// PostgreSQL.
type Postgres struct {
	db txmanager.DBExecutor
}

func NewPostgres(db txmanager.DBExecutor) *Postgres {
	return &Postgres{db: db}
}

// GetBookingPolicy returns the salon's stored booking policy. Callers fall
// back to domain.DefaultBookingPolicy on ErrPolicyNotFound.
func (r *Postgres) GetBookingPolicy(ctx context.Context, salonID string) (*domain.BookingPolicy, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"min_lead_time_minutes",
		"max_advance_days",
		"opening_start_hour",
		"opening_end_hour",
	).
		From("salons").
		Where(squirrel.Eq{"id": salonID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookingPolicy - build select: %v", ErrBuildQuery, err)
	}

	var policy domain.BookingPolicy
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&policy.MinLeadTimeMinutes,
		&policy.MaxAdvanceDays,
		&policy.OpeningHours.StartHour,
		&policy.OpeningHours.EndHour,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPolicyNotFound
		}
		return nil, fmt.Errorf("%w: GetBookingPolicy - scan policy: %v", ErrExecQuery, err)
	}

	return &policy, nil
}

// GetService returns an active service offered by the salon.
func (r *Postgres) GetService(ctx context.Context, salonID, serviceID string) (*domain.Service, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"salon_id",
		"name",
		"duration_minutes",
		"price_chf",
		"active",
	).
		From("services").
		Where(squirrel.Eq{"id": serviceID, "salon_id": salonID, "active": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - build select: %v", ErrBuildQuery, err)
	}

	var svc domain.Service
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&svc.ID,
		&svc.SalonID,
		&svc.Name,
		&svc.DurationMinutes,
		&svc.PriceChf,
		&svc.Active,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("%w: GetService - scan service: %v", ErrExecQuery, err)
	}

	return &svc, nil
}
