package customer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/carosellagiuliano-max/SWK-SalonService/internal/domain"
	"github.com/carosellagiuliano-max/SWK-SalonService/pkg/psqlbuilder"
	"github.com/carosellagiuliano-max/SWK-SalonService/pkg/txmanager"
)

const table = "customers"

var columns = []string{
	"id",
	"salon_id",
	"profile_id",
	"email",
	"first_name",
	"last_name",
	"phone",
	"loyalty_tier",
	"loyalty_points",
	"created_at",
	"updated_at",
}

// Postgres stores customers in PostgreSQL.
type Postgres struct {
	db txmanager.DBExecutor
}

func NewPostgres(db txmanager.DBExecutor) *Postgres {
	return &Postgres{db: db}
}

// Create inserts a new customer with standard tier and zero points.
func (r *Postgres) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.LoyaltyTier == "" {
		c.LoyaltyTier = domain.TierStandard
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns("id", "salon_id", "profile_id", "email", "first_name", "last_name", "phone", "loyalty_tier", "loyalty_points").
		Values(c.ID, c.SalonID, c.ProfileID, c.Email, c.FirstName, c.LastName, c.Phone, c.LoyaltyTier, c.LoyaltyPoints).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return c, nil
}

// GetByID returns the customer with the given ID.
func (r *Postgres) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// FindByProfile returns the salon's customer linked to an identity profile.
func (r *Postgres) FindByProfile(ctx context.Context, salonID, profileID string) (*domain.Customer, error) {
	return r.getOne(ctx, squirrel.Eq{"salon_id": salonID, "profile_id": profileID})
}

// UpdateLoyalty sets the customer's tier and adds earned points.
func (r *Postgres) UpdateLoyalty(ctx context.Context, id string, tier domain.LoyaltyTier, pointsEarned int) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("loyalty_tier", tier).
		Set("loyalty_points", squirrel.Expr("loyalty_points + ?", pointsEarned)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateLoyalty - build update: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateLoyalty - execute update: %v", ErrExecQuery, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateLoyalty - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrCustomerNotFound
	}

	return nil
}

func (r *Postgres) getOne(ctx context.Context, where squirrel.Eq) (*domain.Customer, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: build select: %v", ErrBuildQuery, err)
	}

	var c domain.Customer
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&c.SalonID,
		&c.ProfileID,
		&c.Email,
		&c.FirstName,
		&c.LastName,
		&c.Phone,
		&c.LoyaltyTier,
		&c.LoyaltyPoints,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("%w: scan customer: %v", ErrExecQuery, err)
	}

	return &c, nil
}
