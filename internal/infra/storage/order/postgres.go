package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/carosellagiuliano-max/SWK-SalonService/internal/domain"
	"github.com/carosellagiuliano-max/SWK-SalonService/pkg/psqlbuilder"
	"github.com/carosellagiuliano-max/SWK-SalonService/pkg/txmanager"
)

const table = "orders"

var columns = []string{
	"id",
	"salon_id",
	"customer_id",
	"total_chf",
	"voucher_code",
	"status",
	"paid_at",
	"created_at",
	"updated_at",
}

// Postgres stores shop orders in PostgreSQL.
type Postgres struct {
	db txmanager.DBExecutor
}

func NewPostgres(db txmanager.DBExecutor) *Postgres {
	return &Postgres{db: db}
}

// Create inserts a pending order.
func (r *Postgres) Create(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.Status == "" {
		o.Status = domain.OrderPending
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns("id", "salon_id", "customer_id", "total_chf", "voucher_code", "status").
		Values(o.ID, o.SalonID, o.CustomerID, o.TotalChf, o.VoucherCode, o.Status).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return o, nil
}

// GetByID returns the order with the given ID.
func (r *Postgres) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select: %v", ErrBuildQuery, err)
	}

	var o domain.Order
	var paidAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&o.ID,
		&o.SalonID,
		&o.CustomerID,
		&o.TotalChf,
		&o.VoucherCode,
		&o.Status,
		&paidAt,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - scan order: %v", ErrExecQuery, err)
	}
	if paidAt.Valid {
		o.PaidAt = &paidAt.Time
	}

	return &o, nil
}

// MarkPaid transitions a pending order to paid. Returns false without error
// when the order was already paid, so webhook retries stay idempotent.
func (r *Postgres) MarkPaid(ctx context.Context, id string, paidAt time.Time) (bool, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", domain.OrderPaid).
		Set("paid_at", paidAt).
		Set("updated_at", paidAt).
		Where(squirrel.Eq{"id": id, "status": domain.OrderPending}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: MarkPaid - build update: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: MarkPaid - execute update: %v", ErrExecQuery, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: MarkPaid - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return false, ErrOrderNotFound
		}
		return false, nil
	}

	return true, nil
}

// TotalPaidByCustomer sums the customer's paid orders. Feeds the loyalty
// spend aggregate.
func (r *Postgres) TotalPaidByCustomer(ctx context.Context, customerID string) (float64, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(SUM(total_chf), 0)").
		From(table).
		Where(squirrel.Eq{"customer_id": customerID, "status": domain.OrderPaid}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: TotalPaidByCustomer - build select: %v", ErrBuildQuery, err)
	}

	var total float64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: TotalPaidByCustomer: %v", ErrExecQuery, err)
	}

	return total, nil
}
