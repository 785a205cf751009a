package appointment

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

const table = "appointments"

var columns = []string{
	"id",
	"salon_id",
	"customer_id",
	"staff_id",
	"service_id",
	"start_at",
	"end_at",
	"status",
	"service_name",
	"note",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Postgres stores appointments in PostgreSQL. When the context carries a
// transaction opened by txmanager, queries run inside it.
type Postgres struct {
	db txmanager.DBExecutor
}

func NewPostgres(db txmanager.DBExecutor) *Postgres {
	return &Postgres{db: db}
}

// Create inserts the appointment and returns it with generated fields set.
func (r *Postgres) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	if appt.ID == "" {
		appt.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"id",
			"salon_id",
			"customer_id",
			"staff_id",
			"service_id",
			"start_at",
			"end_at",
			"status",
			"service_name",
			"note",
		).
		Values(
			appt.ID,
			appt.SalonID,
			appt.CustomerID,
			appt.StaffID,
			appt.ServiceID,
			appt.StartAt,
			appt.EndAt,
			appt.Status,
			appt.ServiceName,
			appt.Note,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// GetByID returns the appointment with the given ID.
func (r *Postgres) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select: %v", ErrBuildQuery, err)
	}

	appt, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("%w: GetByID: %v", ErrScanRow, err)
	}

	return appt, nil
}

// ListScheduledBySalon returns every scheduled appointment of the salon.
// The slot validator consumes their intervals as current occupancy.
func (r *Postgres) ListScheduledBySalon(ctx context.Context, salonID string) ([]*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"salon_id": salonID, "status": domain.StatusScheduled}).
		OrderBy("start_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListScheduledBySalon - build select: %v", ErrBuildQuery, err)
	}

	return r.queryAppointments(ctx, executor, query, args)
}

// ListByCustomer returns the customer's appointments ordered by start time.
func (r *Postgres) ListByCustomer(ctx context.Context, customerID string, limit uint64) ([]*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"customer_id": customerID}).
		OrderBy("start_at ASC")
	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByCustomer - build select: %v", ErrBuildQuery, err)
	}

	return r.queryAppointments(ctx, executor, query, args)
}

// Cancel moves a scheduled appointment to cancelled. Returns ErrCannotCancel
// when the appointment exists but is not in a cancellable state.
func (r *Postgres) Cancel(ctx context.Context, id string, reason *string, cancelledAt time.Time) (*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", cancelledAt).
		Set("updated_at", cancelledAt).
		Where(squirrel.Eq{"id": id, "status": domain.StatusScheduled}).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Cancel - build update: %v", ErrBuildQuery, err)
	}

	appt, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Either missing or not scheduled; disambiguate for the caller.
			if _, getErr := r.GetByID(ctx, id); getErr == nil {
				return nil, ErrCannotCancel
			}
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("%w: Cancel: %v", ErrScanRow, err)
	}

	return appt, nil
}

// CountCompletedSince counts the customer's completed visits since the
// given instant. Feeds the loyalty visit aggregate.
func (r *Postgres) CountCompletedSince(ctx context.Context, customerID string, since time.Time) (int, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From(table).
		Where(squirrel.Eq{"customer_id": customerID, "status": domain.StatusCompleted}).
		Where(squirrel.GtOrEq{"start_at": since}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountCompletedSince - build select: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountCompletedSince: %v", ErrExecQuery, err)
	}

	return count, nil
}

func (r *Postgres) queryAppointments(ctx context.Context, executor txmanager.DBExecutor, query string, args []interface{}) ([]*domain.Appointment, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var result []*domain.Appointment
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrScanRow, err)
		}
		result = append(result, appt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate rows: %v", ErrExecQuery, err)
	}

	return result, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var appt domain.Appointment
	var cancelledAt sql.NullTime
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&appt.ID,
		&appt.SalonID,
		&appt.CustomerID,
		&appt.StaffID,
		&appt.ServiceID,
		&appt.StartAt,
		&appt.EndAt,
		&appt.Status,
		&appt.ServiceName,
		&appt.Note,
		&appt.CancellationReason,
		&cancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if cancelledAt.Valid {
		appt.CancelledAt = &cancelledAt.Time
	}
	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return &appt, nil
}

func joinColumns() string {
	out := columns[0]
	for _, c := range columns[1:] {
		out += ", " + c
	}
	return out
}
