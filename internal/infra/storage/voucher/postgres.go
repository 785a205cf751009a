package voucher

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/carosellagiuliano-max/SWK-SalonService/internal/domain"
	"github.com/carosellagiuliano-max/SWK-SalonService/pkg/psqlbuilder"
	"github.com/carosellagiuliano-max/SWK-SalonService/pkg/txmanager"
)

const table = "vouchers"

// Postgres stores vouchers in PostgreSQL.
type Postgres struct {
	db txmanager.DBExecutor
}

func NewPostgres(db txmanager.DBExecutor) *Postgres {
	return &Postgres{db: db}
}

// GetByCode returns the voucher snapshot for the given code.
func (r *Postgres) GetByCode(ctx context.Context, code string) (*domain.Voucher, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("code", "amount_chf", "expires_at", "redeemed").
		From(table).
		Where(squirrel.Eq{"code": code}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - build select: %v", ErrBuildQuery, err)
	}

	var v domain.Voucher
	err = executor.QueryRowContext(ctx, query, args...).Scan(&v.Code, &v.AmountChf, &v.ExpiresAt, &v.Redeemed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVoucherNotFound
		}
		return nil, fmt.Errorf("%w: GetByCode - scan voucher: %v", ErrExecQuery, err)
	}

	return &v, nil
}

// MarkRedeemed flips the redeemed flag. The guard on redeemed=false makes
// the write race-safe inside the checkout transaction: a second concurrent
// redemption finds zero affected rows.
func (r *Postgres) MarkRedeemed(ctx context.Context, code string, redeemedAt time.Time) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("redeemed", true).
		Set("redeemed_at", redeemedAt).
		Where(squirrel.Eq{"code": code, "redeemed": false}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkRedeemed - build update: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkRedeemed - execute update: %v", ErrExecQuery, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkRedeemed - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		if _, getErr := r.GetByCode(ctx, code); getErr != nil {
			return ErrVoucherNotFound
		}
		return ErrAlreadyRedeemed
	}

	return nil
}
