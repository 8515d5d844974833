package bonus_repo

import (
	"context"
	"errors"

	"slots_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table         = "bonus_state"
	colUserID     = "user_id"
	colGrantCount = "grant_count"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewBonusRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.BonusRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

// GetGrantCount returns the number of bonus grants issued to the user.
// Returns 0 if there is no row yet.
func (r *repo) GetGrantCount(ctx context.Context, userID int) (int, error) {
	query := sq.Select(colGrantCount).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}

	return count, nil
}

// UpdateGrantCount sets the grant counter for the user.
// Inserts the row if it does not exist yet.
func (r *repo) UpdateGrantCount(ctx context.Context, userID int, count int) error {
	query := sq.Update(table).
		Set(colGrantCount, count).
		Where(sq.Eq{colUserID: userID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	// No row yet, insert one
	if res.RowsAffected() == 0 {
		insertQuery := sq.Insert(table).
			Columns(colUserID, colGrantCount).
			Values(userID, count).
			PlaceholderFormat(sq.Dollar)

		sqlStr, args, err = insertQuery.ToSql()
		if err != nil {
			return err
		}

		_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
		if err != nil {
			return err
		}
	}
	return nil
}
