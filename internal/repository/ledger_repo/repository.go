package ledger_repo

import (
	"context"
	"time"

	"slots_backend/internal/model"
	"slots_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table        = "transactions"
	colID        = "id"
	colUserID    = "user_id"
	colReels     = "reels"
	colWager     = "wager"
	colPayout    = "payout"
	colNet       = "net"
	colCreatedAt = "created_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewLedgerRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.LedgerRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

// AppendTransaction writes one immutable ledger record. Rows are never
// updated or deleted afterwards.
func (r *repo) AppendTransaction(ctx context.Context, tx *model.Transaction) error {
	query := sq.Insert(table).
		Columns(colUserID, colReels, colWager, colPayout, colNet).
		Values(tx.UserID, tx.Reels.Strings(), tx.Wager, tx.Payout, tx.Net).
		Suffix("RETURNING " + colID + ", " + colCreatedAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		return err
	}

	return nil
}

// ListByUser returns the user's transactions, newest first
func (r *repo) ListByUser(ctx context.Context, userID, limit, offset int) ([]model.Transaction, error) {
	query := sq.Select(colID, colUserID, colReels, colWager, colPayout, colNet, colCreatedAt).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		OrderBy(colCreatedAt+" DESC", colID+" DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []model.Transaction
	for rows.Next() {
		var tx model.Transaction
		var reels []string
		err = rows.Scan(&tx.ID, &tx.UserID, &reels, &tx.Wager, &tx.Payout, &tx.Net, &tx.CreatedAt)
		if err != nil {
			return nil, err
		}
		tx.Reels = make(model.ReelResult, len(reels))
		for i, s := range reels {
			tx.Reels[i] = model.Symbol(s)
		}
		txs = append(txs, tx)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return txs, nil
}

// CountByUser returns the total number of the user's transactions
func (r *repo) CountByUser(ctx context.Context, userID int) (int, error) {
	query := sq.Select("COUNT(*)").
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
		return 0, err
	}

	return count, nil
}

// Leaderboard aggregates net win per user over the window, best first.
// Ranks are assigned by the caller.
func (r *repo) Leaderboard(ctx context.Context, since time.Time, limit int) ([]model.LeaderboardEntry, error) {
	query := sq.Select(
		"t."+colUserID,
		"u.name",
		"COALESCE(SUM(t."+colNet+"), 0) AS net_win",
		"COUNT(*) AS total_spins",
	).
		From(table + " t").
		Join("users u ON u.id = t." + colUserID).
		Where(sq.GtOrEq{"t." + colCreatedAt: since}).
		GroupBy("t."+colUserID, "u.name").
		OrderBy("net_win DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.LeaderboardEntry
	for rows.Next() {
		var e model.LeaderboardEntry
		err = rows.Scan(&e.UserID, &e.Name, &e.NetWin, &e.TotalSpins)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
