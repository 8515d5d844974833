package repository

import (
	"context"
	"time"

	"slots_backend/internal/model"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int, err error)
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)

	GetBalance(ctx context.Context, id int) (int, error)
	// GetBalanceForUpdate locks the balance row until the surrounding
	// transaction ends. Settlement and bonus grants must read through it so
	// concurrent requests for the same user serialize.
	GetBalanceForUpdate(ctx context.Context, id int) (int, error)
	UpdateBalance(ctx context.Context, id int, amount int) error
}

type LedgerRepository interface {
	AppendTransaction(ctx context.Context, tx *model.Transaction) error
	ListByUser(ctx context.Context, userID, limit, offset int) ([]model.Transaction, error)
	CountByUser(ctx context.Context, userID int) (int, error)
	Leaderboard(ctx context.Context, since time.Time, limit int) ([]model.LeaderboardEntry, error)
}

type BonusRepository interface {
	GetGrantCount(ctx context.Context, userID int) (int, error)
	UpdateGrantCount(ctx context.Context, userID int, count int) error
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (refreshToken string, err error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error)
}

// LeaderboardCache is a read-through cache over the ledger aggregate.
// Get returns (nil, nil) on a miss.
type LeaderboardCache interface {
	Get(ctx context.Context, days int) ([]model.LeaderboardEntry, error)
	Set(ctx context.Context, days int, entries []model.LeaderboardEntry) error
}
