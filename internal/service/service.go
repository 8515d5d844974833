package service

import (
	"context"

	"slots_backend/internal/model"
)

type SlotService interface {
	Spin(ctx context.Context, req model.SpinRequest) (*model.SettlementResult, error)
	ClaimBonus(ctx context.Context) (*model.BonusResult, error)
	Deposit(ctx context.Context, amount int) (newBalance int, err error)
	CheckData(ctx context.Context) (*model.Data, error)
	History(ctx context.Context, page, limit int) (*model.TransactionPage, error)
	Leaderboard(ctx context.Context, days int) ([]model.LeaderboardEntry, error)
}

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.AuthData, error)
	Login(ctx context.Context, login, password string) (*model.AuthData, error)
	Refresh(ctx context.Context, sessionID, refreshToken string) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}
