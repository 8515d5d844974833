package slot

import (
	"context"
	"fmt"

	"slots_backend/internal/common"
	"slots_backend/internal/middleware"
	"slots_backend/internal/model"
)

// Deposit credits the balance and records the adjustment in the ledger.
func (s *serv) Deposit(ctx context.Context, amount int) (int, error) {
	if amount <= 0 {
		return 0, common.ErrInvalidAmount
	}

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return 0, common.ErrUnauthorized
	}

	var newBalance int

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		balance, err := s.userRepo.GetBalanceForUpdate(txCtx, userID)
		if err != nil {
			return fmt.Errorf("%w: read balance: %v", common.ErrPersistenceFailure, err)
		}

		newBalance = balance + amount

		if err := s.userRepo.UpdateBalance(txCtx, userID, newBalance); err != nil {
			return fmt.Errorf("%w: update balance: %v", common.ErrPersistenceFailure, err)
		}

		if err := s.ledgerRepo.AppendTransaction(txCtx, &model.Transaction{
			UserID: userID,
			Wager:  0,
			Payout: amount,
			Net:    amount,
		}); err != nil {
			return fmt.Errorf("%w: append transaction: %v", common.ErrPersistenceFailure, err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return newBalance, nil
}

// CheckData returns the balance and bonus state a client polls between spins.
func (s *serv) CheckData(ctx context.Context) (*model.Data, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, common.ErrUnauthorized
	}

	balance, err := s.userRepo.GetBalance(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: read balance: %v", common.ErrPersistenceFailure, err)
	}

	grantCount, err := s.bonusRepo.GetGrantCount(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: read grant count: %v", common.ErrPersistenceFailure, err)
	}

	return &model.Data{
		Balance:         balance,
		BonusGrantCount: grantCount,
	}, nil
}
