package slot

import (
	"context"
	"errors"
	"fmt"

	"slots_backend/internal/common"
	"slots_backend/internal/middleware"
	"slots_backend/internal/model"

	log "github.com/sirupsen/logrus"
)

// Spin settles one wager: validate funds, generate and evaluate the reels,
// then atomically apply the balance delta and append the ledger record.
//
// The whole validate-settle-commit sequence runs inside one unit of work
// and the balance row is locked for its duration, so concurrent spins for
// the same user serialize and the balance can never go negative. If the
// commit fails nothing is visible and no balance is reported to the caller.
func (s *serv) Spin(ctx context.Context, req model.SpinRequest) (*model.SettlementResult, error) {
	if req.Wager <= 0 {
		return nil, common.ErrInvalidWager
	}

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, common.ErrUnauthorized
	}

	var res *model.SettlementResult

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// Lock the balance row for the rest of the unit of work
		balance, err := s.userRepo.GetBalanceForUpdate(txCtx, userID)
		if err != nil {
			return fmt.Errorf("%w: read balance: %v", common.ErrPersistenceFailure, err)
		}
		if req.Wager > balance {
			return common.ErrInsufficientFunds
		}

		reels := s.generateReels()
		multiplier, err := evaluate(reels, s.cfg)
		if err != nil {
			return err
		}

		payout, net := settleAmounts(req.Wager, multiplier, s.cfg.MaxMultiplier())
		newBalance := balance + net

		if err := s.userRepo.UpdateBalance(txCtx, userID, newBalance); err != nil {
			return fmt.Errorf("%w: update balance: %v", common.ErrPersistenceFailure, err)
		}

		if err := s.ledgerRepo.AppendTransaction(txCtx, &model.Transaction{
			UserID: userID,
			Reels:  reels,
			Wager:  req.Wager,
			Payout: payout,
			Net:    net,
		}); err != nil {
			return fmt.Errorf("%w: append transaction: %v", common.ErrPersistenceFailure, err)
		}

		res = &model.SettlementResult{
			Reels:      reels,
			Multiplier: multiplier,
			Payout:     payout,
			Net:        net,
			Balance:    newBalance,
		}

		return nil
	})
	if err != nil {
		s.logSpinError(userID, req.Wager, err)
		return nil, err
	}

	log.WithFields(log.Fields{
		"user_id": userID,
		"wager":   req.Wager,
		"net":     res.Net,
		"balance": res.Balance,
	}).Debug("spin settled")

	return res, nil
}

func (s *serv) logSpinError(userID, wager int, err error) {
	entry := log.WithFields(log.Fields{"user_id": userID, "wager": wager})
	switch {
	case isValidationErr(err):
		entry.WithError(err).Debug("spin rejected")
	default:
		// InvalidInput means a bug in generation, PersistenceFailure means
		// the commit did not happen. Both need attention.
		entry.WithError(err).Error("spin failed")
	}
}

func isValidationErr(err error) bool {
	return errors.Is(err, common.ErrInvalidWager) ||
		errors.Is(err, common.ErrInsufficientFunds) ||
		errors.Is(err, common.ErrNotEligible) ||
		errors.Is(err, common.ErrInvalidAmount)
}
