package slot

import (
	"context"
	"fmt"

	"slots_backend/internal/common"
	"slots_backend/internal/middleware"
	"slots_backend/internal/model"

	log "github.com/sirupsen/logrus"
)

// ClaimBonus grants the fixed stipend when the balance has hit zero.
// Eligibility: balance is exactly 0 and fewer than the capped number of
// grants have been issued. Each grant increments the counter; once the cap
// is reached further claims are denied until an external reset.
//
// The counter check, the balance credit and the ledger adjustment share one
// unit of work under the same row lock as settlement, so concurrent
// zero-balance triggers cannot double-grant.
func (s *serv) ClaimBonus(ctx context.Context) (*model.BonusResult, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, common.ErrUnauthorized
	}

	var res *model.BonusResult

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		balance, err := s.userRepo.GetBalanceForUpdate(txCtx, userID)
		if err != nil {
			return fmt.Errorf("%w: read balance: %v", common.ErrPersistenceFailure, err)
		}
		if balance != 0 {
			return common.ErrNotEligible
		}

		grantCount, err := s.bonusRepo.GetGrantCount(txCtx, userID)
		if err != nil {
			return fmt.Errorf("%w: read grant count: %v", common.ErrPersistenceFailure, err)
		}
		if grantCount >= s.cfg.BonusGrantCap() {
			return common.ErrNotEligible
		}

		stipend := s.cfg.BonusStipend()

		if err := s.userRepo.UpdateBalance(txCtx, userID, stipend); err != nil {
			return fmt.Errorf("%w: update balance: %v", common.ErrPersistenceFailure, err)
		}
		if err := s.bonusRepo.UpdateGrantCount(txCtx, userID, grantCount+1); err != nil {
			return fmt.Errorf("%w: update grant count: %v", common.ErrPersistenceFailure, err)
		}

		// Zero-wager ledger adjustment keeps the balance derivable by replay
		if err := s.ledgerRepo.AppendTransaction(txCtx, &model.Transaction{
			UserID: userID,
			Wager:  0,
			Payout: stipend,
			Net:    stipend,
		}); err != nil {
			return fmt.Errorf("%w: append transaction: %v", common.ErrPersistenceFailure, err)
		}

		res = &model.BonusResult{
			Balance:    stipend,
			GrantCount: grantCount + 1,
		}

		return nil
	})
	if err != nil {
		if !isValidationErr(err) {
			log.WithField("user_id", userID).WithError(err).Error("bonus grant failed")
		}
		return nil, err
	}

	log.WithFields(log.Fields{
		"user_id":     userID,
		"grant_count": res.GrantCount,
	}).Info("bonus granted")

	return res, nil
}
