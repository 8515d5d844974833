package slot

import (
	"context"
	"fmt"

	"slots_backend/internal/common"
	"slots_backend/internal/middleware"
	"slots_backend/internal/model"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// History returns a page of the user's ledger, newest first.
func (s *serv) History(ctx context.Context, page, limit int) (*model.TransactionPage, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, common.ErrUnauthorized
	}

	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	totalCount, err := s.ledgerRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: count transactions: %v", common.ErrPersistenceFailure, err)
	}

	txs, err := s.ledgerRepo.ListByUser(ctx, userID, limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("%w: list transactions: %v", common.ErrPersistenceFailure, err)
	}

	totalPages := (totalCount + limit - 1) / limit

	return &model.TransactionPage{
		Page:         page,
		Limit:        limit,
		TotalPages:   totalPages,
		TotalCount:   totalCount,
		Transactions: txs,
	}, nil
}
