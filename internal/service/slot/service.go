// Package slot implements the wager settlement engine: reel generation,
// paytable evaluation and the atomic balance-and-ledger commit, plus the
// zero-balance bonus policy and ledger read models built on top of it.
package slot

import (
	"slots_backend/internal/config"
	"slots_backend/internal/repository"
	"slots_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	cfg        config.SlotConfig
	userRepo   repository.UserRepository
	ledgerRepo repository.LedgerRepository
	bonusRepo  repository.BonusRepository
	cache      repository.LeaderboardCache
	txManager  trm.Manager
}

func NewSlotService(
	cfg config.SlotConfig,
	userRepo repository.UserRepository,
	ledgerRepo repository.LedgerRepository,
	bonusRepo repository.BonusRepository,
	cache repository.LeaderboardCache,
	txManager trm.Manager,
) service.SlotService {
	return &serv{
		cfg:        cfg,
		userRepo:   userRepo,
		ledgerRepo: ledgerRepo,
		bonusRepo:  bonusRepo,
		cache:      cache,
		txManager:  txManager,
	}
}
