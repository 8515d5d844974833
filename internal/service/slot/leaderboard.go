package slot

import (
	"context"
	"fmt"
	"time"

	"slots_backend/internal/common"
	"slots_backend/internal/model"

	log "github.com/sirupsen/logrus"
)

const (
	defaultLeaderboardDays = 7
	leaderboardSize        = 10
)

// Leaderboard returns the top net winners over the last days. Answers come
// from the cache when fresh; a miss falls through to the ledger aggregate
// and repopulates the cache. A broken cache degrades to direct reads.
func (s *serv) Leaderboard(ctx context.Context, days int) ([]model.LeaderboardEntry, error) {
	if days < 1 {
		days = defaultLeaderboardDays
	}

	cached, err := s.cache.Get(ctx, days)
	if err != nil {
		log.WithError(err).Warn("leaderboard cache read failed")
	}
	if cached != nil {
		return cached, nil
	}

	since := time.Now().AddDate(0, 0, -days)
	entries, err := s.ledgerRepo.Leaderboard(ctx, since, leaderboardSize)
	if err != nil {
		return nil, fmt.Errorf("%w: aggregate leaderboard: %v", common.ErrPersistenceFailure, err)
	}

	for i := range entries {
		entries[i].Rank = i + 1
	}

	if err := s.cache.Set(ctx, days, entries); err != nil {
		log.WithError(err).Warn("leaderboard cache write failed")
	}

	return entries, nil
}
