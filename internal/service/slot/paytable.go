package slot

import (
	"fmt"

	"slots_backend/internal/common"
	"slots_backend/internal/config"
	"slots_backend/internal/model"
)

// evaluate maps a 3-symbol outcome to its payout multiplier. Rules fire in
// a fixed priority order and are mutually exclusive:
//
//  1. exact triple — all three positions identical;
//  2. exactly two Diamonds (the third symbol is anything else);
//  3. any other pair (push);
//  4. default 0.
//
// Beyond the triple check only multiset counts matter, never reel order.
// Pure; the only failure is malformed input, which signals an internal bug.
func evaluate(reels model.ReelResult, cfg config.SlotConfig) (int, error) {
	if len(reels) != model.ReelCount {
		return 0, fmt.Errorf("%w: got %d reels, want %d", common.ErrInvalidInput, len(reels), model.ReelCount)
	}

	counts := make(map[model.Symbol]int, model.ReelCount)
	for _, sym := range reels {
		if !sym.Valid() {
			return 0, fmt.Errorf("%w: unknown symbol %q", common.ErrInvalidInput, sym)
		}
		counts[sym]++
	}

	if reels[0] == reels[1] && reels[1] == reels[2] {
		return cfg.TriplePayouts()[reels[0]], nil
	}

	if counts[model.SymbolDiamond] == 2 {
		return cfg.TwoDiamondMultiplier(), nil
	}

	for _, c := range counts {
		if c == 2 {
			return cfg.PairMultiplier(), nil
		}
	}

	return 0, nil
}

// settleAmounts computes the money movement of one spin: payout is wager
// times multiplier, clamped at the machine's payout cap; net is what the
// balance changes by. net >= -wager always holds.
func settleAmounts(wager, multiplier, maxMultiplier int) (payout, net int) {
	payout = wager * multiplier

	maxPayout := wager * maxMultiplier
	if payout > maxPayout {
		payout = maxPayout
	}

	return payout, payout - wager
}
