package model

import "time"

// ReelCount — a spin always produces exactly 3 reels.
const ReelCount = 3

// Symbol is one element of the fixed reel alphabet.
type Symbol string

const (
	SymbolDiamond Symbol = "diamond"
	SymbolStar    Symbol = "star"
	SymbolBell    Symbol = "bell"
	SymbolClover  Symbol = "clover"
	SymbolCherry  Symbol = "cherry"
	SymbolLemon   Symbol = "lemon"
)

// Alphabet lists every valid symbol, highest-paying first.
var Alphabet = []Symbol{
	SymbolDiamond,
	SymbolStar,
	SymbolBell,
	SymbolClover,
	SymbolCherry,
	SymbolLemon,
}

// Valid reports whether the symbol belongs to the alphabet.
func (s Symbol) Valid() bool {
	for _, known := range Alphabet {
		if s == known {
			return true
		}
	}
	return false
}

// ReelResult is the ordered outcome of one spin.
type ReelResult []Symbol

// Strings converts the reels for storage and transport.
func (r ReelResult) Strings() []string {
	out := make([]string, len(r))
	for i, s := range r {
		out[i] = string(s)
	}
	return out
}

type SpinRequest struct {
	Wager int
}

// SettlementResult describes one committed spin.
// Balance is the post-commit balance: Balance = oldBalance + Net.
type SettlementResult struct {
	Reels      ReelResult
	Multiplier int
	Payout     int
	Net        int
	Balance    int
}

// Transaction is an immutable ledger record, written exactly once per
// settled spin or balance adjustment. Reels is empty for adjustments.
type Transaction struct {
	ID        int
	UserID    int
	Reels     ReelResult
	Wager     int
	Payout    int
	Net       int
	CreatedAt time.Time
}

type TransactionPage struct {
	Page         int
	Limit        int
	TotalPages   int
	TotalCount   int
	Transactions []Transaction
}

type BonusResult struct {
	Balance    int
	GrantCount int
}

// Data is the aggregate a client polls between spins.
type Data struct {
	Balance         int
	BonusGrantCount int
}

type LeaderboardEntry struct {
	Rank       int
	UserID     int
	Name       string
	NetWin     int
	TotalSpins int
}
