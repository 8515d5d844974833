package slot

import "time"

type SpinRequest struct {
	Wager int `json:"wager"` // Wager amount (positive integer)
}

type SpinResponse struct {
	Reels      []string `json:"reels"`      // 3 symbols
	Multiplier int      `json:"multiplier"` // Paytable multiplier
	Payout     int      `json:"payout"`     // wager * multiplier
	Net        int      `json:"net"`        // payout - wager
	Balance    int      `json:"balance"`    // Balance after the spin
}

type BonusResponse struct {
	Balance    int `json:"balance"`     // Balance after the grant
	GrantCount int `json:"grant_count"` // Grants issued so far
}

type DepositRequest struct {
	Amount int `json:"amount"` // Deposit amount
}

type DepositResponse struct {
	Balance int `json:"balance"` // Balance after the deposit
}

type DataResponse struct {
	Balance         int `json:"balance"`           // Current balance
	BonusGrantCount int `json:"bonus_grant_count"` // Bonus grants issued
}

type TransactionResponse struct {
	ID        int       `json:"id"`
	Reels     []string  `json:"reels"`
	Wager     int       `json:"wager"`
	Payout    int       `json:"payout"`
	Net       int       `json:"net"`
	CreatedAt time.Time `json:"created_at"`
}

type HistoryResponse struct {
	Page         int                   `json:"page"`
	Limit        int                   `json:"limit"`
	TotalPages   int                   `json:"total_pages"`
	TotalCount   int                   `json:"total_count"`
	Transactions []TransactionResponse `json:"transactions"`
}

type LeaderboardEntryResponse struct {
	Rank       int    `json:"rank"`
	UserID     int    `json:"user_id"`
	Name       string `json:"name"`
	NetWin     int    `json:"net_win"`
	TotalSpins int    `json:"total_spins"`
}
