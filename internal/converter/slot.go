package converter

import (
	"slots_backend/internal/api/dto/slot"
	"slots_backend/internal/model"
)

func ToSpinRequest(req slot.SpinRequest) model.SpinRequest {
	return model.SpinRequest{
		Wager: req.Wager,
	}
}

func ToSpinResponse(res model.SettlementResult) slot.SpinResponse {
	return slot.SpinResponse{
		Reels:      res.Reels.Strings(),
		Multiplier: res.Multiplier,
		Payout:     res.Payout,
		Net:        res.Net,
		Balance:    res.Balance,
	}
}

func ToBonusResponse(res model.BonusResult) slot.BonusResponse {
	return slot.BonusResponse{
		Balance:    res.Balance,
		GrantCount: res.GrantCount,
	}
}

func ToDataResponse(data model.Data) slot.DataResponse {
	return slot.DataResponse{
		Balance:         data.Balance,
		BonusGrantCount: data.BonusGrantCount,
	}
}

func ToHistoryResponse(page model.TransactionPage) slot.HistoryResponse {
	txs := make([]slot.TransactionResponse, len(page.Transactions))
	for i, tx := range page.Transactions {
		txs[i] = slot.TransactionResponse{
			ID:        tx.ID,
			Reels:     tx.Reels.Strings(),
			Wager:     tx.Wager,
			Payout:    tx.Payout,
			Net:       tx.Net,
			CreatedAt: tx.CreatedAt,
		}
	}
	return slot.HistoryResponse{
		Page:         page.Page,
		Limit:        page.Limit,
		TotalPages:   page.TotalPages,
		TotalCount:   page.TotalCount,
		Transactions: txs,
	}
}

func ToLeaderboardResponse(entries []model.LeaderboardEntry) []slot.LeaderboardEntryResponse {
	result := make([]slot.LeaderboardEntryResponse, len(entries))
	for i, e := range entries {
		result[i] = slot.LeaderboardEntryResponse{
			Rank:       e.Rank,
			UserID:     e.UserID,
			Name:       e.Name,
			NetWin:     e.NetWin,
			TotalSpins: e.TotalSpins,
		}
	}
	return result
}
