package slot

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	dto "slots_backend/internal/api/dto/slot"
	"slots_backend/internal/common"
	"slots_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubService returns canned answers so the handler mapping can be tested
// in isolation.
type stubService struct {
	spinRes  *model.SettlementResult
	bonusRes *model.BonusResult
	err      error
}

func (s *stubService) Spin(context.Context, model.SpinRequest) (*model.SettlementResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.spinRes, nil
}

func (s *stubService) ClaimBonus(context.Context) (*model.BonusResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.bonusRes, nil
}

func (s *stubService) Deposit(context.Context, int) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	return 100, nil
}

func (s *stubService) CheckData(context.Context) (*model.Data, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &model.Data{Balance: 100}, nil
}

func (s *stubService) History(context.Context, int, int) (*model.TransactionPage, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &model.TransactionPage{Page: 1, Limit: 10}, nil
}

func (s *stubService) Leaderboard(context.Context, int) ([]model.LeaderboardEntry, error) {
	if s.err != nil {
		return nil, s.err
	}
	return nil, nil
}

func TestSpinHandler(t *testing.T) {
	h := NewHandler(HandlerDeps{Serv: &stubService{
		spinRes: &model.SettlementResult{
			Reels:      model.ReelResult{model.SymbolCherry, model.SymbolCherry, model.SymbolLemon},
			Multiplier: 1,
			Payout:     10,
			Net:        0,
			Balance:    1000,
		},
	}})

	req := httptest.NewRequest(http.MethodPost, "/slot/spin", strings.NewReader(`{"wager":10}`))
	rec := httptest.NewRecorder()
	h.Spin(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body dto.SpinResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"cherry", "cherry", "lemon"}, body.Reels)
	assert.Equal(t, 1, body.Multiplier)
	assert.Equal(t, 1000, body.Balance)
}

func TestSpinHandlerBadBody(t *testing.T) {
	h := NewHandler(HandlerDeps{Serv: &stubService{}})

	req := httptest.NewRequest(http.MethodPost, "/slot/spin", strings.NewReader(`{bad`))
	rec := httptest.NewRecorder()
	h.Spin(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServiceErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"invalid wager", common.ErrInvalidWager, http.StatusBadRequest},
		{"insufficient funds", common.ErrInsufficientFunds, http.StatusBadRequest},
		{"invalid amount", common.ErrInvalidAmount, http.StatusBadRequest},
		{"not eligible", common.ErrNotEligible, http.StatusForbidden},
		{"unauthorized", common.ErrUnauthorized, http.StatusUnauthorized},
		{"internal bug", common.ErrInvalidInput, http.StatusInternalServerError},
		{"persistence failure", common.ErrPersistenceFailure, http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHandler(HandlerDeps{Serv: &stubService{err: tc.err}})

			req := httptest.NewRequest(http.MethodPost, "/slot/spin", strings.NewReader(`{"wager":10}`))
			rec := httptest.NewRecorder()
			h.Spin(rec, req)

			assert.Equal(t, tc.wantCode, rec.Code)
		})
	}
}

func TestInternalErrorsStayGeneric(t *testing.T) {
	// Storage details must not leak to clients.
	h := NewHandler(HandlerDeps{Serv: &stubService{err: common.ErrPersistenceFailure}})

	req := httptest.NewRequest(http.MethodPost, "/slot/spin", strings.NewReader(`{"wager":10}`))
	rec := httptest.NewRecorder()
	h.Spin(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "persistence")
}

func TestBonusHandler(t *testing.T) {
	h := NewHandler(HandlerDeps{Serv: &stubService{
		bonusRes: &model.BonusResult{Balance: 100, GrantCount: 1},
	}})

	req := httptest.NewRequest(http.MethodPost, "/slot/bonus", nil)
	rec := httptest.NewRecorder()
	h.Bonus(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body dto.BonusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 100, body.Balance)
	assert.Equal(t, 1, body.GrantCount)
}

func TestBonusHandlerDenied(t *testing.T) {
	h := NewHandler(HandlerDeps{Serv: &stubService{err: common.ErrNotEligible}})

	req := httptest.NewRequest(http.MethodPost, "/slot/bonus", nil)
	rec := httptest.NewRecorder()
	h.Bonus(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestQueryInt(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/slot/history?page=3&limit=abc", nil)
	assert.Equal(t, 3, queryInt(req, "page", 1))
	assert.Equal(t, 10, queryInt(req, "limit", 10))
	assert.Equal(t, 7, queryInt(req, "days", 7))
}
