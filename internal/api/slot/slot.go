package slot

import (
	"errors"
	"net/http"
	"strconv"

	dto "slots_backend/internal/api/dto/slot"
	"slots_backend/internal/common"
	"slots_backend/internal/converter"
	"slots_backend/internal/service"
	"slots_backend/pkg/req"
	"slots_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.SlotService
}

type Handler struct {
	serv service.SlotService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SpinRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.serv.Spin(r.Context(), converter.ToSpinRequest(payload))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResponse(*result))
}

func (h *Handler) Bonus(w http.ResponseWriter, r *http.Request) {
	result, err := h.serv.ClaimBonus(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBonusResponse(*result))
}

func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.DepositRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	balance, err := h.serv.Deposit(r.Context(), payload.Amount)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.DepositResponse{Balance: balance})
}

func (h *Handler) CheckData(w http.ResponseWriter, r *http.Request) {
	data, err := h.serv.CheckData(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToDataResponse(*data))
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 10)

	result, err := h.serv.History(r.Context(), page, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToHistoryResponse(*result))
}

func (h *Handler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	days := queryInt(r, "days", 7)

	entries, err := h.serv.Leaderboard(r.Context(), days)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToLeaderboardResponse(entries))
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

// writeServiceError maps the error taxonomy to response codes. InvalidInput
// and persistence failures intentionally surface as a generic 500.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrInvalidWager),
		errors.Is(err, common.ErrInvalidAmount),
		errors.Is(err, common.ErrInsufficientFunds):
		resp.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, common.ErrNotEligible):
		resp.WriteError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, common.ErrUnauthorized):
		resp.WriteError(w, http.StatusUnauthorized, err.Error())
	default:
		resp.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
