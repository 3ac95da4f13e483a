// Package bank exposes the reference-data REST endpoints.
package bank

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	bankModel "github.com/ruwais/masraf/internal/model/bank"
	"github.com/ruwais/masraf/internal/service/session"
	"github.com/ruwais/masraf/pkg/utils"
)

// Handler serves accounts, beneficiaries, products, rates, spending,
// profile, bills, transfers, cards and subscriptions. Response envelopes
// follow the wire format the chat client consumes.
type Handler struct {
	store bankModel.Store
	cache *session.Cache
}

func New(store bankModel.Store, cache *session.Cache) *Handler {
	return &Handler{store: store, cache: cache}
}

// RegisterRoutes mounts the reference-data routes under the given router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/accounts", h.handleAccounts)
	r.Get("/beneficiaries", h.handleBeneficiaries)
	r.Post("/beneficiaries", h.handleAddBeneficiary)
	r.Get("/products", h.handleProducts)
	r.Get("/exchange-rates", h.handleExchangeRates)
	r.Get("/spending/breakdown", h.handleSpendingBreakdown)
	r.Get("/user/profile", h.handleUserProfile)
	r.Get("/bills", h.handleBills)
	r.Post("/bills/{billID}/pay", h.handlePayBill)
	r.Get("/transfers", h.handleTransfers)
	r.Post("/transfers", h.handleCreateTransfer)
	r.Post("/transfers/{transferID}/confirm", h.handleConfirmTransfer)
	r.Get("/cards", h.handleCards)
	r.Get("/subscriptions", h.handleSubscriptions)
}

func (h *Handler) handleAccounts(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"accounts": h.store.Accounts(),
	})
}

func (h *Handler) handleBeneficiaries(w http.ResponseWriter, r *http.Request) {
	beneficiaries := h.store.Beneficiaries(r.URL.Query().Get("type"))
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"beneficiaries": beneficiaries,
	})
}

func (h *Handler) handleAddBeneficiary(w http.ResponseWriter, r *http.Request) {
	var payload bankModel.Beneficiary
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.Name == "" {
		utils.RespondError(w, http.StatusBadRequest, "name is required")
		return
	}

	added := h.store.AddBeneficiary(payload)
	utils.RespondJSON(w, http.StatusCreated, map[string]any{
		"beneficiary": added,
		"message":     "Beneficiary added",
	})
}

func (h *Handler) handleProducts(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	products := h.store.Products(category)

	counts := map[string]int{"lending": 0, "saving": 0, "credit_card": 0}
	for _, p := range h.store.Products("") {
		counts[p.Category]++
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"products":   products,
		"totalCount": len(products),
		"categories": counts,
	})
}

func (h *Handler) handleExchangeRates(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.store.Rates())
}

func (h *Handler) handleSpendingBreakdown(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("sessionId")
	period := r.URL.Query().Get("period")
	if period == "" {
		period = "current_month"
	}

	report := h.cache.Spending(sessionID)
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"period":        period,
		"breakdown":     report.Breakdown,
		"totalSpending": report.TotalSpending,
		"currency":      "SAR",
	})
}

func (h *Handler) handleUserProfile(w http.ResponseWriter, r *http.Request) {
	profile := h.cache.Profile(r.URL.Query().Get("sessionId"))
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"profile":            profile,
		"eligibilitySummary": session.EligibilitySummary(profile),
	})
}

func (h *Handler) handleBills(w http.ResponseWriter, r *http.Request) {
	bills := h.store.Bills(r.URL.Query().Get("status"), r.URL.Query().Get("type"))

	var total float64
	for _, b := range bills {
		total += b.Amount
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"bills":       bills,
		"count":       len(bills),
		"totalAmount": total,
		"currency":    "SAR",
	})
}

func (h *Handler) handlePayBill(w http.ResponseWriter, r *http.Request) {
	bill, reference, err := h.store.PayBill(chi.URLParam(r, "billID"))
	if err != nil {
		if errors.Is(err, bankModel.ErrBillNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Bill not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"message":   "Bill paid successfully",
		"bill":      bill,
		"reference": reference,
	})
}

func (h *Handler) handleTransfers(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			utils.RespondError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	// Total reflects the filter before the limit is applied.
	all := h.store.Transfers(0, r.URL.Query().Get("status"))
	limited := all
	if len(limited) > limit {
		limited = limited[:limit]
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"transfers": limited,
		"total":     len(all),
	})
}

func (h *Handler) handleCreateTransfer(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		FromAccountID string  `json:"fromAccountId"`
		BeneficiaryID string  `json:"beneficiaryId"`
		Amount        float64 `json:"amount"`
		Currency      string  `json:"currency"`
		Purpose       string  `json:"purpose"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.Amount <= 0 {
		utils.RespondError(w, http.StatusBadRequest, "amount must be positive")
		return
	}

	transfer, account, beneficiary, err := h.store.CreateTransfer(bankModel.Transfer{
		FromAccountID: payload.FromAccountID,
		BeneficiaryID: payload.BeneficiaryID,
		Amount:        payload.Amount,
		Currency:      payload.Currency,
		Purpose:       payload.Purpose,
	})
	if err != nil {
		switch {
		case errors.Is(err, bankModel.ErrAccountNotFound):
			utils.RespondError(w, http.StatusNotFound, "Account not found")
		case errors.Is(err, bankModel.ErrBeneficiaryNotFound):
			utils.RespondError(w, http.StatusNotFound, "Beneficiary not found")
		case errors.Is(err, bankModel.ErrInsufficientBalance):
			utils.RespondError(w, http.StatusBadRequest, "Insufficient balance")
		default:
			utils.RespondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]any{
		"transfer":        transfer,
		"fromAccountName": account.Name,
		"beneficiaryName": beneficiary.Name,
		"transferType":    beneficiary.Type,
		"requiresOtp":     true,
		"message":         "Transfer created. Please confirm with OTP.",
	})
}

func (h *Handler) handleConfirmTransfer(w http.ResponseWriter, r *http.Request) {
	transfer, err := h.store.ConfirmTransfer(chi.URLParam(r, "transferID"))
	if err != nil {
		if errors.Is(err, bankModel.ErrTransferNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Transfer not found or already processed")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"transfer": transfer,
		"message":  "Transfer completed successfully",
	})
}

func (h *Handler) handleCards(w http.ResponseWriter, r *http.Request) {
	cards := h.store.Cards(r.URL.Query().Get("type"))
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"cards": cards,
		"count": len(cards),
	})
}

func (h *Handler) handleSubscriptions(w http.ResponseWriter, r *http.Request) {
	var active *bool
	switch r.URL.Query().Get("active") {
	case "true":
		v := true
		active = &v
	case "false":
		v := false
		active = &v
	}

	subscriptions := h.store.Subscriptions(active)

	var monthlyTotal float64
	for _, sub := range subscriptions {
		if sub.IsActive && sub.Frequency == "monthly" {
			monthlyTotal += sub.Amount
		}
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"subscriptions": subscriptions,
		"count":         len(subscriptions),
		"monthlyTotal":  monthlyTotal,
		"currency":      "SAR",
	})
}
