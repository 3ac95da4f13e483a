package bank

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	bankModel "github.com/ruwais/masraf/internal/model/bank"
	"github.com/ruwais/masraf/internal/service/session"
)

func setupRouter() (*chi.Mux, bankModel.Store) {
	store := bankModel.NewMemoryStore(bankModel.Seed())
	cache := session.NewCache(rand.New(rand.NewSource(11)))
	handler := New(store, cache)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r, store
}

func doRequest(t *testing.T, r *chi.Mux, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func decodeBody(t *testing.T, resp *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(resp.Body.Bytes(), out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
}

func TestAccounts(t *testing.T) {
	r, store := setupRouter()

	resp := doRequest(t, r, http.MethodGet, "/accounts", nil)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body struct {
		Accounts []bankModel.Account `json:"accounts"`
	}
	decodeBody(t, resp, &body)
	if len(body.Accounts) != len(store.Accounts()) {
		t.Fatalf("expected %d accounts, got %d", len(store.Accounts()), len(body.Accounts))
	}
}

func TestBeneficiariesFilteredByType(t *testing.T) {
	r, _ := setupRouter()

	resp := doRequest(t, r, http.MethodGet, "/beneficiaries?type=international", nil)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body struct {
		Beneficiaries []bankModel.Beneficiary `json:"beneficiaries"`
	}
	decodeBody(t, resp, &body)
	if len(body.Beneficiaries) == 0 {
		t.Fatal("expected international beneficiaries")
	}
	for _, b := range body.Beneficiaries {
		if b.Type != "international" {
			t.Fatalf("expected international only, got %q", b.Type)
		}
	}
}

func TestAddBeneficiary(t *testing.T) {
	r, store := setupRouter()
	before := len(store.Beneficiaries(""))

	resp := doRequest(t, r, http.MethodPost, "/beneficiaries", map[string]any{
		"name":     "Omar Khalid",
		"iban":     "SA4420000001234567891234",
		"bankName": "Alinma Bank",
		"type":     "national",
	})

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var body struct {
		Beneficiary bankModel.Beneficiary `json:"beneficiary"`
		Message     string                `json:"message"`
	}
	decodeBody(t, resp, &body)
	if body.Beneficiary.ID == "" {
		t.Fatal("expected assigned beneficiary id")
	}
	if body.Message != "Beneficiary added" {
		t.Fatalf("unexpected message %q", body.Message)
	}
	if len(store.Beneficiaries("")) != before+1 {
		t.Fatal("beneficiary not persisted")
	}
}

func TestAddBeneficiaryMissingName(t *testing.T) {
	r, _ := setupRouter()

	resp := doRequest(t, r, http.MethodPost, "/beneficiaries", map[string]any{
		"iban": "SA4420000001234567891234",
	})

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestProductsEnvelope(t *testing.T) {
	r, store := setupRouter()

	resp := doRequest(t, r, http.MethodGet, "/products?category=saving", nil)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body struct {
		Products   []bankModel.Product `json:"products"`
		TotalCount int                 `json:"totalCount"`
		Categories map[string]int      `json:"categories"`
	}
	decodeBody(t, resp, &body)
	if body.TotalCount != len(body.Products) {
		t.Fatalf("totalCount %d does not match %d products", body.TotalCount, len(body.Products))
	}
	for _, p := range body.Products {
		if p.Category != "saving" {
			t.Fatalf("expected saving products only, got %q", p.Category)
		}
	}
	catalogTotal := 0
	for _, count := range body.Categories {
		catalogTotal += count
	}
	if catalogTotal != len(store.Products("")) {
		t.Fatalf("category counts sum to %d, catalog has %d", catalogTotal, len(store.Products("")))
	}
}

func TestExchangeRates(t *testing.T) {
	r, store := setupRouter()

	resp := doRequest(t, r, http.MethodGet, "/exchange-rates", nil)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body bankModel.ExchangeRates
	decodeBody(t, resp, &body)
	if body.Base != store.Rates().Base {
		t.Fatalf("expected base %q, got %q", store.Rates().Base, body.Base)
	}
	if len(body.Rates) == 0 {
		t.Fatal("expected rates table")
	}
}

func TestSpendingBreakdownStablePerSession(t *testing.T) {
	r, _ := setupRouter()

	first := doRequest(t, r, http.MethodGet, "/spending/breakdown?sessionId=s1", nil)
	second := doRequest(t, r, http.MethodGet, "/spending/breakdown?sessionId=s1", nil)

	if first.Code != http.StatusOK || second.Code != http.StatusOK {
		t.Fatalf("expected 200s, got %d and %d", first.Code, second.Code)
	}
	if first.Body.String() != second.Body.String() {
		t.Fatal("breakdown changed between calls for the same session")
	}

	var body struct {
		Period        string                    `json:"period"`
		Breakdown     []bankModel.SpendingSlice `json:"breakdown"`
		TotalSpending float64                   `json:"totalSpending"`
		Currency      string                    `json:"currency"`
	}
	decodeBody(t, first, &body)
	if body.Period != "current_month" {
		t.Fatalf("expected default period, got %q", body.Period)
	}
	if body.Currency != "SAR" {
		t.Fatalf("expected SAR, got %q", body.Currency)
	}
	if len(body.Breakdown) != 8 {
		t.Fatalf("expected 8 categories, got %d", len(body.Breakdown))
	}
}

func TestUserProfile(t *testing.T) {
	r, _ := setupRouter()

	resp := doRequest(t, r, http.MethodGet, "/user/profile?sessionId=s1", nil)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body struct {
		Profile            bankModel.UserProfile `json:"profile"`
		EligibilitySummary []string              `json:"eligibilitySummary"`
	}
	decodeBody(t, resp, &body)
	if body.Profile.MonthlySalary <= 0 {
		t.Fatal("expected generated salary")
	}
	if len(body.EligibilitySummary) == 0 {
		t.Fatal("expected eligibility summary lines")
	}
}

func TestBillsEnvelope(t *testing.T) {
	r, _ := setupRouter()

	resp := doRequest(t, r, http.MethodGet, "/bills?status=pending", nil)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body struct {
		Bills       []bankModel.Bill `json:"bills"`
		Count       int              `json:"count"`
		TotalAmount float64          `json:"totalAmount"`
		Currency    string           `json:"currency"`
	}
	decodeBody(t, resp, &body)
	if body.Count != len(body.Bills) {
		t.Fatalf("count %d does not match %d bills", body.Count, len(body.Bills))
	}
	var want float64
	for _, b := range body.Bills {
		if b.Status != bankModel.BillPending {
			t.Fatalf("expected pending bills only, got %q", b.Status)
		}
		want += b.Amount
	}
	if body.TotalAmount != want {
		t.Fatalf("expected total %.2f, got %.2f", want, body.TotalAmount)
	}
}

func TestPayBill(t *testing.T) {
	r, store := setupRouter()
	bill := store.Bills(bankModel.BillPending, "")[0]

	resp := doRequest(t, r, http.MethodPost, "/bills/"+bill.ID+"/pay", nil)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var body struct {
		Success   bool           `json:"success"`
		Message   string         `json:"message"`
		Bill      bankModel.Bill `json:"bill"`
		Reference string         `json:"reference"`
	}
	decodeBody(t, resp, &body)
	if !body.Success {
		t.Fatal("expected success")
	}
	if body.Bill.Status != bankModel.BillPaid {
		t.Fatalf("expected paid status, got %q", body.Bill.Status)
	}
	if body.Reference == "" {
		t.Fatal("expected payment reference")
	}
}

func TestPayBillNotFound(t *testing.T) {
	r, _ := setupRouter()

	resp := doRequest(t, r, http.MethodPost, "/bills/no-such-bill/pay", nil)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestTransfersLimitAndTotal(t *testing.T) {
	r, store := setupRouter()
	total := len(store.Transfers(0, ""))

	resp := doRequest(t, r, http.MethodGet, "/transfers?limit=1", nil)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body struct {
		Transfers []bankModel.Transfer `json:"transfers"`
		Total     int                  `json:"total"`
	}
	decodeBody(t, resp, &body)
	if len(body.Transfers) != 1 {
		t.Fatalf("expected 1 transfer, got %d", len(body.Transfers))
	}
	if body.Total != total {
		t.Fatalf("expected total %d, got %d", total, body.Total)
	}
}

func TestTransferLifecycle(t *testing.T) {
	r, store := setupRouter()
	account := store.DefaultAccount()
	beneficiary := store.Beneficiaries("")[0]

	resp := doRequest(t, r, http.MethodPost, "/transfers", map[string]any{
		"fromAccountId": account.ID,
		"beneficiaryId": beneficiary.ID,
		"amount":        250.0,
	})

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var created struct {
		Transfer        bankModel.Transfer `json:"transfer"`
		FromAccountName string             `json:"fromAccountName"`
		BeneficiaryName string             `json:"beneficiaryName"`
		TransferType    string             `json:"transferType"`
		RequiresOTP     bool               `json:"requiresOtp"`
		Message         string             `json:"message"`
	}
	decodeBody(t, resp, &created)
	if created.Transfer.Status != bankModel.TransferPending {
		t.Fatalf("expected pending transfer, got %q", created.Transfer.Status)
	}
	if !created.RequiresOTP {
		t.Fatal("expected OTP requirement")
	}
	if created.TransferType != beneficiary.Type {
		t.Fatalf("expected type %q, got %q", beneficiary.Type, created.TransferType)
	}

	resp = doRequest(t, r, http.MethodPost, "/transfers/"+created.Transfer.ID+"/confirm", nil)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var confirmed struct {
		Success  bool               `json:"success"`
		Transfer bankModel.Transfer `json:"transfer"`
	}
	decodeBody(t, resp, &confirmed)
	if !confirmed.Success {
		t.Fatal("expected success")
	}
	if confirmed.Transfer.Status != bankModel.TransferCompleted {
		t.Fatalf("expected completed, got %q", confirmed.Transfer.Status)
	}

	// A second confirm must fail, the transfer is no longer pending.
	resp = doRequest(t, r, http.MethodPost, "/transfers/"+created.Transfer.ID+"/confirm", nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestCreateTransferInsufficientBalance(t *testing.T) {
	r, store := setupRouter()
	account := store.DefaultAccount()
	beneficiary := store.Beneficiaries("")[0]

	resp := doRequest(t, r, http.MethodPost, "/transfers", map[string]any{
		"fromAccountId": account.ID,
		"beneficiaryId": beneficiary.ID,
		"amount":        account.Balance + 1,
	})

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestCreateTransferUnknownAccount(t *testing.T) {
	r, store := setupRouter()
	beneficiary := store.Beneficiaries("")[0]

	resp := doRequest(t, r, http.MethodPost, "/transfers", map[string]any{
		"fromAccountId": "no-such-account",
		"beneficiaryId": beneficiary.ID,
		"amount":        100.0,
	})

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestCardsEnvelope(t *testing.T) {
	r, store := setupRouter()

	resp := doRequest(t, r, http.MethodGet, "/cards", nil)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body struct {
		Cards []bankModel.Card `json:"cards"`
		Count int              `json:"count"`
	}
	decodeBody(t, resp, &body)
	if body.Count != len(store.Cards("")) {
		t.Fatalf("expected %d cards, got %d", len(store.Cards("")), body.Count)
	}
}

func TestSubscriptionsMonthlyTotal(t *testing.T) {
	r, _ := setupRouter()

	resp := doRequest(t, r, http.MethodGet, "/subscriptions?active=true", nil)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body struct {
		Subscriptions []bankModel.Subscription `json:"subscriptions"`
		Count         int                      `json:"count"`
		MonthlyTotal  float64                  `json:"monthlyTotal"`
		Currency      string                   `json:"currency"`
	}
	decodeBody(t, resp, &body)
	if body.Count != len(body.Subscriptions) {
		t.Fatalf("count %d does not match %d subscriptions", body.Count, len(body.Subscriptions))
	}
	var want float64
	for _, sub := range body.Subscriptions {
		if !sub.IsActive {
			t.Fatalf("expected active subscriptions only")
		}
		if sub.Frequency == "monthly" {
			want += sub.Amount
		}
	}
	if body.MonthlyTotal != want {
		t.Fatalf("expected monthly total %.2f, got %.2f", want, body.MonthlyTotal)
	}
}
