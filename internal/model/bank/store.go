package bank

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store exposes reference data for the chat engine and the REST handlers.
type Store interface {
	Accounts() []Account
	Account(id string) (Account, bool)
	DefaultAccount() Account
	Beneficiaries(beneficiaryType string) []Beneficiary
	FindBeneficiaryByName(name string) (Beneficiary, bool)
	AddBeneficiary(b Beneficiary) Beneficiary
	Bills(status, billType string) []Bill
	PayBill(id string) (Bill, string, error)
	Transfers(limit int, status string) []Transfer
	CreateTransfer(t Transfer) (Transfer, Account, Beneficiary, error)
	ConfirmTransfer(id string) (Transfer, error)
	Cards(cardType string) []Card
	Subscriptions(active *bool) []Subscription
	Products(category string) []Product
	Rates() ExchangeRates
}

// MemoryStore implements Store over the seed dataset. Mutating operations
// (new beneficiaries, bill payment, the transfer lifecycle) are guarded by a
// single mutex; everything else is a copy-out read.
type MemoryStore struct {
	mu               sync.RWMutex
	accounts         []Account
	beneficiaries    []Beneficiary
	cards            []Card
	bills            []Bill
	transfers        []Transfer
	pendingTransfers map[string]Transfer
	subscriptions    []Subscription
	products         []Product
	rates            ExchangeRates
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied dataset.
func NewMemoryStore(data SeedData) *MemoryStore {
	return &MemoryStore{
		accounts:         append([]Account(nil), data.Accounts...),
		beneficiaries:    append([]Beneficiary(nil), data.Beneficiaries...),
		cards:            append([]Card(nil), data.Cards...),
		bills:            append([]Bill(nil), data.Bills...),
		transfers:        append([]Transfer(nil), data.Transfers...),
		pendingTransfers: make(map[string]Transfer),
		subscriptions:    append([]Subscription(nil), data.Subscriptions...),
		products:         append([]Product(nil), data.Products...),
		rates:            data.Rates,
	}
}

func (s *MemoryStore) Accounts() []Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Account(nil), s.accounts...)
}

func (s *MemoryStore) Account(id string) (Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, acc := range s.accounts {
		if acc.ID == id {
			return acc, true
		}
	}
	return Account{}, false
}

// DefaultAccount returns the customer's primary account.
func (s *MemoryStore) DefaultAccount() Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, acc := range s.accounts {
		if acc.IsDefault {
			return acc
		}
	}
	return s.accounts[0]
}

// Beneficiaries returns saved recipients, optionally filtered by
// "national" or "international".
func (s *MemoryStore) Beneficiaries(beneficiaryType string) []Beneficiary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if beneficiaryType != BeneficiaryNational && beneficiaryType != BeneficiaryInternational {
		return append([]Beneficiary(nil), s.beneficiaries...)
	}
	out := make([]Beneficiary, 0, len(s.beneficiaries))
	for _, b := range s.beneficiaries {
		if b.Type == beneficiaryType {
			out = append(out, b)
		}
	}
	return out
}

// FindBeneficiaryByName matches on the English name (case-insensitive) or
// the Arabic name.
func (s *MemoryStore) FindBeneficiaryByName(name string) (Beneficiary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.beneficiaries {
		if strings.EqualFold(b.Name, name) || b.NameAr == name {
			return b, true
		}
	}
	return Beneficiary{}, false
}

// AddBeneficiary stores a new recipient, assigning id and creation time.
func (s *MemoryStore) AddBeneficiary(b Beneficiary) Beneficiary {
	s.mu.Lock()
	defer s.mu.Unlock()
	b.ID = "ben-" + uuid.NewString()
	if b.NameAr == "" {
		b.NameAr = b.Name
	}
	b.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	s.beneficiaries = append(s.beneficiaries, b)
	return b
}

// Bills returns bills filtered by status ("all" or empty disables the
// filter) and by type.
func (s *MemoryStore) Bills(status, billType string) []Bill {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Bill, 0, len(s.bills))
	for _, b := range s.bills {
		if status != "" && status != "all" && b.Status != status {
			continue
		}
		if billType != "" && b.Type != billType {
			continue
		}
		out = append(out, b)
	}
	return out
}

// PayBill marks a bill paid and returns it with a payment reference.
func (s *MemoryStore) PayBill(id string) (Bill, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.bills {
		if b.ID == id {
			s.bills[i].Status = BillPaid
			reference := "BP-" + uuid.NewString()[:8]
			return s.bills[i], reference, nil
		}
	}
	return Bill{}, "", ErrBillNotFound
}

// Transfers returns the most recent transfers, newest first as seeded.
func (s *MemoryStore) Transfers(limit int, status string) []Transfer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Transfer, 0, len(s.transfers))
	for _, t := range s.transfers {
		if status != "" && status != "all" && t.Status != status {
			continue
		}
		out = append(out, t)
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// CreateTransfer validates the request against reference data and stores the
// transfer as pending OTP confirmation. The funding account and beneficiary
// are returned for the preview payload.
func (s *MemoryStore) CreateTransfer(t Transfer) (Transfer, Account, Beneficiary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var account *Account
	for i := range s.accounts {
		if s.accounts[i].ID == t.FromAccountID {
			account = &s.accounts[i]
			break
		}
	}
	if account == nil {
		return Transfer{}, Account{}, Beneficiary{}, ErrAccountNotFound
	}

	var beneficiary *Beneficiary
	for i := range s.beneficiaries {
		if s.beneficiaries[i].ID == t.BeneficiaryID {
			beneficiary = &s.beneficiaries[i]
			break
		}
	}
	if beneficiary == nil {
		return Transfer{}, Account{}, Beneficiary{}, ErrBeneficiaryNotFound
	}

	if account.Balance < t.Amount {
		return Transfer{}, Account{}, Beneficiary{}, ErrInsufficientBalance
	}

	t.ID = "txn-" + uuid.NewString()
	if t.Currency == "" {
		t.Currency = "SAR"
	}
	if t.Purpose == "" {
		t.Purpose = "other"
	}
	if t.Type == "" {
		t.Type = beneficiary.Type
	}
	t.Status = TransferPending
	t.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	s.pendingTransfers[t.ID] = t

	return t, *account, *beneficiary, nil
}

// ConfirmTransfer completes a pending transfer. Confirming an unknown or
// already-processed id fails with ErrTransferNotFound.
func (s *MemoryStore) ConfirmTransfer(id string) (Transfer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.pendingTransfers[id]
	if !ok {
		return Transfer{}, ErrTransferNotFound
	}
	t.Status = TransferCompleted
	t.CompletedAt = time.Now().UTC().Format(time.RFC3339)
	s.transfers = append(s.transfers, t)
	delete(s.pendingTransfers, id)
	return t, nil
}

func (s *MemoryStore) Cards(cardType string) []Card {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if cardType == "" {
		return append([]Card(nil), s.cards...)
	}
	out := make([]Card, 0, len(s.cards))
	for _, c := range s.cards {
		if c.Type == cardType {
			out = append(out, c)
		}
	}
	return out
}

// Subscriptions returns subscriptions, optionally filtered by active state.
func (s *MemoryStore) Subscriptions(active *bool) []Subscription {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Subscription, 0, len(s.subscriptions))
	for _, sub := range s.subscriptions {
		if active != nil && sub.IsActive != *active {
			continue
		}
		out = append(out, sub)
	}
	return out
}

func (s *MemoryStore) Products(category string) []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if category == "" || category == "all" {
		return append([]Product(nil), s.products...)
	}
	out := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

func (s *MemoryStore) Rates() ExchangeRates {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rates := make(map[string]float64, len(s.rates.Rates))
	for code, rate := range s.rates.Rates {
		rates[code] = rate
	}
	return ExchangeRates{Base: s.rates.Base, Rates: rates, LastUpdated: s.rates.LastUpdated}
}
