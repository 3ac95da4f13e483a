package chat

import "github.com/ruwais/masraf/internal/model/bank"

// UIDirectives tells the rendering layer which structured blocks to show.
// Exactly the fields relevant to the detected intent are populated; the
// rest stay false/nil. This struct is the contract between the routing
// engine and the client UI, so field names follow the wire format.
type UIDirectives struct {
	ShowAccounts          bool                `json:"showAccounts"`
	ShowBeneficiaries     bool                `json:"showBeneficiaries"`
	ShowCards             bool                `json:"showCards"`
	ShowBills             bool                `json:"showBills"`
	ShowSpendingBreakdown bool                `json:"showSpendingBreakdown"`
	ShowSubscriptions     bool                `json:"showSubscriptions"`
	ShowRecommendations   bool                `json:"showRecommendations"`
	TransferPreview       *TransferPreview    `json:"transferPreview"`
	TransferSuccess       *TransferSuccess    `json:"transferSuccess"`
	CardPreview           *CardPreview        `json:"cardPreview,omitempty"`
	CardActionSuccess     *CardActionSuccess  `json:"cardActionSuccess,omitempty"`
	BillPaymentPreview    *BillPaymentPreview `json:"billPaymentPreview,omitempty"`
	BillPaymentSuccess    *BillPaymentSuccess `json:"billPaymentSuccess,omitempty"`
	TicketCreated         *TicketCreated      `json:"ticketCreated,omitempty"`
	ExchangeRate          *ExchangeRateInfo   `json:"exchangeRate"`
	RequestOTP            bool                `json:"requestOtp"`
}

// TransferPreview is shown before the user confirms a transfer.
type TransferPreview struct {
	FromAccountID   string  `json:"fromAccountId"`
	FromAccountName string  `json:"fromAccountName,omitempty"`
	BeneficiaryID   string  `json:"beneficiaryId"`
	BeneficiaryName string  `json:"beneficiaryName,omitempty"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
	Type            string  `json:"type,omitempty"`
	ConvertedAmount float64 `json:"convertedAmount,omitempty"`
	ExchangeRate    float64 `json:"exchangeRate,omitempty"`
	Fees            float64 `json:"fees,omitempty"`
	TotalAmount     float64 `json:"totalAmount,omitempty"`
}

// TransferSuccess confirms a completed transfer.
type TransferSuccess struct {
	TransactionID   string  `json:"transactionId"`
	Amount          float64 `json:"amount,omitempty"`
	Currency        string  `json:"currency,omitempty"`
	BeneficiaryName string  `json:"beneficiaryName,omitempty"`
}

// CardPreview is shown before a card action is confirmed.
type CardPreview struct {
	CardID              string  `json:"cardId"`
	CardName            string  `json:"cardName,omitempty"`
	Action              string  `json:"action"`
	NewDailyLimit       float64 `json:"newDailyLimit,omitempty"`
	NewTransactionLimit float64 `json:"newTransactionLimit,omitempty"`
}

// CardActionSuccess confirms a performed card action.
type CardActionSuccess struct {
	CardID    string `json:"cardId"`
	CardName  string `json:"cardName,omitempty"`
	Action    string `json:"action"`
	Message   string `json:"message"`
	MessageAr string `json:"messageAr"`
}

// BillPaymentPreview is shown before a bill payment is confirmed.
type BillPaymentPreview struct {
	BillID          string  `json:"billId"`
	ProviderName    string  `json:"providerName,omitempty"`
	FromAccountID   string  `json:"fromAccountId"`
	FromAccountName string  `json:"fromAccountName,omitempty"`
	Amount          float64 `json:"amount"`
	DueDate         string  `json:"dueDate"`
}

// BillPaymentSuccess confirms a paid bill.
type BillPaymentSuccess struct {
	BillID       string  `json:"billId"`
	ProviderName string  `json:"providerName,omitempty"`
	Amount       float64 `json:"amount"`
	PaidAt       string  `json:"paidAt"`
	Reference    string  `json:"reference"`
}

// TicketCreated confirms a new support ticket.
type TicketCreated struct {
	TicketID                string `json:"ticketId"`
	TicketNumber            string `json:"ticketNumber"`
	EstimatedResolutionTime string `json:"estimatedResolutionTime"`
}

// ExchangeRateInfo carries a resolved currency pair for the rate block.
type ExchangeRateInfo struct {
	From string  `json:"from"`
	To   string  `json:"to"`
	Rate float64 `json:"rate"`
}

// StructuredResponse is the full contract object the engine returns:
// localized message text, UI directives, and whatever entity data the
// directives reference. Invariant: a show-flag set true implies the
// matching entity array is attached and non-empty once enrichment ran.
type StructuredResponse struct {
	Message                string               `json:"message"`
	SessionID              string               `json:"sessionId,omitempty"`
	UI                     UIDirectives         `json:"ui"`
	Accounts               []bank.Account       `json:"accounts,omitempty"`
	Beneficiaries          []bank.Beneficiary   `json:"beneficiaries,omitempty"`
	Cards                  []bank.Card          `json:"cards,omitempty"`
	Bills                  []bank.Bill          `json:"bills,omitempty"`
	SpendingBreakdown      []bank.SpendingSlice `json:"spendingBreakdown,omitempty"`
	Subscriptions          []bank.Subscription  `json:"subscriptions,omitempty"`
	Recommendations        []bank.Product       `json:"recommendations,omitempty"`
	RecommendationsIntro   string               `json:"recommendationsIntro,omitempty"`
	RecommendationsIntroAr string               `json:"recommendationsIntroAr,omitempty"`
}
