package bank

// Reference entities served by the mock API and attached to chat responses.
// All monetary amounts are SAR unless a Currency field says otherwise.

// Account is a customer bank account.
type Account struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	NameAr        string  `json:"nameAr"`
	Type          string  `json:"type"`
	AccountNumber string  `json:"accountNumber"`
	IBAN          string  `json:"iban"`
	Balance       float64 `json:"balance"`
	Currency      string  `json:"currency"`
	IsDefault     bool    `json:"isDefault"`
}

// Beneficiary is a saved transfer recipient, national or international.
type Beneficiary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	NameAr      string `json:"nameAr"`
	Nickname    string `json:"nickname,omitempty"`
	BankCode    string `json:"bankCode"`
	BankName    string `json:"bankName"`
	BankNameAr  string `json:"bankNameAr"`
	IBAN        string `json:"iban"`
	AccountType string `json:"accountType"`
	Type        string `json:"type"`
	Country     string `json:"country,omitempty"`
	CountryAr   string `json:"countryAr,omitempty"`
	SwiftCode   string `json:"swiftCode,omitempty"`
	CreatedAt   string `json:"createdAt"`
}

const (
	BeneficiaryNational      = "national"
	BeneficiaryInternational = "international"
)

// CardLimits holds the spending limits of a card.
type CardLimits struct {
	DailyLimit        float64 `json:"dailyLimit"`
	TransactionLimit  float64 `json:"transactionLimit"`
	CurrentDailyUsage float64 `json:"currentDailyUsage"`
}

// CardSettings holds the toggleable card channels.
type CardSettings struct {
	InternationalTransactions bool `json:"internationalTransactions"`
	OnlineTransactions        bool `json:"onlineTransactions"`
	ContactlessPayments       bool `json:"contactlessPayments"`
}

// Card is a debit or credit card linked to an account.
type Card struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	NameAr          string       `json:"nameAr"`
	Type            string       `json:"type"`
	LastFourDigits  string       `json:"lastFourDigits"`
	CardNumber      string       `json:"cardNumber"`
	ExpiryDate      string       `json:"expiryDate"`
	Status          string       `json:"status"`
	LinkedAccountID string       `json:"linkedAccountId"`
	Limits          CardLimits   `json:"limits"`
	Settings        CardSettings `json:"settings"`
	CardNetwork     string       `json:"cardNetwork"`
}

// Bill is a payable utility or credit-card bill.
type Bill struct {
	ID             string  `json:"id"`
	Type           string  `json:"type"`
	ProviderName   string  `json:"providerName"`
	ProviderNameAr string  `json:"providerNameAr"`
	AccountNumber  string  `json:"accountNumber"`
	Amount         float64 `json:"amount"`
	DueDate        string  `json:"dueDate"`
	Status         string  `json:"status"`
	IsPriority     bool    `json:"isPriority"`
}

const (
	BillPending = "pending"
	BillPaid    = "paid"
	BillOverdue = "overdue"
)

// Transfer is a money transfer between an account and a beneficiary.
type Transfer struct {
	ID              string  `json:"id"`
	FromAccountID   string  `json:"fromAccountId"`
	BeneficiaryID   string  `json:"beneficiaryId"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
	ConvertedAmount float64 `json:"convertedAmount,omitempty"`
	ExchangeRate    float64 `json:"exchangeRate,omitempty"`
	Purpose         string  `json:"purpose"`
	Reference       string  `json:"reference,omitempty"`
	Type            string  `json:"type"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"createdAt"`
	CompletedAt     string  `json:"completedAt,omitempty"`
}

const (
	TransferPending   = "pending"
	TransferCompleted = "completed"
)

// Subscription is a recurring merchant charge.
type Subscription struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	NameAr          string  `json:"nameAr"`
	MerchantName    string  `json:"merchantName"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
	Frequency       string  `json:"frequency"`
	NextBillingDate string  `json:"nextBillingDate"`
	Category        string  `json:"category"`
	IsActive        bool    `json:"isActive"`
}

// Product is a bank product from the catalog. TargetConditions tags which
// customer situations the product is recommended for ("all" matches any).
type Product struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	NameAr           string   `json:"nameAr"`
	Category         string   `json:"category"`
	Benefit          string   `json:"benefit"`
	BenefitAr        string   `json:"benefitAr"`
	CTAQuestion      string   `json:"ctaQuestion,omitempty"`
	CTAQuestionAr    string   `json:"ctaQuestionAr,omitempty"`
	IsPromoted       bool     `json:"isPromoted"`
	MinSalary        float64  `json:"minSalary,omitempty"`
	MinAmount        float64  `json:"minAmount,omitempty"`
	MaxAmount        float64  `json:"maxAmount,omitempty"`
	TargetConditions []string `json:"targetConditions"`
}

// Catalog categories.
const (
	CategoryLending    = "lending"
	CategorySaving     = "saving"
	CategoryCreditCard = "credit_card"
	CategoryService    = "service"
)

// Target condition tags used by the recommendation filter.
const (
	TargetAll                    = "all"
	TargetHighSpending           = "high_spending"
	TargetHighDiningSpending     = "high_dining_spending"
	TargetLowSavings             = "low_savings"
	TargetLowSavingsRate         = "low_savings_rate"
	TargetInternationalTransfers = "international_transfers"
	TargetHasBills               = "has_bills"
	TargetHasSubscriptions       = "has_subscriptions"
	TargetHighBalance            = "high_balance"
)

// SpendingSlice is one category row of a monthly spending breakdown.
type SpendingSlice struct {
	CategoryID       string  `json:"categoryId"`
	CategoryName     string  `json:"categoryName"`
	CategoryNameAr   string  `json:"categoryNameAr"`
	Amount           float64 `json:"amount"`
	Percentage       float64 `json:"percentage"`
	TransactionCount int     `json:"transactionCount"`
	Change           float64 `json:"change"`
}

// SpendingReport is a full breakdown sorted by amount descending.
type SpendingReport struct {
	Breakdown     []SpendingSlice `json:"breakdown"`
	TotalSpending float64         `json:"totalSpending"`
}

// UserProfile is the randomized eligibility profile generated per session.
type UserProfile struct {
	Age                     int     `json:"age"`
	Nationality             string  `json:"nationality"`
	IsEmployed              bool    `json:"isEmployed"`
	EmploymentType          string  `json:"employmentType"`
	MonthlySalary           float64 `json:"monthlySalary"`
	EmploymentDurationMonth int     `json:"employmentDurationMonths"`
	SalaryTransferredToBank bool    `json:"salaryTransferredToBank"`
	AccountAgeMonths        int     `json:"accountAgeMonths"`
	HasSavingsAccount       bool    `json:"hasSavingsAccount"`
	HasCurrentAccount       bool    `json:"hasCurrentAccount"`
	AverageMonthlyBalance   float64 `json:"averageMonthlyBalance"`
	CreditScore             string  `json:"creditScore"`
	HasExistingLoans        bool    `json:"hasExistingLoans"`
	ExistingLoanAmount      float64 `json:"existingLoanAmount"`
	DebtToIncomeRatio       float64 `json:"debtToIncomeRatio"`
	SavingsRate             float64 `json:"savingsRate"`
}

// ExchangeRates is the SAR-based rate table: rates[code] is the amount of
// code obtained for 1 unit of the base currency.
type ExchangeRates struct {
	Base        string             `json:"base"`
	Rates       map[string]float64 `json:"rates"`
	LastUpdated string             `json:"lastUpdated"`
}
