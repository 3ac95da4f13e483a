// Package intent classifies free-text banking utterances into a fixed set
// of intents. Matching is deterministic: an ordered cascade of bilingual
// (English/Arabic) keyword and regex rules, first match wins.
package intent

// Kind is the classified intent category.
type Kind string

const (
	KindProductApplication   Kind = "product_application"
	KindProductDetails       Kind = "product_details"
	KindAmountReply          Kind = "amount_reply"
	KindPercentReply         Kind = "percent_reply"
	KindConfirmation         Kind = "confirmation"
	KindAccountSelection     Kind = "account_selection"
	KindAccountBalance       Kind = "account_balance"
	KindBeneficiarySelection Kind = "beneficiary_selection"
	KindBeneficiaryQuery     Kind = "beneficiary_query"
	KindCardQuery            Kind = "card_query"
	KindBillQuery            Kind = "bill_query"
	KindSpendingQuery        Kind = "spending_query"
	KindSubscriptionQuery    Kind = "subscription_query"
	KindTransferQuery        Kind = "transfer_query"
	KindGreeting             Kind = "greeting"
	KindSupportQuery         Kind = "support_query"
)

// Product is the catalog product a product intent refers to.
type Product string

const (
	ProductSalaryLinkedSavings Product = "salary_linked_savings"
	ProductAutomaticSavings    Product = "automatic_savings"
	ProductGoalSavings         Product = "goal_savings"
	ProductCashbackCard        Product = "cashback_card"
	ProductTravelCard          Product = "travel_card"
	ProductPersonalLoan        Product = "personal_loan"
	ProductAutopay             Product = "autopay"
	ProductRoundUpSavings      Product = "roundup_savings"
	ProductVirtualCard         Product = "virtual_card"
	ProductSubscriptionManager Product = "subscription_manager"
	ProductHomeFinancing       Product = "home_financing"
	ProductCarFinancing        Product = "car_financing"
	ProductIntlTransferPlus    Product = "international_transfer_plus"
	ProductDiningRewards       Product = "dining_rewards"
	ProductZakatCalculator     Product = "zakat_calculator"
	ProductGeneric             Product = "generic"
)

// Match is a classified utterance with the parameters captured by the
// matching rule. Only the fields relevant to Kind are set.
type Match struct {
	Kind            Kind
	Product         Product // product application/details
	Amount          string  // bare amount reply, digits only
	Percent         string  // percentage reply, digits only
	AccountName     string  // account selection, English display name
	AccountNameAr   string  // account selection, Arabic display name
	BeneficiaryName string  // beneficiary selection, as captured
}
