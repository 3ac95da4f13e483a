package intent

import (
	"regexp"
	"strings"
)

// The cascade ports the web client's mock-response routing. Order is a
// behavioral contract: account selection must run before balance queries so
// that "Main Account" selects rather than lists, amount replies must not
// swallow transfer requests, and so on. Tests pin the ordering.

type rule struct {
	name   string
	detect func(msg string) (Match, bool)
}

// Rules returns the evaluation order of the cascade, for inspection.
func Rules() []string {
	names := make([]string, len(cascade))
	for i, r := range cascade {
		names[i] = r.name
	}
	return names
}

// Detect classifies a message. The second return is false when no rule
// matched and the utterance must be handled elsewhere.
func Detect(message string) (Match, bool) {
	msg := strings.ToLower(strings.TrimSpace(message))
	for _, r := range cascade {
		if m, ok := r.detect(msg); ok {
			return m, true
		}
	}
	return Match{}, false
}

var cascade = []rule{
	{name: "product_application", detect: detectProductApplication},
	{name: "product_details", detect: detectProductDetails},
	{name: "amount_reply", detect: detectAmountReply},
	{name: "percent_reply", detect: detectPercentReply},
	{name: "confirmation", detect: detectConfirmation},
	{name: "account_selection", detect: detectAccountSelection},
	{name: "account_balance", detect: detectAccountBalance},
	{name: "beneficiary_selection", detect: detectBeneficiarySelection},
	{name: "beneficiary_query", detect: detectBeneficiaryQuery},
	{name: "card_query", detect: detectCardQuery},
	{name: "bill_query", detect: detectBillQuery},
	{name: "spending_query", detect: detectSpendingQuery},
	{name: "subscription_query", detect: detectSubscriptionQuery},
	{name: "transfer_query", detect: detectTransferQuery},
	{name: "greeting", detect: detectGreeting},
	{name: "support_query", detect: detectSupportQuery},
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

// productKeywords dispatches a product mention. Ordered: more specific
// products first ("personal loan" before the generic financing words).
var productKeywords = []struct {
	product  Product
	keywords []string
}{
	{ProductSalaryLinkedSavings, []string{"salary-linked", "salary", "مرتبط بالراتب", "ادخار مرتبط"}},
	{ProductAutomaticSavings, []string{"automatic saving", "auto saving", "ادخار تلقائي", "خطة ادخار تلقائية"}},
	{ProductGoalSavings, []string{"goal-based", "goal", "هدف", "ادخار قائم على الأهداف"}},
	{ProductCashbackCard, []string{"cashback", "premium card", "استرداد نقدي", "بطاقة مميزة"}},
	{ProductTravelCard, []string{"travel", "miles", "سفر", "أميال"}},
	{ProductPersonalLoan, []string{"personal loan", "loan", "قرض", "تمويل شخصي"}},
	{ProductAutopay, []string{"autopay", "auto pay", "bill payment", "دفع تلقائي", "دفع الفواتير"}},
	{ProductRoundUpSavings, []string{"round-up", "round", "تقريب", "ادخار التقريب"}},
	{ProductVirtualCard, []string{"virtual card", "virtual", "افتراضية", "بطاقة افتراضية"}},
	{ProductSubscriptionManager, []string{"subscription", "manager", "اشتراك", "مدير الاشتراكات"}},
	{ProductHomeFinancing, []string{"home", "house", "mortgage", "منزل", "عقار", "تمويل عقاري"}},
	{ProductCarFinancing, []string{"car", "vehicle", "auto", "سيارة", "تمويل السيارات"}},
	{ProductIntlTransferPlus, []string{"international", "transfer plus", "دولي", "التحويل الدولي"}},
	{ProductDiningRewards, []string{"dining", "restaurant", "مطاعم", "مكافآت المطاعم"}},
	{ProductZakatCalculator, []string{"zakat", "زكاة", "حاسبة الزكاة"}},
}

func matchProduct(msg string) Product {
	for _, entry := range productKeywords {
		if containsAny(msg, entry.keywords) {
			return entry.product
		}
	}
	return ProductGeneric
}

var applyTriggers = []string{"apply for", "i want to apply", "أريد التقديم", "تقديم على"}

func detectProductApplication(msg string) (Match, bool) {
	if !containsAny(msg, applyTriggers) {
		return Match{}, false
	}
	return Match{Kind: KindProductApplication, Product: matchProduct(msg)}, true
}

var detailTriggers = []string{"tell me more", "more about", "details about", "what is", "أخبرني المزيد", "تفاصيل"}

func detectProductDetails(msg string) (Match, bool) {
	if !containsAny(msg, detailTriggers) {
		return Match{}, false
	}
	return Match{Kind: KindProductDetails, Product: matchProduct(msg)}, true
}

var (
	bareAmountRe     = regexp.MustCompile(`^(\d+)\s*(?:sar|ريال)?$`)
	embeddedAmountRe = regexp.MustCompile(`(\d+)\s*(?:sar|ريال)`)
	transferVocab    = []string{"transfer", "send", "تحويل", "ارسل"}
)

func detectAmountReply(msg string) (Match, bool) {
	m := bareAmountRe.FindStringSubmatch(msg)
	if m == nil {
		m = embeddedAmountRe.FindStringSubmatch(msg)
	}
	if m == nil || containsAny(msg, transferVocab) {
		return Match{}, false
	}
	return Match{Kind: KindAmountReply, Amount: m[1]}, true
}

var percentRe = regexp.MustCompile(`(\d+)\s*(?:%|percent|بالمائة|٪)`)

func detectPercentReply(msg string) (Match, bool) {
	m := percentRe.FindStringSubmatch(msg)
	if m == nil {
		return Match{}, false
	}
	return Match{Kind: KindPercentReply, Percent: m[1]}, true
}

var confirmWords = []string{"yes", "confirm", "ok", "sure", "proceed", "نعم", "موافق", "تأكيد", "حسنا"}

// Confirmations are only accepted for short messages so that a confirm word
// buried in a longer unrelated sentence does not end a flow prematurely.
func detectConfirmation(msg string) (Match, bool) {
	if len(msg) >= 30 {
		return Match{}, false
	}
	for _, w := range confirmWords {
		if msg == w || strings.Contains(msg, w) {
			return Match{Kind: KindConfirmation}, true
		}
	}
	return Match{}, false
}

var (
	accountSelectionPhrases = []string{
		"main account", "secondary account", "savings account",
		"الحساب الرئيسي", "الحساب الثانوي", "حساب التوفير",
		"select account", "choose account", "اختر حساب", "اختيار حساب",
	}
	maskedAccountRe = regexp.MustCompile(`\*{3,4}\d{4}`)
	// The exclusion list below is the binding contract separating "pick this
	// account" from "show me my accounts".
	accountViewVocab = []string{"view", "show", "check", "balance", "what", "my account"}
)

func detectAccountSelection(msg string) (Match, bool) {
	selected := containsAny(msg, accountSelectionPhrases) ||
		maskedAccountRe.MatchString(msg) ||
		(strings.Contains(msg, "account") && len(msg) < 30 && !containsAny(msg, accountViewVocab))
	if !selected {
		return Match{}, false
	}

	match := Match{Kind: KindAccountSelection, AccountName: "Main Account", AccountNameAr: "الحساب الرئيسي"}
	switch {
	case strings.Contains(msg, "secondary") || strings.Contains(msg, "الثانوي"):
		match.AccountName, match.AccountNameAr = "Secondary Account", "الحساب الثانوي"
	case strings.Contains(msg, "saving") || strings.Contains(msg, "توفير"):
		match.AccountName, match.AccountNameAr = "Savings Account", "حساب التوفير"
	}
	return match, true
}

var (
	balanceVocab = []string{
		"view account", "show account", "check balance", "my balance",
		"account balance", "عرض حساب", "رصيدي", "أرصدة",
	}
	bareBalanceWords = []string{"balance", "balances", "رصيد", "حسابات"}
)

func detectAccountBalance(msg string) (Match, bool) {
	if containsAny(msg, balanceVocab) {
		return Match{Kind: KindAccountBalance}, true
	}
	for _, w := range bareBalanceWords {
		if msg == w {
			return Match{Kind: KindAccountBalance}, true
		}
	}
	return Match{}, false
}

var beneficiarySelectionRe = regexp.MustCompile(`(?:i've selected|i selected|selected)\s+(.+?)\s+(?:for a transfer|for transfer)`)

func detectBeneficiarySelection(msg string) (Match, bool) {
	m := beneficiarySelectionRe.FindStringSubmatch(msg)
	if m == nil {
		return Match{}, false
	}
	return Match{Kind: KindBeneficiarySelection, BeneficiaryName: m[1]}, true
}

var beneficiaryVocab = []string{"beneficiar", "مستفيد", "recipient", "payee"}

func detectBeneficiaryQuery(msg string) (Match, bool) {
	if !containsAny(msg, beneficiaryVocab) {
		return Match{}, false
	}
	return Match{Kind: KindBeneficiaryQuery}, true
}

var cardVocab = []string{"card", "بطاقة", "بطاقات", "credit", "debit", "freeze", "unfreeze", "limit"}

func detectCardQuery(msg string) (Match, bool) {
	if !containsAny(msg, cardVocab) {
		return Match{}, false
	}
	return Match{Kind: KindCardQuery}, true
}

var billVocab = []string{
	"bill", "فاتورة", "فواتير", "pay bill", "electricity", "water",
	"internet", "phone bill", "utility", "كهرباء", "ماء", "انترنت",
}

func detectBillQuery(msg string) (Match, bool) {
	if !containsAny(msg, billVocab) {
		return Match{}, false
	}
	return Match{Kind: KindBillQuery}, true
}

var spendingVocab = []string{
	"spend", "إنفاق", "مصاريف", "expense", "where did", "how much did",
	"breakdown", "analysis", "تحليل",
}

func detectSpendingQuery(msg string) (Match, bool) {
	if !containsAny(msg, spendingVocab) {
		return Match{}, false
	}
	return Match{Kind: KindSpendingQuery}, true
}

var subscriptionVocab = []string{
	"subscription", "اشتراك", "اشتراكات", "recurring", "monthly",
	"netflix", "spotify", "streaming",
}

func detectSubscriptionQuery(msg string) (Match, bool) {
	if !containsAny(msg, subscriptionVocab) {
		return Match{}, false
	}
	return Match{Kind: KindSubscriptionQuery}, true
}

var transferQueryVocab = []string{
	"transfer", "send", "تحويل", "ارسل", "payment", "pay to", "send money", "wire",
}

func detectTransferQuery(msg string) (Match, bool) {
	if !containsAny(msg, transferQueryVocab) {
		return Match{}, false
	}
	return Match{Kind: KindTransferQuery}, true
}

var greetingVocab = []string{"help", "مساعدة", "what can", "hi", "hello", "مرحبا", "أهلا"}

func detectGreeting(msg string) (Match, bool) {
	if msg == "" || containsAny(msg, greetingVocab) {
		return Match{Kind: KindGreeting}, true
	}
	return Match{}, false
}

var supportVocab = []string{
	"support", "help me", "problem", "issue", "complaint", "ticket",
	"دعم", "مشكلة", "شكوى",
}

func detectSupportQuery(msg string) (Match, bool) {
	if !containsAny(msg, supportVocab) {
		return Match{}, false
	}
	return Match{Kind: KindSupportQuery}, true
}
