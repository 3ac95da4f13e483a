// Package responder turns classified intents into localized structured
// responses: message text, UI directives, and the entity data the
// directives reference.
package responder

import (
	"github.com/ruwais/masraf/internal/analysis/intent"
	"github.com/ruwais/masraf/internal/model/bank"
	"github.com/ruwais/masraf/internal/model/chat"
	"github.com/ruwais/masraf/internal/service/rates"
	"github.com/ruwais/masraf/internal/service/session"
)

// Synthesizer builds complete responses from reference data and the
// session's pinned generated data.
type Synthesizer struct {
	store    bank.Store
	cache    *session.Cache
	resolver *rates.Resolver
}

func New(store bank.Store, cache *session.Cache, resolver *rates.Resolver) *Synthesizer {
	return &Synthesizer{store: store, cache: cache, resolver: resolver}
}

// Synthesize renders the response for a classified utterance.
func (s *Synthesizer) Synthesize(m intent.Match, sessionID string, locale chat.Locale) chat.StructuredResponse {
	isAr := locale == chat.LocaleArabic

	switch m.Kind {
	case intent.KindProductApplication:
		return s.productResponse(lookupReply(applyReplies, m.Product), sessionID, isAr)
	case intent.KindProductDetails:
		return s.productResponse(lookupReply(detailReplies, m.Product), sessionID, isAr)
	case intent.KindAmountReply:
		return s.amountResponse(m.Amount, sessionID, isAr)
	case intent.KindPercentReply:
		return s.percentResponse(m.Percent, sessionID, isAr)
	case intent.KindConfirmation:
		return chat.StructuredResponse{
			Message: pick(isAr,
				"تم تفعيل الخدمة بنجاح! ستبدأ في العمل من الشهر القادم. يمكنك تتبع التقدم من قسم \"المدخرات\" في التطبيق.",
				"The service has been activated successfully! It will start working from next month. You can track your progress in the 'Savings' section of the app."),
			SessionID: sessionID,
		}
	case intent.KindAccountSelection:
		return s.accountSelectionResponse(m, sessionID, isAr)
	case intent.KindAccountBalance:
		return s.balanceResponse(sessionID, isAr)
	case intent.KindBeneficiarySelection:
		return s.beneficiarySelectionResponse(m, sessionID, isAr)
	case intent.KindBeneficiaryQuery:
		return chat.StructuredResponse{
			Message: pick(isAr,
				"إليك قائمة المستفيدين المحفوظين. إلى من تود التحويل؟",
				"Here are your saved beneficiaries. Who would you like to transfer to?"),
			SessionID:     sessionID,
			UI:            chat.UIDirectives{ShowBeneficiaries: true},
			Beneficiaries: s.store.Beneficiaries(""),
		}
	case intent.KindCardQuery:
		return chat.StructuredResponse{
			Message: pick(isAr,
				"إليك بطاقاتك. أي بطاقة تود إدارتها؟ يمكنني مساعدتك في تجميد البطاقة أو تغيير الحدود أو إدارة الإعدادات.",
				"Here are your cards. Which card would you like to manage? I can help you freeze cards, change limits, or manage settings."),
			SessionID: sessionID,
			UI:        chat.UIDirectives{ShowCards: true},
			Cards:     s.store.Cards(""),
		}
	case intent.KindBillQuery:
		return s.billResponse(sessionID, isAr)
	case intent.KindSpendingQuery:
		return s.spendingResponse(sessionID, isAr)
	case intent.KindSubscriptionQuery:
		return s.subscriptionResponse(sessionID, isAr)
	case intent.KindTransferQuery:
		return chat.StructuredResponse{
			Message: pick(isAr,
				"يمكنني مساعدتك في التحويل! اختر الحساب الذي تريد التحويل منه والمستفيد الذي تريد التحويل إليه.",
				"I can help you with a transfer! Select the account you want to transfer from and the beneficiary you want to transfer to."),
			SessionID:     sessionID,
			UI:            chat.UIDirectives{ShowAccounts: true, ShowBeneficiaries: true},
			Accounts:      s.store.Accounts(),
			Beneficiaries: s.store.Beneficiaries(""),
		}
	case intent.KindGreeting:
		return chat.StructuredResponse{
			Message:   pick(isAr, greetingAr, greetingEn),
			SessionID: sessionID,
		}
	case intent.KindSupportQuery:
		return chat.StructuredResponse{
			Message: pick(isAr,
				"أنا آسف لسماع أنك تواجه مشكلة. يمكنني إنشاء تذكرة دعم لك. هل يمكنك وصف المشكلة بالتفصيل؟",
				"I'm sorry to hear you're having an issue. I can create a support ticket for you. Could you describe the problem in detail?"),
			SessionID: sessionID,
		}
	}
	return chat.StructuredResponse{SessionID: sessionID}
}

// ExchangeRate renders the answer for a resolved currency pair. A pair
// missing from the rate table still produces a polite reply rather than
// an error.
func (s *Synthesizer) ExchangeRate(q rates.Query, sessionID string, locale chat.Locale) chat.StructuredResponse {
	isAr := locale == chat.LocaleArabic

	rate, ok := s.resolver.Rate(q.From, q.To)
	if !ok {
		return chat.StructuredResponse{
			Message: pick(isAr,
				"عذراً، لا يمكنني العثور على سعر الصرف من "+q.From+" إلى "+q.To+".",
				"Sorry, I couldn't find the exchange rate from "+q.From+" to "+q.To+"."),
			SessionID: sessionID,
		}
	}

	display := formatRate(rate)
	return chat.StructuredResponse{
		Message: pick(isAr,
			"سعر الصرف الحالي من "+q.From+" إلى "+q.To+" هو "+display+". هذا يعني 1 "+q.From+" = "+display+" "+q.To+".",
			"The current exchange rate from "+q.From+" to "+q.To+" is "+display+". This means 1 "+q.From+" = "+display+" "+q.To+"."),
		SessionID: sessionID,
		UI: chat.UIDirectives{
			ExchangeRate: &chat.ExchangeRateInfo{From: q.From, To: q.To, Rate: rate},
		},
	}
}

func (s *Synthesizer) productResponse(reply productReply, sessionID string, isAr bool) chat.StructuredResponse {
	resp := chat.StructuredResponse{
		Message:   pick(isAr, reply.ar, reply.en),
		SessionID: sessionID,
		UI: chat.UIDirectives{
			ShowAccounts:      reply.showAccounts,
			ShowBills:         reply.showBills,
			ShowSubscriptions: reply.showSubscriptions,
		},
	}
	if reply.showAccounts {
		resp.Accounts = s.store.Accounts()
	}
	if reply.showBills {
		resp.Bills = s.store.Bills("", "")
	}
	if reply.showSubscriptions {
		resp.Subscriptions = s.store.Subscriptions(nil)
	}
	return resp
}

func (s *Synthesizer) amountResponse(amount, sessionID string, isAr bool) chat.StructuredResponse {
	return chat.StructuredResponse{
		Message: pick(isAr,
			"رائع. يرجى اختيار الحساب الذي تريد تحويل "+amount+" ريال منه شهرياً.",
			"Great. Please select the account you want to transfer the "+amount+" SAR from monthly."),
		SessionID: sessionID,
		UI:        chat.UIDirectives{ShowAccounts: true},
		Accounts:  s.store.Accounts(),
	}
}

func (s *Synthesizer) percentResponse(percent, sessionID string, isAr bool) chat.StructuredResponse {
	return chat.StructuredResponse{
		Message: pick(isAr,
			"ممتاز! سيتم ادخار "+percent+"% من راتبك تلقائياً كل شهر. يرجى اختيار الحساب الذي تريد الادخار منه.",
			"Excellent! "+percent+"% of your salary will be saved automatically each month. Please select the account you want to save from."),
		SessionID: sessionID,
		UI:        chat.UIDirectives{ShowAccounts: true},
		Accounts:  s.store.Accounts(),
	}
}

func (s *Synthesizer) accountSelectionResponse(m intent.Match, sessionID string, isAr bool) chat.StructuredResponse {
	return chat.StructuredResponse{
		Message: pick(isAr,
			"لقد اخترت "+m.AccountNameAr+". ماذا تود أن تفعل؟ يمكنك إجراء تحويل، دفع فواتير، أو عرض سجل المعاملات.",
			"You've selected your "+m.AccountName+". What would you like to do? You can make a transfer, pay bills, or view your transaction history."),
		SessionID: sessionID,
	}
}

func (s *Synthesizer) balanceResponse(sessionID string, isAr bool) chat.StructuredResponse {
	main := s.store.DefaultAccount()
	recommendations := Recommend(s.store.Products(""), RecommendContext{
		HighSpending:       true,
		HighDiningSpending: true,
		LowSavings:         true,
	}, 3)

	return chat.StructuredResponse{
		Message: pick(isAr,
			"إليك أرصدة حساباتك الحالية. رصيد "+main.NameAr+" هو "+formatMoney(main.Balance)+" ريال سعودي.",
			"Here are your current account balances. Your "+main.Name+" balance is "+formatMoney(main.Balance)+" SAR."),
		SessionID:              sessionID,
		UI:                     chat.UIDirectives{ShowAccounts: true, ShowRecommendations: true},
		Accounts:               s.store.Accounts(),
		Recommendations:        recommendations,
		RecommendationsIntro:   "Your dining spending increased by 22% (2,850 SAR) this month. Since your salary is transferred here, a Salary-Linked Savings plan can help you save automatically before you spend.",
		RecommendationsIntroAr: "زاد إنفاقك على المطاعم بنسبة 22% (2,850 ريال) هذا الشهر. بما أن راتبك يُحوّل هنا، يمكن لخطة الادخار المرتبطة بالراتب مساعدتك على الادخار تلقائياً قبل الإنفاق.",
	}
}

func (s *Synthesizer) beneficiarySelectionResponse(m intent.Match, sessionID string, isAr bool) chat.StructuredResponse {
	transferType, transferTypeAr := "national", "محلي"
	if b, ok := s.store.FindBeneficiaryByName(m.BeneficiaryName); ok && b.Type == bank.BeneficiaryInternational {
		transferType, transferTypeAr = "international", "دولي"
	}
	return chat.StructuredResponse{
		Message: pick(isAr,
			"لقد اخترت "+m.BeneficiaryName+" لتحويل "+transferTypeAr+". كم المبلغ الذي تود إرساله؟",
			"I've selected "+m.BeneficiaryName+" for a "+transferType+" transfer. How much would you like to transfer?"),
		SessionID: sessionID,
	}
}

func (s *Synthesizer) billResponse(sessionID string, isAr bool) chat.StructuredResponse {
	var pending int
	var totalDue float64
	for _, b := range s.store.Bills("", "") {
		if b.Status != bank.BillPaid {
			pending++
			totalDue += b.Amount
		}
	}
	return chat.StructuredResponse{
		Message: pick(isAr,
			"لديك "+itoa(pending)+" فواتير معلقة بإجمالي "+formatMoney(totalDue)+" ريال سعودي. أي فاتورة تود دفعها؟",
			"You have "+itoa(pending)+" pending bills totaling "+formatMoney(totalDue)+" SAR. Which bill would you like to pay?"),
		SessionID: sessionID,
		UI:        chat.UIDirectives{ShowBills: true},
		Bills:     s.store.Bills("", ""),
	}
}

func (s *Synthesizer) spendingResponse(sessionID string, isAr bool) chat.StructuredResponse {
	report := s.cache.Spending(sessionID)
	top := report.Breakdown[0]
	recommendations := Recommend(s.store.Products(""), RecommendContext{
		HighSpending:       true,
		HighDiningSpending: true,
	}, 3)

	direction := "decreased"
	directionAr := "انخفض"
	if top.Change > 0 {
		direction = "increased"
		directionAr = "زاد"
	}

	introEn := "Your " + top.CategoryName + " spending is " + formatFixed1(top.Percentage) + "% of your total (" +
		formatMoney(top.Amount) + " SAR) and " + direction + " by " + formatWhole(top.Change) +
		"%. A cashback card could earn you rewards on these purchases, or a savings plan could help you balance it."
	introAr := "إنفاقك على " + top.CategoryNameAr + " يمثل " + formatFixed1(top.Percentage) + "% من إجماليك (" +
		formatMoney(top.Amount) + " ريال) وقد " + directionAr + " بنسبة " + formatWhole(top.Change) +
		"%. بطاقة استرداد نقدي يمكن أن تكسبك مكافآت على هذه المشتريات، أو خطة ادخار يمكن أن تساعدك على تحقيق التوازن."

	return chat.StructuredResponse{
		Message: pick(isAr,
			"إليك تحليل إنفاقك لهذا الشهر. إجمالي الإنفاق: "+formatMoney(report.TotalSpending)+" ريال سعودي. أعلى فئة هي "+
				top.CategoryNameAr+" بنسبة "+formatFixed1(top.Percentage)+"% ("+formatMoney(top.Amount)+" ريال)، والتي "+
				directionAr+" بنسبة "+formatWhole(top.Change)+"% مقارنة بالشهر الماضي.",
			"Here is your spending breakdown for this month. Your total spending is "+formatMoney(report.TotalSpending)+
				" SAR. Your top category is "+top.CategoryName+" at "+formatFixed1(top.Percentage)+"% ("+formatMoney(top.Amount)+
				" SAR), which has "+direction+" by "+formatWhole(top.Change)+"% compared to last month."),
		SessionID:              sessionID,
		UI:                     chat.UIDirectives{ShowSpendingBreakdown: true, ShowRecommendations: true},
		SpendingBreakdown:      report.Breakdown,
		Recommendations:        recommendations,
		RecommendationsIntro:   pick(isAr, introAr, introEn),
		RecommendationsIntroAr: introAr,
	}
}

func (s *Synthesizer) subscriptionResponse(sessionID string, isAr bool) chat.StructuredResponse {
	active := true
	activeSubs := s.store.Subscriptions(&active)
	var monthlyTotal float64
	for _, sub := range activeSubs {
		if sub.Frequency == "monthly" {
			monthlyTotal += sub.Amount
		}
	}
	return chat.StructuredResponse{
		Message: pick(isAr,
			"لديك "+itoa(len(activeSubs))+" اشتراكات نشطة. إجمالي الاشتراكات الشهرية: "+formatMoney(monthlyTotal)+" ريال سعودي",
			"You have "+itoa(len(activeSubs))+" active subscriptions. Monthly subscription total: "+formatMoney(monthlyTotal)+" SAR"),
		SessionID:     sessionID,
		UI:            chat.UIDirectives{ShowSubscriptions: true},
		Subscriptions: s.store.Subscriptions(nil),
	}
}

func pick(isAr bool, ar, en string) string {
	if isAr {
		return ar
	}
	return en
}

const greetingEn = `Hello! I'm your STC Bank AI Assistant. I can help you with:

• View account balances
• Make transfers (national & international)
• Manage beneficiaries
• Manage cards (freeze, limits, settings)
• Pay bills
• Analyze spending
• Manage subscriptions
• Check exchange rates

How can I assist you today?`

const greetingAr = `مرحباً! أنا مساعد بنك stc الذكي. يمكنني مساعدتك في:

• عرض أرصدة الحسابات
• إجراء التحويلات (محلية ودولية)
• إدارة المستفيدين
• إدارة البطاقات (تجميد، حدود، إعدادات)
• دفع الفواتير
• تحليل الإنفاق
• إدارة الاشتراكات
• التحقق من أسعار الصرف

كيف يمكنني مساعدتك اليوم؟`
