package bank

import "time"

// SeedData is the reference dataset the mock API serves. The chat engine
// reads it but never mutates it directly; the store owns all mutation.
type SeedData struct {
	Accounts      []Account
	Beneficiaries []Beneficiary
	Cards         []Card
	Bills         []Bill
	Transfers     []Transfer
	Subscriptions []Subscription
	Products      []Product
	Rates         ExchangeRates
}

// Seed returns the demo dataset.
func Seed() SeedData {
	return SeedData{
		Accounts: []Account{
			{
				ID:            "acc-001",
				Name:          "Main Account",
				NameAr:        "الحساب الرئيسي",
				Type:          "current",
				AccountNumber: "****4521",
				IBAN:          "SA03 8000 0000 6080 1016 7519",
				Balance:       45750.50,
				Currency:      "SAR",
				IsDefault:     true,
			},
			{
				ID:            "acc-002",
				Name:          "Secondary Account",
				NameAr:        "الحساب الثانوي",
				Type:          "current",
				AccountNumber: "****8834",
				IBAN:          "SA44 2000 0001 2345 6789 0123",
				Balance:       12300.00,
				Currency:      "SAR",
			},
			{
				ID:            "acc-003",
				Name:          "Savings Account",
				NameAr:        "حساب التوفير",
				Type:          "savings",
				AccountNumber: "****2156",
				IBAN:          "SA89 1000 0000 9876 5432 1098",
				Balance:       150000.00,
				Currency:      "SAR",
			},
		},
		Beneficiaries: []Beneficiary{
			{
				ID:          "ben-001",
				Name:        "Abdelrahman Moharib",
				NameAr:      "عبد الرحمن محارب",
				Nickname:    "Brother",
				BankCode:    "RJHI",
				BankName:    "Al Rajhi Bank",
				BankNameAr:  "مصرف الراجحي",
				IBAN:        "SA03 8000 0000 6080 1016 7519",
				AccountType: "personal",
				Type:        BeneficiaryNational,
				CreatedAt:   "2024-01-15T10:30:00Z",
			},
			{
				ID:          "ben-002",
				Name:        "Ahmed Mohammed",
				NameAr:      "أحمد محمد",
				BankCode:    "NCB",
				BankName:    "The National Commercial Bank",
				BankNameAr:  "البنك الأهلي السعودي",
				IBAN:        "SA44 1000 0000 1234 5678 9012",
				AccountType: "personal",
				Type:        BeneficiaryNational,
				CreatedAt:   "2024-02-20T14:15:00Z",
			},
			{
				ID:          "ben-003",
				Name:        "Sara Abdullah",
				NameAr:      "سارة عبد الله",
				BankCode:    "SABB",
				BankName:    "Saudi British Bank",
				BankNameAr:  "البنك السعودي البريطاني",
				IBAN:        "SA03 4500 0000 0067 8901 2345",
				AccountType: "personal",
				Type:        BeneficiaryNational,
				CreatedAt:   "2024-03-10T09:45:00Z",
			},
			{
				ID:          "ben-004",
				Name:        "Mohamed Hassan",
				NameAr:      "محمد حسن",
				Nickname:    "Family - Egypt",
				BankCode:    "NBE",
				BankName:    "National Bank of Egypt",
				BankNameAr:  "البنك الأهلي المصري",
				IBAN:        "EG38 0019 0005 0000 0000 2631 8000",
				AccountType: "personal",
				Type:        BeneficiaryInternational,
				Country:     "Egypt",
				CountryAr:   "مصر",
				SwiftCode:   "NBEGEGCX",
				CreatedAt:   "2024-01-25T16:20:00Z",
			},
			{
				ID:          "ben-005",
				Name:        "John Smith",
				NameAr:      "جون سميث",
				Nickname:    "Business Partner",
				BankCode:    "HSBC",
				BankName:    "HSBC UK",
				BankNameAr:  "إتش إس بي سي المملكة المتحدة",
				IBAN:        "GB29 NWBK 6016 1331 9268 19",
				AccountType: "business",
				Type:        BeneficiaryInternational,
				Country:     "United Kingdom",
				CountryAr:   "المملكة المتحدة",
				SwiftCode:   "HSBCGB2L",
				CreatedAt:   "2024-04-05T11:30:00Z",
			},
		},
		Cards: []Card{
			{
				ID:              "card-001",
				Name:            "Platinum Credit Card",
				NameAr:          "بطاقة الائتمان البلاتينية",
				Type:            "credit",
				LastFourDigits:  "4521",
				CardNumber:      "**** **** **** 4521",
				ExpiryDate:      "12/27",
				Status:          "active",
				LinkedAccountID: "acc-001",
				Limits:          CardLimits{DailyLimit: 50000, TransactionLimit: 20000, CurrentDailyUsage: 12500},
				Settings:        CardSettings{InternationalTransactions: true, OnlineTransactions: true, ContactlessPayments: true},
				CardNetwork:     "visa",
			},
			{
				ID:              "card-002",
				Name:            "Debit Card",
				NameAr:          "بطاقة الصراف الآلي",
				Type:            "debit",
				LastFourDigits:  "8834",
				CardNumber:      "**** **** **** 8834",
				ExpiryDate:      "09/26",
				Status:          "active",
				LinkedAccountID: "acc-002",
				Limits:          CardLimits{DailyLimit: 15000, TransactionLimit: 5000, CurrentDailyUsage: 3200},
				Settings:        CardSettings{OnlineTransactions: true, ContactlessPayments: true},
				CardNetwork:     "mada",
			},
			{
				ID:              "card-003",
				Name:            "Gold Credit Card",
				NameAr:          "بطاقة الائتمان الذهبية",
				Type:            "credit",
				LastFourDigits:  "2156",
				CardNumber:      "**** **** **** 2156",
				ExpiryDate:      "06/28",
				Status:          "frozen",
				LinkedAccountID: "acc-001",
				Limits:          CardLimits{DailyLimit: 30000, TransactionLimit: 15000},
				Settings:        CardSettings{InternationalTransactions: true, ContactlessPayments: true},
				CardNetwork:     "mastercard",
			},
		},
		Bills: []Bill{
			{ID: "bill-001", Type: "electricity", ProviderName: "Saudi Electricity Company", ProviderNameAr: "الشركة السعودية للكهرباء", AccountNumber: "1234567890", Amount: 450, DueDate: "2024-12-28T23:59:59Z", Status: BillPending, IsPriority: true},
			{ID: "bill-002", Type: "water", ProviderName: "National Water Company", ProviderNameAr: "شركة المياه الوطنية", AccountNumber: "9876543210", Amount: 120, DueDate: "2024-12-30T23:59:59Z", Status: BillPending},
			{ID: "bill-003", Type: "internet", ProviderName: "stc", ProviderNameAr: "اس تي سي", AccountNumber: "5551234567", Amount: 299, DueDate: "2025-01-05T23:59:59Z", Status: BillPending},
			{ID: "bill-004", Type: "phone", ProviderName: "Mobily", ProviderNameAr: "موبايلي", AccountNumber: "0501234567", Amount: 180, DueDate: "2025-01-10T23:59:59Z", Status: BillPending},
			{ID: "bill-005", Type: "credit_card", ProviderName: "Bank Credit Card", ProviderNameAr: "بطاقة البنك الائتمانية", AccountNumber: "**** **** **** 4532", Amount: 3250, DueDate: "2024-12-26T23:59:59Z", Status: BillOverdue, IsPriority: true},
			{ID: "bill-006", Type: "government", ProviderName: "Traffic Department", ProviderNameAr: "إدارة المرور", AccountNumber: "VIO-2024-1234", Amount: 500, DueDate: "2024-12-25T23:59:59Z", Status: BillOverdue, IsPriority: true},
			{ID: "bill-007", Type: "electricity", ProviderName: "Saudi Electricity Company", ProviderNameAr: "الشركة السعودية للكهرباء", AccountNumber: "1234567890", Amount: 420, DueDate: "2024-11-28T23:59:59Z", Status: BillPaid},
			{ID: "bill-008", Type: "water", ProviderName: "National Water Company", ProviderNameAr: "شركة المياه الوطنية", AccountNumber: "9876543210", Amount: 115, DueDate: "2024-11-30T23:59:59Z", Status: BillPaid},
		},
		Transfers: []Transfer{
			{ID: "txn-001", FromAccountID: "acc-001", BeneficiaryID: "ben-001", Amount: 5000, Currency: "SAR", Purpose: "family_support", Reference: "Monthly support", Type: "national", Status: TransferCompleted, CreatedAt: "2024-11-28T10:30:00Z", CompletedAt: "2024-11-28T10:31:00Z"},
			{ID: "txn-002", FromAccountID: "acc-001", BeneficiaryID: "ben-004", Amount: 2000, Currency: "USD", ConvertedAmount: 7500, ExchangeRate: 3.75, Purpose: "family_support", Type: "international", Status: TransferCompleted, CreatedAt: "2024-11-25T14:15:00Z", CompletedAt: "2024-11-25T14:20:00Z"},
			{ID: "txn-003", FromAccountID: "acc-002", BeneficiaryID: "ben-002", Amount: 1500, Currency: "SAR", Purpose: "business", Reference: "Invoice #1234", Type: "national", Status: TransferCompleted, CreatedAt: "2024-11-20T09:00:00Z", CompletedAt: "2024-11-20T09:01:00Z"},
			{ID: "txn-004", FromAccountID: "acc-001", BeneficiaryID: "ben-005", Amount: 500, Currency: "GBP", ConvertedAmount: 2344, ExchangeRate: 4.688, Purpose: "business", Type: "international", Status: TransferCompleted, CreatedAt: "2024-11-15T16:45:00Z", CompletedAt: "2024-11-15T16:50:00Z"},
		},
		Subscriptions: []Subscription{
			{ID: "sub-1", Name: "Netflix Premium", NameAr: "نتفلكس بريميوم", MerchantName: "Netflix", Amount: 63.99, Currency: "SAR", Frequency: "monthly", NextBillingDate: "2025-01-15T00:00:00Z", Category: "entertainment", IsActive: true},
			{ID: "sub-2", Name: "Spotify Premium", NameAr: "سبوتيفاي بريميوم", MerchantName: "Spotify", Amount: 19.99, Currency: "SAR", Frequency: "monthly", NextBillingDate: "2025-01-10T00:00:00Z", Category: "entertainment", IsActive: true},
			{ID: "sub-3", Name: "Apple iCloud Storage", NameAr: "مساحة تخزين آي كلاود", MerchantName: "Apple", Amount: 11.99, Currency: "SAR", Frequency: "monthly", NextBillingDate: "2025-01-05T00:00:00Z", Category: "technology", IsActive: true},
			{ID: "sub-4", Name: "Fitness Time Membership", NameAr: "عضوية فتنس تايم", MerchantName: "Fitness Time", Amount: 500, Currency: "SAR", Frequency: "monthly", NextBillingDate: "2025-01-01T00:00:00Z", Category: "health", IsActive: true},
			{ID: "sub-5", Name: "Amazon Prime", NameAr: "أمازون برايم", MerchantName: "Amazon", Amount: 16, Currency: "SAR", Frequency: "monthly", NextBillingDate: "2025-01-20T00:00:00Z", Category: "shopping", IsActive: true},
			{ID: "sub-6", Name: "Adobe Creative Cloud", NameAr: "أدوبي كريتف كلاود", MerchantName: "Adobe", Amount: 149.99, Currency: "SAR", Frequency: "monthly", NextBillingDate: "2025-01-12T00:00:00Z", Category: "technology", IsActive: true},
			{ID: "sub-7", Name: "Disney+ Annual", NameAr: "ديزني بلس سنوي", MerchantName: "Disney+", Amount: 299.99, Currency: "SAR", Frequency: "yearly", NextBillingDate: "2025-06-15T00:00:00Z", Category: "entertainment", IsActive: true},
			{ID: "sub-8", Name: "The Economist Digital", NameAr: "ذا إيكونومست الرقمي", MerchantName: "The Economist", Amount: 45, Currency: "SAR", Frequency: "monthly", NextBillingDate: "2025-01-08T00:00:00Z", Category: "news", IsActive: false},
		},
		Products: seedProducts(),
		Rates: ExchangeRates{
			Base: "SAR",
			Rates: map[string]float64{
				"USD": 0.2666,
				"EUR": 0.2456,
				"GBP": 0.2107,
				"AED": 0.9793,
				"EGP": 8.2133,
				"INR": 22.2890,
				"PKR": 74.1333,
				"PHP": 14.9067,
			},
			LastUpdated: time.Now().UTC().Format(time.RFC3339),
		},
	}
}

func seedProducts() []Product {
	return []Product{
		{
			ID: "prod-001", Name: "Salary-Linked Savings", NameAr: "ادخار مرتبط بالراتب",
			Category: CategorySaving,
			Benefit:  "Save a percentage of your salary automatically", BenefitAr: "ادخر نسبة من راتبك تلقائياً",
			CTAQuestion: "Start saving?", CTAQuestionAr: "ابدأ الادخار؟",
			TargetConditions: []string{TargetHighSpending, TargetLowSavingsRate},
		},
		{
			ID: "prod-002", Name: "Automatic Savings Plan", NameAr: "خطة ادخار تلقائية",
			Category: CategorySaving,
			Benefit:  "Automatic monthly transfers", BenefitAr: "تحويلات شهرية تلقائية",
			CTAQuestion: "Set up a plan?", CTAQuestionAr: "أنشئ خطة؟",
			MinAmount:        100,
			TargetConditions: []string{TargetAll},
		},
		{
			ID: "prod-003", Name: "Goal-Based Savings", NameAr: "ادخار قائم على الأهداف",
			Category: CategorySaving,
			Benefit:  "Track progress toward a target amount", BenefitAr: "تتبع التقدم نحو مبلغ مستهدف",
			CTAQuestion: "Set a goal?", CTAQuestionAr: "حدد هدفاً؟",
			MinAmount:        100,
			TargetConditions: []string{TargetAll},
		},
		{
			ID: "prod-004", Name: "Premium Cashback Card", NameAr: "بطاقة الاسترداد النقدي المميزة",
			Category: CategoryCreditCard,
			Benefit:  "2% cashback on all purchases", BenefitAr: "2% استرداد نقدي على جميع المشتريات",
			CTAQuestion: "Apply now?", CTAQuestionAr: "قدّم الآن؟",
			IsPromoted: true, MinSalary: 8000, MaxAmount: 100000,
			TargetConditions: []string{TargetHighSpending},
		},
		{
			ID: "prod-005", Name: "Travel Rewards Card", NameAr: "بطاقة مكافآت السفر",
			Category: CategoryCreditCard,
			Benefit:  "1.5 miles per SAR spent", BenefitAr: "1.5 ميل لكل ريال تنفقه",
			CTAQuestion: "Apply now?", CTAQuestionAr: "قدّم الآن؟",
			TargetConditions: []string{TargetInternationalTransfers},
		},
		{
			ID: "prod-006", Name: "Personal Loan", NameAr: "قرض شخصي",
			Category: CategoryLending,
			Benefit:  "Quick approval within 24 hours", BenefitAr: "موافقة سريعة خلال 24 ساعة",
			CTAQuestion: "Check eligibility?", CTAQuestionAr: "تحقق من الأهلية؟",
			MinSalary: 5000, MinAmount: 5000, MaxAmount: 500000,
			TargetConditions: []string{TargetLowSavings},
		},
		{
			ID: "prod-007", Name: "Micro Loan", NameAr: "قرض صغير",
			Category: CategoryLending,
			Benefit:  "Instant approval", BenefitAr: "موافقة فورية",
			CTAQuestion: "Borrow now?", CTAQuestionAr: "اقترض الآن؟",
			IsPromoted: true, MinSalary: 3000, MinAmount: 1000, MaxAmount: 10000,
			TargetConditions: []string{TargetAll},
		},
		{
			ID: "prod-008", Name: "Bill Payment Autopay", NameAr: "الدفع التلقائي للفواتير",
			Category: CategoryService,
			Benefit:  "Bills paid automatically on the due date", BenefitAr: "تُدفع الفواتير تلقائياً في تاريخ الاستحقاق",
			CTAQuestion: "Enable autopay?", CTAQuestionAr: "فعّل الدفع التلقائي؟",
			TargetConditions: []string{TargetHasBills},
		},
		{
			ID: "prod-009", Name: "Round-Up Savings", NameAr: "ادخار التقريب",
			Category: CategorySaving,
			Benefit:  "Every purchase rounded up into savings", BenefitAr: "تُقرّب كل عملية شراء إلى مدخراتك",
			CTAQuestion: "Enable round-up?", CTAQuestionAr: "فعّل التقريب؟",
			TargetConditions: []string{TargetHighSpending, TargetLowSavingsRate},
		},
		{
			ID: "prod-010", Name: "Virtual Card", NameAr: "بطاقة افتراضية",
			Category: CategoryService,
			Benefit:  "Instant card for secure online shopping", BenefitAr: "بطاقة فورية للتسوق الآمن عبر الإنترنت",
			CTAQuestion: "Create one?", CTAQuestionAr: "أنشئ واحدة؟",
			TargetConditions: []string{TargetAll},
		},
		{
			ID: "prod-011", Name: "Subscription Manager", NameAr: "مدير الاشتراكات",
			Category: CategoryService,
			Benefit:  "Track and cancel recurring subscriptions", BenefitAr: "تتبع الاشتراكات المتكررة وألغها",
			CTAQuestion: "See subscriptions?", CTAQuestionAr: "اعرض الاشتراكات؟",
			TargetConditions: []string{TargetHasSubscriptions},
		},
		{
			ID: "prod-012", Name: "International Transfer Plus", NameAr: "التحويل الدولي بلس",
			Category: CategoryService,
			Benefit:  "50% off transfer fees with priority processing", BenefitAr: "خصم 50% على رسوم التحويل مع معالجة ذات أولوية",
			CTAQuestion: "Upgrade?", CTAQuestionAr: "قم بالترقية؟",
			TargetConditions: []string{TargetInternationalTransfers},
		},
		{
			ID: "prod-013", Name: "Dining Rewards", NameAr: "مكافآت المطاعم",
			Category: CategoryService,
			Benefit:  "5% back at over 2000 partner restaurants", BenefitAr: "5% استرداد في أكثر من 2000 مطعم شريك",
			CTAQuestion: "Join the program?", CTAQuestionAr: "انضم للبرنامج؟",
			TargetConditions: []string{TargetHighDiningSpending, TargetHighSpending},
		},
		{
			ID: "prod-014", Name: "Zakat Calculator", NameAr: "حاسبة الزكاة",
			Category: CategoryService,
			Benefit:  "Automatic annual Zakat calculation", BenefitAr: "حساب الزكاة السنوية تلقائياً",
			CTAQuestion: "Calculate Zakat?", CTAQuestionAr: "احسب الزكاة؟",
			TargetConditions: []string{TargetHighBalance},
		},
	}
}
