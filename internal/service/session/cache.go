// Package session keeps per-session derived data stable. Spending
// breakdowns and eligibility profiles are randomized on first request
// and pinned for the lifetime of the session so that a conversation
// never contradicts itself.
package session

import (
	"math"
	"math/rand"
	"sync"

	"github.com/ruwais/masraf/internal/model/bank"
)

// Cache generates and memoizes session-scoped reports.
type Cache struct {
	mu       sync.Mutex
	spending map[string]bank.SpendingReport
	profiles map[string]bank.UserProfile
	rng      *rand.Rand
}

func NewCache(rng *rand.Rand) *Cache {
	return &Cache{
		spending: make(map[string]bank.SpendingReport),
		profiles: make(map[string]bank.UserProfile),
		rng:      rng,
	}
}

// Spending returns the session's spending report, generating it on first
// access. Repeated calls with the same id return identical data.
func (c *Cache) Spending(sessionID string) bank.SpendingReport {
	c.mu.Lock()
	defer c.mu.Unlock()
	if report, ok := c.spending[sessionID]; ok {
		return report
	}
	report := c.generateSpending()
	c.spending[sessionID] = report
	return report
}

// Profile returns the session's eligibility profile, generating it on
// first access.
func (c *Cache) Profile(sessionID string) bank.UserProfile {
	c.mu.Lock()
	defer c.mu.Unlock()
	if profile, ok := c.profiles[sessionID]; ok {
		return profile
	}
	profile := c.generateProfile()
	c.profiles[sessionID] = profile
	return profile
}

// Reset drops the cached data for a session.
func (c *Cache) Reset(sessionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.spending, sessionID)
	delete(c.profiles, sessionID)
}

type categoryTemplate struct {
	id     string
	name   string
	nameAr string
}

var categoryTemplates = []categoryTemplate{
	{"dining", "Dining & Restaurants", "المطاعم والمقاهي"},
	{"shopping", "Shopping", "التسوق"},
	{"groceries", "Groceries", "البقالة"},
	{"entertainment", "Entertainment", "الترفيه"},
	{"transportation", "Transportation", "المواصلات"},
	{"health", "Health & Fitness", "الصحة واللياقة"},
	{"subscriptions", "Subscriptions", "الاشتراكات"},
	{"other", "Other", "أخرى"},
}

type amountRange struct{ min, max int }

// Spending personas. Amounts are indexed in category template order.
var spendingProfiles = [][]amountRange{
	// high dining
	{{4500, 7000}, {800, 2000}, {1200, 2000}, {300, 800}, {400, 1000}, {200, 600}, {150, 400}, {100, 300}},
	// shopaholic
	{{800, 2000}, {5000, 9000}, {1000, 1800}, {500, 1200}, {300, 800}, {100, 400}, {200, 500}, {100, 400}},
	// frugal
	{{300, 800}, {200, 600}, {600, 1200}, {100, 400}, {200, 500}, {100, 300}, {50, 200}, {50, 150}},
	// balanced
	{{1500, 3000}, {1200, 2800}, {1000, 2200}, {800, 1800}, {600, 1400}, {400, 1000}, {200, 600}, {150, 400}},
}

func (c *Cache) randInt(min, max int) int {
	return c.rng.Intn(max-min+1) + min
}

func (c *Cache) randFloat(min, max float64, decimals int) float64 {
	value := c.rng.Float64()*(max-min) + min
	pow := math.Pow(10, float64(decimals))
	return math.Round(value*pow) / pow
}

func (c *Cache) generateSpending() bank.SpendingReport {
	ranges := spendingProfiles[c.rng.Intn(len(spendingProfiles))]

	amounts := make([]float64, len(ranges))
	var total float64
	for i, r := range ranges {
		amounts[i] = float64(c.randInt(r.min, r.max))
		total += amounts[i]
	}

	breakdown := make([]bank.SpendingSlice, len(categoryTemplates))
	for i, tmpl := range categoryTemplates {
		amount := amounts[i]
		breakdown[i] = bank.SpendingSlice{
			CategoryID:       tmpl.id,
			CategoryName:     tmpl.name,
			CategoryNameAr:   tmpl.nameAr,
			Amount:           amount,
			Percentage:       math.Round(amount/total*1000) / 10,
			TransactionCount: maxInt(2, int(math.Round(amount/float64(c.randInt(80, 150))))),
			Change:           c.randFloat(-20, 40, 0),
		}
	}

	// Largest category first.
	for i := 1; i < len(breakdown); i++ {
		for j := i; j > 0 && breakdown[j].Amount > breakdown[j-1].Amount; j-- {
			breakdown[j], breakdown[j-1] = breakdown[j-1], breakdown[j]
		}
	}

	return bank.SpendingReport{Breakdown: breakdown, TotalSpending: total}
}

func (c *Cache) generateProfile() bank.UserProfile {
	employmentTypes := []string{"government", "private", "private", "self_employed", "retired"}
	employmentType := employmentTypes[c.rng.Intn(len(employmentTypes))]
	isEmployed := employmentType != "retired"

	age := c.randInt(23, 58)
	var salary int
	switch employmentType {
	case "retired":
		age = c.randInt(55, 70)
		salary = c.randInt(3000, 15000)
	case "government":
		salary = c.randInt(8000, 35000)
	default:
		salary = c.randInt(4000, 45000)
	}

	nationalities := []string{"saudi", "saudi", "saudi", "gcc", "expat"}
	creditScores := []string{"excellent", "good", "good", "fair"}

	duration := 0
	if isEmployed {
		duration = c.randInt(3, 180)
	}
	loanAmount := 0
	if c.rng.Float64() > 0.5 {
		loanAmount = c.randInt(10000, 500000)
	}

	return bank.UserProfile{
		Age:                     age,
		Nationality:             nationalities[c.rng.Intn(len(nationalities))],
		IsEmployed:              isEmployed,
		EmploymentType:          employmentType,
		MonthlySalary:           float64(salary),
		EmploymentDurationMonth: duration,
		SalaryTransferredToBank: isEmployed && c.rng.Float64() > 0.3,
		AccountAgeMonths:        c.randInt(1, 120),
		HasSavingsAccount:       c.rng.Float64() > 0.4,
		HasCurrentAccount:       true,
		AverageMonthlyBalance:   float64(c.randInt(5000, 50000)),
		CreditScore:             creditScores[c.rng.Intn(len(creditScores))],
		HasExistingLoans:        isEmployed && c.rng.Float64() > 0.5,
		ExistingLoanAmount:      float64(loanAmount),
		DebtToIncomeRatio:       c.randFloat(0, 0.65, 1),
		SavingsRate:             c.randFloat(0, 0.4, 1),
	}
}

// EligibilitySummary derives human-readable qualification lines from a
// profile.
func EligibilitySummary(profile bank.UserProfile) []string {
	var summary []string
	switch {
	case profile.MonthlySalary >= 15000:
		summary = append(summary, "High income tier - eligible for premium products")
	case profile.MonthlySalary >= 8000:
		summary = append(summary, "Mid income tier - eligible for most products")
	case profile.MonthlySalary >= 5000:
		summary = append(summary, "Standard income tier - eligible for basic products")
	default:
		summary = append(summary, "Entry income tier - limited products")
	}

	if profile.IsEmployed && profile.EmploymentDurationMonth >= 6 {
		summary = append(summary, "Stable employment - meets requirement")
	}
	if profile.CreditScore == "excellent" || profile.CreditScore == "good" {
		summary = append(summary, profile.CreditScore+" credit score - strong approval likelihood")
	}
	return summary
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
