package session_test

import (
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/ruwais/masraf/internal/model/bank"
	"github.com/ruwais/masraf/internal/service/session"
)

func newCache() *session.Cache {
	return session.NewCache(rand.New(rand.NewSource(42)))
}

func TestSpendingStablePerSession(t *testing.T) {
	c := newCache()
	first := c.Spending("sess-1")
	second := c.Spending("sess-1")
	if !reflect.DeepEqual(first, second) {
		t.Fatal("repeated reads for one session returned different reports")
	}
}

func TestSpendingShape(t *testing.T) {
	c := newCache()
	report := c.Spending("sess-1")

	if len(report.Breakdown) != 8 {
		t.Fatalf("breakdown has %d categories, want 8", len(report.Breakdown))
	}

	var sum, pctSum float64
	for i, slice := range report.Breakdown {
		if slice.CategoryID == "" || slice.CategoryName == "" || slice.CategoryNameAr == "" {
			t.Errorf("slice %d missing category labels: %+v", i, slice)
		}
		if slice.TransactionCount < 2 {
			t.Errorf("slice %s transaction count %d, want >= 2", slice.CategoryID, slice.TransactionCount)
		}
		if i > 0 && slice.Amount > report.Breakdown[i-1].Amount {
			t.Errorf("breakdown not sorted descending at index %d", i)
		}
		sum += slice.Amount
		pctSum += slice.Percentage
	}
	if sum != report.TotalSpending {
		t.Errorf("amounts sum to %v, total is %v", sum, report.TotalSpending)
	}
	if math.Abs(pctSum-100) > 1 {
		t.Errorf("percentages sum to %v, want ~100", pctSum)
	}
}

func TestProfileStablePerSession(t *testing.T) {
	c := newCache()
	first := c.Profile("sess-1")
	if first != c.Profile("sess-1") {
		t.Fatal("repeated reads for one session returned different profiles")
	}
	if !first.HasCurrentAccount {
		t.Error("every profile has a current account")
	}
	if first.MonthlySalary < 3000 || first.MonthlySalary > 45000 {
		t.Errorf("salary %v outside generator bounds", first.MonthlySalary)
	}
	if !first.IsEmployed && first.EmploymentDurationMonth != 0 {
		t.Error("unemployed profile with nonzero employment duration")
	}
}

func TestResetRegenerates(t *testing.T) {
	c := newCache()
	first := c.Spending("sess-1")
	c.Reset("sess-1")
	second := c.Spending("sess-1")
	// Totals from independent draws almost surely differ; equality of the
	// whole report would mean the reset did nothing.
	if reflect.DeepEqual(first, second) {
		t.Fatal("report unchanged after reset")
	}
}

func TestSessionsIndependent(t *testing.T) {
	c := newCache()
	a := c.Spending("sess-a")
	b := c.Spending("sess-b")
	if reflect.DeepEqual(a, b) {
		t.Fatal("distinct sessions share one report")
	}
}

func TestEligibilitySummaryTiers(t *testing.T) {
	high := bank.UserProfile{MonthlySalary: 20000, IsEmployed: true, EmploymentDurationMonth: 24, CreditScore: "excellent"}
	lines := session.EligibilitySummary(high)
	if len(lines) != 3 {
		t.Fatalf("got %d summary lines, want 3: %v", len(lines), lines)
	}
	if lines[0] != "High income tier - eligible for premium products" {
		t.Errorf("unexpected income line %q", lines[0])
	}

	low := bank.UserProfile{MonthlySalary: 3500, CreditScore: "fair"}
	lines = session.EligibilitySummary(low)
	if len(lines) != 1 || lines[0] != "Entry income tier - limited products" {
		t.Errorf("unexpected low tier summary %v", lines)
	}
}
