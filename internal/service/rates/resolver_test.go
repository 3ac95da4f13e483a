package rates_test

import (
	"math"
	"testing"

	"github.com/ruwais/masraf/internal/model/bank"
	"github.com/ruwais/masraf/internal/service/rates"
)

func newResolver() *rates.Resolver {
	return rates.NewResolver(bank.Seed().Rates)
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		code string
		ok   bool
	}{
		{"usd", "USD", true},
		{"Dollars", "USD", true},
		{"SER", "SAR", true},
		{"riyal", "SAR", true},
		{"U.S.D", "USD", true},
		{"sterling", "GBP", true},
		{"egb", "EGP", true},
		{"emirati", "AED", true},
		{"yen", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		code, ok := rates.Normalize(tc.in)
		if ok != tc.ok || code != tc.code {
			t.Errorf("Normalize(%q) = %q %v, want %q %v", tc.in, code, ok, tc.code, tc.ok)
		}
	}
}

func TestRateIdentity(t *testing.T) {
	r := newResolver()
	for _, code := range []string{"SAR", "USD", "EGP"} {
		rate, ok := r.Rate(code, code)
		if !ok || rate != 1 {
			t.Errorf("Rate(%s, %s) = %v %v, want 1 true", code, code, rate, ok)
		}
	}
}

func TestRateInversionSymmetry(t *testing.T) {
	r := newResolver()
	forward, ok := r.Rate("SAR", "USD")
	if !ok {
		t.Fatal("SAR to USD missing")
	}
	back, ok := r.Rate("USD", "SAR")
	if !ok {
		t.Fatal("USD to SAR missing")
	}
	if math.Abs(forward*back-1) > 0.001 {
		t.Errorf("forward %v * back %v = %v, want ~1", forward, back, forward*back)
	}
}

func TestRateCross(t *testing.T) {
	r := newResolver()
	table := r.Table()
	got, ok := r.Rate("USD", "EUR")
	if !ok {
		t.Fatal("USD to EUR missing")
	}
	want := table.Rates["EUR"] / table.Rates["USD"]
	if math.Abs(got-want) > 0.0001 {
		t.Errorf("Rate(USD, EUR) = %v, want %v", got, want)
	}
}

func TestRateUnknownCurrency(t *testing.T) {
	r := newResolver()
	if _, ok := r.Rate("SAR", "JPY"); ok {
		t.Error("expected no rate for JPY")
	}
	if _, ok := r.Rate("JPY", "USD"); ok {
		t.Error("expected no cross rate through an unknown code")
	}
}

func TestDetectQuery(t *testing.T) {
	cases := []struct {
		message string
		from    string
		to      string
	}{
		{"what is the exchange rate from USD to SAR", "USD", "SAR"},
		{"convert euros to dollars", "EUR", "USD"},
		{"usd to sar rate", "USD", "SAR"},
		{"how much is 100 USD in SAR", "USD", "SAR"},
		{"U-S-D to S-A-R rate", "USD", "SAR"},
		{"sar usd", "SAR", "USD"},
		{"pound to dirham rate", "GBP", "AED"},
	}
	for _, tc := range cases {
		q, ok := rates.DetectQuery(tc.message)
		if !ok {
			t.Errorf("DetectQuery(%q): no match", tc.message)
			continue
		}
		if q.From != tc.from || q.To != tc.to {
			t.Errorf("DetectQuery(%q) = %s/%s, want %s/%s", tc.message, q.From, q.To, tc.from, tc.to)
		}
	}
}

func TestDetectQueryNegative(t *testing.T) {
	for _, msg := range []string{
		"transfer 100 to Sara",
		"show my bills",
		"hello",
		"what can you do",
	} {
		if q, ok := rates.DetectQuery(msg); ok {
			t.Errorf("DetectQuery(%q) = %v, want no match", msg, q)
		}
	}
}
