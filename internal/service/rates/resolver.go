// Package rates resolves currency codes and exchange rates against a
// mid-market table and detects exchange-rate questions in free text.
package rates

import (
	"math"
	"regexp"
	"strings"

	"github.com/ruwais/masraf/internal/model/bank"
)

// currencyAliases folds display names and common speech-to-text
// misspellings onto ISO codes.
var currencyAliases = map[string]string{
	"SAR": "SAR", "SER": "SAR", "RIYAL": "SAR", "SAUDI": "SAR",
	"USD": "USD", "DOLLAR": "USD", "DOLLARS": "USD", "US": "USD",
	"EUR": "EUR", "EURO": "EUR", "EUROS": "EUR",
	"GBP": "GBP", "POUND": "GBP", "POUNDS": "GBP", "STERLING": "GBP",
	"AED": "AED", "DIRHAM": "AED", "DIRHAMS": "AED", "EMIRATI": "AED",
	"EGP": "EGP", "EGB": "EGP", "EGYPTIAN": "EGP", "EGYPT": "EGP",
}

// Normalize maps a raw currency token onto its ISO code. The second
// return is false when the token is not a known currency.
func Normalize(input string) (string, bool) {
	upper := strings.ToUpper(input)
	var b strings.Builder
	for _, r := range upper {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	code, ok := currencyAliases[b.String()]
	return code, ok
}

// Resolver answers rate lookups against a single-base rate table.
type Resolver struct {
	table bank.ExchangeRates
}

func NewResolver(table bank.ExchangeRates) *Resolver {
	return &Resolver{table: table}
}

func (r *Resolver) Table() bank.ExchangeRates { return r.table }

// Rate returns the mid-market rate from one ISO code to another,
// rounded to four decimals. Cross rates go through the base currency.
// The second return is false when either code is absent.
func (r *Resolver) Rate(from, to string) (float64, bool) {
	raw, ok := r.rawRate(from, to)
	if !ok {
		return 0, false
	}
	return math.Round(raw*10000) / 10000, true
}

func (r *Resolver) rawRate(from, to string) (float64, bool) {
	if from == to {
		return 1, true
	}
	if from == r.table.Base {
		rate, ok := r.table.Rates[to]
		return rate, ok
	}
	if to == r.table.Base {
		rate, ok := r.table.Rates[from]
		if !ok || rate == 0 {
			return 0, false
		}
		return 1 / rate, true
	}
	fromRate, okFrom := r.table.Rates[from]
	toRate, okTo := r.table.Rates[to]
	if !okFrom || !okTo || fromRate == 0 {
		return 0, false
	}
	return toRate / fromRate, true
}

// Query is a detected exchange-rate question.
type Query struct {
	From string
	To   string
}

var (
	// Hyphenated codes arrive from speech transcription ("U-S-D").
	hyphenRe = regexp.MustCompile(`([A-Za-z])-([A-Za-z])`)

	queryPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:exchange\s*rate|convert|rate)\s*(?:from|for)?\s*(\w+)\s*(?:to|2|-|→)\s*(\w+)`),
		regexp.MustCompile(`(?i)(\w+)\s*(?:to|2)\s*(\w+)\s*(?:exchange|rate|conversion)`),
		regexp.MustCompile(`(?i)(\w+)\s*(?:to|2)\s*(\w+)`),
		regexp.MustCompile(`(?i)how\s*much\s*is\s*\d*\s*(\w+)\s*in\s*(\w+)`),
		regexp.MustCompile(`(?i)(\w{3})\s*(\w{3})`),
	}

	exchangeVocab = []string{
		"exchange", "rate", "convert",
		"sar", "ser", "usd", "dollar", "egp", "egb", "eur", "gbp",
	}
)

// DetectQuery reports whether a message asks for an exchange rate and,
// if so, the normalized currency pair. Candidate pairs where either
// token is not a currency are skipped so that phrases like "transfer to
// Sara" fall through to the intent cascade.
func DetectQuery(message string) (Query, bool) {
	cleaned := hyphenRe.ReplaceAllString(message, "$1$2")
	lower := strings.ToLower(cleaned)

	gated := false
	for _, word := range exchangeVocab {
		if strings.Contains(lower, word) {
			gated = true
			break
		}
	}
	if !gated {
		return Query{}, false
	}

	for _, pattern := range queryPatterns {
		m := pattern.FindStringSubmatch(cleaned)
		if m == nil {
			continue
		}
		from, okFrom := Normalize(m[1])
		to, okTo := Normalize(m[2])
		if okFrom && okTo {
			return Query{From: from, To: to}, true
		}
	}
	return Query{}, false
}
