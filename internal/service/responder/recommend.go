package responder

import (
	"math/rand"

	"github.com/ruwais/masraf/internal/model/bank"
)

// RecommendContext describes the signals used to pick contextual product
// recommendations.
type RecommendContext struct {
	HighSpending           bool
	HighDiningSpending     bool
	LowSavings             bool
	InternationalTransfers bool
	HasBills               bool
	HasSubscriptions       bool
	HighBalance            bool
}

// Recommend filters the catalog by the context's target conditions and
// returns up to count products in random order. When filtering leaves
// fewer than count candidates the whole catalog is used instead, so a
// narrow context never produces an empty carousel.
func Recommend(catalog []bank.Product, ctx RecommendContext, count int) []bank.Product {
	filtered := catalog

	if ctx.HighSpending {
		filtered = keep(filtered, bank.TargetHighSpending)
	}
	if ctx.HighDiningSpending {
		filtered = keep(filtered, bank.TargetHighDiningSpending, bank.TargetHighSpending)
	}
	if ctx.LowSavings {
		filtered = keep(filtered, bank.TargetLowSavings, bank.TargetLowSavingsRate)
	}
	if ctx.InternationalTransfers {
		filtered = keep(filtered, bank.TargetInternationalTransfers)
	}
	if ctx.HasBills {
		filtered = keep(filtered, bank.TargetHasBills)
	}
	if ctx.HasSubscriptions {
		filtered = keep(filtered, bank.TargetHasSubscriptions)
	}
	if ctx.HighBalance {
		filtered = keep(filtered, bank.TargetHighBalance)
	}

	if len(filtered) < count {
		filtered = catalog
	}

	shuffled := append([]bank.Product(nil), filtered...)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if len(shuffled) > count {
		shuffled = shuffled[:count]
	}
	return shuffled
}

// keep retains products tagged with any of the given conditions. Products
// tagged for everyone always stay.
func keep(products []bank.Product, conditions ...string) []bank.Product {
	var out []bank.Product
	for _, p := range products {
		if tagged(p, bank.TargetAll) || taggedAny(p, conditions) {
			out = append(out, p)
		}
	}
	return out
}

func tagged(p bank.Product, condition string) bool {
	for _, c := range p.TargetConditions {
		if c == condition {
			return true
		}
	}
	return false
}

func taggedAny(p bank.Product, conditions []string) bool {
	for _, c := range conditions {
		if tagged(p, c) {
			return true
		}
	}
	return false
}
