// Package orderbookv1 holds the pure orderbook algorithms: expiry filtering,
// greedy cover selection and price/fee aggregation. Everything here operates
// on immutable snapshots and integer base-unit amounts; nothing touches the
// network.
package orderbookv1

import (
	"sort"
	"time"

	orderv1 "github.com/AmadeusAI/mobidex/internal/domain/order/v1"
	"github.com/AmadeusAI/mobidex/pkg/amount"
)

// Entry pairs a standing order with the amount of it still fillable on the
// side a quote consumes. Availability comes from fill reconciliation, not
// from the order's nominal size.
type Entry struct {
	Order     *orderv1.ProtocolOrder
	Available amount.Amount
}

// CoverResult is the outcome of a covering pass.
type CoverResult struct {
	Selected      []Entry
	AmountCovered amount.Amount
	// Partial is set when the sequence was exhausted before the target plus
	// buffer was reached. Callers decide whether partial cover is usable.
	Partial bool
}

// Cover walks entries from the best price, accumulating availability until
// the running total reaches target + slippageBuffer or the sequence is
// exhausted. Entries with no availability are skipped and never contribute.
// Entries must already be price-ordered best first.
func Cover(entries []Entry, target, slippageBuffer amount.Amount) CoverResult {
	goal := target.Add(slippageBuffer)
	result := CoverResult{AmountCovered: amount.Zero()}

	for _, entry := range entries {
		if !entry.Available.IsPositive() {
			continue
		}
		if result.AmountCovered.Cmp(goal) >= 0 {
			break
		}
		result.Selected = append(result.Selected, entry)
		result.AmountCovered = result.AmountCovered.Add(entry.Available)
	}

	result.Partial = result.AmountCovered.Cmp(goal) < 0
	return result
}

// FilterExpired drops orders that expire at or before now − expiryBuffer.
// The evaluation time is taken once per quote request so that best-case and
// worst-case selections see the same cutoff.
func FilterExpired(entries []Entry, now time.Time, expiryBuffer time.Duration) []Entry {
	earliest := now.Unix() - int64(expiryBuffer/time.Second)
	kept := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if entry.Order.ExpirationTimeSeconds > earliest {
			kept = append(kept, entry)
		}
	}
	return kept
}

// SortAsksByPrice orders asks ascending by effective price, best first.
// Prices are compared by cross-multiplying base-unit amounts, which is exact
// and scale-free within one market.
func SortAsksByPrice(orders []*orderv1.ProtocolOrder, baseIsMaker bool) {
	sort.SliceStable(orders, func(i, j int) bool {
		return comparePrice(orders[i], orders[j], baseIsMaker) < 0
	})
}

// SortBidsByPrice orders bids descending by effective price, best first.
func SortBidsByPrice(orders []*orderv1.ProtocolOrder, baseIsMaker bool) {
	sort.SliceStable(orders, func(i, j int) bool {
		return comparePrice(orders[i], orders[j], baseIsMaker) > 0
	})
}

// comparePrice compares quote-per-base prices of two orders without
// division: price(o) = quote(o)/base(o), so price(a) < price(b) iff
// quote(a)·base(b) < quote(b)·base(a).
func comparePrice(a, b *orderv1.ProtocolOrder, baseIsMaker bool) int {
	aBase, aQuote := splitAmounts(a, baseIsMaker)
	bBase, bQuote := splitAmounts(b, baseIsMaker)
	return aQuote.Mul(bBase).Cmp(bQuote.Mul(aBase))
}

func splitAmounts(o *orderv1.ProtocolOrder, baseIsMaker bool) (base, quote amount.Amount) {
	if baseIsMaker {
		return o.MakerAssetAmount, o.TakerAssetAmount
	}
	return o.TakerAssetAmount, o.MakerAssetAmount
}
