package orderbookv1

import (
	orderv1 "github.com/AmadeusAI/mobidex/internal/domain/order/v1"
	"github.com/AmadeusAI/mobidex/pkg/amount"
	"github.com/AmadeusAI/mobidex/pkg/errors"
)

// ScaleMapping names which side of each order is the base asset and how to
// scale both sides to human units. Prices produced under a mapping are
// always quote-per-base, regardless of which book side the orders came from.
type ScaleMapping struct {
	// BaseIsMaker is true when the orders' maker asset is the base asset
	// (asks); false when the taker asset is (bids).
	BaseIsMaker   bool
	BaseDecimals  int32
	QuoteDecimals int32
}

// FillSide selects which of an order's two amounts a fill is measured in.
type FillSide int

const (
	// FillByMaker measures fills in the order's maker asset.
	FillByMaker FillSide = iota
	// FillByTaker measures fills in the order's taker asset.
	FillByTaker
)

// AveragePrice computes the fill-amount-weighted average execution price
// across orders, in quote asset per base asset, human units. An empty order
// set yields zero rather than a division failure. Orders spanning more than
// one market raise InconsistentOrderSet.
func AveragePrice(orders []*orderv1.ProtocolOrder, scale ScaleMapping) (amount.Amount, error) {
	if len(orders) == 0 {
		return amount.Zero(), nil
	}
	if err := requireSingleMarket(orders); err != nil {
		return amount.Zero(), err
	}

	sumBase := amount.Zero()
	sumQuote := amount.Zero()
	for _, order := range orders {
		base, quote := splitAmounts(order, scale.BaseIsMaker)
		sumBase = sumBase.Add(base.ToHumanUnits(scale.BaseDecimals))
		sumQuote = sumQuote.Add(quote.ToHumanUnits(scale.QuoteDecimals))
	}
	if sumBase.IsZero() {
		return amount.Zero(), nil
	}
	return sumQuote.Div(sumBase)
}

// OrderPrice returns the quote-per-base price of a single order in human
// units, or zero for an order with no base amount.
func OrderPrice(order *orderv1.ProtocolOrder, scale ScaleMapping) amount.Amount {
	base, quote := splitAmounts(order, scale.BaseIsMaker)
	baseHuman := base.ToHumanUnits(scale.BaseDecimals)
	if baseHuman.IsZero() {
		return amount.Zero()
	}
	price, err := quote.ToHumanUnits(scale.QuoteDecimals).Div(baseHuman)
	if err != nil {
		return amount.Zero()
	}
	return price
}

// MeanPrice is the unweighted mean of per-order prices, with the same
// single-market requirement as AveragePrice.
func MeanPrice(orders []*orderv1.ProtocolOrder, scale ScaleMapping) (amount.Amount, error) {
	if len(orders) == 0 {
		return amount.Zero(), nil
	}
	if err := requireSingleMarket(orders); err != nil {
		return amount.Zero(), err
	}

	sum := amount.Zero()
	for _, order := range orders {
		sum = sum.Add(OrderPrice(order, scale))
	}
	return sum.Div(amount.FromInt64(int64(len(orders))))
}

// FeeForFill sums each entry's taker fee pro-rated by the fraction of the
// order the fill consumes. The final entry is usually only partially
// consumed to reach the target; its fee is scaled by the consumed fraction
// and rounded down, so the unconsumed remainder is never charged.
func FeeForFill(entries []Entry, target amount.Amount, side FillSide) (amount.Amount, error) {
	fee := amount.Zero()
	remaining := target

	for _, entry := range entries {
		if !remaining.IsPositive() {
			break
		}
		capacity := sideAmount(entry.Order, side)
		if !capacity.IsPositive() {
			continue
		}
		consumed := minAmount(remaining, minAmount(entry.Available, capacity))
		part, err := consumed.MulDivFloor(entry.Order.TakerFee, capacity)
		if err != nil {
			return amount.Zero(), err
		}
		fee = fee.Add(part)
		remaining = remaining.Sub(consumed)
	}

	return fee, nil
}

// CounterAmountForFill converts a fill target measured on one side of the
// selected orders into the corresponding amount on the opposite side, using
// each order's own exchange rate and rounding down.
func CounterAmountForFill(entries []Entry, target amount.Amount, side FillSide) (amount.Amount, error) {
	counter := amount.Zero()
	remaining := target

	for _, entry := range entries {
		if !remaining.IsPositive() {
			break
		}
		capacity := sideAmount(entry.Order, side)
		if !capacity.IsPositive() {
			continue
		}
		opposite := sideAmount(entry.Order, otherSide(side))
		consumed := minAmount(remaining, minAmount(entry.Available, capacity))
		part, err := consumed.MulDivFloor(opposite, capacity)
		if err != nil {
			return amount.Zero(), err
		}
		counter = counter.Add(part)
		remaining = remaining.Sub(consumed)
	}

	return counter, nil
}

// requireSingleMarket rejects order sets spanning more than one maker or
// taker asset; averaging across markets is a caller bug.
func requireSingleMarket(orders []*orderv1.ProtocolOrder) error {
	makerAssetData := orders[0].MakerAssetData
	takerAssetData := orders[0].TakerAssetData
	for _, order := range orders[1:] {
		if order.MakerAssetData != makerAssetData {
			return errors.NewDomainError(errors.InconsistentOrderSet, "orders contain different maker assets")
		}
		if order.TakerAssetData != takerAssetData {
			return errors.NewDomainError(errors.InconsistentOrderSet, "orders contain different taker assets")
		}
	}
	return nil
}

func sideAmount(order *orderv1.ProtocolOrder, side FillSide) amount.Amount {
	if side == FillByMaker {
		return order.MakerAssetAmount
	}
	return order.TakerAssetAmount
}

func otherSide(side FillSide) FillSide {
	if side == FillByMaker {
		return FillByTaker
	}
	return FillByMaker
}

func minAmount(a, b amount.Amount) amount.Amount {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}
