// Package quote computes buy and sell quotes against relayer orderbook
// snapshots, reconciled with on-chain fill state.
package quote

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"

	assetv1 "github.com/AmadeusAI/mobidex/internal/domain/asset/v1"
	orderv1 "github.com/AmadeusAI/mobidex/internal/domain/order/v1"
	orderbookv1 "github.com/AmadeusAI/mobidex/internal/domain/orderbook/v1"
	"github.com/AmadeusAI/mobidex/internal/domain/quote"
	"github.com/AmadeusAI/mobidex/pkg/amount"
	"github.com/AmadeusAI/mobidex/pkg/errors"
	"github.com/AmadeusAI/mobidex/pkg/logger"
)

// Usecase is the usecase for quote computation.
type Usecase struct {
	assets     assetv1.Catalog
	orderbooks orderv1.OrderbookSource
	fills      quote.FillReconciler
	// slippagePercentage sizes the worst-case liquidity buffer as a
	// fraction of the requested amount, e.g. 0.2 for twenty percent.
	slippagePercentage amount.Amount
	expiryBuffer       time.Duration
	logger             logger.Interface

	// now is swappable for tests; quotes evaluate it exactly once so the
	// best-case and worst-case selections share a cutoff.
	now func() time.Time
}

// NewUsecase creates a new quote usecase.
func NewUsecase(
	assets assetv1.Catalog,
	orderbooks orderv1.OrderbookSource,
	fills quote.FillReconciler,
	slippagePercentage amount.Amount,
	expiryBuffer time.Duration,
	logger logger.Interface,
) *Usecase {
	return &Usecase{
		assets:             assets,
		orderbooks:         orderbooks,
		fills:              fills,
		slippagePercentage: slippagePercentage,
		expiryBuffer:       expiryBuffer,
		logger:             logger,
		now:                time.Now,
	}
}

// BuyQuote prices buying assetBuyAmount base units of the asset against the
// standing asks. Returns nil when the asset is unknown, the relayer has no
// book for the pair, or the remaining unexpired liquidity cannot cover the
// requested amount.
func (u *Usecase) BuyQuote(ctx context.Context, assetAddress common.Address, assetBuyAmount amount.Amount) (*orderv1.Quote, error) {
	return u.computeQuote(ctx, assetAddress, assetBuyAmount, orderv1.SideBuy)
}

// SellQuote prices selling assetSellAmount base units of the asset against
// the standing bids, with the same nil semantics as BuyQuote.
func (u *Usecase) SellQuote(ctx context.Context, assetAddress common.Address, assetSellAmount amount.Amount) (*orderv1.Quote, error) {
	return u.computeQuote(ctx, assetAddress, assetSellAmount, orderv1.SideSell)
}

// computeQuote is the shared pipeline. A buy consumes asks, where the maker
// asset is the base; a sell consumes bids, where it is the taker asset.
// Everything downstream is parameterized on that single orientation choice.
func (u *Usecase) computeQuote(ctx context.Context, assetAddress common.Address, target amount.Amount, side orderv1.Side) (*orderv1.Quote, error) {
	if !target.IsPositive() {
		return nil, errors.NewDomainError(errors.GeneralBadRequestError, "quote amount must be positive")
	}

	base := u.assets.FindByAddress(assetAddress)
	if base == nil {
		u.logger.DebugContext(ctx, "no quote: unknown asset",
			logger.NewField("asset_address", assetAddress.Hex()),
		)
		return nil, nil
	}
	quoteAsset := u.assets.QuoteAsset()
	if quoteAsset == nil {
		return nil, errors.NewDomainError(errors.MissingAsset, "no quote asset configured")
	}

	book := u.orderbooks.Snapshot(base.AssetData, quoteAsset.AssetData)
	if book == nil {
		u.logger.DebugContext(ctx, "no quote: no orderbook for pair",
			logger.NewField("symbol", base.Symbol),
		)
		return nil, nil
	}

	orders := book.Asks
	fillSide := orderbookv1.FillByMaker
	baseIsMaker := true
	if side == orderv1.SideSell {
		orders = book.Bids
		fillSide = orderbookv1.FillByTaker
		baseIsMaker = false
	}

	entries, err := u.fills.RemainingAmounts(ctx, orders, fillSide)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	entries = orderbookv1.FilterExpired(entries, u.now(), u.expiryBuffer)
	if len(entries) == 0 {
		u.logger.DebugContext(ctx, "no quote: no fillable orders",
			logger.NewField("symbol", base.Symbol),
		)
		return nil, nil
	}

	best := orderbookv1.Cover(entries, target, amount.Zero())
	if best.Partial {
		u.logger.DebugContext(ctx, "no quote: insufficient liquidity",
			logger.NewField("symbol", base.Symbol),
			logger.NewField("target", target.String()),
			logger.NewField("covered", best.AmountCovered.String()),
		)
		return nil, nil
	}

	// The buffer rounds down so it never demands liquidity the percentage
	// does not. A partial worst-case cover is acceptable: it means the whole
	// book is in play, which is exactly the conservative scenario.
	slippageBuffer := target.Mul(u.slippagePercentage).Round(0, amount.RoundDown)
	worst := orderbookv1.Cover(entries, target, slippageBuffer)

	scale := orderbookv1.ScaleMapping{
		BaseIsMaker:   baseIsMaker,
		BaseDecimals:  base.Decimals,
		QuoteDecimals: quoteAsset.Decimals,
	}
	bestInfo, err := u.quoteInfo(best, target, fillSide, scale)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	worstInfo, err := u.quoteInfo(worst, target, fillSide, scale)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}

	counterAmount, err := orderbookv1.CounterAmountForFill(worst.Selected, target, fillSide)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}

	result := &orderv1.Quote{
		AssetData:          base.AssetData,
		BestCaseQuoteInfo:  bestInfo,
		WorstCaseQuoteInfo: worstInfo,
		Orders:             selectedOrders(worst),
	}
	if side == orderv1.SideBuy {
		result.AssetBuyAmount = target
		result.AssetSellAmount = counterAmount
	} else {
		result.AssetSellAmount = target
		result.AssetBuyAmount = counterAmount
	}
	return result, nil
}

// quoteInfo prices one covering scenario: the availability-weighted average
// execution price over its order set plus the pro-rated taker fee for the
// target amount.
func (u *Usecase) quoteInfo(cover orderbookv1.CoverResult, target amount.Amount, fillSide orderbookv1.FillSide, scale orderbookv1.ScaleMapping) (orderv1.QuoteInfo, error) {
	price, err := orderbookv1.AveragePrice(selectedOrders(cover), scale)
	if err != nil {
		return orderv1.QuoteInfo{}, errors.TracerFromError(err)
	}
	fee, err := orderbookv1.FeeForFill(cover.Selected, target, fillSide)
	if err != nil {
		return orderv1.QuoteInfo{}, errors.TracerFromError(err)
	}
	return orderv1.QuoteInfo{EthPerAssetPrice: price, Fee: fee}, nil
}

func selectedOrders(cover orderbookv1.CoverResult) []*orderv1.ProtocolOrder {
	orders := make([]*orderv1.ProtocolOrder, 0, len(cover.Selected))
	for _, entry := range cover.Selected {
		orders = append(orders, entry.Order)
	}
	return orders
}
