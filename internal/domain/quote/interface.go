package quote

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	orderv1 "github.com/AmadeusAI/mobidex/internal/domain/order/v1"
	orderbookv1 "github.com/AmadeusAI/mobidex/internal/domain/orderbook/v1"
	"github.com/AmadeusAI/mobidex/pkg/amount"
)

// Usecase is the interface for the quote usecase. Amounts are integer base
// units of the traded asset. A nil quote with a nil error means the market
// cannot serve the request right now; callers treat it as "no quote
// available", not as a failure.
//
//go:generate mockgen -source=interface.go -destination=mock/usecase_mock.go -package=mock
type Usecase interface {
	// BuyQuote prices buying assetBuyAmount of the asset against the
	// standing asks.
	BuyQuote(ctx context.Context, assetAddress common.Address, assetBuyAmount amount.Amount) (*orderv1.Quote, error)
	// SellQuote prices selling assetSellAmount of the asset against the
	// standing bids.
	SellQuote(ctx context.Context, assetAddress common.Address, assetSellAmount amount.Amount) (*orderv1.Quote, error)
}

// FillReconciler resolves per-order availability against on-chain fill
// state, measured on the given side.
type FillReconciler interface {
	RemainingAmounts(ctx context.Context, orders []*orderv1.ProtocolOrder, side orderbookv1.FillSide) ([]orderbookv1.Entry, error)
}
