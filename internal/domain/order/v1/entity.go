package orderv1

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/AmadeusAI/mobidex/pkg/amount"
)

// Side represents the direction of a limit order relative to the base asset.
type Side string

const (
	// SideBuy buys the base asset priced in the quote asset.
	SideBuy Side = "buy"
	// SideSell sells the base asset priced in the quote asset.
	SideSell Side = "sell"
)

// LimitOrder is the human-facing order: amounts and price in human units.
// It is transient, consumed once when a protocol order is constructed.
type LimitOrder struct {
	BaseAddress  common.Address `json:"baseAddress"`
	QuoteAddress common.Address `json:"quoteAddress"`
	Side         Side           `json:"side"`
	// Price is quote-per-base, in human units.
	Price amount.Amount `json:"price"`
	// Amount is the base asset quantity, in human units.
	Amount                amount.Amount `json:"amount"`
	ExpirationTimeSeconds int64         `json:"expirationTimeSeconds"`
}

// ProtocolOrder is the wire-level order. All amounts are integers in the
// asset's base-unit scale (human × 10^decimals); mixing scales is the primary
// correctness hazard, so nothing outside the converters builds one directly.
type ProtocolOrder struct {
	MakerAddress          common.Address `json:"makerAddress"`
	TakerAddress          common.Address `json:"takerAddress"`
	FeeRecipientAddress   common.Address `json:"feeRecipientAddress"`
	SenderAddress         common.Address `json:"senderAddress"`
	MakerAssetAmount      amount.Amount  `json:"makerAssetAmount"`
	TakerAssetAmount      amount.Amount  `json:"takerAssetAmount"`
	MakerFee              amount.Amount  `json:"makerFee"`
	TakerFee              amount.Amount  `json:"takerFee"`
	MakerAssetData        string         `json:"makerAssetData"`
	TakerAssetData        string         `json:"takerAssetData"`
	ExpirationTimeSeconds int64          `json:"expirationTimeSeconds"`
	ExchangeAddress       common.Address `json:"exchangeAddress"`
	Salt                  *big.Int       `json:"salt,omitempty"`
}

// SignedOrder is a ProtocolOrder after hashing and signing. Construction is
// additive: hashing and signing never mutate the underlying order fields.
type SignedOrder struct {
	ProtocolOrder
	OrderHash common.Hash   `json:"orderHash"`
	Signature hexutil.Bytes `json:"signature"`
}

// OrderConfig is the relayer-provided enrichment applied to an unsigned
// order before signing.
type OrderConfig struct {
	SenderAddress       common.Address `json:"senderAddress"`
	FeeRecipientAddress common.Address `json:"feeRecipientAddress"`
	MakerFee            amount.Amount  `json:"makerFee"`
	TakerFee            amount.Amount  `json:"takerFee"`
}

// Orderbook holds the standing orders for one (base, quote) pair. Asks sell
// the base asset and are ordered by ascending effective price; bids buy it
// and are ordered descending. The ordering invariant is what makes greedy
// covering correct.
type Orderbook struct {
	Asks []*ProtocolOrder
	Bids []*ProtocolOrder
}

// QuoteInfo is one pricing scenario inside a Quote.
type QuoteInfo struct {
	// EthPerAssetPrice is the execution price in quote asset per base asset,
	// human units.
	EthPerAssetPrice amount.Amount `json:"ethPerAssetPrice"`
	// Fee is the aggregate protocol fee for the fill, in base units of the
	// fee asset.
	Fee amount.Amount `json:"fee"`
}

// Quote is the immutable result of a quote computation.
type Quote struct {
	AssetBuyAmount     amount.Amount    `json:"assetBuyAmount"`
	AssetSellAmount    amount.Amount    `json:"assetSellAmount"`
	AssetData          string           `json:"assetData"`
	BestCaseQuoteInfo  QuoteInfo        `json:"bestCaseQuoteInfo"`
	WorstCaseQuoteInfo QuoteInfo        `json:"worstCaseQuoteInfo"`
	Orders             []*ProtocolOrder `json:"orders"`
}
