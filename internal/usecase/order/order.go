// Package order converts between human limit orders and wire-level protocol
// orders, and drives the maker-side lifecycle: create, configure, sign,
// submit.
package order

import (
	"context"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	assetv1 "github.com/AmadeusAI/mobidex/internal/domain/asset/v1"
	orderv1 "github.com/AmadeusAI/mobidex/internal/domain/order/v1"
	"github.com/AmadeusAI/mobidex/pkg/amount"
	"github.com/AmadeusAI/mobidex/pkg/errors"
	"github.com/AmadeusAI/mobidex/pkg/logger"
)

// Usecase is the usecase for order conversion and the maker lifecycle.
type Usecase struct {
	assets          assetv1.Catalog
	relayer         orderv1.RelayerClient
	signer          orderv1.SigningService
	exchangeAddress common.Address
	logger          logger.Interface
}

// NewUsecase creates a new order usecase.
func NewUsecase(
	assets assetv1.Catalog,
	relayer orderv1.RelayerClient,
	signer orderv1.SigningService,
	exchangeAddress common.Address,
	logger logger.Interface,
) *Usecase {
	return &Usecase{
		assets:          assets,
		relayer:         relayer,
		signer:          signer,
		exchangeAddress: exchangeAddress,
		logger:          logger,
	}
}

// ToProtocolOrder converts a human limit order into wire-level amounts. A
// buy makes the quote asset and takes the base asset; a sell is the mirror
// image. Price and amount are taken by absolute value, and both scaled
// amounts round down to integer base units. Unknown assets raise
// MissingAsset.
//
// Addresses, fees and salt are left zero here; CreateOrder fills them.
func (u *Usecase) ToProtocolOrder(limit *orderv1.LimitOrder) (*orderv1.ProtocolOrder, error) {
	base := u.assets.FindByAddress(limit.BaseAddress)
	if base == nil {
		return nil, errors.NewDomainError(errors.MissingAsset, "unknown base asset")
	}
	quote := u.assets.FindByAddress(limit.QuoteAddress)
	if quote == nil {
		return nil, errors.NewDomainError(errors.MissingAsset, "unknown quote asset")
	}

	baseAmount := limit.Amount.Abs().ToBaseUnits(base.Decimals)
	quoteAmount := limit.Price.Abs().Mul(limit.Amount.Abs()).ToBaseUnits(quote.Decimals)

	protocolOrder := &orderv1.ProtocolOrder{
		MakerFee:              amount.Zero(),
		TakerFee:              amount.Zero(),
		ExpirationTimeSeconds: limit.ExpirationTimeSeconds,
	}
	if limit.Side == orderv1.SideBuy {
		protocolOrder.MakerAssetData = quote.AssetData
		protocolOrder.MakerAssetAmount = quoteAmount
		protocolOrder.TakerAssetData = base.AssetData
		protocolOrder.TakerAssetAmount = baseAmount
	} else {
		protocolOrder.MakerAssetData = base.AssetData
		protocolOrder.MakerAssetAmount = baseAmount
		protocolOrder.TakerAssetData = quote.AssetData
		protocolOrder.TakerAssetAmount = quoteAmount
	}
	return protocolOrder, nil
}

// ToLimitOrder is the inverse projection. The side is recovered from which
// of the order's two assets is the catalog's quote asset: maker side means
// the order buys the base, taker side means it sells. An order touching the
// quote asset on neither side belongs to no market and maps to nil.
func (u *Usecase) ToLimitOrder(protocolOrder *orderv1.ProtocolOrder) (*orderv1.LimitOrder, error) {
	quoteAsset := u.assets.QuoteAsset()
	if quoteAsset == nil {
		return nil, errors.NewDomainError(errors.MissingAsset, "no quote asset configured")
	}

	// Asset data is hex; relayers disagree on casing, so compare normalized.
	quoteAssetData := strings.ToLower(quoteAsset.AssetData)

	var side orderv1.Side
	var baseAssetData string
	var baseUnits, quoteUnits amount.Amount
	switch {
	case strings.ToLower(protocolOrder.MakerAssetData) == quoteAssetData:
		side = orderv1.SideBuy
		baseAssetData = protocolOrder.TakerAssetData
		baseUnits, quoteUnits = protocolOrder.TakerAssetAmount, protocolOrder.MakerAssetAmount
	case strings.ToLower(protocolOrder.TakerAssetData) == quoteAssetData:
		side = orderv1.SideSell
		baseAssetData = protocolOrder.MakerAssetData
		baseUnits, quoteUnits = protocolOrder.MakerAssetAmount, protocolOrder.TakerAssetAmount
	default:
		return nil, nil
	}

	baseAsset := u.assets.FindByAssetData(baseAssetData)
	if baseAsset == nil {
		return nil, errors.NewDomainError(errors.MissingAsset, "unknown base asset")
	}

	baseHuman := baseUnits.ToHumanUnits(baseAsset.Decimals)
	if baseHuman.IsZero() {
		return nil, errors.NewDomainError(errors.InvalidOperation, "order has no base amount")
	}
	price, err := quoteUnits.ToHumanUnits(quoteAsset.Decimals).Div(baseHuman)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}

	return &orderv1.LimitOrder{
		BaseAddress:           baseAsset.Address,
		QuoteAddress:          quoteAsset.Address,
		Side:                  side,
		Price:                 price,
		Amount:                baseHuman,
		ExpirationTimeSeconds: protocolOrder.ExpirationTimeSeconds,
	}, nil
}

// CreateOrder builds an unsigned protocol order from a limit order: the
// converted amounts plus the maker address, the exchange address, a fresh
// salt, zero fees and null taker, sender and fee recipient addresses.
func (u *Usecase) CreateOrder(ctx context.Context, limit *orderv1.LimitOrder) (*orderv1.ProtocolOrder, error) {
	protocolOrder, err := u.ToProtocolOrder(limit)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	protocolOrder.MakerAddress = u.signer.Address()
	protocolOrder.ExchangeAddress = u.exchangeAddress
	protocolOrder.Salt = orderv1.NewSalt()
	return protocolOrder, nil
}

// Configure applies the relayer's order config: sender and fee recipient
// addresses and both fees. The relayer rejects orders that do not carry the
// exact values it handed out, so the merge overwrites without inspection.
func (u *Usecase) Configure(ctx context.Context, protocolOrder *orderv1.ProtocolOrder) error {
	config, err := u.relayer.OrderConfig(ctx, protocolOrder)
	if err != nil {
		return errors.TracerFromError(err)
	}
	protocolOrder.SenderAddress = config.SenderAddress
	protocolOrder.FeeRecipientAddress = config.FeeRecipientAddress
	protocolOrder.MakerFee = config.MakerFee
	protocolOrder.TakerFee = config.TakerFee
	return nil
}

// Sign hashes the order and signs the hash with the maker wallet.
func (u *Usecase) Sign(ctx context.Context, protocolOrder *orderv1.ProtocolOrder) (*orderv1.SignedOrder, error) {
	orderHash := protocolOrder.Hash()
	signature, err := u.signer.Sign(ctx, orderHash)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	return &orderv1.SignedOrder{
		ProtocolOrder: *protocolOrder,
		OrderHash:     orderHash,
		Signature:     hexutil.Bytes(signature),
	}, nil
}

// Submit posts a signed order to the relayer.
func (u *Usecase) Submit(ctx context.Context, signedOrder *orderv1.SignedOrder) error {
	if err := u.relayer.SubmitOrder(ctx, signedOrder); err != nil {
		return errors.TracerFromError(err)
	}
	return nil
}

// PlaceOrder runs the full maker lifecycle for a limit order: create,
// configure, sign, submit. The signed order is returned even to a caller
// that only wanted the side effect, so the order hash can be logged or
// tracked.
func (u *Usecase) PlaceOrder(ctx context.Context, limit *orderv1.LimitOrder) (*orderv1.SignedOrder, error) {
	protocolOrder, err := u.CreateOrder(ctx, limit)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	if err := u.Configure(ctx, protocolOrder); err != nil {
		return nil, errors.TracerFromError(err)
	}
	signedOrder, err := u.Sign(ctx, protocolOrder)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	if err := u.Submit(ctx, signedOrder); err != nil {
		return nil, errors.TracerFromError(err)
	}
	u.logger.InfoContext(ctx, "order placed",
		logger.NewField("order_hash", signedOrder.OrderHash.Hex()),
		logger.NewField("side", string(limit.Side)),
	)
	return signedOrder, nil
}
