package orderv1

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/AmadeusAI/mobidex/pkg/amount"
)

// ExecutionStateClient reads on-chain fill state from the exchange contract.
//
//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock
type ExecutionStateClient interface {
	// FilledTakerAmount returns the taker amount already filled for the
	// order, in base units. Fill state changes between calls and must be
	// fetched fresh per reconciliation; callers never cache it.
	FilledTakerAmount(ctx context.Context, orderHash common.Hash) (amount.Amount, error)
}

// RelayerClient talks to the off-chain order relayer.
type RelayerClient interface {
	// OrderConfig asks the relayer for the fee and address fields it
	// requires on a new order.
	OrderConfig(ctx context.Context, order *ProtocolOrder) (*OrderConfig, error)
	// SubmitOrder posts a signed order to the relayer.
	SubmitOrder(ctx context.Context, order *SignedOrder) error
}

// OrderbookSource provides point-in-time orderbook snapshots. A snapshot is
// an immutable copy: concurrent quote computations never observe each
// other's reads.
type OrderbookSource interface {
	// Snapshot returns the book for the pair, or nil when the relayer has
	// none. Nil is the normal "no market" state, not an error.
	Snapshot(baseAssetData, quoteAssetData string) *Orderbook
}

// SigningService signs order hashes on behalf of the maker wallet. Key
// management stays behind this interface.
type SigningService interface {
	// Address returns the maker address the service signs for.
	Address() common.Address
	// Sign produces a signature over the order hash.
	Sign(ctx context.Context, orderHash common.Hash) ([]byte, error)
}
