package assetv1

import "github.com/ethereum/go-ethereum/common"

// Catalog resolves assets the relayer trades. Lookups return nil when the
// asset is unknown; "unknown asset" is a normal state, not an error.
//
//go:generate mockgen -source=interface.go -destination=mock/catalog_mock.go -package=mock
type Catalog interface {
	// FindByAddress resolves an asset by its token address.
	FindByAddress(address common.Address) *Asset
	// FindByAssetData resolves an asset by its encoded asset data.
	FindByAssetData(assetData string) *Asset
	// QuoteAsset returns the pricing denomination asset (e.g. WETH).
	QuoteAsset() *Asset
}
