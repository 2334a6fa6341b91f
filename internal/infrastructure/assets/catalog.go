// Package assets implements the asset catalog against the relayer's assets
// endpoint with a TTL cache.
package assets

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	gocache "github.com/patrickmn/go-cache"

	assetv1 "github.com/AmadeusAI/mobidex/internal/domain/asset/v1"
	"github.com/AmadeusAI/mobidex/pkg/errors"
	"github.com/AmadeusAI/mobidex/pkg/logger"
)

const catalogKey = "catalog"

// Fetcher is the slice of the relayer client the catalog needs.
type Fetcher interface {
	Assets(ctx context.Context) ([]*assetv1.Asset, error)
}

// Catalog is a relayer-backed assetv1.Catalog. The full asset list is
// fetched at most once per TTL; lookups between refreshes are map reads.
type Catalog struct {
	fetcher        Fetcher
	quoteSymbol    string
	requestTimeout time.Duration
	cache          *gocache.Cache
	mu             sync.Mutex
	logger         logger.Interface
}

// snapshot is one fetched generation of the catalog, indexed both ways.
type snapshot struct {
	byAddress   map[common.Address]*assetv1.Asset
	byAssetData map[string]*assetv1.Asset
	quote       *assetv1.Asset
}

// NewCatalog creates a new catalog. quoteSymbol names the pricing
// denomination asset within the relayer's list, e.g. "WETH".
func NewCatalog(fetcher Fetcher, quoteSymbol string, cacheTTL, requestTimeout time.Duration, logger logger.Interface) *Catalog {
	return &Catalog{
		fetcher:        fetcher,
		quoteSymbol:    quoteSymbol,
		requestTimeout: requestTimeout,
		cache:          gocache.New(cacheTTL, cacheTTL),
		logger:         logger,
	}
}

// FindByAddress resolves an asset by token address, nil when unknown.
func (c *Catalog) FindByAddress(address common.Address) *assetv1.Asset {
	current := c.current()
	if current == nil {
		return nil
	}
	return current.byAddress[address]
}

// FindByAssetData resolves an asset by encoded asset data, nil when unknown.
func (c *Catalog) FindByAssetData(assetData string) *assetv1.Asset {
	current := c.current()
	if current == nil {
		return nil
	}
	return current.byAssetData[strings.ToLower(assetData)]
}

// QuoteAsset returns the configured pricing denomination asset, nil when the
// relayer does not list it.
func (c *Catalog) QuoteAsset() *assetv1.Asset {
	current := c.current()
	if current == nil {
		return nil
	}
	return current.quote
}

// current returns the live snapshot, refreshing it when the TTL has lapsed.
// The mutex only serializes refreshes; a failed refresh leaves the catalog
// empty until the next call rather than panicking lookups.
func (c *Catalog) current() *snapshot {
	if cached, ok := c.cache.Get(catalogKey); ok {
		return cached.(*snapshot)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if cached, ok := c.cache.Get(catalogKey); ok {
		return cached.(*snapshot)
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.requestTimeout)
	defer cancel()

	assets, err := c.fetcher.Assets(ctx)
	if err != nil {
		c.logger.Error(errors.TracerFromError(err))
		return nil
	}

	current := &snapshot{
		byAddress:   make(map[common.Address]*assetv1.Asset, len(assets)),
		byAssetData: make(map[string]*assetv1.Asset, len(assets)),
	}
	for _, asset := range assets {
		current.byAddress[asset.Address] = asset
		current.byAssetData[strings.ToLower(asset.AssetData)] = asset
		if asset.Symbol == c.quoteSymbol {
			current.quote = asset
		}
	}
	c.cache.SetDefault(catalogKey, current)
	c.logger.Debug("asset catalog refreshed", logger.NewField("assets", len(assets)))
	return current
}
