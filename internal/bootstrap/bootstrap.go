// Package bootstrap wires configuration, infrastructure, usecases and rpc
// handlers into a runnable service.
package bootstrap

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/AmadeusAI/mobidex/internal/infrastructure/assets"
	"github.com/AmadeusAI/mobidex/internal/infrastructure/ethereum"
	"github.com/AmadeusAI/mobidex/internal/infrastructure/relayer"
	"github.com/AmadeusAI/mobidex/internal/infrastructure/wallet"
	"github.com/AmadeusAI/mobidex/pkg/config"
	"github.com/AmadeusAI/mobidex/pkg/errors"
	"github.com/AmadeusAI/mobidex/pkg/logger"
)

// Bootstrap is the assembled service graph.
type Bootstrap struct {
	Infrastructure Infrastructure
	Usecase        Usecase
	RPC            RPC

	Config *config.Config
	Logger logger.Interface
}

// BootstrapConfig is the config for the bootstrap.
type BootstrapConfig struct {
	Config *config.Config
	Logger logger.Interface
}

// Infrastructure holds the transport-level collaborators.
type Infrastructure struct {
	Relayer        *relayer.Client
	OrderbookCache *relayer.OrderbookCache
	AssetCatalog   *assets.Catalog
	Ethereum       *ethereum.Client
	Signer         *wallet.Signer
}

// Init initializes the bootstrap.
func (b *Bootstrap) Init(ctx context.Context, bootstrapConfig BootstrapConfig) (Bootstrap, error) {
	b.Config = bootstrapConfig.Config
	b.Logger = bootstrapConfig.Logger

	if err := b.registerInfrastructure(ctx); err != nil {
		return Bootstrap{}, errors.TracerFromError(err)
	}
	if err := b.registerUsecase(); err != nil {
		return Bootstrap{}, errors.TracerFromError(err)
	}
	b.registerRPC()

	return *b, nil
}

// Close releases infrastructure connections.
func (b *Bootstrap) Close() {
	if b.Infrastructure.Ethereum != nil {
		b.Infrastructure.Ethereum.Close()
	}
}

func (b *Bootstrap) registerInfrastructure(ctx context.Context) error {
	relayerConfig := b.Config.Relayer

	b.Infrastructure.Relayer = relayer.NewClient(
		relayerConfig.HTTPEndpoint,
		relayerConfig.NetworkID,
		relayerConfig.RequestTimeout,
		b.Logger,
	)
	b.Infrastructure.OrderbookCache = relayer.NewOrderbookCache(
		b.Infrastructure.Relayer,
		relayerConfig.WSEndpoint,
		relayerConfig.SnapshotTTL,
		relayerConfig.RequestTimeout,
		b.Logger,
	)
	b.Infrastructure.AssetCatalog = assets.NewCatalog(
		b.Infrastructure.Relayer,
		relayerConfig.QuoteAssetSymbol,
		relayerConfig.AssetCacheTTL,
		relayerConfig.RequestTimeout,
		b.Logger,
	)

	ethereumClient, err := ethereum.NewClient(
		ctx,
		b.Config.Ethereum.RPCEndpoint,
		common.HexToAddress(b.Config.Ethereum.ExchangeAddress),
	)
	if err != nil {
		return errors.TracerFromError(err)
	}
	b.Infrastructure.Ethereum = ethereumClient

	if b.Config.Wallet.SigningKey != "" {
		signer, err := wallet.NewSigner(b.Config.Wallet.SigningKey)
		if err != nil {
			return errors.TracerFromError(err)
		}
		b.Infrastructure.Signer = signer
	}
	return nil
}

func (b *Bootstrap) expiryBuffer() time.Duration {
	return time.Duration(b.Config.Quote.ExpiryBufferSeconds) * time.Second
}
