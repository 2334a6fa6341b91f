package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config represents the application configuration.
type Config struct {
	App      AppConfig      `envPrefix:"APP_"`
	Relayer  RelayerConfig  `envPrefix:"RELAYER_"`
	Ethereum EthereumConfig `envPrefix:"ETHEREUM_"`
	Wallet   WalletConfig   `envPrefix:"WALLET_"`
	Quote    QuoteConfig    `envPrefix:"QUOTE_"`
}

// AppConfig represents the application configuration.
type AppConfig struct {
	Name        string `env:"NAME" envDefault:"mobidex-quoted"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Port        int    `env:"PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

// RelayerConfig represents the order relayer endpoints.
type RelayerConfig struct {
	HTTPEndpoint   string        `env:"HTTP_ENDPOINT" envDefault:"https://api.radarrelay.com/0x/v2"`
	WSEndpoint     string        `env:"WS_ENDPOINT" envDefault:"wss://ws.radarrelay.com/0x/v2"`
	NetworkID      int           `env:"NETWORK_ID" envDefault:"1"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
	SnapshotTTL    time.Duration `env:"SNAPSHOT_TTL" envDefault:"30s"`
	AssetCacheTTL  time.Duration `env:"ASSET_CACHE_TTL" envDefault:"10m"`
	// QuoteAssetSymbol names the pricing denomination asset within the
	// relayer's asset list.
	QuoteAssetSymbol string `env:"QUOTE_ASSET_SYMBOL" envDefault:"WETH"`
}

// EthereumConfig represents the Ethereum node and exchange contract settings.
type EthereumConfig struct {
	RPCEndpoint     string `env:"RPC_ENDPOINT" envDefault:"http://localhost:8545"`
	ExchangeAddress string `env:"EXCHANGE_ADDRESS" envDefault:"0x080bf510fcbf18b91105470639e9561022937712"`
}

// WalletConfig represents the maker wallet settings.
type WalletConfig struct {
	// SigningKey is the hex-encoded secp256k1 private key used to sign
	// orders. Empty disables order placement.
	SigningKey string `env:"SIGNING_KEY"`
}

// QuoteConfig represents quoting policy.
type QuoteConfig struct {
	// SlippagePercentage is the worst-case liquidity buffer as a decimal
	// string, e.g. "0.2" for 20%.
	SlippagePercentage string `env:"SLIPPAGE_PERCENTAGE" envDefault:"0.2"`
	// ExpiryBufferSeconds excludes orders expiring within the buffer.
	ExpiryBufferSeconds int64 `env:"EXPIRY_BUFFER_SECONDS" envDefault:"30"`
}

// Load loads the configuration from the environment.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}
