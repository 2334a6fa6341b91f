package bootstrap

import (
	"github.com/ethereum/go-ethereum/common"

	orderDomain "github.com/AmadeusAI/mobidex/internal/domain/order"
	quoteDomain "github.com/AmadeusAI/mobidex/internal/domain/quote"
	fillUc "github.com/AmadeusAI/mobidex/internal/usecase/fill"
	orderUc "github.com/AmadeusAI/mobidex/internal/usecase/order"
	quoteUc "github.com/AmadeusAI/mobidex/internal/usecase/quote"
	"github.com/AmadeusAI/mobidex/pkg/amount"
	"github.com/AmadeusAI/mobidex/pkg/errors"
)

// Usecase is the usecase layer of the service.
type Usecase struct {
	FillUsecase  quoteDomain.FillReconciler
	QuoteUsecase quoteDomain.Usecase
	// OrderUsecase is nil when no signing key is configured; the order
	// endpoint is not mounted in that case.
	OrderUsecase orderDomain.Usecase
}

// registerUsecase registers the usecase layer.
func (b *Bootstrap) registerUsecase() error {
	slippage, err := amount.FromString(b.Config.Quote.SlippagePercentage)
	if err != nil {
		return errors.TracerFromError(err)
	}

	b.Usecase.FillUsecase = fillUc.NewUsecase(b.Infrastructure.Ethereum, b.Logger)
	b.Usecase.QuoteUsecase = quoteUc.NewUsecase(
		b.Infrastructure.AssetCatalog,
		b.Infrastructure.OrderbookCache,
		b.Usecase.FillUsecase,
		slippage,
		b.expiryBuffer(),
		b.Logger,
	)
	if b.Infrastructure.Signer != nil {
		b.Usecase.OrderUsecase = orderUc.NewUsecase(
			b.Infrastructure.AssetCatalog,
			b.Infrastructure.Relayer,
			b.Infrastructure.Signer,
			common.HexToAddress(b.Config.Ethereum.ExchangeAddress),
			b.Logger,
		)
	}
	return nil
}
