package rpc

import (
	"context"
	"net/http"

	"github.com/ethereum/go-ethereum/common"

	orderv1 "github.com/AmadeusAI/mobidex/internal/domain/order/v1"
	quoteDomain "github.com/AmadeusAI/mobidex/internal/domain/quote"
	"github.com/AmadeusAI/mobidex/pkg/amount"
	"github.com/AmadeusAI/mobidex/pkg/logger"
)

// QuoteRPC is the handler set for the quote API.
type QuoteRPC struct {
	usecase quoteDomain.Usecase
	logger  logger.Interface
}

// NewQuoteRPC creates a new QuoteRPC.
func NewQuoteRPC(usecase quoteDomain.Usecase, logger logger.Interface) *QuoteRPC {
	return &QuoteRPC{
		usecase: usecase,
		logger:  logger,
	}
}

// Register mounts the quote endpoints.
func (s *QuoteRPC) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /v2/quote/buy", withRequestID(s.GetBuyQuote))
	mux.HandleFunc("GET /v2/quote/sell", withRequestID(s.GetSellQuote))
}

// GetBuyQuote prices buying the requested amount of an asset.
func (s *QuoteRPC) GetBuyQuote(w http.ResponseWriter, r *http.Request) {
	s.handleQuote(w, r, s.usecase.BuyQuote)
}

// GetSellQuote prices selling the requested amount of an asset.
func (s *QuoteRPC) GetSellQuote(w http.ResponseWriter, r *http.Request) {
	s.handleQuote(w, r, s.usecase.SellQuote)
}

func (s *QuoteRPC) handleQuote(w http.ResponseWriter, r *http.Request, compute quoteComputeFn) {
	assetAddress := r.URL.Query().Get("assetAddress")
	if !common.IsHexAddress(assetAddress) {
		writeError(w, http.StatusBadRequest, "assetAddress must be a hex address")
		return
	}
	requested, err := amount.FromString(r.URL.Query().Get("amount"))
	if err != nil || !requested.IsPositive() || !requested.Equal(requested.Round(0, amount.RoundDown)) {
		writeError(w, http.StatusBadRequest, "amount must be a positive integer in base units")
		return
	}

	result, err := compute(r.Context(), common.HexToAddress(assetAddress), requested)
	if err != nil {
		s.logger.ErrorContext(r.Context(), err,
			logger.NewField("asset_address", assetAddress),
		)
		writeDomainError(w, err)
		return
	}
	if result == nil {
		writeError(w, http.StatusNotFound, "no quote available")
		return
	}
	writeSuccess(w, result)
}

type quoteComputeFn func(ctx context.Context, assetAddress common.Address, requested amount.Amount) (*orderv1.Quote, error)
