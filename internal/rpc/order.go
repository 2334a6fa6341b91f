package rpc

import (
	"encoding/json"
	"net/http"

	orderDomain "github.com/AmadeusAI/mobidex/internal/domain/order"
	orderv1 "github.com/AmadeusAI/mobidex/internal/domain/order/v1"
	"github.com/AmadeusAI/mobidex/pkg/logger"
)

// OrderRPC is the handler set for the order API.
type OrderRPC struct {
	usecase orderDomain.Usecase
	logger  logger.Interface
}

// NewOrderRPC creates a new OrderRPC.
func NewOrderRPC(usecase orderDomain.Usecase, logger logger.Interface) *OrderRPC {
	return &OrderRPC{
		usecase: usecase,
		logger:  logger,
	}
}

// Register mounts the order endpoints.
func (s *OrderRPC) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v2/order", withRequestID(s.PlaceOrder))
}

// PlaceOrder creates, configures, signs and submits a limit order.
func (s *OrderRPC) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var limit orderv1.LimitOrder
	if err := json.NewDecoder(r.Body).Decode(&limit); err != nil {
		writeError(w, http.StatusBadRequest, "malformed limit order")
		return
	}
	if limit.Side != orderv1.SideBuy && limit.Side != orderv1.SideSell {
		writeError(w, http.StatusBadRequest, "side must be buy or sell")
		return
	}
	if !limit.Price.IsPositive() || !limit.Amount.IsPositive() {
		writeError(w, http.StatusBadRequest, "price and amount must be positive")
		return
	}

	signedOrder, err := s.usecase.PlaceOrder(r.Context(), &limit)
	if err != nil {
		s.logger.ErrorContext(r.Context(), err,
			logger.NewField("side", string(limit.Side)),
		)
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, signedOrder)
}
