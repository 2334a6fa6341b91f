package bootstrap

import (
	"net/http"

	"github.com/AmadeusAI/mobidex/internal/rpc"
)

// RPC is the HTTP handler layer of the service.
type RPC struct {
	QuoteRPC *rpc.QuoteRPC
	OrderRPC *rpc.OrderRPC
}

// registerRPC registers the HTTP handler layer.
func (b *Bootstrap) registerRPC() {
	b.RPC.QuoteRPC = rpc.NewQuoteRPC(b.Usecase.QuoteUsecase, b.Logger)
	if b.Usecase.OrderUsecase != nil {
		b.RPC.OrderRPC = rpc.NewOrderRPC(b.Usecase.OrderUsecase, b.Logger)
	}
}

// Router mounts every registered handler on a fresh mux.
func (b *Bootstrap) Router() *http.ServeMux {
	mux := http.NewServeMux()
	b.RPC.QuoteRPC.Register(mux)
	if b.RPC.OrderRPC != nil {
		b.RPC.OrderRPC.Register(mux)
	}
	return mux
}
