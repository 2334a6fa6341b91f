package order

import (
	"context"

	orderv1 "github.com/AmadeusAI/mobidex/internal/domain/order/v1"
)

// Usecase is the interface for the order usecase.
//
//go:generate mockgen -source=interface.go -destination=mock/usecase_mock.go -package=mock
type Usecase interface {
	ToProtocolOrder(limit *orderv1.LimitOrder) (*orderv1.ProtocolOrder, error)
	ToLimitOrder(protocolOrder *orderv1.ProtocolOrder) (*orderv1.LimitOrder, error)
	CreateOrder(ctx context.Context, limit *orderv1.LimitOrder) (*orderv1.ProtocolOrder, error)
	Configure(ctx context.Context, protocolOrder *orderv1.ProtocolOrder) error
	Sign(ctx context.Context, protocolOrder *orderv1.ProtocolOrder) (*orderv1.SignedOrder, error)
	Submit(ctx context.Context, signedOrder *orderv1.SignedOrder) error
	PlaceOrder(ctx context.Context, limit *orderv1.LimitOrder) (*orderv1.SignedOrder, error)
}
