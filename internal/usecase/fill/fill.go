// Package fill reconciles nominal order sizes against on-chain fill state,
// producing the per-order availability the covering algorithms consume.
package fill

import (
	"context"

	"golang.org/x/sync/errgroup"

	orderv1 "github.com/AmadeusAI/mobidex/internal/domain/order/v1"
	orderbookv1 "github.com/AmadeusAI/mobidex/internal/domain/orderbook/v1"
	"github.com/AmadeusAI/mobidex/pkg/amount"
	"github.com/AmadeusAI/mobidex/pkg/errors"
	"github.com/AmadeusAI/mobidex/pkg/logger"
)

// Usecase is the usecase for fill reconciliation.
type Usecase struct {
	executionState orderv1.ExecutionStateClient
	logger         logger.Interface
}

// NewUsecase creates a new fill reconciliation usecase.
func NewUsecase(executionState orderv1.ExecutionStateClient, logger logger.Interface) *Usecase {
	return &Usecase{executionState: executionState, logger: logger}
}

// RemainingAmounts fetches the filled taker amount for every order and
// returns entries whose availability is measured on the given side. The
// remaining maker amount is derived proportionally from the remaining taker
// amount and rounded down, so availability never overstates what a fill can
// actually obtain. Fully filled orders are dropped; input ordering is
// preserved, so a price-sorted input stays price-sorted.
//
// Fill state is read fresh on every call, one lookup per order, fanned out
// concurrently. Any lookup failure fails the whole reconciliation: a quote
// built on partially stale availability would be silently wrong.
func (u *Usecase) RemainingAmounts(ctx context.Context, orders []*orderv1.ProtocolOrder, side orderbookv1.FillSide) ([]orderbookv1.Entry, error) {
	remaining := make([]amount.Amount, len(orders))

	group, groupCtx := errgroup.WithContext(ctx)
	for i, order := range orders {
		group.Go(func() error {
			filled, err := u.executionState.FilledTakerAmount(groupCtx, order.Hash())
			if err != nil {
				return errors.TracerFromError(err)
			}
			remaining[i] = order.TakerAssetAmount.Sub(filled)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, errors.TracerFromError(err)
	}

	entries := make([]orderbookv1.Entry, 0, len(orders))
	for i, order := range orders {
		available, err := availabilityOnSide(order, remaining[i], side)
		if err != nil {
			return nil, errors.TracerFromError(err)
		}
		if !available.IsPositive() {
			u.logger.DebugContext(ctx, "dropping fully filled order",
				logger.NewField("order_hash", order.Hash().Hex()),
			)
			continue
		}
		entries = append(entries, orderbookv1.Entry{Order: order, Available: available})
	}
	return entries, nil
}

// availabilityOnSide converts a remaining taker amount to the requested
// side. The maker side scales by the order's own rate and floors.
func availabilityOnSide(order *orderv1.ProtocolOrder, remainingTaker amount.Amount, side orderbookv1.FillSide) (amount.Amount, error) {
	if remainingTaker.IsNegative() {
		remainingTaker = amount.Zero()
	}
	if side == orderbookv1.FillByTaker {
		return remainingTaker, nil
	}
	if !order.TakerAssetAmount.IsPositive() {
		return amount.Zero(), nil
	}
	return remainingTaker.MulDivFloor(order.MakerAssetAmount, order.TakerAssetAmount)
}
