package fill

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	orderv1 "github.com/AmadeusAI/mobidex/internal/domain/order/v1"
	orderMock "github.com/AmadeusAI/mobidex/internal/domain/order/v1/mock"
	orderbookv1 "github.com/AmadeusAI/mobidex/internal/domain/orderbook/v1"
	"github.com/AmadeusAI/mobidex/pkg/amount"
	loggerMock "github.com/AmadeusAI/mobidex/pkg/logger/mock"
)

func TestUsecase_RemainingAmounts(t *testing.T) {
	order := func(maker, taker int64, salt int64) *orderv1.ProtocolOrder {
		return &orderv1.ProtocolOrder{
			MakerAssetAmount:      amount.FromInt64(maker),
			TakerAssetAmount:      amount.FromInt64(taker),
			ExpirationTimeSeconds: salt,
		}
	}

	testCases := []struct {
		name     string
		orders   []*orderv1.ProtocolOrder
		side     orderbookv1.FillSide
		mockFn   func(t *testing.T, orders []*orderv1.ProtocolOrder, executionState *orderMock.MockExecutionStateClient, logger *loggerMock.MockInterface)
		assertFn func(t *testing.T, entries []orderbookv1.Entry, err error)
	}{
		{
			name:   "untouched order keeps full availability",
			orders: []*orderv1.ProtocolOrder{order(100, 200, 1)},
			side:   orderbookv1.FillByTaker,
			mockFn: func(t *testing.T, orders []*orderv1.ProtocolOrder, executionState *orderMock.MockExecutionStateClient, logger *loggerMock.MockInterface) {
				executionState.EXPECT().
					FilledTakerAmount(gomock.Any(), orders[0].Hash()).
					Return(amount.Zero(), nil)
			},
			assertFn: func(t *testing.T, entries []orderbookv1.Entry, err error) {
				assert.NoError(t, err)
				assert.Len(t, entries, 1)
				assert.Equal(t, "200", entries[0].Available.String())
			},
		},
		{
			name:   "partial fill reduces maker availability proportionally",
			orders: []*orderv1.ProtocolOrder{order(100, 200, 1)},
			side:   orderbookv1.FillByMaker,
			mockFn: func(t *testing.T, orders []*orderv1.ProtocolOrder, executionState *orderMock.MockExecutionStateClient, logger *loggerMock.MockInterface) {
				executionState.EXPECT().
					FilledTakerAmount(gomock.Any(), orders[0].Hash()).
					Return(amount.FromInt64(50), nil)
			},
			assertFn: func(t *testing.T, entries []orderbookv1.Entry, err error) {
				assert.NoError(t, err)
				assert.Len(t, entries, 1)
				// 150 taker remaining at a 100/200 rate
				assert.Equal(t, "75", entries[0].Available.String())
			},
		},
		{
			name:   "remaining maker amount floors",
			orders: []*orderv1.ProtocolOrder{order(100, 3, 1)},
			side:   orderbookv1.FillByMaker,
			mockFn: func(t *testing.T, orders []*orderv1.ProtocolOrder, executionState *orderMock.MockExecutionStateClient, logger *loggerMock.MockInterface) {
				executionState.EXPECT().
					FilledTakerAmount(gomock.Any(), orders[0].Hash()).
					Return(amount.FromInt64(1), nil)
			},
			assertFn: func(t *testing.T, entries []orderbookv1.Entry, err error) {
				assert.NoError(t, err)
				assert.Len(t, entries, 1)
				// 2/3 of 100, floored
				assert.Equal(t, "66", entries[0].Available.String())
			},
		},
		{
			name:   "fully filled order is dropped and ordering preserved",
			orders: []*orderv1.ProtocolOrder{order(100, 200, 1), order(100, 200, 2), order(100, 200, 3)},
			side:   orderbookv1.FillByTaker,
			mockFn: func(t *testing.T, orders []*orderv1.ProtocolOrder, executionState *orderMock.MockExecutionStateClient, logger *loggerMock.MockInterface) {
				executionState.EXPECT().
					FilledTakerAmount(gomock.Any(), orders[0].Hash()).
					Return(amount.FromInt64(10), nil)
				executionState.EXPECT().
					FilledTakerAmount(gomock.Any(), orders[1].Hash()).
					Return(amount.FromInt64(200), nil)
				executionState.EXPECT().
					FilledTakerAmount(gomock.Any(), orders[2].Hash()).
					Return(amount.FromInt64(20), nil)
				logger.EXPECT().DebugContext(gomock.Any(), gomock.Any(), gomock.Any()).Times(1)
			},
			assertFn: func(t *testing.T, entries []orderbookv1.Entry, err error) {
				assert.NoError(t, err)
				assert.Len(t, entries, 2)
				assert.Equal(t, int64(1), entries[0].Order.ExpirationTimeSeconds)
				assert.Equal(t, int64(3), entries[1].Order.ExpirationTimeSeconds)
				assert.Equal(t, "190", entries[0].Available.String())
				assert.Equal(t, "180", entries[1].Available.String())
			},
		},
		{
			name:   "overfilled order clamps to zero and is dropped",
			orders: []*orderv1.ProtocolOrder{order(100, 200, 1)},
			side:   orderbookv1.FillByMaker,
			mockFn: func(t *testing.T, orders []*orderv1.ProtocolOrder, executionState *orderMock.MockExecutionStateClient, logger *loggerMock.MockInterface) {
				executionState.EXPECT().
					FilledTakerAmount(gomock.Any(), orders[0].Hash()).
					Return(amount.FromInt64(250), nil)
				logger.EXPECT().DebugContext(gomock.Any(), gomock.Any(), gomock.Any()).Times(1)
			},
			assertFn: func(t *testing.T, entries []orderbookv1.Entry, err error) {
				assert.NoError(t, err)
				assert.Empty(t, entries)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			executionState := orderMock.NewMockExecutionStateClient(ctrl)
			mockLogger := loggerMock.NewMockInterface(ctrl)
			tc.mockFn(t, tc.orders, executionState, mockLogger)

			usecase := NewUsecase(executionState, mockLogger)
			entries, err := usecase.RemainingAmounts(context.Background(), tc.orders, tc.side)
			tc.assertFn(t, entries, err)
		})
	}
}

func TestUsecase_RemainingAmounts_LookupFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	executionState := orderMock.NewMockExecutionStateClient(ctrl)
	mockLogger := loggerMock.NewMockInterface(ctrl)

	order := &orderv1.ProtocolOrder{
		MakerAssetAmount: amount.FromInt64(100),
		TakerAssetAmount: amount.FromInt64(200),
	}
	executionState.EXPECT().
		FilledTakerAmount(gomock.Any(), order.Hash()).
		Return(amount.Zero(), errors.New("node unavailable"))

	usecase := NewUsecase(executionState, mockLogger)
	entries, err := usecase.RemainingAmounts(context.Background(), []*orderv1.ProtocolOrder{order}, orderbookv1.FillByTaker)
	assert.Error(t, err)
	assert.Nil(t, entries)
}
