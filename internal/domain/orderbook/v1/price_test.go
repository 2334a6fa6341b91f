package orderbookv1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orderv1 "github.com/AmadeusAI/mobidex/internal/domain/order/v1"
	"github.com/AmadeusAI/mobidex/pkg/amount"
	"github.com/AmadeusAI/mobidex/pkg/errors"
)

// askOrder builds an ask on an 18-decimal base / 6-decimal quote market:
// maker asset is the base, taker asset is the quote.
func askOrder(baseHuman, quoteHuman string) *orderv1.ProtocolOrder {
	return &orderv1.ProtocolOrder{
		MakerAssetData:   "0xbase",
		TakerAssetData:   "0xquote",
		MakerAssetAmount: amount.MustFromString(baseHuman).ToBaseUnits(18),
		TakerAssetAmount: amount.MustFromString(quoteHuman).ToBaseUnits(6),
	}
}

func askScale() ScaleMapping {
	return ScaleMapping{BaseIsMaker: true, BaseDecimals: 18, QuoteDecimals: 6}
}

func TestAveragePrice(t *testing.T) {
	testCases := []struct {
		name      string
		orders    []*orderv1.ProtocolOrder
		wantPrice string
		wantCode  errors.ErrorCode
	}{
		{
			name:      "empty order set yields zero",
			orders:    nil,
			wantPrice: "0",
		},
		{
			name:      "single order",
			orders:    []*orderv1.ProtocolOrder{askOrder("2", "3")},
			wantPrice: "1.5",
		},
		{
			name: "weighted by base amount not averaged per order",
			// 1 @ 1.00 and 3 @ 2.00: (1 + 6) / 4 = 1.75, not (1+2)/2
			orders:    []*orderv1.ProtocolOrder{askOrder("1", "1"), askOrder("3", "6")},
			wantPrice: "1.75",
		},
		{
			name: "mixed maker assets rejected",
			orders: []*orderv1.ProtocolOrder{
				askOrder("1", "1"),
				{
					MakerAssetData:   "0xother",
					TakerAssetData:   "0xquote",
					MakerAssetAmount: amount.MustFromString("1").ToBaseUnits(18),
					TakerAssetAmount: amount.MustFromString("1").ToBaseUnits(6),
				},
			},
			wantCode: errors.InconsistentOrderSet,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			price, err := AveragePrice(tc.orders, askScale())
			if tc.wantCode != "" {
				assert.True(t, errors.HasCode(err, tc.wantCode))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantPrice, price.String())
		})
	}
}

func TestAveragePrice_WithinPerOrderBounds(t *testing.T) {
	orders := []*orderv1.ProtocolOrder{
		askOrder("1", "1"),
		askOrder("2", "2.1"),
		askOrder("5", "5.5"),
	}
	scale := askScale()

	avg, err := AveragePrice(orders, scale)
	require.NoError(t, err)

	lowest := OrderPrice(orders[0], scale)
	highest := OrderPrice(orders[2], scale)
	assert.True(t, avg.Cmp(lowest) >= 0)
	assert.True(t, avg.Cmp(highest) <= 0)
}

func TestOrderPrice(t *testing.T) {
	scale := askScale()

	assert.Equal(t, "1.05", OrderPrice(askOrder("2", "2.1"), scale).String())
	assert.Equal(t, "0", OrderPrice(askOrder("0", "5"), scale).String())
}

func TestMeanPrice(t *testing.T) {
	orders := []*orderv1.ProtocolOrder{
		askOrder("1", "1"),
		askOrder("10", "20"),
	}

	mean, err := MeanPrice(orders, askScale())
	require.NoError(t, err)
	// unweighted: (1.00 + 2.00) / 2, unlike the 1.909... weighted average
	assert.Equal(t, "1.5", mean.String())
}

func TestFeeForFill(t *testing.T) {
	withFee := func(e Entry, fee int64) Entry {
		e.Order.TakerFee = amount.FromInt64(fee)
		return e
	}

	testCases := []struct {
		name    string
		entries []Entry
		target  int64
		side    FillSide
		want    int64
	}{
		{
			name:    "full consumption charges full fee",
			entries: []Entry{withFee(makeEntry(100, 100, 100), 10)},
			target:  100,
			side:    FillByMaker,
			want:    10,
		},
		{
			name:    "partial consumption pro-rates and floors",
			entries: []Entry{withFee(makeEntry(100, 100, 100), 15)},
			target:  50,
			side:    FillByMaker,
			want:    7, // 50/100 of 15, floored
		},
		{
			name: "last order charged only for the consumed slice",
			entries: []Entry{
				withFee(makeEntry(100, 100, 100), 10),
				withFee(makeEntry(200, 200, 200), 20),
			},
			target: 150,
			side:   FillByMaker,
			want:   15, // 10 + 20·(50/200)
		},
		{
			name:    "availability caps consumption",
			entries: []Entry{withFee(makeEntry(100, 100, 40), 10), withFee(makeEntry(100, 100, 100), 10)},
			target:  100,
			side:    FillByMaker,
			want:    10, // 10·(40/100) + 10·(60/100)
		},
		{
			name:    "fee measured against the taker side",
			entries: []Entry{withFee(makeEntry(100, 200, 200), 10)},
			target:  50,
			side:    FillByTaker,
			want:    2, // 50/200 of 10
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fee, err := FeeForFill(tc.entries, amount.FromInt64(tc.target), tc.side)
			require.NoError(t, err)
			assert.Equal(t, amount.FromInt64(tc.want).String(), fee.String())
		})
	}
}

func TestCounterAmountForFill(t *testing.T) {
	testCases := []struct {
		name    string
		entries []Entry
		target  int64
		side    FillSide
		want    int64
	}{
		{
			name:    "single order proportional conversion",
			entries: []Entry{makeEntry(100, 150, 100)},
			target:  50,
			side:    FillByMaker,
			want:    75, // 50 maker at a 150/100 rate
		},
		{
			name:    "conversion floors per order",
			entries: []Entry{makeEntry(3, 100, 3)},
			target:  1,
			side:    FillByMaker,
			want:    33, // 100/3 floored
		},
		{
			name: "spans orders at their own rates",
			entries: []Entry{
				makeEntry(100, 100, 100),
				makeEntry(100, 110, 100),
			},
			target: 150,
			side:   FillByMaker,
			want:   155, // 100 + 110·(50/100)
		},
		{
			name:    "taker side target converts to maker",
			entries: []Entry{makeEntry(200, 100, 100)},
			target:  50,
			side:    FillByTaker,
			want:    100,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			counter, err := CounterAmountForFill(tc.entries, amount.FromInt64(tc.target), tc.side)
			require.NoError(t, err)
			assert.Equal(t, amount.FromInt64(tc.want).String(), counter.String())
		})
	}
}
