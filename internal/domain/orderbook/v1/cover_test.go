package orderbookv1

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	orderv1 "github.com/AmadeusAI/mobidex/internal/domain/order/v1"
	"github.com/AmadeusAI/mobidex/pkg/amount"
)

func makeEntry(makerAmount, takerAmount, available int64) Entry {
	return Entry{
		Order: &orderv1.ProtocolOrder{
			MakerAssetAmount: amount.FromInt64(makerAmount),
			TakerAssetAmount: amount.FromInt64(takerAmount),
		},
		Available: amount.FromInt64(available),
	}
}

func TestCover(t *testing.T) {
	testCases := []struct {
		name         string
		entries      []Entry
		target       int64
		buffer       int64
		wantSelected int
		wantCovered  int64
		wantPartial  bool
	}{
		{
			name:         "first order covers target",
			entries:      []Entry{makeEntry(1000, 1000, 1000), makeEntry(2000, 2100, 2000)},
			target:       10,
			wantSelected: 1,
			wantCovered:  1000,
		},
		{
			name:         "accumulates across orders",
			entries:      []Entry{makeEntry(100, 100, 100), makeEntry(100, 105, 100), makeEntry(100, 110, 100)},
			target:       150,
			wantSelected: 2,
			wantCovered:  200,
		},
		{
			name:         "slippage buffer pulls in another order",
			entries:      []Entry{makeEntry(100, 100, 100), makeEntry(100, 105, 100), makeEntry(100, 110, 100)},
			target:       150,
			buffer:       60,
			wantSelected: 3,
			wantCovered:  300,
		},
		{
			name:         "exhausted sequence reports partial",
			entries:      []Entry{makeEntry(100, 100, 100)},
			target:       500,
			wantSelected: 1,
			wantCovered:  100,
			wantPartial:  true,
		},
		{
			name:         "fully filled orders never contribute",
			entries:      []Entry{makeEntry(100, 100, 0), makeEntry(100, 105, -5), makeEntry(100, 110, 100)},
			target:       50,
			wantSelected: 1,
			wantCovered:  100,
		},
		{
			name:        "empty book is partial",
			entries:     nil,
			target:      1,
			wantPartial: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := Cover(tc.entries, amount.FromInt64(tc.target), amount.FromInt64(tc.buffer))
			assert.Len(t, result.Selected, tc.wantSelected)
			assert.Equal(t, amount.FromInt64(tc.wantCovered).String(), result.AmountCovered.String())
			assert.Equal(t, tc.wantPartial, result.Partial)
		})
	}
}

func TestCover_WorstCaseNeverBelowBestCase(t *testing.T) {
	entries := []Entry{
		makeEntry(300, 300, 250),
		makeEntry(500, 525, 500),
		makeEntry(1000, 1100, 800),
	}
	target := amount.FromInt64(400)

	best := Cover(entries, target, amount.Zero())
	worst := Cover(entries, target, amount.FromInt64(80))

	assert.True(t, worst.AmountCovered.Cmp(best.AmountCovered) >= 0,
		"a larger slippage buffer must never reduce covered liquidity")
	assert.True(t, len(worst.Selected) >= len(best.Selected))
}

func TestFilterExpired(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	buffer := 30 * time.Second

	entryExpiring := func(expiration int64) Entry {
		return Entry{Order: &orderv1.ProtocolOrder{ExpirationTimeSeconds: expiration}}
	}

	testCases := []struct {
		name       string
		expiration int64
		kept       bool
	}{
		{name: "one past the cutoff is excluded", expiration: now.Unix() - 31, kept: false},
		{name: "exactly at the cutoff is excluded", expiration: now.Unix() - 30, kept: false},
		{name: "inside the buffer is included", expiration: now.Unix() - 29, kept: true},
		{name: "expiring now is included", expiration: now.Unix(), kept: true},
		{name: "future expiry is included", expiration: now.Unix() + 3600, kept: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			kept := FilterExpired([]Entry{entryExpiring(tc.expiration)}, now, buffer)
			if tc.kept {
				assert.Len(t, kept, 1)
			} else {
				assert.Empty(t, kept)
			}
		})
	}
}

func TestSortByPrice(t *testing.T) {
	// asks with maker = base: price = taker/maker
	cheap := &orderv1.ProtocolOrder{MakerAssetAmount: amount.FromInt64(100), TakerAssetAmount: amount.FromInt64(100)}
	mid := &orderv1.ProtocolOrder{MakerAssetAmount: amount.FromInt64(100), TakerAssetAmount: amount.FromInt64(105)}
	dear := &orderv1.ProtocolOrder{MakerAssetAmount: amount.FromInt64(100), TakerAssetAmount: amount.FromInt64(110)}

	asks := []*orderv1.ProtocolOrder{dear, cheap, mid}
	SortAsksByPrice(asks, true)
	assert.Equal(t, []*orderv1.ProtocolOrder{cheap, mid, dear}, asks)

	// bids with maker = quote: price = maker/taker, best (highest) first
	low := &orderv1.ProtocolOrder{MakerAssetAmount: amount.FromInt64(95), TakerAssetAmount: amount.FromInt64(100)}
	high := &orderv1.ProtocolOrder{MakerAssetAmount: amount.FromInt64(105), TakerAssetAmount: amount.FromInt64(100)}

	bids := []*orderv1.ProtocolOrder{low, high}
	SortBidsByPrice(bids, false)
	assert.Equal(t, []*orderv1.ProtocolOrder{high, low}, bids)
}
