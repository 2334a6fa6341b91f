package relayer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	gocache "github.com/patrickmn/go-cache"

	orderv1 "github.com/AmadeusAI/mobidex/internal/domain/order/v1"
	orderbookv1 "github.com/AmadeusAI/mobidex/internal/domain/orderbook/v1"
	"github.com/AmadeusAI/mobidex/pkg/errors"
	"github.com/AmadeusAI/mobidex/pkg/logger"
)

const reconnectDelay = 5 * time.Second

// subscribeRequest is the relayer websocket subscription envelope.
type subscribeRequest struct {
	Type      string `json:"type"`
	Channel   string `json:"channel"`
	RequestID string `json:"requestId"`
}

// orderEvent is one orderbook update pushed over the websocket.
type orderEvent struct {
	Channel string `json:"channel"`
	Type    string `json:"type"`
	Payload []struct {
		Order orderPayload `json:"order"`
	} `json:"payload"`
}

// OrderbookCache serves point-in-time orderbook snapshots from a TTL cache,
// fetching over HTTP on a miss and invalidating on websocket order events.
// It implements orderv1.OrderbookSource.
type OrderbookCache struct {
	client         *Client
	wsEndpoint     string
	requestTimeout time.Duration
	snapshots      *gocache.Cache
	logger         logger.Interface
}

// NewOrderbookCache creates a new orderbook cache. snapshotTTL bounds how
// stale a served snapshot can be even if no websocket event arrives.
func NewOrderbookCache(client *Client, wsEndpoint string, snapshotTTL, requestTimeout time.Duration, logger logger.Interface) *OrderbookCache {
	return &OrderbookCache{
		client:         client,
		wsEndpoint:     wsEndpoint,
		requestTimeout: requestTimeout,
		snapshots:      gocache.New(snapshotTTL, snapshotTTL),
		logger:         logger,
	}
}

// Snapshot returns the book for the pair, or nil when the relayer has none
// or cannot be reached. Snapshots are copies: the cached book is rebuilt on
// every fetch and never mutated, so callers can read without coordination.
func (c *OrderbookCache) Snapshot(baseAssetData, quoteAssetData string) *orderv1.Orderbook {
	key := baseAssetData + "/" + quoteAssetData
	if cached, ok := c.snapshots.Get(key); ok {
		return cached.(*orderv1.Orderbook)
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.requestTimeout)
	defer cancel()

	book, err := c.client.Orderbook(ctx, baseAssetData, quoteAssetData)
	if err != nil {
		c.logger.Error(errors.TracerFromError(err), logger.NewField("pair", key))
		return nil
	}
	if book == nil {
		return nil
	}

	// Covering assumes best-price-first books; the relayer claims to sort
	// but the invariant is cheap to restore locally.
	orderbookv1.SortAsksByPrice(book.Asks, true)
	orderbookv1.SortBidsByPrice(book.Bids, false)

	c.snapshots.SetDefault(key, book)
	return book
}

// Run maintains the websocket subscription until ctx is cancelled,
// reconnecting after failures. Every order event drops all cached
// snapshots; books are cheap to refetch and a targeted invalidation would
// have to understand every event shape the relayer emits.
func (c *OrderbookCache) Run(ctx context.Context) error {
	for {
		if err := c.consume(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.logger.Error(errors.TracerFromError(err))
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(reconnectDelay):
		}
	}
}

func (c *OrderbookCache) consume(ctx context.Context) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.wsEndpoint, nil)
	if err != nil {
		return errors.NewDomainError(errors.TransportFailure, "orderbook feed dial failed").WithCause(err)
	}
	defer conn.Close()

	// The watchdog unblocks ReadMessage on cancellation; done releases it
	// when the connection ends on its own, so reconnects do not accumulate
	// goroutines.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	subscription := subscribeRequest{
		Type:      "subscribe",
		Channel:   "orders",
		RequestID: uuid.NewString(),
	}
	if err := conn.WriteJSON(subscription); err != nil {
		return errors.NewDomainError(errors.TransportFailure, "orderbook feed subscribe failed").WithCause(err)
	}
	c.logger.Info("orderbook feed connected", logger.NewField("endpoint", c.wsEndpoint))

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			return errors.NewDomainError(errors.TransportFailure, "orderbook feed read failed").WithCause(err)
		}

		var event orderEvent
		if err := json.Unmarshal(message, &event); err != nil {
			c.logger.Warn("skipping malformed orderbook event")
			continue
		}
		if event.Channel != "orders" || event.Type != "update" {
			continue
		}
		c.snapshots.Flush()
		c.logger.Debug("orderbook snapshots invalidated",
			logger.NewField("orders", len(event.Payload)),
		)
	}
}
