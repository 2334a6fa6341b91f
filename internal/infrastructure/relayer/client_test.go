package relayer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orderv1 "github.com/AmadeusAI/mobidex/internal/domain/order/v1"
	"github.com/AmadeusAI/mobidex/pkg/amount"
	"github.com/AmadeusAI/mobidex/pkg/errors"
	"github.com/AmadeusAI/mobidex/pkg/logger"
)

func testLogger(t *testing.T) logger.Interface {
	log, err := logger.NewLogger(logger.ErrorLevel)
	require.NoError(t, err)
	return log
}

func testPayload() orderPayload {
	return orderPayload{
		MakerAddress:          "0x1111111111111111111111111111111111111111",
		TakerAddress:          "0x0000000000000000000000000000000000000000",
		FeeRecipientAddress:   "0x2222222222222222222222222222222222222222",
		SenderAddress:         "0x0000000000000000000000000000000000000000",
		MakerAssetAmount:      "1000000000000000000",
		TakerAssetAmount:      "2000000",
		MakerFee:              "0",
		TakerFee:              "10",
		MakerAssetData:        "0xf47261b0000000000000000000000000e41d2489571d322189246dafa5ebde1f4699f498",
		TakerAssetData:        "0xf47261b0000000000000000000000000c02aaa39b223fe8d0a0e5c4f27ead9083c756cc2",
		ExpirationTimeSeconds: "1800000000",
		ExchangeAddress:       "0x4f833a24e1f95d70f028921e27040ca56e09ab0b",
		Salt:                  "123456789",
	}
}

func TestClient_Orderbook(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/orderbook", r.URL.Path)
		assert.Equal(t, "0xbase", r.URL.Query().Get("baseAssetData"))
		assert.Equal(t, "0xquote", r.URL.Query().Get("quoteAssetData"))
		assert.Equal(t, "1", r.URL.Query().Get("networkId"))

		response := orderbookResponse{
			Asks: pagedOrderRecords{Total: 1, Records: []orderRecord{{Order: testPayload()}}},
		}
		require.NoError(t, json.NewEncoder(w).Encode(response))
	}))
	defer server.Close()

	client := NewClient(server.URL, 1, time.Second, testLogger(t))
	book, err := client.Orderbook(context.Background(), "0xbase", "0xquote")
	require.NoError(t, err)
	require.NotNil(t, book)
	require.Len(t, book.Asks, 1)
	assert.Empty(t, book.Bids)

	order := book.Asks[0]
	assert.Equal(t, "1000000000000000000", order.MakerAssetAmount.String())
	assert.Equal(t, "2000000", order.TakerAssetAmount.String())
	assert.Equal(t, "10", order.TakerFee.String())
	assert.Equal(t, int64(1800000000), order.ExpirationTimeSeconds)
	assert.Equal(t, "123456789", order.Salt.String())
}

func TestClient_Orderbook_NoMarket(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	client := NewClient(server.URL, 1, time.Second, testLogger(t))
	book, err := client.Orderbook(context.Background(), "0xbase", "0xquote")
	assert.NoError(t, err)
	assert.Nil(t, book)
}

func TestClient_Orderbook_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, 1, time.Second, testLogger(t))
	book, err := client.Orderbook(context.Background(), "0xbase", "0xquote")
	assert.Nil(t, book)
	assert.True(t, errors.HasCode(err, errors.TransportFailure))
}

func TestClient_OrderConfig(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/order_config", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var payload orderPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "1000000000000000000", payload.MakerAssetAmount)

		require.NoError(t, json.NewEncoder(w).Encode(orderConfigPayload{
			SenderAddress:       "0x0000000000000000000000000000000000000000",
			FeeRecipientAddress: "0x2222222222222222222222222222222222222222",
			MakerFee:            "0",
			TakerFee:            "15",
		}))
	}))
	defer server.Close()

	client := NewClient(server.URL, 1, time.Second, testLogger(t))
	order, err := toProtocolOrder(testPayload())
	require.NoError(t, err)

	config, err := client.OrderConfig(context.Background(), order)
	require.NoError(t, err)
	assert.Equal(t, "15", config.TakerFee.String())
	assert.Equal(t, common.HexToAddress("0x2222222222222222222222222222222222222222"), config.FeeRecipientAddress)
}

func TestClient_SubmitOrder(t *testing.T) {
	var received orderPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/order", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := NewClient(server.URL, 1, time.Second, testLogger(t))
	order, err := toProtocolOrder(testPayload())
	require.NoError(t, err)

	signed := &orderv1.SignedOrder{
		ProtocolOrder: *order,
		OrderHash:     order.Hash(),
		Signature:     hexutil.Bytes{0x1b, 0x01, 0x02},
	}
	require.NoError(t, client.SubmitOrder(context.Background(), signed))
	assert.Equal(t, "0x1b0102", received.Signature)
	assert.Equal(t, "123456789", received.Salt)
}

func TestOrderPayloadRoundTrip(t *testing.T) {
	order, err := toProtocolOrder(testPayload())
	require.NoError(t, err)

	back := toOrderPayload(order)
	assert.Equal(t, testPayload().MakerAssetAmount, back.MakerAssetAmount)
	assert.Equal(t, testPayload().TakerAssetData, back.TakerAssetData)
	assert.Equal(t, testPayload().Salt, back.Salt)
	assert.Equal(t, testPayload().ExpirationTimeSeconds, back.ExpirationTimeSeconds)
}

func TestToProtocolOrder_MalformedAmount(t *testing.T) {
	payload := testPayload()
	payload.MakerAssetAmount = "not-a-number"

	order, err := toProtocolOrder(payload)
	assert.Nil(t, order)
	assert.True(t, errors.HasCode(err, errors.InvalidOperation))

	// zero is a valid fee amount, not a parse failure
	payload = testPayload()
	payload.MakerFee = "0"
	order, err = toProtocolOrder(payload)
	require.NoError(t, err)
	assert.True(t, order.MakerFee.Equal(amount.Zero()))
}
