// Package relayer implements the Standard Relayer API v2 transport: an HTTP
// client for orderbooks, assets, order configs and order submission, and a
// websocket-synced orderbook cache.
package relayer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"

	assetv1 "github.com/AmadeusAI/mobidex/internal/domain/asset/v1"
	orderv1 "github.com/AmadeusAI/mobidex/internal/domain/order/v1"
	"github.com/AmadeusAI/mobidex/pkg/errors"
	"github.com/AmadeusAI/mobidex/pkg/logger"
)

// Client talks to a relayer over HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
	networkID  int
	logger     logger.Interface
}

// NewClient creates a new relayer HTTP client.
func NewClient(baseURL string, networkID int, requestTimeout time.Duration, logger logger.Interface) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    baseURL,
		networkID:  networkID,
		logger:     logger,
	}
}

// Orderbook fetches the book for a pair. A 404 means the relayer has no
// market for the pair and maps to nil.
func (c *Client) Orderbook(ctx context.Context, baseAssetData, quoteAssetData string) (*orderv1.Orderbook, error) {
	query := url.Values{}
	query.Set("baseAssetData", baseAssetData)
	query.Set("quoteAssetData", quoteAssetData)
	query.Set("networkId", strconv.Itoa(c.networkID))

	var response orderbookResponse
	found, err := c.getJSON(ctx, "/v2/orderbook", query, &response)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	if !found {
		return nil, nil
	}

	book := &orderv1.Orderbook{}
	for _, record := range response.Asks.Records {
		order, err := toProtocolOrder(record.Order)
		if err != nil {
			return nil, errors.TracerFromError(err)
		}
		book.Asks = append(book.Asks, order)
	}
	for _, record := range response.Bids.Records {
		order, err := toProtocolOrder(record.Order)
		if err != nil {
			return nil, errors.TracerFromError(err)
		}
		book.Bids = append(book.Bids, order)
	}
	return book, nil
}

// Assets fetches the tokens the relayer trades.
func (c *Client) Assets(ctx context.Context) ([]*assetv1.Asset, error) {
	query := url.Values{}
	query.Set("networkId", strconv.Itoa(c.networkID))

	var response assetsResponse
	found, err := c.getJSON(ctx, "/v2/assets", query, &response)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	if !found {
		return nil, errors.NewDomainError(errors.TransportFailure, "relayer has no assets endpoint")
	}

	assets := make([]*assetv1.Asset, 0, len(response.Records))
	for _, record := range response.Records {
		assets = append(assets, &assetv1.Asset{
			Address:   common.HexToAddress(record.Address),
			AssetData: record.AssetData,
			Decimals:  record.Decimals,
			Symbol:    record.Symbol,
		})
	}
	return assets, nil
}

// OrderConfig asks the relayer which fee and address fields it requires on
// the given unsigned order.
func (c *Client) OrderConfig(ctx context.Context, order *orderv1.ProtocolOrder) (*orderv1.OrderConfig, error) {
	var response orderConfigPayload
	if err := c.postJSON(ctx, "/v2/order_config", toOrderPayload(order), &response); err != nil {
		return nil, errors.TracerFromError(err)
	}
	return toOrderConfig(response)
}

// SubmitOrder posts a signed order.
func (c *Client) SubmitOrder(ctx context.Context, order *orderv1.SignedOrder) error {
	if err := c.postJSON(ctx, "/v2/order", toSignedOrderPayload(order), nil); err != nil {
		return errors.TracerFromError(err)
	}
	return nil
}

// getJSON performs a GET and decodes the body. The bool result is false on
// 404, which several endpoints use as a well-defined "not found".
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) (bool, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, errors.TracerFromError(err)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return false, errors.NewDomainError(errors.TransportFailure, "relayer request failed").WithCause(err)
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if response.StatusCode != http.StatusOK {
		return false, statusError(response)
	}
	if err := json.NewDecoder(response.Body).Decode(out); err != nil {
		return false, errors.NewDomainError(errors.TransportFailure, "malformed relayer response").WithCause(err)
	}
	return true, nil
}

func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return errors.TracerFromError(err)
	}
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return errors.TracerFromError(err)
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return errors.NewDomainError(errors.TransportFailure, "relayer request failed").WithCause(err)
	}
	defer response.Body.Close()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return statusError(response)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(response.Body).Decode(out); err != nil {
		return errors.NewDomainError(errors.TransportFailure, "malformed relayer response").WithCause(err)
	}
	return nil
}

func statusError(response *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(response.Body, 512))
	return errors.NewDomainError(
		errors.TransportFailure,
		fmt.Sprintf("relayer returned %d: %s", response.StatusCode, bytes.TrimSpace(body)),
	)
}
