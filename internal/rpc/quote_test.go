package rpc

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orderv1 "github.com/AmadeusAI/mobidex/internal/domain/order/v1"
	quoteMock "github.com/AmadeusAI/mobidex/internal/domain/quote/mock"
	"github.com/AmadeusAI/mobidex/pkg/amount"
	loggerMock "github.com/AmadeusAI/mobidex/pkg/logger/mock"
)

var zrxAddress = common.HexToAddress("0xe41d2489571d322189246dafa5ebde1f4699f498")

func TestQuoteRPC_GetBuyQuote(t *testing.T) {
	testCases := []struct {
		name     string
		target   string
		mockFn   func(t *testing.T, quoteUc *quoteMock.MockUsecase, logger *loggerMock.MockInterface)
		assertFn func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name:   "success",
			target: "/v2/quote/buy?assetAddress=" + zrxAddress.Hex() + "&amount=1000",
			mockFn: func(t *testing.T, quoteUc *quoteMock.MockUsecase, logger *loggerMock.MockInterface) {
				quoteUc.EXPECT().
					BuyQuote(gomock.Any(), zrxAddress, amount.FromInt64(1000)).
					Return(&orderv1.Quote{
						AssetBuyAmount:  amount.FromInt64(1000),
						AssetSellAmount: amount.FromInt64(10),
						AssetData:       "0xasset",
					}, nil)
			},
			assertFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, recorder.Code)

				var body struct {
					Status string `json:"status"`
					Data   struct {
						AssetBuyAmount  string `json:"assetBuyAmount"`
						AssetSellAmount string `json:"assetSellAmount"`
						AssetData       string `json:"assetData"`
					} `json:"data"`
				}
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
				assert.Equal(t, "success", body.Status)
				assert.Equal(t, "1000", body.Data.AssetBuyAmount)
				assert.Equal(t, "10", body.Data.AssetSellAmount)
				assert.Equal(t, "0xasset", body.Data.AssetData)
			},
		},
		{
			name:   "no quote available",
			target: "/v2/quote/buy?assetAddress=" + zrxAddress.Hex() + "&amount=1000",
			mockFn: func(t *testing.T, quoteUc *quoteMock.MockUsecase, logger *loggerMock.MockInterface) {
				quoteUc.EXPECT().
					BuyQuote(gomock.Any(), zrxAddress, amount.FromInt64(1000)).
					Return(nil, nil)
			},
			assertFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
		{
			name:   "usecase failure",
			target: "/v2/quote/buy?assetAddress=" + zrxAddress.Hex() + "&amount=1000",
			mockFn: func(t *testing.T, quoteUc *quoteMock.MockUsecase, logger *loggerMock.MockInterface) {
				quoteUc.EXPECT().
					BuyQuote(gomock.Any(), zrxAddress, amount.FromInt64(1000)).
					Return(nil, errors.New("node unavailable"))
				logger.EXPECT().ErrorContext(gomock.Any(), gomock.Any(), gomock.Any()).Times(1)
			},
			assertFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusInternalServerError, recorder.Code)
				assert.NotContains(t, recorder.Body.String(), "node unavailable")
			},
		},
		{
			name:   "malformed address",
			target: "/v2/quote/buy?assetAddress=nonsense&amount=1000",
			mockFn: func(t *testing.T, quoteUc *quoteMock.MockUsecase, logger *loggerMock.MockInterface) {
			},
			assertFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name:   "non-positive amount",
			target: "/v2/quote/buy?assetAddress=" + zrxAddress.Hex() + "&amount=0",
			mockFn: func(t *testing.T, quoteUc *quoteMock.MockUsecase, logger *loggerMock.MockInterface) {
			},
			assertFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name:   "fractional amount",
			target: "/v2/quote/buy?assetAddress=" + zrxAddress.Hex() + "&amount=1.5",
			mockFn: func(t *testing.T, quoteUc *quoteMock.MockUsecase, logger *loggerMock.MockInterface) {
			},
			assertFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			quoteUc := quoteMock.NewMockUsecase(ctrl)
			mockLogger := loggerMock.NewMockInterface(ctrl)
			tc.mockFn(t, quoteUc, mockLogger)

			mux := http.NewServeMux()
			NewQuoteRPC(quoteUc, mockLogger).Register(mux)

			recorder := httptest.NewRecorder()
			mux.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, tc.target, nil))
			tc.assertFn(t, recorder)
		})
	}
}

func TestQuoteRPC_GetSellQuote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	quoteUc := quoteMock.NewMockUsecase(ctrl)
	mockLogger := loggerMock.NewMockInterface(ctrl)
	quoteUc.EXPECT().
		SellQuote(gomock.Any(), zrxAddress, amount.FromInt64(500)).
		Return(&orderv1.Quote{AssetSellAmount: amount.FromInt64(500)}, nil)

	mux := http.NewServeMux()
	NewQuoteRPC(quoteUc, mockLogger).Register(mux)

	recorder := httptest.NewRecorder()
	target := "/v2/quote/sell?assetAddress=" + zrxAddress.Hex() + "&amount=500"
	mux.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
}
