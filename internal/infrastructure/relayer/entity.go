package relayer

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	orderv1 "github.com/AmadeusAI/mobidex/internal/domain/order/v1"
	"github.com/AmadeusAI/mobidex/pkg/amount"
	"github.com/AmadeusAI/mobidex/pkg/errors"
)

// orderPayload is the wire shape of an order on the relayer API. Amounts and
// the salt travel as decimal strings.
type orderPayload struct {
	MakerAddress          string `json:"makerAddress"`
	TakerAddress          string `json:"takerAddress"`
	FeeRecipientAddress   string `json:"feeRecipientAddress"`
	SenderAddress         string `json:"senderAddress"`
	MakerAssetAmount      string `json:"makerAssetAmount"`
	TakerAssetAmount      string `json:"takerAssetAmount"`
	MakerFee              string `json:"makerFee"`
	TakerFee              string `json:"takerFee"`
	MakerAssetData        string `json:"makerAssetData"`
	TakerAssetData        string `json:"takerAssetData"`
	ExpirationTimeSeconds string `json:"expirationTimeSeconds"`
	ExchangeAddress       string `json:"exchangeAddress"`
	Salt                  string `json:"salt"`
	Signature             string `json:"signature,omitempty"`
}

// orderRecord wraps an order with the relayer's metadata.
type orderRecord struct {
	Order    orderPayload `json:"order"`
	MetaData struct {
		OrderHash                 string `json:"orderHash,omitempty"`
		RemainingTakerAssetAmount string `json:"remainingTakerAssetAmount,omitempty"`
	} `json:"metaData"`
}

type pagedOrderRecords struct {
	Total   int           `json:"total"`
	Records []orderRecord `json:"records"`
}

type orderbookResponse struct {
	Bids pagedOrderRecords `json:"bids"`
	Asks pagedOrderRecords `json:"asks"`
}

type assetRecord struct {
	Address   string `json:"address"`
	AssetData string `json:"assetData"`
	Decimals  int32  `json:"decimals"`
	Symbol    string `json:"symbol"`
}

type assetsResponse struct {
	Records []assetRecord `json:"records"`
}

type orderConfigPayload struct {
	SenderAddress       string `json:"senderAddress"`
	FeeRecipientAddress string `json:"feeRecipientAddress"`
	MakerFee            string `json:"makerFee"`
	TakerFee            string `json:"takerFee"`
}

func toProtocolOrder(payload orderPayload) (*orderv1.ProtocolOrder, error) {
	makerAssetAmount, err := amount.FromString(payload.MakerAssetAmount)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	takerAssetAmount, err := amount.FromString(payload.TakerAssetAmount)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	makerFee, err := amount.FromString(payload.MakerFee)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	takerFee, err := amount.FromString(payload.TakerFee)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	expiration, err := amount.FromString(payload.ExpirationTimeSeconds)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	salt, ok := new(big.Int).SetString(payload.Salt, 10)
	if !ok {
		return nil, errors.NewDomainError(errors.InvalidOperation, "malformed order salt")
	}

	return &orderv1.ProtocolOrder{
		MakerAddress:          common.HexToAddress(payload.MakerAddress),
		TakerAddress:          common.HexToAddress(payload.TakerAddress),
		FeeRecipientAddress:   common.HexToAddress(payload.FeeRecipientAddress),
		SenderAddress:         common.HexToAddress(payload.SenderAddress),
		MakerAssetAmount:      makerAssetAmount,
		TakerAssetAmount:      takerAssetAmount,
		MakerFee:              makerFee,
		TakerFee:              takerFee,
		MakerAssetData:        payload.MakerAssetData,
		TakerAssetData:        payload.TakerAssetData,
		ExpirationTimeSeconds: expiration.BigInt().Int64(),
		ExchangeAddress:       common.HexToAddress(payload.ExchangeAddress),
		Salt:                  salt,
	}, nil
}

func toOrderPayload(order *orderv1.ProtocolOrder) orderPayload {
	payload := orderPayload{
		MakerAddress:          order.MakerAddress.Hex(),
		TakerAddress:          order.TakerAddress.Hex(),
		FeeRecipientAddress:   order.FeeRecipientAddress.Hex(),
		SenderAddress:         order.SenderAddress.Hex(),
		MakerAssetAmount:      order.MakerAssetAmount.String(),
		TakerAssetAmount:      order.TakerAssetAmount.String(),
		MakerFee:              order.MakerFee.String(),
		TakerFee:              order.TakerFee.String(),
		MakerAssetData:        order.MakerAssetData,
		TakerAssetData:        order.TakerAssetData,
		ExpirationTimeSeconds: amount.FromInt64(order.ExpirationTimeSeconds).String(),
		ExchangeAddress:       order.ExchangeAddress.Hex(),
	}
	if order.Salt != nil {
		payload.Salt = order.Salt.String()
	}
	return payload
}

func toSignedOrderPayload(order *orderv1.SignedOrder) orderPayload {
	payload := toOrderPayload(&order.ProtocolOrder)
	payload.Signature = hexutil.Encode(order.Signature)
	return payload
}

func toOrderConfig(payload orderConfigPayload) (*orderv1.OrderConfig, error) {
	makerFee, err := amount.FromString(payload.MakerFee)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	takerFee, err := amount.FromString(payload.TakerFee)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	return &orderv1.OrderConfig{
		SenderAddress:       common.HexToAddress(payload.SenderAddress),
		FeeRecipientAddress: common.HexToAddress(payload.FeeRecipientAddress),
		MakerFee:            makerFee,
		TakerFee:            takerFee,
	}, nil
}
