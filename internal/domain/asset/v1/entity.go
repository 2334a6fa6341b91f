package assetv1

import (
	"bytes"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/AmadeusAI/mobidex/pkg/errors"
)

// erc20ProxyID is the 4-byte asset proxy id prefixed to encoded ERC-20 asset
// data, bytes4(keccak256("ERC20Token(address)")).
var erc20ProxyID = []byte{0xf4, 0x72, 0x61, 0xb0}

// Asset describes a tradable token: its address, encoded asset data, scale
// and display symbol. Assets are immutable and owned by the Catalog.
type Asset struct {
	Address   common.Address `json:"address"`
	AssetData string         `json:"assetData"`
	Decimals  int32          `json:"decimals"`
	Symbol    string         `json:"symbol"`
}

// EncodeERC20AssetData encodes a token address into 0x ERC-20 asset data:
// the proxy id followed by the address left-padded to 32 bytes.
func EncodeERC20AssetData(address common.Address) string {
	data := make([]byte, 0, 36)
	data = append(data, erc20ProxyID...)
	data = append(data, common.LeftPadBytes(address.Bytes(), 32)...)
	return hexutil.Encode(data)
}

// DecodeERC20AssetData extracts the token address from ERC-20 asset data.
// Asset data for any other proxy yields an InvalidOperation error.
func DecodeERC20AssetData(assetData string) (common.Address, error) {
	data, err := hexutil.Decode(assetData)
	if err != nil {
		return common.Address{}, errors.NewDomainError(errors.InvalidOperation, "malformed asset data").WithCause(err)
	}
	if len(data) != 36 || !bytes.Equal(data[:4], erc20ProxyID) {
		return common.Address{}, errors.NewDomainError(errors.InvalidOperation, "not ERC-20 asset data")
	}
	return common.BytesToAddress(data[16:36]), nil
}
