package assetv1

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AmadeusAI/mobidex/pkg/errors"
)

func TestEncodeERC20AssetData(t *testing.T) {
	address := common.HexToAddress("0xe41d2489571d322189246dafa5ebde1f4699f498")

	assetData := EncodeERC20AssetData(address)
	assert.Equal(t, "0xf47261b0000000000000000000000000e41d2489571d322189246dafa5ebde1f4699f498", assetData)
}

func TestDecodeERC20AssetData(t *testing.T) {
	testCases := []struct {
		name      string
		assetData string
		want      string
		wantErr   bool
	}{
		{
			name:      "round trip",
			assetData: EncodeERC20AssetData(common.HexToAddress("0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2")),
			want:      "0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2",
		},
		{
			name:      "wrong proxy id",
			assetData: "0xdeadbeef000000000000000000000000e41d2489571d322189246dafa5ebde1f4699f498",
			wantErr:   true,
		},
		{
			name:      "truncated data",
			assetData: "0xf47261b0e41d2489",
			wantErr:   true,
		},
		{
			name:      "not hex",
			assetData: "zzzz",
			wantErr:   true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			address, err := DecodeERC20AssetData(tc.assetData)
			if tc.wantErr {
				assert.True(t, errors.HasCode(err, errors.InvalidOperation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, common.HexToAddress(tc.want), address)
		})
	}
}
