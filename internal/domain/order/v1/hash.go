package orderv1

import (
	"crypto/rand"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// EIP-712 type hashes for the v2 exchange order schema.
var (
	eip712DomainTypeHash = crypto.Keccak256([]byte(
		"EIP712Domain(string name,string version,address verifyingContract)",
	))
	eip712OrderTypeHash = crypto.Keccak256([]byte(
		"Order(address makerAddress,address takerAddress,address feeRecipientAddress,address senderAddress,uint256 makerAssetAmount,uint256 takerAssetAmount,uint256 makerFee,uint256 takerFee,uint256 expirationTimeSeconds,uint256 salt,bytes makerAssetData,bytes takerAssetData)",
	))
	eip712DomainName    = crypto.Keccak256([]byte("0x Protocol"))
	eip712DomainVersion = crypto.Keccak256([]byte("2"))

	maxSalt = new(big.Int).Lsh(big.NewInt(1), 256)
)

// Hash computes the order's EIP-712 hash under the exchange contract's
// domain. The receiver is not mutated.
func (o *ProtocolOrder) Hash() common.Hash {
	domainHash := crypto.Keccak256(
		eip712DomainTypeHash,
		eip712DomainName,
		eip712DomainVersion,
		padAddress(o.ExchangeAddress),
	)

	salt := o.Salt
	if salt == nil {
		salt = big.NewInt(0)
	}
	structHash := crypto.Keccak256(
		eip712OrderTypeHash,
		padAddress(o.MakerAddress),
		padAddress(o.TakerAddress),
		padAddress(o.FeeRecipientAddress),
		padAddress(o.SenderAddress),
		padUint(o.MakerAssetAmount.BigInt()),
		padUint(o.TakerAssetAmount.BigInt()),
		padUint(o.MakerFee.BigInt()),
		padUint(o.TakerFee.BigInt()),
		padUint(big.NewInt(o.ExpirationTimeSeconds)),
		padUint(salt),
		hashAssetData(o.MakerAssetData),
		hashAssetData(o.TakerAssetData),
	)

	return common.BytesToHash(crypto.Keccak256(
		[]byte{0x19, 0x01},
		domainHash,
		structHash,
	))
}

// NewSalt returns a cryptographically random 256-bit order salt.
func NewSalt() *big.Int {
	salt, err := rand.Int(rand.Reader, maxSalt)
	if err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	return salt
}

func padAddress(a common.Address) []byte {
	return common.LeftPadBytes(a.Bytes(), 32)
}

func padUint(i *big.Int) []byte {
	return common.LeftPadBytes(i.Bytes(), 32)
}

func hashAssetData(assetData string) []byte {
	data, err := hexutil.Decode(assetData)
	if err != nil {
		data = nil
	}
	return crypto.Keccak256(data)
}
