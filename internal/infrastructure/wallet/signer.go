// Package wallet holds the local maker key and signs order hashes.
package wallet

import (
	"context"
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/AmadeusAI/mobidex/pkg/errors"
)

// signatureTypeEIP712 is the trailing signature type byte the exchange
// contract expects for signatures over the raw EIP-712 order hash.
const signatureTypeEIP712 = 0x02

// Signer signs order hashes with an in-process secp256k1 key. It implements
// orderv1.SigningService.
type Signer struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

// NewSigner parses a hex-encoded private key.
func NewSigner(hexKey string) (*Signer, error) {
	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, errors.NewDomainError(errors.InvalidOperation, "malformed signing key").WithCause(err)
	}
	return &Signer{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
	}, nil
}

// Address returns the maker address the signer signs for.
func (s *Signer) Address() common.Address {
	return s.address
}

// Sign signs the order hash and lays the signature out as the exchange
// contract verifies it: v || r || s || signature type, with v offset by 27.
func (s *Signer) Sign(ctx context.Context, orderHash common.Hash) ([]byte, error) {
	raw, err := crypto.Sign(orderHash.Bytes(), s.key)
	if err != nil {
		return nil, errors.NewDomainError(errors.InvalidOperation, "order hash signing failed").WithCause(err)
	}

	// crypto.Sign returns r || s || v with v in {0, 1}.
	signature := make([]byte, 0, 66)
	signature = append(signature, raw[64]+27)
	signature = append(signature, raw[:64]...)
	signature = append(signature, signatureTypeEIP712)
	return signature, nil
}
