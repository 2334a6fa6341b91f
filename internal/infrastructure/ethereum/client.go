// Package ethereum reads exchange contract state over JSON-RPC.
package ethereum

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/AmadeusAI/mobidex/pkg/amount"
	"github.com/AmadeusAI/mobidex/pkg/errors"
)

// filledSelector is the 4-byte selector of the exchange contract's
// filled(bytes32) getter.
var filledSelector = crypto.Keccak256([]byte("filled(bytes32)"))[:4]

// Client reads fill state from the exchange contract. It implements
// orderv1.ExecutionStateClient.
type Client struct {
	rpcClient       *rpc.Client
	exchangeAddress common.Address
}

// NewClient dials the node and binds to the exchange contract.
func NewClient(ctx context.Context, endpoint string, exchangeAddress common.Address) (*Client, error) {
	rpcClient, err := rpc.DialContext(ctx, endpoint)
	if err != nil {
		return nil, errors.NewDomainError(errors.TransportFailure, "ethereum node dial failed").WithCause(err)
	}
	return &Client{rpcClient: rpcClient, exchangeAddress: exchangeAddress}, nil
}

// FilledTakerAmount returns the taker amount already filled for the order,
// read from the latest block.
func (c *Client) FilledTakerAmount(ctx context.Context, orderHash common.Hash) (amount.Amount, error) {
	data := make([]byte, 0, 36)
	data = append(data, filledSelector...)
	data = append(data, orderHash.Bytes()...)

	call := map[string]any{
		"to":   c.exchangeAddress,
		"data": hexutil.Bytes(data),
	}

	var result hexutil.Bytes
	if err := c.rpcClient.CallContext(ctx, &result, "eth_call", call, "latest"); err != nil {
		return amount.Zero(), errors.NewDomainError(errors.TransportFailure, "filled lookup failed").WithCause(err)
	}
	if len(result) != 32 {
		return amount.Zero(), errors.NewDomainError(errors.TransportFailure, "malformed filled result")
	}
	return amount.FromBigInt(new(big.Int).SetBytes(result)), nil
}

// Close releases the underlying connection.
func (c *Client) Close() {
	c.rpcClient.Close()
}
