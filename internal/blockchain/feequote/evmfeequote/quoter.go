package evmfeequote

import (
	"context"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"

	"github.com/assetx/rwa-storage/internal/blockchain/feequote"
)

const feeManagerABI = `[
	{"type":"function","name":"getXChainFee","stateMutability":"view",
	 "inputs":[
		{"name":"toChainIdsStr","type":"string[]"},
		{"name":"includeLocal","type":"bool"},
		{"name":"feeType","type":"uint8"},
		{"name":"feeToken","type":"address"}],
	 "outputs":[{"name":"","type":"uint256"}]}
]`

const erc20ABI = `[
	{"type":"function","name":"approve","stateMutability":"nonpayable",
	 "inputs":[{"name":"spender","type":"address"},{"name":"value","type":"uint256"}],
	 "outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"decimals","stateMutability":"view",
	 "inputs":[],
	 "outputs":[{"name":"","type":"uint8"}]}
]`

// Quoter reads the fee manager contract and handles the ERC-20 approvals
// that pay the quoted fees.
type Quoter struct {
	client     *ethclient.Client
	transactor *bind.TransactOpts
	erc20ABI   abi.ABI
	feeManager *bind.BoundContract
}

var _ feequote.Quoter = (*Quoter)(nil)

// New wires a fee quoter to one chain's fee manager contract.
func New(client *ethclient.Client, transactor *bind.TransactOpts, feeManagerAddress common.Address) (*Quoter, error) {
	managerParsed, err := abi.JSON(strings.NewReader(feeManagerABI))
	if err != nil {
		return nil, errors.Wrap(err, "cannot parse the fee manager ABI")
	}
	erc20Parsed, err := abi.JSON(strings.NewReader(erc20ABI))
	if err != nil {
		return nil, errors.Wrap(err, "cannot parse the ERC-20 ABI")
	}

	return &Quoter{
		client:     client,
		transactor: transactor,
		erc20ABI:   erc20Parsed,
		feeManager: bind.NewBoundContract(feeManagerAddress, managerParsed, client, client, client),
	}, nil
}

func (q *Quoter) GetCrossChainFee(ctx context.Context, toChainIDs []string, includeLocal bool, feeType int, feeToken common.Address) (*big.Int, error) {
	var out []interface{}
	err := q.feeManager.Call(&bind.CallOpts{Context: ctx}, &out,
		"getXChainFee", toChainIDs, includeLocal, uint8(feeType), feeToken)
	if err != nil {
		return nil, errors.Wrap(err, "cannot quote the cross-chain fee")
	}

	return out[0].(*big.Int), nil
}

func (q *Quoter) FeeTokenDecimals(ctx context.Context, feeToken common.Address) (uint8, error) {
	token := bind.NewBoundContract(feeToken, q.erc20ABI, q.client, q.client, q.client)

	var out []interface{}
	err := token.Call(&bind.CallOpts{Context: ctx}, &out, "decimals")
	if err != nil {
		return 0, errors.Wrap(err, "cannot query the fee token decimals")
	}

	return out[0].(uint8), nil
}

func (q *Quoter) ApproveFee(ctx context.Context, feeToken common.Address, spender common.Address, amount *big.Int) (string, error) {
	token := bind.NewBoundContract(feeToken, q.erc20ABI, q.client, q.client, q.client)

	opts := *q.transactor
	opts.Context = ctx

	tx, err := token.Transact(&opts, "approve", spender, amount)
	if err != nil {
		return "", errors.Wrap(err, "cannot approve the fee token spend")
	}

	// The descriptor write depends on this allowance, so the approval must
	// be included before the caller proceeds.
	receipt, err := bind.WaitMined(ctx, q.client, tx)
	if err != nil {
		return "", errors.Wrap(err, "fee approval was not included")
	}
	if receipt.Status == 0 {
		return "", errors.Errorf("fee approval reverted in transaction %v", tx.Hash())
	}

	return tx.Hash().Hex(), nil
}
