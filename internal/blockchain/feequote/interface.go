package feequote

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/assetx/rwa-storage/pkg/models/rwa"
)

// FeeType ordinals fixed by the fee manager contract.
const (
	FeeTypeAdmin = iota
	FeeTypeDeploy
	FeeTypeTx
	FeeTypeMint
)

// uriFeeTypeOffset places the per-category URI fee types after the base ones.
const uriFeeTypeOffset = 5

// baseOrder is the scaling exponent offset of quoted fees: a quote is in
// hundredths of a token unit, so the wei amount is fee * 10^(decimals-2).
const baseOrder = 2

// URIFeeType returns the fee type for registering a descriptor of a category.
func URIFeeType(category rwa.URICategory) int {
	return int(category) + uriFeeTypeOffset
}

// Quoter is the consumed fee surface: quoting the cross-chain fee for a
// destination set and approving the fee-token spend that pays it.
type Quoter interface {
	// GetCrossChainFee quotes the fee for a fee type across the destination
	// chains, in the quoting contract's base order (not wei).
	GetCrossChainFee(ctx context.Context, toChainIDs []string, includeLocal bool, feeType int, feeToken common.Address) (*big.Int, error)

	// FeeTokenDecimals returns the ERC-20 decimals of the fee token.
	FeeTokenDecimals(ctx context.Context, feeToken common.Address) (uint8, error)

	// ApproveFee approves the spender for the given wei amount of the fee
	// token and waits for the approval to be included.
	ApproveFee(ctx context.Context, feeToken common.Address, spender common.Address, amount *big.Int) (string, error)
}

// ScaleToWei converts a quoted fee to the fee token's smallest unit.
func ScaleToWei(fee *big.Int, decimals uint8) *big.Int {
	exponent := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)-baseOrder), nil)
	return new(big.Int).Mul(fee, exponent)
}
