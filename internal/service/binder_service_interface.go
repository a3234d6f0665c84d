package service

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/assetx/rwa-storage/pkg/models/rwa"
)

// DescriptorBindRequest carries everything a registry descriptor needs.
type DescriptorBindRequest struct {
	AssetID    *big.Int
	Category   rwa.URICategory
	URIType    rwa.URIType
	Title      string
	Slot       uint64
	Hash       common.Hash
	ToChainIDs []string
}

// BinderServiceInterface defines the interface of the service that binds a
// content hash to the on-chain registry, paying the cross-chain fee for the
// write.
type BinderServiceInterface interface {
	// Binds a descriptor: enforces the issuer-first rule, quotes and
	// approves the registration fee, rejects duplicate hashes and submits
	// the descriptor write.
	//
	// Parameters:
	//   the bind request
	//
	// Returns:
	//   the transaction hash of the descriptor write
	BindDescriptor(ctx context.Context, req *DescriptorBindRequest) (string, error)
}
