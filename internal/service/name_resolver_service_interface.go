package service

import (
	"context"
	"math/big"

	"github.com/assetx/rwa-storage/pkg/models/rwa"
)

// NameResolverServiceInterface defines the interface of the service that
// derives storage-network names from the on-chain registry. Names come
// from the registry's own counters; this layer never invents one, so two
// concurrent writers cannot collide on a name.
type NameResolverServiceInterface interface {
	// Resolves the storage-network bucket name of an asset.
	//
	// Parameters:
	//   the asset ID
	//
	// Returns:
	//   the sanitized bucket name
	ResolveBucketName(ctx context.Context, assetID *big.Int) (string, error)

	// Resolves the next free object name for a (type, slot) pair. The
	// underlying counter is owned and incremented by the registry
	// contract, which serializes allocations.
	//
	// Parameters:
	//   the asset ID
	//   the URI type
	//   the slot number (ignored for contract-level descriptors)
	//
	// Returns:
	//   the sanitized object name
	ResolveNextObjectName(ctx context.Context, assetID *big.Int, uriType rwa.URIType, slot uint64) (string, error)
}
