package service

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/assetx/rwa-storage/pkg/models/rwa"
)

// AddObjectResult reports where an attached document ended up. When Reused
// is true the payload was already stored under ObjectName and nothing was
// uploaded or bound.
type AddObjectResult struct {
	BucketName     string      `json:"bucketName"`
	ObjectName     string      `json:"objectName"`
	ContentHash    common.Hash `json:"contentHash"`
	TransactionRef string      `json:"transactionRef"`
	Reused         bool        `json:"reused"`
}

// ObjectServiceInterface defines the interface of the service that attaches
// a document to an asset: validation, checksum derivation, upload and the
// registry bind, in that order.
type ObjectServiceInterface interface {
	// Attaches a document to an asset. The object passes the category's
	// admission policy, gets erasure-coded into its checksum set and
	// content hash, is uploaded under a registry-derived name and bound
	// on chain. A payload whose hash is already registered reuses the
	// existing object instead.
	//
	// Parameters:
	//   the asset ID
	//   the document
	//   the destination chain IDs of the descriptor
	//
	// Returns:
	//   the add-object result
	AddObject(ctx context.Context, assetID *big.Int, object *rwa.Object, toChainIDs []string) (*AddObjectResult, error)

	// Derives the checksum set and content hash of a document without
	// touching the storage network or the registry.
	//
	// Parameters:
	//   the document
	//
	// Returns:
	//   the checksum set and the content hash
	GetChecksum(object *rwa.Object) ([]string, common.Hash, error)
}
