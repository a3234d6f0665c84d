package service

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/assetx/rwa-storage/internal/storage"
)

// StorageServiceInterface defines the interface of the service that manages
// the bucket and object lifecycle on the storage network.
type StorageServiceInterface interface {
	// Ensures the asset's bucket exists, creating it in the name of the
	// asset's token admin when it does not. Safe to call repeatedly; an
	// existing bucket is left untouched.
	//
	// Parameters:
	//   the asset ID
	//
	// Returns:
	//   the sanitized bucket name
	EnsureBucket(ctx context.Context, assetID *big.Int) (string, error)

	// Looks up the object name already bound to a content hash, if any.
	//
	// Parameters:
	//   the asset ID
	//   the content hash
	//
	// Returns:
	//   the sanitized object name and whether the hash was found
	ExistingObjectForHash(ctx context.Context, assetID *big.Int, hash common.Hash) (string, bool, error)

	// Creates the object on the storage network, declaring the checksum
	// set, then uploads the payload. Either phase reporting the object
	// as already existing counts as success.
	//
	// Parameters:
	//   the creation request
	//   the payload bytes
	//
	// Returns:
	//   the creation transaction reference (empty when the object existed)
	CreateAndUpload(ctx context.Context, req *storage.CreateObjectRequest, payload []byte) (string, error)

	// Fetches an object's payload.
	//
	// Parameters:
	//   the bucket name
	//   the object name
	//
	// Returns:
	//   the payload bytes
	FetchObject(ctx context.Context, bucketName string, objectName string) ([]byte, error)

	// Deletes an object from the storage network. The registry record, if
	// any, is untouched; the object simply stops reconciling.
	//
	// Parameters:
	//   the bucket name
	//   the object name
	//
	// Returns:
	//   the deletion transaction reference
	DeleteObject(ctx context.Context, bucketName string, objectName string) (string, error)

	// Lists the raw storage-network metadata of every object in a bucket,
	// without registry cross-referencing.
	//
	// Parameters:
	//   the bucket name
	//
	// Returns:
	//   the object metadata list
	ListRawObjects(ctx context.Context, bucketName string) ([]storage.ObjectInfo, error)
}
