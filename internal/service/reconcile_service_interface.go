package service

import (
	"context"
	"math/big"

	"github.com/assetx/rwa-storage/internal/models/common"
)

// ReconcileServiceInterface defines the interface of the service that joins
// the storage network's object listing with the registry's descriptors and
// emits only the entries both sides agree on.
type ReconcileServiceInterface interface {
	// Reconciles every object in the asset's bucket. An object is emitted
	// only when the content hash recomputed from its reported checksum
	// set resolves to a registry descriptor carrying the same object
	// name. Everything else is logged and skipped, never an error.
	//
	// Parameters:
	//   the asset ID
	//
	// Returns:
	//   the verified object list
	Reconcile(ctx context.Context, assetID *big.Int) ([]common.VerifiedObjectInfo, error)

	// Reconciles a single object by name.
	//
	// Parameters:
	//   the asset ID
	//   the object name
	//
	// Returns:
	//   the verified object
	ReconcileOne(ctx context.Context, assetID *big.Int, objectName string) (*common.VerifiedObjectInfo, error)
}
