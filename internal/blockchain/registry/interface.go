package registry

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/assetx/rwa-storage/pkg/models/rwa"
)

// URIHashRecord is the on-chain storage descriptor for one uploaded object.
// Records are created once per upload and never updated in place; a changed
// document gets a new record with a new hash.
type URIHashRecord struct {
	Category   rwa.URICategory `json:"uriCategory"`
	URIType    rwa.URIType     `json:"uriType"`
	Title      string          `json:"uriTitle"`
	Slot       *big.Int        `json:"slot"`
	ObjectName string          `json:"objectName"`
	Hash       common.Hash     `json:"hash"`
	TimeStamp  *big.Int        `json:"uriTimestamp"`
}

// Registry is the consumed surface of the on-chain registry contracts: the
// asset map, the per-asset storage contract and the storage manager. The
// registry owns the per-(type, slot) object counters and the hash records;
// this layer never caches any of it — every check is a live read so a
// concurrent writer's commit is always visible.
type Registry interface {
	// GetStorageContract resolves the storage contract for an asset ID.
	// The bool reports whether the asset exists and has one.
	GetStorageContract(ctx context.Context, assetID *big.Int) (bool, common.Address, error)

	// GreenfieldBucket returns the asset's canonical bucket name as recorded
	// on chain (unsanitized).
	GreenfieldBucket(ctx context.Context, assetID *big.Int) (string, error)

	// GreenfieldObject returns the next object name for a (type, slot) pair,
	// derived from the registry's monotonically increasing counter.
	GreenfieldObject(ctx context.Context, assetID *big.Int, uriType rwa.URIType, slot uint64) (string, error)

	// GetURIHash returns the descriptor registered under a content hash.
	GetURIHash(ctx context.Context, assetID *big.Int, hash common.Hash) (*URIHashRecord, error)

	// GetURIHashCount returns how many descriptors exist for a category/type pair.
	GetURIHashCount(ctx context.Context, assetID *big.Int, category rwa.URICategory, uriType rwa.URIType) (uint64, error)

	// ExistURIHash reports whether a content hash is already registered.
	ExistURIHash(ctx context.Context, assetID *big.Int, hash common.Hash) (bool, error)

	// AddURI submits a new descriptor and waits for inclusion. It returns
	// the transaction hash of the registry write.
	AddURI(ctx context.Context, assetID *big.Int, category rwa.URICategory, uriType rwa.URIType,
		title string, slot uint64, hash common.Hash, toChainIDs []string, feeToken common.Address) (string, error)

	// TokenAdmin returns the admin address of the asset's storage contract.
	TokenAdmin(ctx context.Context, assetID *big.Int) (common.Address, error)
}
