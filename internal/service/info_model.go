package service

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/assetx/rwa-storage/internal/blockchain/feequote"
	"github.com/assetx/rwa-storage/internal/blockchain/registry"
	"github.com/assetx/rwa-storage/internal/storage"
)

// Info carries the collaborators a service needs: the registry access
// object, the storage-network gateway and the fee quoter, plus the chain
// constants resolved from the network table at startup. Everything here is
// read-only after construction, so services are safe to share across
// requests operating on different asset IDs.
type Info struct {
	Registry registry.Registry
	Gateway  storage.Gateway
	Quoter   feequote.Quoter

	// LocalChainID is the chain this deployment writes descriptors on.
	LocalChainID string
	// FeeTokenAddress is the ERC-20 token fees are quoted and paid in.
	FeeTokenAddress common.Address
	// StorageManagerAddress receives the fee allowance and the addURI call.
	StorageManagerAddress common.Address
	// SignerAddress is the public address of the signing credential.
	SignerAddress common.Address
}
