package evmregistry

import (
	"context"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"

	"github.com/assetx/rwa-storage/internal/blockchain/registry"
	"github.com/assetx/rwa-storage/pkg/errorcode"
	"github.com/assetx/rwa-storage/pkg/models/rwa"
)

// The token standard coordinates this storage subsystem belongs to. Both are
// fixed for every registry map lookup.
const (
	rwaType = 1
	version = 1
)

// Registry talks to the deployed registry contracts over an EVM RPC
// endpoint. The per-asset storage contract is resolved through the map
// contract on every call; nothing is cached.
type Registry struct {
	client         *ethclient.Client
	transactor     *bind.TransactOpts
	mapAddress     common.Address
	managerAddress common.Address

	storageABI      abi.ABI
	mapContract     *bind.BoundContract
	managerContract *bind.BoundContract
}

var _ registry.Registry = (*Registry)(nil)

// New wires a registry access object to the map and storage-manager
// contracts of one chain. The transactor signs `addURI` writes; read calls
// need no credential.
func New(client *ethclient.Client, transactor *bind.TransactOpts, mapAddress common.Address, managerAddress common.Address) (*Registry, error) {
	mapParsed, err := abi.JSON(strings.NewReader(mapABI))
	if err != nil {
		return nil, errors.Wrap(err, "cannot parse the map contract ABI")
	}
	storageParsed, err := abi.JSON(strings.NewReader(storageABI))
	if err != nil {
		return nil, errors.Wrap(err, "cannot parse the storage contract ABI")
	}
	managerParsed, err := abi.JSON(strings.NewReader(storageManagerABI))
	if err != nil {
		return nil, errors.Wrap(err, "cannot parse the storage manager ABI")
	}

	return &Registry{
		client:          client,
		transactor:      transactor,
		mapAddress:      mapAddress,
		managerAddress:  managerAddress,
		storageABI:      storageParsed,
		mapContract:     bind.NewBoundContract(mapAddress, mapParsed, client, client, client),
		managerContract: bind.NewBoundContract(managerAddress, managerParsed, client, client, client),
	}, nil
}

func (r *Registry) GetStorageContract(ctx context.Context, assetID *big.Int) (bool, common.Address, error) {
	var out []interface{}
	err := r.mapContract.Call(&bind.CallOpts{Context: ctx}, &out,
		"getStorageContract", assetID, big.NewInt(rwaType), big.NewInt(version))
	if err != nil {
		return false, common.Address{}, errors.Wrap(err, "cannot query the registry map for a storage contract")
	}

	exists := out[0].(bool)
	address := out[1].(common.Address)
	return exists, address, nil
}

func (r *Registry) GreenfieldBucket(ctx context.Context, assetID *big.Int) (string, error) {
	storageContract, err := r.storageContractFor(ctx, assetID)
	if err != nil {
		return "", err
	}

	var out []interface{}
	err = storageContract.Call(&bind.CallOpts{Context: ctx}, &out, "greenfieldBucket")
	if err != nil {
		return "", errors.Wrap(err, "cannot query the bucket name")
	}

	return out[0].(string), nil
}

func (r *Registry) GreenfieldObject(ctx context.Context, assetID *big.Int, uriType rwa.URIType, slot uint64) (string, error) {
	storageContract, err := r.storageContractFor(ctx, assetID)
	if err != nil {
		return "", err
	}

	var out []interface{}
	err = storageContract.Call(&bind.CallOpts{Context: ctx}, &out,
		"greenfieldObject", uint8(uriType), new(big.Int).SetUint64(slot))
	if err != nil {
		return "", errors.Wrap(err, "cannot query the next object name")
	}

	return out[0].(string), nil
}

func (r *Registry) GetURIHash(ctx context.Context, assetID *big.Int, hash common.Hash) (*registry.URIHashRecord, error) {
	storageContract, err := r.storageContractFor(ctx, assetID)
	if err != nil {
		return nil, err
	}

	var out []interface{}
	err = storageContract.Call(&bind.CallOpts{Context: ctx}, &out, "getURIHash", [32]byte(hash))
	if err != nil {
		return nil, errors.Wrap(err, "cannot query the URI hash record")
	}

	record := &registry.URIHashRecord{
		Category:   rwa.URICategory(out[0].(uint8)),
		URIType:    rwa.URIType(out[1].(uint8)),
		Title:      out[2].(string),
		Slot:       out[3].(*big.Int),
		ObjectName: out[4].(string),
		Hash:       common.Hash(out[5].([32]byte)),
		TimeStamp:  out[6].(*big.Int),
	}
	return record, nil
}

func (r *Registry) GetURIHashCount(ctx context.Context, assetID *big.Int, category rwa.URICategory, uriType rwa.URIType) (uint64, error) {
	storageContract, err := r.storageContractFor(ctx, assetID)
	if err != nil {
		return 0, err
	}

	var out []interface{}
	err = storageContract.Call(&bind.CallOpts{Context: ctx}, &out,
		"getURIHashCount", uint8(category), uint8(uriType))
	if err != nil {
		return 0, errors.Wrap(err, "cannot query the URI hash count")
	}

	return out[0].(*big.Int).Uint64(), nil
}

func (r *Registry) ExistURIHash(ctx context.Context, assetID *big.Int, hash common.Hash) (bool, error) {
	storageContract, err := r.storageContractFor(ctx, assetID)
	if err != nil {
		return false, err
	}

	var out []interface{}
	err = storageContract.Call(&bind.CallOpts{Context: ctx}, &out, "existURIHash", [32]byte(hash))
	if err != nil {
		return false, errors.Wrap(err, "cannot query hash existence")
	}

	return out[0].(bool), nil
}

func (r *Registry) AddURI(ctx context.Context, assetID *big.Int, category rwa.URICategory, uriType rwa.URIType,
	title string, slot uint64, hash common.Hash, toChainIDs []string, feeToken common.Address) (string, error) {
	opts := *r.transactor
	opts.Context = ctx

	tx, err := r.managerContract.Transact(&opts, "addURI",
		assetID, uint8(category), uint8(uriType), title,
		new(big.Int).SetUint64(slot), [32]byte(hash), toChainIDs, feeToken)
	if err != nil {
		return "", errors.Wrap(errorcode.ErrorRegistryWrite, err.Error())
	}

	receipt, err := bind.WaitMined(ctx, r.client, tx)
	if err != nil {
		return "", errors.Wrap(errorcode.ErrorRegistryWrite, err.Error())
	}
	if receipt.Status == 0 {
		// A reverted addURI is the registry refusing the descriptor at the
		// atomic enforcement point; the advisory pre-check cannot cover it.
		return "", errors.Wrapf(errorcode.ErrorRegistryWrite, "addURI reverted in transaction %v", tx.Hash())
	}

	return tx.Hash().Hex(), nil
}

func (r *Registry) TokenAdmin(ctx context.Context, assetID *big.Int) (common.Address, error) {
	storageContract, err := r.storageContractFor(ctx, assetID)
	if err != nil {
		return common.Address{}, err
	}

	var out []interface{}
	err = storageContract.Call(&bind.CallOpts{Context: ctx}, &out, "tokenAdmin")
	if err != nil {
		return common.Address{}, errors.Wrap(err, "cannot query the token admin")
	}

	return out[0].(common.Address), nil
}

func (r *Registry) storageContractFor(ctx context.Context, assetID *big.Int) (*bind.BoundContract, error) {
	exists, address, err := r.GetStorageContract(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errorcode.ErrorNoStorageContract
	}

	return bind.NewBoundContract(address, r.storageABI, r.client, r.client, r.client), nil
}
