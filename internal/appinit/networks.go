package appinit

import (
	"github.com/ethereum/go-ethereum/common"
	errors "github.com/pkg/errors"

	"github.com/assetx/rwa-storage/pkg/errorcode"
)

// NetworkInfo is one row of the deployment table: the contract addresses of
// a chain this service can write descriptors on.
type NetworkInfo struct {
	Name           string
	AssetMap       common.Address
	StorageManager common.Address
	FeeManager     common.Address
	FeeToken       common.Address
}

// networkTable holds the deployed contract addresses per chain ID.
var networkTable = map[string]NetworkInfo{
	"421614": {
		Name:           "Arbitrum Sepolia",
		AssetMap:       common.HexToAddress("0x47D91341Ba367BCe483d0Ee2fE02DD1420b883EC"),
		StorageManager: common.HexToAddress("0x769139881024cE730dE9de9c21E3ad6fb5a872f2"),
		FeeManager:     common.HexToAddress("0x8e1fc60c90Aff208023735c9eE54Ff6315D13182"),
		FeeToken:       common.HexToAddress("0xbF5356AdE7e5F775659F301b07c4Bc6961044b11"),
	},
	"97": {
		Name:           "BSC Testnet",
		AssetMap:       common.HexToAddress("0xC886FFa78114cf7e701Fd33505b270505B3FeAE3"),
		StorageManager: common.HexToAddress("0x78e9F16b42508a9BC0892bFF922c09067de08Fc5"),
		FeeManager:     common.HexToAddress("0x20D5CdE9700144ED0Da22754D89f3379916c99Fa"),
		FeeToken:       common.HexToAddress("0xDd43fc986a13392dDbC7aeA150b41EfE27b2d0eD"),
	},
}

// LookupNetwork resolves the contract addresses of a chain ID.
//
// Parameters:
//   the chain ID as a decimal string
//
// Returns:
//   the `NetworkInfo` entry of the chain
func LookupNetwork(chainID string) (*NetworkInfo, error) {
	info, ok := networkTable[chainID]
	if !ok {
		return nil, errors.Wrapf(errorcode.ErrorUnknownChain, "chain ID '%v'", chainID)
	}

	return &info, nil
}
