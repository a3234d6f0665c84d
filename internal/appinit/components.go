package appinit

import (
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	errors "github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/assetx/rwa-storage/internal/blockchain/feequote"
	"github.com/assetx/rwa-storage/internal/blockchain/feequote/evmfeequote"
	"github.com/assetx/rwa-storage/internal/blockchain/registry"
	"github.com/assetx/rwa-storage/internal/blockchain/registry/evmregistry"
	"github.com/assetx/rwa-storage/internal/storage"
	"github.com/assetx/rwa-storage/internal/storage/gnfdgateway"
	"github.com/assetx/rwa-storage/internal/storage/proxygateway"
)

const defaultProxyTimeout = 30 * time.Second

// AppComponents holds everything the services are built from. It is
// assembled once at startup and handed to main for wiring.
type AppComponents struct {
	Registry      registry.Registry
	Gateway       storage.Gateway
	Quoter        feequote.Quoter
	Network       *NetworkInfo
	SignerAddress common.Address
}

// InitApp builds the chain clients and the storage gateway from the server
// config. The signing key is read from the environment and handed to the
// transactor and the gateway only; it is never logged.
//
// Parameters:
//   the `ServerInfo` struct loaded from the config file
//
// Returns:
//   the assembled `AppComponents`
func InitApp(serverInfo *ServerInfo) (*AppComponents, error) {
	network, err := LookupNetwork(serverInfo.ChainID)
	if err != nil {
		return nil, err
	}

	chainID, ok := new(big.Int).SetString(serverInfo.ChainID, 10)
	if !ok {
		return nil, errors.Errorf("the chain ID '%v' is not a decimal integer", serverInfo.ChainID)
	}

	privateKeyHex, err := LoadPrivateKey()
	if err != nil {
		return nil, err
	}

	privateKey, err := crypto.HexToECDSA(strings.TrimPrefix(privateKeyHex, "0x"))
	if err != nil {
		return nil, errors.New("the signing key cannot be parsed")
	}
	signerAddress := crypto.PubkeyToAddress(privateKey.PublicKey)

	client, err := ethclient.Dial(serverInfo.RPCURL)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot connect to the RPC endpoint '%v'", serverInfo.RPCURL)
	}

	transactor, err := bind.NewKeyedTransactorWithChainID(privateKey, chainID)
	if err != nil {
		return nil, errors.Wrap(err, "cannot create the transactor")
	}

	reg, err := evmregistry.New(client, transactor, network.AssetMap, network.StorageManager)
	if err != nil {
		return nil, err
	}

	quoter, err := evmfeequote.New(client, transactor, network.FeeManager)
	if err != nil {
		return nil, err
	}

	gateway, err := initGateway(serverInfo.Storage, privateKeyHex)
	if err != nil {
		return nil, err
	}

	log.Infof("Initialized the app components on %v (chain ID %v) as %v.", network.Name, serverInfo.ChainID, signerAddress.Hex())

	return &AppComponents{
		Registry:      reg,
		Gateway:       gateway,
		Quoter:        quoter,
		Network:       network,
		SignerAddress: signerAddress,
	}, nil
}

// initGateway builds the storage gateway of the configured mode.
func initGateway(info *StorageGatewayInfo, privateKeyHex string) (storage.Gateway, error) {
	switch info.Mode {
	case "direct":
		return gnfdgateway.New(info.ChainID, info.RPCURL, privateKeyHex, info.ProviderFilter)
	case "remote":
		timeout := info.ProxyTimeout
		if timeout == 0 {
			timeout = defaultProxyTimeout
		}
		return proxygateway.New(info.ProxyEndpoint, timeout), nil
	default:
		return nil, errors.Errorf("unknown storage gateway mode '%v'", info.Mode)
	}
}

// ApplyLogLevel sets the global log level from the config, defaulting to info.
func ApplyLogLevel(level string) error {
	if level == "" {
		log.SetLevel(log.InfoLevel)
		return nil
	}

	parsed, err := log.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(err, "unknown log level '%v'", level)
	}

	log.SetLevel(parsed)
	return nil
}
