package appinit

import (
	"os"
	"time"

	errors "github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

// privateKeyEnvVar names the environment variable holding the hex-encoded
// signing key. The key never appears in the config file or in any log line.
const privateKeyEnvVar = "RWA_STORAGE_PRIVATE_KEY"

// StorageGatewayInfo selects and parameterizes the storage-network access
// strategy. Mode is either "direct" or "remote".
type StorageGatewayInfo struct {
	Mode           string        `yaml:"mode"`
	ChainID        string        `yaml:"chainId"`        // direct mode: the storage network's chain ID
	RPCURL         string        `yaml:"rpcUrl"`         // direct mode: the storage network's RPC endpoint
	ProviderFilter string        `yaml:"providerFilter"` // direct mode: endpoint substring to prefer when picking a provider
	ProxyEndpoint  string        `yaml:"proxyEndpoint"`  // remote mode: base URL of the proxy service
	ProxyTimeout   time.Duration `yaml:"proxyTimeout"`   // remote mode: per-call timeout
}

// ServerInfo is the Go struct for contents in serve.yaml.
type ServerInfo struct {
	Port     int                 `yaml:"port"`
	ChainID  string              `yaml:"chainId"` // the chain descriptors are written on
	RPCURL   string              `yaml:"rpcUrl"`  // the EVM RPC endpoint of that chain
	Storage  *StorageGatewayInfo `yaml:"storage"`
	LogLevel string              `yaml:"logLevel"`
}

// LoadServerInfo loads the server config file (in YAML) which contains info needed to start a server.
//
// Parameters:
//   the path to the config file
//
// Returns:
//   the `ServerInfo` struct containing the info needed to start a server
func LoadServerInfo(configFilePath string) (ret ServerInfo, err error) {
	yamlStr, err := os.ReadFile(configFilePath)
	if err != nil {
		err = errors.Wrap(err, "cannot read the server config file")
		return
	}

	err = yaml.Unmarshal(yamlStr, &ret)
	if err != nil {
		err = errors.Wrap(err, "cannot parse the server config file")
		return
	}

	if ret.Storage == nil {
		err = errors.New("the server config file lacks a storage section")
		return
	}

	return
}

// LoadPrivateKey reads the signing key from the environment.
//
// Returns:
//   the hex-encoded private key
func LoadPrivateKey() (string, error) {
	privateKey := os.Getenv(privateKeyEnvVar)
	if privateKey == "" {
		return "", errors.Errorf("the environment variable %v is not set", privateKeyEnvVar)
	}

	return privateKey, nil
}
