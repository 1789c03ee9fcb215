package run

import (
	"os"

	"github.com/xhd2015/text-animate/data"
)

const DEFAULT_STORAGE = "file"

// StorageConfig holds storage-related configuration values
type StorageConfig struct {
	StorageType string
	ServerAddr  string
	ServerToken string
}

// ApplyConfigDefaults resolves storage settings with the precedence
// flag > environment > config.json > built-in default.
func ApplyConfigDefaults(storageType, serverAddr, serverToken string) (StorageConfig, error) {
	if storageType == "" {
		storageType = os.Getenv("TEXT_ANIMATE_STORAGE")
	}
	if serverAddr == "" {
		serverAddr = os.Getenv("TEXT_ANIMATE_SERVER_ADDR")
	}
	if serverToken == "" {
		serverToken = os.Getenv("TEXT_ANIMATE_SERVER_TOKEN")
	}

	savedConfig, err := data.LoadConfig()
	if err != nil {
		return StorageConfig{}, err
	}

	if storageType == "" && savedConfig != nil && savedConfig.StorageType != "" {
		storageType = savedConfig.StorageType
	}
	if serverAddr == "" && savedConfig != nil && savedConfig.ServerAddr != "" {
		serverAddr = savedConfig.ServerAddr
	}
	if serverToken == "" && savedConfig != nil && savedConfig.ServerToken != "" {
		serverToken = savedConfig.ServerToken
	}

	if storageType == "" {
		storageType = DEFAULT_STORAGE
	}

	return StorageConfig{
		StorageType: storageType,
		ServerAddr:  serverAddr,
		ServerToken: serverToken,
	}, nil
}
