package run

import (
	"fmt"

	idata "github.com/xhd2015/text-animate/data/storage"
	"github.com/xhd2015/text-animate/data/storage/filestore"
	storagehttp "github.com/xhd2015/text-animate/data/storage/http"
	"github.com/xhd2015/text-animate/data/storage/memory"
	"github.com/xhd2015/text-animate/data/storage/sqlite"
	"github.com/xhd2015/text-animate/internal/config"
)

func createProfileService(storageType string, serverAddr string, serverToken string) (idata.ProfileService, error) {
	switch storageType {
	case "sqlite":
		sqliteFile, err := config.GetSqliteFile()
		if err != nil {
			return nil, err
		}
		return sqlite.NewProfileService(sqliteFile)
	case "file":
		profilesFile, err := config.GetProfilesJSONFile()
		if err != nil {
			return nil, err
		}
		return filestore.NewProfileService(profilesFile)
	case "memory":
		return memory.NewProfileService(), nil
	case "server":
		if serverAddr == "" {
			return nil, fmt.Errorf("--server-addr is required when --storage=server")
		}
		return storagehttp.NewProfileService(storagehttp.NewClient(serverAddr, serverToken)), nil
	default:
		return nil, fmt.Errorf("unsupported storage type: %s, available: sqlite, file, memory, server", storageType)
	}
}
