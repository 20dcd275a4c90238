package document

import (
	"fmt"

	"retrospace/internal/config"
)

// Open constructs the document store selected by STORE_ENGINE.
func Open(cfg *config.Config) (Store, error) {
	switch cfg.StoreEngine {
	case config.EngineFile:
		return OpenFileStore(cfg.DataDir)
	case config.EngineGorm:
		return OpenGormStore(cfg.DBDriver, cfg.DBDSN)
	case config.EngineRedis:
		return OpenRedisStore(cfg.RedisURL)
	default:
		return nil, fmt.Errorf("unsupported STORE_ENGINE %q", cfg.StoreEngine)
	}
}
