package storage

import (
	"fmt"
	"log"

	"storefront.GO/config"
)

type FactoryResult struct {
	Driver  string
	Storage Storage
}

// FromConfig opens the storage selected by cfg.StorageDriver.
func FromConfig(cfg *config.Config) (FactoryResult, error) {
	driver := cfg.StorageDriver
	if driver == "" {
		driver = "sqlite"
	}

	switch driver {
	case "sqlite", "mysql":
		db, err := config.NewDB(driver)
		if err != nil {
			return FactoryResult{}, fmt.Errorf("storage: open %s: %w", driver, err)
		}
		s, err := NewGormStorage(db)
		if err != nil {
			return FactoryResult{}, fmt.Errorf("storage: migrate %s: %w", driver, err)
		}
		return FactoryResult{Driver: driver, Storage: s}, nil

	case "redis":
		config.InitRedis()
		if config.RedisClient == nil {
			return FactoryResult{}, fmt.Errorf("storage: STORAGE_DRIVER=redis requires REDIS_ADDR")
		}
		if err := config.RedisClient.Ping(config.RedisCtx()).Err(); err != nil {
			return FactoryResult{}, fmt.Errorf("storage: redis not reachable: %w", err)
		}
		return FactoryResult{Driver: "redis", Storage: NewRedisStorage(config.RedisClient, config.GetEnv("REDIS_PREFIX", "storefront:"))}, nil

	case "file":
		s, err := NewFileStorage(cfg.StorageFile)
		if err != nil {
			return FactoryResult{}, err
		}
		return FactoryResult{Driver: "file", Storage: s}, nil

	case "memory":
		log.Println("storage: memory driver, selections are lost on exit")
		return FactoryResult{Driver: "memory", Storage: NewMemoryStorage()}, nil

	default:
		return FactoryResult{}, fmt.Errorf("unknown STORAGE_DRIVER: %s", driver)
	}
}
