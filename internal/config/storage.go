// internal/config/storage.go
package config

import (
	"errors"
	"os"
)

// ErrStorageNotConfigured is returned when the storage credential set is incomplete.
// It lets callers distinguish a deployment problem from a transient upstream failure.
var ErrStorageNotConfigured = errors.New("object storage not configured")

// StorageConfig holds the object-storage credential set
type StorageConfig struct {
	StorageZone string
	AccessKey   string
	StorageHost string
	CDNHost     string
}

// NewStorageConfig reads the storage credential set from the environment.
// All of zone, key and CDN hostname are required; the storage API host has a default.
func NewStorageConfig() (*StorageConfig, error) {
	cfg := &StorageConfig{
		StorageZone: os.Getenv("BUNNY_STORAGE_ZONE"),
		AccessKey:   os.Getenv("BUNNY_STORAGE_API_KEY"),
		StorageHost: getEnv("BUNNY_STORAGE_HOST", "https://storage.bunnycdn.com"),
		CDNHost:     os.Getenv("BUNNY_CDN_HOSTNAME"),
	}
	if cfg.StorageZone == "" || cfg.AccessKey == "" || cfg.CDNHost == "" {
		return nil, ErrStorageNotConfigured
	}
	return cfg, nil
}
