package config

import (
	"fmt"
	"time"
)

// ClientApp holds client runtime settings.
type ClientApp struct {
	// SettleDelay is the navigation guard delay before a signed-in login
	// screen is replaced by the home tabs.
	SettleDelay time.Duration
	// LogFile is the client log file path.
	LogFile string
}

// ClientAdapter holds Auth API settings used by the client transport.
type ClientAdapter struct {
	// HTTPAddress is the Auth API base URL.
	HTTPAddress string
	// LoginTimeout bounds a login call.
	LoginTimeout time.Duration
	// HealthTimeout bounds a health check.
	HealthTimeout time.Duration
}

// ClientDB contains local database settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path, or ":memory:" for a process-local store.
	DSN string
}

// ClientStorage groups client storage settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientConfig is the client view of [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
}

// GetClientConfig loads the merged configuration and maps the fields used
// by the terminal client.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			SettleDelay: cfg.App.SettleDelay,
			LogFile:     cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:   cfg.Adapter.HTTPAddress,
			LoginTimeout:  cfg.Adapter.LoginTimeout,
			HealthTimeout: cfg.Adapter.HealthTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
	}

	return clientCfg, clientCfg.validate()
}
