// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// ServerConfig is the Auth API server view of [StructuredConfig].
type ServerConfig struct {
	Server  Server
	Auth    Auth
	Storage Storage
}

// GetServerConfig loads the merged configuration and maps the fields used
// by the development Auth API server.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newServerConfig(cfg)
}

func newServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		Server:  cfg.Server,
		Auth:    cfg.Auth,
		Storage: cfg.Storage,
	}

	return serverCfg, serverCfg.validate()
}
