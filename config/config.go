// Package config loads the chaincode process settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// Config selects how the chaincode process connects to its peer.
type Config struct {
	// ServerAddress and CCID switch the process into chaincode-as-a-service mode.
	ServerAddress string `env:"CHAINCODE_SERVER_ADDRESS"`
	CCID          string `env:"CHAINCODE_ID"`

	TLSDisabled      bool   `env:"CHAINCODE_TLS_DISABLED" envDefault:"true"`
	TLSKeyFile       string `env:"CHAINCODE_TLS_KEY"`
	TLSCertFile      string `env:"CHAINCODE_TLS_CERT"`
	ClientCACertFile string `env:"CHAINCODE_CLIENT_CA_CERT"`
}

// Load parses the environment and validates the combination of settings.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ExternalService reports whether the chaincode runs as an external service.
func (c Config) ExternalService() bool {
	return c.ServerAddress != ""
}

// Validate rejects partial server or TLS settings.
func (c Config) Validate() error {
	if c.ServerAddress != "" && c.CCID == "" {
		return errors.New("CHAINCODE_ID is required when CHAINCODE_SERVER_ADDRESS is set")
	}
	if c.ServerAddress == "" && c.CCID != "" {
		return errors.New("CHAINCODE_SERVER_ADDRESS is required when CHAINCODE_ID is set")
	}
	if !c.TLSDisabled && (c.TLSKeyFile == "" || c.TLSCertFile == "") {
		return errors.New("CHAINCODE_TLS_KEY and CHAINCODE_TLS_CERT are required when TLS is enabled")
	}
	return nil
}

// TLSMaterial holds the PEM bytes read from the configured files.
type TLSMaterial struct {
	Key          []byte
	Cert         []byte
	ClientCACert []byte
}

// LoadTLSMaterial reads the key, certificate and optional client CA files.
func (c Config) LoadTLSMaterial() (TLSMaterial, error) {
	var m TLSMaterial
	if c.TLSDisabled {
		return m, nil
	}
	var err error
	if m.Key, err = os.ReadFile(c.TLSKeyFile); err != nil {
		return TLSMaterial{}, fmt.Errorf("read tls key: %w", err)
	}
	if m.Cert, err = os.ReadFile(c.TLSCertFile); err != nil {
		return TLSMaterial{}, fmt.Errorf("read tls cert: %w", err)
	}
	if c.ClientCACertFile != "" {
		if m.ClientCACert, err = os.ReadFile(c.ClientCACertFile); err != nil {
			return TLSMaterial{}, fmt.Errorf("read client ca cert: %w", err)
		}
	}
	return m, nil
}
