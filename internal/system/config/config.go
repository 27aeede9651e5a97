/*
 * Copyright (c) 2025, Halyard Project.
 *
 * Halyard Project licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package config provides structures and functions for loading and managing server configurations.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	yaml "gopkg.in/yaml.v3"
)

// ServerConfig holds the server configuration details.
type ServerConfig struct {
	Hostname string `yaml:"hostname"`
	Port     int    `yaml:"port"`
}

// DataSource holds the individual database connection details.
type DataSource struct {
	Type     string `yaml:"type"`
	Hostname string `yaml:"hostname"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	Path     string `yaml:"path"`
	Options  string `yaml:"options"`
}

// DatabaseConfig holds the different database configuration details.
type DatabaseConfig struct {
	Identity DataSource `yaml:"identity"`
	Runtime  DataSource `yaml:"runtime"`
}

// OAuthConfig holds the OAuth protocol configuration details.
type OAuthConfig struct {
	Scopes                 []string `yaml:"scopes"`
	DefaultScopes          []string `yaml:"default_scopes"`
	ReadScope              string   `yaml:"read_scope"`
	WriteScope             string   `yaml:"write_scope"`
	AuthzCodeExpirySeconds int64    `yaml:"authorization_code_expiry_seconds"`
	TokenExpirySeconds     int64    `yaml:"access_token_expiry_seconds"`
	TokenLength            int      `yaml:"token_length"`
}

// OIDCConfig holds the OpenID Connect discovery configuration details.
type OIDCConfig struct {
	Issuer           string `yaml:"issuer"`
	UserInfoEndpoint string `yaml:"userinfo_endpoint"`
	SigningKeyFile   string `yaml:"signing_key_file"`
}

// CacheConfig holds the in-memory cache configuration details. Caching is
// opt-in: when disabled every lookup goes to the store, so deletes and
// secret changes take effect immediately. Enabling it bounds staleness of
// cached entries to the configured TTL.
type CacheConfig struct {
	Enabled    bool `yaml:"enabled"`
	Size       int  `yaml:"size"`
	TTLSeconds int  `yaml:"ttl_seconds"`
}

// Config holds the complete configuration details of the server.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	OAuth    OAuthConfig    `yaml:"oauth"`
	OIDC     OIDCConfig     `yaml:"oidc"`
	Cache    CacheConfig    `yaml:"cache"`
}

// Default values applied by LoadConfig when the corresponding option is omitted.
const (
	defaultAuthzCodeExpirySeconds = 600
	defaultTokenExpirySeconds     = 36000
	defaultTokenLength            = 64
	defaultReadScope              = "read"
	defaultWriteScope             = "write"
	defaultCacheSize              = 1000
	defaultCacheTTLSeconds        = 300
)

// LoadConfig loads the configurations from the specified YAML file.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	path = filepath.Clean(path)

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults fills in the default values for optional settings.
func (c *Config) applyDefaults() {
	if c.OAuth.ReadScope == "" {
		c.OAuth.ReadScope = defaultReadScope
	}
	if c.OAuth.WriteScope == "" {
		c.OAuth.WriteScope = defaultWriteScope
	}
	if len(c.OAuth.Scopes) == 0 {
		c.OAuth.Scopes = []string{c.OAuth.ReadScope, c.OAuth.WriteScope}
	}
	if len(c.OAuth.DefaultScopes) == 0 {
		c.OAuth.DefaultScopes = slices.Clone(c.OAuth.Scopes)
	}
	if c.OAuth.AuthzCodeExpirySeconds == 0 {
		c.OAuth.AuthzCodeExpirySeconds = defaultAuthzCodeExpirySeconds
	}
	if c.OAuth.TokenExpirySeconds == 0 {
		c.OAuth.TokenExpirySeconds = defaultTokenExpirySeconds
	}
	if c.OAuth.TokenLength == 0 {
		c.OAuth.TokenLength = defaultTokenLength
	}
	if c.Cache.Size == 0 {
		c.Cache.Size = defaultCacheSize
	}
	if c.Cache.TTLSeconds == 0 {
		c.Cache.TTLSeconds = defaultCacheTTLSeconds
	}
}

// Validate checks the configuration for missing or inconsistent mandatory settings.
// Validation failures are startup failures, never per-request errors.
func (c *Config) Validate() error {
	if c.OAuth.AuthzCodeExpirySeconds <= 0 {
		return errors.New("authorization_code_expiry_seconds must be positive")
	}
	if c.OAuth.TokenExpirySeconds <= 0 {
		return errors.New("access_token_expiry_seconds must be positive")
	}
	if c.OAuth.TokenLength < 32 {
		return errors.New("token_length must be at least 32")
	}

	for _, scope := range []string{c.OAuth.ReadScope, c.OAuth.WriteScope} {
		if !slices.Contains(c.OAuth.Scopes, scope) {
			return fmt.Errorf("scope %q must be included in the configured scopes list", scope)
		}
	}
	for _, scope := range c.OAuth.DefaultScopes {
		if !slices.Contains(c.OAuth.Scopes, scope) {
			return fmt.Errorf("default scope %q is not in the configured scopes list", scope)
		}
	}

	return nil
}
