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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
	tempDir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) SetupTest() {
	suite.tempDir = suite.T().TempDir()
}

func (suite *ConfigTestSuite) writeConfigFile(content string) string {
	path := filepath.Join(suite.tempDir, "deployment.yaml")
	err := os.WriteFile(path, []byte(content), 0600)
	assert.NoError(suite.T(), err)
	return path
}

func (suite *ConfigTestSuite) TestLoadConfigSuccess() {
	path := suite.writeConfigFile(`
server:
  hostname: localhost
  port: 8090
database:
  runtime:
    type: sqlite
    path: repository/database/runtimedb.db
oauth:
  scopes: [read, write, profile]
  default_scopes: [read]
  authorization_code_expiry_seconds: 300
  access_token_expiry_seconds: 3600
oidc:
  issuer: https://auth.example.com
  signing_key_file: repository/security/signing.key
`)

	cfg, err := LoadConfig(path)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "localhost", cfg.Server.Hostname)
	assert.Equal(suite.T(), 8090, cfg.Server.Port)
	assert.Equal(suite.T(), []string{"read", "write", "profile"}, cfg.OAuth.Scopes)
	assert.Equal(suite.T(), []string{"read"}, cfg.OAuth.DefaultScopes)
	assert.Equal(suite.T(), int64(300), cfg.OAuth.AuthzCodeExpirySeconds)
	assert.Equal(suite.T(), int64(3600), cfg.OAuth.TokenExpirySeconds)
	assert.Equal(suite.T(), "https://auth.example.com", cfg.OIDC.Issuer)
	assert.Equal(suite.T(), "sqlite", cfg.Database.Runtime.Type)
}

func (suite *ConfigTestSuite) TestLoadConfigDefaults() {
	path := suite.writeConfigFile(`
server:
  hostname: localhost
  port: 8090
`)

	cfg, err := LoadConfig(path)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"read", "write"}, cfg.OAuth.Scopes)
	assert.Equal(suite.T(), []string{"read", "write"}, cfg.OAuth.DefaultScopes)
	assert.Equal(suite.T(), "read", cfg.OAuth.ReadScope)
	assert.Equal(suite.T(), "write", cfg.OAuth.WriteScope)
	assert.Equal(suite.T(), int64(600), cfg.OAuth.AuthzCodeExpirySeconds)
	assert.Equal(suite.T(), int64(36000), cfg.OAuth.TokenExpirySeconds)
	assert.Equal(suite.T(), 64, cfg.OAuth.TokenLength)
}

func (suite *ConfigTestSuite) TestLoadConfigFileNotFound() {
	cfg, err := LoadConfig(filepath.Join(suite.tempDir, "missing.yaml"))
	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), cfg)
}

func (suite *ConfigTestSuite) TestLoadConfigInvalidYAML() {
	path := suite.writeConfigFile("server: [not: valid")
	cfg, err := LoadConfig(path)
	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), cfg)
}

func (suite *ConfigTestSuite) TestValidateRejectsUnknownDefaultScope() {
	path := suite.writeConfigFile(`
oauth:
  scopes: [read, write]
  default_scopes: [admin]
`)
	cfg, err := LoadConfig(path)
	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), cfg)
}

func (suite *ConfigTestSuite) TestValidateRejectsMissingReadWriteScopes() {
	path := suite.writeConfigFile(`
oauth:
  scopes: [profile]
`)
	cfg, err := LoadConfig(path)
	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), cfg)
}

func (suite *ConfigTestSuite) TestValidateRejectsShortTokenLength() {
	path := suite.writeConfigFile(`
oauth:
  token_length: 8
`)
	cfg, err := LoadConfig(path)
	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), cfg)
}
