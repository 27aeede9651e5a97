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

package credentials

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/halyard-id/halyard/internal/system/config"
)

type CredentialsTestSuite struct {
	suite.Suite
}

func TestCredentialsTestSuite(t *testing.T) {
	suite.Run(t, new(CredentialsTestSuite))
}

func (s *CredentialsTestSuite) SetupTest() {
	config.ResetHalyardRuntime()
	err := config.InitializeHalyardRuntime("/tmp", &config.Config{
		OAuth: config.OAuthConfig{
			TokenLength: 64,
		},
	})
	s.Require().NoError(err)
}

func (s *CredentialsTestSuite) TearDownTest() {
	config.ResetHalyardRuntime()
}

func (s *CredentialsTestSuite) TestGenerateClientID() {
	clientID, err := GenerateClientID()
	s.Require().NoError(err)
	s.Len(clientID, 40)
	s.NotContains(clientID, ":")
}

func (s *CredentialsTestSuite) TestGenerateClientIDUniqueness() {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		clientID, err := GenerateClientID()
		s.Require().NoError(err)
		s.False(seen[clientID], "duplicate client id generated")
		seen[clientID] = true
	}
}

func (s *CredentialsTestSuite) TestGenerateClientSecret() {
	secret, err := GenerateClientSecret()
	s.Require().NoError(err)
	s.Len(secret, 128)
}

func (s *CredentialsTestSuite) TestGenerateAuthorizationCode() {
	code, err := GenerateAuthorizationCode()
	s.Require().NoError(err)
	s.Len(code, 64)
}

func (s *CredentialsTestSuite) TestGenerateToken() {
	token, err := GenerateToken()
	s.Require().NoError(err)
	s.Len(token, 64)

	for _, r := range token {
		s.True(strings.ContainsRune(clientIDCharset, r), "unexpected character in token: %q", r)
	}
}

func (s *CredentialsTestSuite) TestGenerateTokenConfiguredLength() {
	config.ResetHalyardRuntime()
	err := config.InitializeHalyardRuntime("/tmp", &config.Config{
		OAuth: config.OAuthConfig{TokenLength: 32},
	})
	s.Require().NoError(err)

	token, err := GenerateToken()
	s.Require().NoError(err)
	s.Len(token, 32)
}
