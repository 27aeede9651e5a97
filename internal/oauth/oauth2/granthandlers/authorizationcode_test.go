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

package granthandlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	appconstants "github.com/halyard-id/halyard/internal/application/constants"
	appmodel "github.com/halyard-id/halyard/internal/application/model"
	authzconstants "github.com/halyard-id/halyard/internal/oauth/oauth2/authz/constants"
	authzmodel "github.com/halyard-id/halyard/internal/oauth/oauth2/authz/model"
	"github.com/halyard-id/halyard/internal/oauth/oauth2/constants"
	"github.com/halyard-id/halyard/internal/oauth/oauth2/model"
	"github.com/halyard-id/halyard/internal/system/config"
	"github.com/halyard-id/halyard/tests/mocks/oauthmock"
)

type AuthorizationCodeGrantTestSuite struct {
	suite.Suite
	mockAuthZStore *oauthmock.MockAuthorizationCodeStore
	mockTokenStore *oauthmock.MockTokenStore
	handler        GrantHandlerInterface
	app            *appmodel.Application
}

func TestAuthorizationCodeGrantTestSuite(t *testing.T) {
	suite.Run(t, new(AuthorizationCodeGrantTestSuite))
}

func (s *AuthorizationCodeGrantTestSuite) SetupTest() {
	config.ResetHalyardRuntime()
	err := config.InitializeHalyardRuntime("/tmp", &config.Config{
		OAuth: config.OAuthConfig{
			TokenExpirySeconds: 3600,
			TokenLength:        64,
		},
	})
	s.Require().NoError(err)

	s.mockAuthZStore = &oauthmock.MockAuthorizationCodeStore{}
	s.mockTokenStore = &oauthmock.MockTokenStore{}
	s.handler = &authorizationCodeGrantHandler{
		tokenIssuer: tokenIssuer{TokenStore: s.mockTokenStore},
		AuthZStore:  s.mockAuthZStore,
	}
	s.app = &appmodel.Application{
		ClientID:     "client001",
		ClientSecret: "secret001",
		ClientType:   appconstants.ClientTypeConfidential,
		GrantType:    appconstants.GrantConfigAuthorizationCode,
		RedirectURIs: []string{"https://client.example.com/callback"},
	}
}

func (s *AuthorizationCodeGrantTestSuite) TearDownTest() {
	config.ResetHalyardRuntime()
}

func (s *AuthorizationCodeGrantTestSuite) activeCode() authzmodel.AuthorizationCode {
	now := time.Now()
	return authzmodel.AuthorizationCode{
		CodeID:           "code-id-001",
		Code:             "authcode001",
		ClientID:         "client001",
		RedirectURI:      "https://client.example.com/callback",
		AuthorizedUserID: "user-001",
		Scopes:           "read write",
		TimeCreated:      now,
		ExpiryTime:       now.Add(10 * time.Minute),
	}
}

func (s *AuthorizationCodeGrantTestSuite) TestValidateGrantMissingCode() {
	errResp := s.handler.ValidateGrant(&model.TokenRequest{
		GrantType: constants.GrantTypeAuthorizationCode,
		ClientID:  "client001",
	}, s.app)
	s.Require().NotNil(errResp)
	s.Equal(constants.ErrorInvalidRequest, errResp.Error)
}

func (s *AuthorizationCodeGrantTestSuite) TestHandleGrantSuccess() {
	s.mockAuthZStore.MockGetAuthorizationCode = func(clientID, authCode string) (
		authzmodel.AuthorizationCode, error) {
		return s.activeCode(), nil
	}

	tokenResponse, errResp := s.handler.HandleGrant(&model.TokenRequest{
		GrantType:   constants.GrantTypeAuthorizationCode,
		ClientID:    "client001",
		Code:        "authcode001",
		RedirectURI: "https://client.example.com/callback",
	}, s.app)

	s.Require().Nil(errResp)
	s.NotEmpty(tokenResponse.AccessToken)
	s.NotEmpty(tokenResponse.RefreshToken)
	s.Equal(constants.TokenTypeBearer, tokenResponse.TokenType)
	s.Equal(int64(3600), tokenResponse.ExpiresIn)
	s.Equal("read write", tokenResponse.Scope)

	s.Equal([]string{"code-id-001"}, s.mockAuthZStore.ConsumeAuthorizationCodeCalls)
	s.Require().Len(s.mockTokenStore.InsertTokenPairCalls, 1)
	s.Equal("user-001", s.mockTokenStore.InsertTokenPairCalls[0].AccessToken.UserID)
}

func (s *AuthorizationCodeGrantTestSuite) TestHandleGrantUnknownCode() {
	s.mockAuthZStore.MockGetAuthorizationCode = func(clientID, authCode string) (
		authzmodel.AuthorizationCode, error) {
		return authzmodel.AuthorizationCode{}, authzconstants.ErrAuthorizationCodeNotFound
	}

	_, errResp := s.handler.HandleGrant(&model.TokenRequest{
		Code:        "missing",
		RedirectURI: "https://client.example.com/callback",
	}, s.app)

	s.Require().NotNil(errResp)
	s.Equal(constants.ErrorInvalidGrant, errResp.Error)
}

func (s *AuthorizationCodeGrantTestSuite) TestHandleGrantExpiredCode() {
	expired := s.activeCode()
	expired.ExpiryTime = time.Now().Add(-time.Minute)
	s.mockAuthZStore.MockGetAuthorizationCode = func(clientID, authCode string) (
		authzmodel.AuthorizationCode, error) {
		return expired, nil
	}

	_, errResp := s.handler.HandleGrant(&model.TokenRequest{
		Code:        "authcode001",
		RedirectURI: "https://client.example.com/callback",
	}, s.app)

	s.Require().NotNil(errResp)
	s.Equal(constants.ErrorInvalidGrant, errResp.Error)
}

func (s *AuthorizationCodeGrantTestSuite) TestHandleGrantMismatchingRedirectURI() {
	s.mockAuthZStore.MockGetAuthorizationCode = func(clientID, authCode string) (
		authzmodel.AuthorizationCode, error) {
		return s.activeCode(), nil
	}

	_, errResp := s.handler.HandleGrant(&model.TokenRequest{
		Code:        "authcode001",
		RedirectURI: "https://evil.example.com/callback",
	}, s.app)

	s.Require().NotNil(errResp)
	s.Equal(constants.ErrorInvalidGrant, errResp.Error)
	s.Empty(s.mockAuthZStore.ConsumeAuthorizationCodeCalls)
}

func (s *AuthorizationCodeGrantTestSuite) TestHandleGrantOmittedRedirectURI() {
	s.mockAuthZStore.MockGetAuthorizationCode = func(clientID, authCode string) (
		authzmodel.AuthorizationCode, error) {
		return s.activeCode(), nil
	}

	// The authorize endpoint always records a resolved redirect URI with
	// the code, so the token request must echo it.
	_, errResp := s.handler.HandleGrant(&model.TokenRequest{
		Code: "authcode001",
	}, s.app)

	s.Require().NotNil(errResp)
	s.Equal(constants.ErrorInvalidGrant, errResp.Error)
	s.Empty(s.mockAuthZStore.ConsumeAuthorizationCodeCalls)
}

func (s *AuthorizationCodeGrantTestSuite) TestHandleGrantReplayedCode() {
	s.mockAuthZStore.MockGetAuthorizationCode = func(clientID, authCode string) (
		authzmodel.AuthorizationCode, error) {
		return s.activeCode(), nil
	}
	s.mockAuthZStore.MockConsumeAuthorizationCode = func(codeID string) error {
		return authzconstants.ErrAuthorizationCodeConsumed
	}

	_, errResp := s.handler.HandleGrant(&model.TokenRequest{
		Code:        "authcode001",
		RedirectURI: "https://client.example.com/callback",
	}, s.app)

	s.Require().NotNil(errResp)
	s.Equal(constants.ErrorInvalidGrant, errResp.Error)
	s.Empty(s.mockTokenStore.InsertTokenPairCalls)
}
