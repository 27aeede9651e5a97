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

	"github.com/stretchr/testify/suite"

	appconstants "github.com/halyard-id/halyard/internal/application/constants"
	appmodel "github.com/halyard-id/halyard/internal/application/model"
	"github.com/halyard-id/halyard/internal/oauth/oauth2/constants"
	"github.com/halyard-id/halyard/internal/oauth/oauth2/model"
	"github.com/halyard-id/halyard/internal/system/config"
	usermodel "github.com/halyard-id/halyard/internal/user/model"
	userservice "github.com/halyard-id/halyard/internal/user/service"
	"github.com/halyard-id/halyard/tests/mocks/oauthmock"
	"github.com/halyard-id/halyard/tests/mocks/usermock"
)

type PasswordGrantTestSuite struct {
	suite.Suite
	mockTokenStore  *oauthmock.MockTokenStore
	mockUserService *usermock.MockUserService
	handler         GrantHandlerInterface
	app             *appmodel.Application
}

func TestPasswordGrantTestSuite(t *testing.T) {
	suite.Run(t, new(PasswordGrantTestSuite))
}

func (s *PasswordGrantTestSuite) SetupTest() {
	config.ResetHalyardRuntime()
	err := config.InitializeHalyardRuntime("/tmp", &config.Config{
		OAuth: config.OAuthConfig{
			TokenExpirySeconds: 3600,
			TokenLength:        64,
		},
	})
	s.Require().NoError(err)

	s.mockTokenStore = &oauthmock.MockTokenStore{}
	s.mockUserService = &usermock.MockUserService{}
	s.handler = &passwordGrantHandler{
		tokenIssuer: tokenIssuer{TokenStore: s.mockTokenStore},
		UserService: s.mockUserService,
	}
	s.app = &appmodel.Application{
		ClientID:     "client001",
		ClientSecret: "secret001",
		ClientType:   appconstants.ClientTypeConfidential,
		GrantType:    appconstants.GrantConfigPassword,
	}
}

func (s *PasswordGrantTestSuite) TearDownTest() {
	config.ResetHalyardRuntime()
}

func (s *PasswordGrantTestSuite) TestValidateGrantMissingCredentials() {
	testCases := []struct {
		name    string
		request *model.TokenRequest
	}{
		{"MissingUsername", &model.TokenRequest{Password: "pass123"}},
		{"MissingPassword", &model.TokenRequest{Username: "alice"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			errResp := s.handler.ValidateGrant(tc.request, s.app)
			s.Require().NotNil(errResp)
			s.Equal(constants.ErrorInvalidRequest, errResp.Error)
		})
	}
}

func (s *PasswordGrantTestSuite) TestHandleGrantSuccess() {
	s.mockUserService.MockVerifyCredentials = func(username, password string) (*usermodel.User, error) {
		s.Equal("alice", username)
		s.Equal("pass123", password)
		return &usermodel.User{ID: "user-001", Username: "alice"}, nil
	}

	tokenResponse, errResp := s.handler.HandleGrant(&model.TokenRequest{
		GrantType: constants.GrantTypePassword,
		ClientID:  "client001",
		Username:  "alice",
		Password:  "pass123",
		Scope:     "read",
	}, s.app)

	s.Require().Nil(errResp)
	s.NotEmpty(tokenResponse.AccessToken)
	s.NotEmpty(tokenResponse.RefreshToken)
	s.Equal("read", tokenResponse.Scope)

	s.Require().Len(s.mockTokenStore.InsertTokenPairCalls, 1)
	s.Equal("user-001", s.mockTokenStore.InsertTokenPairCalls[0].AccessToken.UserID)
	s.Equal("client001", s.mockTokenStore.InsertTokenPairCalls[0].AccessToken.ClientID)
}

func (s *PasswordGrantTestSuite) TestHandleGrantInvalidCredentials() {
	s.mockUserService.MockVerifyCredentials = func(username, password string) (*usermodel.User, error) {
		return nil, userservice.ErrInvalidCredentials
	}

	_, errResp := s.handler.HandleGrant(&model.TokenRequest{
		GrantType: constants.GrantTypePassword,
		ClientID:  "client001",
		Username:  "alice",
		Password:  "wrong",
	}, s.app)

	s.Require().NotNil(errResp)
	s.Equal(constants.ErrorInvalidGrant, errResp.Error)
	s.Empty(s.mockTokenStore.InsertTokenPairCalls)
}
