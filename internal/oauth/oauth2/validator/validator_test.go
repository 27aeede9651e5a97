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

package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	appconstants "github.com/halyard-id/halyard/internal/application/constants"
	appmodel "github.com/halyard-id/halyard/internal/application/model"
	appservice "github.com/halyard-id/halyard/internal/application/service"
	"github.com/halyard-id/halyard/internal/oauth/oauth2/constants"
	"github.com/halyard-id/halyard/internal/system/config"
	"github.com/halyard-id/halyard/tests/mocks/applicationmock"
)

type RequestValidatorTestSuite struct {
	suite.Suite
	mockAppService *applicationmock.MockApplicationService
	validator      RequestValidatorInterface
}

func TestRequestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(RequestValidatorTestSuite))
}

func (s *RequestValidatorTestSuite) SetupTest() {
	config.ResetHalyardRuntime()
	err := config.InitializeHalyardRuntime("/tmp", &config.Config{
		OAuth: config.OAuthConfig{
			Scopes:        []string{"read", "write", "profile"},
			DefaultScopes: []string{"read"},
		},
	})
	s.Require().NoError(err)

	s.mockAppService = &applicationmock.MockApplicationService{}
	s.validator = &RequestValidator{
		AppProvider: &applicationmock.MockApplicationProvider{
			MockGetApplicationService: func() appservice.ApplicationServiceInterface {
				return s.mockAppService
			},
		},
	}
}

func (s *RequestValidatorTestSuite) TearDownTest() {
	config.ResetHalyardRuntime()
}

func (s *RequestValidatorTestSuite) registeredApp() *appmodel.Application {
	return &appmodel.Application{
		AppID:        "app-001",
		Name:         "Test Application",
		ClientID:     "client001",
		ClientSecret: "secret001",
		ClientType:   appconstants.ClientTypeConfidential,
		GrantType:    appconstants.GrantConfigAuthorizationCode,
		RedirectURIs: []string{"https://client.example.com/callback"},
	}
}

func (s *RequestValidatorTestSuite) TestAuthenticateClientSuccess() {
	app := s.registeredApp()
	s.mockAppService.MockGetOAuthApplication = func(clientID string) (*appmodel.Application, error) {
		return app, nil
	}

	authenticated, errResp := s.validator.AuthenticateClient("client001", "secret001")
	s.Require().Nil(errResp)
	s.Equal("client001", authenticated.ClientID)
}

func (s *RequestValidatorTestSuite) TestAuthenticateClientWrongSecret() {
	app := s.registeredApp()
	s.mockAppService.MockGetOAuthApplication = func(clientID string) (*appmodel.Application, error) {
		return app, nil
	}

	_, errResp := s.validator.AuthenticateClient("client001", "wrong")
	s.Require().NotNil(errResp)
	s.Equal(constants.ErrorInvalidClient, errResp.Error)
}

func (s *RequestValidatorTestSuite) TestAuthenticateClientUnknownClient() {
	s.mockAppService.MockGetOAuthApplication = func(clientID string) (*appmodel.Application, error) {
		return nil, errors.New("not found")
	}

	_, errResp := s.validator.AuthenticateClient("ghost", "secret001")
	s.Require().NotNil(errResp)
	s.Equal(constants.ErrorInvalidClient, errResp.Error)
}

func (s *RequestValidatorTestSuite) TestAuthenticatePublicClientWithoutSecret() {
	app := s.registeredApp()
	app.ClientType = appconstants.ClientTypePublic
	s.mockAppService.MockGetOAuthApplication = func(clientID string) (*appmodel.Application, error) {
		return app, nil
	}

	authenticated, errResp := s.validator.AuthenticateClient("client001", "")
	s.Require().Nil(errResp)
	s.Equal("client001", authenticated.ClientID)
}

func (s *RequestValidatorTestSuite) TestAuthenticatePublicClientWrongSecret() {
	app := s.registeredApp()
	app.ClientType = appconstants.ClientTypePublic
	s.mockAppService.MockGetOAuthApplication = func(clientID string) (*appmodel.Application, error) {
		return app, nil
	}

	_, errResp := s.validator.AuthenticateClient("client001", "wrong")
	s.NotNil(errResp)
}

func (s *RequestValidatorTestSuite) TestValidateClientIDMissing() {
	_, errResp := s.validator.ValidateClientID("")
	s.Require().NotNil(errResp)
	s.Equal(constants.ErrorInvalidClient, errResp.Error)
}

func (s *RequestValidatorTestSuite) TestValidateRedirectURIDefault() {
	app := s.registeredApp()

	redirectURI, errResp := s.validator.ValidateRedirectURI(app, "")
	s.Require().Nil(errResp)
	s.Equal("https://client.example.com/callback", redirectURI)
}

func (s *RequestValidatorTestSuite) TestValidateRedirectURIMismatch() {
	app := s.registeredApp()

	_, errResp := s.validator.ValidateRedirectURI(app, "https://evil.example.com/callback")
	s.Require().NotNil(errResp)
	s.Equal(constants.ErrorInvalidRequest, errResp.Error)
}

func (s *RequestValidatorTestSuite) TestValidateResponseType() {
	app := s.registeredApp()

	s.Nil(s.validator.ValidateResponseType(app, constants.ResponseTypeCode))

	errResp := s.validator.ValidateResponseType(app, constants.ResponseTypeToken)
	s.Require().NotNil(errResp)
	s.Equal(constants.ErrorUnauthorizedClient, errResp.Error)

	errResp = s.validator.ValidateResponseType(app, "id_token")
	s.Require().NotNil(errResp)
	s.Equal(constants.ErrorUnsupportedResponseType, errResp.Error)

	errResp = s.validator.ValidateResponseType(app, "")
	s.Require().NotNil(errResp)
	s.Equal(constants.ErrorInvalidRequest, errResp.Error)
}

func (s *RequestValidatorTestSuite) TestValidateResponseTypeAllInOne() {
	app := s.registeredApp()
	app.GrantType = appconstants.GrantConfigAllInOne

	s.Nil(s.validator.ValidateResponseType(app, constants.ResponseTypeCode))
	s.Nil(s.validator.ValidateResponseType(app, constants.ResponseTypeToken))
}

func (s *RequestValidatorTestSuite) TestValidateGrantType() {
	app := s.registeredApp()

	s.Nil(s.validator.ValidateGrantType(app, constants.GrantTypeAuthorizationCode))
	s.Nil(s.validator.ValidateGrantType(app, constants.GrantTypeRefreshToken))

	errResp := s.validator.ValidateGrantType(app, constants.GrantTypePassword)
	s.Require().NotNil(errResp)
	s.Equal(constants.ErrorUnauthorizedClient, errResp.Error)

	errResp = s.validator.ValidateGrantType(app, "device_code")
	s.Require().NotNil(errResp)
	s.Equal(constants.ErrorUnsupportedGrantType, errResp.Error)
}

func (s *RequestValidatorTestSuite) TestValidateGrantTypeImplicitHasNoRefresh() {
	app := s.registeredApp()
	app.GrantType = appconstants.GrantConfigImplicit

	errResp := s.validator.ValidateGrantType(app, constants.GrantTypeRefreshToken)
	s.NotNil(errResp)
}

func (s *RequestValidatorTestSuite) TestValidateScopesNarrowing() {
	granted, errResp := s.validator.ValidateScopes("read admin write")
	s.Require().Nil(errResp)
	s.Equal([]string{"read", "write"}, granted)
}

func (s *RequestValidatorTestSuite) TestValidateScopesDefault() {
	granted, errResp := s.validator.ValidateScopes("")
	s.Require().Nil(errResp)
	s.Equal([]string{"read"}, granted)
}

func (s *RequestValidatorTestSuite) TestValidateScopesAllInvalid() {
	_, errResp := s.validator.ValidateScopes("admin root")
	s.Require().NotNil(errResp)
	s.Equal(constants.ErrorInvalidScope, errResp.Error)
}
