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

package authz

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	appconstants "github.com/halyard-id/halyard/internal/application/constants"
	appmodel "github.com/halyard-id/halyard/internal/application/model"
	authzmodel "github.com/halyard-id/halyard/internal/oauth/oauth2/authz/model"
	"github.com/halyard-id/halyard/internal/oauth/oauth2/constants"
	"github.com/halyard-id/halyard/internal/oauth/oauth2/model"
	sessionstore "github.com/halyard-id/halyard/internal/oauth/session/store"
	"github.com/halyard-id/halyard/internal/system/config"
	"github.com/halyard-id/halyard/tests/mocks/oauthmock"
)

type AuthorizeHandlerTestSuite struct {
	suite.Suite
	mockValidator  *oauthmock.MockRequestValidator
	mockAuthZStore *oauthmock.MockAuthorizationCodeStore
	mockTokenStore *oauthmock.MockTokenStore
	handler        *AuthorizeHandler
}

func TestAuthorizeHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthorizeHandlerTestSuite))
}

func (s *AuthorizeHandlerTestSuite) SetupTest() {
	config.ResetHalyardRuntime()
	err := config.InitializeHalyardRuntime("/tmp", &config.Config{
		OAuth: config.OAuthConfig{
			AuthzCodeExpirySeconds: 600,
			TokenExpirySeconds:     3600,
			TokenLength:            64,
		},
	})
	s.Require().NoError(err)

	sessionstore.GetSessionDataStore().ClearSessionStore()

	s.mockValidator = &oauthmock.MockRequestValidator{}
	s.mockAuthZStore = &oauthmock.MockAuthorizationCodeStore{}
	s.mockTokenStore = &oauthmock.MockTokenStore{}
	s.handler = &AuthorizeHandler{
		Validator:    s.mockValidator,
		AuthZStore:   s.mockAuthZStore,
		TokenStore:   s.mockTokenStore,
		SessionStore: sessionstore.GetSessionDataStore(),
	}

	s.mockValidator.MockValidateClientID = func(clientID string) (
		*appmodel.Application, *model.ErrorResponse) {
		return &appmodel.Application{
			Name:         "Test Application",
			ClientID:     "client001",
			ClientType:   appconstants.ClientTypeConfidential,
			GrantType:    appconstants.GrantConfigAllInOne,
			RedirectURIs: []string{"https://client.example.com/callback"},
		}, nil
	}
	s.mockValidator.MockValidateRedirectURI = func(app *appmodel.Application,
		redirectURI string) (string, *model.ErrorResponse) {
		return "https://client.example.com/callback", nil
	}
	s.mockValidator.MockValidateScopes = func(scope string) ([]string, *model.ErrorResponse) {
		return []string{"read"}, nil
	}
}

func (s *AuthorizeHandlerTestSuite) TearDownTest() {
	sessionstore.GetSessionDataStore().ClearSessionStore()
	config.ResetHalyardRuntime()
}

func (s *AuthorizeHandlerTestSuite) getAuthorize(params url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet,
		constants.OAuth2AuthorizationEndpoint+"?"+params.Encode(), nil)
	recorder := httptest.NewRecorder()
	s.handler.HandleAuthorizeGetRequest(recorder, req)
	return recorder
}

func (s *AuthorizeHandlerTestSuite) postConsent(decision authzmodel.ConsentDecision) *httptest.ResponseRecorder {
	body, err := json.Marshal(decision)
	s.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, constants.OAuth2AuthorizationEndpoint,
		bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	s.handler.HandleAuthorizePostRequest(recorder, req)
	return recorder
}

func (s *AuthorizeHandlerTestSuite) startCodeFlow() authzmodel.ConsentPayload {
	recorder := s.getAuthorize(url.Values{
		constants.ClientID:     {"client001"},
		constants.RedirectURI:  {"https://client.example.com/callback"},
		constants.ResponseType: {constants.ResponseTypeCode},
		constants.Scope:        {"read"},
		constants.State:        {"xyz"},
	})
	s.Require().Equal(http.StatusOK, recorder.Code)

	var payload authzmodel.ConsentPayload
	s.Require().NoError(json.NewDecoder(recorder.Body).Decode(&payload))
	return payload
}

func (s *AuthorizeHandlerTestSuite) TestInitialRequestReturnsConsentPayload() {
	payload := s.startCodeFlow()

	s.NotEmpty(payload.SessionDataKey)
	s.Equal("Test Application", payload.ApplicationName)
	s.Equal("client001", payload.ClientID)
	s.Equal("https://client.example.com/callback", payload.RedirectURI)
	s.Equal(constants.ResponseTypeCode, payload.ResponseType)
	s.Equal([]string{"read"}, payload.Scopes)
	s.Equal("xyz", payload.State)
}

func (s *AuthorizeHandlerTestSuite) TestInitialRequestUnknownClient() {
	s.mockValidator.MockValidateClientID = func(clientID string) (
		*appmodel.Application, *model.ErrorResponse) {
		return nil, &model.ErrorResponse{
			Error:            constants.ErrorInvalidClient,
			ErrorDescription: "Unknown client",
		}
	}

	recorder := s.getAuthorize(url.Values{
		constants.ClientID:     {"unknown"},
		constants.ResponseType: {constants.ResponseTypeCode},
	})

	s.Equal(http.StatusBadRequest, recorder.Code)
	var errResp model.ErrorResponse
	s.Require().NoError(json.NewDecoder(recorder.Body).Decode(&errResp))
	s.Equal(constants.ErrorInvalidClient, errResp.Error)
}

func (s *AuthorizeHandlerTestSuite) TestInitialRequestUntrustedRedirectURI() {
	s.mockValidator.MockValidateRedirectURI = func(app *appmodel.Application,
		redirectURI string) (string, *model.ErrorResponse) {
		return "", &model.ErrorResponse{
			Error:            constants.ErrorInvalidRequest,
			ErrorDescription: "Mismatching redirect URI",
		}
	}

	recorder := s.getAuthorize(url.Values{
		constants.ClientID:     {"client001"},
		constants.RedirectURI:  {"https://evil.example.com/callback"},
		constants.ResponseType: {constants.ResponseTypeCode},
	})

	// The error must never be delivered to an untrusted redirect URI.
	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *AuthorizeHandlerTestSuite) TestInitialRequestUnsupportedResponseType() {
	s.mockValidator.MockValidateResponseType = func(app *appmodel.Application,
		responseType string) *model.ErrorResponse {
		return &model.ErrorResponse{
			Error:            constants.ErrorUnsupportedResponseType,
			ErrorDescription: "Unsupported response type",
		}
	}

	recorder := s.getAuthorize(url.Values{
		constants.ClientID:     {"client001"},
		constants.RedirectURI:  {"https://client.example.com/callback"},
		constants.ResponseType: {"id_token"},
		constants.State:        {"xyz"},
	})

	s.Equal(http.StatusOK, recorder.Code)
	var result authzmodel.AuthorizeResult
	s.Require().NoError(json.NewDecoder(recorder.Body).Decode(&result))

	parsed, err := url.Parse(result.RedirectURI)
	s.Require().NoError(err)
	s.Equal(constants.ErrorUnsupportedResponseType, parsed.Query().Get(constants.Error))
	s.Equal("xyz", parsed.Query().Get(constants.State))
}

func (s *AuthorizeHandlerTestSuite) TestConsentAllowIssuesAuthorizationCode() {
	payload := s.startCodeFlow()

	recorder := s.postConsent(authzmodel.ConsentDecision{
		SessionDataKey: payload.SessionDataKey,
		UserID:         "user-001",
		Allow:          true,
	})

	s.Require().Equal(http.StatusOK, recorder.Code)
	var result authzmodel.AuthorizeResult
	s.Require().NoError(json.NewDecoder(recorder.Body).Decode(&result))

	parsed, err := url.Parse(result.RedirectURI)
	s.Require().NoError(err)
	s.Equal("https", parsed.Scheme)
	s.NotEmpty(parsed.Query().Get(constants.Code))
	s.Equal("xyz", parsed.Query().Get(constants.State))

	s.Require().Len(s.mockAuthZStore.InsertAuthorizationCodeCalls, 1)
	inserted := s.mockAuthZStore.InsertAuthorizationCodeCalls[0]
	s.Equal("client001", inserted.ClientID)
	s.Equal("user-001", inserted.AuthorizedUserID)
	s.Equal("read", inserted.Scopes)
	s.True(inserted.ExpiryTime.After(inserted.TimeCreated))
}

func (s *AuthorizeHandlerTestSuite) TestConsentDenyRedirectsWithAccessDenied() {
	payload := s.startCodeFlow()

	recorder := s.postConsent(authzmodel.ConsentDecision{
		SessionDataKey: payload.SessionDataKey,
		UserID:         "user-001",
		Allow:          false,
	})

	s.Require().Equal(http.StatusOK, recorder.Code)
	var result authzmodel.AuthorizeResult
	s.Require().NoError(json.NewDecoder(recorder.Body).Decode(&result))

	parsed, err := url.Parse(result.RedirectURI)
	s.Require().NoError(err)
	s.Equal(constants.ErrorAccessDenied, parsed.Query().Get(constants.Error))
	s.Empty(s.mockAuthZStore.InsertAuthorizationCodeCalls)
}

func (s *AuthorizeHandlerTestSuite) TestConsentSessionIsSingleUse() {
	payload := s.startCodeFlow()

	first := s.postConsent(authzmodel.ConsentDecision{
		SessionDataKey: payload.SessionDataKey,
		UserID:         "user-001",
		Allow:          true,
	})
	s.Equal(http.StatusOK, first.Code)

	second := s.postConsent(authzmodel.ConsentDecision{
		SessionDataKey: payload.SessionDataKey,
		UserID:         "user-001",
		Allow:          true,
	})
	s.Equal(http.StatusBadRequest, second.Code)
}

func (s *AuthorizeHandlerTestSuite) TestConsentUnknownSession() {
	recorder := s.postConsent(authzmodel.ConsentDecision{
		SessionDataKey: "missing-session",
		UserID:         "user-001",
		Allow:          true,
	})
	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *AuthorizeHandlerTestSuite) TestImplicitFlowDeliversTokenInFragment() {
	recorder := s.getAuthorize(url.Values{
		constants.ClientID:     {"client001"},
		constants.RedirectURI:  {"https://client.example.com/callback"},
		constants.ResponseType: {constants.ResponseTypeToken},
		constants.Scope:        {"read"},
		constants.State:        {"xyz"},
	})
	s.Require().Equal(http.StatusOK, recorder.Code)

	var payload authzmodel.ConsentPayload
	s.Require().NoError(json.NewDecoder(recorder.Body).Decode(&payload))

	consent := s.postConsent(authzmodel.ConsentDecision{
		SessionDataKey: payload.SessionDataKey,
		UserID:         "user-001",
		Allow:          true,
	})
	s.Require().Equal(http.StatusOK, consent.Code)

	var result authzmodel.AuthorizeResult
	s.Require().NoError(json.NewDecoder(consent.Body).Decode(&result))

	parsed, err := url.Parse(result.RedirectURI)
	s.Require().NoError(err)
	s.Require().NotEmpty(parsed.Fragment)

	fragmentParams, err := url.ParseQuery(parsed.Fragment)
	s.Require().NoError(err)
	s.NotEmpty(fragmentParams.Get("access_token"))
	s.Equal(constants.TokenTypeBearer, fragmentParams.Get("token_type"))
	s.Equal("xyz", fragmentParams.Get(constants.State))
	s.False(strings.Contains(parsed.RawQuery, "access_token"))

	// Implicit grants are persisted as standalone access tokens with no
	// refresh token.
	s.Require().Len(s.mockTokenStore.InsertAccessTokenCalls, 1)
	s.Empty(s.mockTokenStore.InsertTokenPairCalls)
	s.Equal("user-001", s.mockTokenStore.InsertAccessTokenCalls[0].UserID)
}
