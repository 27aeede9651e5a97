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

// Package validator provides validation of OAuth2 protocol requests against
// the registered application configuration.
package validator

import (
	"crypto/subtle"
	"slices"

	appmodel "github.com/halyard-id/halyard/internal/application/model"
	appprovider "github.com/halyard-id/halyard/internal/application/provider"
	"github.com/halyard-id/halyard/internal/oauth/oauth2/constants"
	"github.com/halyard-id/halyard/internal/oauth/oauth2/model"
	"github.com/halyard-id/halyard/internal/oauth/oauth2/utils"
	"github.com/halyard-id/halyard/internal/system/config"
)

// RequestValidatorInterface defines the interface for validating OAuth2 requests.
type RequestValidatorInterface interface {
	AuthenticateClient(clientID, clientSecret string) (*appmodel.Application, *model.ErrorResponse)
	ValidateClientID(clientID string) (*appmodel.Application, *model.ErrorResponse)
	ValidateRedirectURI(app *appmodel.Application, redirectURI string) (string, *model.ErrorResponse)
	ValidateResponseType(app *appmodel.Application, responseType string) *model.ErrorResponse
	ValidateGrantType(app *appmodel.Application, grantType string) *model.ErrorResponse
	ValidateScopes(scope string) ([]string, *model.ErrorResponse)
}

// RequestValidator is the default implementation of the RequestValidatorInterface.
type RequestValidator struct {
	AppProvider appprovider.ApplicationProviderInterface
}

// NewRequestValidator creates a new instance of RequestValidator.
func NewRequestValidator() RequestValidatorInterface {
	return &RequestValidator{
		AppProvider: appprovider.NewApplicationProvider(),
	}
}

// AuthenticateClient authenticates a client with its client id and secret.
// Confidential clients must present their secret; public clients may omit it
// but a presented secret must still match.
func (rv *RequestValidator) AuthenticateClient(clientID, clientSecret string) (
	*appmodel.Application, *model.ErrorResponse) {
	if clientID == "" {
		return nil, &model.ErrorResponse{
			Error:            constants.ErrorInvalidClient,
			ErrorDescription: "Client id is required",
		}
	}

	app, errResp := rv.ValidateClientID(clientID)
	if errResp != nil {
		return nil, errResp
	}

	if app.IsConfidential() || clientSecret != "" {
		if subtle.ConstantTimeCompare([]byte(app.ClientSecret), []byte(clientSecret)) != 1 {
			return nil, &model.ErrorResponse{
				Error:            constants.ErrorInvalidClient,
				ErrorDescription: "Invalid client credentials",
			}
		}
	}

	return app, nil
}

// ValidateClientID resolves a client id to its registered application.
func (rv *RequestValidator) ValidateClientID(clientID string) (
	*appmodel.Application, *model.ErrorResponse) {
	if clientID == "" {
		return nil, &model.ErrorResponse{
			Error:            constants.ErrorInvalidClient,
			ErrorDescription: "Client id is required",
		}
	}

	appService := rv.AppProvider.GetApplicationService()
	app, err := appService.GetOAuthApplication(clientID)
	if err != nil || app == nil {
		return nil, &model.ErrorResponse{
			Error:            constants.ErrorInvalidClient,
			ErrorDescription: "Unknown client",
		}
	}

	return app, nil
}

// ValidateRedirectURI resolves and validates the redirect URI of an
// authorization request. An omitted URI falls back to the application's
// default registered URI.
func (rv *RequestValidator) ValidateRedirectURI(app *appmodel.Application, redirectURI string) (
	string, *model.ErrorResponse) {
	if redirectURI == "" {
		defaultURI := app.DefaultRedirectURI()
		if defaultURI == "" {
			return "", &model.ErrorResponse{
				Error:            constants.ErrorInvalidRequest,
				ErrorDescription: "Missing redirect URI",
			}
		}
		return defaultURI, nil
	}

	if !app.RedirectURIAllowed(redirectURI) {
		return "", &model.ErrorResponse{
			Error:            constants.ErrorInvalidRequest,
			ErrorDescription: "Mismatching redirect URI",
		}
	}

	return redirectURI, nil
}

// ValidateResponseType checks an authorization request response type against
// the application's grant configuration.
func (rv *RequestValidator) ValidateResponseType(app *appmodel.Application,
	responseType string) *model.ErrorResponse {
	if responseType == "" {
		return &model.ErrorResponse{
			Error:            constants.ErrorInvalidRequest,
			ErrorDescription: "Missing response_type parameter",
		}
	}

	allowedConfigs, ok := constants.ResponseTypeConfigs[responseType]
	if !ok {
		return &model.ErrorResponse{
			Error:            constants.ErrorUnsupportedResponseType,
			ErrorDescription: "Unsupported response type",
		}
	}

	if !slices.Contains(allowedConfigs, app.GrantType) {
		return &model.ErrorResponse{
			Error:            constants.ErrorUnauthorizedClient,
			ErrorDescription: "The client is not authorized to use this response type",
		}
	}

	return nil
}

// ValidateGrantType checks a token request grant type against the
// application's grant configuration.
func (rv *RequestValidator) ValidateGrantType(app *appmodel.Application,
	grantType string) *model.ErrorResponse {
	if grantType == "" {
		return &model.ErrorResponse{
			Error:            constants.ErrorInvalidRequest,
			ErrorDescription: "Missing grant_type parameter",
		}
	}

	allowedConfigs, ok := constants.GrantTypeConfigs[grantType]
	if !ok {
		return &model.ErrorResponse{
			Error:            constants.ErrorUnsupportedGrantType,
			ErrorDescription: "Unsupported grant type",
		}
	}

	if !slices.Contains(allowedConfigs, app.GrantType) {
		return &model.ErrorResponse{
			Error:            constants.ErrorUnauthorizedClient,
			ErrorDescription: "The client is not authorized to use this grant type",
		}
	}

	return nil
}

// ValidateScopes narrows a requested scope string to the scopes the server is
// configured with. An empty request yields the configured default scopes. A
// non-empty request that narrows to nothing is rejected.
func (rv *RequestValidator) ValidateScopes(scope string) ([]string, *model.ErrorResponse) {
	oauthConfig := config.GetHalyardRuntime().Config.OAuth

	requested := utils.ParseScopes(scope)
	if len(requested) == 0 {
		return slices.Clone(oauthConfig.DefaultScopes), nil
	}

	granted := make([]string, 0, len(requested))
	for _, requestedScope := range requested {
		if slices.Contains(oauthConfig.Scopes, requestedScope) &&
			!slices.Contains(granted, requestedScope) {
			granted = append(granted, requestedScope)
		}
	}

	if len(granted) == 0 {
		return nil, &model.ErrorResponse{
			Error:            constants.ErrorInvalidScope,
			ErrorDescription: "Requested scopes are not valid",
		}
	}

	return granted, nil
}
