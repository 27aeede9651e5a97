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

package oauthmock

import (
	appmodel "github.com/halyard-id/halyard/internal/application/model"
	"github.com/halyard-id/halyard/internal/oauth/oauth2/model"
)

// MockRequestValidator is a mock implementation of the RequestValidatorInterface.
type MockRequestValidator struct {
	// MockAuthenticateClient defines the behavior for the AuthenticateClient method.
	MockAuthenticateClient func(clientID, clientSecret string) (*appmodel.Application, *model.ErrorResponse)

	// MockValidateClientID defines the behavior for the ValidateClientID method.
	MockValidateClientID func(clientID string) (*appmodel.Application, *model.ErrorResponse)

	// MockValidateRedirectURI defines the behavior for the ValidateRedirectURI method.
	MockValidateRedirectURI func(app *appmodel.Application, redirectURI string) (string, *model.ErrorResponse)

	// MockValidateResponseType defines the behavior for the ValidateResponseType method.
	MockValidateResponseType func(app *appmodel.Application, responseType string) *model.ErrorResponse

	// MockValidateGrantType defines the behavior for the ValidateGrantType method.
	MockValidateGrantType func(app *appmodel.Application, grantType string) *model.ErrorResponse

	// MockValidateScopes defines the behavior for the ValidateScopes method.
	MockValidateScopes func(scope string) ([]string, *model.ErrorResponse)
}

// AuthenticateClient mocks the AuthenticateClient method.
func (m *MockRequestValidator) AuthenticateClient(clientID, clientSecret string) (
	*appmodel.Application, *model.ErrorResponse) {
	if m.MockAuthenticateClient != nil {
		return m.MockAuthenticateClient(clientID, clientSecret)
	}
	return &appmodel.Application{}, nil
}

// ValidateClientID mocks the ValidateClientID method.
func (m *MockRequestValidator) ValidateClientID(clientID string) (
	*appmodel.Application, *model.ErrorResponse) {
	if m.MockValidateClientID != nil {
		return m.MockValidateClientID(clientID)
	}
	return &appmodel.Application{}, nil
}

// ValidateRedirectURI mocks the ValidateRedirectURI method.
func (m *MockRequestValidator) ValidateRedirectURI(app *appmodel.Application,
	redirectURI string) (string, *model.ErrorResponse) {
	if m.MockValidateRedirectURI != nil {
		return m.MockValidateRedirectURI(app, redirectURI)
	}
	return redirectURI, nil
}

// ValidateResponseType mocks the ValidateResponseType method.
func (m *MockRequestValidator) ValidateResponseType(app *appmodel.Application,
	responseType string) *model.ErrorResponse {
	if m.MockValidateResponseType != nil {
		return m.MockValidateResponseType(app, responseType)
	}
	return nil
}

// ValidateGrantType mocks the ValidateGrantType method.
func (m *MockRequestValidator) ValidateGrantType(app *appmodel.Application,
	grantType string) *model.ErrorResponse {
	if m.MockValidateGrantType != nil {
		return m.MockValidateGrantType(app, grantType)
	}
	return nil
}

// ValidateScopes mocks the ValidateScopes method.
func (m *MockRequestValidator) ValidateScopes(scope string) ([]string, *model.ErrorResponse) {
	if m.MockValidateScopes != nil {
		return m.MockValidateScopes(scope)
	}
	return nil, nil
}
