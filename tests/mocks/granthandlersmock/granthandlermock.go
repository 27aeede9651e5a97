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

// Package granthandlersmock provides mock implementations of the grant handler interfaces.
package granthandlersmock

import (
	appmodel "github.com/halyard-id/halyard/internal/application/model"
	"github.com/halyard-id/halyard/internal/oauth/oauth2/granthandlers"
	"github.com/halyard-id/halyard/internal/oauth/oauth2/model"
)

// MockGrantHandler is a mock implementation of the GrantHandlerInterface.
type MockGrantHandler struct {
	// MockValidateGrant defines the behavior for the ValidateGrant method.
	MockValidateGrant func(tokenRequest *model.TokenRequest, app *appmodel.Application) *model.ErrorResponse

	// MockHandleGrant defines the behavior for the HandleGrant method.
	MockHandleGrant func(tokenRequest *model.TokenRequest, app *appmodel.Application) (
		*model.TokenResponse, *model.ErrorResponse)

	// HandleGrantCalls tracks the token requests passed to HandleGrant.
	HandleGrantCalls []*model.TokenRequest
}

// ValidateGrant mocks the ValidateGrant method.
func (m *MockGrantHandler) ValidateGrant(tokenRequest *model.TokenRequest,
	app *appmodel.Application) *model.ErrorResponse {
	if m.MockValidateGrant != nil {
		return m.MockValidateGrant(tokenRequest, app)
	}
	return nil
}

// HandleGrant mocks the HandleGrant method.
func (m *MockGrantHandler) HandleGrant(tokenRequest *model.TokenRequest,
	app *appmodel.Application) (*model.TokenResponse, *model.ErrorResponse) {
	m.HandleGrantCalls = append(m.HandleGrantCalls, tokenRequest)
	if m.MockHandleGrant != nil {
		return m.MockHandleGrant(tokenRequest, app)
	}
	return &model.TokenResponse{}, nil
}

// MockGrantHandlerProvider is a mock implementation of the GrantHandlerProviderInterface.
type MockGrantHandlerProvider struct {
	// MockGetGrantHandler defines the behavior for the GetGrantHandler method.
	MockGetGrantHandler func(grantType string) (granthandlers.GrantHandlerInterface, bool)
}

// GetGrantHandler mocks the GetGrantHandler method.
func (m *MockGrantHandlerProvider) GetGrantHandler(grantType string) (
	granthandlers.GrantHandlerInterface, bool) {
	if m.MockGetGrantHandler != nil {
		return m.MockGetGrantHandler(grantType)
	}
	return &MockGrantHandler{}, true
}
