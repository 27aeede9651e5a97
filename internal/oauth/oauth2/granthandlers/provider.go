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
	"github.com/halyard-id/halyard/internal/oauth/oauth2/constants"
)

// GrantHandlerProviderInterface defines the interface for resolving grant handlers.
type GrantHandlerProviderInterface interface {
	GetGrantHandler(grantType string) (GrantHandlerInterface, bool)
}

// GrantHandlerProvider is the default implementation of the GrantHandlerProviderInterface.
type GrantHandlerProvider struct{}

// NewGrantHandlerProvider creates a new instance of GrantHandlerProvider.
func NewGrantHandlerProvider() GrantHandlerProviderInterface {
	return &GrantHandlerProvider{}
}

// GetGrantHandler returns the grant handler for the given grant type. The
// second return value reports whether the grant type is supported.
func (ghp *GrantHandlerProvider) GetGrantHandler(grantType string) (GrantHandlerInterface, bool) {
	switch grantType {
	case constants.GrantTypeAuthorizationCode:
		return newAuthorizationCodeGrantHandler(), true
	case constants.GrantTypeClientCredential:
		return newClientCredentialsGrantHandler(), true
	case constants.GrantTypePassword:
		return newPasswordGrantHandler(), true
	case constants.GrantTypeRefreshToken:
		return newRefreshTokenGrantHandler(), true
	default:
		return nil, false
	}
}
