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
	appmodel "github.com/halyard-id/halyard/internal/application/model"
	"github.com/halyard-id/halyard/internal/oauth/oauth2/constants"
	"github.com/halyard-id/halyard/internal/oauth/oauth2/model"
	tokenstore "github.com/halyard-id/halyard/internal/oauth/oauth2/token/store"
	"github.com/halyard-id/halyard/internal/oauth/oauth2/utils"
)

// clientCredentialsGrantHandler handles the client credentials grant type.
type clientCredentialsGrantHandler struct {
	tokenIssuer
}

// newClientCredentialsGrantHandler creates a new instance of clientCredentialsGrantHandler.
func newClientCredentialsGrantHandler() GrantHandlerInterface {
	return &clientCredentialsGrantHandler{
		tokenIssuer: tokenIssuer{TokenStore: tokenstore.NewTokenStore()},
	}
}

// ValidateGrant validates the client credentials grant request.
func (h *clientCredentialsGrantHandler) ValidateGrant(tokenRequest *model.TokenRequest,
	app *appmodel.Application) *model.ErrorResponse {
	if tokenRequest.ClientID == "" || tokenRequest.ClientSecret == "" {
		return &model.ErrorResponse{
			Error:            constants.ErrorInvalidRequest,
			ErrorDescription: "Client id and secret are required",
		}
	}
	return nil
}

// HandleGrant issues an access token for the client itself. No refresh token
// is issued; the client can always request a new access token directly.
func (h *clientCredentialsGrantHandler) HandleGrant(tokenRequest *model.TokenRequest,
	app *appmodel.Application) (*model.TokenResponse, *model.ErrorResponse) {
	return h.issueTokens(app.ClientID, "", utils.ParseScopes(tokenRequest.Scope), false)
}
