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
	authzmodel "github.com/halyard-id/halyard/internal/oauth/oauth2/authz/model"
	authzstore "github.com/halyard-id/halyard/internal/oauth/oauth2/authz/store"
	"github.com/halyard-id/halyard/internal/oauth/oauth2/constants"
	"github.com/halyard-id/halyard/internal/oauth/oauth2/model"
	tokenstore "github.com/halyard-id/halyard/internal/oauth/oauth2/token/store"
	"github.com/halyard-id/halyard/internal/oauth/oauth2/utils"
)

// authorizationCodeGrantHandler handles the authorization code grant type.
type authorizationCodeGrantHandler struct {
	tokenIssuer
	AuthZStore authzstore.AuthorizationCodeStoreInterface
}

// newAuthorizationCodeGrantHandler creates a new instance of authorizationCodeGrantHandler.
func newAuthorizationCodeGrantHandler() GrantHandlerInterface {
	return &authorizationCodeGrantHandler{
		tokenIssuer: tokenIssuer{TokenStore: tokenstore.NewTokenStore()},
		AuthZStore:  authzstore.NewAuthorizationCodeStore(),
	}
}

// ValidateGrant validates the authorization code grant request.
func (h *authorizationCodeGrantHandler) ValidateGrant(tokenRequest *model.TokenRequest,
	app *appmodel.Application) *model.ErrorResponse {
	if tokenRequest.Code == "" {
		return &model.ErrorResponse{
			Error:            constants.ErrorInvalidRequest,
			ErrorDescription: "Authorization code is required",
		}
	}
	return nil
}

// HandleGrant redeems an authorization code for a token pair. The code is
// single use: redemption deletes it, and a replay fails.
func (h *authorizationCodeGrantHandler) HandleGrant(tokenRequest *model.TokenRequest,
	app *appmodel.Application) (*model.TokenResponse, *model.ErrorResponse) {
	authzCode, err := h.AuthZStore.GetAuthorizationCode(app.ClientID, tokenRequest.Code)
	if err != nil || authzCode.Code == "" {
		return nil, &model.ErrorResponse{
			Error:            constants.ErrorInvalidGrant,
			ErrorDescription: "Invalid authorization code",
		}
	}

	if errResp := validateAuthorizationCode(tokenRequest, authzCode); errResp != nil {
		return nil, errResp
	}

	// Redeem the code before issuing anything. Losing the race here means
	// another request already used the code.
	if err := h.AuthZStore.ConsumeAuthorizationCode(authzCode.CodeID); err != nil {
		return nil, &model.ErrorResponse{
			Error:            constants.ErrorInvalidGrant,
			ErrorDescription: "Authorization code already used",
		}
	}

	return h.issueTokens(app.ClientID, authzCode.AuthorizedUserID,
		utils.ParseScopes(authzCode.Scopes), true)
}

// validateAuthorizationCode validates the retrieved authorization code against
// the token request.
func validateAuthorizationCode(tokenRequest *model.TokenRequest,
	authzCode authzmodel.AuthorizationCode) *model.ErrorResponse {
	if authzCode.IsExpired() {
		return &model.ErrorResponse{
			Error:            constants.ErrorInvalidGrant,
			ErrorDescription: "Authorization code expired",
		}
	}

	// The redirect URI must match the one the code was issued with.
	if authzCode.RedirectURI != "" && tokenRequest.RedirectURI != authzCode.RedirectURI {
		return &model.ErrorResponse{
			Error:            constants.ErrorInvalidGrant,
			ErrorDescription: "Mismatching redirect URI",
		}
	}

	return nil
}
