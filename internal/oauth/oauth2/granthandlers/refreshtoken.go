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
	"slices"

	appmodel "github.com/halyard-id/halyard/internal/application/model"
	"github.com/halyard-id/halyard/internal/oauth/oauth2/constants"
	"github.com/halyard-id/halyard/internal/oauth/oauth2/model"
	tokenstore "github.com/halyard-id/halyard/internal/oauth/oauth2/token/store"
	"github.com/halyard-id/halyard/internal/oauth/oauth2/utils"
	"github.com/halyard-id/halyard/internal/system/log"
)

// refreshTokenGrantHandler handles the refresh token grant type with rotation.
type refreshTokenGrantHandler struct {
	tokenIssuer
}

// newRefreshTokenGrantHandler creates a new instance of refreshTokenGrantHandler.
func newRefreshTokenGrantHandler() GrantHandlerInterface {
	return &refreshTokenGrantHandler{
		tokenIssuer: tokenIssuer{TokenStore: tokenstore.NewTokenStore()},
	}
}

// ValidateGrant validates the refresh token grant request.
func (h *refreshTokenGrantHandler) ValidateGrant(tokenRequest *model.TokenRequest,
	app *appmodel.Application) *model.ErrorResponse {
	if tokenRequest.RefreshToken == "" {
		return &model.ErrorResponse{
			Error:            constants.ErrorInvalidRequest,
			ErrorDescription: "Refresh token is required",
		}
	}
	return nil
}

// HandleGrant rotates a refresh token: the presented token is deleted, the
// access token issued with it is revoked, and a fresh pair is issued. The
// requested scope may narrow the original grant but never widen it.
func (h *refreshTokenGrantHandler) HandleGrant(tokenRequest *model.TokenRequest,
	app *appmodel.Application) (*model.TokenResponse, *model.ErrorResponse) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "RefreshTokenGrantHandler"))

	refreshToken, err := h.TokenStore.GetRefreshToken(app.ClientID, tokenRequest.RefreshToken)
	if err != nil {
		return nil, &model.ErrorResponse{
			Error:            constants.ErrorInvalidGrant,
			ErrorDescription: "Invalid refresh token",
		}
	}

	originalScopes := utils.ParseScopes(refreshToken.Scopes)
	grantedScopes := originalScopes
	if requested := utils.ParseScopes(tokenRequest.Scope); len(requested) > 0 {
		for _, scope := range requested {
			if !slices.Contains(originalScopes, scope) {
				return nil, &model.ErrorResponse{
					Error:            constants.ErrorInvalidScope,
					ErrorDescription: "Requested scope exceeds the original grant",
				}
			}
		}
		grantedScopes = requested
	}

	// Rotate before issuing anything. Losing the race here means another
	// request already rotated this token.
	if err := h.TokenStore.DeleteRefreshToken(refreshToken.TokenID); err != nil {
		return nil, &model.ErrorResponse{
			Error:            constants.ErrorInvalidGrant,
			ErrorDescription: "Refresh token already used",
		}
	}

	// The old pair must be dead before a new one exists. Issuing fresh
	// tokens while the rotated access token is still live would leave two
	// valid access tokens for one grant.
	if refreshToken.AccessTokenID != "" {
		if err := h.TokenStore.RevokeAccessToken(refreshToken.AccessTokenID); err != nil {
			logger.Error("Failed to revoke rotated access token", log.Error(err))
			return nil, &model.ErrorResponse{
				Error:            constants.ErrorServerError,
				ErrorDescription: "Failed to process the token request",
			}
		}
	}

	return h.issueTokens(app.ClientID, refreshToken.UserID, grantedScopes, true)
}
