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
	"errors"

	appmodel "github.com/halyard-id/halyard/internal/application/model"
	"github.com/halyard-id/halyard/internal/oauth/oauth2/constants"
	"github.com/halyard-id/halyard/internal/oauth/oauth2/model"
	tokenstore "github.com/halyard-id/halyard/internal/oauth/oauth2/token/store"
	"github.com/halyard-id/halyard/internal/oauth/oauth2/utils"
	userservice "github.com/halyard-id/halyard/internal/user/service"
)

// passwordGrantHandler handles the resource owner password grant type.
type passwordGrantHandler struct {
	tokenIssuer
	UserService userservice.UserServiceInterface
}

// newPasswordGrantHandler creates a new instance of passwordGrantHandler.
func newPasswordGrantHandler() GrantHandlerInterface {
	return &passwordGrantHandler{
		tokenIssuer: tokenIssuer{TokenStore: tokenstore.NewTokenStore()},
		UserService: userservice.NewUserService(),
	}
}

// ValidateGrant validates the password grant request.
func (h *passwordGrantHandler) ValidateGrant(tokenRequest *model.TokenRequest,
	app *appmodel.Application) *model.ErrorResponse {
	if tokenRequest.Username == "" || tokenRequest.Password == "" {
		return &model.ErrorResponse{
			Error:            constants.ErrorInvalidRequest,
			ErrorDescription: "Username and password are required",
		}
	}
	return nil
}

// HandleGrant verifies the resource owner credentials and issues a token pair
// bound to the authenticated user.
func (h *passwordGrantHandler) HandleGrant(tokenRequest *model.TokenRequest,
	app *appmodel.Application) (*model.TokenResponse, *model.ErrorResponse) {
	user, err := h.UserService.VerifyCredentials(tokenRequest.Username, tokenRequest.Password)
	if err != nil {
		if errors.Is(err, userservice.ErrInvalidCredentials) {
			return nil, &model.ErrorResponse{
				Error:            constants.ErrorInvalidGrant,
				ErrorDescription: "Invalid resource owner credentials",
			}
		}
		return nil, &model.ErrorResponse{
			Error:            constants.ErrorServerError,
			ErrorDescription: "Failed to verify resource owner credentials",
		}
	}

	return h.issueTokens(app.ClientID, user.ID, utils.ParseScopes(tokenRequest.Scope), true)
}
