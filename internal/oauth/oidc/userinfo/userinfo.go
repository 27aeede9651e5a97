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

// Package userinfo provides the OpenID Connect userinfo endpoint.
package userinfo

import (
	"net/http"

	"github.com/halyard-id/halyard/internal/oauth/oauth2/constants"
	"github.com/halyard-id/halyard/internal/oauth/oauth2/resource"
	"github.com/halyard-id/halyard/internal/system/log"
	"github.com/halyard-id/halyard/internal/system/utils"
	userservice "github.com/halyard-id/halyard/internal/user/service"
)

const loggerComponentName = "UserInfoHandler"

// UserInfoResponse represents the claims returned from the userinfo endpoint.
type UserInfoResponse struct {
	Sub      string `json:"sub"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
}

// UserInfoHandler handles OpenID Connect userinfo requests. It expects the
// request to have passed bearer token protection.
type UserInfoHandler struct {
	UserService userservice.UserServiceInterface
}

// NewUserInfoHandler creates a new instance of UserInfoHandler.
func NewUserInfoHandler() *UserInfoHandler {
	return &UserInfoHandler{
		UserService: userservice.NewUserService(),
	}
}

// HandleUserInfoRequest returns the claims of the resource owner the access
// token was issued to.
func (uh *UserInfoHandler) HandleUserInfoRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	accessToken, ok := resource.AccessTokenFromContext(r.Context())
	if !ok {
		utils.WriteJSONError(w, constants.ErrorInvalidToken,
			"The access token is invalid", http.StatusForbidden, nil)
		return
	}

	// Tokens issued to an application alone have no resource owner claims.
	if accessToken.UserID == "" {
		utils.WriteJSONError(w, constants.ErrorInvalidRequest,
			"The access token is not associated with a user", http.StatusBadRequest, nil)
		return
	}

	user, err := uh.UserService.GetUser(accessToken.UserID)
	if err != nil {
		logger.Error("Failed to resolve token user", log.Error(err))
		utils.WriteJSONError(w, constants.ErrorServerError,
			"Failed to resolve user information", http.StatusInternalServerError, nil)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, &UserInfoResponse{
		Sub:      user.ID,
		Username: user.Username,
		Email:    user.Email,
	})
}
