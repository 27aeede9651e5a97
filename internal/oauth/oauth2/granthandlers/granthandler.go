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

// Package granthandlers provides an interface and implementations for handling OAuth 2.0 grant types.
package granthandlers

import (
	"time"

	appmodel "github.com/halyard-id/halyard/internal/application/model"
	"github.com/halyard-id/halyard/internal/oauth/credentials"
	"github.com/halyard-id/halyard/internal/oauth/oauth2/constants"
	"github.com/halyard-id/halyard/internal/oauth/oauth2/model"
	tokenmodel "github.com/halyard-id/halyard/internal/oauth/oauth2/token/model"
	tokenstore "github.com/halyard-id/halyard/internal/oauth/oauth2/token/store"
	"github.com/halyard-id/halyard/internal/oauth/oauth2/utils"
	"github.com/halyard-id/halyard/internal/system/config"
	sysutils "github.com/halyard-id/halyard/internal/system/utils"
)

// GrantHandlerInterface defines the interface for handling OAuth 2.0 grants.
type GrantHandlerInterface interface {
	ValidateGrant(tokenRequest *model.TokenRequest, app *appmodel.Application) *model.ErrorResponse
	HandleGrant(tokenRequest *model.TokenRequest, app *appmodel.Application) (
		*model.TokenResponse, *model.ErrorResponse)
}

// tokenIssuer mints opaque tokens and persists them through the token store.
type tokenIssuer struct {
	TokenStore tokenstore.TokenStoreInterface
}

// IssueAccessToken mints and persists a standalone access token without a
// refresh token. Used by the implicit response type.
func IssueAccessToken(store tokenstore.TokenStoreInterface, clientID, userID string,
	scopes []string) (*model.TokenResponse, *model.ErrorResponse) {
	issuer := tokenIssuer{TokenStore: store}
	return issuer.issueTokens(clientID, userID, scopes, false)
}

// issueTokens generates an access token, and optionally a refresh token, for
// the given client and user, persists them, and builds the token response.
func (ti *tokenIssuer) issueTokens(clientID, userID string, scopes []string, includeRefresh bool) (
	*model.TokenResponse, *model.ErrorResponse) {
	oauthConfig := config.GetHalyardRuntime().Config.OAuth
	now := time.Now()

	accessTokenValue, err := credentials.GenerateToken()
	if err != nil {
		return nil, &model.ErrorResponse{
			Error:            constants.ErrorServerError,
			ErrorDescription: "Failed to generate token",
		}
	}

	accessToken := tokenmodel.AccessToken{
		TokenID:     sysutils.GenerateUUID(),
		Token:       accessTokenValue,
		ClientID:    clientID,
		UserID:      userID,
		Scopes:      utils.JoinScopes(scopes),
		TimeCreated: now,
		ExpiryTime:  now.Add(time.Duration(oauthConfig.TokenExpirySeconds) * time.Second),
	}

	tokenResponse := &model.TokenResponse{
		AccessToken: accessTokenValue,
		TokenType:   constants.TokenTypeBearer,
		ExpiresIn:   oauthConfig.TokenExpirySeconds,
		Scope:       accessToken.Scopes,
	}

	if !includeRefresh {
		if err := ti.TokenStore.InsertAccessToken(accessToken); err != nil {
			return nil, &model.ErrorResponse{
				Error:            constants.ErrorServerError,
				ErrorDescription: "Failed to persist token",
			}
		}
		return tokenResponse, nil
	}

	refreshTokenValue, err := credentials.GenerateToken()
	if err != nil {
		return nil, &model.ErrorResponse{
			Error:            constants.ErrorServerError,
			ErrorDescription: "Failed to generate token",
		}
	}

	refreshToken := tokenmodel.RefreshToken{
		TokenID:       sysutils.GenerateUUID(),
		Token:         refreshTokenValue,
		ClientID:      clientID,
		UserID:        userID,
		Scopes:        accessToken.Scopes,
		AccessTokenID: accessToken.TokenID,
		TimeCreated:   now,
	}

	if err := ti.TokenStore.InsertTokenPair(accessToken, refreshToken); err != nil {
		return nil, &model.ErrorResponse{
			Error:            constants.ErrorServerError,
			ErrorDescription: "Failed to persist tokens",
		}
	}

	tokenResponse.RefreshToken = refreshTokenValue
	return tokenResponse, nil
}
