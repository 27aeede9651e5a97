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

// Package token provides the handler for OAuth 2.0 token requests.
package token

import (
	"encoding/json"
	"net/http"

	"github.com/halyard-id/halyard/internal/oauth/oauth2/constants"
	"github.com/halyard-id/halyard/internal/oauth/oauth2/granthandlers"
	"github.com/halyard-id/halyard/internal/oauth/oauth2/model"
	oauthutils "github.com/halyard-id/halyard/internal/oauth/oauth2/utils"
	"github.com/halyard-id/halyard/internal/oauth/oauth2/validator"
	"github.com/halyard-id/halyard/internal/system/log"
	"github.com/halyard-id/halyard/internal/system/utils"
)

const loggerComponentName = "TokenHandler"

// TokenHandler handles OAuth 2.0 token requests.
type TokenHandler struct {
	Validator     validator.RequestValidatorInterface
	GrantProvider granthandlers.GrantHandlerProviderInterface
}

// NewTokenHandler creates a new instance of TokenHandler.
func NewTokenHandler() *TokenHandler {
	return &TokenHandler{
		Validator:     validator.NewRequestValidator(),
		GrantProvider: granthandlers.NewGrantHandlerProvider(),
	}
}

// HandleTokenRequest handles the token request for OAuth 2.0. It authenticates
// the client and delegates to the grant handler for the requested grant type.
func (th *TokenHandler) HandleTokenRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if err := r.ParseForm(); err != nil {
		utils.WriteJSONError(w, constants.ErrorInvalidRequest,
			"Failed to parse request body", http.StatusBadRequest, nil)
		return
	}

	grantType := r.FormValue(constants.GrantType)
	if grantType == "" {
		utils.WriteJSONError(w, constants.ErrorInvalidRequest,
			"Missing grant_type parameter", http.StatusBadRequest, nil)
		return
	}

	grantHandler, ok := th.GrantProvider.GetGrantHandler(grantType)
	if !ok {
		utils.WriteJSONError(w, constants.ErrorUnsupportedGrantType,
			"Unsupported grant type", http.StatusBadRequest, nil)
		return
	}

	clientID, clientSecret, errResp := th.extractClientCredentials(r)
	if errResp != nil {
		status := http.StatusBadRequest
		var responseHeaders []map[string]string
		if errResp.Error == constants.ErrorInvalidClient {
			status = http.StatusUnauthorized
			responseHeaders = []map[string]string{
				{"WWW-Authenticate": "Basic"},
			}
		}
		utils.WriteJSONError(w, errResp.Error, errResp.ErrorDescription, status, responseHeaders)
		return
	}

	tokenRequest := &model.TokenRequest{
		GrantType:    grantType,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Scope:        r.FormValue(constants.Scope),
		Username:     r.FormValue(constants.Username),
		Password:     r.FormValue(constants.Password),
		RefreshToken: r.FormValue(constants.RefreshToken),
		Code:         r.FormValue(constants.Code),
		RedirectURI:  r.FormValue(constants.RedirectURI),
	}

	oauthApp, errResp := th.Validator.AuthenticateClient(clientID, clientSecret)
	if errResp != nil {
		utils.WriteJSONError(w, errResp.Error, errResp.ErrorDescription,
			http.StatusUnauthorized, nil)
		return
	}

	if errResp := th.Validator.ValidateGrantType(oauthApp, grantType); errResp != nil {
		status := http.StatusBadRequest
		if errResp.Error == constants.ErrorUnauthorizedClient {
			status = http.StatusUnauthorized
		}
		utils.WriteJSONError(w, errResp.Error, errResp.ErrorDescription, status, nil)
		return
	}

	if errResp := grantHandler.ValidateGrant(tokenRequest, oauthApp); errResp != nil {
		utils.WriteJSONError(w, errResp.Error, errResp.ErrorDescription,
			http.StatusBadRequest, nil)
		return
	}

	// Scopes are validated against the server configuration only for grants
	// that take the scope from the request itself. The authorization code and
	// refresh token grants carry the scopes granted at authorization time.
	if grantType == constants.GrantTypePassword || grantType == constants.GrantTypeClientCredential {
		validScopes, errResp := th.Validator.ValidateScopes(tokenRequest.Scope)
		if errResp != nil {
			utils.WriteJSONError(w, errResp.Error, errResp.ErrorDescription,
				http.StatusBadRequest, nil)
			return
		}
		tokenRequest.Scope = oauthutils.JoinScopes(validScopes)
	}

	tokenResponse, errResp := grantHandler.HandleGrant(tokenRequest, oauthApp)
	if errResp != nil {
		utils.WriteJSONError(w, errResp.Error, errResp.ErrorDescription,
			http.StatusBadRequest, nil)
		return
	}

	logger.Debug("Token generated successfully", log.String("client_id", clientID))

	w.Header().Set("Content-Type", "application/json")
	// Required when returning credentials in the response body.
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(tokenResponse); err != nil {
		logger.Error("Failed to write token response", log.Error(err))
	}
}

// extractClientCredentials reads the client credentials from the Authorization
// header or the request body. Providing full credentials in both places is
// rejected.
func (th *TokenHandler) extractClientCredentials(r *http.Request) (
	string, string, *model.ErrorResponse) {
	clientID := ""
	clientSecret := ""

	if r.Header.Get("Authorization") != "" {
		var err error
		clientID, clientSecret, err = utils.ExtractBasicAuthCredentials(r)
		if err != nil {
			return "", "", &model.ErrorResponse{
				Error:            constants.ErrorInvalidClient,
				ErrorDescription: "Invalid client credentials",
			}
		}
	}

	clientIDFromBody := r.FormValue(constants.ClientID)
	clientSecretFromBody := r.FormValue(constants.ClientSecret)

	if clientIDFromBody != "" && clientSecretFromBody != "" {
		if clientID != "" && clientSecret != "" {
			return "", "", &model.ErrorResponse{
				Error:            constants.ErrorInvalidRequest,
				ErrorDescription: "Authorization information is provided in both header and body",
			}
		}
		clientID = clientIDFromBody
		clientSecret = clientSecretFromBody
	} else {
		if clientID == "" {
			clientID = clientIDFromBody
		}
		if clientSecret == "" {
			clientSecret = clientSecretFromBody
		}
	}

	return clientID, clientSecret, nil
}
