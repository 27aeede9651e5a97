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

// Package authz provides the handler for OAuth 2.0 authorization requests.
package authz

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/halyard-id/halyard/internal/oauth/credentials"
	authzmodel "github.com/halyard-id/halyard/internal/oauth/oauth2/authz/model"
	authzstore "github.com/halyard-id/halyard/internal/oauth/oauth2/authz/store"
	"github.com/halyard-id/halyard/internal/oauth/oauth2/constants"
	"github.com/halyard-id/halyard/internal/oauth/oauth2/granthandlers"
	"github.com/halyard-id/halyard/internal/oauth/oauth2/model"
	tokenstore "github.com/halyard-id/halyard/internal/oauth/oauth2/token/store"
	oauthutils "github.com/halyard-id/halyard/internal/oauth/oauth2/utils"
	"github.com/halyard-id/halyard/internal/oauth/oauth2/validator"
	sessionmodel "github.com/halyard-id/halyard/internal/oauth/session/model"
	sessionstore "github.com/halyard-id/halyard/internal/oauth/session/store"
	"github.com/halyard-id/halyard/internal/system/config"
	"github.com/halyard-id/halyard/internal/system/log"
	"github.com/halyard-id/halyard/internal/system/utils"
)

const loggerComponentName = "AuthorizeHandler"

// AuthorizeHandler handles OAuth 2.0 authorization requests.
type AuthorizeHandler struct {
	Validator    validator.RequestValidatorInterface
	AuthZStore   authzstore.AuthorizationCodeStoreInterface
	TokenStore   tokenstore.TokenStoreInterface
	SessionStore sessionstore.SessionDataStoreInterface
}

// NewAuthorizeHandler creates a new instance of AuthorizeHandler.
func NewAuthorizeHandler() *AuthorizeHandler {
	return &AuthorizeHandler{
		Validator:    validator.NewRequestValidator(),
		AuthZStore:   authzstore.NewAuthorizationCodeStore(),
		TokenStore:   tokenstore.NewTokenStore(),
		SessionStore: sessionstore.GetSessionDataStore(),
	}
}

// HandleAuthorizeGetRequest handles the initial OAuth 2.0 authorization
// request. On success the request parameters are stored against a session data
// key and a consent payload is returned for the consent user agent.
func (ah *AuthorizeHandler) HandleAuthorizeGetRequest(w http.ResponseWriter, r *http.Request) {
	queryParams := r.URL.Query()

	clientID := queryParams.Get(constants.ClientID)
	redirectURI := queryParams.Get(constants.RedirectURI)
	responseType := queryParams.Get(constants.ResponseType)
	scope := queryParams.Get(constants.Scope)
	state := queryParams.Get(constants.State)

	oauthApp, errResp := ah.Validator.ValidateClientID(clientID)
	if errResp != nil {
		ah.writeAuthorizationError(w, model.NewFatalAuthorizationError(
			errResp.Error, errResp.ErrorDescription), responseType)
		return
	}

	// An untrusted redirect URI must never receive error parameters.
	validatedRedirectURI, errResp := ah.Validator.ValidateRedirectURI(oauthApp, redirectURI)
	if errResp != nil {
		ah.writeAuthorizationError(w, model.NewFatalAuthorizationError(
			errResp.Error, errResp.ErrorDescription), responseType)
		return
	}

	if errResp := ah.Validator.ValidateResponseType(oauthApp, responseType); errResp != nil {
		ah.writeAuthorizationError(w, model.NewRedirectAuthorizationError(
			errResp.Error, errResp.ErrorDescription, validatedRedirectURI, state), responseType)
		return
	}

	scopes, errResp := ah.Validator.ValidateScopes(scope)
	if errResp != nil {
		ah.writeAuthorizationError(w, model.NewRedirectAuthorizationError(
			errResp.Error, errResp.ErrorDescription, validatedRedirectURI, state), responseType)
		return
	}

	sessionDataKey := utils.GenerateUUID()
	ah.SessionStore.AddSession(sessionDataKey, sessionmodel.SessionData{
		ClientID:     oauthApp.ClientID,
		RedirectURI:  validatedRedirectURI,
		ResponseType: responseType,
		Scopes:       oauthutils.JoinScopes(scopes),
		State:        state,
		TimeCreated:  time.Now(),
	})

	utils.WriteJSONResponse(w, http.StatusOK, &authzmodel.ConsentPayload{
		SessionDataKey:  sessionDataKey,
		ApplicationName: oauthApp.Name,
		ClientID:        oauthApp.ClientID,
		RedirectURI:     validatedRedirectURI,
		ResponseType:    responseType,
		Scopes:          scopes,
		State:           state,
	})
}

// HandleAuthorizePostRequest handles the consent decision for a pending
// authorization request and completes the flow for the code or the implicit
// response type.
func (ah *AuthorizeHandler) HandleAuthorizePostRequest(w http.ResponseWriter, r *http.Request) {
	var decision authzmodel.ConsentDecision
	if err := json.NewDecoder(r.Body).Decode(&decision); err != nil {
		ah.writeAuthorizationError(w, model.NewFatalAuthorizationError(
			constants.ErrorInvalidRequest, "Invalid consent request"), "")
		return
	}

	if decision.SessionDataKey == "" {
		ah.writeAuthorizationError(w, model.NewFatalAuthorizationError(
			constants.ErrorInvalidRequest, "Missing session data key"), "")
		return
	}

	found, sessionData := ah.SessionStore.GetSession(decision.SessionDataKey)
	if !found {
		ah.writeAuthorizationError(w, model.NewFatalAuthorizationError(
			constants.ErrorInvalidRequest, "Invalid or expired authorization session"), "")
		return
	}
	ah.SessionStore.ClearSession(decision.SessionDataKey)

	if !decision.Allow || decision.UserID == "" {
		ah.writeAuthorizationError(w, model.NewRedirectAuthorizationError(
			constants.ErrorAccessDenied, "The resource owner denied the request",
			sessionData.RedirectURI, sessionData.State), sessionData.ResponseType)
		return
	}

	switch sessionData.ResponseType {
	case constants.ResponseTypeCode:
		ah.completeCodeFlow(w, &sessionData, decision.UserID)
	case constants.ResponseTypeToken:
		ah.completeImplicitFlow(w, &sessionData, decision.UserID)
	default:
		ah.writeAuthorizationError(w, model.NewFatalAuthorizationError(
			constants.ErrorInvalidRequest, "Invalid response type"), "")
	}
}

// completeCodeFlow issues an authorization code and builds the redirect back
// to the client.
func (ah *AuthorizeHandler) completeCodeFlow(w http.ResponseWriter,
	sessionData *sessionmodel.SessionData, userID string) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	code, err := credentials.GenerateAuthorizationCode()
	if err != nil {
		logger.Error("Failed to generate authorization code", log.Error(err))
		ah.writeAuthorizationError(w, model.NewRedirectAuthorizationError(
			constants.ErrorServerError, "Failed to generate authorization code",
			sessionData.RedirectURI, sessionData.State), sessionData.ResponseType)
		return
	}

	oauthConfig := config.GetHalyardRuntime().Config.OAuth
	now := time.Now()
	authzCode := authzmodel.AuthorizationCode{
		CodeID:           utils.GenerateUUID(),
		Code:             code,
		ClientID:         sessionData.ClientID,
		RedirectURI:      sessionData.RedirectURI,
		AuthorizedUserID: userID,
		Scopes:           sessionData.Scopes,
		State:            sessionData.State,
		TimeCreated:      now,
		ExpiryTime:       now.Add(time.Duration(oauthConfig.AuthzCodeExpirySeconds) * time.Second),
	}

	if err := ah.AuthZStore.InsertAuthorizationCode(authzCode); err != nil {
		logger.Error("Failed to persist authorization code", log.Error(err))
		ah.writeAuthorizationError(w, model.NewRedirectAuthorizationError(
			constants.ErrorServerError, "Failed to generate authorization code",
			sessionData.RedirectURI, sessionData.State), sessionData.ResponseType)
		return
	}

	queryParams := map[string]string{constants.Code: code}
	if sessionData.State != "" {
		queryParams[constants.State] = sessionData.State
	}

	redirectURI, err := oauthutils.GetURIWithQueryParams(sessionData.RedirectURI, queryParams)
	if err != nil {
		logger.Error("Failed to construct redirect URI", log.Error(err))
		ah.writeAuthorizationError(w, model.NewFatalAuthorizationError(
			constants.ErrorServerError, "Failed to construct redirect URI"), "")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, &authzmodel.AuthorizeResult{RedirectURI: redirectURI})
}

// completeImplicitFlow issues an access token directly and delivers it in the
// fragment of the redirect URI. Implicit grants never carry a refresh token.
func (ah *AuthorizeHandler) completeImplicitFlow(w http.ResponseWriter,
	sessionData *sessionmodel.SessionData, userID string) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	tokenResponse, errResp := granthandlers.IssueAccessToken(ah.TokenStore,
		sessionData.ClientID, userID, oauthutils.ParseScopes(sessionData.Scopes))
	if errResp != nil {
		ah.writeAuthorizationError(w, model.NewRedirectAuthorizationError(
			errResp.Error, errResp.ErrorDescription,
			sessionData.RedirectURI, sessionData.State), sessionData.ResponseType)
		return
	}

	fragmentParams := map[string]string{
		"access_token": tokenResponse.AccessToken,
		"token_type":   tokenResponse.TokenType,
		"expires_in":   strconv.FormatInt(tokenResponse.ExpiresIn, 10),
	}
	if tokenResponse.Scope != "" {
		fragmentParams[constants.Scope] = tokenResponse.Scope
	}
	if sessionData.State != "" {
		fragmentParams[constants.State] = sessionData.State
	}

	redirectURI, err := oauthutils.GetURIWithFragmentParams(sessionData.RedirectURI, fragmentParams)
	if err != nil {
		logger.Error("Failed to construct redirect URI", log.Error(err))
		ah.writeAuthorizationError(w, model.NewFatalAuthorizationError(
			constants.ErrorServerError, "Failed to construct redirect URI"), "")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, &authzmodel.AuthorizeResult{RedirectURI: redirectURI})
}

// writeAuthorizationError delivers an authorization error. Fatal errors are
// written as a direct error response; the rest are delivered to the client as
// redirect parameters, in the fragment for the implicit response type.
func (ah *AuthorizeHandler) writeAuthorizationError(w http.ResponseWriter,
	authzErr *model.AuthorizationError, responseType string) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if authzErr.Fatal || authzErr.RedirectURI == "" {
		utils.WriteJSONError(w, authzErr.Code, authzErr.Description, http.StatusBadRequest, nil)
		return
	}

	errorParams := map[string]string{
		constants.Error:            authzErr.Code,
		constants.ErrorDescription: authzErr.Description,
	}
	if authzErr.State != "" {
		errorParams[constants.State] = authzErr.State
	}

	var redirectURI string
	var err error
	if responseType == constants.ResponseTypeToken {
		redirectURI, err = oauthutils.GetURIWithFragmentParams(authzErr.RedirectURI, errorParams)
	} else {
		redirectURI, err = oauthutils.GetURIWithQueryParams(authzErr.RedirectURI, errorParams)
	}
	if err != nil {
		logger.Error("Failed to construct error redirect URI", log.Error(err))
		utils.WriteJSONError(w, authzErr.Code, authzErr.Description, http.StatusBadRequest, nil)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, &authzmodel.AuthorizeResult{RedirectURI: redirectURI})
}
