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

// Package constants defines constants used across the OAuth2 module.
package constants

import appconstants "github.com/halyard-id/halyard/internal/application/constants"

// OAuth2 request parameters.
const (
	GrantType        = "grant_type"
	ClientID         = "client_id"
	ClientSecret     = "client_secret"
	RedirectURI      = "redirect_uri"
	Username         = "username"
	Password         = "password"
	Scope            = "scope"
	Code             = "code"
	RefreshToken     = "refresh_token"
	ResponseType     = "response_type"
	State            = "state"
	Error            = "error"
	ErrorDescription = "error_description"
)

// Server OAuth constants.
const (
	SessionDataKey = "session_data_key"
	Allow          = "allow"
	UserID         = "user_id"
)

// OAuth2 endpoints.
const (
	OAuth2TokenEndpoint         = "/oauth2/token" // #nosec G101
	OAuth2AuthorizationEndpoint = "/oauth2/authorize"
	OAuth2JWKSEndpoint          = "/oauth2/jwks"
	OAuth2UserInfoEndpoint      = "/oauth2/userinfo"
	OIDCDiscoveryEndpoint       = "/.well-known/openid-configuration"
)

// OAuth2 grant types as they appear on the wire in token requests.
const (
	GrantTypeAuthorizationCode = "authorization_code"
	GrantTypeClientCredential  = "client_credential"
	GrantTypePassword          = "password"
	GrantTypeRefreshToken      = "refresh_token"
)

// OAuth2 response types.
const (
	ResponseTypeCode  = "code"
	ResponseTypeToken = "token"
)

// OAuth2 token types.
const (
	TokenTypeBearer = "Bearer"
)

// OAuth2 error codes.
const (
	ErrorInvalidRequest          = "invalid_request"
	ErrorInvalidClient           = "invalid_client"
	ErrorInvalidGrant            = "invalid_grant"
	ErrorUnauthorizedClient      = "unauthorized_client"
	ErrorUnsupportedGrantType    = "unsupported_grant_type"
	ErrorInvalidScope            = "invalid_scope"
	ErrorServerError             = "server_error"
	ErrorUnsupportedResponseType = "unsupported_response_type"
	ErrorAccessDenied            = "access_denied"
	ErrorInvalidToken            = "invalid_token" // #nosec G101
	ErrorInsufficientScope       = "insufficient_scope"
)

// GrantTypeConfigs maps a token request grant type to the application grant
// configurations that permit it. The refresh token grant is available for
// every configuration except implicit-only applications.
var GrantTypeConfigs = map[string][]string{
	GrantTypeAuthorizationCode: {
		appconstants.GrantConfigAllInOne,
		appconstants.GrantConfigAuthorizationCode,
	},
	GrantTypePassword: {
		appconstants.GrantConfigAllInOne,
		appconstants.GrantConfigPassword,
	},
	GrantTypeClientCredential: {
		appconstants.GrantConfigAllInOne,
		appconstants.GrantConfigClientCredential,
	},
	GrantTypeRefreshToken: {
		appconstants.GrantConfigAllInOne,
		appconstants.GrantConfigAuthorizationCode,
		appconstants.GrantConfigPassword,
		appconstants.GrantConfigClientCredential,
	},
}

// ResponseTypeConfigs maps an authorization request response type to the
// application grant configurations that permit it.
var ResponseTypeConfigs = map[string][]string{
	ResponseTypeCode: {
		appconstants.GrantConfigAllInOne,
		appconstants.GrantConfigAuthorizationCode,
	},
	ResponseTypeToken: {
		appconstants.GrantConfigAllInOne,
		appconstants.GrantConfigImplicit,
	},
}
