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

// Package discovery provides the OpenID Connect discovery document.
package discovery

import (
	"net/http"

	"github.com/halyard-id/halyard/internal/oauth/oauth2/constants"
	"github.com/halyard-id/halyard/internal/system/config"
	"github.com/halyard-id/halyard/internal/system/utils"
)

// DiscoveryDocument represents the OpenID Connect provider metadata.
type DiscoveryDocument struct {
	Issuer                            string   `json:"issuer"`
	AuthorizationEndpoint             string   `json:"authorization_endpoint"`
	TokenEndpoint                     string   `json:"token_endpoint"`
	UserInfoEndpoint                  string   `json:"userinfo_endpoint"`
	JWKSURI                           string   `json:"jwks_uri"`
	ScopesSupported                   []string `json:"scopes_supported"`
	ResponseTypesSupported            []string `json:"response_types_supported"`
	GrantTypesSupported               []string `json:"grant_types_supported"`
	SubjectTypesSupported             []string `json:"subject_types_supported"`
	IDTokenSigningAlgValuesSupported  []string `json:"id_token_signing_alg_values_supported"`
	TokenEndpointAuthMethodsSupported []string `json:"token_endpoint_auth_methods_supported"`
}

// DiscoveryHandler handles OpenID Connect discovery requests.
type DiscoveryHandler struct{}

// NewDiscoveryHandler creates a new instance of DiscoveryHandler.
func NewDiscoveryHandler() *DiscoveryHandler {
	return &DiscoveryHandler{}
}

// HandleDiscoveryRequest serves the OpenID Connect discovery document. The
// issuer is taken from the configuration when set, otherwise derived from the
// request host.
func (dh *DiscoveryHandler) HandleDiscoveryRequest(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, BuildDiscoveryDocument(r))
}

// BuildDiscoveryDocument constructs the provider metadata for the given request.
func BuildDiscoveryDocument(r *http.Request) *DiscoveryDocument {
	cfg := config.GetHalyardRuntime().Config

	issuer := cfg.OIDC.Issuer
	if issuer == "" {
		scheme := "https"
		if r.TLS == nil {
			scheme = "http"
		}
		issuer = scheme + "://" + r.Host
	}

	userInfoEndpoint := cfg.OIDC.UserInfoEndpoint
	if userInfoEndpoint == "" {
		userInfoEndpoint = issuer + constants.OAuth2UserInfoEndpoint
	}

	return &DiscoveryDocument{
		Issuer:                issuer,
		AuthorizationEndpoint: issuer + constants.OAuth2AuthorizationEndpoint,
		TokenEndpoint:         issuer + constants.OAuth2TokenEndpoint,
		UserInfoEndpoint:      userInfoEndpoint,
		JWKSURI:               issuer + constants.OAuth2JWKSEndpoint,
		ScopesSupported:       cfg.OAuth.Scopes,
		ResponseTypesSupported: []string{
			constants.ResponseTypeCode,
			constants.ResponseTypeToken,
		},
		GrantTypesSupported: []string{
			constants.GrantTypeAuthorizationCode,
			constants.GrantTypeClientCredential,
			constants.GrantTypePassword,
			constants.GrantTypeRefreshToken,
		},
		SubjectTypesSupported:            []string{"public"},
		IDTokenSigningAlgValuesSupported: []string{"RS256"},
		TokenEndpointAuthMethodsSupported: []string{
			"client_secret_basic",
			"client_secret_post",
		},
	}
}
