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

package services

import (
	"net/http"

	"github.com/halyard-id/halyard/internal/oauth/oauth2/authz"
	"github.com/halyard-id/halyard/internal/oauth/oauth2/constants"
	"github.com/halyard-id/halyard/internal/system/middleware"
)

// AuthorizationService exposes the OAuth2 authorization endpoint.
type AuthorizationService struct {
	authorizeHandler *authz.AuthorizeHandler
}

// NewAuthorizationService creates a new instance of AuthorizationService and
// registers its routes.
func NewAuthorizationService(mux *http.ServeMux) ServiceInterface {
	instance := &AuthorizationService{
		authorizeHandler: authz.NewAuthorizeHandler(),
	}
	instance.RegisterRoutes(mux)
	return instance
}

// RegisterRoutes registers the routes for the AuthorizationService.
func (s *AuthorizationService) RegisterRoutes(mux *http.ServeMux) {
	opts := middleware.CORSOptions{
		AllowedOrigin:    "*",
		AllowedMethods:   "GET, POST",
		AllowedHeaders:   "Content-Type",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET "+constants.OAuth2AuthorizationEndpoint,
		s.authorizeHandler.HandleAuthorizeGetRequest, opts))
	mux.HandleFunc(middleware.WithCORS("POST "+constants.OAuth2AuthorizationEndpoint,
		s.authorizeHandler.HandleAuthorizePostRequest, opts))
}
