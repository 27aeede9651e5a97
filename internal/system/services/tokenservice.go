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

	"github.com/halyard-id/halyard/internal/oauth/oauth2/constants"
	"github.com/halyard-id/halyard/internal/oauth/oauth2/token"
	"github.com/halyard-id/halyard/internal/system/middleware"
)

// TokenService exposes the OAuth2 token endpoint.
type TokenService struct {
	tokenHandler *token.TokenHandler
}

// NewTokenService creates a new instance of TokenService and registers its routes.
func NewTokenService(mux *http.ServeMux) ServiceInterface {
	instance := &TokenService{
		tokenHandler: token.NewTokenHandler(),
	}
	instance.RegisterRoutes(mux)
	return instance
}

// RegisterRoutes registers the routes for the TokenService.
func (s *TokenService) RegisterRoutes(mux *http.ServeMux) {
	opts := middleware.CORSOptions{
		AllowedOrigin:    "*",
		AllowedMethods:   "POST",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("POST "+constants.OAuth2TokenEndpoint,
		s.tokenHandler.HandleTokenRequest, opts))
}
