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

	jwkshandler "github.com/halyard-id/halyard/internal/oauth/jwks/handler"
	"github.com/halyard-id/halyard/internal/oauth/oauth2/constants"
	"github.com/halyard-id/halyard/internal/system/middleware"
)

// JWKSService exposes the JSON Web Key Set endpoint.
type JWKSService struct {
	jwksHandler *jwkshandler.JWKSHandler
}

// NewJWKSService creates a new instance of JWKSService and registers its routes.
func NewJWKSService(mux *http.ServeMux) ServiceInterface {
	instance := &JWKSService{
		jwksHandler: jwkshandler.NewJWKSHandler(),
	}
	instance.RegisterRoutes(mux)
	return instance
}

// RegisterRoutes registers the routes for the JWKSService.
func (s *JWKSService) RegisterRoutes(mux *http.ServeMux) {
	opts := middleware.CORSOptions{
		AllowedOrigin:  "*",
		AllowedMethods: "GET",
		AllowedHeaders: "Content-Type",
	}
	mux.HandleFunc(middleware.WithCORS("GET "+constants.OAuth2JWKSEndpoint,
		s.jwksHandler.HandleJWKSRequest, opts))
}
