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
	"github.com/halyard-id/halyard/internal/oauth/oauth2/resource"
	"github.com/halyard-id/halyard/internal/oauth/oidc/userinfo"
	"github.com/halyard-id/halyard/internal/system/middleware"
)

// UserInfoService exposes the OpenID Connect userinfo endpoint behind bearer
// token protection.
type UserInfoService struct {
	userInfoHandler *userinfo.UserInfoHandler
	protector       *resource.Protector
}

// NewUserInfoService creates a new instance of UserInfoService and registers
// its routes.
func NewUserInfoService(mux *http.ServeMux) ServiceInterface {
	instance := &UserInfoService{
		userInfoHandler: userinfo.NewUserInfoHandler(),
		protector:       resource.NewProtector(),
	}
	instance.RegisterRoutes(mux)
	return instance
}

// RegisterRoutes registers the routes for the UserInfoService.
func (s *UserInfoService) RegisterRoutes(mux *http.ServeMux) {
	opts := middleware.CORSOptions{
		AllowedOrigin:  "*",
		AllowedMethods: "GET, POST",
		AllowedHeaders: "Content-Type, Authorization",
	}

	protected := s.protector.Protect(s.userInfoHandler.HandleUserInfoRequest, nil)
	mux.HandleFunc(middleware.WithCORS("GET "+constants.OAuth2UserInfoEndpoint, protected, opts))
	mux.HandleFunc(middleware.WithCORS("POST "+constants.OAuth2UserInfoEndpoint, protected, opts))
}
