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

	"github.com/halyard-id/halyard/internal/system/middleware"
	userhandler "github.com/halyard-id/halyard/internal/user/handler"
)

// UserService exposes the user management endpoints.
type UserService struct {
	userHandler *userhandler.UserHandler
}

// NewUserService creates a new instance of UserService and registers its routes.
func NewUserService(mux *http.ServeMux) ServiceInterface {
	instance := &UserService{
		userHandler: userhandler.NewUserHandler(),
	}
	instance.RegisterRoutes(mux)
	return instance
}

// RegisterRoutes registers the routes for the UserService.
func (s *UserService) RegisterRoutes(mux *http.ServeMux) {
	opts := middleware.CORSOptions{
		AllowedOrigin:    "*",
		AllowedMethods:   "GET, POST",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}

	mux.HandleFunc(middleware.WithCORS("POST /users",
		s.userHandler.HandleUserPostRequest, opts))
	mux.HandleFunc(middleware.WithCORS("GET /users/{id}",
		s.userHandler.HandleUserGetRequest, opts))
}
