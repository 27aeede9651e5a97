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

	apphandler "github.com/halyard-id/halyard/internal/application/handler"
	"github.com/halyard-id/halyard/internal/system/middleware"
)

// ApplicationService exposes the application management endpoints.
type ApplicationService struct {
	applicationHandler *apphandler.ApplicationHandler
}

// NewApplicationService creates a new instance of ApplicationService and
// registers its routes.
func NewApplicationService(mux *http.ServeMux) ServiceInterface {
	instance := &ApplicationService{
		applicationHandler: apphandler.NewApplicationHandler(),
	}
	instance.RegisterRoutes(mux)
	return instance
}

// RegisterRoutes registers the routes for the ApplicationService.
func (s *ApplicationService) RegisterRoutes(mux *http.ServeMux) {
	opts := middleware.CORSOptions{
		AllowedOrigin:    "*",
		AllowedMethods:   "GET, POST, DELETE",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}

	mux.HandleFunc(middleware.WithCORS("POST /applications",
		s.applicationHandler.HandleApplicationPostRequest, opts))
	mux.HandleFunc(middleware.WithCORS("GET /applications",
		s.applicationHandler.HandleApplicationListRequest, opts))
	mux.HandleFunc(middleware.WithCORS("GET /applications/{id}",
		s.applicationHandler.HandleApplicationGetRequest, opts))
	mux.HandleFunc(middleware.WithCORS("DELETE /applications/{id}",
		s.applicationHandler.HandleApplicationDeleteRequest, opts))
}
