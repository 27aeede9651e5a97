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

	"github.com/halyard-id/halyard/internal/system/healthcheck/handler"
	"github.com/halyard-id/halyard/internal/system/middleware"
)

// HealthCheckService exposes the liveness and readiness endpoints.
type HealthCheckService struct {
	healthCheckHandler *handler.HealthCheckHandler
}

// NewHealthCheckService creates a new instance of HealthCheckService and
// registers its routes.
func NewHealthCheckService(mux *http.ServeMux) ServiceInterface {
	instance := &HealthCheckService{
		healthCheckHandler: handler.NewHealthCheckHandler(),
	}
	instance.RegisterRoutes(mux)
	return instance
}

// RegisterRoutes registers the routes for the HealthCheckService.
func (s *HealthCheckService) RegisterRoutes(mux *http.ServeMux) {
	opts := middleware.CORSOptions{
		AllowedOrigin:  "*",
		AllowedMethods: "GET",
		AllowedHeaders: "Content-Type",
	}

	mux.HandleFunc(middleware.WithCORS("GET /health/liveness",
		s.healthCheckHandler.HandleLivenessRequest, opts))
	mux.HandleFunc(middleware.WithCORS("GET /health/readiness",
		s.healthCheckHandler.HandleReadinessRequest, opts))
}
