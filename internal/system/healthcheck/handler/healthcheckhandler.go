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

// Package handler provides the HTTP handlers for health check requests.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/halyard-id/halyard/internal/system/constants"
	"github.com/halyard-id/halyard/internal/system/healthcheck/model"
	"github.com/halyard-id/halyard/internal/system/healthcheck/service"
	"github.com/halyard-id/halyard/internal/system/log"
)

const loggerComponentName = "HealthCheckHandler"

// HealthCheckHandler handles health check requests.
type HealthCheckHandler struct {
	HealthCheckService service.HealthCheckServiceInterface
}

// NewHealthCheckHandler creates a new instance of HealthCheckHandler.
func NewHealthCheckHandler() *HealthCheckHandler {
	return &HealthCheckHandler{
		HealthCheckService: service.NewHealthCheckService(),
	}
}

// HandleLivenessRequest handles the liveness check request.
func (hch *HealthCheckHandler) HandleLivenessRequest(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// HandleReadinessRequest handles the readiness check request.
func (hch *HealthCheckHandler) HandleReadinessRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	serverStatus := hch.HealthCheckService.CheckReadiness()

	w.Header().Set(constants.ContentTypeHeaderName, constants.ContentTypeJSON)
	if serverStatus.Status != model.StatusUp {
		logger.Error("Readiness check failed", log.String("status", string(serverStatus.Status)))
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}

	if err := json.NewEncoder(w).Encode(serverStatus); err != nil {
		logger.Error("Error encoding readiness response", log.Error(err))
	}
}
