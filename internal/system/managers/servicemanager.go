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

// Package managers provides functionality for registering the HTTP services.
package managers

import (
	"net/http"

	"github.com/halyard-id/halyard/internal/system/services"
)

// ServiceManagerInterface defines the interface for managing services.
type ServiceManagerInterface interface {
	RegisterServices() error
}

// ServiceManager implements the ServiceManagerInterface.
type ServiceManager struct {
	mux *http.ServeMux
}

// NewServiceManager creates a new instance of ServiceManager.
func NewServiceManager(mux *http.ServeMux) ServiceManagerInterface {
	return &ServiceManager{
		mux: mux,
	}
}

// RegisterServices registers all the services with the HTTP multiplexer.
func (sm *ServiceManager) RegisterServices() error {
	services.NewHealthCheckService(sm.mux)
	services.NewTokenService(sm.mux)
	services.NewAuthorizationService(sm.mux)
	services.NewJWKSService(sm.mux)
	services.NewDiscoveryService(sm.mux)
	services.NewUserInfoService(sm.mux)
	services.NewApplicationService(sm.mux)
	services.NewUserService(sm.mux)

	return nil
}
