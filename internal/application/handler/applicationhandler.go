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

// Package handler provides the HTTP handlers for application management.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/halyard-id/halyard/internal/application/model"
	appprovider "github.com/halyard-id/halyard/internal/application/provider"
	"github.com/halyard-id/halyard/internal/application/store"
	"github.com/halyard-id/halyard/internal/system/log"
	"github.com/halyard-id/halyard/internal/system/utils"
)

const loggerComponentName = "ApplicationHandler"

// ApplicationHandler handles application management requests.
type ApplicationHandler struct {
	AppProvider appprovider.ApplicationProviderInterface
}

// NewApplicationHandler creates a new instance of ApplicationHandler.
func NewApplicationHandler() *ApplicationHandler {
	return &ApplicationHandler{
		AppProvider: appprovider.NewApplicationProvider(),
	}
}

// HandleApplicationPostRequest handles the application creation request.
func (ah *ApplicationHandler) HandleApplicationPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	var appInCreationRequest model.Application
	if err := json.NewDecoder(r.Body).Decode(&appInCreationRequest); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	appService := ah.AppProvider.GetApplicationService()
	createdApplication, err := appService.CreateApplication(&appInCreationRequest)
	if err != nil {
		logger.Error("Failed to create application", log.Error(err))
		http.Error(w, "Failed to create application", http.StatusBadRequest)
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, createdApplication)
	logger.Debug("Application created", log.String("appId", createdApplication.AppID))
}

// HandleApplicationListRequest handles the application list request.
func (ah *ApplicationHandler) HandleApplicationListRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	appService := ah.AppProvider.GetApplicationService()
	applications, err := appService.GetApplicationList()
	if err != nil {
		logger.Error("Failed to list applications", log.Error(err))
		http.Error(w, "Failed to list applications", http.StatusInternalServerError)
		return
	}

	// Client secrets are never returned on list responses.
	for i := range applications {
		applications[i].ClientSecret = ""
	}

	utils.WriteJSONResponse(w, http.StatusOK, applications)
}

// HandleApplicationGetRequest handles the application retrieval request.
func (ah *ApplicationHandler) HandleApplicationGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	appID := r.PathValue("id")
	if appID == "" {
		http.Error(w, "Missing application id", http.StatusBadRequest)
		return
	}

	appService := ah.AppProvider.GetApplicationService()
	application, err := appService.GetApplication(appID)
	if err != nil {
		if errors.Is(err, store.ErrApplicationNotFound) {
			http.Error(w, "Application not found", http.StatusNotFound)
			return
		}
		logger.Error("Failed to retrieve application", log.Error(err))
		http.Error(w, "Failed to retrieve application", http.StatusInternalServerError)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, application)
}

// HandleApplicationDeleteRequest handles the application deletion request.
func (ah *ApplicationHandler) HandleApplicationDeleteRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	appID := r.PathValue("id")
	if appID == "" {
		http.Error(w, "Missing application id", http.StatusBadRequest)
		return
	}

	appService := ah.AppProvider.GetApplicationService()
	if err := appService.DeleteApplication(appID); err != nil {
		if errors.Is(err, store.ErrApplicationNotFound) {
			http.Error(w, "Application not found", http.StatusNotFound)
			return
		}
		logger.Error("Failed to delete application", log.Error(err))
		http.Error(w, "Failed to delete application", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
	logger.Debug("Application deleted", log.String("appId", appID))
}
