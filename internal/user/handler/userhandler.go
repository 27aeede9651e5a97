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

// Package handler provides the HTTP handlers for user management.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/halyard-id/halyard/internal/system/log"
	"github.com/halyard-id/halyard/internal/system/utils"
	userservice "github.com/halyard-id/halyard/internal/user/service"
	userstore "github.com/halyard-id/halyard/internal/user/store"
)

const loggerComponentName = "UserHandler"

// userCreationRequest is the request body for creating a user.
type userCreationRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
}

// UserHandler handles user management requests.
type UserHandler struct {
	UserService userservice.UserServiceInterface
}

// NewUserHandler creates a new instance of UserHandler.
func NewUserHandler() *UserHandler {
	return &UserHandler{
		UserService: userservice.NewUserService(),
	}
}

// HandleUserPostRequest handles the user creation request.
func (uh *UserHandler) HandleUserPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	var request userCreationRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := uh.UserService.CreateUser(request.Username, request.Password, request.Email)
	if err != nil {
		logger.Error("Failed to create user", log.Error(err))
		http.Error(w, "Failed to create user", http.StatusBadRequest)
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, user)
	logger.Debug("User created", log.String("userId", user.ID))
}

// HandleUserGetRequest handles the user retrieval request.
func (uh *UserHandler) HandleUserGetRequest(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")
	if userID == "" {
		http.Error(w, "Missing user id", http.StatusBadRequest)
		return
	}

	user, err := uh.UserService.GetUser(userID)
	if err != nil {
		if errors.Is(err, userstore.ErrUserNotFound) {
			http.Error(w, "User not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to retrieve user", http.StatusInternalServerError)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, user)
}
