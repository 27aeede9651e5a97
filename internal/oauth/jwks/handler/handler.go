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

// Package handler provides the HTTP handler for retrieving the JSON Web Key Set.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/halyard-id/halyard/internal/oauth/jwks"
	serverconst "github.com/halyard-id/halyard/internal/system/constants"
	"github.com/halyard-id/halyard/internal/system/log"
)

// JWKSHandler handles requests for the JSON Web Key Set.
type JWKSHandler struct {
	jwksService jwks.JWKSServiceInterface
}

// NewJWKSHandler creates a new instance of JWKSHandler.
func NewJWKSHandler() *JWKSHandler {
	return &JWKSHandler{
		jwksService: jwks.NewJWKSService(),
	}
}

// HandleJWKSRequest handles the HTTP request to retrieve the JSON Web Key Set.
func (h *JWKSHandler) HandleJWKSRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "JWKSHandler"))

	jwksResponse, svcErr := h.jwksService.GetJWKS()
	if svcErr != nil {
		w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
		w.WriteHeader(http.StatusInternalServerError)
		if err := json.NewEncoder(w).Encode(svcErr); err != nil {
			logger.Error("Error encoding error response", log.Error(err))
		}
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(jwksResponse); err != nil {
		logger.Error("Error encoding JWKS response", log.Error(err))
		http.Error(w, "Failed to encode JWKS response", http.StatusInternalServerError)
		return
	}
	logger.Debug("JWKS response successfully sent")
}
