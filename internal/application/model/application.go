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

// Package model defines the data model for OAuth application management.
package model

import (
	"errors"
	"slices"
	"strings"

	"github.com/halyard-id/halyard/internal/application/constants"
)

// Application represents a registered OAuth client application.
type Application struct {
	AppID        string   `json:"app_id"`
	Name         string   `json:"name"`
	OwnerID      string   `json:"owner_id,omitempty"`
	ClientID     string   `json:"client_id"`
	ClientSecret string   `json:"client_secret,omitempty"`
	ClientType   string   `json:"client_type"`
	GrantType    string   `json:"authorization_grant_type"`
	RedirectURIs []string `json:"redirect_uris"`
}

// IsConfidential reports whether the application is a confidential client.
func (a *Application) IsConfidential() bool {
	return a.ClientType == constants.ClientTypeConfidential
}

// DefaultRedirectURI returns the first registered redirect URI, or an empty
// string when the application has none.
func (a *Application) DefaultRedirectURI() string {
	if len(a.RedirectURIs) == 0 {
		return ""
	}
	return a.RedirectURIs[0]
}

// RedirectURIAllowed reports whether the given redirect URI is registered for
// the application. A single trailing slash on the presented URI is ignored so
// that clients registered without one still match.
func (a *Application) RedirectURIAllowed(redirectURI string) bool {
	trimmed := strings.TrimSuffix(redirectURI, "/")
	for _, registered := range a.RedirectURIs {
		if registered == redirectURI || registered == trimmed {
			return true
		}
	}
	return false
}

// Validate checks the structural invariants of the application.
func (a *Application) Validate() error {
	if a.Name == "" {
		return errors.New("application name is required")
	}
	if a.ClientType != constants.ClientTypeConfidential && a.ClientType != constants.ClientTypePublic {
		return errors.New("invalid client type: " + a.ClientType)
	}
	if !slices.Contains(constants.ValidGrantConfigs, a.GrantType) {
		return errors.New("invalid authorization grant type: " + a.GrantType)
	}
	if a.requiresRedirectURI() && len(a.RedirectURIs) == 0 {
		return errors.New("redirect URIs are required for grant type: " + a.GrantType)
	}
	for _, redirectURI := range a.RedirectURIs {
		if !strings.Contains(redirectURI, "://") {
			return errors.New("invalid redirect URI: " + redirectURI)
		}
	}
	return nil
}

// requiresRedirectURI reports whether the configured grant type involves
// browser redirection and therefore needs at least one registered URI.
func (a *Application) requiresRedirectURI() bool {
	switch a.GrantType {
	case constants.GrantConfigAllInOne, constants.GrantConfigAuthorizationCode,
		constants.GrantConfigImplicit:
		return true
	}
	return false
}
