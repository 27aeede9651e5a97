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

// Package model defines the data structures for OAuth2 authorization.
package model

import "time"

// AuthorizationCode represents an issued authorization code.
type AuthorizationCode struct {
	CodeID           string
	Code             string
	ClientID         string
	RedirectURI      string
	AuthorizedUserID string
	Scopes           string
	State            string
	TimeCreated      time.Time
	ExpiryTime       time.Time
}

// IsExpired reports whether the authorization code has passed its expiry time.
func (c *AuthorizationCode) IsExpired() bool {
	return time.Now().After(c.ExpiryTime)
}

// ConsentPayload represents the pending authorization request returned to the
// consent user agent after the initial request has been validated.
type ConsentPayload struct {
	SessionDataKey  string   `json:"session_data_key"`
	ApplicationName string   `json:"application_name"`
	ClientID        string   `json:"client_id"`
	RedirectURI     string   `json:"redirect_uri"`
	ResponseType    string   `json:"response_type"`
	Scopes          []string `json:"scopes"`
	State           string   `json:"state,omitempty"`
}

// ConsentDecision represents the resource owner's decision on a pending
// authorization request.
type ConsentDecision struct {
	SessionDataKey string `json:"session_data_key"`
	UserID         string `json:"user_id"`
	Allow          bool   `json:"allow"`
}

// AuthorizeResult represents the outcome of a completed authorization,
// carrying the redirect URI the user agent must be sent to.
type AuthorizeResult struct {
	RedirectURI string `json:"redirect_uri"`
}
