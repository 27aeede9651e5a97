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

// Package model defines the data structures for issued OAuth2 tokens.
package model

import (
	"slices"
	"strings"
	"time"
)

// AccessToken represents an issued opaque access token.
type AccessToken struct {
	TokenID     string
	Token       string
	ClientID    string
	UserID      string
	Scopes      string
	Revoked     bool
	TimeCreated time.Time
	ExpiryTime  time.Time
}

// IsExpired reports whether the access token has passed its expiry time.
func (t *AccessToken) IsExpired() bool {
	return time.Now().After(t.ExpiryTime)
}

// IsValid reports whether the access token is neither revoked nor expired.
func (t *AccessToken) IsValid() bool {
	return !t.Revoked && !t.IsExpired()
}

// AllowsScopes reports whether every required scope is covered by the token.
// An empty requirement is always satisfied.
func (t *AccessToken) AllowsScopes(required []string) bool {
	if len(required) == 0 {
		return true
	}
	granted := strings.Fields(t.Scopes)
	for _, scope := range required {
		if !slices.Contains(granted, scope) {
			return false
		}
	}
	return true
}

// RefreshToken represents an issued opaque refresh token. It references the
// access token it was issued alongside so that rotation can revoke the pair.
type RefreshToken struct {
	TokenID       string
	Token         string
	ClientID      string
	UserID        string
	Scopes        string
	AccessTokenID string
	TimeCreated   time.Time
}
