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

package model

// AuthorizationError represents a failed authorization request.
//
// Fatal errors are those where the client identity or the redirect target
// could not be established, so the error must never be delivered via
// redirection. Non-fatal errors carry the validated redirect URI and are
// delivered to the client as redirect parameters.
type AuthorizationError struct {
	Code        string
	Description string
	Fatal       bool
	RedirectURI string
	State       string
}

// Error returns the error code and description as a single string.
func (e *AuthorizationError) Error() string {
	if e.Description == "" {
		return e.Code
	}
	return e.Code + ": " + e.Description
}

// NewFatalAuthorizationError creates an authorization error that must be shown
// to the resource owner instead of being redirected to the client.
func NewFatalAuthorizationError(code, description string) *AuthorizationError {
	return &AuthorizationError{
		Code:        code,
		Description: description,
		Fatal:       true,
	}
}

// NewRedirectAuthorizationError creates an authorization error that is safe to
// deliver to the client via the validated redirect URI.
func NewRedirectAuthorizationError(code, description, redirectURI, state string) *AuthorizationError {
	return &AuthorizationError{
		Code:        code,
		Description: description,
		RedirectURI: redirectURI,
		State:       state,
	}
}
