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

// Package resource provides bearer token protection for resource endpoints.
package resource

import (
	"context"
	"net/http"

	"github.com/halyard-id/halyard/internal/oauth/oauth2/constants"
	tokenmodel "github.com/halyard-id/halyard/internal/oauth/oauth2/token/model"
	tokenstore "github.com/halyard-id/halyard/internal/oauth/oauth2/token/store"
	"github.com/halyard-id/halyard/internal/system/config"
	"github.com/halyard-id/halyard/internal/system/utils"
)

type contextKey string

// AccessTokenContextKey is the request context key under which the verified
// access token is stored for downstream handlers.
const AccessTokenContextKey contextKey = "access_token"

// Protector verifies bearer tokens on resource requests.
type Protector struct {
	TokenStore tokenstore.TokenStoreInterface
}

// NewProtector creates a new instance of Protector.
func NewProtector() *Protector {
	return &Protector{
		TokenStore: tokenstore.NewTokenStore(),
	}
}

// VerifyBearerToken extracts and verifies the bearer token of the request.
// Verification failures are answered with 403 and a WWW-Authenticate challenge.
func (p *Protector) VerifyBearerToken(r *http.Request) (*tokenmodel.AccessToken, *bearerError) {
	tokenValue, err := utils.ExtractBearerToken(r)
	if err != nil {
		return nil, &bearerError{
			code:        constants.ErrorInvalidRequest,
			description: "Missing or malformed authorization header",
			status:      http.StatusForbidden,
		}
	}

	accessToken, err := p.TokenStore.GetAccessToken(tokenValue)
	if err != nil {
		return nil, &bearerError{
			code:        constants.ErrorInvalidToken,
			description: "The access token is invalid",
			status:      http.StatusForbidden,
		}
	}

	if !accessToken.IsValid() {
		return nil, &bearerError{
			code:        constants.ErrorInvalidToken,
			description: "The access token expired or has been revoked",
			status:      http.StatusForbidden,
		}
	}

	return &accessToken, nil
}

// Protect wraps a handler so it only runs for requests carrying a valid
// bearer token covering all required scopes. The verified token is placed in
// the request context.
func (p *Protector) Protect(next http.HandlerFunc, requiredScopes []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accessToken, bearerErr := p.VerifyBearerToken(r)
		if bearerErr != nil {
			bearerErr.write(w)
			return
		}

		if !accessToken.AllowsScopes(requiredScopes) {
			(&bearerError{
				code:        constants.ErrorInsufficientScope,
				description: "The access token does not cover the required scopes",
				status:      http.StatusForbidden,
			}).write(w)
			return
		}

		ctx := context.WithValue(r.Context(), AccessTokenContextKey, accessToken)
		next(w, r.WithContext(ctx))
	}
}

// ProtectReadWrite wraps a handler requiring the configured read scope for
// safe methods and the write scope for the rest.
func (p *Protector) ProtectReadWrite(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		oauthConfig := config.GetHalyardRuntime().Config.OAuth

		requiredScope := oauthConfig.WriteScope
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			requiredScope = oauthConfig.ReadScope
		}

		p.Protect(next, []string{requiredScope})(w, r)
	}
}

// AccessTokenFromContext returns the verified access token stored in the
// request context by Protect, if any.
func AccessTokenFromContext(ctx context.Context) (*tokenmodel.AccessToken, bool) {
	accessToken, ok := ctx.Value(AccessTokenContextKey).(*tokenmodel.AccessToken)
	return accessToken, ok
}

// bearerError is a bearer token authentication or authorization failure.
type bearerError struct {
	code        string
	description string
	status      int
}

func (e *bearerError) write(w http.ResponseWriter) {
	responseHeaders := []map[string]string{
		{"WWW-Authenticate": `Bearer error="` + e.code + `"`},
	}
	utils.WriteJSONError(w, e.code, e.description, e.status, responseHeaders)
}
