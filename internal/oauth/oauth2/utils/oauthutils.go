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

// Package utils provides utility functions for OAuth2 operations.
package utils

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/halyard-id/halyard/internal/oauth/oauth2/constants"
)

// allowedErrorCharRegex matches the character set permitted in error and
// error_description redirect parameters: %x20-21 / %x23-5B / %x5D-7E.
var allowedErrorCharRegex = regexp.MustCompile(`^[\x20-\x21\x23-\x5B\x5D-\x7E]*$`)

// GetURIWithQueryParams constructs a URI with the given parameters appended to
// the query component, preserving any query parameters already present.
func GetURIWithQueryParams(uri string, queryParams map[string]string) (string, error) {
	if err := validateErrorParams(queryParams[constants.Error],
		queryParams[constants.ErrorDescription]); err != nil {
		return "", err
	}

	parsed, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("failed to parse URI: %w", err)
	}

	query := parsed.Query()
	for key, value := range queryParams {
		query.Set(key, value)
	}
	parsed.RawQuery = query.Encode()

	return parsed.String(), nil
}

// GetURIWithFragmentParams constructs a URI with the given parameters encoded
// into the fragment component, as required for implicit grant responses.
func GetURIWithFragmentParams(uri string, fragmentParams map[string]string) (string, error) {
	if err := validateErrorParams(fragmentParams[constants.Error],
		fragmentParams[constants.ErrorDescription]); err != nil {
		return "", err
	}

	parsed, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("failed to parse URI: %w", err)
	}

	fragment := url.Values{}
	for key, value := range fragmentParams {
		fragment.Set(key, value)
	}
	parsed.Fragment = ""
	parsed.RawFragment = ""

	return parsed.String() + "#" + fragment.Encode(), nil
}

// ParseScopes splits a space delimited scope string into a slice, dropping
// empty entries.
func ParseScopes(scope string) []string {
	fields := strings.Fields(scope)
	if len(fields) == 0 {
		return []string{}
	}
	return fields
}

// JoinScopes joins a scope slice into a space delimited string.
func JoinScopes(scopes []string) string {
	return strings.Join(scopes, " ")
}

// validateErrorParams validates the error code and error description parameters.
func validateErrorParams(errCode, desc string) error {
	if errCode != "" && !allowedErrorCharRegex.MatchString(errCode) {
		return fmt.Errorf("invalid error code: %s", errCode)
	}
	if desc != "" && !allowedErrorCharRegex.MatchString(desc) {
		return fmt.Errorf("invalid error description: %s", desc)
	}
	return nil
}
