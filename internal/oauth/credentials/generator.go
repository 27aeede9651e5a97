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

// Package credentials provides generators for OAuth client credentials and
// protocol artifacts such as authorization codes and tokens.
package credentials

import (
	"crypto/rand"
	"math/big"

	"github.com/halyard-id/halyard/internal/system/config"
)

// clientIDCharset excludes ":" so that generated client identifiers are always
// safe to transmit in an HTTP Basic authorization header.
const clientIDCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// clientSecretCharset matches the character set used for client identifiers.
const clientSecretCharset = clientIDCharset

const (
	clientIDLength     = 40
	clientSecretLength = 128
)

// GenerateClientID generates a random client identifier.
func GenerateClientID() (string, error) {
	return randomString(clientIDCharset, clientIDLength)
}

// GenerateClientSecret generates a random client secret.
func GenerateClientSecret() (string, error) {
	return randomString(clientSecretCharset, clientSecretLength)
}

// GenerateAuthorizationCode generates a random authorization code of the
// configured token length.
func GenerateAuthorizationCode() (string, error) {
	return randomString(clientIDCharset, tokenLength())
}

// GenerateToken generates a random opaque token of the configured token length.
func GenerateToken() (string, error) {
	return randomString(clientIDCharset, tokenLength())
}

// tokenLength returns the configured token length.
func tokenLength() int {
	return config.GetHalyardRuntime().Config.OAuth.TokenLength
}

// randomString builds a string of the given length from the charset using a
// cryptographically secure source of randomness.
func randomString(charset string, length int) (string, error) {
	max := big.NewInt(int64(len(charset)))
	buf := make([]byte, length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = charset[n.Int64()]
	}
	return string(buf), nil
}
