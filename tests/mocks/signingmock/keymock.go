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

// Package signingmock provides a mock implementation of the signing key service
// for testing.
package signingmock

import "crypto/rsa"

// MockKeyService is a mock implementation of the KeyServiceInterface.
type MockKeyService struct {
	// MockInit defines the behavior for the Init method.
	MockInit func() error

	// MockPublicKey defines the behavior for the PublicKey method.
	MockPublicKey func() (*rsa.PublicKey, error)

	// MockKeyID defines the behavior for the KeyID method.
	MockKeyID func() (string, error)
}

// Init mocks the Init method.
func (m *MockKeyService) Init() error {
	if m.MockInit != nil {
		return m.MockInit()
	}
	return nil
}

// PublicKey mocks the PublicKey method.
func (m *MockKeyService) PublicKey() (*rsa.PublicKey, error) {
	if m.MockPublicKey != nil {
		return m.MockPublicKey()
	}
	return nil, nil
}

// KeyID mocks the KeyID method.
func (m *MockKeyService) KeyID() (string, error) {
	if m.MockKeyID != nil {
		return m.MockKeyID()
	}
	return "", nil
}
