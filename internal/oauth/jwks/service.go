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

// Package jwks provides the implementation for retrieving the JSON Web Key Set.
package jwks

import (
	jose "github.com/go-jose/go-jose/v4"

	"github.com/halyard-id/halyard/internal/oauth/jwks/constants"
	"github.com/halyard-id/halyard/internal/system/error/serviceerror"
	"github.com/halyard-id/halyard/internal/system/signing"
)

// JWKSServiceInterface defines the interface for the JWKS service.
type JWKSServiceInterface interface {
	GetJWKS() (*jose.JSONWebKeySet, *serviceerror.ServiceError)
}

// JWKSService implements the JWKSServiceInterface.
type JWKSService struct {
	KeyService signing.KeyServiceInterface
}

// NewJWKSService creates a new instance of JWKSService.
func NewJWKSService() JWKSServiceInterface {
	return &JWKSService{
		KeyService: signing.GetKeyService(),
	}
}

// GetJWKS builds the JSON Web Key Set from the server signing key.
func (s *JWKSService) GetJWKS() (*jose.JSONWebKeySet, *serviceerror.ServiceError) {
	publicKey, err := s.KeyService.PublicKey()
	if err != nil {
		svcErr := *constants.ErrorSigningKeyUnavailable
		svcErr.ErrorDescription = err.Error()
		return nil, &svcErr
	}

	keyID, err := s.KeyService.KeyID()
	if err != nil {
		svcErr := *constants.ErrorSigningKeyUnavailable
		svcErr.ErrorDescription = err.Error()
		return nil, &svcErr
	}

	return &jose.JSONWebKeySet{
		Keys: []jose.JSONWebKey{
			{
				Key:       publicKey,
				KeyID:     keyID,
				Use:       "sig",
				Algorithm: string(jose.RS256),
			},
		},
	}, nil
}
