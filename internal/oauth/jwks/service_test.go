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

package jwks

import (
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/halyard-id/halyard/tests/mocks/signingmock"
)

type JWKSServiceTestSuite struct {
	suite.Suite
	mockKeyService *signingmock.MockKeyService
	service        JWKSServiceInterface
	publicKey      *rsa.PublicKey
}

func TestJWKSServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JWKSServiceTestSuite))
}

func (s *JWKSServiceTestSuite) SetupSuite() {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	s.Require().NoError(err)
	s.publicKey = &privateKey.PublicKey
}

func (s *JWKSServiceTestSuite) SetupTest() {
	s.mockKeyService = &signingmock.MockKeyService{
		MockPublicKey: func() (*rsa.PublicKey, error) {
			return s.publicKey, nil
		},
		MockKeyID: func() (string, error) {
			return "key-001", nil
		},
	}
	s.service = &JWKSService{KeyService: s.mockKeyService}
}

func (s *JWKSServiceTestSuite) TestGetJWKS() {
	keySet, svcErr := s.service.GetJWKS()

	s.Require().Nil(svcErr)
	s.Require().Len(keySet.Keys, 1)

	key := keySet.Keys[0]
	s.Equal("key-001", key.KeyID)
	s.Equal("sig", key.Use)
	s.Equal("RS256", key.Algorithm)
	s.Equal(s.publicKey, key.Key)
	s.True(key.Valid())
}

func (s *JWKSServiceTestSuite) TestGetJWKSKeyUnavailable() {
	s.mockKeyService.MockPublicKey = func() (*rsa.PublicKey, error) {
		return nil, errors.New("signing key not initialized")
	}

	keySet, svcErr := s.service.GetJWKS()

	s.Nil(keySet)
	s.Require().NotNil(svcErr)
	s.Equal("JWKS-5001", svcErr.Code)
}

func (s *JWKSServiceTestSuite) TestGetJWKSKeyIDUnavailable() {
	s.mockKeyService.MockKeyID = func() (string, error) {
		return "", errors.New("signing key not initialized")
	}

	keySet, svcErr := s.service.GetJWKS()

	s.Nil(keySet)
	s.Require().NotNil(svcErr)
	s.Equal("JWKS-5001", svcErr.Code)
}
