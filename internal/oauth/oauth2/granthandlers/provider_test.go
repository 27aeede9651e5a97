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

package granthandlers

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/halyard-id/halyard/internal/oauth/oauth2/constants"
)

type GrantHandlerProviderTestSuite struct {
	suite.Suite
	provider GrantHandlerProviderInterface
}

func TestGrantHandlerProviderTestSuite(t *testing.T) {
	suite.Run(t, new(GrantHandlerProviderTestSuite))
}

func (s *GrantHandlerProviderTestSuite) SetupTest() {
	s.provider = NewGrantHandlerProvider()
}

func (s *GrantHandlerProviderTestSuite) TestGetGrantHandlerSupportedTypes() {
	for _, grantType := range []string{
		constants.GrantTypeAuthorizationCode,
		constants.GrantTypeClientCredential,
		constants.GrantTypePassword,
		constants.GrantTypeRefreshToken,
	} {
		handler, ok := s.provider.GetGrantHandler(grantType)
		s.True(ok, "expected a handler for grant type %s", grantType)
		s.NotNil(handler)
	}
}

func (s *GrantHandlerProviderTestSuite) TestGetGrantHandlerUnsupportedType() {
	handler, ok := s.provider.GetGrantHandler("device_code")
	s.False(ok)
	s.Nil(handler)
}
