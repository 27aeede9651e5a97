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

package applicationmock

import (
	"github.com/halyard-id/halyard/internal/application/service"
)

// MockApplicationProvider is a mock implementation of the ApplicationProviderInterface.
type MockApplicationProvider struct {
	// MockGetApplicationService defines the behavior for the GetApplicationService method.
	MockGetApplicationService func() service.ApplicationServiceInterface
}

// GetApplicationService mocks the GetApplicationService method of the ApplicationProviderInterface.
func (m *MockApplicationProvider) GetApplicationService() service.ApplicationServiceInterface {
	if m.MockGetApplicationService != nil {
		return m.MockGetApplicationService()
	}
	return &MockApplicationService{}
}
