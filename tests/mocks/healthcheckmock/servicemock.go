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

// Package healthcheckmock provides mock implementations of the health check interfaces.
package healthcheckmock

import (
	"github.com/halyard-id/halyard/internal/system/healthcheck/model"
)

// MockHealthCheckService is a mock implementation of the HealthCheckServiceInterface.
type MockHealthCheckService struct {
	// MockCheckReadiness defines the behavior for the CheckReadiness method.
	MockCheckReadiness func() model.ServerStatus
}

// CheckReadiness mocks the CheckReadiness method of the HealthCheckServiceInterface.
func (m *MockHealthCheckService) CheckReadiness() model.ServerStatus {
	if m.MockCheckReadiness != nil {
		return m.MockCheckReadiness()
	}
	return model.ServerStatus{Status: model.StatusUp}
}
