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

// Package applicationmock provides mock implementations of the application
// interfaces for testing.
package applicationmock

import (
	"github.com/halyard-id/halyard/internal/application/model"
)

// MockApplicationStore is a mock implementation of the ApplicationStoreInterface.
type MockApplicationStore struct {
	// MockCreateApplication defines the behavior for the CreateApplication method.
	MockCreateApplication func(app model.Application) error

	// MockGetApplicationByClientID defines the behavior for the GetApplicationByClientID method.
	MockGetApplicationByClientID func(clientID string) (model.Application, error)

	// MockGetApplicationByAppID defines the behavior for the GetApplicationByAppID method.
	MockGetApplicationByAppID func(appID string) (model.Application, error)

	// MockGetApplicationList defines the behavior for the GetApplicationList method.
	MockGetApplicationList func() ([]model.Application, error)

	// MockDeleteApplication defines the behavior for the DeleteApplication method.
	MockDeleteApplication func(appID string) error

	// CreateApplicationCalls tracks the applications passed to CreateApplication.
	CreateApplicationCalls []model.Application

	// DeleteApplicationCalls tracks the app ids passed to DeleteApplication.
	DeleteApplicationCalls []string
}

// CreateApplication mocks the CreateApplication method of the ApplicationStoreInterface.
func (m *MockApplicationStore) CreateApplication(app model.Application) error {
	m.CreateApplicationCalls = append(m.CreateApplicationCalls, app)
	if m.MockCreateApplication != nil {
		return m.MockCreateApplication(app)
	}
	return nil
}

// GetApplicationByClientID mocks the GetApplicationByClientID method of the ApplicationStoreInterface.
func (m *MockApplicationStore) GetApplicationByClientID(clientID string) (model.Application, error) {
	if m.MockGetApplicationByClientID != nil {
		return m.MockGetApplicationByClientID(clientID)
	}
	return model.Application{}, nil
}

// GetApplicationByAppID mocks the GetApplicationByAppID method of the ApplicationStoreInterface.
func (m *MockApplicationStore) GetApplicationByAppID(appID string) (model.Application, error) {
	if m.MockGetApplicationByAppID != nil {
		return m.MockGetApplicationByAppID(appID)
	}
	return model.Application{}, nil
}

// GetApplicationList mocks the GetApplicationList method of the ApplicationStoreInterface.
func (m *MockApplicationStore) GetApplicationList() ([]model.Application, error) {
	if m.MockGetApplicationList != nil {
		return m.MockGetApplicationList()
	}
	return []model.Application{}, nil
}

// DeleteApplication mocks the DeleteApplication method of the ApplicationStoreInterface.
func (m *MockApplicationStore) DeleteApplication(appID string) error {
	m.DeleteApplicationCalls = append(m.DeleteApplicationCalls, appID)
	if m.MockDeleteApplication != nil {
		return m.MockDeleteApplication(appID)
	}
	return nil
}

// MockApplicationService is a mock implementation of the ApplicationServiceInterface.
type MockApplicationService struct {
	// MockCreateApplication defines the behavior for the CreateApplication method.
	MockCreateApplication func(app *model.Application) (*model.Application, error)

	// MockGetApplication defines the behavior for the GetApplication method.
	MockGetApplication func(appID string) (*model.Application, error)

	// MockGetOAuthApplication defines the behavior for the GetOAuthApplication method.
	MockGetOAuthApplication func(clientID string) (*model.Application, error)

	// MockGetApplicationList defines the behavior for the GetApplicationList method.
	MockGetApplicationList func() ([]model.Application, error)

	// MockDeleteApplication defines the behavior for the DeleteApplication method.
	MockDeleteApplication func(appID string) error
}

// CreateApplication mocks the CreateApplication method of the ApplicationServiceInterface.
func (m *MockApplicationService) CreateApplication(app *model.Application) (*model.Application, error) {
	if m.MockCreateApplication != nil {
		return m.MockCreateApplication(app)
	}
	return app, nil
}

// GetApplication mocks the GetApplication method of the ApplicationServiceInterface.
func (m *MockApplicationService) GetApplication(appID string) (*model.Application, error) {
	if m.MockGetApplication != nil {
		return m.MockGetApplication(appID)
	}
	return &model.Application{}, nil
}

// GetOAuthApplication mocks the GetOAuthApplication method of the ApplicationServiceInterface.
func (m *MockApplicationService) GetOAuthApplication(clientID string) (*model.Application, error) {
	if m.MockGetOAuthApplication != nil {
		return m.MockGetOAuthApplication(clientID)
	}
	return &model.Application{}, nil
}

// GetApplicationList mocks the GetApplicationList method of the ApplicationServiceInterface.
func (m *MockApplicationService) GetApplicationList() ([]model.Application, error) {
	if m.MockGetApplicationList != nil {
		return m.MockGetApplicationList()
	}
	return []model.Application{}, nil
}

// DeleteApplication mocks the DeleteApplication method of the ApplicationServiceInterface.
func (m *MockApplicationService) DeleteApplication(appID string) error {
	if m.MockDeleteApplication != nil {
		return m.MockDeleteApplication(appID)
	}
	return nil
}
