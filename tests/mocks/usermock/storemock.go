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

// Package usermock provides mock implementations of the user interfaces for
// testing.
package usermock

import (
	"github.com/halyard-id/halyard/internal/user/model"
)

// MockUserStore is a mock implementation of the UserStoreInterface.
type MockUserStore struct {
	// MockCreateUser defines the behavior for the CreateUser method.
	MockCreateUser func(user model.User) error

	// MockGetUserByUsername defines the behavior for the GetUserByUsername method.
	MockGetUserByUsername func(username string) (model.User, error)

	// MockGetUserByID defines the behavior for the GetUserByID method.
	MockGetUserByID func(userID string) (model.User, error)

	// CreateUserCalls tracks the users passed to CreateUser.
	CreateUserCalls []model.User
}

// CreateUser mocks the CreateUser method of the UserStoreInterface.
func (m *MockUserStore) CreateUser(user model.User) error {
	m.CreateUserCalls = append(m.CreateUserCalls, user)
	if m.MockCreateUser != nil {
		return m.MockCreateUser(user)
	}
	return nil
}

// GetUserByUsername mocks the GetUserByUsername method of the UserStoreInterface.
func (m *MockUserStore) GetUserByUsername(username string) (model.User, error) {
	if m.MockGetUserByUsername != nil {
		return m.MockGetUserByUsername(username)
	}
	return model.User{}, nil
}

// GetUserByID mocks the GetUserByID method of the UserStoreInterface.
func (m *MockUserStore) GetUserByID(userID string) (model.User, error) {
	if m.MockGetUserByID != nil {
		return m.MockGetUserByID(userID)
	}
	return model.User{}, nil
}

// MockUserService is a mock implementation of the UserServiceInterface.
type MockUserService struct {
	// MockCreateUser defines the behavior for the CreateUser method.
	MockCreateUser func(username, password, email string) (*model.User, error)

	// MockGetUser defines the behavior for the GetUser method.
	MockGetUser func(userID string) (*model.User, error)

	// MockVerifyCredentials defines the behavior for the VerifyCredentials method.
	MockVerifyCredentials func(username, password string) (*model.User, error)
}

// CreateUser mocks the CreateUser method of the UserServiceInterface.
func (m *MockUserService) CreateUser(username, password, email string) (*model.User, error) {
	if m.MockCreateUser != nil {
		return m.MockCreateUser(username, password, email)
	}
	return &model.User{}, nil
}

// GetUser mocks the GetUser method of the UserServiceInterface.
func (m *MockUserService) GetUser(userID string) (*model.User, error) {
	if m.MockGetUser != nil {
		return m.MockGetUser(userID)
	}
	return &model.User{}, nil
}

// VerifyCredentials mocks the VerifyCredentials method of the UserServiceInterface.
func (m *MockUserService) VerifyCredentials(username, password string) (*model.User, error) {
	if m.MockVerifyCredentials != nil {
		return m.MockVerifyCredentials(username, password)
	}
	return &model.User{}, nil
}
