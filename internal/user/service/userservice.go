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

// Package service provides user management functionality.
package service

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/halyard-id/halyard/internal/system/log"
	"github.com/halyard-id/halyard/internal/system/utils"
	"github.com/halyard-id/halyard/internal/user/model"
	"github.com/halyard-id/halyard/internal/user/store"
)

const loggerComponentName = "UserService"

// ErrInvalidCredentials is returned when user credential verification fails.
var ErrInvalidCredentials = errors.New("invalid username or password")

// UserServiceInterface defines the interface for the user service.
type UserServiceInterface interface {
	CreateUser(username, password, email string) (*model.User, error)
	GetUser(userID string) (*model.User, error)
	VerifyCredentials(username, password string) (*model.User, error)
}

// UserService is the default implementation of the UserServiceInterface.
type UserService struct {
	UserStore store.UserStoreInterface
}

// NewUserService creates a new instance of UserService.
func NewUserService() UserServiceInterface {
	return &UserService{
		UserStore: store.NewUserStore(),
	}
}

// CreateUser creates a new user with a bcrypt hash of the given password.
func (us *UserService) CreateUser(username, password, email string) (*model.User, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if username == "" || password == "" {
		return nil, errors.New("username and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Failed to hash password", log.Error(err))
		return nil, errors.New("failed to hash password")
	}

	user := model.User{
		ID:           utils.GenerateUUID(),
		Username:     username,
		PasswordHash: string(hash),
		Email:        email,
	}
	if err := us.UserStore.CreateUser(user); err != nil {
		logger.Error("Failed to create user", log.Error(err))
		return nil, err
	}

	return &user, nil
}

// GetUser retrieves a user by their id.
func (us *UserService) GetUser(userID string) (*model.User, error) {
	user, err := us.UserStore.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// VerifyCredentials verifies a username and password pair against the stored
// password hash. A comparison failure and an unknown username produce the
// same error.
func (us *UserService) VerifyCredentials(username, password string) (*model.User, error) {
	user, err := us.UserStore.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}
