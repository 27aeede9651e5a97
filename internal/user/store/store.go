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

// Package store provides functionality for handling user data persistence.
package store

import (
	"errors"
	"fmt"

	dbmodel "github.com/halyard-id/halyard/internal/system/database/model"
	"github.com/halyard-id/halyard/internal/system/database/provider"
	"github.com/halyard-id/halyard/internal/system/log"
	"github.com/halyard-id/halyard/internal/user/model"
)

const loggerComponentName = "UserStore"

// ErrUserNotFound is returned when a user is not found in the database.
var ErrUserNotFound = errors.New("user not found")

// UserStoreInterface defines the interface for managing user persistence.
type UserStoreInterface interface {
	CreateUser(user model.User) error
	GetUserByUsername(username string) (model.User, error)
	GetUserByID(userID string) (model.User, error)
}

// UserStore implements the UserStoreInterface for managing users.
type UserStore struct {
	DBProvider provider.DBProviderInterface
}

// NewUserStore creates a new instance of UserStore.
func NewUserStore() UserStoreInterface {
	return &UserStore{
		DBProvider: provider.NewDBProvider(),
	}
}

// CreateUser inserts a new user into the database.
func (us *UserStore) CreateUser(user model.User) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := us.DBProvider.GetDBClient("identity")
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return fmt.Errorf("failed to get database client: %w", err)
	}

	_, err = dbClient.Execute(QueryCreateUser, user.ID, user.Username, user.PasswordHash, user.Email)
	if err != nil {
		logger.Error("Failed to insert user", log.Error(err))
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// GetUserByUsername retrieves a user by their username.
func (us *UserStore) GetUserByUsername(username string) (model.User, error) {
	return us.getUser(QueryGetUserByUsername, username)
}

// GetUserByID retrieves a user by their user id.
func (us *UserStore) GetUserByID(userID string) (model.User, error) {
	return us.getUser(QueryGetUserByID, userID)
}

// getUser retrieves a single user with the given query and argument.
func (us *UserStore) getUser(query dbmodel.DBQuery, arg string) (model.User, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := us.DBProvider.GetDBClient("identity")
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return model.User{}, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(query, arg)
	if err != nil {
		return model.User{}, fmt.Errorf("error while retrieving user: %w", err)
	}
	if len(results) == 0 {
		return model.User{}, ErrUserNotFound
	}

	return buildUserFromResultRow(results[0])
}

// buildUserFromResultRow constructs a User object from a database result row.
func buildUserFromResultRow(row map[string]interface{}) (model.User, error) {
	userID, ok := row["user_id"].(string)
	if !ok {
		return model.User{}, fmt.Errorf("failed to parse user_id as string")
	}

	username, ok := row["username"].(string)
	if !ok {
		return model.User{}, fmt.Errorf("failed to parse username as string")
	}

	passwordHash, ok := row["password_hash"].(string)
	if !ok {
		return model.User{}, fmt.Errorf("failed to parse password_hash as string")
	}

	email := ""
	if rawEmail, ok := row["email"].(string); ok {
		email = rawEmail
	}

	return model.User{
		ID:           userID,
		Username:     username,
		PasswordHash: passwordHash,
		Email:        email,
	}, nil
}
