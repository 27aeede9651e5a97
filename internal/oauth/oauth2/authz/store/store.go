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

// Package store provides functionality for handling authorization code persistence and retrieval.
package store

import (
	"fmt"
	"time"

	"github.com/halyard-id/halyard/internal/oauth/oauth2/authz/constants"
	"github.com/halyard-id/halyard/internal/oauth/oauth2/authz/model"
	"github.com/halyard-id/halyard/internal/system/database/provider"
	"github.com/halyard-id/halyard/internal/system/log"
)

const loggerComponentName = "AuthorizationCodeStore"

// AuthorizationCodeStoreInterface defines the interface for managing authorization codes.
type AuthorizationCodeStoreInterface interface {
	InsertAuthorizationCode(authzCode model.AuthorizationCode) error
	GetAuthorizationCode(clientID, authCode string) (model.AuthorizationCode, error)
	ConsumeAuthorizationCode(codeID string) error
	DeleteAuthorizationCodesForClient(clientID string) error
}

// AuthorizationCodeStore implements the AuthorizationCodeStoreInterface for managing authorization codes.
type AuthorizationCodeStore struct {
	DBProvider provider.DBProviderInterface
}

// NewAuthorizationCodeStore creates a new instance of AuthorizationCodeStore.
func NewAuthorizationCodeStore() AuthorizationCodeStoreInterface {
	return &AuthorizationCodeStore{
		DBProvider: provider.NewDBProvider(),
	}
}

// InsertAuthorizationCode inserts a new authorization code into the database.
func (acs *AuthorizationCodeStore) InsertAuthorizationCode(authzCode model.AuthorizationCode) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := acs.DBProvider.GetDBClient("runtime")
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return fmt.Errorf("failed to get database client: %w", err)
	}

	_, err = dbClient.Execute(constants.QueryInsertAuthorizationCode, authzCode.CodeID, authzCode.Code,
		authzCode.ClientID, authzCode.RedirectURI, authzCode.AuthorizedUserID, authzCode.Scopes,
		authzCode.State, authzCode.TimeCreated, authzCode.ExpiryTime)
	if err != nil {
		logger.Error("Failed to insert authorization code", log.Error(err))
		return fmt.Errorf("failed to insert authorization code: %w", err)
	}

	return nil
}

// GetAuthorizationCode retrieves an authorization code by client id and authorization code.
func (acs *AuthorizationCodeStore) GetAuthorizationCode(clientID, authCode string) (
	model.AuthorizationCode, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := acs.DBProvider.GetDBClient("runtime")
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return model.AuthorizationCode{}, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(constants.QueryGetAuthorizationCode, clientID, authCode)
	if err != nil {
		return model.AuthorizationCode{}, fmt.Errorf("error while retrieving authorization code: %w", err)
	}
	if len(results) == 0 {
		return model.AuthorizationCode{}, constants.ErrAuthorizationCodeNotFound
	}
	row := results[0]

	codeID := stringField(row, "code_id")
	if codeID == "" {
		return model.AuthorizationCode{}, constants.ErrAuthorizationCodeNotFound
	}

	timeCreated, err := parseTimeField(row["time_created"], "time_created")
	if err != nil {
		logger.Error("Failed to parse time field", log.Error(err))
		return model.AuthorizationCode{}, err
	}

	expiryTime, err := parseTimeField(row["expiry_time"], "expiry_time")
	if err != nil {
		logger.Error("Failed to parse time field", log.Error(err))
		return model.AuthorizationCode{}, err
	}

	return model.AuthorizationCode{
		CodeID:           codeID,
		Code:             stringField(row, "authorization_code"),
		ClientID:         clientID,
		RedirectURI:      stringField(row, "redirect_uri"),
		AuthorizedUserID: stringField(row, "authz_user"),
		Scopes:           stringField(row, "scopes"),
		State:            stringField(row, "state"),
		TimeCreated:      timeCreated,
		ExpiryTime:       expiryTime,
	}, nil
}

// ConsumeAuthorizationCode deletes the authorization code identified by the
// given code id. Exactly one row must be affected; anything else means the
// code was already redeemed by a concurrent request.
func (acs *AuthorizationCodeStore) ConsumeAuthorizationCode(codeID string) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := acs.DBProvider.GetDBClient("runtime")
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return fmt.Errorf("failed to get database client: %w", err)
	}

	rowsAffected, err := dbClient.Execute(constants.QueryDeleteAuthorizationCode, codeID)
	if err != nil {
		logger.Error("Failed to delete authorization code", log.Error(err))
		return fmt.Errorf("failed to delete authorization code: %w", err)
	}
	if rowsAffected != 1 {
		return constants.ErrAuthorizationCodeConsumed
	}

	return nil
}

// DeleteAuthorizationCodesForClient deletes all authorization codes issued to a client.
func (acs *AuthorizationCodeStore) DeleteAuthorizationCodesForClient(clientID string) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := acs.DBProvider.GetDBClient("runtime")
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return fmt.Errorf("failed to get database client: %w", err)
	}

	if _, err := dbClient.Execute(constants.QueryDeleteAuthorizationCodesForClient, clientID); err != nil {
		logger.Error("Failed to delete authorization codes", log.Error(err))
		return fmt.Errorf("failed to delete authorization codes: %w", err)
	}

	return nil
}

// parseTimeField parses a timestamp column that may arrive as time.Time or as
// a string depending on the database driver.
func parseTimeField(value interface{}, fieldName string) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case string:
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			parsed, err = time.Parse("2006-01-02 15:04:05.999999999-07:00", v)
		}
		if err != nil {
			parsed, err = time.Parse("2006-01-02 15:04:05", v)
		}
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
		}
		return parsed, nil
	default:
		return time.Time{}, fmt.Errorf("unexpected type for %s", fieldName)
	}
}

// stringField reads a string column that may be absent, NULL, or delivered
// as []byte depending on the database driver.
func stringField(row map[string]interface{}, column string) string {
	switch value := row[column].(type) {
	case string:
		return value
	case []byte:
		return string(value)
	default:
		return ""
	}
}
