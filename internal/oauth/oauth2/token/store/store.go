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

// Package store provides functionality for handling token persistence and retrieval.
package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/halyard-id/halyard/internal/oauth/oauth2/token/constants"
	"github.com/halyard-id/halyard/internal/oauth/oauth2/token/model"
	"github.com/halyard-id/halyard/internal/system/database/provider"
	"github.com/halyard-id/halyard/internal/system/log"
)

const loggerComponentName = "TokenStore"

// TokenStoreInterface defines the interface for managing issued tokens.
type TokenStoreInterface interface {
	InsertAccessToken(accessToken model.AccessToken) error
	GetAccessToken(token string) (model.AccessToken, error)
	RevokeAccessToken(tokenID string) error
	InsertRefreshToken(refreshToken model.RefreshToken) error
	GetRefreshToken(clientID, token string) (model.RefreshToken, error)
	DeleteRefreshToken(tokenID string) error
	InsertTokenPair(accessToken model.AccessToken, refreshToken model.RefreshToken) error
	DeleteTokensForClient(clientID string) error
}

// TokenStore implements the TokenStoreInterface for managing issued tokens.
type TokenStore struct {
	DBProvider provider.DBProviderInterface
}

// NewTokenStore creates a new instance of TokenStore.
func NewTokenStore() TokenStoreInterface {
	return &TokenStore{
		DBProvider: provider.NewDBProvider(),
	}
}

// InsertAccessToken inserts a new access token into the database.
func (ts *TokenStore) InsertAccessToken(accessToken model.AccessToken) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := ts.DBProvider.GetDBClient("runtime")
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return fmt.Errorf("failed to get database client: %w", err)
	}

	_, err = dbClient.Execute(constants.QueryInsertAccessToken, accessToken.TokenID, accessToken.Token,
		accessToken.ClientID, accessToken.UserID, accessToken.Scopes, accessToken.Revoked,
		accessToken.TimeCreated, accessToken.ExpiryTime)
	if err != nil {
		logger.Error("Failed to insert access token", log.Error(err))
		return fmt.Errorf("failed to insert access token: %w", err)
	}

	return nil
}

// GetAccessToken retrieves an access token by its token value.
func (ts *TokenStore) GetAccessToken(token string) (model.AccessToken, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := ts.DBProvider.GetDBClient("runtime")
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return model.AccessToken{}, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(constants.QueryGetAccessToken, token)
	if err != nil {
		return model.AccessToken{}, fmt.Errorf("error while retrieving access token: %w", err)
	}
	if len(results) == 0 {
		return model.AccessToken{}, constants.ErrTokenNotFound
	}
	row := results[0]

	timeCreated, err := parseTimeField(row["time_created"], "time_created")
	if err != nil {
		logger.Error("Failed to parse time field", log.Error(err))
		return model.AccessToken{}, err
	}

	expiryTime, err := parseTimeField(row["expiry_time"], "expiry_time")
	if err != nil {
		logger.Error("Failed to parse time field", log.Error(err))
		return model.AccessToken{}, err
	}

	return model.AccessToken{
		TokenID:     stringField(row, "token_id"),
		Token:       token,
		ClientID:    stringField(row, "client_id"),
		UserID:      stringField(row, "authz_user"),
		Scopes:      stringField(row, "scopes"),
		Revoked:     boolField(row, "revoked"),
		TimeCreated: timeCreated,
		ExpiryTime:  expiryTime,
	}, nil
}

// RevokeAccessToken marks an access token as revoked.
func (ts *TokenStore) RevokeAccessToken(tokenID string) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := ts.DBProvider.GetDBClient("runtime")
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return fmt.Errorf("failed to get database client: %w", err)
	}

	if _, err := dbClient.Execute(constants.QueryRevokeAccessToken, tokenID); err != nil {
		logger.Error("Failed to revoke access token", log.Error(err))
		return fmt.Errorf("failed to revoke access token: %w", err)
	}

	return nil
}

// InsertRefreshToken inserts a new refresh token into the database.
func (ts *TokenStore) InsertRefreshToken(refreshToken model.RefreshToken) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := ts.DBProvider.GetDBClient("runtime")
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return fmt.Errorf("failed to get database client: %w", err)
	}

	_, err = dbClient.Execute(constants.QueryInsertRefreshToken, refreshToken.TokenID, refreshToken.Token,
		refreshToken.ClientID, refreshToken.UserID, refreshToken.Scopes, refreshToken.AccessTokenID,
		refreshToken.TimeCreated)
	if err != nil {
		logger.Error("Failed to insert refresh token", log.Error(err))
		return fmt.Errorf("failed to insert refresh token: %w", err)
	}

	return nil
}

// GetRefreshToken retrieves a refresh token by client id and token value.
func (ts *TokenStore) GetRefreshToken(clientID, token string) (model.RefreshToken, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := ts.DBProvider.GetDBClient("runtime")
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return model.RefreshToken{}, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(constants.QueryGetRefreshToken, clientID, token)
	if err != nil {
		return model.RefreshToken{}, fmt.Errorf("error while retrieving refresh token: %w", err)
	}
	if len(results) == 0 {
		return model.RefreshToken{}, constants.ErrTokenNotFound
	}
	row := results[0]

	timeCreated, err := parseTimeField(row["time_created"], "time_created")
	if err != nil {
		logger.Error("Failed to parse time field", log.Error(err))
		return model.RefreshToken{}, err
	}

	return model.RefreshToken{
		TokenID:       stringField(row, "token_id"),
		Token:         token,
		ClientID:      clientID,
		UserID:        stringField(row, "authz_user"),
		Scopes:        stringField(row, "scopes"),
		AccessTokenID: stringField(row, "access_token_id"),
		TimeCreated:   timeCreated,
	}, nil
}

// DeleteRefreshToken deletes the refresh token identified by the given token
// id. Exactly one row must be affected; anything else means the token was
// already rotated by a concurrent request.
func (ts *TokenStore) DeleteRefreshToken(tokenID string) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := ts.DBProvider.GetDBClient("runtime")
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return fmt.Errorf("failed to get database client: %w", err)
	}

	rowsAffected, err := dbClient.Execute(constants.QueryDeleteRefreshToken, tokenID)
	if err != nil {
		logger.Error("Failed to delete refresh token", log.Error(err))
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	if rowsAffected != 1 {
		return constants.ErrRefreshTokenRotated
	}

	return nil
}

// InsertTokenPair inserts an access token and its refresh token in a single
// transaction so that a partial pair is never persisted.
func (ts *TokenStore) InsertTokenPair(accessToken model.AccessToken, refreshToken model.RefreshToken) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := ts.DBProvider.GetDBClient("runtime")
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return fmt.Errorf("failed to get database client: %w", err)
	}

	tx, err := dbClient.BeginTx()
	if err != nil {
		logger.Error("Failed to begin transaction", log.Error(err))
		return errors.New("failed to begin transaction: " + err.Error())
	}

	_, err = tx.Exec(constants.QueryInsertAccessToken.Query, accessToken.TokenID, accessToken.Token,
		accessToken.ClientID, accessToken.UserID, accessToken.Scopes, accessToken.Revoked,
		accessToken.TimeCreated, accessToken.ExpiryTime)
	if err != nil {
		logger.Error("Failed to insert access token", log.Error(err))
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			logger.Error("Failed to rollback transaction", log.Error(rollbackErr))
			err = errors.Join(err, errors.New("failed to rollback transaction: "+rollbackErr.Error()))
		}
		return errors.New("failed to insert access token: " + err.Error())
	}

	_, err = tx.Exec(constants.QueryInsertRefreshToken.Query, refreshToken.TokenID, refreshToken.Token,
		refreshToken.ClientID, refreshToken.UserID, refreshToken.Scopes, refreshToken.AccessTokenID,
		refreshToken.TimeCreated)
	if err != nil {
		logger.Error("Failed to insert refresh token", log.Error(err))
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			logger.Error("Failed to rollback transaction", log.Error(rollbackErr))
			err = errors.Join(err, errors.New("failed to rollback transaction: "+rollbackErr.Error()))
		}
		return errors.New("failed to insert refresh token: " + err.Error())
	}

	if err = tx.Commit(); err != nil {
		logger.Error("Failed to commit transaction", log.Error(err))
		return errors.New("failed to commit transaction: " + err.Error())
	}

	return nil
}

// DeleteTokensForClient deletes all access and refresh tokens issued to a client.
func (ts *TokenStore) DeleteTokensForClient(clientID string) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := ts.DBProvider.GetDBClient("runtime")
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return fmt.Errorf("failed to get database client: %w", err)
	}

	if _, err := dbClient.Execute(constants.QueryDeleteRefreshTokensForClient, clientID); err != nil {
		logger.Error("Failed to delete refresh tokens", log.Error(err))
		return fmt.Errorf("failed to delete refresh tokens: %w", err)
	}
	if _, err := dbClient.Execute(constants.QueryDeleteAccessTokensForClient, clientID); err != nil {
		logger.Error("Failed to delete access tokens", log.Error(err))
		return fmt.Errorf("failed to delete access tokens: %w", err)
	}

	return nil
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

// boolField reads a boolean column that may arrive as bool or as an integer
// depending on the database driver.
func boolField(row map[string]interface{}, column string) bool {
	switch v := row[column].(type) {
	case bool:
		return v
	case int64:
		return v != 0
	default:
		return false
	}
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
