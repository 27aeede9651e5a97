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

// Package store provides functionality for handling application data persistence.
package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/halyard-id/halyard/internal/application/model"
	dbmodel "github.com/halyard-id/halyard/internal/system/database/model"
	"github.com/halyard-id/halyard/internal/system/database/provider"
	"github.com/halyard-id/halyard/internal/system/log"
)

const loggerComponentName = "ApplicationStore"

// ErrApplicationNotFound is returned when an application is not found in the database.
var ErrApplicationNotFound = errors.New("application not found")

// ApplicationStoreInterface defines the interface for managing application persistence.
type ApplicationStoreInterface interface {
	CreateApplication(app model.Application) error
	GetApplicationByClientID(clientID string) (model.Application, error)
	GetApplicationByAppID(appID string) (model.Application, error)
	GetApplicationList() ([]model.Application, error)
	DeleteApplication(appID string) error
}

// ApplicationStore implements the ApplicationStoreInterface for managing applications.
type ApplicationStore struct {
	DBProvider provider.DBProviderInterface
}

// NewApplicationStore creates a new instance of ApplicationStore.
func NewApplicationStore() ApplicationStoreInterface {
	return &ApplicationStore{
		DBProvider: provider.NewDBProvider(),
	}
}

// CreateApplication creates a new application in the database.
func (as *ApplicationStore) CreateApplication(app model.Application) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := as.DBProvider.GetDBClient("identity")
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return fmt.Errorf("failed to get database client: %w", err)
	}

	_, err = dbClient.Execute(QueryCreateApplication, app.AppID, app.Name, app.OwnerID, app.ClientID,
		app.ClientSecret, app.ClientType, app.GrantType, strings.Join(app.RedirectURIs, " "))
	if err != nil {
		logger.Error("Failed to insert application", log.Error(err))
		return fmt.Errorf("failed to insert application: %w", err)
	}

	return nil
}

// GetApplicationByClientID retrieves an application by its client id.
func (as *ApplicationStore) GetApplicationByClientID(clientID string) (model.Application, error) {
	return as.getApplication(QueryGetApplicationByClientID, clientID)
}

// GetApplicationByAppID retrieves an application by its app id.
func (as *ApplicationStore) GetApplicationByAppID(appID string) (model.Application, error) {
	return as.getApplication(QueryGetApplicationByAppID, appID)
}

// GetApplicationList retrieves all registered applications.
func (as *ApplicationStore) GetApplicationList() ([]model.Application, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := as.DBProvider.GetDBClient("identity")
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(QueryGetApplicationList)
	if err != nil {
		logger.Error("Failed to execute query", log.Error(err))
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	applications := make([]model.Application, 0, len(results))
	for _, row := range results {
		application, err := buildApplicationFromResultRow(row)
		if err != nil {
			logger.Error("Failed to build application from result row", log.Error(err))
			return nil, fmt.Errorf("failed to build application from result row: %w", err)
		}
		applications = append(applications, application)
	}

	return applications, nil
}

// DeleteApplication deletes an application from the database by its app id.
func (as *ApplicationStore) DeleteApplication(appID string) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := as.DBProvider.GetDBClient("identity")
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return fmt.Errorf("failed to get database client: %w", err)
	}

	rowsAffected, err := dbClient.Execute(QueryDeleteApplicationByAppID, appID)
	if err != nil {
		logger.Error("Failed to execute query", log.Error(err))
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if rowsAffected == 0 {
		return ErrApplicationNotFound
	}

	return nil
}

// getApplication retrieves a single application with the given query and argument.
func (as *ApplicationStore) getApplication(query dbmodel.DBQuery, arg string) (model.Application, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := as.DBProvider.GetDBClient("identity")
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return model.Application{}, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(query, arg)
	if err != nil {
		return model.Application{}, fmt.Errorf("error while retrieving application: %w", err)
	}
	if len(results) == 0 {
		return model.Application{}, ErrApplicationNotFound
	}
	if len(results) != 1 {
		return model.Application{}, fmt.Errorf("unexpected number of results: %d", len(results))
	}

	return buildApplicationFromResultRow(results[0])
}

// buildApplicationFromResultRow constructs an Application object from a database result row.
func buildApplicationFromResultRow(row map[string]interface{}) (model.Application, error) {
	appID, ok := row["app_id"].(string)
	if !ok {
		return model.Application{}, fmt.Errorf("failed to parse app_id as string")
	}

	appName, ok := row["app_name"].(string)
	if !ok {
		return model.Application{}, fmt.Errorf("failed to parse app_name as string")
	}

	clientID, ok := row["client_id"].(string)
	if !ok {
		return model.Application{}, fmt.Errorf("failed to parse client_id as string")
	}

	clientSecret, ok := row["client_secret"].(string)
	if !ok {
		return model.Application{}, fmt.Errorf("failed to parse client_secret as string")
	}

	clientType, ok := row["client_type"].(string)
	if !ok {
		return model.Application{}, fmt.Errorf("failed to parse client_type as string")
	}

	grantType, ok := row["grant_type"].(string)
	if !ok {
		return model.Application{}, fmt.Errorf("failed to parse grant_type as string")
	}

	ownerID := ""
	if rawOwnerID, ok := row["owner_id"].(string); ok {
		ownerID = rawOwnerID
	}

	redirectURIs := []string{}
	if rawRedirectURIs, ok := row["redirect_uris"].(string); ok && rawRedirectURIs != "" {
		redirectURIs = strings.Fields(rawRedirectURIs)
	}

	return model.Application{
		AppID:        appID,
		Name:         appName,
		OwnerID:      ownerID,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		ClientType:   clientType,
		GrantType:    grantType,
		RedirectURIs: redirectURIs,
	}, nil
}
