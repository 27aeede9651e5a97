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

// Package service provides application management functionality.
package service

import (
	"errors"

	"github.com/halyard-id/halyard/internal/application/model"
	"github.com/halyard-id/halyard/internal/application/store"
	"github.com/halyard-id/halyard/internal/oauth/credentials"
	authzstore "github.com/halyard-id/halyard/internal/oauth/oauth2/authz/store"
	tokenstore "github.com/halyard-id/halyard/internal/oauth/oauth2/token/store"
	"github.com/halyard-id/halyard/internal/system/cache"
	"github.com/halyard-id/halyard/internal/system/log"
	"github.com/halyard-id/halyard/internal/system/utils"
)

const loggerComponentName = "ApplicationService"

// ApplicationServiceInterface defines the interface for the application service.
type ApplicationServiceInterface interface {
	CreateApplication(app *model.Application) (*model.Application, error)
	GetApplication(appID string) (*model.Application, error)
	GetOAuthApplication(clientID string) (*model.Application, error)
	GetApplicationList() ([]model.Application, error)
	DeleteApplication(appID string) error
}

// ApplicationService is the default implementation of the ApplicationServiceInterface.
type ApplicationService struct {
	AppStore   store.ApplicationStoreInterface
	AuthZStore authzstore.AuthorizationCodeStoreInterface
	TokenStore tokenstore.TokenStoreInterface
	AppCache   cache.CacheInterface[model.Application]
}

// NewApplicationService creates a new instance of ApplicationService.
func NewApplicationService() ApplicationServiceInterface {
	return &ApplicationService{
		AppStore:   store.NewApplicationStore(),
		AuthZStore: authzstore.NewAuthorizationCodeStore(),
		TokenStore: tokenstore.NewTokenStore(),
		AppCache:   cache.NewCache[model.Application]("OAuthApplicationByClientID"),
	}
}

// CreateApplication registers a new application, generating client
// credentials for any that are not supplied.
func (as *ApplicationService) CreateApplication(app *model.Application) (*model.Application, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if app == nil {
		return nil, errors.New("application is nil")
	}

	app.AppID = utils.GenerateUUID()
	if app.ClientID == "" {
		clientID, err := credentials.GenerateClientID()
		if err != nil {
			logger.Error("Failed to generate client id", log.Error(err))
			return nil, errors.New("failed to generate client id")
		}
		app.ClientID = clientID
	}
	if app.ClientSecret == "" {
		clientSecret, err := credentials.GenerateClientSecret()
		if err != nil {
			logger.Error("Failed to generate client secret", log.Error(err))
			return nil, errors.New("failed to generate client secret")
		}
		app.ClientSecret = clientSecret
	}

	if err := app.Validate(); err != nil {
		return nil, err
	}

	if err := as.AppStore.CreateApplication(*app); err != nil {
		logger.Error("Failed to create application", log.Error(err))
		return nil, err
	}

	logger.Debug("Application created", log.String(log.LoggerKeyClientID, log.MaskString(app.ClientID)))
	return app, nil
}

// GetApplication retrieves an application by its app id.
func (as *ApplicationService) GetApplication(appID string) (*model.Application, error) {
	app, err := as.AppStore.GetApplicationByAppID(appID)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// GetOAuthApplication retrieves an application by its client id. Lookups
// are served from the application cache when possible.
func (as *ApplicationService) GetOAuthApplication(clientID string) (*model.Application, error) {
	if cached, found := as.AppCache.Get(clientID); found {
		return &cached, nil
	}

	app, err := as.AppStore.GetApplicationByClientID(clientID)
	if err != nil {
		return nil, err
	}

	as.AppCache.Set(clientID, app)
	return &app, nil
}

// GetApplicationList retrieves all registered applications.
func (as *ApplicationService) GetApplicationList() ([]model.Application, error) {
	return as.AppStore.GetApplicationList()
}

// DeleteApplication deletes an application together with the authorization
// codes and tokens issued to it.
func (as *ApplicationService) DeleteApplication(appID string) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	app, err := as.AppStore.GetApplicationByAppID(appID)
	if err != nil {
		return err
	}

	if err := as.AuthZStore.DeleteAuthorizationCodesForClient(app.ClientID); err != nil {
		logger.Error("Failed to delete authorization codes", log.Error(err))
		return err
	}
	if err := as.TokenStore.DeleteTokensForClient(app.ClientID); err != nil {
		logger.Error("Failed to delete tokens", log.Error(err))
		return err
	}

	as.AppCache.Delete(app.ClientID)
	return as.AppStore.DeleteApplication(appID)
}
