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

package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/halyard-id/halyard/internal/application/constants"
	"github.com/halyard-id/halyard/internal/application/model"
	"github.com/halyard-id/halyard/internal/system/database/client"
	dbmodel "github.com/halyard-id/halyard/internal/system/database/model"
	"github.com/halyard-id/halyard/tests/mocks/databasemock"
)

type ApplicationStoreTestSuite struct {
	suite.Suite
	mockClient *databasemock.MockDBClient
	store      ApplicationStoreInterface
}

func TestApplicationStoreTestSuite(t *testing.T) {
	suite.Run(t, new(ApplicationStoreTestSuite))
}

func (s *ApplicationStoreTestSuite) SetupTest() {
	s.mockClient = &databasemock.MockDBClient{}
	s.store = &ApplicationStore{
		DBProvider: &databasemock.MockDBProvider{
			MockGetDBClient: func(dbName string) (client.DBClientInterface, error) {
				return s.mockClient, nil
			},
		},
	}
}

func applicationRow() map[string]interface{} {
	return map[string]interface{}{
		"app_id":        "app-001",
		"app_name":      "Test Application",
		"owner_id":      "user-001",
		"client_id":     "client001",
		"client_secret": "secret001",
		"client_type":   constants.ClientTypeConfidential,
		"grant_type":    constants.GrantConfigAuthorizationCode,
		"redirect_uris": "https://client.example.com/callback https://client.example.com/alt",
	}
}

func (s *ApplicationStoreTestSuite) TestGetApplicationByClientID() {
	s.mockClient.MockQuery = func(query dbmodel.DBQuery, args ...interface{}) ([]map[string]interface{}, error) {
		s.Equal(QueryGetApplicationByClientID.ID, query.ID)
		s.Equal([]interface{}{"client001"}, args)
		return []map[string]interface{}{applicationRow()}, nil
	}

	app, err := s.store.GetApplicationByClientID("client001")
	s.Require().NoError(err)
	s.Equal("app-001", app.AppID)
	s.Equal([]string{"https://client.example.com/callback", "https://client.example.com/alt"}, app.RedirectURIs)
}

func (s *ApplicationStoreTestSuite) TestGetApplicationNotFound() {
	s.mockClient.MockQuery = func(query dbmodel.DBQuery, args ...interface{}) ([]map[string]interface{}, error) {
		return []map[string]interface{}{}, nil
	}

	_, err := s.store.GetApplicationByClientID("missing")
	s.ErrorIs(err, ErrApplicationNotFound)
}

func (s *ApplicationStoreTestSuite) TestCreateApplication() {
	s.mockClient.MockExecute = func(query dbmodel.DBQuery, args ...interface{}) (int64, error) {
		s.Equal(QueryCreateApplication.ID, query.ID)
		s.Len(args, 8)
		s.Equal("https://client.example.com/callback", args[7])
		return 1, nil
	}

	err := s.store.CreateApplication(model.Application{
		AppID:        "app-001",
		Name:         "Test Application",
		ClientID:     "client001",
		ClientSecret: "secret001",
		ClientType:   constants.ClientTypeConfidential,
		GrantType:    constants.GrantConfigAuthorizationCode,
		RedirectURIs: []string{"https://client.example.com/callback"},
	})
	s.NoError(err)
}

func (s *ApplicationStoreTestSuite) TestDeleteApplication() {
	s.mockClient.MockExecute = func(query dbmodel.DBQuery, args ...interface{}) (int64, error) {
		return 1, nil
	}
	s.NoError(s.store.DeleteApplication("app-001"))
}

func (s *ApplicationStoreTestSuite) TestDeleteApplicationNotFound() {
	s.mockClient.MockExecute = func(query dbmodel.DBQuery, args ...interface{}) (int64, error) {
		return 0, nil
	}
	s.ErrorIs(s.store.DeleteApplication("missing"), ErrApplicationNotFound)
}

func (s *ApplicationStoreTestSuite) TestGetApplicationListQueryError() {
	s.mockClient.MockQuery = func(query dbmodel.DBQuery, args ...interface{}) ([]map[string]interface{}, error) {
		return nil, errors.New("query failed")
	}

	_, err := s.store.GetApplicationList()
	s.Error(err)
}
