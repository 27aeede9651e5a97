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

// Package service provides the health check business logic.
package service

import (
	dbmodel "github.com/halyard-id/halyard/internal/system/database/model"
	"github.com/halyard-id/halyard/internal/system/database/provider"
	"github.com/halyard-id/halyard/internal/system/healthcheck/model"
	"github.com/halyard-id/halyard/internal/system/log"
)

const loggerComponentName = "HealthCheckService"

// HealthCheckServiceInterface defines the interface for the health check service.
type HealthCheckServiceInterface interface {
	CheckReadiness() model.ServerStatus
}

// HealthCheckService is the default implementation of the HealthCheckServiceInterface.
type HealthCheckService struct {
	DBProvider provider.DBProviderInterface
}

// NewHealthCheckService creates a new instance of HealthCheckService.
func NewHealthCheckService() HealthCheckServiceInterface {
	return &HealthCheckService{
		DBProvider: provider.NewDBProvider(),
	}
}

// CheckReadiness checks the readiness of the server and its dependencies.
func (hcs *HealthCheckService) CheckReadiness() model.ServerStatus {
	identityDBStatus := model.ServiceStatus{
		ServiceName: "IdentityDB",
		Status:      hcs.checkDatabaseStatus("identity", queryIdentityDBProbe),
	}

	runtimeDBStatus := model.ServiceStatus{
		ServiceName: "RuntimeDB",
		Status:      hcs.checkDatabaseStatus("runtime", queryRuntimeDBProbe),
	}

	status := model.StatusUp
	if identityDBStatus.Status == model.StatusDown || runtimeDBStatus.Status == model.StatusDown {
		status = model.StatusDown
	}

	return model.ServerStatus{
		Status: status,
		ServiceStatus: []model.ServiceStatus{
			identityDBStatus,
			runtimeDBStatus,
		},
	}
}

// checkDatabaseStatus probes the given database with the given query.
func (hcs *HealthCheckService) checkDatabaseStatus(dbName string, query dbmodel.DBQuery) model.Status {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := hcs.DBProvider.GetDBClient(dbName)
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return model.StatusDown
	}

	if _, err := dbClient.Query(query); err != nil {
		logger.Error("Failed to execute readiness probe query", log.Error(err))
		return model.StatusDown
	}
	return model.StatusUp
}
