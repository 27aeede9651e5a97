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

import dbmodel "github.com/halyard-id/halyard/internal/system/database/model"

var (
	// QueryCreateApplication is the query to insert a new application.
	QueryCreateApplication = dbmodel.DBQuery{
		ID: "APQ-00001",
		Query: "INSERT INTO OAUTH_APPLICATION (APP_ID, APP_NAME, OWNER_ID, CLIENT_ID, CLIENT_SECRET, " +
			"CLIENT_TYPE, GRANT_TYPE, REDIRECT_URIS) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)",
	}

	// QueryGetApplicationByClientID is the query to retrieve an application by client id.
	QueryGetApplicationByClientID = dbmodel.DBQuery{
		ID: "APQ-00002",
		Query: "SELECT APP_ID, APP_NAME, OWNER_ID, CLIENT_ID, CLIENT_SECRET, CLIENT_TYPE, GRANT_TYPE, " +
			"REDIRECT_URIS FROM OAUTH_APPLICATION WHERE CLIENT_ID = $1",
	}

	// QueryGetApplicationByAppID is the query to retrieve an application by app id.
	QueryGetApplicationByAppID = dbmodel.DBQuery{
		ID: "APQ-00003",
		Query: "SELECT APP_ID, APP_NAME, OWNER_ID, CLIENT_ID, CLIENT_SECRET, CLIENT_TYPE, GRANT_TYPE, " +
			"REDIRECT_URIS FROM OAUTH_APPLICATION WHERE APP_ID = $1",
	}

	// QueryGetApplicationList is the query to retrieve all registered applications.
	QueryGetApplicationList = dbmodel.DBQuery{
		ID: "APQ-00004",
		Query: "SELECT APP_ID, APP_NAME, OWNER_ID, CLIENT_ID, CLIENT_SECRET, CLIENT_TYPE, GRANT_TYPE, " +
			"REDIRECT_URIS FROM OAUTH_APPLICATION",
	}

	// QueryDeleteApplicationByAppID is the query to delete an application by app id.
	QueryDeleteApplicationByAppID = dbmodel.DBQuery{
		ID:    "APQ-00005",
		Query: "DELETE FROM OAUTH_APPLICATION WHERE APP_ID = $1",
	}
)
