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

package constants

import dbmodel "github.com/halyard-id/halyard/internal/system/database/model"

// QueryInsertAuthorizationCode is the query to insert a new authorization code.
var QueryInsertAuthorizationCode = dbmodel.DBQuery{
	ID: "AZQ-00001",
	Query: "INSERT INTO OAUTH_AUTHZ_CODE (CODE_ID, AUTHORIZATION_CODE, CLIENT_ID, REDIRECT_URI, " +
		"AUTHZ_USER, SCOPES, STATE, TIME_CREATED, EXPIRY_TIME) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)",
}

// QueryGetAuthorizationCode is the query to retrieve an authorization code by client id and code.
var QueryGetAuthorizationCode = dbmodel.DBQuery{
	ID: "AZQ-00002",
	Query: "SELECT CODE_ID, AUTHORIZATION_CODE, CLIENT_ID, REDIRECT_URI, AUTHZ_USER, SCOPES, STATE, " +
		"TIME_CREATED, EXPIRY_TIME FROM OAUTH_AUTHZ_CODE WHERE CLIENT_ID = $1 AND AUTHORIZATION_CODE = $2",
}

// QueryDeleteAuthorizationCode is the query to delete an authorization code by code id.
// The affected row count distinguishes the first redemption from replays.
var QueryDeleteAuthorizationCode = dbmodel.DBQuery{
	ID:    "AZQ-00003",
	Query: "DELETE FROM OAUTH_AUTHZ_CODE WHERE CODE_ID = $1",
}

// QueryDeleteAuthorizationCodesForClient is the query to delete all authorization codes of a client.
var QueryDeleteAuthorizationCodesForClient = dbmodel.DBQuery{
	ID:    "AZQ-00004",
	Query: "DELETE FROM OAUTH_AUTHZ_CODE WHERE CLIENT_ID = $1",
}
