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

// Package constants defines constants related to OAuth2 token persistence.
package constants

import (
	"errors"

	dbmodel "github.com/halyard-id/halyard/internal/system/database/model"
)

// ErrTokenNotFound is returned when a token is not found in the database.
var ErrTokenNotFound = errors.New("token not found")

// ErrRefreshTokenRotated is returned when a refresh token has already been
// rotated away by a concurrent request.
var ErrRefreshTokenRotated = errors.New("refresh token already rotated")

// QueryInsertAccessToken is the query to insert a new access token.
var QueryInsertAccessToken = dbmodel.DBQuery{
	ID: "TKQ-00001",
	Query: "INSERT INTO OAUTH_ACCESS_TOKEN (TOKEN_ID, TOKEN, CLIENT_ID, AUTHZ_USER, SCOPES, REVOKED, " +
		"TIME_CREATED, EXPIRY_TIME) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)",
}

// QueryGetAccessToken is the query to retrieve an access token by its token value.
var QueryGetAccessToken = dbmodel.DBQuery{
	ID: "TKQ-00002",
	Query: "SELECT TOKEN_ID, TOKEN, CLIENT_ID, AUTHZ_USER, SCOPES, REVOKED, TIME_CREATED, EXPIRY_TIME " +
		"FROM OAUTH_ACCESS_TOKEN WHERE TOKEN = $1",
}

// QueryRevokeAccessToken is the query to mark an access token as revoked.
var QueryRevokeAccessToken = dbmodel.DBQuery{
	ID:            "TKQ-00003",
	Query:         "UPDATE OAUTH_ACCESS_TOKEN SET REVOKED = TRUE WHERE TOKEN_ID = $1",
	SQLiteQuery:   "UPDATE OAUTH_ACCESS_TOKEN SET REVOKED = 1 WHERE TOKEN_ID = $1",
	PostgresQuery: "UPDATE OAUTH_ACCESS_TOKEN SET REVOKED = TRUE WHERE TOKEN_ID = $1",
}

// QueryInsertRefreshToken is the query to insert a new refresh token.
var QueryInsertRefreshToken = dbmodel.DBQuery{
	ID: "TKQ-00004",
	Query: "INSERT INTO OAUTH_REFRESH_TOKEN (TOKEN_ID, TOKEN, CLIENT_ID, AUTHZ_USER, SCOPES, " +
		"ACCESS_TOKEN_ID, TIME_CREATED) VALUES ($1, $2, $3, $4, $5, $6, $7)",
}

// QueryGetRefreshToken is the query to retrieve a refresh token by client id and token value.
var QueryGetRefreshToken = dbmodel.DBQuery{
	ID: "TKQ-00005",
	Query: "SELECT TOKEN_ID, TOKEN, CLIENT_ID, AUTHZ_USER, SCOPES, ACCESS_TOKEN_ID, TIME_CREATED " +
		"FROM OAUTH_REFRESH_TOKEN WHERE CLIENT_ID = $1 AND TOKEN = $2",
}

// QueryDeleteRefreshToken is the query to delete a refresh token by token id.
// The affected row count distinguishes the first rotation from replays.
var QueryDeleteRefreshToken = dbmodel.DBQuery{
	ID:    "TKQ-00006",
	Query: "DELETE FROM OAUTH_REFRESH_TOKEN WHERE TOKEN_ID = $1",
}

// QueryDeleteAccessTokensForClient is the query to delete all access tokens of a client.
var QueryDeleteAccessTokensForClient = dbmodel.DBQuery{
	ID:    "TKQ-00007",
	Query: "DELETE FROM OAUTH_ACCESS_TOKEN WHERE CLIENT_ID = $1",
}

// QueryDeleteRefreshTokensForClient is the query to delete all refresh tokens of a client.
var QueryDeleteRefreshTokensForClient = dbmodel.DBQuery{
	ID:    "TKQ-00008",
	Query: "DELETE FROM OAUTH_REFRESH_TOKEN WHERE CLIENT_ID = $1",
}
