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
	// QueryCreateUser is the query to insert a new user.
	QueryCreateUser = dbmodel.DBQuery{
		ID:    "USQ-00001",
		Query: "INSERT INTO OAUTH_USER (USER_ID, USERNAME, PASSWORD_HASH, EMAIL) VALUES ($1, $2, $3, $4)",
	}

	// QueryGetUserByUsername is the query to retrieve a user by username.
	QueryGetUserByUsername = dbmodel.DBQuery{
		ID:    "USQ-00002",
		Query: "SELECT USER_ID, USERNAME, PASSWORD_HASH, EMAIL FROM OAUTH_USER WHERE USERNAME = $1",
	}

	// QueryGetUserByID is the query to retrieve a user by user id.
	QueryGetUserByID = dbmodel.DBQuery{
		ID:    "USQ-00003",
		Query: "SELECT USER_ID, USERNAME, PASSWORD_HASH, EMAIL FROM OAUTH_USER WHERE USER_ID = $1",
	}
)
