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

package service

import dbmodel "github.com/halyard-id/halyard/internal/system/database/model"

// queryIdentityDBProbe is the readiness probe query for the identity database.
var queryIdentityDBProbe = dbmodel.DBQuery{
	ID:    "HCQ-00001",
	Query: "SELECT COUNT(*) FROM OAUTH_APPLICATION",
}

// queryRuntimeDBProbe is the readiness probe query for the runtime database.
var queryRuntimeDBProbe = dbmodel.DBQuery{
	ID:    "HCQ-00002",
	Query: "SELECT COUNT(*) FROM OAUTH_ACCESS_TOKEN",
}
