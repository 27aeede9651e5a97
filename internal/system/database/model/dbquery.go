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

package model

// DBQuery represents a database query with an identifier and optional
// dialect-specific variants.
type DBQuery struct {
	ID            string
	Query         string
	PostgresQuery string
	SQLiteQuery   string
}

// GetID returns the identifier of the query.
func (q DBQuery) GetID() string {
	return q.ID
}

// GetQuery returns the query string for the given database type, falling back
// to the generic query when no dialect-specific variant is defined.
func (q DBQuery) GetQuery(dbType string) string {
	switch dbType {
	case "postgres":
		if q.PostgresQuery != "" {
			return q.PostgresQuery
		}
	case "sqlite":
		if q.SQLiteQuery != "" {
			return q.SQLiteQuery
		}
	}
	return q.Query
}
