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

// Package constants defines constants for OAuth application management.
package constants

// Client types supported by OAuth applications.
const (
	// ClientTypeConfidential represents clients capable of keeping a client secret.
	ClientTypeConfidential = "confidential"
	// ClientTypePublic represents clients that cannot keep a client secret.
	ClientTypePublic = "public"
)

// Authorization grant type configurations an application can be registered with.
const (
	// GrantConfigAllInOne permits every supported grant type for the application.
	GrantConfigAllInOne = "all-in-one"
	// GrantConfigAuthorizationCode permits the authorization code grant.
	GrantConfigAuthorizationCode = "authorization-code"
	// GrantConfigImplicit permits the implicit grant.
	GrantConfigImplicit = "implicit"
	// GrantConfigPassword permits the resource owner password grant.
	GrantConfigPassword = "password"
	// GrantConfigClientCredential permits the client credentials grant.
	GrantConfigClientCredential = "client-credential"
)

// ValidGrantConfigs lists the accepted authorization grant type configurations.
var ValidGrantConfigs = []string{
	GrantConfigAllInOne,
	GrantConfigAuthorizationCode,
	GrantConfigImplicit,
	GrantConfigPassword,
	GrantConfigClientCredential,
}
