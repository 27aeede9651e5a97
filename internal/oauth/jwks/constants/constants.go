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

// Package constants defines the error constants for the JWKS service.
package constants

import "github.com/halyard-id/halyard/internal/system/error/serviceerror"

// ErrorSigningKeyUnavailable is returned when the server signing key cannot be loaded.
var ErrorSigningKeyUnavailable = &serviceerror.ServiceError{
	Code:             "JWKS-5001",
	Type:             serviceerror.ServerErrorType,
	Error:            "Signing key unavailable",
	ErrorDescription: "The server signing key could not be retrieved",
}
