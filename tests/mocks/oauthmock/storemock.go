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

// Package oauthmock provides mock implementations of the OAuth2 store
// interfaces for testing.
package oauthmock

import (
	authzmodel "github.com/halyard-id/halyard/internal/oauth/oauth2/authz/model"
	tokenmodel "github.com/halyard-id/halyard/internal/oauth/oauth2/token/model"
)

// MockAuthorizationCodeStore is a mock implementation of the AuthorizationCodeStoreInterface.
type MockAuthorizationCodeStore struct {
	// MockInsertAuthorizationCode defines the behavior for the InsertAuthorizationCode method.
	MockInsertAuthorizationCode func(authzCode authzmodel.AuthorizationCode) error

	// MockGetAuthorizationCode defines the behavior for the GetAuthorizationCode method.
	MockGetAuthorizationCode func(clientID, authCode string) (authzmodel.AuthorizationCode, error)

	// MockConsumeAuthorizationCode defines the behavior for the ConsumeAuthorizationCode method.
	MockConsumeAuthorizationCode func(codeID string) error

	// MockDeleteAuthorizationCodesForClient defines the behavior for the
	// DeleteAuthorizationCodesForClient method.
	MockDeleteAuthorizationCodesForClient func(clientID string) error

	// InsertAuthorizationCodeCalls tracks the codes passed to InsertAuthorizationCode.
	InsertAuthorizationCodeCalls []authzmodel.AuthorizationCode

	// ConsumeAuthorizationCodeCalls tracks the code ids passed to ConsumeAuthorizationCode.
	ConsumeAuthorizationCodeCalls []string
}

// InsertAuthorizationCode mocks the InsertAuthorizationCode method.
func (m *MockAuthorizationCodeStore) InsertAuthorizationCode(authzCode authzmodel.AuthorizationCode) error {
	m.InsertAuthorizationCodeCalls = append(m.InsertAuthorizationCodeCalls, authzCode)
	if m.MockInsertAuthorizationCode != nil {
		return m.MockInsertAuthorizationCode(authzCode)
	}
	return nil
}

// GetAuthorizationCode mocks the GetAuthorizationCode method.
func (m *MockAuthorizationCodeStore) GetAuthorizationCode(clientID, authCode string) (
	authzmodel.AuthorizationCode, error) {
	if m.MockGetAuthorizationCode != nil {
		return m.MockGetAuthorizationCode(clientID, authCode)
	}
	return authzmodel.AuthorizationCode{}, nil
}

// ConsumeAuthorizationCode mocks the ConsumeAuthorizationCode method.
func (m *MockAuthorizationCodeStore) ConsumeAuthorizationCode(codeID string) error {
	m.ConsumeAuthorizationCodeCalls = append(m.ConsumeAuthorizationCodeCalls, codeID)
	if m.MockConsumeAuthorizationCode != nil {
		return m.MockConsumeAuthorizationCode(codeID)
	}
	return nil
}

// DeleteAuthorizationCodesForClient mocks the DeleteAuthorizationCodesForClient method.
func (m *MockAuthorizationCodeStore) DeleteAuthorizationCodesForClient(clientID string) error {
	if m.MockDeleteAuthorizationCodesForClient != nil {
		return m.MockDeleteAuthorizationCodesForClient(clientID)
	}
	return nil
}

// MockTokenStore is a mock implementation of the TokenStoreInterface.
type MockTokenStore struct {
	// MockInsertAccessToken defines the behavior for the InsertAccessToken method.
	MockInsertAccessToken func(accessToken tokenmodel.AccessToken) error

	// MockGetAccessToken defines the behavior for the GetAccessToken method.
	MockGetAccessToken func(token string) (tokenmodel.AccessToken, error)

	// MockRevokeAccessToken defines the behavior for the RevokeAccessToken method.
	MockRevokeAccessToken func(tokenID string) error

	// MockInsertRefreshToken defines the behavior for the InsertRefreshToken method.
	MockInsertRefreshToken func(refreshToken tokenmodel.RefreshToken) error

	// MockGetRefreshToken defines the behavior for the GetRefreshToken method.
	MockGetRefreshToken func(clientID, token string) (tokenmodel.RefreshToken, error)

	// MockDeleteRefreshToken defines the behavior for the DeleteRefreshToken method.
	MockDeleteRefreshToken func(tokenID string) error

	// MockInsertTokenPair defines the behavior for the InsertTokenPair method.
	MockInsertTokenPair func(accessToken tokenmodel.AccessToken, refreshToken tokenmodel.RefreshToken) error

	// MockDeleteTokensForClient defines the behavior for the DeleteTokensForClient method.
	MockDeleteTokensForClient func(clientID string) error

	// InsertAccessTokenCalls tracks the tokens passed to InsertAccessToken.
	InsertAccessTokenCalls []tokenmodel.AccessToken

	// InsertTokenPairCalls tracks the token pairs passed to InsertTokenPair.
	InsertTokenPairCalls []struct {
		AccessToken  tokenmodel.AccessToken
		RefreshToken tokenmodel.RefreshToken
	}

	// RevokeAccessTokenCalls tracks the token ids passed to RevokeAccessToken.
	RevokeAccessTokenCalls []string

	// DeleteRefreshTokenCalls tracks the token ids passed to DeleteRefreshToken.
	DeleteRefreshTokenCalls []string
}

// InsertAccessToken mocks the InsertAccessToken method.
func (m *MockTokenStore) InsertAccessToken(accessToken tokenmodel.AccessToken) error {
	m.InsertAccessTokenCalls = append(m.InsertAccessTokenCalls, accessToken)
	if m.MockInsertAccessToken != nil {
		return m.MockInsertAccessToken(accessToken)
	}
	return nil
}

// GetAccessToken mocks the GetAccessToken method.
func (m *MockTokenStore) GetAccessToken(token string) (tokenmodel.AccessToken, error) {
	if m.MockGetAccessToken != nil {
		return m.MockGetAccessToken(token)
	}
	return tokenmodel.AccessToken{}, nil
}

// RevokeAccessToken mocks the RevokeAccessToken method.
func (m *MockTokenStore) RevokeAccessToken(tokenID string) error {
	m.RevokeAccessTokenCalls = append(m.RevokeAccessTokenCalls, tokenID)
	if m.MockRevokeAccessToken != nil {
		return m.MockRevokeAccessToken(tokenID)
	}
	return nil
}

// InsertRefreshToken mocks the InsertRefreshToken method.
func (m *MockTokenStore) InsertRefreshToken(refreshToken tokenmodel.RefreshToken) error {
	if m.MockInsertRefreshToken != nil {
		return m.MockInsertRefreshToken(refreshToken)
	}
	return nil
}

// GetRefreshToken mocks the GetRefreshToken method.
func (m *MockTokenStore) GetRefreshToken(clientID, token string) (tokenmodel.RefreshToken, error) {
	if m.MockGetRefreshToken != nil {
		return m.MockGetRefreshToken(clientID, token)
	}
	return tokenmodel.RefreshToken{}, nil
}

// DeleteRefreshToken mocks the DeleteRefreshToken method.
func (m *MockTokenStore) DeleteRefreshToken(tokenID string) error {
	m.DeleteRefreshTokenCalls = append(m.DeleteRefreshTokenCalls, tokenID)
	if m.MockDeleteRefreshToken != nil {
		return m.MockDeleteRefreshToken(tokenID)
	}
	return nil
}

// InsertTokenPair mocks the InsertTokenPair method.
func (m *MockTokenStore) InsertTokenPair(accessToken tokenmodel.AccessToken,
	refreshToken tokenmodel.RefreshToken) error {
	m.InsertTokenPairCalls = append(m.InsertTokenPairCalls, struct {
		AccessToken  tokenmodel.AccessToken
		RefreshToken tokenmodel.RefreshToken
	}{accessToken, refreshToken})
	if m.MockInsertTokenPair != nil {
		return m.MockInsertTokenPair(accessToken, refreshToken)
	}
	return nil
}

// DeleteTokensForClient mocks the DeleteTokensForClient method.
func (m *MockTokenStore) DeleteTokensForClient(clientID string) error {
	if m.MockDeleteTokensForClient != nil {
		return m.MockDeleteTokensForClient(clientID)
	}
	return nil
}
