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

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/halyard-id/halyard/internal/user/model"
	"github.com/halyard-id/halyard/internal/user/store"
	"github.com/halyard-id/halyard/tests/mocks/usermock"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockStore *usermock.MockUserStore
	service   UserServiceInterface
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) SetupTest() {
	s.mockStore = &usermock.MockUserStore{}
	s.service = &UserService{UserStore: s.mockStore}
}

func (s *UserServiceTestSuite) TestCreateUserSuccess() {
	user, err := s.service.CreateUser("alice", "secret-pass", "alice@example.com")
	s.Require().NoError(err)
	s.NotEmpty(user.ID)
	s.Equal("alice", user.Username)
	s.NotEqual("secret-pass", user.PasswordHash)

	s.Require().Len(s.mockStore.CreateUserCalls, 1)
	stored := s.mockStore.CreateUserCalls[0]
	s.NoError(bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret-pass")))
}

func (s *UserServiceTestSuite) TestCreateUserMissingFields() {
	_, err := s.service.CreateUser("", "secret-pass", "")
	s.Error(err)

	_, err = s.service.CreateUser("alice", "", "")
	s.Error(err)
}

func (s *UserServiceTestSuite) TestCreateUserStoreError() {
	s.mockStore.MockCreateUser = func(user model.User) error {
		return errors.New("insert failed")
	}

	_, err := s.service.CreateUser("alice", "secret-pass", "")
	s.Error(err)
}

func (s *UserServiceTestSuite) TestVerifyCredentialsSuccess() {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-pass"), bcrypt.DefaultCost)
	s.Require().NoError(err)

	s.mockStore.MockGetUserByUsername = func(username string) (model.User, error) {
		return model.User{ID: "user-001", Username: username, PasswordHash: string(hash)}, nil
	}

	user, err := s.service.VerifyCredentials("alice", "secret-pass")
	s.Require().NoError(err)
	s.Equal("user-001", user.ID)
}

func (s *UserServiceTestSuite) TestVerifyCredentialsWrongPassword() {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-pass"), bcrypt.DefaultCost)
	s.Require().NoError(err)

	s.mockStore.MockGetUserByUsername = func(username string) (model.User, error) {
		return model.User{ID: "user-001", Username: username, PasswordHash: string(hash)}, nil
	}

	_, err = s.service.VerifyCredentials("alice", "wrong-pass")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *UserServiceTestSuite) TestVerifyCredentialsUnknownUser() {
	s.mockStore.MockGetUserByUsername = func(username string) (model.User, error) {
		return model.User{}, store.ErrUserNotFound
	}

	_, err := s.service.VerifyCredentials("ghost", "secret-pass")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *UserServiceTestSuite) TestGetUser() {
	s.mockStore.MockGetUserByID = func(userID string) (model.User, error) {
		return model.User{ID: userID, Username: "alice"}, nil
	}

	user, err := s.service.GetUser("user-001")
	s.Require().NoError(err)
	s.Equal("alice", user.Username)
}
