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

package log

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type LogTestSuite struct {
	suite.Suite
}

func TestLogSuite(t *testing.T) {
	suite.Run(t, new(LogTestSuite))
}

func (suite *LogTestSuite) TestParseLogLevel() {
	testCases := []struct {
		name     string
		logLevel string
		expected slog.Level
		isValid  bool
	}{
		{"DebugLevel", "debug", slog.LevelDebug, true},
		{"InfoLevel", "info", slog.LevelInfo, true},
		{"WarnLevel", "warn", slog.LevelWarn, true},
		{"ErrorLevel", "error", slog.LevelError, true},
		{"InvalidLevel", "unknown", slog.LevelError, false},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			level, err := parseLogLevel(tc.logLevel)
			if tc.isValid {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, level)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func (suite *LogTestSuite) TestFieldHelpers() {
	assert.Equal(suite.T(), Field{Key: "name", Value: "value"}, String("name", "value"))
	assert.Equal(suite.T(), Field{Key: "count", Value: 3}, Int("count", 3))
	assert.Equal(suite.T(), Field{Key: "enabled", Value: true}, Bool("enabled", true))

	err := assert.AnError
	assert.Equal(suite.T(), Field{Key: "error", Value: err}, Error(err))
}

func (suite *LogTestSuite) TestConvertFields() {
	attrs := convertFields([]Field{String("a", "b"), Int("c", 1)})
	assert.Len(suite.T(), attrs, 2)
}

func (suite *LogTestSuite) TestMaskString() {
	testCases := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"ab", "**"},
		{"abc", "***"},
		{"abcd", "a**d"},
		{"secretvalue", "s*********e"},
	}

	for _, tc := range testCases {
		assert.Equal(suite.T(), tc.expected, MaskString(tc.input))
	}
}
