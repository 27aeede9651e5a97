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

package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/halyard-id/halyard/internal/system/config"
)

type CacheTestSuite struct {
	suite.Suite
}

func TestCacheTestSuite(t *testing.T) {
	suite.Run(t, new(CacheTestSuite))
}

func (s *CacheTestSuite) SetupTest() {
	config.ResetHalyardRuntime()
	err := config.InitializeHalyardRuntime("/tmp", &config.Config{
		Cache: config.CacheConfig{
			Enabled:    true,
			Size:       3,
			TTLSeconds: 300,
		},
	})
	s.Require().NoError(err)
}

func (s *CacheTestSuite) TestSetAndGet() {
	c := NewCache[string]("TestCache")
	s.True(c.IsEnabled())
	s.Equal("TestCache", c.GetName())

	c.Set("key1", "value1")
	value, found := c.Get("key1")
	s.True(found)
	s.Equal("value1", value)
}

func (s *CacheTestSuite) TestGetMissing() {
	c := NewCache[string]("TestCache")

	_, found := c.Get("missing")
	s.False(found)
}

func (s *CacheTestSuite) TestDelete() {
	c := NewCache[string]("TestCache")

	c.Set("key1", "value1")
	c.Delete("key1")
	_, found := c.Get("key1")
	s.False(found)
}

func (s *CacheTestSuite) TestClear() {
	c := NewCache[string]("TestCache")

	c.Set("key1", "value1")
	c.Set("key2", "value2")
	c.Clear()

	_, found := c.Get("key1")
	s.False(found)
	_, found = c.Get("key2")
	s.False(found)
}

func (s *CacheTestSuite) TestEvictionAtCapacity() {
	c := NewCache[int]("TestCache")

	c.Set("key1", 1)
	c.Set("key2", 2)
	c.Set("key3", 3)

	// Touch key1 so that key2 becomes the eviction candidate.
	_, _ = c.Get("key1")
	time.Sleep(5 * time.Millisecond)
	c.Set("key4", 4)

	_, found := c.Get("key1")
	s.True(found)
	_, found = c.Get("key4")
	s.True(found)
	_, found = c.Get("key2")
	s.False(found)
}

func (s *CacheTestSuite) TestExpiredEntryMisses() {
	config.ResetHalyardRuntime()
	err := config.InitializeHalyardRuntime("/tmp", &config.Config{
		Cache: config.CacheConfig{
			Enabled:    true,
			Size:       3,
			TTLSeconds: -1,
		},
	})
	s.Require().NoError(err)

	c := NewCache[string]("TestCache")
	c.Set("key1", "value1")

	_, found := c.Get("key1")
	s.False(found)
}

func (s *CacheTestSuite) TestDisabledByDefault() {
	config.ResetHalyardRuntime()
	err := config.InitializeHalyardRuntime("/tmp", &config.Config{})
	s.Require().NoError(err)

	c := NewCache[string]("TestCache")
	s.False(c.IsEnabled())

	c.Set("key1", "value1")
	_, found := c.Get("key1")
	s.False(found)
}

func (s *CacheTestSuite) TestStructValues() {
	type app struct {
		ClientID string
		Name     string
	}

	c := NewCache[app]("TestCache")
	c.Set("client001", app{ClientID: "client001", Name: "Test Application"})

	value, found := c.Get("client001")
	s.True(found)
	s.Equal("Test Application", value.Name)
}
