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

package config

import "sync"

// HalyardRuntime holds the runtime configuration for the Halyard server.
// It is frozen once at process start and read-only afterwards.
type HalyardRuntime struct {
	HalyardHome string
	Config      Config
}

var (
	runtimeConfig *HalyardRuntime
	once          sync.Once
)

// InitializeHalyardRuntime initializes the HalyardRuntime configuration.
func InitializeHalyardRuntime(halyardHome string, config *Config) error {
	once.Do(func() {
		runtimeConfig = &HalyardRuntime{
			HalyardHome: halyardHome,
			Config:      *config,
		}
	})

	return nil
}

// GetHalyardRuntime returns the HalyardRuntime configuration.
func GetHalyardRuntime() *HalyardRuntime {
	if runtimeConfig == nil {
		panic("HalyardRuntime is not initialized")
	}
	return runtimeConfig
}

// ResetHalyardRuntime resets the HalyardRuntime.
// This should only be used in tests to reset the singleton state.
func ResetHalyardRuntime() {
	runtimeConfig = nil
	once = sync.Once{}
}
