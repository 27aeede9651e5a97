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

// Package main is the entry point for starting the Halyard server.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path"
	"time"

	"github.com/halyard-id/halyard/internal/system/config"
	"github.com/halyard-id/halyard/internal/system/log"
	"github.com/halyard-id/halyard/internal/system/managers"
	"github.com/halyard-id/halyard/internal/system/signing"
)

func main() {
	logger := log.GetLogger()

	halyardHome := getHalyardHome(logger)

	cfg := initConfigurations(logger, halyardHome)
	if cfg == nil {
		logger.Fatal("Failed to initialize configurations")
	}

	mux := initMultiplexer(logger)
	if mux == nil {
		logger.Fatal("Failed to initialize multiplexer")
	}

	startHTTPServer(logger, cfg, mux)
}

// getHalyardHome retrieves and returns the Halyard home directory.
func getHalyardHome(logger *log.Logger) string {
	homeFlag := flag.String("halyardHome", "", "Path to Halyard home directory")
	flag.Parse()

	if *homeFlag != "" {
		logger.Info("Using halyardHome from command line argument",
			log.String("halyardHome", *homeFlag))
		return *homeFlag
	}

	dir, err := os.Getwd()
	if err != nil {
		logger.Fatal("Failed to get current working directory", log.Error(err))
	}
	return dir
}

// initConfigurations loads the configurations and initializes the runtime.
func initConfigurations(logger *log.Logger, halyardHome string) *config.Config {
	configFilePath := path.Join(halyardHome, "repository/conf/deployment.yaml")
	cfg, err := config.LoadConfig(configFilePath)
	if err != nil {
		logger.Fatal("Failed to load configurations", log.Error(err))
	}

	if err := config.InitializeHalyardRuntime(halyardHome, cfg); err != nil {
		logger.Fatal("Failed to initialize halyard runtime", log.Error(err))
	}

	// Load the server signing key used for the JWKS endpoint.
	if err := signing.GetKeyService().Init(); err != nil {
		logger.Fatal("Failed to load signing key", log.Error(err))
	}

	return cfg
}

// initMultiplexer initializes the HTTP multiplexer and registers the services.
func initMultiplexer(logger *log.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	serviceManager := managers.NewServiceManager(mux)

	if err := serviceManager.RegisterServices(); err != nil {
		logger.Fatal("Failed to register services", log.Error(err))
	}

	return mux
}

// startHTTPServer starts the HTTP server on the configured address.
func startHTTPServer(logger *log.Logger, cfg *config.Config, mux *http.ServeMux) {
	address := fmt.Sprintf("%s:%d", cfg.Server.Hostname, cfg.Server.Port)

	server := &http.Server{
		Addr:              address,
		Handler:           log.AccessLogHandler(logger, mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("Halyard server starting", log.String("address", address))
	if err := server.ListenAndServe(); err != nil {
		logger.Fatal("Server failed to start", log.Error(err))
	}
}
