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

// Package signing provides access to the server's token signing key material.
package signing

import (
	"crypto"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"path"
	"sync"

	jose "github.com/go-jose/go-jose/v4"

	"github.com/halyard-id/halyard/internal/system/config"
)

// KeyServiceInterface defines the interface for accessing the server signing key.
type KeyServiceInterface interface {
	// Init loads the signing key from the configured key file.
	Init() error
	// PublicKey returns the public half of the signing key.
	PublicKey() (*rsa.PublicKey, error)
	// KeyID returns the RFC 7638 thumbprint of the public key.
	KeyID() (string, error)
}

// KeyService is the implementation of KeyServiceInterface.
type KeyService struct {
	privateKey *rsa.PrivateKey
	keyID      string
	mu         sync.RWMutex
}

var (
	instance *KeyService
	once     sync.Once
)

// GetKeyService returns the singleton instance of the signing key service.
func GetKeyService() KeyServiceInterface {
	once.Do(func() {
		instance = &KeyService{}
	})
	return instance
}

// Init loads the server's RSA private key for signing from the configured PEM file.
// A missing or unparsable key is a startup failure.
func (s *KeyService) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	runtime := config.GetHalyardRuntime()
	keyFile := runtime.Config.OIDC.SigningKeyFile
	if keyFile == "" {
		return errors.New("signing key file is not configured")
	}

	keyPath := path.Join(runtime.HalyardHome, keyFile)
	keyData, err := os.ReadFile(path.Clean(keyPath))
	if err != nil {
		return fmt.Errorf("failed to read signing key file: %w", err)
	}

	privateKey, err := parseRSAPrivateKey(keyData)
	if err != nil {
		return err
	}

	jwk := jose.JSONWebKey{Key: privateKey.Public()}
	thumbprint, err := jwk.Thumbprint(crypto.SHA256)
	if err != nil {
		return fmt.Errorf("failed to compute key thumbprint: %w", err)
	}

	s.privateKey = privateKey
	s.keyID = base64.RawURLEncoding.EncodeToString(thumbprint)
	return nil
}

// PublicKey returns the public half of the signing key.
func (s *KeyService) PublicKey() (*rsa.PublicKey, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.privateKey == nil {
		return nil, errors.New("signing key is not initialized")
	}
	return &s.privateKey.PublicKey, nil
}

// KeyID returns the RFC 7638 thumbprint of the public key.
func (s *KeyService) KeyID() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.keyID == "" {
		return "", errors.New("signing key is not initialized")
	}
	return s.keyID, nil
}

// parseRSAPrivateKey parses a PEM encoded RSA private key in PKCS#1 or PKCS#8 form.
func parseRSAPrivateKey(keyData []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(keyData)
	if block == nil {
		return nil, errors.New("failed to decode PEM block from signing key file")
	}

	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return key, nil
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse signing key: %w", err)
	}
	rsaKey, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, errors.New("signing key is not an RSA key")
	}
	return rsaKey, nil
}

// ResetKeyService resets the signing key service singleton.
// This should only be used in tests.
func ResetKeyService() {
	instance = nil
	once = sync.Once{}
}
