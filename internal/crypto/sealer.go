// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Kovalev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// sealerService is the private implementation of [PayloadSealer].
type sealerService struct {
	// key is the derived 256-bit sealing key. It exists only in agent
	// memory; neither the seal secret nor the key is ever sent anywhere.
	key []byte
}

// NewSealer derives the sealing key from the configured secret and the
// per-database salt (base64, from the seal_meta table) using Argon2id with
// the parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
//
// Returns an error if the salt is not valid base64.
func NewSealer(secret string, saltB64 string) (PayloadSealer, error) {
	salt, err := base64.StdEncoding.DecodeString(saltB64)
	if err != nil {
		return nil, fmt.Errorf("decode seal salt: %w", err)
	}

	key := argon2.IDKey(
		[]byte(secret),
		salt,
		1,
		64*1024, // 64 MiB
		4,
		32, // 256 bits
	)

	return &sealerService{key: key}, nil
}

// Seal implements [PayloadSealer]. It marshals payload to JSON, then
// encrypts it with the sealing key using AES-256-GCM. The output is a
// Base64 (standard encoding) string of the blob: nonce (12 bytes) ‖
// ciphertext. Returns an error if marshalling, cipher creation, or nonce
// generation fails.
func (s *sealerService) Seal(payload any) (string, error) {
	// 1. Serialize to JSON
	plaintext, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal payload: %w", err)
	}

	// 2. Build AES-GCM cipher from the sealing key
	block, err := aes.NewCipher(s.key)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("create gcm: %w", err)
	}

	// 3. Generate a random nonce
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	// 4. Encrypt: nonce || ciphertext
	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)
	blob := append(nonce, ciphertext...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Open implements [PayloadSealer]. It Base64-decodes blob, splits out the
// nonce, decrypts the ciphertext with the sealing key via AES-256-GCM, and
// unmarshals the resulting JSON into target. target must be a non-nil
// pointer, identical to the requirement of [encoding/json.Unmarshal].
// Returns an error if any step (decoding, cipher creation, decryption, or
// unmarshalling) fails.
func (s *sealerService) Open(blob string, target any) error {
	// 1. Decode base64 blob
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return fmt.Errorf("decode base64: %w", err)
	}

	// 2. Build AES-GCM cipher from the sealing key
	block, err := aes.NewCipher(s.key)
	if err != nil {
		return fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return fmt.Errorf("create gcm: %w", err)
	}

	// 3. Split the blob into nonce and actual ciphertext
	nonceSize := gcm.NonceSize()
	if len(raw) < nonceSize {
		return fmt.Errorf("sealed blob too short")
	}
	nonce, ciphertext := raw[:nonceSize], raw[nonceSize:]

	// 4. Decrypt and verify auth tag. An error here almost always means
	// the blob was sealed under a different secret or salt.
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return fmt.Errorf("open sealed blob: %w", err)
	}

	// 5. Unmarshal into the caller's structure
	if err := json.Unmarshal(plaintext, target); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	return nil
}
