// Package crypto encrypts OAuth tokens at rest.
package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

const minSecretLength = 16

var ErrMalformedCiphertext = errors.New("malformed ciphertext")

// TokenCipher encrypts and decrypts OAuth token strings with
// ChaCha20-Poly1305. The AEAD key is derived from a process-wide secret via
// HKDF-SHA256. Ciphertext is base64(nonce || sealed).
type TokenCipher struct {
	key []byte
}

// NewTokenCipher derives the cipher key from the configured secret. A missing
// or short secret is a startup failure; there is no plaintext fallback.
func NewTokenCipher(secret string) (*TokenCipher, error) {
	if len(secret) < minSecretLength {
		return nil, fmt.Errorf("token secret must be at least %d characters", minSecretLength)
	}

	kdf := hkdf.New(sha256.New, []byte(secret), []byte("reputaai-token-cipher"), []byte("encryption-key"))
	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, fmt.Errorf("failed to derive encryption key: %w", err)
	}

	return &TokenCipher{key: key}, nil
}

// Encrypt seals the plaintext with a random nonce.
func (c *TokenCipher) Encrypt(plaintext string) (string, error) {
	aead, err := chacha20poly1305.New(c.key)
	if err != nil {
		return "", fmt.Errorf("failed to create cipher: %w", err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt opens a ciphertext produced by Encrypt. Any tampering or
// truncation yields ErrMalformedCiphertext.
func (c *TokenCipher) Decrypt(ciphertext string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: invalid base64", ErrMalformedCiphertext)
	}

	aead, err := chacha20poly1305.New(c.key)
	if err != nil {
		return "", fmt.Errorf("failed to create cipher: %w", err)
	}

	if len(raw) < aead.NonceSize() {
		return "", fmt.Errorf("%w: too short", ErrMalformedCiphertext)
	}

	nonce, sealed := raw[:aead.NonceSize()], raw[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("%w: authentication failed", ErrMalformedCiphertext)
	}

	return string(plaintext), nil
}
