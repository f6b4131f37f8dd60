package config

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
)

const masterKeyName = "__master_key__"

// masterKey is swapped out in tests
var masterKey = GetMasterKey

// GetMasterKey retrieves or generates the preset encryption key from the keyring
func GetMasterKey() ([]byte, error) {
	ks, err := NewKeyringStore()
	if err != nil {
		return nil, err
	}

	if keyHex, err := ks.Get(masterKeyName); err == nil {
		return hex.DecodeString(keyHex)
	}

	key := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, err
	}
	if err := ks.Set(masterKeyName, hex.EncodeToString(key)); err != nil {
		return nil, err
	}
	return key, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Encrypt seals a string with AES-GCM and returns nonce||ciphertext as hex
func Encrypt(plainText string, key []byte) (string, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	sealed := gcm.Seal(nonce, nonce, []byte(plainText), []byte(serviceName))
	return hex.EncodeToString(sealed), nil
}

// Decrypt opens a value produced by Encrypt
func Decrypt(cipherTextHex string, key []byte) (string, error) {
	sealed, err := hex.DecodeString(cipherTextHex)
	if err != nil {
		return "", fmt.Errorf("decrypt: %w", err)
	}

	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	n := gcm.NonceSize()
	if len(sealed) < n {
		return "", fmt.Errorf("ciphertext too short")
	}

	plain, err := gcm.Open(nil, sealed[:n], sealed[n:], []byte(serviceName))
	if err != nil {
		return "", fmt.Errorf("decrypt: %w", err)
	}
	return string(plain), nil
}
