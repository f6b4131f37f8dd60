package config

import (
	"fmt"

	"github.com/99designs/keyring"
)

const serviceName = "ezscaffold"

// KeyringStore keeps secrets in the system keyring
type KeyringStore struct {
	ring keyring.Keyring
}

// NewKeyringStore opens the keyring for this application
func NewKeyringStore() (*KeyringStore, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName: serviceName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open keyring: %w", err)
	}
	return &KeyringStore{ring: ring}, nil
}

// Set stores a secret
func (k *KeyringStore) Set(key, value string) error {
	return k.ring.Set(keyring.Item{
		Key:   key,
		Data:  []byte(value),
		Label: serviceName + " " + key,
	})
}

// Get retrieves a secret
func (k *KeyringStore) Get(key string) (string, error) {
	item, err := k.ring.Get(key)
	if err != nil {
		return "", fmt.Errorf("secret not found: %s: %w", key, err)
	}
	return string(item.Data), nil
}

// Delete removes a secret
func (k *KeyringStore) Delete(key string) error {
	return k.ring.Remove(key)
}
