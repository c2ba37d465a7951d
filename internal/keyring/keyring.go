// Package keyring stores the profile lock PIN in the OS keyring so it never
// touches the data file.
package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/plenoapp/pleno/internal/constants"
)

var (
	// ErrNotFound is returned when no PIN is stored in the keyring
	ErrNotFound = errors.New("PIN not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetPIN retrieves the profile lock PIN from the OS keyring. Returns
// ErrNotFound when no PIN is set.
func GetPIN() (string, error) {
	pin, err := keyring.Get(constants.AppName, constants.KeyringPinUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return pin, nil
}

// SetPIN stores the profile lock PIN in the OS keyring.
func SetPIN(pin string) error {
	if pin == "" {
		return errors.New("PIN cannot be empty")
	}
	if err := keyring.Set(constants.AppName, constants.KeyringPinUser, pin); err != nil {
		return fmt.Errorf("failed to store PIN in keyring: %w", err)
	}
	return nil
}

// DeletePIN removes the profile lock PIN from the OS keyring.
func DeletePIN() error {
	err := keyring.Delete(constants.AppName, constants.KeyringPinUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete PIN from keyring: %w", err)
	}
	return nil
}

// IsAvailable checks if the OS keyring is usable on the current system.
// Best effort: a missing entry still proves the keyring answered.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	return err == nil || err == keyring.ErrNotFound
}
