// Package auth provides a high-level API for persisting and retrieving user credentials from the system keyring.
package auth

import (
	"github.com/zalando/go-keyring"
)

const service = "quizthumb"

// SetPassword persists the LMS/IdP secret for the given username to the system keyring.
func SetPassword(username, password string) error {
	return keyring.Set(service, username, password)
}

// GetPassword retrieves the stored secret for the given username from the system keyring.
func GetPassword(username string) (string, error) {
	return keyring.Get(service, username)
}

// DeletePassword removes the stored secret for the given username.
func DeletePassword(username string) error {
	return keyring.Delete(service, username)
}
