// Package user resolves who is running tally, recorded as the owner of saved sessions.
package user

import (
	"os"
	"os/user"
	"strings"
)

// OwnerEnv overrides the detected username when set
const OwnerEnv = "TALLY_OWNER"

// GetCurrentUsername returns the name recorded as a session owner.
// Order: TALLY_OWNER, the OS account, USER, then "unknown".
func GetCurrentUsername() string {
	if owner := strings.TrimSpace(os.Getenv(OwnerEnv)); owner != "" {
		return owner
	}

	currentUser, err := user.Current()
	if err == nil && currentUser.Username != "" {
		return currentUser.Username
	}

	if username := os.Getenv("USER"); username != "" {
		return username
	}
	return "unknown"
}
