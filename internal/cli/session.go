package cli

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// SessionEnv names the session commands use when --session is not given
const SessionEnv = "TALLY_SESSION"

var ErrNoSession = errors.New("no session selected")

// AddSessionFlag registers --session on cmd
func AddSessionFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("session", "s", "", "Session to operate on (default $"+SessionEnv+")")
}

// GetSession returns the session named by --session, falling back to $TALLY_SESSION
func GetSession(cmd *cobra.Command) (string, error) {
	if name, _ := cmd.Flags().GetString("session"); strings.TrimSpace(name) != "" {
		return strings.TrimSpace(name), nil
	}
	if name := strings.TrimSpace(os.Getenv(SessionEnv)); name != "" {
		return name, nil
	}
	return "", ErrNoSession
}
