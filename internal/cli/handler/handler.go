// Package handler provides command execution abstraction to reduce boilerplate
package handler

import (
	"context"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tally/internal/cli"
)

// Handler defines the interface for command execution
type Handler interface {
	// Execute runs the command against the board of the selected session
	Execute(ctx context.Context, c *cli.CLI, args *Arguments) (any, error)
}

// HandlerFunc adapts a function to Handler
type HandlerFunc func(ctx context.Context, c *cli.CLI, args *Arguments) (any, error)

// Execute calls f
func (f HandlerFunc) Execute(ctx context.Context, c *cli.CLI, args *Arguments) (any, error) {
	return f(ctx, c, args)
}

// Arguments captures the selected session and positional arguments
type Arguments struct {
	Session string
	Args    []string
	cmd     *cobra.Command
}

// GetCmd returns the cobra command for access to flag parsing utilities
func (a *Arguments) GetCmd() *cobra.Command {
	return a.cmd
}

// GetBool retrieves a bool flag
func (a *Arguments) GetBool(name string) bool {
	v, _ := a.cmd.Flags().GetBool(name)
	return v
}

// GetStringArray retrieves a repeatable string flag
func (a *Arguments) GetStringArray(name string) []string {
	v, _ := a.cmd.Flags().GetStringArray(name)
	return v
}

// Mode says whether a command writes the session back
type Mode int

const (
	// ReadOnly commands leave the stored session untouched
	ReadOnly Mode = iota
	// Mutating commands save the board after the handler succeeds
	Mutating
)

// SessionCommand wraps common command execution logic: it loads the session named
// by --session, runs the handler, saves the board for Mutating commands and prints
// the result.
// Returns a cobra RunE compatible function
func SessionCommand(h Handler, mode Mode) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		formatter := cli.FormatterFromFlags(cmd)

		session, err := cli.GetSession(cmd)
		if err != nil {
			return formatter.Fail(err)
		}

		cliInstance, err := cli.GetCLIFromContext(ctx)
		if err != nil {
			return formatter.Fail(err)
		}
		defer func() {
			if err := cliInstance.Close(); err != nil {
				log.Printf("Error closing CLI: %v", err)
			}
		}()

		if err := cliInstance.LoadSession(ctx, session); err != nil {
			return formatter.Fail(err)
		}

		result, err := h.Execute(ctx, cliInstance, &Arguments{Session: session, Args: args, cmd: cmd})
		if err != nil {
			return formatter.Fail(err)
		}

		if mode == Mutating {
			if err := cliInstance.SaveSession(ctx, session); err != nil {
				return formatter.Fail(err)
			}
		}

		return formatter.Success(result)
	}
}
