// Package clipboard hands exported row text to the user's clipboard. It tries the
// system clipboard first and falls back to an OSC 52 terminal escape sequence.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// Method names the mechanism that performed a copy
type Method string

const (
	MethodNone   Method = ""
	MethodSystem Method = "system"
	MethodOSC52  Method = "osc52"
)

var (
	ErrUnsupported = errors.New("clipboard not supported on this system")
	ErrNoCopier    = errors.New("no clipboard mechanism configured")
)

// Copier writes text to a clipboard
type Copier interface {
	Copy(text string) error
}

// CopierFunc adapts a function to the Copier interface
type CopierFunc func(text string) error

func (f CopierFunc) Copy(text string) error { return f(text) }

// System copies through the OS clipboard (pbcopy, xclip, wl-copy, ...)
type System struct{}

func (System) Copy(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}

// OSC52 asks the terminal to set the clipboard. It works over SSH but the terminal
// may silently ignore it, so it is only used as a fallback.
type OSC52 struct {
	Out  io.Writer
	Tmux bool
}

// NewOSC52 writes to stderr, wrapping for tmux when running inside it
func NewOSC52() OSC52 {
	return OSC52{Out: os.Stderr, Tmux: os.Getenv("TMUX") != ""}
}

func (o OSC52) Copy(text string) error {
	if o.Out == nil {
		return ErrUnsupported
	}
	seq := osc52.New(text)
	if o.Tmux {
		seq = seq.Tmux()
	}
	if _, err := seq.WriteTo(o.Out); err != nil {
		return fmt.Errorf("failed to write osc52 sequence: %w", err)
	}
	return nil
}

type step struct {
	method Method
	copier Copier
}

// Exporter tries each mechanism in order until one succeeds
type Exporter struct {
	steps []step
}

// NewExporter builds the default chain: system clipboard, then OSC 52
func NewExporter() *Exporter {
	return &Exporter{steps: []step{
		{MethodSystem, System{}},
		{MethodOSC52, NewOSC52()},
	}}
}

// NewExporterWith builds an exporter with a custom primary and fallback
func NewExporterWith(primary, fallback Copier) *Exporter {
	e := &Exporter{}
	if primary != nil {
		e.steps = append(e.steps, step{MethodSystem, primary})
	}
	if fallback != nil {
		e.steps = append(e.steps, step{MethodOSC52, fallback})
	}
	return e
}

// Copy returns the method that succeeded, or a joined error of every failure
func (e *Exporter) Copy(text string) (Method, error) {
	if e == nil || len(e.steps) == 0 {
		return MethodNone, ErrNoCopier
	}
	var errs []error
	for _, s := range e.steps {
		err := s.copier.Copy(text)
		if err == nil {
			return s.method, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", s.method, err))
	}
	return MethodNone, errors.Join(errs...)
}
