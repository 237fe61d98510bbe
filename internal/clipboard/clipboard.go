// Package clipboard copies text to the user's clipboard, falling back to an
// OSC 52 terminal escape when the OS clipboard is unreachable.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"

	sysclip "github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"

	"github.com/rishabh06704/getdaysleft/internal/log"
)

// ErrUnavailable is returned when no copy mechanism worked.
var ErrUnavailable = errors.New("clipboard unavailable")

// Clipboard defines the interface for clipboard operations.
type Clipboard interface {
	Copy(text string) error
}

// Mechanism is one way of putting text on the clipboard.
type Mechanism func(text string) error

// System copies with the OS clipboard first and OSC 52 second. Over SSH,
// tmux or screen the OS clipboard belongs to the wrong machine, so OSC 52 is
// used directly.
type System struct {
	Primary  Mechanism
	Fallback Mechanism
	// Remote reports whether the session is remote or multiplexed.
	Remote func() bool
}

// NewSystem returns a clipboard writing OSC 52 sequences to out.
func NewSystem(out io.Writer) *System {
	if out == nil {
		out = os.Stderr
	}
	return &System{
		Primary:  osClipboard,
		Fallback: OSC52(out),
		Remote:   shouldUseOSC52,
	}
}

// Copy implements Clipboard.
func (s *System) Copy(text string) error {
	var primaryErr error
	if s.Remote != nil && s.Remote() {
		primaryErr = errors.New("remote session")
	} else if s.Primary != nil {
		if primaryErr = s.Primary(text); primaryErr == nil {
			return nil
		}
	} else {
		primaryErr = errors.New("no primary mechanism")
	}
	log.Debug(log.CatClipboard, "primary clipboard skipped", "reason", primaryErr)

	if s.Fallback == nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, primaryErr)
	}
	if err := s.Fallback(text); err != nil {
		return fmt.Errorf("%w: primary: %v, fallback: %v", ErrUnavailable, primaryErr, err)
	}
	return nil
}

func osClipboard(text string) error {
	if sysclip.Unsupported {
		return errors.New("no system clipboard utility found")
	}
	return sysclip.WriteAll(text)
}

// OSC52 returns a mechanism that writes an OSC 52 copy sequence to out,
// wrapped for tmux or screen when running inside one.
func OSC52(out io.Writer) Mechanism {
	return func(text string) error {
		seq := osc52.New(text)
		switch {
		case os.Getenv("TMUX") != "":
			seq = seq.Tmux()
		case os.Getenv("STY") != "":
			seq = seq.Screen()
		}
		if _, err := seq.WriteTo(out); err != nil {
			return fmt.Errorf("writing osc52 sequence: %w", err)
		}
		return nil
	}
}

// shouldUseOSC52 reports whether we are in an SSH session or a terminal
// multiplexer.
func shouldUseOSC52() bool {
	for _, key := range []string{"SSH_TTY", "SSH_CLIENT", "SSH_CONNECTION", "TMUX", "STY"} {
		if os.Getenv(key) != "" {
			return true
		}
	}
	return false
}

// Mock records copied text. Err, when set, is returned from Copy.
type Mock struct {
	Copied []string
	Err    error
}

// Copy implements Clipboard.
func (m *Mock) Copy(text string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Copied = append(m.Copied, text)
	return nil
}
