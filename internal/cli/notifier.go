package cli

import (
	"fmt"
	"io"
)

// ConsoleNotifier prints coordinator notifications to a writer,
// normally stderr. The CLI is synchronous, so notifications land right
// next to the command that caused them.
type ConsoleNotifier struct {
	Out io.Writer
}

// Info implements domain.Notifier.
func (n *ConsoleNotifier) Info(msg string) {
	_, _ = fmt.Fprintln(n.Out, msg)
}

// Error implements domain.Notifier.
func (n *ConsoleNotifier) Error(msg string) {
	_, _ = fmt.Fprintln(n.Out, "Aviso:", msg)
}
