package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Relay adapts the coordinator's Notifier port to bubbletea messages.
// Coordinator mutations run inside tea.Cmd goroutines, so notifications
// can arrive before the program pointer exists; those are buffered and
// replayed on Attach.
type Relay struct {
	mu      sync.Mutex
	program *tea.Program
	backlog []MsgFlash
}

// NewRelay creates a detached relay.
func NewRelay() *Relay {
	return &Relay{}
}

// Attach binds the relay to a running program and flushes the backlog.
func (r *Relay) Attach(p *tea.Program) {
	r.mu.Lock()
	r.program = p
	backlog := r.backlog
	r.backlog = nil
	r.mu.Unlock()
	for _, msg := range backlog {
		p.Send(msg)
	}
}

// Info implements domain.Notifier.
func (r *Relay) Info(msg string) {
	r.send(MsgFlash{Text: msg})
}

// Error implements domain.Notifier.
func (r *Relay) Error(msg string) {
	r.send(MsgFlash{Text: msg, IsError: true})
}

func (r *Relay) send(flash MsgFlash) {
	r.mu.Lock()
	p := r.program
	if p == nil {
		r.backlog = append(r.backlog, flash)
		r.mu.Unlock()
		return
	}
	r.mu.Unlock()
	p.Send(flash)
}
