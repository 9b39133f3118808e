package tui

import "time"

// Msg is the sealed interface for all TUI messages. All message types
// must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgHydrated is sent when the initial remote fetch has replaced the
// store contents.
type MsgHydrated struct{}

func (MsgHydrated) sealed() {}

// MsgMutated is sent after any coordinator mutation settles, success or
// rollback. The view re-reads the store either way.
type MsgMutated struct{}

func (MsgMutated) sealed() {}

// MsgError is sent when an operation fails outright (not a rollback,
// which arrives as a flash through the notifier relay).
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}

// MsgFlash carries a transient notification from the coordinator's
// notifier into the status line.
type MsgFlash struct {
	Text    string
	IsError bool
}

func (MsgFlash) sealed() {}

// MsgClearFlash removes the current flash after its display window.
type MsgClearFlash struct{}

func (MsgClearFlash) sealed() {}

// MsgTick is sent periodically to keep "today" and the clock current.
type MsgTick struct {
	Now time.Time
}

func (MsgTick) sealed() {}
