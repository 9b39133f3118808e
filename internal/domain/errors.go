package domain

import "errors"

// Domain errors.
var (
	ErrEmptyTitle       = errors.New("title cannot be empty")
	ErrEventNotFound    = errors.New("event not found")
	ErrTaskNotFound     = errors.New("task not found")
	ErrCalendarNotFound = errors.New("calendar not found")
	ErrGroupNotFound    = errors.New("task group not found")
	ErrNoCalendar       = errors.New("no calendar exists to attach the event to")
	ErrNoGroup          = errors.New("no task group exists to attach the task to")
	ErrNoFieldsToUpdate = errors.New("no fields to update")
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidTime      = errors.New("invalid time, expected HH:MM")
	ErrStaleResponse    = errors.New("stale remote response discarded")
	ErrRemoteDuplicate  = errors.New("duplicate task may remain on the server")
)

// RemoteError is a rejection reported by the backend. Status carries the
// HTTP status code; Message the backend's error payload when present.
type RemoteError struct {
	Message string
	Status  int
}

func (e *RemoteError) Error() string {
	return e.Message
}

// ShapeRejection reports whether the backend rejected the request's verb
// or payload shape rather than failing on it, which is the signal to try
// an alternate verb or the compensating create/delete sequence.
func (e *RemoteError) ShapeRejection() bool {
	switch e.Status {
	case 400, 404, 405, 422:
		return true
	}
	return false
}

// AsRemoteError unwraps err as a *RemoteError, or nil.
func AsRemoteError(err error) *RemoteError {
	var re *RemoteError
	if errors.As(err, &re) {
		return re
	}
	return nil
}
