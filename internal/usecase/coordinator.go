// Package usecase contains the optimistic mutation coordinator: every
// user-initiated mutation is applied to the store immediately, sent to
// the backend, and then either reconciled with the server's canonical
// representation or rolled back.
package usecase

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/TomasUhiaOtero/Kairos/internal/domain"
	"github.com/TomasUhiaOtero/Kairos/internal/store"
)

// Coordinator orchestrates mutations against the shared store and the
// remote API. It serializes mutations per id: a second mutation for an
// id waits until the first one is confirmed or rolled back, so an old
// rollback can never clobber a newer optimistic value.
type Coordinator struct {
	store  *store.Store
	remote domain.RemoteAPI
	notify domain.Notifier
	userID string

	guard idGuard

	// aliases maps temporary ids to the durable ids that replaced them,
	// so a mutation issued against a not-yet-confirmed item finds its
	// durable target once the create round-trip completes.
	aliasMu sync.Mutex
	aliases map[string]string
}

// NewCoordinator creates a coordinator bound to a store, a remote API
// and a notifier. userID scopes the task endpoints.
func NewCoordinator(st *store.Store, remote domain.RemoteAPI, notify domain.Notifier, userID string) *Coordinator {
	return &Coordinator{
		store:   st,
		remote:  remote,
		notify:  notify,
		userID:  userID,
		aliases: make(map[string]string),
	}
}

// Store returns the shared store, for read-only projection.
func (c *Coordinator) Store() *store.Store {
	return c.store
}

// resolve follows the temporary-to-durable alias chain for an id.
func (c *Coordinator) resolve(id string) string {
	c.aliasMu.Lock()
	defer c.aliasMu.Unlock()
	for {
		next, ok := c.aliases[id]
		if !ok {
			return id
		}
		id = next
	}
}

// recordAlias remembers that tempID was promoted to durableID.
func (c *Coordinator) recordAlias(tempID, durableID string) {
	c.aliasMu.Lock()
	defer c.aliasMu.Unlock()
	c.aliases[tempID] = durableID
}

// fail logs a failed mutation, emits the user-facing notification and
// returns err. The backend's message is appended when it carries one.
func (c *Coordinator) fail(op, userMsg string, err error) error {
	log.Error().Err(err).Str("op", op).Msg("mutation failed, rolled back")
	if re := domain.AsRemoteError(err); re != nil && re.Message != "" {
		userMsg += ": " + re.Message
	}
	c.notify.Error(userMsg)
	return err
}

// idGuard serializes in-flight mutations per id.
type idGuard struct {
	mu      sync.Mutex
	entries map[string]*guardEntry
}

type guardEntry struct {
	mu   sync.Mutex
	refs int
}

// acquire blocks until no mutation is in flight for id and returns the
// release function.
func (g *idGuard) acquire(id string) func() {
	g.mu.Lock()
	if g.entries == nil {
		g.entries = make(map[string]*guardEntry)
	}
	e := g.entries[id]
	if e == nil {
		e = &guardEntry{}
		g.entries[id] = e
	}
	e.refs++
	g.mu.Unlock()

	e.mu.Lock()
	return func() {
		e.mu.Unlock()
		g.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(g.entries, id)
		}
		g.mu.Unlock()
	}
}
