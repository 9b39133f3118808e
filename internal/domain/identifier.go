package domain

import (
	"math/rand"
	"strconv"
	"sync"
	"time"
)

// Identifiers are always handled as strings. Durable ids are the string
// form of server-assigned integers; temporary ids are client-generated
// placeholders that contain a "." separator, so the two spaces never
// overlap and comparisons never miss on string/number mismatches.

var tempIDGen struct {
	mu     sync.Mutex
	millis int64
	seq    int
}

// NewTemporaryID returns a client-generated identifier guaranteed not to
// collide with any durable id and unique across calls. The format is
// "<unix-millis>.<random><seq>".
func NewTemporaryID() string {
	tempIDGen.mu.Lock()
	defer tempIDGen.mu.Unlock()

	now := time.Now().UnixMilli()
	if now == tempIDGen.millis {
		tempIDGen.seq++
	} else {
		tempIDGen.millis = now
		tempIDGen.seq = 0
	}
	return strconv.FormatInt(now, 10) + "." +
		strconv.Itoa(100+rand.Intn(900)) + strconv.Itoa(tempIDGen.seq)
}

// IsTemporary reports whether id is a client-generated placeholder.
// Durable ids are plain non-negative integers in string form; anything
// else (empty included) is treated as temporary and must never be sent
// to the backend as a path parameter.
func IsTemporary(id string) bool {
	if id == "" {
		return true
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return true
		}
	}
	return false
}
