package events

import (
	"sync"

	"github.com/iov-one/voting"
)

// Log is an append-only list of notifications, in commit order.
type Log struct {
	mu     sync.RWMutex
	events []voting.Event
}

// NewLog returns an empty log.
func NewLog() *Log {
	return &Log{}
}

// Append adds notifications at the end of the log.
func (l *Log) Append(evs ...voting.Event) {
	l.mu.Lock()
	l.events = append(l.events, evs...)
	l.mu.Unlock()
}

// All returns a copy of all notifications.
func (l *Log) All() []voting.Event {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]voting.Event, len(l.events))
	copy(out, l.events)
	return out
}

// Kind returns all notifications of given kind.
func (l *Log) Kind(kind string) []voting.Event {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []voting.Event
	for _, ev := range l.events {
		if ev.Kind() == kind {
			out = append(out, ev)
		}
	}
	return out
}
