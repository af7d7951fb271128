package events

import (
	"sort"
	"strings"
	"sync"

	observable "github.com/GianlucaGuarini/go-observable"
	"github.com/iov-one/voting"
)

// All is the kind that subscribes to every notification.
const All = "any"

// wildcard is the observable's own catch all namespace. It fires for every
// triggered name, so it is mapped to All.
const wildcard = "*"

// Feed dispatches notifications to subscribers. Subscribers are called
// synchronously, in subscription order, from the goroutine that publishes.
// A subscriber may publish, subscribe or cancel subscriptions.
type Feed struct {
	ob *observable.Observable

	mu   sync.Mutex
	next uint64
	subs map[string]map[uint64]func(voting.Event)
}

// NewFeed returns a feed without subscribers.
func NewFeed() *Feed {
	return &Feed{
		ob:   observable.New(),
		subs: make(map[string]map[uint64]func(voting.Event)),
	}
}

// Subscribe registers fn to be called with every published notification of
// given kind. Use All to receive all notifications. Returned function
// cancels the subscription and can be called many times.
func (f *Feed) Subscribe(kind string, fn func(voting.Event)) (cancel func()) {
	kind = strings.TrimSpace(kind)
	if kind == wildcard {
		kind = All
	}

	f.mu.Lock()
	subs, ok := f.subs[kind]
	if !ok {
		subs = make(map[uint64]func(voting.Event))
		f.subs[kind] = subs
	}
	f.next++
	id := f.next
	subs[id] = fn
	f.mu.Unlock()

	// One observer per kind. It is never removed, an empty subscription
	// set is cheap to dispatch to. Registering must happen without holding
	// the feed lock, because the observable holds its own lock while
	// dispatching.
	if !ok {
		f.ob.On(kind, f.collector(kind))
	}

	return func() {
		f.mu.Lock()
		delete(f.subs[kind], id)
		f.mu.Unlock()
	}
}

// Publish notifies subscribers about given notifications, in order.
//
// The observable only selects the subscribers while it is locked. They are
// called after it returns, so that a subscriber can reenter the feed.
func (f *Feed) Publish(evs ...voting.Event) {
	for _, ev := range evs {
		var d delivery
		f.ob.Trigger(ev.Kind(), ev, &d)
		f.ob.Trigger(All, ev, &d)
		for _, fn := range d.fns {
			fn(ev)
		}
	}
}

// delivery collects subscribers of a single notification.
type delivery struct {
	fns []func(voting.Event)
}

func (f *Feed) collector(kind string) func(...interface{}) {
	return func(args ...interface{}) {
		if len(args) != 2 {
			return
		}
		d, ok := args[1].(*delivery)
		if !ok {
			return
		}
		d.fns = append(d.fns, f.subscribers(kind)...)
	}
}

// subscribers returns a snapshot, so that a subscriber can cancel itself
// while being called.
func (f *Feed) subscribers(kind string) []func(voting.Event) {
	f.mu.Lock()
	defer f.mu.Unlock()

	subs := f.subs[kind]
	ids := make([]uint64, 0, len(subs))
	for id := range subs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	fns := make([]func(voting.Event), len(ids))
	for i, id := range ids {
		fns[i] = subs[id]
	}
	return fns
}
