package app

import (
	"reflect"

	"github.com/iov-one/voting"
)

// Decorators holds a chain of decorators, not yet resolved by a Handler
type Decorators struct {
	chain []voting.Decorator
}

/*
ChainDecorators takes a chain of decorators,
and upon adding a final Handler (often a Router),
returns a Handler that will execute this whole stack.

  app.ChainDecorators(
    utils.NewLogging(),
    utils.NewRecovery(),
    utils.NewMetrics(m),
    utils.NewSavepoint().OnDeliver(),
  ).WithHandler(
    router,
  )
*/
func ChainDecorators(chain ...voting.Decorator) Decorators {
	return Decorators{}.Chain(chain...)
}

// Chain allows us to keep adding more Decorators to the chain
func (d Decorators) Chain(chain ...voting.Decorator) Decorators {
	newChain := make([]voting.Decorator, 0, len(d.chain)+len(chain))
	newChain = append(newChain, d.chain...)
	for _, dc := range chain {
		if isNil(dc) {
			continue
		}
		newChain = append(newChain, dc)
	}
	return Decorators{chain: newChain}
}

func isNil(d voting.Decorator) bool {
	if d == nil {
		return true
	}
	v := reflect.ValueOf(d)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// WithHandler resolves the stack and returns a concrete Handler
// that will pass through the chain of decorators before calling
// the final Handler.
func (d Decorators) WithHandler(h voting.Handler) voting.Handler {
	// Wrap from the last decorator to the first one, the top of the
	// chain is executed first.
	for i := len(d.chain) - 1; i >= 0; i-- {
		h = step{d: d.chain[i], next: h}
	}
	return h
}

// step captures one step executing a decorator around a
// specific Handler.
type step struct {
	d    voting.Decorator
	next voting.Handler
}

var _ voting.Handler = step{}

// Check passes the handler into the decorator, implements Handler
func (s step) Check(ctx voting.Context, store voting.KVStore, tx voting.Tx) (*voting.CheckResult, error) {
	return s.d.Check(ctx, store, tx, s.next)
}

// Deliver passes the handler into the decorator, implements Handler
func (s step) Deliver(ctx voting.Context, store voting.KVStore, tx voting.Tx) (*voting.DeliverResult, error) {
	return s.d.Deliver(ctx, store, tx, s.next)
}
