package utils

import (
	"github.com/iov-one/voting"
	"github.com/iov-one/voting/errors"
)

// Savepoint will isolate all data inside of the call,
// and commit/rollback to savepoint based on if error
type Savepoint struct {
	onDeliver bool
}

var _ voting.Decorator = Savepoint{}

// NewSavepoint creates a Savepoint decorator,
// but you must call OnDeliver so it will commit delivered operations.
func NewSavepoint() Savepoint {
	return Savepoint{}
}

// OnDeliver returns a savepoint that will commit successful deliveries.
func (s Savepoint) OnDeliver() Savepoint {
	return Savepoint{onDeliver: true}
}

// Check always runs in a scratch cache that is discarded, so that a check
// never modifies the state.
func (s Savepoint) Check(ctx voting.Context, store voting.KVStore, tx voting.Tx, next voting.Checker) (*voting.CheckResult, error) {
	cstore, ok := store.(voting.CacheableKVStore)
	if !ok {
		return nil, errors.Wrapf(errors.ErrHuman, "%T store is not cacheable", store)
	}
	cache := cstore.CacheWrap()
	defer cache.Discard()
	return next.Check(ctx, cache, tx)
}

// Deliver will optionally set a checkpoint
func (s Savepoint) Deliver(ctx voting.Context, store voting.KVStore, tx voting.Tx, next voting.Deliverer) (*voting.DeliverResult, error) {
	if !s.onDeliver {
		return next.Deliver(ctx, store, tx)
	}

	cstore, ok := store.(voting.CacheableKVStore)
	if !ok {
		return next.Deliver(ctx, store, tx)
	}

	cache := cstore.CacheWrap()
	res, err := next.Deliver(ctx, cache, tx)
	if err != nil {
		cache.Discard()
		return nil, err
	}
	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return res, nil
}
