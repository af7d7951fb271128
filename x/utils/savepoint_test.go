package utils

import (
	"context"
	"testing"

	"github.com/iov-one/voting"
	"github.com/iov-one/voting/errors"
	"github.com/iov-one/voting/store"
	"github.com/iov-one/voting/votingtest"
	"github.com/iov-one/voting/votingtest/assert"
)

func TestSavepoint(t *testing.T) {
	// Always written before calling the decorator.
	ok, ov := []byte("demo"), []byte("data")
	// Key, value the handler tries to write.
	nk, nv := []byte{1, 2, 3}, []byte{4, 5, 6}

	cases := map[string]struct {
		save    voting.Decorator
		handler *votingtest.Handler
		check   bool
		wantErr *errors.Error

		written [][]byte
		missing [][]byte
	}{
		"deliver without savepoint keeps partial writes": {
			save:    NewSavepoint(),
			handler: &votingtest.Handler{Write: &votingtest.KeyValue{Key: nk, Value: nv}, DeliverErr: errors.ErrPhase},
			wantErr: errors.ErrPhase,
			written: [][]byte{ok, nk},
		},
		"failed deliver is rolled back": {
			save:    NewSavepoint().OnDeliver(),
			handler: &votingtest.Handler{Write: &votingtest.KeyValue{Key: nk, Value: nv}, DeliverErr: errors.ErrPhase},
			wantErr: errors.ErrPhase,
			written: [][]byte{ok},
			missing: [][]byte{nk},
		},
		"successful deliver is committed": {
			save:    NewSavepoint().OnDeliver(),
			handler: &votingtest.Handler{Write: &votingtest.KeyValue{Key: nk, Value: nv}},
			written: [][]byte{ok, nk},
		},
		"successful check is discarded": {
			save:    NewSavepoint().OnDeliver(),
			handler: &votingtest.Handler{Write: &votingtest.KeyValue{Key: nk, Value: nv}},
			check:   true,
			written: [][]byte{ok},
			missing: [][]byte{nk},
		},
		"failed check is discarded": {
			save:    NewSavepoint(),
			handler: &votingtest.Handler{Write: &votingtest.KeyValue{Key: nk, Value: nv}, CheckErr: errors.ErrUnauthorized},
			check:   true,
			wantErr: errors.ErrUnauthorized,
			written: [][]byte{ok},
			missing: [][]byte{nk},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			ctx := context.Background()
			kv := store.MemStore()
			assert.Nil(t, kv.Set(ok, ov))

			var err error
			if tc.check {
				_, err = tc.save.Check(ctx, kv, nil, tc.handler)
			} else {
				_, err = tc.save.Deliver(ctx, kv, nil, tc.handler)
			}
			assert.IsErr(t, tc.wantErr, err)

			for _, k := range tc.written {
				has, err := kv.Has(k)
				assert.Nil(t, err)
				assert.Equal(t, true, has)
			}
			for _, k := range tc.missing {
				has, err := kv.Has(k)
				assert.Nil(t, err)
				assert.Equal(t, false, has)
			}
		})
	}
}

func TestSavepointRollsBackPanic(t *testing.T) {
	nk := []byte("key")
	h := &votingtest.Handler{Write: &votingtest.KeyValue{Key: nk, Value: []byte("v")}, Panic: "boom"}

	// Recovery outside of the savepoint, as the ledger chains them.
	stack := votingtest.Decorate(votingtest.Decorate(h, NewSavepoint().OnDeliver()), NewRecovery())

	kv := store.MemStore()
	_, err := stack.Deliver(context.Background(), kv, nil)
	assert.IsErr(t, errors.ErrPanic, err)

	has, err := kv.Has(nk)
	assert.Nil(t, err)
	assert.Equal(t, false, has)
}
