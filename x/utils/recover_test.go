package utils

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/iov-one/voting"
	"github.com/iov-one/voting/errors"
	"github.com/iov-one/voting/store"
	"github.com/iov-one/voting/votingtest"
	"github.com/iov-one/voting/votingtest/assert"
	"github.com/tendermint/tendermint/libs/log"
)

func TestRecovery(t *testing.T) {
	var logs bytes.Buffer
	ctx := voting.WithLogger(context.Background(), log.NewTMLogger(&logs))
	db := store.MemStore()
	tx := voting.NewTx(votingtest.NewAddress(), &votingtest.Msg{RoutePath: "test/boom"})

	h := &votingtest.Handler{Panic: "boom"}
	assert.Panics(t, func() { _, _ = h.Check(ctx, db, tx) })
	assert.Panics(t, func() { _, _ = h.Deliver(ctx, db, tx) })

	r := NewRecovery()
	_, err := r.Check(ctx, db, tx, h)
	assert.IsErr(t, errors.ErrPanic, err)
	_, err = r.Deliver(ctx, db, tx, h)
	assert.IsErr(t, errors.ErrPanic, err)

	if !strings.Contains(err.Error(), "boom") {
		t.Fatalf("panic value not in error: %q", err)
	}
	if n := strings.Count(logs.String(), "path=test/boom"); n != 2 {
		t.Fatalf("want two panic logs, got %d: %s", n, logs.String())
	}
}

func TestRecoveryPassThrough(t *testing.T) {
	ctx := context.Background()
	db := store.MemStore()

	h := &votingtest.Handler{DeliverErr: errors.ErrDuplicateVote.New("again")}
	_, err := NewRecovery().Deliver(ctx, db, nil, h)
	assert.IsErr(t, errors.ErrDuplicateVote, err)

	h = &votingtest.Handler{}
	_, err = NewRecovery().Check(ctx, db, nil, h)
	assert.Nil(t, err)
	assert.Equal(t, 1, h.CheckCallCount())
}
