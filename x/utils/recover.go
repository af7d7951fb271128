package utils

import (
	"github.com/iov-one/voting"
	"github.com/iov-one/voting/errors"
)

// Recovery converts a panic raised by any inner handler into an ErrPanic
// rejection. The panic is logged together with the path of the message that
// caused it.
//
// Place it outside of the savepoint so that writes of the panicking
// transaction are discarded.
type Recovery struct{}

var _ voting.Decorator = Recovery{}

func NewRecovery() Recovery {
	return Recovery{}
}

func (Recovery) Check(ctx voting.Context, db voting.KVStore, tx voting.Tx, next voting.Checker) (res *voting.CheckResult, err error) {
	defer recoverTx(ctx, tx, &err)
	return next.Check(ctx, db, tx)
}

func (Recovery) Deliver(ctx voting.Context, db voting.KVStore, tx voting.Tx, next voting.Deliverer) (res *voting.DeliverResult, err error) {
	defer recoverTx(ctx, tx, &err)
	return next.Deliver(ctx, db, tx)
}

// recoverTx must be called directly by defer.
func recoverTx(ctx voting.Context, tx voting.Tx, err *error) {
	r := recover()
	if r == nil {
		return
	}
	*err = errors.Wrapf(errors.ErrPanic, "%v", r)
	path := "(missing)"
	if tx != nil {
		path = voting.GetPath(tx)
	}
	voting.GetLogger(ctx).Error("handler panic", "path", path, "panic", r)
}
