package votingtest

import "github.com/iov-one/voting"

// Decorator is a mock implementation of the voting.Decorator interface.
//
// Set CheckErr or DeliverErr to force error response for corresponding method.
// If error attributes are not set then wrapped handler method is called and
// its result returned.
// Each method call is counted. Regardless of the method call result the
// counter is incremented.
type Decorator struct {
	checkCall int
	// CheckErr if set is returned by the Check method before calling
	// the wrapped handler.
	CheckErr error

	deliverCall int
	// DeliverErr if set is returned by the Deliver method before calling
	// the wrapped handler.
	DeliverErr error
}

var _ voting.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx voting.Context, db voting.KVStore, tx voting.Tx, next voting.Checker) (*voting.CheckResult, error) {
	d.checkCall++

	if d.CheckErr != nil {
		return nil, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx voting.Context, db voting.KVStore, tx voting.Tx, next voting.Deliverer) (*voting.DeliverResult, error) {
	d.deliverCall++

	if d.DeliverErr != nil {
		return nil, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}

func (d *Decorator) CheckCallCount() int {
	return d.checkCall
}

func (d *Decorator) DeliverCallCount() int {
	return d.deliverCall
}

func (d *Decorator) CallCount() int {
	return d.checkCall + d.deliverCall
}

// Decorate returns a handler that calls given decorator around given
// handler.
func Decorate(h voting.Handler, d voting.Decorator) voting.Handler {
	return &decoratedHandler{hn: h, dc: d}
}

type decoratedHandler struct {
	hn voting.Handler
	dc voting.Decorator
}

var _ voting.Handler = (*decoratedHandler)(nil)

func (d *decoratedHandler) Check(ctx voting.Context, db voting.KVStore, tx voting.Tx) (*voting.CheckResult, error) {
	return d.dc.Check(ctx, db, tx, d.hn)
}

func (d *decoratedHandler) Deliver(ctx voting.Context, db voting.KVStore, tx voting.Tx) (*voting.DeliverResult, error) {
	return d.dc.Deliver(ctx, db, tx, d.hn)
}
