package votingtest

import "github.com/iov-one/voting"

// Handler is a mock implementation of the voting.Handler interface.
//
// Set CheckErr or DeliverErr to force error response for corresponding
// method. If Write is set, the key value pair is stored before the result is
// returned, which allows to test the atomicity of the wrapping decorators.
// Each method call is counted.
type Handler struct {
	checkCall   int
	CheckResult voting.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult voting.DeliverResult
	DeliverErr    error

	// Write, if not nil, is stored in the database on every call.
	Write *KeyValue

	// Panic, if not empty, is the value the handler panics with.
	Panic string
}

// KeyValue is a single database entry.
type KeyValue struct {
	Key   []byte
	Value []byte
}

var _ voting.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx voting.Context, db voting.KVStore, tx voting.Tx) (*voting.CheckResult, error) {
	h.checkCall++
	if err := h.act(db); err != nil {
		return nil, err
	}
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx voting.Context, db voting.KVStore, tx voting.Tx) (*voting.DeliverResult, error) {
	h.deliverCall++
	if err := h.act(db); err != nil {
		return nil, err
	}
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) act(db voting.KVStore) error {
	if h.Write != nil {
		if err := db.Set(h.Write.Key, h.Write.Value); err != nil {
			return err
		}
	}
	if h.Panic != "" {
		panic(h.Panic)
	}
	return nil
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}
