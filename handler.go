package voting

// Handler is a core engine that can process a few specific messages.
// This could represent "enroll a voter", or "cast a vote".
type Handler interface {
	Checker
	Deliverer
}

// Checker is a subset of Handler to verify the validity of a transaction.
// It must not have any side effect that outlives the call, the caller is
// expected to discard all writes made during a check.
type Checker interface {
	Check(ctx Context, store KVStore, tx Tx) (*CheckResult, error)
}

// Deliverer is a subset of Handler to execute a transaction.
type Deliverer interface {
	Deliver(ctx Context, store KVStore, tx Tx) (*DeliverResult, error)
}

// Decorator wraps a Handler to provide common functionality
// like logging or atomic writes, to many Handlers.
type Decorator interface {
	Check(ctx Context, store KVStore, tx Tx, next Checker) (*CheckResult, error)
	Deliver(ctx Context, store KVStore, tx Tx, next Deliverer) (*DeliverResult, error)
}

// Registry is an interface to register your handler,
// the setup side of a Router.
type Registry interface {
	Handle(path string, h Handler)
}

// CheckResult captures any non-error check result.
type CheckResult struct {
	// Log is human-readable informational string
	Log string
}

// DeliverResult captures any non-error result of processing a
// transaction.
type DeliverResult struct {
	// Data is a machine-parseable return value, like id of created entity
	Data []byte
	// Log is human-readable informational string
	Log string
	// Events lists all notifications caused by the transaction, in the
	// order they happened. They become visible to subscribers only after
	// the transaction is committed.
	Events []Event
}
