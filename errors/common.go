package errors

// Ledger rejections. Every caller facing failure of a voting operation wraps
// one of these.
var (
	// ErrUnauthorized is returned when the caller is not the principal the
	// operation requires: either the administrative authority or a
	// registered voter.
	ErrUnauthorized = Register(2, "unauthorized")

	// ErrPhase is returned when the requested action is not allowed in the
	// current workflow phase.
	ErrPhase = Register(3, "phase violation")

	// ErrAlreadyRegistered is returned when a voter is enrolled twice.
	ErrAlreadyRegistered = Register(4, "already registered")

	// ErrDuplicateVote is returned when a voter attempts to vote again.
	ErrDuplicateVote = Register(5, "duplicate vote")

	// ErrProposalNotFound is returned when a proposal identifier is out of
	// bounds.
	ErrProposalNotFound = Register(6, "proposal not found")

	// ErrEmptyProposal is returned when a proposal has no description.
	ErrEmptyProposal = Register(7, "empty proposal")

	// ErrInvalidTransition is returned when a workflow advancement is
	// attempted from a phase that does not allow it.
	ErrInvalidTransition = Register(8, "invalid transition")
)

// Infrastructure errors.
var (
	// ErrInput stands for general input problems indication.
	ErrInput = Register(100, "invalid input")

	// ErrNotFound is used when a requested entity does not exist.
	ErrNotFound = Register(101, "not found")

	// ErrModel is returned whenever a model is invalid and cannot be
	// persisted.
	ErrModel = Register(102, "invalid model")

	// ErrType is returned whenever the type is not what was expected.
	ErrType = Register(103, "invalid type")

	// ErrDatabase is returned when the store fails.
	ErrDatabase = Register(104, "database")

	// ErrHuman is returned when application reaches a code path which should not
	// ever be reached if the code was written as expected by the framework
	ErrHuman = Register(105, "coding error")

	// ErrIteratorDone is returned by an iterator that has no more values.
	ErrIteratorDone = Register(106, "iterator done")

	// ErrPanic is only set when we recover from a panic, so we know to
	// redact potentially sensitive system info
	ErrPanic = Register(111222, "panic")
)
