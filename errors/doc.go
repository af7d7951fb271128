/*
Package errors implements the coded errors used by the voting ledger.

Every rejection wraps one root error declared with Register. The root error
tells the kind of the failure (ErrUnauthorized, ErrPhase, ...), while the
wrapping layers carry the message shown to the caller:

	return errors.Wrap(errors.ErrUnauthorized, "You're not a voter")

Test for the kind with Is:

	if errors.ErrDuplicateVote.Is(err) { ... }

The most inner Wrap attaches a stack trace. Use %+v to print it.
*/
package errors
