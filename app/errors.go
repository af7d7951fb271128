package app

import "github.com/iov-one/voting/errors"

// ErrNoSuchPath is returned when a message is routed to a path that no
// handler is registered for.
var ErrNoSuchPath = errors.Register(200, "no such path")
