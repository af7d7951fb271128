package app

import (
	"fmt"
	"regexp"

	"github.com/iov-one/voting"
	"github.com/iov-one/voting/errors"
)

// isPath is the expected format of a message path.
var isPath = regexp.MustCompile(`^[a-zA-Z0-9_/]+$`).MatchString

// Router allows us to register many handlers with different
// paths and then direct each message to the proper handler.
//
// Minimal interface modeled after net/http.ServeMux
type Router struct {
	routes map[string]voting.Handler
}

var _ voting.Registry = (*Router)(nil)
var _ voting.Handler = (*Router)(nil)

// NewRouter returns a new empty router instance.
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]voting.Handler),
	}
}

// Handle adds a new Handler for the given path. This function panics if a
// handler for given path is already registered or the path is malformed.
func (r *Router) Handle(path string, h voting.Handler) {
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path: %q", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("re-registering route: %s", path))
	}
	r.routes[path] = h
}

// Handler returns the registered Handler for this path. If no path is
// found, returns a noSuchPath Handler. Always returns a non-nil Handler.
func (r *Router) Handler(path string) voting.Handler {
	if h, ok := r.routes[path]; ok {
		return h
	}
	return noSuchPathHandler{path: path}
}

// Paths returns all registered paths, in no particular order.
func (r *Router) Paths() []string {
	paths := make([]string, 0, len(r.routes))
	for p := range r.routes {
		paths = append(paths, p)
	}
	return paths
}

// Check dispatches to the proper handler based on path.
func (r *Router) Check(ctx voting.Context, store voting.KVStore, tx voting.Tx) (*voting.CheckResult, error) {
	if _, err := tx.GetMsg(); err != nil {
		return nil, errors.Wrap(err, "cannot load message")
	}
	return r.Handler(voting.GetPath(tx)).Check(ctx, store, tx)
}

// Deliver dispatches to the proper handler based on path.
func (r *Router) Deliver(ctx voting.Context, store voting.KVStore, tx voting.Tx) (*voting.DeliverResult, error) {
	if _, err := tx.GetMsg(); err != nil {
		return nil, errors.Wrap(err, "cannot load message")
	}
	return r.Handler(voting.GetPath(tx)).Deliver(ctx, store, tx)
}

// noSuchPathHandler return errors for every call.
type noSuchPathHandler struct {
	path string
}

var _ voting.Handler = noSuchPathHandler{}

func (h noSuchPathHandler) Check(voting.Context, voting.KVStore, voting.Tx) (*voting.CheckResult, error) {
	return nil, errors.Wrapf(ErrNoSuchPath, "path: %s", h.path)
}

func (h noSuchPathHandler) Deliver(voting.Context, voting.KVStore, voting.Tx) (*voting.DeliverResult, error) {
	return nil, errors.Wrapf(ErrNoSuchPath, "path: %s", h.path)
}
