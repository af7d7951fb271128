/*
We pass context through context.Context between the ledger, decorators and
handlers. This file defines the keys used to store information shared by all
extensions, such as the logger or the height of the ledger.

There should exist two functions for every XYZ of type T
that we want to support in Context:

  WithXYZ(Context, T) Context
  GetXYZ(Context) (val T, ok bool)

WithXYZ panics if the value was previously set to avoid lower-level modules
overwriting the value.
*/

package voting

import (
	"context"
	"fmt"
	"regexp"

	"github.com/tendermint/tendermint/libs/log"
)

// Context is just an alias for the standard implementation.
// We use functions to extend it to our domain.
type Context = context.Context

type contextKey int

const (
	contextKeyLogger contextKey = iota
	contextKeyHeight
	contextKeyChainID
)

var (
	// DefaultLogger is used for all context that have not
	// set anything themselves.
	DefaultLogger = log.NewNopLogger()

	// IsValidChainID is the RegExp to ensure valid chain IDs.
	IsValidChainID = regexp.MustCompile(`^[a-zA-Z0-9_\-]{6,20}$`).MatchString
)

// WithLogger sets the logger for this context.
func WithLogger(ctx Context, logger log.Logger) Context {
	return context.WithValue(ctx, contextKeyLogger, logger)
}

// GetLogger returns the currently set logger, or
// DefaultLogger if none was set.
func GetLogger(ctx Context) log.Logger {
	val, ok := ctx.Value(contextKeyLogger).(log.Logger)
	if !ok {
		return DefaultLogger
	}
	return val
}

// WithLogInfo accepts keyvalue pairs, and returns another
// context like this, after passing all the keyvals to the
// Logger.
func WithLogInfo(ctx Context, keyvals ...interface{}) Context {
	logger := GetLogger(ctx).With(keyvals...)
	return WithLogger(ctx, logger)
}

// WithHeight sets the height of the ledger: the number of operations
// committed before the one being processed.
func WithHeight(ctx Context, height int64) Context {
	if _, ok := GetHeight(ctx); ok {
		panic("Height already set")
	}
	return context.WithValue(ctx, contextKeyHeight, height)
}

// GetHeight returns the current ledger height.
func GetHeight(ctx Context) (int64, bool) {
	val, ok := ctx.Value(contextKeyHeight).(int64)
	return val, ok
}

// WithChainID sets the identifier of the ledger instance.
func WithChainID(ctx Context, chainID string) Context {
	if ctx.Value(contextKeyChainID) != nil {
		panic("Chain ID already set")
	}
	if !IsValidChainID(chainID) {
		panic(fmt.Sprintf("Invalid chain ID: %q", chainID))
	}
	return context.WithValue(ctx, contextKeyChainID, chainID)
}

// GetChainID returns the identifier of the ledger instance, or an empty
// string if it was not set.
func GetChainID(ctx Context) string {
	val, _ := ctx.Value(contextKeyChainID).(string)
	return val
}
