package utils

import (
	"time"

	"github.com/iov-one/voting"
	"github.com/iov-one/voting/errors"
)

// Logging writes a log entry for every processed operation. Each entry
// carries the message path, the caller and the processing time, plus the
// ledger height and chain id when the context has them.
//
// Delivered operations are logged with the info level, rejected ones with
// the error level. Checks are a level lower: successful checks are debug,
// rejected checks are info.
type Logging struct{}

var _ voting.Decorator = Logging{}

func NewLogging() Logging {
	return Logging{}
}

func (Logging) Check(ctx voting.Context, db voting.KVStore, tx voting.Tx, next voting.Checker) (*voting.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, db, tx)
	var msg string
	if res != nil {
		msg = res.Log
	}
	logOperation(ctx, tx, time.Since(start), msg, err, true)
	return res, err
}

func (Logging) Deliver(ctx voting.Context, db voting.KVStore, tx voting.Tx, next voting.Deliverer) (*voting.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, db, tx)
	var msg string
	if res != nil {
		msg = res.Log
	}
	logOperation(ctx, tx, time.Since(start), msg, err, false)
	return res, err
}

func logOperation(ctx voting.Context, tx voting.Tx, took time.Duration, msg string, err error, check bool) {
	keyvals := []interface{}{
		"path", voting.GetPath(tx),
		"caller", tx.Caller(),
		"duration", took / time.Microsecond,
	}
	if h, ok := voting.GetHeight(ctx); ok {
		keyvals = append(keyvals, "height", h)
	}
	if chainID := voting.GetChainID(ctx); chainID != "" {
		keyvals = append(keyvals, "chain_id", chainID)
	}
	logger := voting.GetLogger(ctx).With(keyvals...)

	// An entry is written even if the message is empty. Key values are
	// what matters.
	if err != nil {
		if msg == "" {
			msg = "rejected"
		}
		if check {
			logger.Info(msg, "code", errors.Code(err), "err", err)
		} else {
			logger.Error(msg, "code", errors.Code(err), "err", err)
		}
		return
	}
	if check {
		logger.Debug(msg)
	} else {
		logger.Info(msg)
	}
}
