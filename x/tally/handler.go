package tally

import (
	"github.com/iov-one/voting"
	"github.com/iov-one/voting/errors"
	"github.com/iov-one/voting/orm"
)

// RegisterRoutes registers handlers for tally message processing.
func RegisterRoutes(r voting.Registry, e Engine) {
	r.Handle(pathTallyMsg, &TallyHandler{engine: e})
}

// TallyHandler closes the round.
type TallyHandler struct {
	engine Engine
}

var _ voting.Handler = (*TallyHandler)(nil)

func (h *TallyHandler) Check(ctx voting.Context, db voting.KVStore, tx voting.Tx) (*voting.CheckResult, error) {
	var msg TallyMsg
	if err := voting.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.engine.validate(db, tx.Caller()); err != nil {
		return nil, err
	}
	return &voting.CheckResult{}, nil
}

// Deliver runs the tally. The result data is the big endian encoded
// identifier of the winning proposal.
func (h *TallyHandler) Deliver(ctx voting.Context, db voting.KVStore, tx voting.Tx) (*voting.DeliverResult, error) {
	var msg TallyMsg
	if err := voting.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	res, ev, err := h.engine.Tally(db, tx.Caller())
	if err != nil {
		return nil, err
	}
	voting.GetLogger(ctx).Info("votes tallied",
		"winner", res.WinningProposalID,
		"votes", res.WinningVoteCount,
		"total", res.TotalVotes)
	return &voting.DeliverResult{
		Data:   orm.EncodeID(res.WinningProposalID),
		Log:    ev.String(),
		Events: []voting.Event{*ev},
	}, nil
}
