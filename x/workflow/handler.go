package workflow

import (
	"github.com/iov-one/voting"
	"github.com/iov-one/voting/errors"
)

// RegisterRoutes registers handlers for all phase advancing messages.
func RegisterRoutes(r voting.Registry, c Controller) {
	r.Handle(pathStartProposalsRegisteringMsg, &AdvanceHandler{ctrl: c, from: RegisteringVoters, msg: &StartProposalsRegisteringMsg{}})
	r.Handle(pathEndProposalsRegisteringMsg, &AdvanceHandler{ctrl: c, from: ProposalsRegistrationStarted, msg: &EndProposalsRegisteringMsg{}})
	r.Handle(pathStartVotingSessionMsg, &AdvanceHandler{ctrl: c, from: ProposalsRegistrationEnded, msg: &StartVotingSessionMsg{}})
	r.Handle(pathEndVotingSessionMsg, &AdvanceHandler{ctrl: c, from: VotingSessionStarted, msg: &EndVotingSessionMsg{}})
}

// AdvanceHandler moves the workflow one phase forward. Each advancing
// message requires a specific phase to be in effect.
type AdvanceHandler struct {
	ctrl Controller
	from Phase
	// msg is the destination the transaction message is loaded into.
	msg voting.Msg
}

var _ voting.Handler = (*AdvanceHandler)(nil)

func (h *AdvanceHandler) Check(ctx voting.Context, db voting.KVStore, tx voting.Tx) (*voting.CheckResult, error) {
	ev, err := h.advance(db, tx)
	if err != nil {
		return nil, err
	}
	return &voting.CheckResult{Log: ev.String()}, nil
}

func (h *AdvanceHandler) Deliver(ctx voting.Context, db voting.KVStore, tx voting.Tx) (*voting.DeliverResult, error) {
	ev, err := h.advance(db, tx)
	if err != nil {
		return nil, err
	}
	return &voting.DeliverResult{
		Log:    ev.String(),
		Events: []voting.Event{*ev},
	}, nil
}

func (h *AdvanceHandler) advance(db voting.KVStore, tx voting.Tx) (*PhaseChanged, error) {
	// Advancing messages carry no data, the type check is the only
	// validation.
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if msg.Path() != h.msg.Path() {
		return nil, errors.Wrapf(errors.ErrType, "want %s message, got %s", h.msg.Path(), msg.Path())
	}
	return h.ctrl.Advance(db, tx.Caller(), h.from)
}
