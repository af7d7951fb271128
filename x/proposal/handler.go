package proposal

import (
	"github.com/iov-one/voting"
	"github.com/iov-one/voting/errors"
	"github.com/iov-one/voting/orm"
	"github.com/iov-one/voting/x/workflow"
)

// RegisterRoutes registers handlers for proposal message processing.
func RegisterRoutes(r voting.Registry, ctrl workflow.Controller, reg Registry) {
	r.Handle(pathAddProposalMsg, &AddProposalHandler{ctrl: ctrl, reg: reg})
}

// AddProposalHandler appends proposals submitted by voters.
type AddProposalHandler struct {
	ctrl workflow.Controller
	reg  Registry
}

var _ voting.Handler = (*AddProposalHandler)(nil)

func (h *AddProposalHandler) Check(ctx voting.Context, db voting.KVStore, tx voting.Tx) (*voting.CheckResult, error) {
	if _, err := h.validate(db, tx); err != nil {
		return nil, err
	}
	return &voting.CheckResult{}, nil
}

// Deliver stores the proposal. The result data is the big endian encoded
// identifier of the new proposal.
func (h *AddProposalHandler) Deliver(ctx voting.Context, db voting.KVStore, tx voting.Tx) (*voting.DeliverResult, error) {
	msg, err := h.validate(db, tx)
	if err != nil {
		return nil, err
	}
	id, err := h.reg.Append(db, &Proposal{Description: msg.Description})
	if err != nil {
		return nil, err
	}
	ev := ProposalRegistered{ProposalID: id}
	return &voting.DeliverResult{
		Data:   orm.EncodeID(id),
		Log:    ev.String(),
		Events: []voting.Event{ev},
	}, nil
}

func (h *AddProposalHandler) validate(db voting.KVStore, tx voting.Tx) (*AddProposalMsg, error) {
	var msg AddProposalMsg
	if err := voting.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if _, err := h.reg.voters.RequireVoter(db, tx.Caller()); err != nil {
		return nil, err
	}
	// Empty descriptions are rejected in any phase.
	if err := validateDescription(msg.Description); err != nil {
		return nil, err
	}
	if err := h.ctrl.RequirePhase(db, workflow.ProposalsRegistrationStarted, "Proposals are not allowed yet"); err != nil {
		return nil, err
	}
	return &msg, nil
}
