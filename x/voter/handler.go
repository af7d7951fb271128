package voter

import (
	"github.com/iov-one/voting"
	"github.com/iov-one/voting/errors"
	"github.com/iov-one/voting/x/workflow"
)

// RegisterRoutes registers handlers for voter message processing.
func RegisterRoutes(r voting.Registry, ctrl workflow.Controller, reg Registry) {
	r.Handle(pathEnrollMsg, &EnrollHandler{ctrl: ctrl, reg: reg})
}

// EnrollHandler registers new voters.
type EnrollHandler struct {
	ctrl workflow.Controller
	reg  Registry
}

var _ voting.Handler = (*EnrollHandler)(nil)

func (h *EnrollHandler) Check(ctx voting.Context, db voting.KVStore, tx voting.Tx) (*voting.CheckResult, error) {
	if _, err := h.validate(db, tx); err != nil {
		return nil, err
	}
	return &voting.CheckResult{}, nil
}

func (h *EnrollHandler) Deliver(ctx voting.Context, db voting.KVStore, tx voting.Tx) (*voting.DeliverResult, error) {
	msg, err := h.validate(db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.reg.Enroll(db, msg.Subject); err != nil {
		return nil, err
	}
	ev := VoterRegistered{Subject: msg.Subject}
	return &voting.DeliverResult{
		Log:    ev.String(),
		Events: []voting.Event{ev},
	}, nil
}

func (h *EnrollHandler) validate(db voting.KVStore, tx voting.Tx) (*EnrollMsg, error) {
	var msg EnrollMsg
	if err := voting.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.ctrl.RequireAuthority(db, tx.Caller()); err != nil {
		return nil, err
	}
	if err := h.ctrl.RequirePhase(db, workflow.RegisteringVoters, "Voters registration is not open yet"); err != nil {
		return nil, err
	}
	v, err := h.reg.Load(db, msg.Subject)
	if err != nil {
		return nil, err
	}
	if v.Registered {
		return nil, errors.Wrap(errors.ErrAlreadyRegistered, "Already registered")
	}
	return &msg, nil
}
