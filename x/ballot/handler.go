package ballot

import (
	"github.com/iov-one/voting"
	"github.com/iov-one/voting/errors"
	"github.com/iov-one/voting/x/proposal"
	"github.com/iov-one/voting/x/voter"
	"github.com/iov-one/voting/x/workflow"
)

// RegisterRoutes registers handlers for ballot message processing.
func RegisterRoutes(r voting.Registry, ctrl workflow.Controller, voters voter.Registry, proposals proposal.Registry) {
	r.Handle(pathVoteMsg, &VoteHandler{
		ctrl:      ctrl,
		voters:    voters,
		proposals: proposals,
	})
}

// VoteHandler casts votes.
type VoteHandler struct {
	ctrl      workflow.Controller
	voters    voter.Registry
	proposals proposal.Registry
}

var _ voting.Handler = (*VoteHandler)(nil)

func (h *VoteHandler) Check(ctx voting.Context, db voting.KVStore, tx voting.Tx) (*voting.CheckResult, error) {
	if _, _, err := h.validate(db, tx); err != nil {
		return nil, err
	}
	return &voting.CheckResult{}, nil
}

// Deliver marks the voter and counts the vote. Both writes are committed
// together by the savepoint wrapping this handler.
func (h *VoteHandler) Deliver(ctx voting.Context, db voting.KVStore, tx voting.Tx) (*voting.DeliverResult, error) {
	msg, v, err := h.validate(db, tx)
	if err != nil {
		return nil, err
	}
	v.Voted = true
	v.VotedProposalID = msg.ProposalID
	if err := h.voters.Save(db, tx.Caller(), v); err != nil {
		return nil, errors.Wrap(err, "cannot save voter")
	}
	if err := h.proposals.CountVote(db, msg.ProposalID); err != nil {
		return nil, errors.Wrap(err, "cannot count vote")
	}
	ev := Voted{Voter: tx.Caller(), ProposalID: msg.ProposalID}
	return &voting.DeliverResult{
		Log:    ev.String(),
		Events: []voting.Event{ev},
	}, nil
}

func (h *VoteHandler) validate(db voting.KVStore, tx voting.Tx) (*VoteMsg, *voter.Voter, error) {
	var msg VoteMsg
	if err := voting.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	v, err := h.voters.RequireVoter(db, tx.Caller())
	if err != nil {
		return nil, nil, err
	}
	if err := h.ctrl.RequirePhase(db, workflow.VotingSessionStarted, "Voting session havent started yet"); err != nil {
		return nil, nil, err
	}
	if v.Voted {
		return nil, nil, errors.Wrap(errors.ErrDuplicateVote, "You have already voted")
	}
	if _, err := h.proposals.Load(db, msg.ProposalID); err != nil {
		return nil, nil, err
	}
	return &msg, v, nil
}
