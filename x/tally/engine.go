package tally

import (
	"github.com/iov-one/voting"
	"github.com/iov-one/voting/errors"
	"github.com/iov-one/voting/orm"
	"github.com/iov-one/voting/x/proposal"
	"github.com/iov-one/voting/x/workflow"
)

// Engine computes and caches the tally result.
type Engine struct {
	ctrl      workflow.Controller
	proposals proposal.Registry
}

// NewEngine returns a tally engine counting votes of given proposals.
func NewEngine(ctrl workflow.Controller, proposals proposal.Registry) Engine {
	return Engine{ctrl: ctrl, proposals: proposals}
}

// Tally computes the winner, stores the result and moves the workflow to
// the terminal phase. Caller must be the authority and the voting session
// must be ended.
func (e Engine) Tally(db voting.KVStore, caller voting.Address) (*Result, *workflow.PhaseChanged, error) {
	if err := e.validate(db, caller); err != nil {
		return nil, nil, err
	}

	var counts []uint64
	err := e.proposals.Each(db, func(id uint64, p *proposal.Proposal) error {
		if id != uint64(len(counts)) {
			return errors.Wrapf(errors.ErrHuman, "proposal %d out of sequence", id)
		}
		counts = append(counts, p.VoteCount)
		return nil
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "cannot count votes")
	}

	res := Plurality(counts)
	if err := orm.SaveSingleton(db, packageName, &res); err != nil {
		return nil, nil, err
	}
	ev, err := e.ctrl.Advance(db, caller, workflow.VotingSessionEnded)
	if err != nil {
		return nil, nil, err
	}
	return &res, ev, nil
}

func (e Engine) validate(db voting.ReadOnlyKVStore, caller voting.Address) error {
	if err := e.ctrl.RequireAuthority(db, caller); err != nil {
		return err
	}
	return e.ctrl.RequirePhase(db, workflow.VotingSessionEnded, "Current status is not voting session ended")
}

// Result returns the cached result. The zero value is returned before the
// tally, callers must check the phase to tell it apart from a tally won by
// the blank proposal.
func (e Engine) Result(db voting.ReadOnlyKVStore) (*Result, error) {
	var res Result
	err := orm.LoadSingleton(db, packageName, &res)
	if errors.ErrNotFound.Is(err) {
		return &Result{}, nil
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// WinningProposalID returns the cached winner.
func (e Engine) WinningProposalID(db voting.ReadOnlyKVStore) (uint64, error) {
	res, err := e.Result(db)
	if err != nil {
		return 0, err
	}
	return res.WinningProposalID, nil
}
