package workflow

import (
	"fmt"

	"github.com/iov-one/voting"
	"github.com/iov-one/voting/errors"
	"github.com/iov-one/voting/orm"
)

const packageName = "workflow"

// Phase is a step of the voting round.
type Phase int64

const (
	RegisteringVoters Phase = iota
	ProposalsRegistrationStarted
	ProposalsRegistrationEnded
	VotingSessionStarted
	VotingSessionEnded
	VotesTallied
)

var phaseNames = map[Phase]string{
	RegisteringVoters:            "RegisteringVoters",
	ProposalsRegistrationStarted: "ProposalsRegistrationStarted",
	ProposalsRegistrationEnded:   "ProposalsRegistrationEnded",
	VotingSessionStarted:         "VotingSessionStarted",
	VotingSessionEnded:           "VotingSessionEnded",
	VotesTallied:                 "VotesTallied",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Phase(%d)", int64(p))
}

// Valid returns true if this is one of the declared phases.
func (p Phase) Valid() bool {
	_, ok := phaseNames[p]
	return ok
}

// Terminal returns true if no phase follows this one.
func (p Phase) Terminal() bool {
	return p == VotesTallied
}

// Next returns the phase following this one. It returns ErrInvalidTransition
// for the terminal phase.
func (p Phase) Next() (Phase, error) {
	if !p.Valid() {
		return p, errors.Wrapf(errors.ErrInvalidTransition, "unknown phase %d", int64(p))
	}
	if p.Terminal() {
		return p, errors.Wrap(errors.ErrInvalidTransition, "votes are already tallied")
	}
	return p + 1, nil
}

// State is the workflow singleton.
type State struct {
	Authority voting.Address
	Phase     Phase
}

var _ orm.Model = (*State)(nil)

// Validate ensures the state is consistent.
func (s *State) Validate() error {
	if err := s.Authority.Validate(); err != nil {
		return errors.Wrap(err, "authority")
	}
	if !s.Phase.Valid() {
		return errors.Wrapf(errors.ErrModel, "unknown phase %d", int64(s.Phase))
	}
	return nil
}
