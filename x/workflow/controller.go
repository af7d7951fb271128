package workflow

import (
	"github.com/iov-one/voting"
	"github.com/iov-one/voting/errors"
	"github.com/iov-one/voting/orm"
)

// Controller gives access to the workflow state. It is stateless, all data
// is kept in the store.
type Controller struct{}

// NewController returns a workflow controller.
func NewController() Controller {
	return Controller{}
}

// State loads the workflow singleton. It returns ErrNotFound if the genesis
// did not initialize it.
func (Controller) State(db voting.ReadOnlyKVStore) (*State, error) {
	var s State
	if err := orm.LoadSingleton(db, packageName, &s); err != nil {
		return nil, errors.Wrap(err, "workflow state")
	}
	return &s, nil
}

// CurrentPhase returns the phase in effect.
func (c Controller) CurrentPhase(db voting.ReadOnlyKVStore) (Phase, error) {
	s, err := c.State(db)
	if err != nil {
		return 0, err
	}
	return s.Phase, nil
}

// Authority returns the address of the administrative authority.
func (c Controller) Authority(db voting.ReadOnlyKVStore) (voting.Address, error) {
	s, err := c.State(db)
	if err != nil {
		return nil, err
	}
	return s.Authority, nil
}

// RequireAuthority returns ErrUnauthorized unless caller is the
// administrative authority.
func (c Controller) RequireAuthority(db voting.ReadOnlyKVStore, caller voting.Address) error {
	s, err := c.State(db)
	if err != nil {
		return err
	}
	if !s.Authority.Equals(caller) {
		return errors.Wrap(errors.ErrUnauthorized, "caller is not the owner")
	}
	return nil
}

// RequirePhase returns ErrPhase with given message unless the current phase
// is the wanted one.
func (c Controller) RequirePhase(db voting.ReadOnlyKVStore, want Phase, msg string) error {
	current, err := c.CurrentPhase(db)
	if err != nil {
		return err
	}
	if current != want {
		return errors.Wrap(errors.ErrPhase, msg)
	}
	return nil
}

// Advance moves the workflow from given phase to the next one. The caller
// must be the authority and the current phase must be from.
func (c Controller) Advance(db voting.KVStore, caller voting.Address, from Phase) (*PhaseChanged, error) {
	if err := c.RequireAuthority(db, caller); err != nil {
		return nil, err
	}
	s, err := c.State(db)
	if err != nil {
		return nil, err
	}
	next, err := s.Phase.Next()
	if err != nil {
		return nil, err
	}
	if s.Phase != from {
		return nil, errors.Wrap(errors.ErrInvalidTransition, wrongPhase[from])
	}
	s.Phase = next
	if err := orm.SaveSingleton(db, packageName, s); err != nil {
		return nil, err
	}
	return &PhaseChanged{Previous: from, Next: next}, nil
}

// wrongPhase is the rejection message of an advancement from a phase that is
// not in effect.
var wrongPhase = map[Phase]string{
	RegisteringVoters:            "Registering proposals cant be started now",
	ProposalsRegistrationStarted: "Registering proposals havent started yet",
	ProposalsRegistrationEnded:   "Registering proposals phase is not finished",
	VotingSessionStarted:         "Voting session havent started yet",
	// The tally handler rejects a wrong phase with ErrPhase before it
	// advances. Only direct callers of Advance get this message.
	VotingSessionEnded:           "Current status is not voting session ended",
}
