package proposal

import (
	"github.com/iov-one/voting"
	"github.com/iov-one/voting/errors"
	"github.com/iov-one/voting/x/voter"
)

// Initializer fulfils the Initializer interface to load data from the genesis
// file
type Initializer struct{}

var _ voting.Initializer = (*Initializer)(nil)

// FromGenesis creates the reserved blank proposal. Its description can be
// changed in the genesis.
//
//   "proposal": {"blank": "None of the above"}
func (*Initializer) FromGenesis(opts voting.Options, db voting.KVStore) error {
	var conf struct {
		Blank string `json:"blank"`
	}
	if err := opts.ReadOptions(packageName, &conf); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	if conf.Blank == "" {
		conf.Blank = DefaultBlankDescription
	}

	reg := NewRegistry(voter.NewRegistry())
	if n, err := reg.Count(db); err != nil {
		return err
	} else if n != 0 {
		return errors.Wrap(errors.ErrHuman, "proposals already initialized")
	}
	id, err := reg.Append(db, &Proposal{Description: conf.Blank})
	if err != nil {
		return errors.Wrap(err, "blank proposal")
	}
	if id != BlankID {
		return errors.Wrapf(errors.ErrHuman, "blank proposal got id %d", id)
	}
	return nil
}
