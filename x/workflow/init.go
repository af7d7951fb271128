package workflow

import (
	"github.com/iov-one/voting"
	"github.com/iov-one/voting/errors"
	"github.com/iov-one/voting/orm"
)

// Initializer fulfils the Initializer interface to load data from the genesis
// file
type Initializer struct{}

var _ voting.Initializer = (*Initializer)(nil)

// FromGenesis stores the administrative authority. The round always starts
// with the voters registration.
//
//   "workflow": {"authority": "name:chairperson"}
func (*Initializer) FromGenesis(opts voting.Options, db voting.KVStore) error {
	var conf struct {
		Authority string `json:"authority"`
	}
	if err := opts.ReadOptions(packageName, &conf); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	authority, err := voting.ParseAddress(conf.Authority)
	if err != nil {
		return errors.Wrap(err, "authority")
	}
	if authority == nil {
		return errors.Wrap(errors.ErrInput, "authority is required")
	}
	state := State{
		Authority: authority,
		Phase:     RegisteringVoters,
	}
	return orm.SaveSingleton(db, packageName, &state)
}
