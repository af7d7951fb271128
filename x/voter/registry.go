package voter

import (
	"github.com/iov-one/voting"
	"github.com/iov-one/voting/errors"
	"github.com/iov-one/voting/orm"
)

// Registry gives access to the voter records.
type Registry struct {
	bucket orm.ModelBucket
	count  orm.Counter
}

// NewRegistry returns a voter registry.
func NewRegistry() Registry {
	return Registry{
		bucket: orm.NewModelBucket(packageName),
		count:  orm.NewCounter(packageName, "count"),
	}
}

// Load returns the record of given address, without any access check.
func (r Registry) Load(db voting.ReadOnlyKVStore, addr voting.Address) (*Voter, error) {
	var v Voter
	switch err := r.bucket.One(db, addr, &v); {
	case err == nil:
		return &v, nil
	case errors.ErrNotFound.Is(err):
		return &Voter{}, nil
	default:
		return nil, err
	}
}

// Save stores the record of given address.
func (r Registry) Save(db voting.KVStore, addr voting.Address, v *Voter) error {
	return r.bucket.Put(db, addr, v)
}

// RequireVoter returns ErrUnauthorized unless caller is a registered voter.
// The record of the caller is returned on success.
func (r Registry) RequireVoter(db voting.ReadOnlyKVStore, caller voting.Address) (*Voter, error) {
	if len(caller) == 0 {
		return nil, errors.Wrap(errors.ErrUnauthorized, "You're not a voter")
	}
	v, err := r.Load(db, caller)
	if err != nil {
		return nil, err
	}
	if !v.Registered {
		return nil, errors.Wrap(errors.ErrUnauthorized, "You're not a voter")
	}
	return v, nil
}

// Voter returns the record of subject. Only registered voters can read
// records. It can be called in any phase.
func (r Registry) Voter(db voting.ReadOnlyKVStore, caller, subject voting.Address) (*Voter, error) {
	if _, err := r.RequireVoter(db, caller); err != nil {
		return nil, err
	}
	return r.Load(db, subject)
}

// Enroll registers subject, returning ErrAlreadyRegistered if it is
// already a voter. Authorization and phase are checked by the caller.
func (r Registry) Enroll(db voting.KVStore, subject voting.Address) error {
	v, err := r.Load(db, subject)
	if err != nil {
		return err
	}
	if v.Registered {
		return errors.Wrap(errors.ErrAlreadyRegistered, "Already registered")
	}
	if err := r.Save(db, subject, &Voter{Registered: true}); err != nil {
		return err
	}
	_, err = r.count.Next(db)
	return err
}

// Count returns the number of enrolled voters.
func (r Registry) Count(db voting.ReadOnlyKVStore) (uint64, error) {
	return r.count.Value(db)
}
