package proposal

import (
	"github.com/iov-one/voting"
	"github.com/iov-one/voting/errors"
	"github.com/iov-one/voting/orm"
	"github.com/iov-one/voting/x/voter"
)

// Registry gives access to the proposals.
type Registry struct {
	bucket orm.ModelBucket
	seq    orm.Counter
	voters voter.Registry
}

// NewRegistry returns a proposal registry. Reads are gated on the caller
// being registered in given voter registry.
func NewRegistry(voters voter.Registry) Registry {
	return Registry{
		bucket: orm.NewModelBucket(packageName),
		seq:    orm.NewCounter(packageName, "id"),
		voters: voters,
	}
}

// Append stores a new proposal and returns its identifier. The identifier
// is the number of proposals before the append.
func (r Registry) Append(db voting.KVStore, p *Proposal) (uint64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	id, err := r.seq.Next(db)
	if err != nil {
		return 0, err
	}
	if err := r.bucket.Put(db, orm.EncodeID(id), p); err != nil {
		return 0, err
	}
	return id, nil
}

// Load returns the proposal with given identifier, without any access
// check. ErrProposalNotFound is returned for an identifier out of bounds.
func (r Registry) Load(db voting.ReadOnlyKVStore, id uint64) (*Proposal, error) {
	var p Proposal
	err := r.bucket.One(db, orm.EncodeID(id), &p)
	if errors.ErrNotFound.Is(err) {
		return nil, errors.Wrap(errors.ErrProposalNotFound, "Proposal not found")
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Proposal returns the proposal with given identifier. Only registered
// voters can read proposals. It can be called in any phase.
func (r Registry) Proposal(db voting.ReadOnlyKVStore, caller voting.Address, id uint64) (*Proposal, error) {
	if _, err := r.voters.RequireVoter(db, caller); err != nil {
		return nil, err
	}
	return r.Load(db, id)
}

// Count returns the number of proposals, including the blank one.
func (r Registry) Count(db voting.ReadOnlyKVStore) (uint64, error) {
	return r.seq.Value(db)
}

// CountVote adds a vote to the proposal with given identifier.
func (r Registry) CountVote(db voting.KVStore, id uint64) error {
	p, err := r.Load(db, id)
	if err != nil {
		return err
	}
	p.VoteCount++
	return r.bucket.Put(db, orm.EncodeID(id), p)
}

// Each calls fn for every proposal, in ascending identifier order. Iteration
// stops at the first error, which is returned.
func (r Registry) Each(db voting.ReadOnlyKVStore, fn func(id uint64, p *Proposal) error) error {
	it, err := r.bucket.IterAll(db)
	if err != nil {
		return err
	}
	defer it.Release()

	for {
		var p Proposal
		key, err := it.LoadNext(&p)
		if errors.ErrIteratorDone.Is(err) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(orm.DecodeID(key), &p); err != nil {
			return err
		}
	}
}
