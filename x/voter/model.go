package voter

import (
	"github.com/iov-one/voting/errors"
	"github.com/iov-one/voting/orm"
)

const packageName = "voter"

// Voter is the record kept for every enrolled address. An address that was
// never enrolled reads as the zero value.
type Voter struct {
	Registered      bool
	Voted           bool
	VotedProposalID uint64
}

var _ orm.Model = (*Voter)(nil)

// Validate ensures the record is consistent.
func (v *Voter) Validate() error {
	if !v.Registered {
		return errors.Wrap(errors.ErrModel, "only registered voters are stored")
	}
	if !v.Voted && v.VotedProposalID != 0 {
		return errors.Wrap(errors.ErrModel, "proposal id set without a vote")
	}
	return nil
}
