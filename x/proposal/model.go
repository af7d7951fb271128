package proposal

import (
	"github.com/iov-one/voting/errors"
	"github.com/iov-one/voting/orm"
)

const packageName = "proposal"

// BlankID is the identifier of the reserved blank proposal.
const BlankID uint64 = 0

// MaxDescriptionLength is the maximum size of a description in bytes.
const MaxDescriptionLength = 5000

// DefaultBlankDescription is used when the genesis does not describe the
// blank proposal.
const DefaultBlankDescription = "Blank vote"

// Proposal is an option voters can vote for.
type Proposal struct {
	Description string
	VoteCount   uint64
}

var _ orm.Model = (*Proposal)(nil)

// Validate ensures the proposal can be stored.
func (p *Proposal) Validate() error {
	return validateDescription(p.Description)
}

func validateDescription(desc string) error {
	if desc == "" {
		return errors.Wrap(errors.ErrEmptyProposal, "you cannot propose nothing")
	}
	return validateLength(desc)
}

func validateLength(desc string) error {
	if len(desc) > MaxDescriptionLength {
		return errors.Wrapf(errors.ErrInput, "description longer than %d bytes", MaxDescriptionLength)
	}
	return nil
}
