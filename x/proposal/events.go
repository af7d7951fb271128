package proposal

import "fmt"

// KindProposalRegistered is the kind of the ProposalRegistered notification.
const KindProposalRegistered = "proposal_registered"

// ProposalRegistered is emitted when a voter adds a proposal.
type ProposalRegistered struct {
	ProposalID uint64
}

func (ProposalRegistered) Kind() string {
	return KindProposalRegistered
}

func (e ProposalRegistered) String() string {
	return fmt.Sprintf("proposal %d registered", e.ProposalID)
}
