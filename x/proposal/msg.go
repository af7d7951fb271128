package proposal

import "github.com/iov-one/voting"

const pathAddProposalMsg = "proposal/add"

// AddProposalMsg registers a new proposal on behalf of the caller.
type AddProposalMsg struct {
	Description string
}

var _ voting.Msg = (*AddProposalMsg)(nil)

func (AddProposalMsg) Path() string {
	return pathAddProposalMsg
}

// Validate rejects descriptions that cannot be stored. An empty description
// is a well formed message, it is rejected by the handler once the caller is
// known to be a voter.
func (m AddProposalMsg) Validate() error {
	return validateLength(m.Description)
}
