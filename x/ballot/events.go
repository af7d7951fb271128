package ballot

import (
	"fmt"

	"github.com/iov-one/voting"
)

// KindVoted is the kind of the Voted notification.
const KindVoted = "voted"

// Voted is emitted when a vote is cast.
type Voted struct {
	Voter      voting.Address
	ProposalID uint64
}

func (Voted) Kind() string {
	return KindVoted
}

func (e Voted) String() string {
	return fmt.Sprintf("%s voted for proposal %d", e.Voter, e.ProposalID)
}
