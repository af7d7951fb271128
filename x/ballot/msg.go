package ballot

import "github.com/iov-one/voting"

const pathVoteMsg = "ballot/vote"

// VoteMsg casts the caller's vote.
type VoteMsg struct {
	ProposalID uint64
}

var _ voting.Msg = (*VoteMsg)(nil)

func (VoteMsg) Path() string {
	return pathVoteMsg
}

// Validate is a noop, any identifier is checked against the registry.
func (VoteMsg) Validate() error {
	return nil
}
