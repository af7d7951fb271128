package tally

import "github.com/iov-one/voting"

const pathTallyMsg = "tally/tally"

// TallyMsg computes the winner and closes the round.
type TallyMsg struct{}

var _ voting.Msg = (*TallyMsg)(nil)

func (TallyMsg) Path() string {
	return pathTallyMsg
}

func (TallyMsg) Validate() error {
	return nil
}
