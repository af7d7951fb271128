package voter

import (
	"fmt"

	"github.com/iov-one/voting"
)

// KindVoterRegistered is the kind of the VoterRegistered notification.
const KindVoterRegistered = "voter_registered"

// VoterRegistered is emitted when a voter is enrolled.
type VoterRegistered struct {
	Subject voting.Address
}

func (VoterRegistered) Kind() string {
	return KindVoterRegistered
}

func (e VoterRegistered) String() string {
	return fmt.Sprintf("voter %s registered", e.Subject)
}
