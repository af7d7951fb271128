package voter

import (
	"github.com/iov-one/voting"
	"github.com/iov-one/voting/errors"
)

const pathEnrollMsg = "voter/enroll"

// EnrollMsg registers Subject as a voter.
type EnrollMsg struct {
	Subject voting.Address
}

var _ voting.Msg = (*EnrollMsg)(nil)

func (EnrollMsg) Path() string {
	return pathEnrollMsg
}

func (m EnrollMsg) Validate() error {
	if err := m.Subject.Validate(); err != nil {
		return errors.Wrap(err, "subject")
	}
	return nil
}
