package votingtest

import (
	"encoding/binary"

	"github.com/iov-one/voting"
)

var sequence uint64

// NewAddress returns a new, unique address. Addresses are derived from an
// increasing counter, so they are deterministic for a test binary run.
func NewAddress() voting.Address {
	sequence++
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, sequence)
	return voting.NewAddress(append([]byte("votingtest/"), raw...))
}

// Msg is a minimal message implementation. It is valid unless Err is set.
type Msg struct {
	RoutePath string
	Err       error
}

var _ voting.Msg = (*Msg)(nil)

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Validate() error {
	return m.Err
}
