package orm

import (
	"encoding/binary"

	"github.com/iov-one/voting"
)

// Counter maintains a monotonic number. It is used to count entities and to
// assign sequential identifiers starting at zero.
type Counter struct {
	id []byte
}

// NewCounter returns a counter. Counter is using following pattern to
// construct a key:
//
//	_n.<bucket>:<name>
func NewCounter(bucket, name string) Counter {
	return Counter{id: []byte("_n." + bucket + ":" + name)}
}

// Next increments the counter and returns the value it had before. The
// first call returns 0.
func (c Counter) Next(db voting.KVStore) (uint64, error) {
	val, err := c.Value(db)
	if err != nil {
		return 0, err
	}
	if err := db.Set(c.id, EncodeID(val+1)); err != nil {
		return 0, err
	}
	return val, nil
}

// Value returns the current counter value without modifying it.
func (c Counter) Value(db voting.ReadOnlyKVStore) (uint64, error) {
	raw, err := db.Get(c.id)
	if err != nil {
		return 0, err
	}
	return DecodeID(raw), nil
}

// EncodeID returns the big endian representation of an identifier, so that
// the bytes order is the same as the numeric order.
func EncodeID(val uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, val)
	return bz
}

// DecodeID is the reverse operation of EncodeID. Nil decodes to zero.
func DecodeID(bz []byte) uint64 {
	if len(bz) != 8 {
		return 0
	}
	return binary.BigEndian.Uint64(bz)
}
