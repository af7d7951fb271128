package store

import (
	"github.com/iov-one/voting"
	"github.com/iov-one/voting/errors"
)

// Model groups together key and value to return.
type Model struct {
	Key   []byte
	Value []byte
}

// sliceIterator iterates over a snapshot of models. Because the snapshot is
// taken when the iterator is created, writes done while iterating are not
// visible.
type sliceIterator struct {
	data []Model
	idx  int
}

var _ voting.Iterator = (*sliceIterator)(nil)

func newSliceIterator(data []Model) *sliceIterator {
	return &sliceIterator{data: data}
}

// Next implements voting.Iterator.
func (s *sliceIterator) Next() ([]byte, []byte, error) {
	if s.idx >= len(s.data) {
		return nil, nil, errors.ErrIteratorDone
	}
	m := s.data[s.idx]
	s.idx++
	return m.Key, m.Value, nil
}

// Release implements voting.Iterator.
func (s *sliceIterator) Release() {
	s.data = nil
}

// ReadAll consumes the iterator and returns all pairs it produced. The
// iterator is released.
func ReadAll(it voting.Iterator) ([]Model, error) {
	defer it.Release()
	var res []Model
	for {
		key, value, err := it.Next()
		switch {
		case err == nil:
			res = append(res, Model{Key: key, Value: value})
		case errors.ErrIteratorDone.Is(err):
			return res, nil
		default:
			return nil, err
		}
	}
}
