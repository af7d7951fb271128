package orm

import (
	"fmt"
	"regexp"

	"github.com/iov-one/voting"
	"github.com/iov-one/voting/errors"
)

var isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString

// ModelBucket is a prefixed subspace of the store holding models of a
// single type.
type ModelBucket struct {
	prefix []byte
}

// NewModelBucket returns a bucket storing models under "<name>:" prefix.
func NewModelBucket(name string) ModelBucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("Illegal bucket: %s", name))
	}
	return ModelBucket{
		prefix: append([]byte(name), ':'),
	}
}

// DBKey is the full key we store in the db, including prefix.
func (b ModelBucket) DBKey(key []byte) []byte {
	return append(append([]byte{}, b.prefix...), key...)
}

// One query the database for a single model instance. Lookup is done by the
// primary key. Result is loaded into given destination model.
// This method returns ErrNotFound if the entity does not exist in the
// database.
func (b ModelBucket) One(db voting.ReadOnlyKVStore, key []byte, dest Model) error {
	raw, err := db.Get(b.DBKey(key))
	if err != nil {
		return errors.Wrap(err, "cannot read from the database")
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%T not in the store", dest)
	}
	return Unmarshal(raw, dest)
}

// Put saves given model in the database. The model is validated first.
func (b ModelBucket) Put(db voting.KVStore, key []byte, m Model) error {
	if len(key) == 0 {
		return errors.Wrap(errors.ErrInput, "empty key")
	}
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	raw, err := Marshal(m)
	if err != nil {
		return err
	}
	if err := db.Set(b.DBKey(key), raw); err != nil {
		return errors.Wrap(err, "cannot store in the database")
	}
	return nil
}

// IterAll returns an iterator over all models stored in this bucket, in
// ascending primary key order.
func (b ModelBucket) IterAll(db voting.ReadOnlyKVStore) (*ModelIterator, error) {
	it, err := db.Iterator(b.prefix, prefixEnd(b.prefix))
	if err != nil {
		return nil, errors.Wrap(err, "cannot iterate the database")
	}
	return &ModelIterator{it: it, prefix: len(b.prefix)}, nil
}

// ModelIterator loads consecutive models of a bucket.
type ModelIterator struct {
	it     voting.Iterator
	prefix int
}

// LoadNext loads the next model into dest and returns its primary key.
// ErrIteratorDone is returned when there are no more models.
func (m *ModelIterator) LoadNext(dest Model) ([]byte, error) {
	key, raw, err := m.it.Next()
	if err != nil {
		return nil, err
	}
	if err := Unmarshal(raw, dest); err != nil {
		return nil, err
	}
	return key[m.prefix:], nil
}

// Release releases the underlying store iterator.
func (m *ModelIterator) Release() {
	m.it.Release()
}

// prefixEnd returns the first key that does not start with given prefix.
func prefixEnd(prefix []byte) []byte {
	end := append([]byte{}, prefix...)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return end[:i+1]
		}
	}
	// Prefix is all 0xff, iterate until the end of the store.
	return nil
}
