package voting

// ReadOnlyKVStore is a simple interface to query data.
type ReadOnlyKVStore interface {
	// Get returns nil iff key doesn't exist. Panics on nil key.
	Get(key []byte) ([]byte, error)

	// Has checks if a key exists. Panics on nil key.
	Has(key []byte) (bool, error)

	// Iterator over a domain of keys in ascending order. End is exclusive.
	// Start must be less than end, or the Iterator is invalid.
	// A nil start iterates from the first key, a nil end iterates until
	// the last key.
	Iterator(start, end []byte) (Iterator, error)

	// ReverseIterator over a domain of keys in descending order. End is
	// exclusive.
	ReverseIterator(start, end []byte) (Iterator, error)
}

// SetDeleter is a minimal interface for writing,
// Unifying KVStore and Batch.
type SetDeleter interface {
	Set(key, value []byte) error // CONTRACT: key, value readonly []byte
	Delete(key []byte) error     // CONTRACT: key readonly []byte
}

// KVStore is a simple interface to get/set data.
//
// For simplicity, we require all backing stores to implement this
// interface. They *may* implement other methods as well, but
// at least these are required.
type KVStore interface {
	ReadOnlyKVStore
	SetDeleter
}

/*
Iterator allows us to access a set of items within a range of
keys.

  Usage:

  itr, err := db.Iterator(start, end)
  if err != nil { ... }
  defer itr.Release()

  for {
      key, value, err := itr.Next()
      if errors.ErrIteratorDone.Is(err) {
          break
      }
      ...
  }
*/
type Iterator interface {
	// Next moves the iterator to the next sequential key in the database,
	// as defined by order of iteration, and returns the pair it points
	// to. It returns ErrIteratorDone once there are no more entries.
	Next() (key, value []byte, err error)

	// Release releases the Iterator.
	Release()
}

// CacheableKVStore is a KVStore that supports CacheWrapping.
//
// CacheWrap should be used to group temporary writes which may be committed
// or discarded together, like Postgresql SAVEPOINT / ROLLBACK TO SAVEPOINT.
type CacheableKVStore interface {
	KVStore
	CacheWrap() KVCacheWrap
}

// KVCacheWrap allows us to maintain a scratch-pad of uncommitted data
// that we can view with all queries.
//
// At the end, call Write to use the cached data, or Discard to drop it.
type KVCacheWrap interface {
	// CacheableKVStore allows us to use this Cache recursively
	CacheableKVStore

	// Write syncs with the underlying store.
	Write() error

	// Discard invalidates this CacheWrap and releases all data
	Discard()
}
