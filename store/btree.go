package store

import (
	"bytes"

	"github.com/google/btree"
	"github.com/iov-one/voting"
	"github.com/iov-one/voting/errors"
)

const (
	// DefaultFreeListSize is the size we hold for free node in btree
	DefaultFreeListSize = btree.DefaultFreeListSize

	degree = 2
)

// MemStore returns a simple in memory implementation. There is no
// persistence here, all data is lost together with the instance.
func MemStore() voting.CacheableKVStore {
	return &BTreeStore{
		bt:   btree.New(degree),
		free: btree.NewFreeList(DefaultFreeListSize),
	}
}

// BTreeStore is the root of all cache wraps. It holds the committed data.
type BTreeStore struct {
	bt   *btree.BTree
	free *btree.FreeList
}

var _ voting.CacheableKVStore = (*BTreeStore)(nil)

// CacheWrap returns a BTreeCacheWrap that can be later
// written to this store, or rolled back.
func (b *BTreeStore) CacheWrap() voting.KVCacheWrap {
	return NewBTreeCacheWrap(b, b.free)
}

// Get returns the value stored under given key or nil.
func (b *BTreeStore) Get(key []byte) ([]byte, error) {
	if key == nil {
		panic("nil key")
	}
	res := b.bt.Get(bkey{key})
	if res == nil {
		return nil, nil
	}
	item, ok := res.(setItem)
	if !ok {
		return nil, errors.Wrapf(errors.ErrDatabase, "unknown item in btree: %#v", res)
	}
	return item.value, nil
}

// Has returns true if a value is stored under given key.
func (b *BTreeStore) Has(key []byte) (bool, error) {
	if key == nil {
		panic("nil key")
	}
	return b.bt.Has(bkey{key}), nil
}

// Set stores given value. Both key and value are copied.
func (b *BTreeStore) Set(key, value []byte) error {
	if key == nil {
		panic("nil key")
	}
	b.bt.ReplaceOrInsert(newSetItem(key, value))
	return nil
}

// Delete removes given key. Deleting a missing key is a noop.
func (b *BTreeStore) Delete(key []byte) error {
	if key == nil {
		panic("nil key")
	}
	b.bt.Delete(bkey{key})
	return nil
}

// Iterator over a domain of keys in ascending order.
func (b *BTreeStore) Iterator(start, end []byte) (voting.Iterator, error) {
	return newSliceIterator(collect(b.bt, start, end)), nil
}

// ReverseIterator over a domain of keys in descending order.
func (b *BTreeStore) ReverseIterator(start, end []byte) (voting.Iterator, error) {
	return newSliceIterator(reverse(collect(b.bt, start, end))), nil
}

// BTreeCacheWrap places a btree cache over a KVStore. All writes are
// recorded in the btree, including deletions, and replayed on the parent
// when Write is called.
type BTreeCacheWrap struct {
	bt     *btree.BTree
	free   *btree.FreeList
	parent voting.KVStore
}

var _ voting.KVCacheWrap = (*BTreeCacheWrap)(nil)

// NewBTreeCacheWrap initializes a BTree to cache around given kv store.
//
// free may be nil, but set to an existing list to reuse it
// for memory savings.
func NewBTreeCacheWrap(parent voting.KVStore, free *btree.FreeList) *BTreeCacheWrap {
	if free == nil {
		free = btree.NewFreeList(DefaultFreeListSize)
	}
	return &BTreeCacheWrap{
		bt:     btree.NewWithFreeList(degree, free),
		free:   free,
		parent: parent,
	}
}

// CacheWrap layers another BTree on top of this one.
func (b *BTreeCacheWrap) CacheWrap() voting.KVCacheWrap {
	return NewBTreeCacheWrap(b, b.free)
}

// Write syncs with the underlying store, in ascending key order.
// And then cleans up.
func (b *BTreeCacheWrap) Write() error {
	var err error
	b.bt.Ascend(func(i btree.Item) bool {
		switch t := i.(type) {
		case setItem:
			err = b.parent.Set(t.key, t.value)
		case deletedItem:
			err = b.parent.Delete(t.key)
		default:
			err = errors.Wrapf(errors.ErrDatabase, "unknown item in btree: %#v", i)
		}
		return err == nil
	})
	b.Discard()
	if err != nil {
		return errors.Wrap(err, "write cache")
	}
	return nil
}

// Discard invalidates this CacheWrap and releases all data.
func (b *BTreeCacheWrap) Discard() {
	// clean up the btree -> freelist
	b.bt.Clear(true)
}

// Set writes to the BTree.
func (b *BTreeCacheWrap) Set(key, value []byte) error {
	if key == nil {
		panic("nil key")
	}
	b.bt.ReplaceOrInsert(newSetItem(key, value))
	return nil
}

// Delete marks the key as deleted in the BTree.
func (b *BTreeCacheWrap) Delete(key []byte) error {
	if key == nil {
		panic("nil key")
	}
	b.bt.ReplaceOrInsert(newDeletedItem(key))
	return nil
}

// Get reads from btree if there, else backing store.
func (b *BTreeCacheWrap) Get(key []byte) ([]byte, error) {
	if key == nil {
		panic("nil key")
	}
	switch t := b.bt.Get(bkey{key}).(type) {
	case nil:
		return b.parent.Get(key)
	case setItem:
		return t.value, nil
	case deletedItem:
		return nil, nil
	default:
		return nil, errors.Wrapf(errors.ErrDatabase, "unknown item in btree: %#v", t)
	}
}

// Has reads from btree if there, else backing store.
func (b *BTreeCacheWrap) Has(key []byte) (bool, error) {
	if key == nil {
		panic("nil key")
	}
	switch t := b.bt.Get(bkey{key}).(type) {
	case nil:
		return b.parent.Has(key)
	case setItem:
		return true, nil
	case deletedItem:
		return false, nil
	default:
		return false, errors.Wrapf(errors.ErrDatabase, "unknown item in btree: %#v", t)
	}
}

// Iterator over a domain of keys in ascending order.
// Combines results from btree and backing store.
func (b *BTreeCacheWrap) Iterator(start, end []byte) (voting.Iterator, error) {
	pairs, err := b.combined(start, end)
	if err != nil {
		return nil, err
	}
	return newSliceIterator(pairs), nil
}

// ReverseIterator over a domain of keys in descending order.
// Combines results from btree and backing store.
func (b *BTreeCacheWrap) ReverseIterator(start, end []byte) (voting.Iterator, error) {
	pairs, err := b.combined(start, end)
	if err != nil {
		return nil, err
	}
	return newSliceIterator(reverse(pairs)), nil
}

// combined merges the parent content with the local changes. Local entries
// shadow the parent ones and deleted entries are skipped.
func (b *BTreeCacheWrap) combined(start, end []byte) ([]Model, error) {
	it, err := b.parent.Iterator(start, end)
	if err != nil {
		return nil, errors.Wrap(err, "parent iterator")
	}
	parent, err := ReadAll(it)
	if err != nil {
		return nil, err
	}

	var local []btree.Item
	ascend(b.bt, start, end, func(i btree.Item) bool {
		local = append(local, i)
		return true
	})

	res := make([]Model, 0, len(parent)+len(local))
	var pi, li int
	for pi < len(parent) || li < len(local) {
		if li == len(local) {
			res = append(res, parent[pi])
			pi++
			continue
		}
		item := local[li].(keyer)
		if pi < len(parent) {
			switch cmp := bytes.Compare(parent[pi].Key, item.Key()); {
			case cmp < 0:
				res = append(res, parent[pi])
				pi++
				continue
			case cmp == 0:
				// Local change shadows the parent value.
				pi++
			}
		}
		if s, ok := item.(setItem); ok {
			res = append(res, Model{Key: s.key, Value: s.value})
		}
		li++
	}
	return res, nil
}

// collect returns all set items within given range, in ascending order.
func collect(bt *btree.BTree, start, end []byte) []Model {
	var res []Model
	ascend(bt, start, end, func(i btree.Item) bool {
		if s, ok := i.(setItem); ok {
			res = append(res, Model{Key: s.key, Value: s.value})
		}
		return true
	})
	return res
}

func ascend(bt *btree.BTree, start, end []byte, fn btree.ItemIterator) {
	switch {
	case start == nil && end == nil:
		bt.Ascend(fn)
	case start == nil:
		bt.AscendLessThan(bkey{end}, fn)
	case end == nil:
		bt.AscendGreaterOrEqual(bkey{start}, fn)
	default:
		bt.AscendRange(bkey{start}, bkey{end}, fn)
	}
}

func reverse(ms []Model) []Model {
	for i, j := 0, len(ms)-1; i < j; i, j = i+1, j-1 {
		ms[i], ms[j] = ms[j], ms[i]
	}
	return ms
}

/////////////////////////////////////////////////////////
// Items to write to btree

// we enforce all data in our btree implements keyer so we
// can compare nicely
type keyer interface {
	Key() []byte
}

// bkey implements keyer and btree.Item
// and may be used for queries or embedded in data to store
type bkey struct {
	key []byte
}

var _ btree.Item = bkey{}

func (k bkey) Key() []byte {
	return k.key
}

// Less returns true iff second argument is greater than first
//
// panics if the item to compare doesn't implement keyer.
func (k bkey) Less(item btree.Item) bool {
	return bytes.Compare(k.key, item.(keyer).Key()) < 0
}

type deletedItem struct {
	bkey
}

func newDeletedItem(key []byte) deletedItem {
	return deletedItem{bkey{copyBytes(key)}}
}

type setItem struct {
	bkey
	value []byte
}

func newSetItem(key, value []byte) setItem {
	return setItem{bkey{copyBytes(key)}, copyBytes(value)}
}

func copyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
