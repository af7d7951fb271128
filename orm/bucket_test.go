package orm

import (
	"testing"

	"github.com/iov-one/voting"
	"github.com/iov-one/voting/errors"
	"github.com/iov-one/voting/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counterModel struct {
	Name  string
	Count uint64
}

func (m *counterModel) Validate() error {
	if m.Name == "" {
		return errors.Wrap(errors.ErrModel, "name required")
	}
	return nil
}

func TestModelBucketCRUD(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("counters")

	var got counterModel
	err := b.One(db, []byte("a"), &got)
	assert.True(t, errors.ErrNotFound.Is(err), "got %+v", err)

	require.NoError(t, b.Put(db, []byte("a"), &counterModel{Name: "alpha", Count: 3}))
	require.NoError(t, b.One(db, []byte("a"), &got))
	assert.Equal(t, counterModel{Name: "alpha", Count: 3}, got)

	// Invalid models are never written.
	err = b.Put(db, []byte("b"), &counterModel{Count: 1})
	assert.True(t, errors.ErrModel.Is(err), "got %+v", err)
	err = b.One(db, []byte("b"), &got)
	assert.True(t, errors.ErrNotFound.Is(err), "got %+v", err)

	err = b.Put(db, nil, &counterModel{Name: "x"})
	assert.True(t, errors.ErrInput.Is(err), "got %+v", err)
}

func TestModelBucketIterAll(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("counters")
	other := NewModelBucket("countert")

	for i, name := range []string{"zero", "one", "two"} {
		require.NoError(t, b.Put(db, EncodeID(uint64(i)), &counterModel{Name: name}))
	}
	require.NoError(t, other.Put(db, EncodeID(0), &counterModel{Name: "other"}))

	it, err := b.IterAll(db)
	require.NoError(t, err)
	defer it.Release()

	var names []string
	var ids []uint64
	for {
		var m counterModel
		key, err := it.LoadNext(&m)
		if errors.ErrIteratorDone.Is(err) {
			break
		}
		require.NoError(t, err)
		names = append(names, m.Name)
		ids = append(ids, DecodeID(key))
	}
	assert.Equal(t, []string{"zero", "one", "two"}, names)
	assert.Equal(t, []uint64{0, 1, 2}, ids)
}

func TestIllegalBucketName(t *testing.T) {
	assert.Panics(t, func() { NewModelBucket("Voters!") })
	assert.Panics(t, func() { NewModelBucket("ab") })
}

func TestPrefixEnd(t *testing.T) {
	cases := map[string]struct {
		prefix []byte
		want   []byte
	}{
		"simple":       {prefix: []byte("abc:"), want: []byte("abc;")},
		"trailing max": {prefix: []byte{1, 0xff}, want: []byte{2}},
		"all max":      {prefix: []byte{0xff, 0xff}, want: nil},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.want, prefixEnd(tc.prefix))
		})
	}
}

func TestSingleton(t *testing.T) {
	var db voting.KVStore = store.MemStore()

	var got counterModel
	err := LoadSingleton(db, "counters", &got)
	assert.True(t, errors.ErrNotFound.Is(err), "got %+v", err)

	err = SaveSingleton(db, "counters", &counterModel{})
	assert.True(t, errors.ErrModel.Is(err), "got %+v", err)

	require.NoError(t, SaveSingleton(db, "counters", &counterModel{Name: "cfg", Count: 7}))
	require.NoError(t, LoadSingleton(db, "counters", &got))
	assert.Equal(t, counterModel{Name: "cfg", Count: 7}, got)
}

func TestCounter(t *testing.T) {
	db := store.MemStore()
	c := NewCounter("counters", "id")
	other := NewCounter("counters", "other")

	val, err := c.Value(db)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), val)

	for want := uint64(0); want < 3; want++ {
		got, err := c.Next(db)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	val, err = c.Value(db)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), val)

	val, err = other.Value(db)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), val)
}

func TestIDEncodingKeepsOrder(t *testing.T) {
	assert.True(t, string(EncodeID(255)) < string(EncodeID(256)))
	assert.Equal(t, uint64(1<<40), DecodeID(EncodeID(1<<40)))
	assert.Equal(t, uint64(0), DecodeID(nil))
}
