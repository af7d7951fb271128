package orm

import (
	"github.com/iov-one/voting"
	"github.com/iov-one/voting/errors"
)

// SaveSingleton will Validate the model, before writing it to a special
// singleton key for that package name.
func SaveSingleton(db voting.KVStore, pkg string, m Model) error {
	key := singletonKey(pkg)
	if err := m.Validate(); err != nil {
		return errors.Wrapf(err, "validation: key %q", key)
	}
	raw, err := Marshal(m)
	if err != nil {
		return errors.Wrapf(err, "marshal: key %q", key)
	}
	return db.Set(key, raw)
}

// LoadSingleton loads the singleton model of given package into dest. It
// returns ErrNotFound if nothing was saved yet.
func LoadSingleton(db voting.ReadOnlyKVStore, pkg string, dest Model) error {
	key := singletonKey(pkg)
	raw, err := db.Get(key)
	if err != nil {
		return err
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "key %q", key)
	}
	if err := Unmarshal(raw, dest); err != nil {
		return errors.Wrapf(err, "unmarshal: key %q", key)
	}
	return nil
}

func singletonKey(pkg string) []byte {
	return []byte("_c:" + pkg)
}
