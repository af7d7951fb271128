package orm

import (
	"github.com/iov-one/voting/errors"
	amino "github.com/tendermint/go-amino"
)

// cdc serializes all models. Models are plain structs without interface
// fields, so no type registration is needed.
var cdc = amino.NewCodec()

// Marshal returns the binary representation of given model.
func Marshal(m Model) ([]byte, error) {
	raw, err := cdc.MarshalBinaryBare(m)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrModel, "marshal %T: %s", m, err)
	}
	return raw, nil
}

// Unmarshal loads the binary representation into dest, which must be a
// pointer.
func Unmarshal(raw []byte, dest Model) error {
	if err := cdc.UnmarshalBinaryBare(raw, dest); err != nil {
		return errors.Wrapf(errors.ErrModel, "unmarshal %T: %s", dest, err)
	}
	return nil
}
