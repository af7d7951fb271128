package app

import (
	"encoding/json"
	"io"
	"io/ioutil"

	"github.com/iov-one/voting"
	"github.com/iov-one/voting/errors"
)

// Genesis is the initial configuration of a ledger.
type Genesis struct {
	ChainID    string         `json:"chain_id"`
	AppOptions voting.Options `json:"app_options"`
}

// ReadGenesis decodes a genesis document.
func ReadGenesis(r io.Reader) (*Genesis, error) {
	raw, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	var gen Genesis
	if err := json.Unmarshal(raw, &gen); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "unmarshaling genesis: %s", err)
	}
	if gen.ChainID != "" && !voting.IsValidChainID(gen.ChainID) {
		return nil, errors.Wrapf(errors.ErrInput, "chain id %q", gen.ChainID)
	}
	return &gen, nil
}

// InitGenesis passes the genesis options to all initializers, within a
// single atomic write. Nothing is stored if any initializer fails.
func InitGenesis(db voting.CacheableKVStore, gen *Genesis, inits ...voting.Initializer) error {
	cache := db.CacheWrap()
	if err := voting.ChainInitializers(inits...).FromGenesis(gen.AppOptions, cache); err != nil {
		cache.Discard()
		return errors.Wrap(err, "genesis")
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}
