package voting

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/btcsuite/btcutil/bech32"
	"github.com/iov-one/voting/errors"
)

// AddressLength is the length of all addresses.
const AddressLength = 20

// Address identifies a principal of the ledger: the administrative authority
// or a voter. It is a collision-free, one-way digest of some identifying
// data, see NewAddress.
type Address []byte

// NewAddress hashes and truncates given data into an address.
func NewAddress(data []byte) Address {
	if data == nil {
		return nil
	}
	h := sha256.Sum256(data)
	return h[:AddressLength]
}

// Equals checks if two addresses are the same.
func (a Address) Equals(b Address) bool {
	return bytes.Equal(a, b)
}

// String returns a human readable, upper case hex representation.
func (a Address) String() string {
	if len(a) == 0 {
		return "(nil)"
	}
	return strings.ToUpper(hex.EncodeToString(a))
}

// Validate returns an error if the address is not the valid size.
func (a Address) Validate() error {
	if len(a) != AddressLength {
		return errors.Wrapf(errors.ErrInput, "address: %v", a)
	}
	return nil
}

// Bech32 returns the bech32 representation of this address using given human
// readable part.
func (a Address) Bech32(hrp string) (string, error) {
	payload, err := bech32.ConvertBits(a, 8, 5, true)
	if err != nil {
		return "", errors.Wrap(err, "convert bits")
	}
	raw, err := bech32.Encode(hrp, payload)
	if err != nil {
		return "", errors.Wrap(err, "bech32 encode")
	}
	return raw, nil
}

// MarshalJSON provides a hex representation for JSON,
// to override the standard base64 []byte encoding.
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(strings.ToUpper(hex.EncodeToString(a)))
}

// UnmarshalJSON accepts any of the representations understood by
// ParseAddress.
func (a *Address) UnmarshalJSON(raw []byte) error {
	var enc string
	if err := json.Unmarshal(raw, &enc); err != nil {
		return errors.Wrap(err, "cannot decode json")
	}
	addr, err := ParseAddress(enc)
	if err != nil {
		return err
	}
	*a = addr
	return nil
}

// ParseAddress decodes an address from its textual form. By default the
// value is hex encoded. A prefix selects a different decoding method:
//
//   bech32:<bech32 string>
//   name:<any text>        address derived from the text with NewAddress
//
// An empty string decodes into a nil address.
func ParseAddress(enc string) (Address, error) {
	chunks := strings.SplitN(enc, ":", 2)
	format := chunks[0]
	if len(chunks) == 1 {
		format = "hex"
	} else {
		enc = chunks[1]
	}

	if len(enc) == 0 {
		return nil, nil
	}

	var addr Address
	switch format {
	case "hex":
		val, err := hex.DecodeString(enc)
		if err != nil {
			return nil, errors.Wrap(errors.ErrInput, "cannot decode hex")
		}
		addr = val
	case "bech32":
		_, payload, err := bech32.Decode(enc)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInput, "bech32 decode: %s", err)
		}
		payload, err = bech32.ConvertBits(payload, 5, 8, false)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInput, "convert bits: %s", err)
		}
		addr = payload
	case "name":
		addr = NewAddress([]byte(enc))
	default:
		return nil, errors.Wrapf(errors.ErrInput, "unknown address format %q", format)
	}
	if err := addr.Validate(); err != nil {
		return nil, err
	}
	return addr, nil
}
