package voting

import (
	"reflect"

	"github.com/iov-one/voting/errors"
)

// Msg is message for the ledger to take an action
// (Make a state transition). It is just the request, and
// must be validated by the Handlers. The caller information is in the
// wrapping Tx.
type Msg interface {
	// Path returns the message path.
	// This is used by the Router to locate the proper Handler.
	// Msg should be created alongside the Handler that corresponds to them.
	//
	// Must be alphanumeric [0-9A-Za-z_]+
	Path() string

	// Validate performs a stateless sanity check of the message content.
	Validate() error
}

// Tx represent the data sent by a caller to the ledger.
// It includes the actual message, along with the already authenticated
// identity of the caller.
type Tx interface {
	// GetMsg returns the action we wish to communicate
	GetMsg() (Msg, error)

	// Caller returns the principal that sends this transaction.
	Caller() Address
}

// Envelope is the default Tx implementation. It binds a message with the
// address of the caller.
type Envelope struct {
	Sender Address
	Msg    Msg
}

var _ Tx = (*Envelope)(nil)

// NewTx returns a transaction sent by caller.
func NewTx(caller Address, msg Msg) *Envelope {
	return &Envelope{Sender: caller, Msg: msg}
}

// GetMsg implements Tx interface.
func (e *Envelope) GetMsg() (Msg, error) {
	if e.Msg == nil {
		return nil, errors.Wrap(errors.ErrInput, "transaction without a message")
	}
	return e.Msg, nil
}

// Caller implements Tx interface.
func (e *Envelope) Caller() Address {
	return e.Sender
}

// GetPath returns the path of the message, or (missing) if no message.
func GetPath(tx Tx) string {
	msg, err := tx.GetMsg()
	if err == nil && msg != nil {
		return msg.Path()
	}
	return "(missing)"
}

// LoadMsg extracts the message represented by given transaction into given
// destination. Before returning message validation method is called.
func LoadMsg(tx Tx, destination interface{}) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "cannot get transaction message")
	}

	// Destination must be a pointer to the same type as the message
	// carried by the transaction. Messages are passed around as pointers.
	src := reflect.ValueOf(msg)
	dst := reflect.ValueOf(destination)
	if dst.Kind() != reflect.Ptr || dst.IsNil() {
		return errors.Wrap(errors.ErrType, "destination must be a non nil pointer")
	}
	if src.Kind() == reflect.Ptr {
		src = src.Elem()
	}
	if src.Type() != dst.Elem().Type() {
		return errors.Wrapf(errors.ErrType, "want %T message, got %T", destination, msg)
	}
	dst.Elem().Set(src)

	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}
	return nil
}
