package voting

import (
	"testing"

	"github.com/iov-one/voting/errors"
)

type testMsg struct {
	Value string
}

func (testMsg) Path() string { return "test/msg" }

func (m testMsg) Validate() error {
	if m.Value == "" {
		return errors.Wrap(errors.ErrInput, "value required")
	}
	return nil
}

type otherMsg struct{}

func (otherMsg) Path() string    { return "test/other" }
func (otherMsg) Validate() error { return nil }

func TestLoadMsg(t *testing.T) {
	caller := NewAddress([]byte("caller"))

	cases := map[string]struct {
		tx      Tx
		wantErr *errors.Error
		want    string
	}{
		"pointer message": {
			tx:   NewTx(caller, &testMsg{Value: "a"}),
			want: "a",
		},
		"value message": {
			tx:   NewTx(caller, testMsg{Value: "b"}),
			want: "b",
		},
		"invalid message": {
			tx:      NewTx(caller, &testMsg{}),
			wantErr: errors.ErrInput,
		},
		"wrong type": {
			tx:      NewTx(caller, &otherMsg{}),
			wantErr: errors.ErrType,
		},
		"missing message": {
			tx:      NewTx(caller, nil),
			wantErr: errors.ErrInput,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var msg testMsg
			err := LoadMsg(tc.tx, &msg)
			if !tc.wantErr.Is(err) {
				t.Fatalf("want %v error, got %+v", tc.wantErr, err)
			}
			if tc.wantErr == nil && msg.Value != tc.want {
				t.Fatalf("want %q, got %q", tc.want, msg.Value)
			}
			if !tc.tx.Caller().Equals(caller) {
				t.Fatal("caller lost")
			}
		})
	}
}

func TestGetPath(t *testing.T) {
	if got := GetPath(NewTx(nil, &testMsg{})); got != "test/msg" {
		t.Fatalf("unexpected path %q", got)
	}
	if got := GetPath(NewTx(nil, nil)); got != "(missing)" {
		t.Fatalf("unexpected path %q", got)
	}
}
