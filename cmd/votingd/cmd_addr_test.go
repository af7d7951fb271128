package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/iov-one/voting"
)

func TestCmdAddr(t *testing.T) {
	chair := voting.NewAddress([]byte("chair"))
	bech, err := chair.Bech32("vote")
	if err != nil {
		t.Fatalf("cannot encode: %s", err)
	}

	cases := map[string]string{
		"name:chair":     chair.String(),
		chair.String():   chair.String(),
		"bech32:" + bech: chair.String(),
	}
	for input, want := range cases {
		t.Run(input, func(t *testing.T) {
			var output bytes.Buffer
			if err := cmdAddr(nil, &output, []string{input}); err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			got := strings.Fields(output.String())
			if len(got) != 2 {
				t.Fatalf("unexpected output: %q", output.String())
			}
			if got[0] != want {
				t.Errorf("want hex %s, got %s", want, got[0])
			}
			if got[1] != bech {
				t.Errorf("want bech32 %s, got %s", bech, got[1])
			}
		})
	}
}

func TestCmdAddrInvalid(t *testing.T) {
	var output bytes.Buffer
	if err := cmdAddr(nil, &output, []string{"unknown:xyz"}); err == nil {
		t.Fatal("expected an error")
	}
}
