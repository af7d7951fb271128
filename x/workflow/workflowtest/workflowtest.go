/*
Package workflowtest helps tests of extensions that are gated on the
workflow state.
*/
package workflowtest

import (
	"testing"

	"github.com/iov-one/voting"
	"github.com/iov-one/voting/x/workflow"
)

// InPhase initializes the workflow with given authority and advances it to
// given phase, the same way the authority would.
func InPhase(t testing.TB, db voting.KVStore, authority voting.Address, phase workflow.Phase) {
	t.Helper()

	opts := voting.Options{
		"workflow": []byte(`{"authority": "` + authority.String() + `"}`),
	}
	var init workflow.Initializer
	if err := init.FromGenesis(opts, db); err != nil {
		t.Fatalf("workflow genesis: %+v", err)
	}
	ctrl := workflow.NewController()
	for p := workflow.RegisteringVoters; p < phase; p++ {
		if _, err := ctrl.Advance(db, authority, p); err != nil {
			t.Fatalf("advance from %s: %+v", p, err)
		}
	}
}
