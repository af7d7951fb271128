package workflow

import (
	"testing"

	"github.com/iov-one/voting/errors"
	"github.com/iov-one/voting/votingtest"
)

func TestPhaseNext(t *testing.T) {
	cases := map[string]struct {
		phase   Phase
		want    Phase
		wantErr *errors.Error
	}{
		"registering voters":  {phase: RegisteringVoters, want: ProposalsRegistrationStarted},
		"proposals started":   {phase: ProposalsRegistrationStarted, want: ProposalsRegistrationEnded},
		"proposals ended":     {phase: ProposalsRegistrationEnded, want: VotingSessionStarted},
		"voting started":      {phase: VotingSessionStarted, want: VotingSessionEnded},
		"voting ended":        {phase: VotingSessionEnded, want: VotesTallied},
		"tallied is terminal": {phase: VotesTallied, want: VotesTallied, wantErr: errors.ErrInvalidTransition},
		"unknown phase":       {phase: Phase(42), want: Phase(42), wantErr: errors.ErrInvalidTransition},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := tc.phase.Next()
			if !tc.wantErr.Is(err) {
				t.Fatalf("want %+v error, got %+v", tc.wantErr, err)
			}
			if got != tc.want {
				t.Fatalf("want %s, got %s", tc.want, got)
			}
		})
	}
}

func TestPhaseString(t *testing.T) {
	if got := VotingSessionStarted.String(); got != "VotingSessionStarted" {
		t.Fatalf("unexpected name: %s", got)
	}
	if got := Phase(-1).String(); got != "Phase(-1)" {
		t.Fatalf("unexpected name: %s", got)
	}
}

func TestStateValidate(t *testing.T) {
	cases := map[string]struct {
		state   State
		wantErr *errors.Error
	}{
		"valid": {
			state: State{Authority: votingtest.NewAddress(), Phase: VotingSessionEnded},
		},
		"missing authority": {
			state:   State{Phase: RegisteringVoters},
			wantErr: errors.ErrInput,
		},
		"unknown phase": {
			state:   State{Authority: votingtest.NewAddress(), Phase: 6},
			wantErr: errors.ErrModel,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.state.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("want %+v error, got %+v", tc.wantErr, err)
			}
		})
	}
}
