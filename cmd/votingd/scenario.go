package main

import (
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"strings"

	"github.com/iov-one/voting"
	"github.com/iov-one/voting/app"
	"github.com/iov-one/voting/x/ballot"
	"github.com/iov-one/voting/x/proposal"
	"github.com/iov-one/voting/x/tally"
	"github.com/iov-one/voting/x/voter"
	"github.com/iov-one/voting/x/workflow"
)

// Scenario is a voting round description. Each step is a single
// transaction, executed in order.
type Scenario struct {
	Genesis *app.Genesis `json:"genesis"`
	Steps   []Step       `json:"steps"`
}

// Step describes a single transaction and its expected outcome.
type Step struct {
	Caller      voting.Address `json:"caller"`
	Action      string         `json:"action"`
	Subject     voting.Address `json:"subject,omitempty"`
	Description string         `json:"description,omitempty"`
	ProposalID  uint64         `json:"proposal,omitempty"`
	// Expect is a fragment of the error message the step must fail with.
	// An empty value expects the step to succeed.
	Expect string `json:"expect,omitempty"`
}

// Msg returns the message that is executing this step.
func (s Step) Msg() (voting.Msg, error) {
	switch s.Action {
	case "enroll":
		return &voter.EnrollMsg{Subject: s.Subject}, nil
	case "start_proposals_registering":
		return &workflow.StartProposalsRegisteringMsg{}, nil
	case "end_proposals_registering":
		return &workflow.EndProposalsRegisteringMsg{}, nil
	case "start_voting_session":
		return &workflow.StartVotingSessionMsg{}, nil
	case "end_voting_session":
		return &workflow.EndVotingSessionMsg{}, nil
	case "add_proposal":
		return &proposal.AddProposalMsg{Description: s.Description}, nil
	case "vote":
		return &ballot.VoteMsg{ProposalID: s.ProposalID}, nil
	case "tally":
		return &tally.TallyMsg{}, nil
	default:
		return nil, fmt.Errorf("unknown action %q", s.Action)
	}
}

// Verify compares the outcome of this step with the expectation.
func (s Step) Verify(err error) error {
	switch {
	case s.Expect == "" && err != nil:
		return fmt.Errorf("unexpected failure: %s", err)
	case s.Expect != "" && err == nil:
		return fmt.Errorf("expected failure %q, got success", s.Expect)
	case s.Expect != "" && !strings.Contains(err.Error(), s.Expect):
		return fmt.Errorf("expected failure %q, got %q", s.Expect, err)
	}
	return nil
}

func readScenario(r io.Reader) (*Scenario, error) {
	raw, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read: %s", err)
	}
	var sc Scenario
	if err := json.Unmarshal(raw, &sc); err != nil {
		return nil, fmt.Errorf("cannot decode scenario: %s", err)
	}
	for i, st := range sc.Steps {
		if _, err := st.Msg(); err != nil {
			return nil, fmt.Errorf("step %d: %s", i+1, err)
		}
	}
	return &sc, nil
}
