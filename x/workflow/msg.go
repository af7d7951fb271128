package workflow

import "github.com/iov-one/voting"

const (
	pathStartProposalsRegisteringMsg = "workflow/start_proposals_registering"
	pathEndProposalsRegisteringMsg   = "workflow/end_proposals_registering"
	pathStartVotingSessionMsg        = "workflow/start_voting_session"
	pathEndVotingSessionMsg          = "workflow/end_voting_session"
)

// StartProposalsRegisteringMsg opens the proposal registration.
type StartProposalsRegisteringMsg struct{}

// EndProposalsRegisteringMsg closes the proposal registration.
type EndProposalsRegisteringMsg struct{}

// StartVotingSessionMsg opens the voting session.
type StartVotingSessionMsg struct{}

// EndVotingSessionMsg closes the voting session.
type EndVotingSessionMsg struct{}

var (
	_ voting.Msg = (*StartProposalsRegisteringMsg)(nil)
	_ voting.Msg = (*EndProposalsRegisteringMsg)(nil)
	_ voting.Msg = (*StartVotingSessionMsg)(nil)
	_ voting.Msg = (*EndVotingSessionMsg)(nil)
)

func (StartProposalsRegisteringMsg) Path() string { return pathStartProposalsRegisteringMsg }
func (EndProposalsRegisteringMsg) Path() string   { return pathEndProposalsRegisteringMsg }
func (StartVotingSessionMsg) Path() string        { return pathStartVotingSessionMsg }
func (EndVotingSessionMsg) Path() string          { return pathEndVotingSessionMsg }

func (StartProposalsRegisteringMsg) Validate() error { return nil }
func (EndProposalsRegisteringMsg) Validate() error   { return nil }
func (StartVotingSessionMsg) Validate() error        { return nil }
func (EndVotingSessionMsg) Validate() error          { return nil }
