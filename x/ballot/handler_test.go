package ballot

import (
	"context"
	"testing"

	"github.com/iov-one/voting"
	"github.com/iov-one/voting/app"
	"github.com/iov-one/voting/errors"
	"github.com/iov-one/voting/store"
	"github.com/iov-one/voting/votingtest"
	"github.com/iov-one/voting/votingtest/assert"
	"github.com/iov-one/voting/x/proposal"
	"github.com/iov-one/voting/x/utils"
	"github.com/iov-one/voting/x/voter"
	"github.com/iov-one/voting/x/workflow"
	"github.com/iov-one/voting/x/workflow/workflowtest"
)

func TestVote(t *testing.T) {
	owner := votingtest.NewAddress()
	alice := votingtest.NewAddress()
	bob := votingtest.NewAddress()
	stranger := votingtest.NewAddress()

	specs := map[string]struct {
		Phase          workflow.Phase
		Voted          map[string]uint64
		Caller         voting.Address
		Msg            VoteMsg
		WantCheckErr   *errors.Error
		WantDeliverErr *errors.Error
		WantMessage    string
		// WantVotes is the vote count of every proposal after the
		// delivery.
		WantVotes []uint64
	}{
		"vote for a proposal": {
			Phase:     workflow.VotingSessionStarted,
			Caller:    alice,
			Msg:       VoteMsg{ProposalID: 1},
			WantVotes: []uint64{0, 1, 0},
		},
		"vote blank": {
			Phase:     workflow.VotingSessionStarted,
			Caller:    alice,
			Msg:       VoteMsg{ProposalID: proposal.BlankID},
			WantVotes: []uint64{1, 0, 0},
		},
		"non voter": {
			Phase:          workflow.VotingSessionStarted,
			Caller:         stranger,
			Msg:            VoteMsg{ProposalID: 1},
			WantCheckErr:   errors.ErrUnauthorized,
			WantDeliverErr: errors.ErrUnauthorized,
			WantMessage:    "You're not a voter: unauthorized",
			WantVotes:      []uint64{0, 0, 0},
		},
		"voting not started": {
			Phase:          workflow.ProposalsRegistrationEnded,
			Caller:         alice,
			Msg:            VoteMsg{ProposalID: 1},
			WantCheckErr:   errors.ErrPhase,
			WantDeliverErr: errors.ErrPhase,
			WantMessage:    "Voting session havent started yet: phase violation",
			WantVotes:      []uint64{0, 0, 0},
		},
		"voting ended": {
			Phase:          workflow.VotingSessionEnded,
			Caller:         alice,
			Msg:            VoteMsg{ProposalID: 1},
			WantCheckErr:   errors.ErrPhase,
			WantDeliverErr: errors.ErrPhase,
			WantVotes:      []uint64{0, 0, 0},
		},
		"vote twice": {
			Phase:          workflow.VotingSessionStarted,
			Voted:          map[string]uint64{"alice": 2},
			Caller:         alice,
			Msg:            VoteMsg{ProposalID: 1},
			WantCheckErr:   errors.ErrDuplicateVote,
			WantDeliverErr: errors.ErrDuplicateVote,
			WantMessage:    "You have already voted: duplicate vote",
			WantVotes:      []uint64{0, 0, 1},
		},
		"unknown proposal": {
			Phase:          workflow.VotingSessionStarted,
			Caller:         alice,
			Msg:            VoteMsg{ProposalID: 3},
			WantCheckErr:   errors.ErrProposalNotFound,
			WantDeliverErr: errors.ErrProposalNotFound,
			WantMessage:    "Proposal not found: proposal not found",
			WantVotes:      []uint64{0, 0, 0},
		},
		"other voters are independent": {
			Phase:     workflow.VotingSessionStarted,
			Voted:     map[string]uint64{"bob": 1},
			Caller:    alice,
			Msg:       VoteMsg{ProposalID: 1},
			WantVotes: []uint64{0, 2, 0},
		},
	}

	ctrl := workflow.NewController()
	voters := voter.NewRegistry()
	proposals := proposal.NewRegistry(voters)
	rt := app.NewRouter()
	RegisterRoutes(rt, ctrl, voters, proposals)
	handler := app.ChainDecorators(utils.NewSavepoint().OnDeliver()).WithHandler(rt)

	for msg, spec := range specs {
		t.Run(msg, func(t *testing.T) {
			ctx := context.Background()
			db := store.MemStore()
			names := map[string]voting.Address{"alice": alice, "bob": bob}

			var init proposal.Initializer
			assert.Nil(t, init.FromGenesis(voting.Options{}, db))
			assert.Nil(t, voters.Enroll(db, alice))
			assert.Nil(t, voters.Enroll(db, bob))
			for _, d := range []string{"Test 1", "Test 2"} {
				_, err := proposals.Append(db, &proposal.Proposal{Description: d})
				assert.Nil(t, err)
			}

			// Votes are cast in the voting session, later phases are
			// reached afterwards.
			start := spec.Phase
			if start > workflow.VotingSessionStarted {
				start = workflow.VotingSessionStarted
			}
			workflowtest.InPhase(t, db, owner, start)
			for name, id := range spec.Voted {
				tx := voting.NewTx(names[name], &VoteMsg{ProposalID: id})
				_, err := handler.Deliver(ctx, db, tx)
				assert.Nil(t, err)
			}
			for p := start; p < spec.Phase; p++ {
				_, err := ctrl.Advance(db, owner, p)
				assert.Nil(t, err)
			}

			tx := voting.NewTx(spec.Caller, &spec.Msg)
			if _, err := handler.Check(ctx, db, tx); !spec.WantCheckErr.Is(err) {
				t.Fatalf("check expected: %+v  but got %+v", spec.WantCheckErr, err)
			}
			res, err := handler.Deliver(ctx, db, tx)
			if !spec.WantDeliverErr.Is(err) {
				t.Fatalf("deliver expected: %+v  but got %+v", spec.WantDeliverErr, err)
			}
			if spec.WantMessage != "" {
				assert.Equal(t, spec.WantMessage, err.Error())
			}

			var votes []uint64
			err = proposals.Each(db, func(_ uint64, p *proposal.Proposal) error {
				votes = append(votes, p.VoteCount)
				return nil
			})
			assert.Nil(t, err)
			assert.Equal(t, spec.WantVotes, votes)

			if spec.WantDeliverErr != nil {
				return
			}
			assert.Equal(t, []voting.Event{Voted{Voter: spec.Caller, ProposalID: spec.Msg.ProposalID}}, res.Events)
			v, err := voters.Voter(db, alice, spec.Caller)
			assert.Nil(t, err)
			assert.Equal(t, &voter.Voter{Registered: true, Voted: true, VotedProposalID: spec.Msg.ProposalID}, v)
		})
	}
}

func TestVoteIsAtomic(t *testing.T) {
	owner := votingtest.NewAddress()
	alice := votingtest.NewAddress()

	ctrl := workflow.NewController()
	voters := voter.NewRegistry()
	proposals := proposal.NewRegistry(voters)
	rt := app.NewRouter()
	RegisterRoutes(rt, ctrl, voters, proposals)

	db := store.MemStore()
	var init proposal.Initializer
	assert.Nil(t, init.FromGenesis(voting.Options{}, db))
	assert.Nil(t, voters.Enroll(db, alice))
	workflowtest.InPhase(t, db, owner, workflow.VotingSessionStarted)

	// Counting the vote fails after the voter record was written. The
	// savepoint must drop the voter update as well.
	failing := &failingCounter{Handler: rt}
	handler := app.ChainDecorators(utils.NewSavepoint().OnDeliver()).WithHandler(failing)

	_, err := handler.Deliver(context.Background(), db, voting.NewTx(alice, &VoteMsg{ProposalID: 0}))
	assert.IsErr(t, errors.ErrDatabase, err)

	v, err := voters.Voter(db, alice, alice)
	assert.Nil(t, err)
	assert.Equal(t, false, v.Voted)
	p, err := proposals.Load(db, 0)
	assert.Nil(t, err)
	assert.Equal(t, uint64(0), p.VoteCount)
}

// failingCounter delivers the message and then fails, as if the store
// rejected the last write.
type failingCounter struct {
	voting.Handler
}

func (f *failingCounter) Deliver(ctx voting.Context, db voting.KVStore, tx voting.Tx) (*voting.DeliverResult, error) {
	if _, err := f.Handler.Deliver(ctx, db, tx); err != nil {
		return nil, err
	}
	return nil, errors.Wrap(errors.ErrDatabase, "disk full")
}
