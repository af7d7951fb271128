package tally

import (
	"context"
	"testing"

	"github.com/iov-one/voting"
	"github.com/iov-one/voting/app"
	"github.com/iov-one/voting/errors"
	"github.com/iov-one/voting/orm"
	"github.com/iov-one/voting/store"
	"github.com/iov-one/voting/votingtest"
	"github.com/iov-one/voting/votingtest/assert"
	"github.com/iov-one/voting/x/proposal"
	"github.com/iov-one/voting/x/voter"
	"github.com/iov-one/voting/x/workflow"
	"github.com/iov-one/voting/x/workflow/workflowtest"
)

func TestTally(t *testing.T) {
	owner := votingtest.NewAddress()
	alice := votingtest.NewAddress()

	specs := map[string]struct {
		Phase          workflow.Phase
		Votes          []uint64
		Caller         voting.Address
		WantCheckErr   *errors.Error
		WantDeliverErr *errors.Error
		WantMessage    string
		WantResult     Result
		WantPhase      workflow.Phase
	}{
		"tally picks the lowest id on a tie": {
			Phase:      workflow.VotingSessionEnded,
			Votes:      []uint64{0, 2, 2, 1},
			Caller:     owner,
			WantResult: Result{WinningProposalID: 1, WinningVoteCount: 2, TotalVotes: 5},
			WantPhase:  workflow.VotesTallied,
		},
		"no votes": {
			Phase:      workflow.VotingSessionEnded,
			Votes:      []uint64{0, 0},
			Caller:     owner,
			WantResult: Result{},
			WantPhase:  workflow.VotesTallied,
		},
		"only the owner tallies": {
			Phase:          workflow.VotingSessionEnded,
			Votes:          []uint64{0, 1},
			Caller:         alice,
			WantCheckErr:   errors.ErrUnauthorized,
			WantDeliverErr: errors.ErrUnauthorized,
			WantMessage:    "caller is not the owner: unauthorized",
			WantPhase:      workflow.VotingSessionEnded,
		},
		"voting session still open": {
			Phase:          workflow.VotingSessionStarted,
			Votes:          []uint64{0, 1},
			Caller:         owner,
			WantCheckErr:   errors.ErrPhase,
			WantDeliverErr: errors.ErrPhase,
			WantMessage:    "Current status is not voting session ended: phase violation",
			WantPhase:      workflow.VotingSessionStarted,
		},
		"second tally": {
			Phase:          workflow.VotesTallied,
			Votes:          []uint64{0, 1},
			Caller:         owner,
			WantCheckErr:   errors.ErrPhase,
			WantDeliverErr: errors.ErrPhase,
			WantPhase:      workflow.VotesTallied,
		},
	}

	ctrl := workflow.NewController()
	proposals := proposal.NewRegistry(voter.NewRegistry())
	engine := NewEngine(ctrl, proposals)
	rt := app.NewRouter()
	RegisterRoutes(rt, engine)

	for msg, spec := range specs {
		t.Run(msg, func(t *testing.T) {
			ctx := context.Background()
			db := store.MemStore()
			for id, n := range spec.Votes {
				_, err := proposals.Append(db, &proposal.Proposal{Description: "p"})
				assert.Nil(t, err)
				for i := uint64(0); i < n; i++ {
					assert.Nil(t, proposals.CountVote(db, uint64(id)))
				}
			}
			workflowtest.InPhase(t, db, owner, spec.Phase)

			tx := voting.NewTx(spec.Caller, &TallyMsg{})
			cache := db.CacheWrap()
			if _, err := rt.Check(ctx, cache, tx); !spec.WantCheckErr.Is(err) {
				t.Fatalf("check expected: %+v  but got %+v", spec.WantCheckErr, err)
			}
			cache.Discard()

			res, err := rt.Deliver(ctx, db, tx)
			if !spec.WantDeliverErr.Is(err) {
				t.Fatalf("deliver expected: %+v  but got %+v", spec.WantDeliverErr, err)
			}
			if spec.WantMessage != "" {
				assert.Equal(t, spec.WantMessage, err.Error())
			}

			phase, err := ctrl.CurrentPhase(db)
			assert.Nil(t, err)
			assert.Equal(t, spec.WantPhase, phase)

			if spec.WantDeliverErr != nil {
				return
			}
			got, err := engine.Result(db)
			assert.Nil(t, err)
			assert.Equal(t, &spec.WantResult, got)
			assert.Equal(t, spec.WantResult.WinningProposalID, orm.DecodeID(res.Data))
			want := []voting.Event{workflow.PhaseChanged{Previous: workflow.VotingSessionEnded, Next: workflow.VotesTallied}}
			assert.Equal(t, want, res.Events)
		})
	}
}

func TestWinningProposalIDBeforeTally(t *testing.T) {
	db := store.MemStore()
	engine := NewEngine(workflow.NewController(), proposal.NewRegistry(voter.NewRegistry()))
	id, err := engine.WinningProposalID(db)
	assert.Nil(t, err)
	assert.Equal(t, uint64(0), id)
}
