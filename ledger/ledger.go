package ledger

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"

	"github.com/iov-one/voting"
	"github.com/iov-one/voting/app"
	"github.com/iov-one/voting/errors"
	"github.com/iov-one/voting/events"
	"github.com/iov-one/voting/metrics"
	"github.com/iov-one/voting/orm"
	"github.com/iov-one/voting/store"
	"github.com/iov-one/voting/x/ballot"
	"github.com/iov-one/voting/x/proposal"
	"github.com/iov-one/voting/x/tally"
	"github.com/iov-one/voting/x/utils"
	"github.com/iov-one/voting/x/voter"
	"github.com/iov-one/voting/x/workflow"
)

// Ledger is a voting round.
type Ledger struct {
	mu      sync.RWMutex
	db      voting.CacheableKVStore
	handler voting.Handler
	ctx     voting.Context
	height  int64

	ctrl      workflow.Controller
	voters    voter.Registry
	proposals proposal.Registry
	engine    tally.Engine

	log     *events.Log
	feed    *events.Feed
	metrics *metrics.Metrics
}

// New returns a ledger initialized from given genesis.
func New(gen *app.Genesis, opts ...Option) (*Ledger, error) {
	conf := defaultConfig()
	for _, o := range opts {
		o(&conf)
	}

	if gen == nil {
		return nil, errors.Wrap(errors.ErrInput, "genesis required")
	}
	if gen.ChainID != "" && !voting.IsValidChainID(gen.ChainID) {
		return nil, errors.Wrapf(errors.ErrInput, "chain id %q", gen.ChainID)
	}

	ctrl := workflow.NewController()
	voters := voter.NewRegistry()
	proposals := proposal.NewRegistry(voters)
	engine := tally.NewEngine(ctrl, proposals)

	rt := app.NewRouter()
	workflow.RegisterRoutes(rt, ctrl)
	voter.RegisterRoutes(rt, ctrl, voters)
	proposal.RegisterRoutes(rt, ctrl, proposals)
	ballot.RegisterRoutes(rt, ctrl, voters, proposals)
	tally.RegisterRoutes(rt, engine)

	// Recovery is outside of the savepoint, so that a panic discards all
	// writes of the transaction.
	handler := app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		utils.NewMetrics(conf.metrics),
		utils.NewSavepoint().OnDeliver(),
	).WithHandler(rt)

	db := store.MemStore()
	if err := app.InitGenesis(db, gen, &workflow.Initializer{}, &proposal.Initializer{}); err != nil {
		return nil, err
	}

	ctx := voting.WithLogger(context.Background(), conf.logger)
	ctx = voting.WithLogInfo(ctx, "module", "ledger")
	if gen.ChainID != "" {
		ctx = voting.WithChainID(ctx, gen.ChainID)
	}
	paths := rt.Paths()
	sort.Strings(paths)
	voting.GetLogger(ctx).Debug("ledger initialized",
		"chain_id", gen.ChainID,
		"paths", strings.Join(paths, ","))

	l := &Ledger{
		db:        db,
		handler:   handler,
		ctx:       ctx,
		ctrl:      ctrl,
		voters:    voters,
		proposals: proposals,
		engine:    engine,
		log:       events.NewLog(),
		feed:      events.NewFeed(),
		metrics:   conf.metrics,
	}
	l.updateGauges()
	return l, nil
}

// NewWithAuthority returns a ledger governed by given authority, with
// default settings for everything else.
func NewWithAuthority(authority voting.Address, opts ...Option) (*Ledger, error) {
	if err := authority.Validate(); err != nil {
		return nil, errors.Wrap(err, "authority")
	}
	conf, err := json.Marshal(struct {
		Authority string `json:"authority"`
	}{Authority: authority.String()})
	if err != nil {
		return nil, errors.Wrap(errors.ErrHuman, err.Error())
	}
	gen := &app.Genesis{
		AppOptions: voting.Options{"workflow": conf},
	}
	return New(gen, opts...)
}

// Deliver executes given transaction. Writes are committed only if it
// succeeds. Notifications are published before this method returns.
func (l *Ledger) Deliver(tx voting.Tx) (*voting.DeliverResult, error) {
	l.mu.Lock()
	l.height++
	ctx := voting.WithHeight(l.ctx, l.height)
	res, err := l.handler.Deliver(ctx, l.db, tx)
	if err == nil {
		l.log.Append(res.Events...)
		for _, ev := range res.Events {
			if ev.Kind() == ballot.KindVoted {
				l.metrics.AddVote()
			}
		}
		l.updateGauges()
	}
	l.mu.Unlock()

	if err != nil {
		return nil, err
	}
	// Publish outside of the lock, so that subscribers can query the
	// ledger.
	l.feed.Publish(res.Events...)
	return res, nil
}

// Check runs given transaction without committing any change.
func (l *Ledger) Check(tx voting.Tx) (*voting.CheckResult, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.handler.Check(l.ctx, l.db, tx)
}

// updateGauges must be called with the lock held.
func (l *Ledger) updateGauges() {
	if phase, err := l.ctrl.CurrentPhase(l.db); err == nil {
		l.metrics.SetPhase(int64(phase))
	}
	if n, err := l.voters.Count(l.db); err == nil {
		l.metrics.SetVoters(n)
	}
	if n, err := l.proposals.Count(l.db); err == nil {
		l.metrics.SetProposals(n)
	}
}

func (l *Ledger) deliver(caller voting.Address, msg voting.Msg) (*voting.DeliverResult, error) {
	return l.Deliver(voting.NewTx(caller, msg))
}

// Enroll registers subject as a voter. Caller must be the authority.
func (l *Ledger) Enroll(caller, subject voting.Address) error {
	_, err := l.deliver(caller, &voter.EnrollMsg{Subject: subject})
	return err
}

// StartProposalsRegistering opens the proposal registration.
func (l *Ledger) StartProposalsRegistering(caller voting.Address) error {
	_, err := l.deliver(caller, &workflow.StartProposalsRegisteringMsg{})
	return err
}

// EndProposalsRegistering closes the proposal registration.
func (l *Ledger) EndProposalsRegistering(caller voting.Address) error {
	_, err := l.deliver(caller, &workflow.EndProposalsRegisteringMsg{})
	return err
}

// StartVotingSession opens the voting session.
func (l *Ledger) StartVotingSession(caller voting.Address) error {
	_, err := l.deliver(caller, &workflow.StartVotingSessionMsg{})
	return err
}

// EndVotingSession closes the voting session.
func (l *Ledger) EndVotingSession(caller voting.Address) error {
	_, err := l.deliver(caller, &workflow.EndVotingSessionMsg{})
	return err
}

// AddProposal registers a proposal and returns its identifier.
func (l *Ledger) AddProposal(caller voting.Address, description string) (uint64, error) {
	res, err := l.deliver(caller, &proposal.AddProposalMsg{Description: description})
	if err != nil {
		return 0, err
	}
	return orm.DecodeID(res.Data), nil
}

// Vote casts the caller's vote.
func (l *Ledger) Vote(caller voting.Address, proposalID uint64) error {
	_, err := l.deliver(caller, &ballot.VoteMsg{ProposalID: proposalID})
	return err
}

// Tally closes the round and returns the winning proposal identifier.
func (l *Ledger) Tally(caller voting.Address) (uint64, error) {
	res, err := l.deliver(caller, &tally.TallyMsg{})
	if err != nil {
		return 0, err
	}
	return orm.DecodeID(res.Data), nil
}

// GetVoter returns the record of subject. Caller must be a registered voter.
func (l *Ledger) GetVoter(caller, subject voting.Address) (*voter.Voter, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.voters.Voter(l.db, caller, subject)
}

// GetOneProposal returns a proposal. Caller must be a registered voter.
func (l *Ledger) GetOneProposal(caller voting.Address, id uint64) (*proposal.Proposal, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.proposals.Proposal(l.db, caller, id)
}

// WinningProposalID returns the cached tally winner, 0 before the tally.
func (l *Ledger) WinningProposalID() (uint64, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.engine.WinningProposalID(l.db)
}

// Result returns the cached tally result.
func (l *Ledger) Result() (*tally.Result, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.engine.Result(l.db)
}

// CurrentPhase returns the workflow phase.
func (l *Ledger) CurrentPhase() (workflow.Phase, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.ctrl.CurrentPhase(l.db)
}

// Authority returns the administrative authority.
func (l *Ledger) Authority() (voting.Address, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.ctrl.Authority(l.db)
}

// Standing is the state of a single proposal.
type Standing struct {
	ID          uint64
	Description string
	VoteCount   uint64
}

// Standings returns all proposals with their vote counts, in identifier
// order. It is not gated on the caller and is meant for operators.
func (l *Ledger) Standings() ([]Standing, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []Standing
	err := l.proposals.Each(l.db, func(id uint64, p *proposal.Proposal) error {
		out = append(out, Standing{ID: id, Description: p.Description, VoteCount: p.VoteCount})
		return nil
	})
	return out, err
}

// Events returns all notifications of committed transactions, in order.
func (l *Ledger) Events() []voting.Event {
	return l.log.All()
}

// EventsOf returns notifications of given kind, in order.
func (l *Ledger) EventsOf(kind string) []voting.Event {
	return l.log.Kind(kind)
}

// Subscribe registers fn to be called with every notification of given
// kind. Use events.All to receive all notifications. Subscribers are
// called synchronously after the transaction is committed.
func (l *Ledger) Subscribe(kind string, fn func(voting.Event)) (cancel func()) {
	return l.feed.Subscribe(kind, fn)
}
