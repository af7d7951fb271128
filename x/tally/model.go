package tally

import (
	"github.com/iov-one/voting/errors"
	"github.com/iov-one/voting/orm"
)

const packageName = "tally"

// Result is the cached outcome of the tally.
type Result struct {
	WinningProposalID uint64
	WinningVoteCount  uint64
	TotalVotes        uint64
}

var _ orm.Model = (*Result)(nil)

func (r *Result) Validate() error {
	if r.WinningVoteCount > r.TotalVotes {
		return errors.Wrap(errors.ErrModel, "winner has more votes than cast")
	}
	return nil
}

// Plurality returns the result for given vote counts, indexed by proposal
// identifier. An empty list results in the zero value.
func Plurality(counts []uint64) Result {
	var res Result
	for id, n := range counts {
		res.TotalVotes += n
		if n > res.WinningVoteCount {
			res.WinningProposalID = uint64(id)
			res.WinningVoteCount = n
		}
	}
	return res
}
