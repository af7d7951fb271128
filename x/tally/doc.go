/*
Package tally computes the winner of the round.

The tally runs once, after the voting session ended. Proposals are scanned in
ascending identifier order and a proposal replaces the current leader only
with a strictly greater vote count, so ties are won by the lowest identifier.
The result is cached and the workflow moves to its terminal phase.
*/
package tally
