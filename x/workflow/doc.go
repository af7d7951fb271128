/*
Package workflow implements the state machine of a voting round.

The round moves through six phases, always one step forward, from
RegisteringVoters to VotesTallied. Only the administrative authority, set at
genesis, can advance the phase. Other extensions use the Controller to gate
their operations on the current phase or on the caller being the authority.
*/
package workflow
