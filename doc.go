/*
Package voting defines the interfaces shared by all parts of the voting
ledger: addresses, transactions and messages, handlers and decorators,
key-value storage and notifications.

The ledger is a workflow-gated state machine. An administrative authority
enrolls voters and advances the workflow phases, registered voters submit
proposals and vote, and finally the authority tallies the votes. Each of those
concerns is implemented as an extension under the x/ directory. Extensions
register handlers for their messages with a router, and the ledger package
glues the router, decorators and store together into a single aggregate.

Every operation is processed the same way: a Tx carrying the caller Address
and a Msg is routed to the Handler registered for the message path. The
handler checks the message, the caller permissions and the current phase, then
mutates the store and returns the notifications it caused in the
DeliverResult.
*/
package voting
