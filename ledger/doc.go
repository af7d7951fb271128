/*
Package ledger exposes a voting round as a single object.

A Ledger owns an in-memory store and the handlers of all voting extensions.
Every mutating call is delivered as a transaction through the decorator
chain, so that it is logged, measured and committed atomically. Calls are
serialized. Notifications of committed transactions are appended to the
event log and then published to subscribers.
*/
package ledger
