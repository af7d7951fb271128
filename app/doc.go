/*
Package app contains the glue that turns extensions into a ledger.

ChainDecorators wraps a Router with the decorators that are common to every
operation, like recovery, logging or atomic writes.
*/
package app
