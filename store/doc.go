/*
Package store provides the in-memory key-value storage of the ledger.

MemStore is the root store. Wrap it with CacheWrap to open a scratch pad
whose writes stay invisible to the parent until Write is called, or are
dropped with Discard. Cache wraps may be layered. This is what makes every
ledger operation atomic: the handler writes into a cache wrap that is written
only when the handler succeeded.
*/
package store
