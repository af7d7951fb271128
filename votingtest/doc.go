/*
Package votingtest provides mocks and helpers for testing ledger extensions.
*/
package votingtest
