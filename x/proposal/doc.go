/*
Package proposal keeps the ordered list of proposals.

Identifier 0 is reserved for the blank proposal created at genesis, so that
a voter can always abstain. Proposals submitted by voters get identifiers 1,
2, ... in registration order.
*/
package proposal
