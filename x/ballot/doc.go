// Package ballot records the votes. Each registered voter votes exactly once
// for an existing proposal, while the voting session is open.
package ballot
