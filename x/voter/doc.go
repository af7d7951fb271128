/*
Package voter keeps the registry of enrolled voters.

Only the administrative authority can enroll voters, and only while the
workflow is in the RegisteringVoters phase. The registry also provides the
registered voter gate used by every proposal and ballot operation.
*/
package voter
