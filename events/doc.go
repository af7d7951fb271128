/*
Package events keeps the notifications emitted by committed operations.

Log is the ordered, append-only record of every notification. Feed publishes
notifications to subscribers, grouped by the event kind.
*/
package events
