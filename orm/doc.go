/*
Package orm provides an easy to use db wrapper.

Break state space into prefixed sections called Buckets. Each bucket contains
only one type of model, stored under its primary key. Models are serialized
with the go-amino codec.

Singletons hold a single model per package, for example the workflow state.
Counters maintain a monotonic number used to assign sequential identifiers.
*/
package orm
