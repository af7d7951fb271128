/*
Package utils contains decorators shared by all ledger operations.

Savepoint makes every delivered operation atomic, Recovery converts panics
into errors, Logging and Metrics report the outcome of each operation.
*/
package utils
