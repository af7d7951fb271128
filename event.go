package voting

// Event is a notification about a state change of the ledger. Each extension
// declares the events it emits.
type Event interface {
	// Kind returns the name of the event. It is used to subscribe to a
	// specific type of notifications and must be a single word.
	Kind() string
}
