package orm

// Model is implemented by any entity that can be stored using a
// ModelBucket or as a singleton.
type Model interface {
	// Validate returns error if the object is not in a valid
	// state to save to the db (eg. field missing, out of range, ...)
	Validate() error
}
