package storage

// Store is the key-value persistence port backing the widget's local state:
// current session id, captured lead info and the serialized message log.
// Get reports ok=false when the key is absent; Clear on a missing key is not
// an error.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Clear(key string) error
}
