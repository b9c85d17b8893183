package ports

// Keys of the blobs kept in the durable store
const (
	KeyLibrary  = "swg_library_v1"
	KeyHistory  = "swg_history_v1"
	KeySettings = "swg_settings_v1"
)

// Store is durable key/value persistence that survives process restarts.
// Values are opaque JSON blobs; callers own decoding and its fallbacks.
type Store interface {
	// Get returns the stored value and true, or nil and false when absent
	Get(key string) ([]byte, bool, error)

	// Set writes a single value
	Set(key string, value []byte) error

	// BeginTx starts an atomic multi-key write
	BeginTx() (StoreTx, error)

	Close() error
}

// StoreTx groups writes so they land together or not at all
type StoreTx interface {
	Set(key string, value []byte) error
	Commit() error
	Rollback() error
}
