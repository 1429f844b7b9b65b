package driven

// ConfigStore provides persistent key-value configuration.
// The storage root for document collections is resolved through this
// store rather than read from process-wide state.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	Get(key string) (string, bool)

	// Set stores a configuration value and persists it.
	Set(key, value string) error
}

// Well-known configuration keys.
const (
	// KeyDocumentsDir is the root directory for destination collections.
	KeyDocumentsDir = "storage.documents_dir"
)
