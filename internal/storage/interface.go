package storage

// Provider is a synchronous string-keyed store. Get reports found=false
// for absent keys; err is reserved for backend failures.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Key-value
	Get(key string) (value string, found bool, err error)
	Set(key, value string) error
	Remove(key string) error

	// Utils
	GetConfigPath() string
}
