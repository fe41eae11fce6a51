package cache

// Ensure NoOpStore implements Store
var _ Store = (*NoOpStore)(nil)

// NoOpStore is a no-operation store used when caching is disabled
type NoOpStore struct{}

// NewNoOpStore creates a new no-operation store
func NewNoOpStore() *NoOpStore {
	return &NoOpStore{}
}

func (n *NoOpStore) Get(string) (*Entry, bool) { return nil, false }
func (n *NoOpStore) Set(string, *Entry)        {}
func (n *NoOpStore) Delete(string)             {}
func (n *NoOpStore) Close() error              { return nil }
