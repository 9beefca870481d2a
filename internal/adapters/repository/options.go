package repository

// Option configures a MemoryStore.
type Option func(*MemoryStore)

// WithHistoryLimit sets how many runs are kept before the oldest is
// evicted. Values below one are ignored.
func WithHistoryLimit(n int) Option {
	return func(s *MemoryStore) {
		if n >= 1 {
			s.limit = n
		}
	}
}
