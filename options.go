package fsa

const (
	// DefaultCacheSize is the default number of memoized moves an NFA keeps.
	DefaultCacheSize = 4096

	// DefaultStateLimit bounds the number of NFA states full subset
	// construction accepts; it enumerates 2^n subsets.
	DefaultStateLimit = 16

	// DefaultSubsetLimit bounds the number of subsets reachable-only subset
	// construction may produce.
	DefaultSubsetLimit = 1 << 16

	// maxEnumerableStates is the hard cap of full enumeration, which counts
	// subsets in a uint64.
	maxEnumerableStates = 63
)

type options struct {
	cacheSize int
}

// Option configures an NFA or ε-NFA.
type Option func(*options)

// WithCacheSize sets how many (symbol, state set) moves are memoized before
// the cache is reset. Zero disables memoization.
func WithCacheSize(size int) Option {
	return func(o *options) {
		o.cacheSize = size
	}
}

func newOptions(opts ...Option) *options {
	o := &options{
		cacheSize: DefaultCacheSize,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.cacheSize < 0 {
		o.cacheSize = 0
	}
	return o
}

type determinizeOptions struct {
	stateLimit    int
	subsetLimit   int
	reachableOnly bool
}

// DeterminizeOption configures subset construction.
type DeterminizeOption func(*determinizeOptions)

// WithStateLimit sets the largest number of NFA states that full subset
// construction will enumerate.
func WithStateLimit(limit int) DeterminizeOption {
	return func(o *determinizeOptions) {
		o.stateLimit = limit
	}
}

// WithSubsetLimit sets the largest number of DFA states reachable-only subset
// construction will produce.
func WithSubsetLimit(limit int) DeterminizeOption {
	return func(o *determinizeOptions) {
		o.subsetLimit = limit
	}
}

// WithReachableOnly builds only the subsets reachable from the start subset
// instead of the whole power set.
func WithReachableOnly() DeterminizeOption {
	return func(o *determinizeOptions) {
		o.reachableOnly = true
	}
}

func newDeterminizeOptions(opts ...DeterminizeOption) *determinizeOptions {
	o := &determinizeOptions{
		stateLimit:  DefaultStateLimit,
		subsetLimit: DefaultSubsetLimit,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
