package knowledge

// Service answers knowledge-base lookups over an ordered entry table.
// Entries supplied via options are consulted before the builtin ones, so
// operator-provided packs can shadow builtin advice.
type Service struct {
	entries []*Entry
}

// Option is a functional option for Service configuration
type Option func(*Service)

// WithEntries prepends additional entries to the lookup table
func WithEntries(entries ...*Entry) Option {
	return func(s *Service) {
		s.entries = append(s.entries, entries...)
	}
}

// New creates a knowledge service over the builtin advice table
func New(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	s.entries = append(s.entries, builtinEntries()...)
	return s
}

// Lookup returns the first entry whose topic patterns match the text.
// The boolean is false when no entry matches.
func (x *Service) Lookup(text string) (*Entry, bool) {
	for _, entry := range x.entries {
		if entry.Match(text) {
			return entry, true
		}
	}
	return nil, false
}

// Entries returns the full lookup table in evaluation order
func (x *Service) Entries() []*Entry {
	return x.entries
}
