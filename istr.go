package istr

// String is an interpolated string value: parallel sequences of literal text
// fragments and embedded dynamic values, rendered lazily by interleaving them
// in positional order.
//
// literals[i] precedes values[i], and one additional literal may follow the
// last value, so the following constraint is expected to hold:
//
//	len(literals) == len(values) || len(literals) == len(values)+1
//
// The lengths are not checked; constructing a String from slices that violate
// the constraint results in unpredictable behaviour.
//
// The cacheable flag and the memoized rendering are ordinary unsynchronized
// fields. A non-frozen String shares its backing slices with its constructor
// and must be confined to one goroutine. A frozen String owns private storage
// that is never mutated again, and its memoized rendering only ever moves from
// absent to one deterministically-computed value, so concurrent readers may
// render it freely.
type String struct {
	values    []any
	literals  []string
	frozen    bool
	cacheable bool
	cached    *string
}

// New creates a String from value and literal parts. The new String aliases
// both slices; it does not copy them. The rendered text will be memoized only
// if every value is render-stable (see PureStringer and Immutable).
func New(values []any, literals []string) *String {
	return newString(values, literals, valuesRenderStable(values), nil, false)
}

// newString is the propagating constructor used by Freeze and Concat, where
// cacheability is already known and must not be recomputed.
func newString(values []any, literals []string, cacheable bool, cached *string, frozen bool) *String {
	if frozen {
		values = append([]any(nil), values...)
		literals = append([]string(nil), literals...)
	}
	return &String{
		values:    values,
		literals:  literals,
		frozen:    frozen,
		cacheable: cacheable,
		cached:    cached,
	}
}

// Freeze returns an equivalent String backed by private copies of the value
// and literal slices. The cacheable flag and any memoized rendering carry
// over unchanged. A frozen String never invalidates its cache on accessor
// calls, because no caller can reach its backing storage to mutate it.
func (s *String) Freeze() *String {
	return newString(s.values, s.literals, s.cacheable, s.cached, true)
}

// Values returns the embedded values of this String.
//
// On a non-frozen String this is the same slice passed to the constructor:
// changing its contents changes the String. Because the caller could now
// mutate a value behind the cache's back, any memoized rendering is discarded
// and future renders will not be memoized. On a frozen String a copy is
// returned and cache state is untouched.
func (s *String) Values() []any {
	if s.frozen {
		return append([]any(nil), s.values...)
	}
	s.cacheable = false
	s.cached = nil
	return s.values
}

// Literals returns the literal fragments of this String, with the same
// aliasing and cache-invalidation behaviour as Values.
func (s *String) Literals() []string {
	if s.frozen {
		return append([]string(nil), s.literals...)
	}
	s.cacheable = false
	s.cached = nil
	return s.literals
}

// Frozen reports whether this String owns private, never-mutated storage.
func (s *String) Frozen() bool { return s.frozen }

// Cacheable reports whether renders of this String may currently be memoized.
func (s *String) Cacheable() bool { return s.cacheable }

// ValueCount returns the number of embedded values.
func (s *String) ValueCount() int { return len(s.values) }
