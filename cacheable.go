package istr

import (
	"fmt"
	"time"
)

// PureStringer is an optional interface that types can implement to declare
// their String method pure: deterministic and free of side effects. The
// analysis trusts the declaration; a value whose String method is marked pure
// but renders differently across calls can cause a stale memoized rendering.
type PureStringer interface {
	fmt.Stringer

	// PureStringer is a marker method. Implementations leave it empty.
	PureStringer()
}

// Immutable is an optional interface that types can implement to declare that
// their values never change after construction.
type Immutable interface {
	// ImmutableValue is a marker method. Implementations leave it empty.
	ImmutableValue()
}

// valuesRenderStable reports whether every value in the sequence is
// guaranteed to render identically on every future call, which is the
// condition for memoizing the rendered text. One unstable value poisons the
// whole sequence.
//
// A value is render-stable when it is nil, a builtin immutable kind, a nested
// *String that is itself cacheable, or a type that declares itself via the
// Immutable or PureStringer markers.
func valuesRenderStable(values []any) bool {
	for _, value := range values {
		if value == nil {
			continue
		}
		switch v := value.(type) {
		case string, bool,
			int, int8, int16, int32, int64,
			uint, uint8, uint16, uint32, uint64, uintptr,
			float32, float64, complex64, complex128,
			time.Time, time.Duration:
			// Builtin immutable kinds.
		case *String:
			if v == nil || !v.cacheable {
				return false
			}
		case Immutable:
		case PureStringer:
		default:
			return false
		}
	}
	return true
}
