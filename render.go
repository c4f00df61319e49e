package istr

import (
	"fmt"
	"io"
	"reflect"
	"time"
	"unicode/utf8"
)

// valueSizeGuess is the assumed rendered length of one embedded value when
// presizing the render buffer. The true length is unknowable up front; the
// guess only affects allocation, never output.
const valueSizeGuess = 16

// initialCapacity estimates the rendered length: exact for the literal
// fragments, valueSizeGuess per embedded value.
func (s *String) initialCapacity() int {
	n := len(s.values) * valueSizeGuess
	for _, lit := range s.literals {
		n += len(lit)
	}
	return n
}

// String renders the interpolated value to text. If a memoized rendering is
// present it is returned as-is. Otherwise the literal fragments and rendered
// values are interleaved in positional order, and the result is memoized when
// the String is cacheable.
func (s *String) String() string {
	if s.cached != nil {
		return *s.cached
	}
	str := s.render()
	if s.cacheable {
		s.cached = &str
	}
	return str
}

func (s *String) render() string {
	bp := getBuffer(s.initialCapacity())
	b := *bp
	for i, v := range s.values {
		if i < len(s.literals) {
			b = append(b, s.literals[i]...)
		}
		b = append(b, formatValue(v)...)
	}
	if len(s.literals) > len(s.values) {
		b = append(b, s.literals[len(s.values)]...)
	}
	str := string(b)
	*bp = b
	putBuffer(bp)
	return str
}

// WriteTo streams the rendered form to w fragment by fragment, avoiding the
// single in-memory string a call to String would assemble. It implements
// io.WriterTo. The memoized rendering is neither consulted nor filled. A
// write error from w aborts the stream and is returned unmodified, together
// with the number of bytes written so far.
func (s *String) WriteTo(w io.Writer) (int64, error) {
	var written int64
	for i, v := range s.values {
		if i < len(s.literals) {
			n, err := io.WriteString(w, s.literals[i])
			written += int64(n)
			if err != nil {
				return written, err
			}
		}
		if wt, ok := v.(io.WriterTo); ok && !isNilPointer(v) {
			n, err := wt.WriteTo(w)
			written += n
			if err != nil {
				return written, err
			}
			continue
		}
		n, err := io.WriteString(w, formatValue(v))
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	if len(s.literals) > len(s.values) {
		n, err := io.WriteString(w, s.literals[len(s.values)])
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

// Builder receives the fragments of an interpolated value in positional
// order. Values arrive raw: nil stays nil and a nested *String is passed
// as-is, so the builder decides how to interpret structured values instead of
// being handed pre-rendered text.
type Builder interface {
	// Literal receives one literal text fragment.
	Literal(text string)

	// Value receives one embedded value, unrendered.
	Value(v any)
}

// Build drives b with this String's literal fragments and raw values in
// positional order.
func (s *String) Build(b Builder) {
	for i, v := range s.values {
		if i < len(s.literals) {
			b.Literal(s.literals[i])
		}
		b.Value(v)
	}
	if len(s.literals) > len(s.values) {
		b.Literal(s.literals[len(s.values)])
	}
}

// formatValue renders a single embedded value to text. A nil value renders as
// the text "null", as does a typed nil pointer hiding inside a non-nil
// interface. A nested *String renders recursively through its own String
// method; a panic from a value's String method propagates to the caller
// unmodified.
func formatValue(value any) string {
	if value == nil {
		return "null"
	}
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		// Render as text when it is printable UTF-8.
		if utf8.Valid(v) {
			printable := true
			for _, b := range v {
				if b < 32 && b != '\n' && b != '\r' && b != '\t' {
					printable = false
					break
				}
			}
			if printable {
				return string(v)
			}
		}
		return fmt.Sprintf("%v", v)
	case time.Time:
		// Checked before fmt.Stringer so times keep the RFC3339 form
		// rather than time.Time's default String output.
		return v.Format(time.RFC3339)
	case fmt.Stringer:
		// Calling String directly would fault on a nil receiver; render
		// it the way a plain nil value renders.
		if isNilPointer(v) {
			return "null"
		}
		return v.String()
	default:
		return fmt.Sprintf("%v", value)
	}
}

// isNilPointer reports whether value is a typed nil pointer boxed in a
// non-nil interface.
func isNilPointer(value any) bool {
	rv := reflect.ValueOf(value)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
