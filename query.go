package istr

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// The query methods below render the value to text and delegate to the
// standard string operations on the rendered form. They hold no logic of
// their own beyond that forwarding.

// Len returns the length in bytes of the rendered text.
func (s *String) Len() int { return len(s.String()) }

// RuneCount returns the number of runes in the rendered text.
func (s *String) RuneCount() int { return utf8.RuneCountInString(s.String()) }

// IsEmpty reports whether the rendered text is empty.
func (s *String) IsEmpty() bool { return s.String() == "" }

// IsBlank reports whether the rendered text is empty or consists entirely of
// white space.
func (s *String) IsBlank() bool {
	return strings.TrimFunc(s.String(), unicode.IsSpace) == ""
}

// Bytes returns the rendered text as a fresh byte slice.
func (s *String) Bytes() []byte { return []byte(s.String()) }

// Runes returns the rendered text as a fresh rune slice.
func (s *String) Runes() []rune { return []rune(s.String()) }

// Contains reports whether the rendered text contains substr.
func (s *String) Contains(substr string) bool { return strings.Contains(s.String(), substr) }

// HasPrefix reports whether the rendered text begins with prefix.
func (s *String) HasPrefix(prefix string) bool { return strings.HasPrefix(s.String(), prefix) }

// HasSuffix reports whether the rendered text ends with suffix.
func (s *String) HasSuffix(suffix string) bool { return strings.HasSuffix(s.String(), suffix) }

// Index returns the byte index of the first occurrence of substr in the
// rendered text, or -1.
func (s *String) Index(substr string) int { return strings.Index(s.String(), substr) }

// LastIndex returns the byte index of the last occurrence of substr in the
// rendered text, or -1.
func (s *String) LastIndex(substr string) int { return strings.LastIndex(s.String(), substr) }

// IndexRune returns the byte index of the first occurrence of r in the
// rendered text, or -1.
func (s *String) IndexRune(r rune) int { return strings.IndexRune(s.String(), r) }

// Count counts the non-overlapping occurrences of substr in the rendered text.
func (s *String) Count(substr string) int { return strings.Count(s.String(), substr) }

// Equal reports whether both values render to the same text.
func (s *String) Equal(other *String) bool {
	return other != nil && s.String() == other.String()
}

// EqualString reports whether the rendered text equals str.
func (s *String) EqualString(str string) bool { return s.String() == str }

// EqualFold reports whether the rendered text and str are equal under Unicode
// case-folding.
func (s *String) EqualFold(str string) bool { return strings.EqualFold(s.String(), str) }

// Compare lexicographically compares the rendered text with str.
func (s *String) Compare(str string) int { return strings.Compare(s.String(), str) }

// TrimSpace returns the rendered text with leading and trailing white space
// removed.
func (s *String) TrimSpace() string { return strings.TrimSpace(s.String()) }

// TrimLeadingSpace returns the rendered text with leading white space removed.
func (s *String) TrimLeadingSpace() string {
	return strings.TrimLeftFunc(s.String(), unicode.IsSpace)
}

// TrimTrailingSpace returns the rendered text with trailing white space
// removed.
func (s *String) TrimTrailingSpace() string {
	return strings.TrimRightFunc(s.String(), unicode.IsSpace)
}

// Split slices the rendered text around each instance of sep.
func (s *String) Split(sep string) []string { return strings.Split(s.String(), sep) }

// SplitN slices the rendered text around sep into at most n substrings.
func (s *String) SplitN(sep string, n int) []string { return strings.SplitN(s.String(), sep, n) }

// Fields splits the rendered text around runs of white space.
func (s *String) Fields() []string { return strings.Fields(s.String()) }

// Lines splits the rendered text into lines. A line terminator is "\n",
// "\r\n", or "\r"; a line does not include its terminator, and a terminator
// at the end of the text does not produce an empty trailing line, so empty
// text has no lines.
func (s *String) Lines() []string {
	str := s.String()
	var lines []string
	start := 0
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case '\n':
			lines = append(lines, str[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, str[start:i])
			if i+1 < len(str) && str[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(str) {
		lines = append(lines, str[start:])
	}
	return lines
}

// ToUpper returns the rendered text with all letters upper-cased.
func (s *String) ToUpper() string { return strings.ToUpper(s.String()) }

// ToLower returns the rendered text with all letters lower-cased.
func (s *String) ToLower() string { return strings.ToLower(s.String()) }

// ToUpperIn upper-cases the rendered text using the casing rules of the given
// language.
func (s *String) ToUpperIn(tag language.Tag) string {
	return cases.Upper(tag).String(s.String())
}

// ToLowerIn lower-cases the rendered text using the casing rules of the given
// language.
func (s *String) ToLowerIn(tag language.Tag) string {
	return cases.Lower(tag).String(s.String())
}

// Repeat returns the rendered text repeated count times. A negative count is
// an error.
func (s *String) Repeat(count int) (string, error) {
	if count < 0 {
		return "", fmt.Errorf("istr: repeat count must be non-negative, got %d", count)
	}
	return strings.Repeat(s.String(), count), nil
}

// Replace returns the rendered text with the first n non-overlapping
// instances of old replaced by new; n < 0 replaces all.
func (s *String) Replace(old, new string, n int) string {
	return strings.Replace(s.String(), old, new, n)
}

// ReplaceAll returns the rendered text with all non-overlapping instances of
// old replaced by new.
func (s *String) ReplaceAll(old, new string) string {
	return strings.ReplaceAll(s.String(), old, new)
}

// Match reports whether the rendered text contains a match of the regular
// expression expr.
func (s *String) Match(expr string) (bool, error) {
	return regexp.MatchString(expr, s.String())
}

// RuneAt decodes the rune starting at the given byte index of the rendered
// text, returning the rune and its width in bytes. Like indexing a string,
// it panics if byteIndex is negative or greater than the rendered length.
func (s *String) RuneAt(byteIndex int) (rune, int) {
	return utf8.DecodeRuneInString(s.String()[byteIndex:])
}
