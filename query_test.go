package istr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func queryFixture() *String {
	return New([]any{"alice", 3}, []string{"  hello, ", " x", "  "})
}

func TestQueryForwarding(t *testing.T) {
	s := queryFixture()
	rendered := s.String()
	require.Equal(t, "  hello, alice x3  ", rendered)

	assert.Equal(t, len(rendered), s.Len())
	assert.Equal(t, []byte(rendered), s.Bytes())
	assert.Equal(t, []rune(rendered), s.Runes())
	assert.Equal(t, 19, s.RuneCount())

	assert.True(t, s.Contains("alice"))
	assert.False(t, s.Contains("bob"))
	assert.True(t, s.HasPrefix("  hel"))
	assert.True(t, s.HasSuffix("3  "))
	assert.Equal(t, strings.Index(rendered, "l"), s.Index("l"))
	assert.Equal(t, strings.LastIndex(rendered, "l"), s.LastIndex("l"))
	assert.Equal(t, strings.IndexRune(rendered, 'x'), s.IndexRune('x'))
	assert.Equal(t, 3, s.Count("l"))

	assert.Equal(t, "hello, alice x3", s.TrimSpace())
	assert.Equal(t, "hello, alice x3  ", s.TrimLeadingSpace())
	assert.Equal(t, "  hello, alice x3", s.TrimTrailingSpace())

	assert.Equal(t, strings.Split(rendered, ","), s.Split(","))
	assert.Equal(t, strings.SplitN(rendered, " ", 3), s.SplitN(" ", 3))
	assert.Equal(t, []string{"hello,", "alice", "x3"}, s.Fields())

	assert.Equal(t, strings.ToUpper(rendered), s.ToUpper())
	assert.Equal(t, strings.ToLower(rendered), s.ToLower())

	assert.Equal(t, strings.Replace(rendered, "l", "L", 1), s.Replace("l", "L", 1))
	assert.Equal(t, strings.ReplaceAll(rendered, "l", "L"), s.ReplaceAll("l", "L"))
}

func TestQueryComparisons(t *testing.T) {
	s := New([]any{"go"}, []string{"", "pher"})

	assert.True(t, s.EqualString("gopher"))
	assert.False(t, s.EqualString("Gopher"))
	assert.True(t, s.EqualFold("GOPHER"))
	assert.Equal(t, 0, s.Compare("gopher"))
	assert.Equal(t, -1, s.Compare("z"))
	assert.Equal(t, 1, s.Compare("a"))

	assert.True(t, s.Equal(New(nil, []string{"gopher"})))
	assert.False(t, s.Equal(New(nil, []string{"gecko"})))
	assert.False(t, s.Equal(nil))
}

func TestEmptinessAndBlankness(t *testing.T) {
	tests := []struct {
		name      string
		s         *String
		wantEmpty bool
		wantBlank bool
	}{
		{"empty", New(nil, nil), true, true},
		{"empty literal", New(nil, []string{""}), true, true},
		{"spaces only", New(nil, []string{" \t\n"}), false, true},
		{"text", New(nil, []string{" a "}), false, false},
		{"value renders blank", New([]any{"  "}, []string{"", ""}), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantEmpty, tt.s.IsEmpty())
			assert.Equal(t, tt.wantBlank, tt.s.IsBlank())
		})
	}
}

func TestRepeat(t *testing.T) {
	s := New([]any{1}, []string{"n", ""})

	got, err := s.Repeat(3)
	require.NoError(t, err)
	assert.Equal(t, "n1n1n1", got)

	got, err = s.Repeat(0)
	require.NoError(t, err)
	assert.Equal(t, "", got)

	_, err = s.Repeat(-1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "repeat count")
}

func TestLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty has no lines", "", nil},
		{"single line", "a", []string{"a"}},
		{"no empty line after trailing terminator", "a\n", []string{"a"}},
		{"newline separated", "a\nb", []string{"a", "b"}},
		{"carriage return separated", "a\rb", []string{"a", "b"}},
		{"crlf is one terminator", "a\r\nb", []string{"a", "b"}},
		{"blank interior line", "a\n\nb", []string{"a", "", "b"}},
		{"terminator only", "\n", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(nil, []string{tt.text})
			assert.Equal(t, tt.want, s.Lines())
		})
	}
}

func TestLocaleAwareCase(t *testing.T) {
	s := New([]any{"istanbul"}, []string{"", ""})

	assert.Equal(t, "ISTANBUL", s.ToUpperIn(language.Und))
	assert.Equal(t, "İSTANBUL", s.ToUpperIn(language.Turkish))

	dotted := New(nil, []string{"DİYARBAKIR"})
	assert.Equal(t, "diyarbakır", dotted.ToLowerIn(language.Turkish))
}

func TestMatch(t *testing.T) {
	s := New([]any{42}, []string{"id-", ""})

	ok, err := s.Match(`^id-\d+$`)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Match(`^\d+$`)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = s.Match(`(`)
	assert.Error(t, err)
}

func TestRuneAt(t *testing.T) {
	s := New(nil, []string{"héllo"})

	r, size := s.RuneAt(0)
	assert.Equal(t, 'h', r)
	assert.Equal(t, 1, size)

	r, size = s.RuneAt(1)
	assert.Equal(t, 'é', r)
	assert.Equal(t, 2, size)

	assert.Panics(t, func() { s.RuneAt(-1) })
	assert.Panics(t, func() { s.RuneAt(s.Len() + 1) })
}
