// Package istr provides lazily-rendered interpolated string values.
//
// A String is built from alternating literal text fragments and embedded
// dynamic values. Rendering interleaves the two in positional order and is
// deferred until the text is actually needed; when every embedded value is
// provably render-stable, the rendered text is memoized and later renders
// return it without recomputation.
//
// Strings concatenate losslessly with Concat, which splices the literal and
// value sequences of both operands. Freeze produces an equivalent value backed
// by privately-owned copies of its storage, making it safe to share across
// goroutines.
//
//	name := &user.Name
//	s := istr.New([]any{name}, []string{"hello, ", "!"})
//	fmt.Println(s)          // hello, alice!
//	s.WriteTo(os.Stdout)    // same text, streamed
//
// A non-frozen String shares its backing slices with whoever constructed it.
// The Values and Literals accessors return those live slices, so calling
// either one discards any memoized rendering and disables future memoization:
// the caller now holds a handle through which the contents could change.
// Frozen values return copies instead and keep their cache.
package istr
