package istr

// Concat returns a new String whose rendering equals the rendering of s
// followed by the rendering of other.
//
// The operand is normalized through Freeze first when it is not already
// frozen, so mutation of other's backing slices after (or concurrently with)
// the call cannot reach the result; s is read as-is under the assumption the
// caller does not mutate it during the call. The result is cacheable only if
// both operands are, owns fresh slices, is not frozen, and carries no
// memoized rendering: the join renders lazily on first use.
func (s *String) Concat(other *String) *String {
	o := other
	if !o.frozen {
		o = o.Freeze()
	}

	values := make([]any, 0, len(s.values)+len(o.values))
	values = append(values, s.values...)
	values = append(values, o.values...)

	var literals []string
	if len(s.literals) == len(s.values)+1 && len(o.literals) > 0 {
		// Both sides have a literal adjacent to the splice point. Fuse the
		// two into one fragment so the literal/value interleaving survives
		// the join.
		fused := s.literals[len(s.literals)-1] + o.literals[0]
		literals = make([]string, 0, len(s.literals)+len(o.literals)-1)
		literals = append(literals, s.literals[:len(s.literals)-1]...)
		literals = append(literals, fused)
		literals = append(literals, o.literals[1:]...)
	} else {
		// s ends on a value or o starts on one; plain append keeps the
		// length constraint intact.
		literals = make([]string, 0, len(s.literals)+len(o.literals))
		literals = append(literals, s.literals...)
		literals = append(literals, o.literals...)
	}

	return &String{
		values:    values,
		literals:  literals,
		cacheable: s.cacheable && o.cacheable,
	}
}
