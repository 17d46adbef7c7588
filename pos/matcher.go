package pos

import "github.com/morana-nlp/morana/dic"

// Matcher is a bit set over a grammar's dense pos_id space, supporting
// the set algebra of spec.md §4.J: union, intersection, difference, and
// complement, each a word-at-a-time bitset operation rather than a
// per-element loop.
type Matcher struct {
	bits []uint64
	size int // number of pos_ids the matcher was built against
}

func newMatcher(size int) *Matcher {
	return &Matcher{bits: make([]uint64, (size+63)/64), size: size}
}

func (m *Matcher) set(id uint16) {
	m.bits[id/64] |= 1 << (id % 64)
}

// Contains reports whether id is a member.
func (m *Matcher) Contains(id uint16) bool {
	if int(id) >= m.size {
		return false
	}
	return m.bits[id/64]&(1<<(id%64)) != 0
}

// ForTuple builds a Matcher from a partial POS 6-tuple: any field equal
// to "*" matches any value in that position.
func ForTuple(grammar *dic.Grammar, partial dic.POS) *Matcher {
	return ForPredicate(grammar, func(p dic.POS) bool {
		for i, want := range partial {
			if want != "*" && want != p[i] {
				return false
			}
		}
		return true
	})
}

// ForRange builds a Matcher containing every pos_id in [lo, hi).
func ForRange(grammar *dic.Grammar, lo, hi uint16) *Matcher {
	m := newMatcher(grammar.PosTableLen())
	for id := lo; id < hi && int(id) < m.size; id++ {
		m.set(id)
	}
	return m
}

// ForPredicate builds a Matcher from an arbitrary per-tuple predicate,
// evaluated once per pos_id.
func ForPredicate(grammar *dic.Grammar, pred func(dic.POS) bool) *Matcher {
	m := newMatcher(grammar.PosTableLen())
	for id := 0; id < m.size; id++ {
		if pred(grammar.Pos(uint16(id))) {
			m.set(uint16(id))
		}
	}
	return m
}

func (m *Matcher) combine(other *Matcher, op func(a, b uint64) uint64) *Matcher {
	size := m.size
	if other.size > size {
		size = other.size
	}
	out := newMatcher(size)
	for i := range out.bits {
		var a, b uint64
		if i < len(m.bits) {
			a = m.bits[i]
		}
		if i < len(other.bits) {
			b = other.bits[i]
		}
		out.bits[i] = op(a, b)
	}
	return out
}

// Union returns the bitwise-OR of m and other.
func (m *Matcher) Union(other *Matcher) *Matcher {
	return m.combine(other, func(a, b uint64) uint64 { return a | b })
}

// Intersect returns the bitwise-AND of m and other.
func (m *Matcher) Intersect(other *Matcher) *Matcher {
	return m.combine(other, func(a, b uint64) uint64 { return a & b })
}

// Difference returns m with every member of other removed.
func (m *Matcher) Difference(other *Matcher) *Matcher {
	return m.combine(other, func(a, b uint64) uint64 { return a &^ b })
}

// Complement returns the set of every pos_id in [0, m.size) not in m.
func (m *Matcher) Complement() *Matcher {
	out := newMatcher(m.size)
	for i := range out.bits {
		out.bits[i] = ^m.bits[i]
	}
	// clear bits beyond size in the final word
	if rem := m.size % 64; rem != 0 {
		out.bits[len(out.bits)-1] &= (1 << rem) - 1
	}
	return out
}
