package munkres

// ZeroSet is a set of integers in a fixed range [0, capacity), tuned for one
// job: during the augmenting-path search it holds the flattened coordinates
// (row·m + col) of every cell that is currently zero-valued and uncovered,
// and hands out an arbitrary member on demand.
//
// Add, Remove and Any are all amortized O(1). Membership is one bit in a
// 64-bit word; the words that contain at least one set bit are additionally
// threaded onto a doubly linked list so that Any never has to scan empty
// words. The list links are word indices shifted by one, with zero acting
// as the list terminator, which keeps the zero value of the link slices
// meaningful without a separate sentinel constant.
//
// ZeroSet is a plain membership structure: it does not know about covers or
// matrix values. The solver is responsible for keeping it synchronized with
// the cover state on every change.
//
// A ZeroSet is not safe for concurrent use.
type ZeroSet struct {
	words []uint64
	prev  []int // prev[w+1] links word w to the previous non-empty word
	next  []int // next[w+1] links word w to the next non-empty word
	first int   // 1-based index of the first non-empty word, 0 when empty
}

// NewZeroSet creates an empty set able to hold members in [0, capacity).
func NewZeroSet(capacity int) *ZeroSet {
	words := (capacity + 63) >> 6
	return &ZeroSet{
		words: make([]uint64, words),
		prev:  make([]int, words+1),
		next:  make([]int, words+1),
	}
}

// Add inserts i into the set. Adding a member that is already present is a
// no-op. When i's word transitions from empty to non-empty, the word is
// spliced onto the front of the non-empty list.
func (s *ZeroSet) Add(i int) {
	w := i >> 6
	old := s.words[w]
	s.words[w] |= 1 << (uint(i) & 63)
	if old != 0 {
		return
	}
	link := w + 1
	s.prev[s.first] = link // writes the terminator slot when the list was empty
	s.prev[link] = 0
	s.next[link] = s.first
	s.first = link
}

// Remove deletes i from the set. Removing an absent member is a no-op.
// When i's word transitions to empty, the word is spliced out of the
// non-empty list.
func (s *ZeroSet) Remove(i int) {
	w := i >> 6
	old := s.words[w]
	s.words[w] &^= 1 << (uint(i) & 63)
	if old == 0 || s.words[w] != 0 {
		return
	}
	link := w + 1
	p, n := s.prev[link], s.next[link]
	s.prev[n] = p
	s.next[p] = n
	if s.first == link {
		s.first = n
	}
}

// Any returns some member of the set. Which member is returned when several
// are present is unspecified; callers must not assume least-index-first
// order. The second return value is false iff the set is empty.
func (s *ZeroSet) Any() (int, bool) {
	if s.first == 0 {
		return 0, false
	}
	w := s.first - 1
	word := s.words[w]
	return floorLog2(word&-word) + w<<6, true
}

// floorLog2 returns the floored binary logarithm of v, which must be
// nonzero. Any callers feed it a single-bit value (word & -word isolates the
// lowest set bit), so this is "index of the lowest set bit" computed by
// binary search over halving mask widths.
func floorLog2(v uint64) int {
	r := 0
	if v&0xFFFFFFFF00000000 != 0 {
		r |= 32
		v >>= 32
	}
	if v&0x00000000FFFF0000 != 0 {
		r |= 16
		v >>= 16
	}
	if v&0x000000000000FF00 != 0 {
		r |= 8
		v >>= 8
	}
	if v&0x00000000000000F0 != 0 {
		r |= 4
		v >>= 4
	}
	if v&0x000000000000000C != 0 {
		r |= 2
		v >>= 2
	}
	if v&0x0000000000000002 != 0 {
		r |= 1
	}
	return r
}
