// ABOUTME: Ratcliff/Obershelp lexical similarity between two strings.
// ABOUTME: Scores by recursively finding longest common character blocks.

package similarity

// Ratio returns the similarity of a and b in [0, 1]: twice the number
// of characters in matching blocks divided by the total length of both
// strings. The greedy block matching can find different blocks
// depending on which string anchors the scan, so both orders are
// scored and the better one returned; Ratio(a, b) == Ratio(b, a)
// always holds. 1.0 for identical strings (including two empty
// strings), 0.0 when no characters are shared.
func Ratio(a, b string) float64 {
	ar, br := []rune(a), []rune(b)
	if len(ar)+len(br) == 0 {
		return 1.0
	}
	forward := blockRatio(ar, br)
	if reverse := blockRatio(br, ar); reverse > forward {
		return reverse
	}
	return forward
}

func blockRatio(a, b []rune) float64 {
	m := newMatcher(a, b)
	matched := 0
	for _, bl := range m.matchingBlocks() {
		matched += bl.size
	}
	return 2.0 * float64(matched) / float64(len(a)+len(b))
}

type block struct {
	aStart int
	bStart int
	size   int
}

type matcher struct {
	a, b []rune
	b2j  map[rune][]int
}

func newMatcher(a, b []rune) *matcher {
	b2j := make(map[rune][]int, len(b))
	for j, r := range b {
		b2j[r] = append(b2j[r], j)
	}
	return &matcher{a: a, b: b, b2j: b2j}
}

// longestMatch finds the longest block of runes common to
// a[alo:ahi] and b[blo:bhi]. Of equally long blocks it prefers the one
// starting earliest in a, then earliest in b.
func (m *matcher) longestMatch(alo, ahi, blo, bhi int) block {
	best := block{aStart: alo, bStart: blo}
	// j2len[j] is the length of the longest run ending at a[i-1], b[j].
	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		next := make(map[int]int)
		for _, j := range m.b2j[m.a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break // positions are ascending
			}
			k := j2len[j-1] + 1
			next[j] = k
			if k > best.size {
				best = block{aStart: i - k + 1, bStart: j - k + 1, size: k}
			}
		}
		j2len = next
	}
	return best
}

// matchingBlocks returns the common blocks found by repeatedly taking
// the longest match and recursing into the pieces to its left and
// right. Block order is unspecified; callers only sum sizes.
func (m *matcher) matchingBlocks() []block {
	type span struct {
		alo, ahi, blo, bhi int
	}
	queue := []span{{0, len(m.a), 0, len(m.b)}}

	var blocks []block
	for len(queue) > 0 {
		s := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		bl := m.longestMatch(s.alo, s.ahi, s.blo, s.bhi)
		if bl.size == 0 {
			continue
		}
		blocks = append(blocks, bl)
		if s.alo < bl.aStart && s.blo < bl.bStart {
			queue = append(queue, span{s.alo, bl.aStart, s.blo, bl.bStart})
		}
		if bl.aStart+bl.size < s.ahi && bl.bStart+bl.size < s.bhi {
			queue = append(queue, span{bl.aStart + bl.size, s.ahi, bl.bStart + bl.size, s.bhi})
		}
	}
	return blocks
}
