// Package fuzzy implements sequence similarity scoring for noisy OCR text.
// Scores are Ratcliff/Obershelp ratios in [0,1]: recursively find the longest
// common block, then match the pieces to its left and right. This tolerates
// the single-character corruptions typical of OCR output far better than
// plain substring checks.
package fuzzy

// Match describes a common block between two rune sequences.
type Match struct {
	A    int // start index in a
	B    int // start index in b
	Size int // length of the block
}

// Ratio returns the similarity between a and b as 2*M/T, where M is the
// total number of matched runes across all matching blocks and T is the
// combined length. Two empty strings score 1.0.
func Ratio(a, b string) float64 {
	ar, br := []rune(a), []rune(b)
	total := len(ar) + len(br)
	if total == 0 {
		return 1.0
	}
	matched := 0
	for _, m := range matchingBlocks(ar, br) {
		matched += m.Size
	}
	return 2.0 * float64(matched) / float64(total)
}

// LongestMatch returns the longest contiguous block common to a and b.
// Among equally long blocks the earliest in a (then earliest in b) wins,
// keeping results deterministic for identical inputs.
func LongestMatch(a, b string) Match {
	ar, br := []rune(a), []rune(b)
	return longestMatch(ar, br, 0, len(ar), 0, len(br), indexRunes(br))
}

func indexRunes(b []rune) map[rune][]int {
	b2j := make(map[rune][]int, len(b))
	for j, r := range b {
		b2j[r] = append(b2j[r], j)
	}
	return b2j
}

func longestMatch(a, b []rune, alo, ahi, blo, bhi int, b2j map[rune][]int) Match {
	best := Match{A: alo, B: blo}
	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		newj2len := make(map[int]int)
		for _, j := range b2j[a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > best.Size {
				best = Match{A: i - k + 1, B: j - k + 1, Size: k}
			}
		}
		j2len = newj2len
	}
	return best
}

// matchingBlocks returns all maximal matching blocks in order, found by
// recursing into the regions left and right of each longest match.
func matchingBlocks(a, b []rune) []Match {
	b2j := indexRunes(b)

	type span struct{ alo, ahi, blo, bhi int }
	queue := []span{{0, len(a), 0, len(b)}}
	var blocks []Match

	for len(queue) > 0 {
		s := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		m := longestMatch(a, b, s.alo, s.ahi, s.blo, s.bhi, b2j)
		if m.Size == 0 {
			continue
		}
		blocks = append(blocks, m)
		if s.alo < m.A && s.blo < m.B {
			queue = append(queue, span{s.alo, m.A, s.blo, m.B})
		}
		if m.A+m.Size < s.ahi && m.B+m.Size < s.bhi {
			queue = append(queue, span{m.A + m.Size, s.ahi, m.B + m.Size, s.bhi})
		}
	}
	return blocks
}
