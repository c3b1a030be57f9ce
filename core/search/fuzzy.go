// core/search/fuzzy.go
package search

import (
	"fmt"

	"seqscan-core/dna"
)

// FuzzyMatch reports every window of text within maxMM mismatches of pattern.
// Windows with zero mismatches are included. maxMM < 0 is a configuration
// error; an unmatchable pattern is not.
func FuzzyMatch(text, pattern []byte, maxMM int) ([]Match, error) {
	if maxMM < 0 {
		return nil, fmt.Errorf("fuzzy match: negative mismatch threshold %d", maxMM)
	}
	n, m := len(text), len(pattern)
	if m == 0 || n < m {
		return nil, nil
	}
	var out []Match
window:
	for pos := 0; pos <= n-m; pos++ {
		mm := 0
		for j := 0; j < m; j++ {
			if text[pos+j] != pattern[j] {
				mm++
				if mm > maxMM {
					continue window
				}
			}
		}
		out = append(out, Match{
			Pos:        pos,
			Length:     m,
			Mismatches: mm,
			Matched:    string(text[pos : pos+m]),
		})
	}
	return out, nil
}

// MatchAmbiguous returns the start offsets where pattern matches text under
// IUPAC ambiguity: case-insensitive, 'N' on either side always matches, and
// two codes are compatible iff their base sets intersect.
func MatchAmbiguous(text, pattern []byte) []int {
	n, m := len(text), len(pattern)
	if m == 0 || n < m {
		return nil
	}
	var out []int
window:
	for pos := 0; pos <= n-m; pos++ {
		for j := 0; j < m; j++ {
			if !dna.Compatible(text[pos+j], pattern[j]) {
				continue window
			}
		}
		out = append(out, pos)
	}
	return out
}
