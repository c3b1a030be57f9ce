// core/search/motif.go
package search

import "bytes"

// FindPalindromes reports every substring of seq with length in
// [minLen, maxLen] that reads the same forwards and backwards (a literal
// mirror test, not reverse-complement). Overlapping palindromes are all
// reported. minLen <= 0 defaults to 4; maxLen <= 0 means len(seq).
func FindPalindromes(seq []byte, minLen, maxLen int) []Match {
	n := len(seq)
	if minLen <= 0 {
		minLen = 4
	}
	if maxLen <= 0 || maxLen > n {
		maxLen = n
	}
	var out []Match
	for l := minLen; l <= maxLen; l++ {
		for pos := 0; pos+l <= n; pos++ {
			if isMirror(seq[pos : pos+l]) {
				out = append(out, Match{Pos: pos, Length: l, Matched: string(seq[pos : pos+l])})
			}
		}
	}
	return out
}

func isMirror(s []byte) bool {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		if s[i] != s[j] {
			return false
		}
	}
	return true
}

// FindTandemRepeats scans seq for runs of consecutive exact copies of a unit,
// for every unit size in [minUnit, maxUnit]. Within one unit size reporting
// is non-overlapping (the scan jumps past a recorded run); different unit
// sizes are scanned independently and may overlap each other's regions.
// Defaults: minUnit 1, maxUnit 6, minRepeats 2.
func FindTandemRepeats(seq []byte, minUnit, maxUnit, minRepeats int) []Repeat {
	n := len(seq)
	if minUnit <= 0 {
		minUnit = 1
	}
	if maxUnit <= 0 {
		maxUnit = 6
	}
	if minRepeats < 2 {
		minRepeats = 2
	}
	var out []Repeat
	for unit := minUnit; unit <= maxUnit; unit++ {
		for pos := 0; pos+unit <= n; {
			count := 1
			for pos+unit*(count+1) <= n &&
				bytes.Equal(seq[pos:pos+unit], seq[pos+unit*count:pos+unit*(count+1)]) {
				count++
			}
			if count >= minRepeats {
				out = append(out, Repeat{
					Pos:         pos,
					Unit:        string(seq[pos : pos+unit]),
					Count:       count,
					TotalLength: unit * count,
				})
				pos += unit * count
			} else {
				pos++
			}
		}
	}
	return out
}
