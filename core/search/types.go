// core/search/types.go
package search

// Match is one accepted window of the text.
// Invariants: Mismatches <= Length and len(Matched) == Length.
type Match struct {
	Pos        int    // 0-based start offset into the text
	Length     int    // window length (== pattern length)
	Mismatches int    // mismatching positions within the window
	Matched    string // text[Pos : Pos+Length]
}

// Repeat is one tandem-repeat region: Count consecutive exact copies of Unit.
type Repeat struct {
	Pos         int
	Unit        string
	Count       int
	TotalLength int // len(Unit) * Count
}

// LCSResult is the outcome of LongestCommonSubstring. Empty inputs (or no
// common substring) yield Length 0 with both positions -1.
type LCSResult struct {
	Substring string
	Pos1      int // start offset in the first sequence
	Pos2      int // first occurrence of Substring in the second sequence
	Length    int
}
