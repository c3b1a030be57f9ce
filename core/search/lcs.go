// core/search/lcs.go
package search

import "strings"

// LongestCommonSubstring finds the longest substring shared by a and b via
// the classic O(len(a)*len(b)) suffix-length DP. Ties are broken by the
// earliest end index in a (the first window to reach the running maximum
// wins). Pos2 is the first occurrence of the winning substring in b, located
// by an independent search, so it is not necessarily the alignment that
// produced the DP maximum.
func LongestCommonSubstring(a, b string) LCSResult {
	if len(a) == 0 || len(b) == 0 {
		return LCSResult{Pos1: -1, Pos2: -1}
	}

	// Rolling rows: dp[j] = length of the common suffix ending at
	// a[i-1] / b[j-1]. Every cell is written each row, no reset needed.
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	maxLen, end1 := 0, 0
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
				if cur[j] > maxLen {
					maxLen = cur[j]
					end1 = i
				}
			} else {
				cur[j] = 0
			}
		}
		prev, cur = cur, prev
	}

	if maxLen == 0 {
		return LCSResult{Pos1: -1, Pos2: -1}
	}
	sub := a[end1-maxLen : end1]
	return LCSResult{
		Substring: sub,
		Pos1:      end1 - maxLen,
		Pos2:      strings.Index(b, sub),
		Length:    maxLen,
	}
}
