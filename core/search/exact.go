// core/search/exact.go
package search

import "bytes"

// DefaultPrime is the Rabin-Karp modulus used when callers pass prime <= 0.
const DefaultPrime = 101

// BoyerMoore returns the start offsets of every occurrence of pattern in text
// found by the bad-character heuristic. An empty pattern, or a pattern longer
// than the text, yields no offsets.
//
// The post-match shift follows the bad-character value of the byte just past
// the window, so overlapping occurrences may or may not be surfaced depending
// on the table. Callers that need every overlap should use KMP or
// FindOverlapping instead.
func BoyerMoore(text, pattern []byte) []int {
	n, m := len(text), len(pattern)
	if m == 0 || n < m {
		return nil
	}

	// Rightmost index of each byte in the pattern, final position excluded.
	// Absent bytes skip as -1.
	var skip [256]int
	for i := range skip {
		skip[i] = -1
	}
	for i := 0; i < m-1; i++ {
		skip[pattern[i]] = i
	}

	var out []int
	for s := 0; s <= n-m; {
		j := m - 1
		for j >= 0 && pattern[j] == text[s+j] {
			j--
		}
		if j < 0 {
			out = append(out, s)
			if s+m < n {
				s += m - skip[text[s+m]]
			} else {
				s++
			}
			continue
		}
		if step := j - skip[text[s+j]]; step > 1 {
			s += step
		} else {
			s++
		}
	}
	return out
}

// KMP returns the start offsets of every occurrence of pattern in text,
// overlapping occurrences included.
func KMP(text, pattern []byte) []int {
	n, m := len(text), len(pattern)
	if m == 0 || n < m {
		return nil
	}
	lps := buildLPS(pattern)
	var out []int
	j := 0
	for i := 0; i < n; i++ {
		for j > 0 && text[i] != pattern[j] {
			j = lps[j-1]
		}
		if text[i] == pattern[j] {
			j++
		}
		if j == m {
			out = append(out, i-m+1)
			j = lps[j-1] // fall back, do not skip: recovers overlaps
		}
	}
	return out
}

// buildLPS computes the longest-proper-prefix-which-is-suffix table.
func buildLPS(pattern []byte) []int {
	lps := make([]int, len(pattern))
	k := 0
	for i := 1; i < len(pattern); i++ {
		for k > 0 && pattern[i] != pattern[k] {
			k = lps[k-1]
		}
		if pattern[i] == pattern[k] {
			k++
		}
		lps[i] = k
	}
	return lps
}

// RabinKarp returns the start offsets of every occurrence of pattern in text
// using a base-256 rolling hash modulo prime (DefaultPrime when prime <= 0).
// Hash equality is always confirmed with a literal comparison, so collisions
// cost an extra compare but never a spurious offset.
func RabinKarp(text, pattern []byte, prime int) []int {
	q := prime
	if q <= 0 {
		q = DefaultPrime
	}
	n, m := len(text), len(pattern)
	if m == 0 || n < m {
		return nil
	}
	const base = 256

	// Weight of the outgoing byte: base^(m-1) mod q.
	h := 1
	for i := 0; i < m-1; i++ {
		h = h * base % q
	}
	ph, th := 0, 0
	for i := 0; i < m; i++ {
		ph = (ph*base + int(pattern[i])) % q
		th = (th*base + int(text[i])) % q
	}

	var out []int
	for s := 0; ; s++ {
		if ph == th && bytes.Equal(text[s:s+m], pattern) {
			out = append(out, s)
		}
		if s == n-m {
			break
		}
		th = ((th-int(text[s])*h)*base + int(text[s+m])) % q
		if th < 0 {
			th += q
		}
	}
	return out
}

// FindOverlapping returns every start offset where pattern occurs literally,
// advancing one position at a time so overlaps are always reported.
func FindOverlapping(text, pattern []byte) []int {
	n, m := len(text), len(pattern)
	if m == 0 || n < m {
		return nil
	}
	var out []int
	for s := 0; s <= n-m; s++ {
		if bytes.Equal(text[s:s+m], pattern) {
			out = append(out, s)
		}
	}
	return out
}
