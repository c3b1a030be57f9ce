// internal/scan/scan.go

// Package scan turns the core search algorithms into a chunk scanner the
// pipeline can drive: patterns are compiled once, each FASTA chunk is scanned
// on one or both strands, and hits come back in reference-global coordinates.
package scan

import (
	"fmt"

	"seqscan-core/dna"
	"seqscan-core/fasta"
	"seqscan-core/search"
)

// Algorithm selects the matcher used for every pattern of a run.
type Algorithm string

const (
	AlgoBoyerMoore Algorithm = "bm"
	AlgoKMP        Algorithm = "kmp"
	AlgoRabinKarp  Algorithm = "rk"
	AlgoFuzzy      Algorithm = "fuzzy"
	AlgoAmbiguous  Algorithm = "ambig"
	AlgoOverlap    Algorithm = "overlap"
)

// ParseAlgorithm maps a CLI name onto an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(s) {
	case AlgoBoyerMoore, AlgoKMP, AlgoRabinKarp, AlgoFuzzy, AlgoAmbiguous, AlgoOverlap:
		return Algorithm(s), nil
	}
	return "", fmt.Errorf("unknown algorithm %q (want bm|kmp|rk|fuzzy|ambig|overlap)", s)
}

// Hit is one pattern occurrence in reference-global, 0-based coordinates.
// Strand is "+" or "-"; a minus-strand hit is the pattern's reverse complement
// found on the forward text, positioned on the forward reference.
type Hit struct {
	SourceFile string `json:"source_file"`
	SequenceID string `json:"sequence_id"`
	Pattern    string `json:"pattern"`
	Strand     string `json:"strand"`
	Pos        int    `json:"pos"`
	Length     int    `json:"length"`
	Mismatches int    `json:"mismatches"`
	Matched    string `json:"matched"`
}

type compiled struct {
	name string // pattern as given, reported in Hit.Pattern
	fwd  []byte
	rev  []byte // reverse complement; nil when single-stranded
}

// Scanner scans record chunks for a fixed pattern set.
type Scanner struct {
	patterns []compiled
	algo     Algorithm
	maxMM    int
	maxLen   int
}

// New compiles patterns for algo. Patterns are uppercased before matching and
// maxMM is rejected up front when negative so a fuzzy run fails before any
// input is read.
func New(patterns []string, algo Algorithm, maxMM int, bothStrands bool) (*Scanner, error) {
	if len(patterns) == 0 {
		return nil, fmt.Errorf("no patterns given")
	}
	if algo == AlgoFuzzy && maxMM < 0 {
		return nil, fmt.Errorf("max mismatches must be >= 0, got %d", maxMM)
	}
	s := &Scanner{algo: algo, maxMM: maxMM}
	for _, p := range patterns {
		if p == "" {
			return nil, fmt.Errorf("empty pattern")
		}
		up := upper([]byte(p))
		c := compiled{name: p, fwd: up}
		if bothStrands {
			c.rev = dna.RevComp(up)
		}
		s.patterns = append(s.patterns, c)
		if len(up) > s.maxLen {
			s.maxLen = len(up)
		}
	}
	return s, nil
}

// MaxPatternLen returns the longest compiled pattern length. The pipeline
// derives its chunk overlap from it so no hit is lost at a chunk boundary.
func (s *Scanner) MaxPatternLen() int { return s.maxLen }

// ScanChunk scans one chunk and returns hits with Pos shifted by the chunk
// offset into reference-global coordinates.
func (s *Scanner) ScanChunk(file string, c fasta.RecordChunk) []Hit {
	text := upper(c.Seq)
	var hits []Hit
	for _, p := range s.patterns {
		hits = s.appendHits(hits, file, c, p.name, "+", text, p.fwd)
		if p.rev != nil {
			hits = s.appendHits(hits, file, c, p.name, "-", text, p.rev)
		}
	}
	return hits
}

func (s *Scanner) appendHits(hits []Hit, file string, c fasta.RecordChunk, name, strand string, text, pat []byte) []Hit {
	for _, m := range s.find(text, pat) {
		hits = append(hits, Hit{
			SourceFile: file,
			SequenceID: c.RecordID,
			Pattern:    name,
			Strand:     strand,
			Pos:        c.Offset + m.Pos,
			Length:     m.Length,
			Mismatches: m.Mismatches,
			Matched:    m.Matched,
		})
	}
	return hits
}

func (s *Scanner) find(text, pat []byte) []search.Match {
	switch s.algo {
	case AlgoFuzzy:
		// maxMM was validated in New; the error path is unreachable here.
		ms, _ := search.FuzzyMatch(text, pat, s.maxMM)
		return ms
	case AlgoAmbiguous:
		return literal(text, pat, search.MatchAmbiguous(text, pat))
	case AlgoKMP:
		return literal(text, pat, search.KMP(text, pat))
	case AlgoRabinKarp:
		return literal(text, pat, search.RabinKarp(text, pat, search.DefaultPrime))
	case AlgoOverlap:
		return literal(text, pat, search.FindOverlapping(text, pat))
	default:
		return literal(text, pat, search.BoyerMoore(text, pat))
	}
}

func literal(text, pat []byte, pos []int) []search.Match {
	if len(pos) == 0 {
		return nil
	}
	ms := make([]search.Match, len(pos))
	for i, p := range pos {
		ms[i] = search.Match{Pos: p, Length: len(pat), Matched: string(text[p : p+len(pat)])}
	}
	return ms
}

func upper(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		if 'a' <= c && c <= 'z' {
			c -= 0x20
		}
		out[i] = c
	}
	return out
}
