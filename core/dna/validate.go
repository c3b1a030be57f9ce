// core/dna/validate.go
package dna

import (
	"fmt"
	"unicode"
)

// Normalize strips whitespace and quotes and uppercases the sequence.
func Normalize(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || r == '\'' || r == '"' {
			continue
		}
		out = append(out, unicode.ToUpper(r))
	}
	return string(out)
}

// Validate returns the normalized sequence or an error naming the first
// non-IUPAC character (1-based position).
func Validate(raw string) (string, error) {
	s := Normalize(raw)
	if s == "" {
		return "", fmt.Errorf("empty sequence")
	}
	for i := 0; i < len(s); i++ {
		if !IsIUPAC(s[i]) {
			return "", fmt.Errorf("invalid base %q at %d; allowed: A C G T U R Y S W K M B D H V N", s[i], i+1)
		}
	}
	return s, nil
}

// Clean normalizes the sequence and replaces every non-IUPAC byte with repl
// instead of failing.
func Clean(raw string, repl byte) string {
	out := []byte(Normalize(raw))
	for i := range out {
		if !IsIUPAC(out[i]) {
			out[i] = repl
		}
	}
	return string(out)
}
