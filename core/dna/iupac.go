// core/dna/iupac.go
package dna

/* -------------------------- IUPAC lookup table -------------------------- */

// iupacMask maps each IUPAC code to its base set: bit0=A bit1=C bit2=G bit3=T.
// Lowercase aliases carry the same mask so matching is case-insensitive.
var iupacMask [256]byte

func init() {
	set := func(c byte, bits byte) {
		iupacMask[c] = bits
		iupacMask[c|0x20] = bits
	}
	set('A', 1)       // 0001
	set('C', 2)       // 0010
	set('G', 4)       // 0100
	set('T', 8)       // 1000
	set('U', 8)       // RNA uracil pairs like T
	set('R', 1|4)     // A/G
	set('Y', 2|8)     // C/T
	set('S', 2|4)     // C/G
	set('W', 1|8)     // A/T
	set('K', 4|8)     // G/T
	set('M', 1|2)     // A/C
	set('B', 2|4|8)   // C/G/T
	set('D', 1|4|8)   // A/G/T
	set('H', 1|2|8)   // A/C/T
	set('V', 1|2|4)   // A/C/G
	set('N', 1|2|4|8) // any
}

// Compatible reports whether two IUPAC codes can stand for at least one
// common base. The relation is symmetric and case-insensitive; 'N' on either
// side always matches, even against a byte outside the IUPAC alphabet.
func Compatible(a, b byte) bool {
	if a&^0x20 == 'N' || b&^0x20 == 'N' {
		return true
	}
	return iupacMask[a]&iupacMask[b] != 0
}

// IsIUPAC reports whether c is a valid IUPAC nucleotide code.
func IsIUPAC(c byte) bool { return iupacMask[c] != 0 }

// Bases expands an IUPAC code to the set of unambiguous bases it stands for.
func Bases(c byte) []byte {
	mask := iupacMask[c]
	out := make([]byte, 0, 4)
	for i, b := range []byte{'A', 'C', 'G', 'T'} {
		if mask&(1<<i) != 0 {
			out = append(out, b)
		}
	}
	return out
}
