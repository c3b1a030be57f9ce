// core/dna/rc.go
package dna

var complement [256]byte

func init() {
	set := func(a, b byte) {
		complement[a] = b
		complement[a|0x20] = b | 0x20
	}
	set('A', 'T')
	set('C', 'G')
	set('G', 'C')
	set('T', 'A')
	set('U', 'A')
	set('R', 'Y')
	set('Y', 'R')
	set('S', 'S')
	set('W', 'W')
	set('K', 'M')
	set('M', 'K')
	set('B', 'V')
	set('V', 'B')
	set('D', 'H')
	set('H', 'D')
	set('N', 'N')
}

// Complement returns the IUPAC complement of a single base; unknown bytes
// complement to 'N'.
func Complement(c byte) byte {
	if out := complement[c]; out != 0 {
		return out
	}
	return 'N'
}

// RevComp returns the reverse complement of seq as a new slice.
func RevComp(seq []byte) []byte {
	n := len(seq)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = Complement(seq[n-1-i])
	}
	return out
}
