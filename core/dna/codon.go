// core/dna/codon.go
package dna

import "fmt"

// codonTable is the standard genetic code (translation table 1).
// '*' marks a stop codon.
var codonTable = map[string]byte{
	"TTT": 'F', "TTC": 'F', "TTA": 'L', "TTG": 'L',
	"CTT": 'L', "CTC": 'L', "CTA": 'L', "CTG": 'L',
	"ATT": 'I', "ATC": 'I', "ATA": 'I', "ATG": 'M',
	"GTT": 'V', "GTC": 'V', "GTA": 'V', "GTG": 'V',
	"TCT": 'S', "TCC": 'S', "TCA": 'S', "TCG": 'S',
	"CCT": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	"ACT": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	"GCT": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
	"TAT": 'Y', "TAC": 'Y', "TAA": '*', "TAG": '*',
	"CAT": 'H', "CAC": 'H', "CAA": 'Q', "CAG": 'Q',
	"AAT": 'N', "AAC": 'N', "AAA": 'K', "AAG": 'K',
	"GAT": 'D', "GAC": 'D', "GAA": 'E', "GAG": 'E',
	"TGT": 'C', "TGC": 'C', "TGA": '*', "TGG": 'W',
	"CGT": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R',
	"AGT": 'S', "AGC": 'S', "AGA": 'R', "AGG": 'R',
	"GGT": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
}

// Translate converts a nucleotide sequence to amino acids in the given
// reading frame (0, 1 or 2). RNA input is accepted (U reads as T); codons
// containing ambiguity codes or unknown bytes translate to 'X'. The trailing
// partial codon, if any, is dropped.
func Translate(seq []byte, frame int) ([]byte, error) {
	if frame < 0 || frame > 2 {
		return nil, fmt.Errorf("translate: frame must be 0, 1 or 2, got %d", frame)
	}
	out := make([]byte, 0, (len(seq)-frame)/3+1)
	var codon [3]byte
	for i := frame; i+3 <= len(seq); i += 3 {
		for j := 0; j < 3; j++ {
			c := seq[i+j] &^ 0x20 // uppercase ASCII letters
			if c == 'U' {
				c = 'T'
			}
			codon[j] = c
		}
		aa, ok := codonTable[string(codon[:])]
		if !ok {
			aa = 'X'
		}
		out = append(out, aa)
	}
	return out, nil
}
