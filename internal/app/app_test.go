// internal/app/app_test.go
package app

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqscan/internal/scan"
)

func runApp(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := Run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fn, []byte(content), 0o644))
	return fn
}

func TestVersion(t *testing.T) {
	code, out, _ := runApp(t, "--version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "seqscan version")
}

func TestNoArgsShowsUsage(t *testing.T) {
	code, out, _ := runApp(t)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Usage of seqscan")
}

func TestBadFlag(t *testing.T) {
	code, _, errOut := runApp(t, "--bogus")
	assert.Equal(t, 2, code)
	assert.NotEmpty(t, errOut)
}

func TestBasicScan(t *testing.T) {
	fn := writeFile(t, "ref.fa", ">r1\nAAACGTTT\n")
	code, out, errOut := runApp(t, "--pattern", "ACGT", "--sequences", fn)
	require.Equal(t, 0, code, errOut)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2) // header + one hit
	assert.Contains(t, lines[1], "r1\tACGT\t+\t2\t4\t0\tACGT")
}

func TestNoMatchExit(t *testing.T) {
	fn := writeFile(t, "ref.fa", ">r1\nAAAAAAA\n")
	code, _, _ := runApp(t, "--pattern", "GGGG", "--sequences", fn, "--no-match-exit")
	assert.Equal(t, 1, code)

	code, _, _ = runApp(t, "--pattern", "GGGG", "--sequences", fn)
	assert.Equal(t, 0, code)
}

func TestConfigDefaults(t *testing.T) {
	fn := writeFile(t, "ref.fa", ">r1\nAAACGTTT\n")
	cfg := writeFile(t, "seqscan.yaml", "output: jsonl\n")

	code, out, errOut := runApp(t, "--pattern", "ACGT", "--sequences", fn, "--config", cfg)
	require.Equal(t, 0, code, errOut)
	var h scan.Hit
	require.NoError(t, json.Unmarshal([]byte(strings.TrimRight(out, "\n")), &h))
	assert.Equal(t, 2, h.Pos)
}

func TestConfigExplicitFlagWins(t *testing.T) {
	fn := writeFile(t, "ref.fa", ">r1\nAAACGTTT\n")
	cfg := writeFile(t, "seqscan.yaml", "output: jsonl\n")

	code, out, _ := runApp(t, "--pattern", "ACGT", "--sequences", fn, "--config", cfg, "--output", "text")
	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "source_file\t"))
}

func TestFastqScan(t *testing.T) {
	fn := writeFile(t, "reads.fq", "@r1\nACGTACGT\n+\nIIIIIIII\n")
	code, out, errOut := runApp(t, "--pattern", "ACGT", "--sequences", fn, "--fastq", "--no-header")
	require.Equal(t, 0, code, errOut)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 2) // hits at 0 and 4
}

func TestUnknownAlgorithm(t *testing.T) {
	fn := writeFile(t, "ref.fa", ">r1\nACGT\n")
	code, _, errOut := runApp(t, "--pattern", "ACGT", "--sequences", fn, "--algorithm", "regex")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "regex")
}

func TestMissingInput(t *testing.T) {
	code, _, _ := runApp(t, "--pattern", "ACGT", "--sequences", filepath.Join(t.TempDir(), "nope.fa"))
	assert.Equal(t, 3, code)
}

func TestBothStrandsEndToEnd(t *testing.T) {
	// revcomp("AAC") = "GTT" at position 5
	fn := writeFile(t, "ref.fa", ">r1\nAACGTGTT\n")
	code, out, _ := runApp(t, "--pattern", "AAC", "--sequences", fn, "--both-strands", "--no-header")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "\t+\t0\t")
	assert.Contains(t, out, "\t-\t5\t")
}
