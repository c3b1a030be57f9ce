// internal/rmdupapp/app_test.go
package rmdupapp

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

func countRecords(out string) int {
	return strings.Count(out, ">")
}

func TestDedupBySequence(t *testing.T) {
	fn := writeFile(t, "reads.fa", ">a\nACGTACGT\n>b\nACGTACGT\n>c\nTTTTAAAA\n")
	code, out, errOut := runApp(t, "--sequences", fn, "--exact")
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, 2, countRecords(out))
	assert.Contains(t, out, ">a\n")
	assert.NotContains(t, out, ">b\n")
	assert.Contains(t, out, ">c\n")
}

func TestDedupCanonical(t *testing.T) {
	// b is the reverse complement of a
	fa := ">a\nAAACGT\n>b\nACGTTT\n"

	fn := writeFile(t, "reads.fa", fa)
	code, out, _ := runApp(t, "--sequences", fn, "--exact")
	require.Equal(t, 0, code)
	assert.Equal(t, 2, countRecords(out))

	fn = writeFile(t, "reads.fa", fa)
	code, out, _ = runApp(t, "--sequences", fn, "--exact", "--canonical")
	require.Equal(t, 0, code)
	assert.Equal(t, 1, countRecords(out))
}

func TestDedupByID(t *testing.T) {
	fn := writeFile(t, "reads.fa", ">a\nACGT\n>a\nTTTT\n>b\nACGT\n")
	code, out, _ := runApp(t, "--sequences", fn, "--by", "id", "--exact")
	require.Equal(t, 0, code)
	assert.Equal(t, 2, countRecords(out))
	assert.Contains(t, out, ">b\n")
}

func TestProbabilisticKeepsDistinct(t *testing.T) {
	fn := writeFile(t, "reads.fa", ">a\nACGTACGT\n>b\nACGTACGT\n>c\nTTTTAAAA\n")
	code, out, _ := runApp(t, "--sequences", fn, "--expected-items", "100", "--false-positive-rate", "0.001")
	require.Equal(t, 0, code)
	assert.Equal(t, 2, countRecords(out))
}

func TestReport(t *testing.T) {
	fn := writeFile(t, "reads.fa", ">a\nACGTACGT\n>b\nACGTACGT\n>c\nTTTTAAAA\n")
	code, _, errOut := runApp(t, "--sequences", fn, "--exact", "--report")
	require.Equal(t, 0, code)

	var rep Report
	require.NoError(t, json.Unmarshal([]byte(errOut), &rep))
	assert.NotEmpty(t, rep.RunID)
	assert.Equal(t, uint64(2), rep.Kept)
	assert.Equal(t, uint64(1), rep.Dropped)
	assert.Equal(t, uint64(2), rep.Distinct)
	assert.True(t, rep.Exact)
}

func TestFastqPassThrough(t *testing.T) {
	fn := writeFile(t, "reads.fq", "@a\nACGT\n+\nIIII\n@b\nACGT\n+\nJJJJ\n")
	code, out, _ := runApp(t, "--sequences", fn, "--fastq", "--exact")
	require.Equal(t, 0, code)
	// duplicate sequence dropped regardless of quality string
	assert.Equal(t, "@a\nACGT\n+\nIIII\n", out)
}

func TestBadByMode(t *testing.T) {
	code, _, errOut := runApp(t, "--sequences", "x.fa", "--by", "hash")
	assert.Equal(t, 2, code)
	assert.NotEmpty(t, errOut)
}

func TestCanonicalRequiresBySeq(t *testing.T) {
	code, _, _ := runApp(t, "--sequences", "x.fa", "--by", "id", "--canonical")
	assert.Equal(t, 2, code)
}

func TestLongSequenceWrapped(t *testing.T) {
	seq := strings.Repeat("ACGT", 40) // 160 bp
	fn := writeFile(t, "reads.fa", ">a\n"+seq+"\n")
	code, out, _ := runApp(t, "--sequences", fn, "--exact")
	require.Equal(t, 0, code)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4) // header + 60 + 60 + 40
	assert.Len(t, lines[1], 60)
	assert.Len(t, lines[3], 40)
}
