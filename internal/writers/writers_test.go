// internal/writers/writers_test.go
package writers

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqscan/internal/scan"
)

var testHits = []scan.Hit{
	{SourceFile: "ref.fa", SequenceID: "r1", Pattern: "ACGT", Strand: "+", Pos: 0, Length: 4, Matched: "ACGT"},
	{SourceFile: "ref.fa", SequenceID: "r1", Pattern: "ACGT", Strand: "-", Pos: 7, Length: 4, Mismatches: 1, Matched: "ACGA"},
}

func collect(t *testing.T, format string, header bool) string {
	t.Helper()
	var buf bytes.Buffer
	in, errCh, err := Start(format, &buf, header, 8)
	require.NoError(t, err)
	for _, h := range testHits {
		in <- h
	}
	close(in)
	require.NoError(t, <-errCh)
	return buf.String()
}

func TestStartUnknownFormat(t *testing.T) {
	_, _, err := Start("xml", &bytes.Buffer{}, true, 8)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}

func TestTSV(t *testing.T) {
	out := collect(t, "text", true)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, tsvHeader, lines[0])
	assert.Equal(t, "ref.fa\tr1\tACGT\t+\t0\t4\t0\tACGT", lines[1])
	assert.Equal(t, "ref.fa\tr1\tACGT\t-\t7\t4\t1\tACGA", lines[2])
}

func TestTSVNoHeader(t *testing.T) {
	out := collect(t, "text", false)
	assert.False(t, strings.HasPrefix(out, "source_file"))
}

func TestJSON(t *testing.T) {
	out := collect(t, "json", true)
	var got []scan.Hit
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, testHits, got)
}

func TestJSONL(t *testing.T) {
	out := collect(t, "jsonl", true)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	for i, ln := range lines {
		var got scan.Hit
		require.NoError(t, json.Unmarshal([]byte(ln), &got))
		assert.Equal(t, testHits[i], got)
	}
}

func TestJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	in, errCh, err := Start("json", &buf, true, 8)
	require.NoError(t, err)
	close(in)
	require.NoError(t, <-errCh)
	var got []scan.Hit
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Empty(t, got)
}
