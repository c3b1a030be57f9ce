// internal/statcli/options_test.go
package statcli

import (
	"flag"
	"testing"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func TestDefaultsOK(t *testing.T) {
	o, err := ParseArgs(newFS(), []string{"--sequences", "ref.fa"})
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if o.Aggregate || !o.Header || o.Fastq {
		t.Errorf("unexpected defaults %+v", o)
	}
}

func TestErrorNoSequences(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--aggregate"}); err == nil {
		t.Fatal("expected error when sequences missing")
	}
}
