// internal/rmdupcli/options_test.go
package rmdupcli

import (
	"flag"
	"testing"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func TestDefaultsOK(t *testing.T) {
	o, err := ParseArgs(newFS(), []string{"--sequences", "reads.fa"})
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if o.By != BySeq || o.Exact || o.ExpectedItems != 1_000_000 {
		t.Errorf("unexpected defaults %+v", o)
	}
}

func TestErrorCases(t *testing.T) {
	cases := [][]string{
		{},
		{"--sequences", "r.fa", "--by", "hash"},
		{"--sequences", "r.fa", "--by", "id", "--canonical"},
		{"--sequences", "r.fa", "--expected-items", "0"},
		{"--sequences", "r.fa", "--false-positive-rate", "1"},
		{"--sequences", "r.fa", "--false-positive-rate", "-0.1"},
	}
	for _, args := range cases {
		if _, err := ParseArgs(newFS(), args); err == nil {
			t.Errorf("expected error for %v", args)
		}
	}
}
