// Package pipeline streams FASTA chunks through a scan.Scanner worker pool,
// deduplicates hits duplicated across chunk boundaries, and calls a visit
// callback from a single goroutine.
package pipeline
