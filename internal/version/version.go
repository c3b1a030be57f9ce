// internal/version/version.go
package version

// Version is stamped at release time via -ldflags "-X seqscan/internal/version.Version=...".
var Version = "dev"
