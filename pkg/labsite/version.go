// Package labsite exposes module-level metadata.
package labsite

// Version is the labsite release version.
const Version = "0.1.0"
