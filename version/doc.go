// Package version exposes build information for the idpcall binary.
//
// Version, commit and build time are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/idpclient/version.Version=1.0.0" ./cmd/idpcall
package version
