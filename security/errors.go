package security

import (
	"errors"
	"fmt"
)

// Credential operations reported in CredentialError.Op.
const (
	OpDecodeCertificate = "decode certificate"
	OpDecodePrivateKey  = "decode private key"
	OpLoadTrustStore    = "load trust store"
	OpLoadKeyStore      = "load key store"
)

// ErrUnsupportedSource is returned for a TrustSource or KeySource implementation Resolve does not know.
var ErrUnsupportedSource = errors.New("security: unsupported credential source")

// CredentialError reports certificate or key material that could not be
// read or decoded. Resolution stops at the first one.
type CredentialError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface.
func (e *CredentialError) Error() string {
	switch e.Op {
	case OpDecodeCertificate:
		return "Failed to get the public key from Crypto API. " + e.Err.Error()
	case OpDecodePrivateKey:
		return "Failed to get the private key from Crypto API. " + e.Err.Error()
	case OpLoadTrustStore:
		return fmt.Sprintf("Failed to load the trust store '%s'. %v", e.Path, e.Err)
	case OpLoadKeyStore:
		return fmt.Sprintf("Failed to load the key store '%s'. %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("security: %s %s: %v", e.Op, e.Path, e.Err)
	}
}

// Unwrap returns the underlying error.
func (e *CredentialError) Unwrap() error {
	return e.Err
}

// TLSError reports resolved material that cannot form a TLS context.
type TLSError struct {
	Err error
}

// Error implements the error interface.
func (e *TLSError) Error() string {
	return "Failed to build the TLS context. " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *TLSError) Unwrap() error {
	return e.Err
}
