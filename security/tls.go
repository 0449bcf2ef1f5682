package security

import (
	"crypto"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
)

// BuildTLS creates a client *tls.Config from resolved material.
// Returns nil for nil material (no TLS context; transport defaults apply).
// Minimum version is TLS 1.2.
func BuildTLS(m *Material) (*tls.Config, error) {
	if m == nil {
		return nil, nil
	}

	if m.InsecureSkipVerify {
		return &tls.Config{
			InsecureSkipVerify: true, //nolint:gosec // explicit opt-in via SecureSocket.Disable
			MinVersion:         tls.VersionTLS12,
		}, nil
	}

	pool := x509.NewCertPool()
	for _, cert := range m.RootCAs {
		pool.AddCert(cert)
	}

	cfg := &tls.Config{
		RootCAs:    pool,
		MinVersion: tls.VersionTLS12,
	}

	if m.Identity != nil {
		if err := checkIdentity(m.Identity); err != nil {
			return nil, &TLSError{Err: err}
		}
		cfg.Certificates = []tls.Certificate{*m.Identity}
	}

	return cfg, nil
}

// checkIdentity verifies that the private key can sign and belongs to the leaf certificate.
func checkIdentity(id *tls.Certificate) error {
	if len(id.Certificate) == 0 {
		return errors.New("client identity has no certificate")
	}

	leaf := id.Leaf
	if leaf == nil {
		parsed, err := x509.ParseCertificate(id.Certificate[0])
		if err != nil {
			return fmt.Errorf("parse client certificate: %w", err)
		}
		leaf = parsed
	}

	signer, ok := id.PrivateKey.(crypto.Signer)
	if !ok {
		return fmt.Errorf("client private key of type %T cannot sign", id.PrivateKey)
	}

	pub, ok := leaf.PublicKey.(interface{ Equal(crypto.PublicKey) bool })
	if !ok {
		return fmt.Errorf("unsupported client certificate key type %T", leaf.PublicKey)
	}
	if !pub.Equal(signer.Public()) {
		return errors.New("client private key does not match the client certificate")
	}
	return nil
}
