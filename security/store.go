package security

import (
	"crypto/tls"
	"crypto/x509"
	"os"

	"software.sslmate.com/src/go-pkcs12"
)

// loadTrustStore returns the trusted certificates of a PKCS12 trust store.
func loadTrustStore(path, password string) ([]*x509.Certificate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &CredentialError{Op: OpLoadTrustStore, Path: path, Err: err}
	}
	certs, err := pkcs12.DecodeTrustStore(data, password)
	if err != nil {
		return nil, &CredentialError{Op: OpLoadTrustStore, Path: path, Err: err}
	}
	return certs, nil
}

// loadKeyStore returns the private key and certificate chain of a PKCS12 key store.
func loadKeyStore(path, password string) (*tls.Certificate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &CredentialError{Op: OpLoadKeyStore, Path: path, Err: err}
	}
	key, leaf, caCerts, err := pkcs12.DecodeChain(data, password)
	if err != nil {
		return nil, &CredentialError{Op: OpLoadKeyStore, Path: path, Err: err}
	}

	chain := make([][]byte, 0, 1+len(caCerts))
	chain = append(chain, leaf.Raw)
	for _, ca := range caCerts {
		chain = append(chain, ca.Raw)
	}
	return &tls.Certificate{
		Certificate: chain,
		PrivateKey:  normalizeKey(key),
		Leaf:        leaf,
	}, nil
}
