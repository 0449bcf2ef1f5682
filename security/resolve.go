package security

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
)

// Material is the key material of one call: trust anchors and an optional
// client identity. It is built per call and never shared.
type Material struct {
	// InsecureSkipVerify accepts any server certificate chain and host name.
	InsecureSkipVerify bool
	// RootCAs are the trust anchors for server verification.
	RootCAs []*x509.Certificate
	// Identity is the client certificate presented for mutual TLS.
	Identity *tls.Certificate
}

// Resolver loads Material from secure socket configuration.
type Resolver struct {
	decoder Decoder
}

// NewResolver creates a Resolver. A nil decoder selects PEMDecoder.
func NewResolver(decoder Decoder) *Resolver {
	if decoder == nil {
		decoder = PEMDecoder{}
	}
	return &Resolver{decoder: decoder}
}

// Resolve loads the material described by socket. It returns nil material
// when socket is nil or names no trust source and verification is enabled;
// the caller then uses the transport defaults.
func (r *Resolver) Resolve(socket *SecureSocket) (*Material, error) {
	if socket == nil {
		return nil, nil
	}
	trust, key := socket.Sources()
	return r.ResolveSources(socket.Disable, trust, key)
}

// ResolveSources applies the resolution precedence, first match wins:
//
//  1. disable: insecure material, no identity, sources ignored
//  2. InlineCert without key
//  3. InlineCert with CertKeyFilePair
//  4. InlineCert with KeyStoreBundle
//  5. TrustStoreBundle without key
//  6. TrustStoreBundle with CertKeyFilePair
//  7. TrustStoreBundle with KeyStoreBundle
//
// A key source without a trust source is ignored. Any failure returns a
// *CredentialError and no material.
func (r *Resolver) ResolveSources(disable bool, trust TrustSource, key KeySource) (*Material, error) {
	if disable {
		return &Material{InsecureSkipVerify: true}, nil
	}
	if trust == nil {
		return nil, nil
	}

	roots, err := r.trustAnchors(trust)
	if err != nil {
		return nil, err
	}

	identity, err := r.identity(key)
	if err != nil {
		return nil, err
	}

	return &Material{RootCAs: roots, Identity: identity}, nil
}

func (r *Resolver) trustAnchors(trust TrustSource) ([]*x509.Certificate, error) {
	switch t := trust.(type) {
	case InlineCert:
		cert, err := r.decoder.DecodeCertificate(t.Path)
		if err != nil {
			return nil, &CredentialError{Op: OpDecodeCertificate, Path: t.Path, Err: err}
		}
		return []*x509.Certificate{cert}, nil
	case TrustStoreBundle:
		return loadTrustStore(t.Path, t.Password)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedSource, trust)
	}
}

func (r *Resolver) identity(key KeySource) (*tls.Certificate, error) {
	switch k := key.(type) {
	case nil:
		return nil, nil
	case CertKeyFilePair:
		return r.keyPair(k)
	case KeyStoreBundle:
		return loadKeyStore(k.Path, k.Password)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedSource, key)
	}
}

// keyPair decodes the certificate before the key, matching the error order callers see.
func (r *Resolver) keyPair(k CertKeyFilePair) (*tls.Certificate, error) {
	cert, err := r.decoder.DecodeCertificate(k.CertPath)
	if err != nil {
		return nil, &CredentialError{Op: OpDecodeCertificate, Path: k.CertPath, Err: err}
	}
	privateKey, err := r.decoder.DecodePrivateKey(k.KeyPath, k.KeyPassword)
	if err != nil {
		return nil, &CredentialError{Op: OpDecodePrivateKey, Path: k.KeyPath, Err: err}
	}
	return &tls.Certificate{
		Certificate: [][]byte{cert.Raw},
		PrivateKey:  privateKey,
		Leaf:        cert,
	}, nil
}
