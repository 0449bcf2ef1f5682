// Package tlstest generates certificates, keys and PKCS12 stores for tests.
// Everything is created in memory with crypto stdlib and written to
// t.TempDir(), so files are cleaned up when the test finishes.
//
// Usage:
//
//	func TestWithTLS(t *testing.T) {
//	    certs := tlstest.GenerateTLSCerts(t)
//	    // certs.CAFile, certs.CertFile, certs.KeyFile are valid PEM files
//	    trustStore := certs.WriteTrustStore(t, "changeit")
//	}
package tlstest

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/youmark/pkcs8"
	"software.sslmate.com/src/go-pkcs12"
)

// TLSCerts holds generated certificate files and their parsed objects.
type TLSCerts struct {
	// Dir is the temporary directory holding every generated file.
	Dir string

	// CAFile is the path to the CA certificate PEM file.
	CAFile string
	// CertFile is the path to the server certificate PEM file (localhost, 127.0.0.1, ::1).
	CertFile string
	// KeyFile is the path to the server private key PEM file.
	KeyFile string
	// ClientCertFile is the path to the client certificate PEM file.
	ClientCertFile string
	// ClientKeyFile is the path to the unencrypted client private key PEM file.
	ClientKeyFile string

	// CACert is the parsed CA certificate.
	CACert *x509.Certificate
	// CAKey is the CA private key.
	CAKey *ecdsa.PrivateKey
	// ServerTLS is a ready-to-use server certificate.
	ServerTLS tls.Certificate
	// ClientCert is the parsed client certificate.
	ClientCert *x509.Certificate
	// ClientKey is the client private key.
	ClientKey *ecdsa.PrivateKey
	// CertPool contains the CA certificate.
	CertPool *x509.CertPool
}

// GenerateTLSCerts creates a CA, a server certificate and a client
// certificate, and writes them as PEM files.
func GenerateTLSCerts(t testing.TB) *TLSCerts {
	t.Helper()
	dir := t.TempDir()

	caKey := newKey(t)
	caTemplate := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject: pkix.Name{
			Organization: []string{"idpclient Test CA"},
		},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(24 * time.Hour),
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageCRLSign,
		BasicConstraintsValid: true,
		IsCA:                  true,
	}
	caDER, err := x509.CreateCertificate(rand.Reader, caTemplate, caTemplate, &caKey.PublicKey, caKey)
	if err != nil {
		t.Fatalf("tlstest: create CA cert: %v", err)
	}
	caCert, err := x509.ParseCertificate(caDER)
	if err != nil {
		t.Fatalf("tlstest: parse CA cert: %v", err)
	}
	caFile := filepath.Join(dir, "ca.pem")
	writePEM(t, caFile, "CERTIFICATE", caDER)

	serverKey := newKey(t)
	serverTemplate := &x509.Certificate{
		SerialNumber: big.NewInt(2),
		Subject: pkix.Name{
			Organization: []string{"idpclient Test"},
			CommonName:   "localhost",
		},
		DNSNames:    []string{"localhost"},
		IPAddresses: []net.IP{net.IPv4(127, 0, 0, 1), net.IPv6loopback},
		NotBefore:   time.Now().Add(-time.Hour),
		NotAfter:    time.Now().Add(24 * time.Hour),
		KeyUsage:    x509.KeyUsageDigitalSignature | x509.KeyUsageKeyEncipherment,
		ExtKeyUsage: []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
	}
	serverCert := sign(t, serverTemplate, caCert, caKey, serverKey)
	certFile := filepath.Join(dir, "cert.pem")
	writePEM(t, certFile, "CERTIFICATE", serverCert.Raw)
	keyFile := filepath.Join(dir, "key.pem")
	writeECKey(t, keyFile, serverKey)

	clientKey := newKey(t)
	clientTemplate := &x509.Certificate{
		SerialNumber: big.NewInt(3),
		Subject: pkix.Name{
			Organization: []string{"idpclient Test"},
			CommonName:   "client",
		},
		NotBefore:   time.Now().Add(-time.Hour),
		NotAfter:    time.Now().Add(24 * time.Hour),
		KeyUsage:    x509.KeyUsageDigitalSignature,
		ExtKeyUsage: []x509.ExtKeyUsage{x509.ExtKeyUsageClientAuth},
	}
	clientCert := sign(t, clientTemplate, caCert, caKey, clientKey)
	clientCertFile := filepath.Join(dir, "client.pem")
	writePEM(t, clientCertFile, "CERTIFICATE", clientCert.Raw)
	clientKeyFile := filepath.Join(dir, "client.key")
	writeECKey(t, clientKeyFile, clientKey)

	pool := x509.NewCertPool()
	pool.AddCert(caCert)

	return &TLSCerts{
		Dir:            dir,
		CAFile:         caFile,
		CertFile:       certFile,
		KeyFile:        keyFile,
		ClientCertFile: clientCertFile,
		ClientKeyFile:  clientKeyFile,
		CACert:         caCert,
		CAKey:          caKey,
		ServerTLS: tls.Certificate{
			Certificate: [][]byte{serverCert.Raw, caCert.Raw},
			PrivateKey:  serverKey,
			Leaf:        serverCert,
		},
		ClientCert: clientCert,
		ClientKey:  clientKey,
		CertPool:   pool,
	}
}

// ServerConfig returns a server TLS config presenting the generated server
// certificate. With requireClientCert the server demands a client
// certificate issued by the generated CA.
func (c *TLSCerts) ServerConfig(requireClientCert bool) *tls.Config {
	cfg := &tls.Config{
		Certificates: []tls.Certificate{c.ServerTLS},
		MinVersion:   tls.VersionTLS12,
	}
	if requireClientCert {
		cfg.ClientAuth = tls.RequireAndVerifyClientCert
		cfg.ClientCAs = c.CertPool
	}
	return cfg
}

// WriteTrustStore writes a PKCS12 trust store holding certs, or the CA
// certificate when none are given.
func (c *TLSCerts) WriteTrustStore(t testing.TB, password string, certs ...*x509.Certificate) string {
	t.Helper()
	if len(certs) == 0 {
		certs = []*x509.Certificate{c.CACert}
	}
	data, err := pkcs12.Modern.EncodeTrustStore(certs, password)
	if err != nil {
		t.Fatalf("tlstest: encode trust store: %v", err)
	}
	return writeFile(t, c.Dir, "truststore.p12", data)
}

// WriteClientKeyStore writes a PKCS12 key store holding the client key,
// the client certificate and the CA certificate.
func (c *TLSCerts) WriteClientKeyStore(t testing.TB, password string) string {
	t.Helper()
	data, err := pkcs12.Modern.Encode(c.ClientKey, c.ClientCert, []*x509.Certificate{c.CACert}, password)
	if err != nil {
		t.Fatalf("tlstest: encode key store: %v", err)
	}
	return writeFile(t, c.Dir, "keystore.p12", data)
}

// WriteEncryptedClientKey writes the client key as an encrypted PKCS#8 PEM file.
func (c *TLSCerts) WriteEncryptedClientKey(t testing.TB, password string) string {
	t.Helper()
	der, err := pkcs8.MarshalPrivateKey(c.ClientKey, []byte(password), &pkcs8.Opts{
		Cipher: pkcs8.AES256CBC,
		KDFOpts: pkcs8.PBKDF2Opts{
			SaltSize:       16,
			IterationCount: 2048,
			HMACHash:       crypto.SHA256,
		},
	})
	if err != nil {
		t.Fatalf("tlstest: encrypt client key: %v", err)
	}
	path := filepath.Join(c.Dir, "client-pkcs8-encrypted.key")
	writePEM(t, path, "ENCRYPTED PRIVATE KEY", der)
	return path
}

// WriteLegacyEncryptedClientKey writes the client key as an RFC 1423
// encrypted "EC PRIVATE KEY" PEM file.
func (c *TLSCerts) WriteLegacyEncryptedClientKey(t testing.TB, password string) string {
	t.Helper()
	der, err := x509.MarshalECPrivateKey(c.ClientKey)
	if err != nil {
		t.Fatalf("tlstest: marshal client key: %v", err)
	}
	//nolint:staticcheck // legacy format is still produced by older tooling
	block, err := x509.EncryptPEMBlock(rand.Reader, "EC PRIVATE KEY", der, []byte(password), x509.PEMCipherAES256)
	if err != nil {
		t.Fatalf("tlstest: encrypt legacy PEM: %v", err)
	}
	return writeFile(t, c.Dir, "client-legacy-encrypted.key", pem.EncodeToMemory(block))
}

// WriteInvalidPEM writes a file with content that looks like PEM but isn't a valid certificate.
func WriteInvalidPEM(t testing.TB, filename string) string {
	t.Helper()
	content := []byte("-----BEGIN CERTIFICATE-----\nbm90LWEtY2VydGlmaWNhdGU=\n-----END CERTIFICATE-----\n")
	return writeFile(t, t.TempDir(), filename, content)
}

func newKey(t testing.TB) *ecdsa.PrivateKey {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("tlstest: generate key: %v", err)
	}
	return key
}

func sign(t testing.TB, template, parent *x509.Certificate, parentKey *ecdsa.PrivateKey, key *ecdsa.PrivateKey) *x509.Certificate {
	t.Helper()
	der, err := x509.CreateCertificate(rand.Reader, template, parent, &key.PublicKey, parentKey)
	if err != nil {
		t.Fatalf("tlstest: create cert %s: %v", template.Subject.CommonName, err)
	}
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		t.Fatalf("tlstest: parse cert %s: %v", template.Subject.CommonName, err)
	}
	return cert
}

func writeECKey(t testing.TB, path string, key *ecdsa.PrivateKey) {
	t.Helper()
	der, err := x509.MarshalECPrivateKey(key)
	if err != nil {
		t.Fatalf("tlstest: marshal key: %v", err)
	}
	writePEM(t, path, "EC PRIVATE KEY", der)
}

func writeFile(t testing.TB, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("tlstest: write %s: %v", name, err)
	}
	return path
}

func writePEM(t testing.TB, path, blockType string, data []byte) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("tlstest: create %s: %v", path, err)
	}
	defer func() { _ = f.Close() }()
	if err := pem.Encode(f, &pem.Block{Type: blockType, Bytes: data}); err != nil {
		t.Fatalf("tlstest: encode PEM %s: %v", path, err)
	}
}
