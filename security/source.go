package security

// TrustSource is where trust anchors come from. A nil TrustSource means
// none is configured. Implementations: InlineCert, TrustStoreBundle.
type TrustSource interface {
	trustSource()
}

// KeySource is where the client identity comes from. A nil KeySource means
// no client certificate is presented. Implementations: KeyStoreBundle,
// CertKeyFilePair.
type KeySource interface {
	keySource()
}

// InlineCert trusts the single certificate stored in a PEM or DER file.
type InlineCert struct {
	Path string
}

// TrustStoreBundle trusts the certificates of a password protected PKCS12 trust store.
type TrustStoreBundle struct {
	Path     string
	Password string
}

// KeyStoreBundle reads the client key and certificate chain from a PKCS12 key store.
type KeyStoreBundle struct {
	Path     string
	Password string
}

// CertKeyFilePair reads the client certificate and private key from separate files.
// KeyPassword decrypts the key and may be empty for unencrypted keys.
type CertKeyFilePair struct {
	CertPath    string
	KeyPath     string
	KeyPassword string
}

func (InlineCert) trustSource()       {}
func (TrustStoreBundle) trustSource() {}
func (KeyStoreBundle) keySource()     {}
func (CertKeyFilePair) keySource()    {}
