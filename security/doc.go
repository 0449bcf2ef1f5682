// Package security turns secure socket configuration into a client TLS
// context.
//
// Resolution runs in two steps. Resolver.Resolve loads key material (trust
// anchors and an optional client identity) from inline PEM files or PKCS12
// trust/key stores. BuildTLS then assembles a *tls.Config from that
// material. Nothing is cached; every call reads the files again.
//
// # Configuration
//
//	secure_socket:
//	  cert_file: /etc/idp/ca.pem
//	  client_cert:
//	    cert_file: /etc/idp/client.pem
//	    key_file: /etc/idp/client.key
//	    key_password: changeit
//
// # Usage
//
//	material, err := security.NewResolver(nil).Resolve(socket)
//	if err != nil {
//	    return err
//	}
//	tlsConfig, err := security.BuildTLS(material)
//
// Setting Disable skips server certificate and hostname verification
// entirely. It is an explicit opt-in for test environments and never a
// default.
package security
