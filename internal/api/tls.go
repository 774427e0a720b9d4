package api

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
)

// TLSOptions configures certificate handling for the API connection,
// e.g. a corporate CA for TLS-intercepting proxies.
type TLSOptions struct {
	CAFile   string
	CertFile string
	KeyFile  string
	Insecure bool
}

// IsEmpty reports whether no TLS settings are configured.
func (o TLSOptions) IsEmpty() bool {
	return o.CAFile == "" && o.CertFile == "" && o.KeyFile == "" && !o.Insecure
}

// build returns nil when o is empty so the transport keeps Go's defaults.
func (o TLSOptions) build() (*tls.Config, error) {
	if o.IsEmpty() {
		return nil, nil
	}

	cfg := &tls.Config{
		MinVersion:         tls.VersionTLS12,
		InsecureSkipVerify: o.Insecure,
	}

	if (o.CertFile == "") != (o.KeyFile == "") {
		return nil, fmt.Errorf("client certificate needs both cert and key files")
	}
	if o.CertFile != "" {
		cert, err := tls.LoadX509KeyPair(o.CertFile, o.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("loading client cert: %w", err)
		}
		cfg.Certificates = []tls.Certificate{cert}
	}

	if o.CAFile != "" {
		pem, err := os.ReadFile(o.CAFile)
		if err != nil {
			return nil, fmt.Errorf("reading CA file: %w", err)
		}
		pool, err := x509.SystemCertPool()
		if err != nil || pool == nil {
			pool = x509.NewCertPool()
		}
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("no certificates found in %s", o.CAFile)
		}
		cfg.RootCAs = pool
	}

	return cfg, nil
}
