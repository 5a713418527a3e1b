package utils

import (
	"crypto/tls"
	"net/http"

	"tcvariant/models"
)

func CreateEnsemblHttpClient(cfg *models.Config) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.Debug {
		// allows pointing the client at a local mirror with a self-signed certificate
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return &http.Client{
		Transport: transport,
		Timeout:   cfg.Ensembl.RequestTimeout,
	}
}
