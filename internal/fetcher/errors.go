package fetcher

import (
	"context"
	"crypto/x509"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/tronrelic/tronrelic-indexer/internal/clients/client"
)

// messages of certificate and DNS failures that reach us wrapped as plain text
var permanentMessageTokens = []string{
	"certificate has expired",
	"is not yet valid",
	"self-signed certificate",
	"self signed certificate",
	"certificate signed by unknown authority",
	"certificate is valid for",
	"no such host",
}

// IsPermanent reports errors meaning the source itself is gone: broken TLS
// certificates and hosts that no longer resolve. Retrying these is pointless.
func IsPermanent(err error) bool {
	if err == nil {
		return false
	}

	var invalidCert x509.CertificateInvalidError
	if errors.As(err, &invalidCert) && invalidCert.Reason == x509.Expired {
		return true
	}
	var unknownAuthority x509.UnknownAuthorityError
	if errors.As(err, &unknownAuthority) {
		return true
	}
	var hostname x509.HostnameError
	if errors.As(err, &hostname) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return dnsErr.IsNotFound
	}

	lower := strings.ToLower(err.Error())
	for _, token := range permanentMessageTokens {
		if strings.Contains(lower, token) {
			return true
		}
	}
	return false
}

// IsRetryable reports whether an outbound request should be attempted again.
// Client errors are final except rate limiting.
func IsRetryable(err error) bool {
	if err == nil || IsPermanent(err) {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}

	var httpErr *client.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.StatusCode == http.StatusTooManyRequests {
			return true
		}
		return httpErr.StatusCode < http.StatusBadRequest || httpErr.StatusCode >= http.StatusInternalServerError
	}
	return true
}
