package clientip

import (
	"net"
	"net/http"
	"strings"
)

// ProxyHeaders lists the headers consulted by GetIP, highest priority first.
var ProxyHeaders = []string{
	"CF-Connecting-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// GetIP returns the client's IP address, trusting proxy headers.
// The headers in ProxyHeaders are checked in order; for X-Forwarded-For the
// first valid address in the list wins. Falls back to RemoteIP.
// Use it only when the service runs behind a proxy that overwrites these
// headers, otherwise clients can choose their own address.
func GetIP(r *http.Request) string {
	for _, header := range ProxyHeaders {
		value := r.Header.Get(header)
		if value == "" {
			continue
		}
		for candidate := range strings.SplitSeq(value, ",") {
			if ip := parseIP(candidate); ip != "" {
				return ip
			}
		}
	}
	return RemoteIP(r)
}

// RemoteIP returns the TCP peer address of the request, ignoring headers.
// Returns "" if RemoteAddr does not hold a valid IP.
func RemoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

// parseIP validates and normalizes an IP address string.
// Returns empty string if the IP is invalid.
func parseIP(ipStr string) string {
	ip := net.ParseIP(strings.TrimSpace(ipStr))
	if ip == nil {
		return ""
	}
	return ip.String()
}
