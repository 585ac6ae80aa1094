package toolbroker

import (
	"fmt"
	"net"
	"net/url"
	"strings"
)

// blockedHosts are never dialed regardless of grants. Cloud metadata
// endpoints are the classic SSRF target.
var blockedHosts = map[string]bool{
	"169.254.169.254":          true,
	"metadata.google.internal": true,
	"metadata.goog":            true,
}

// lookupIP is swapped in tests to avoid real DNS.
var lookupIP = net.LookupIP

// ValidateTargetURL rejects URLs an invocation must not reach: non-HTTP
// schemes, the metadata blocklist, private or loopback addresses, and
// hosts outside the grant's allowed_hosts list. allowPrivate skips the
// private-range check for deployments whose tools live on an internal
// network.
func ValidateTargetURL(rawURL string, allowedHosts []string, allowPrivate bool) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("malformed URL: %w", err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("invalid scheme %q: only http and https allowed", parsed.Scheme)
	}

	host := strings.ToLower(parsed.Hostname())
	if host == "" {
		return fmt.Errorf("URL has no host")
	}
	if blockedHosts[host] {
		return fmt.Errorf("host %q is blocked", host)
	}

	if len(allowedHosts) > 0 {
		allowed := false
		for _, h := range allowedHosts {
			h = strings.ToLower(h)
			if host == h || strings.HasSuffix(host, "."+h) {
				allowed = true
				break
			}
		}
		if !allowed {
			return fmt.Errorf("host %q not in allowed_hosts", host)
		}
	}

	if allowPrivate {
		return nil
	}

	// Resolve and reject private ranges. An IP literal skips DNS.
	if ip := net.ParseIP(host); ip != nil {
		if isForbiddenIP(ip) {
			return fmt.Errorf("IP %s is in a forbidden range", ip)
		}
		return nil
	}
	if host == "localhost" {
		return fmt.Errorf("host %q resolves to loopback", host)
	}
	ips, err := lookupIP(host)
	if err != nil {
		return fmt.Errorf("failed to resolve host %q: %w", host, err)
	}
	for _, ip := range ips {
		if isForbiddenIP(ip) {
			return fmt.Errorf("host %q resolves to forbidden IP %s", host, ip)
		}
	}
	return nil
}

func isForbiddenIP(ip net.IP) bool {
	return ip.IsLoopback() ||
		ip.IsPrivate() ||
		ip.IsLinkLocalUnicast() ||
		ip.IsLinkLocalMulticast() ||
		ip.IsUnspecified()
}
