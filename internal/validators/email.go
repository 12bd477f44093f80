package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid reports whether the domain behind a booking or
// contact email can plausibly receive mail: it must publish MX
// records, or at least resolve to an address. Local-part syntax is
// left to the request binding.
func IsEmailDomainValid(email string) bool {
	domain, ok := emailDomain(email)
	if !ok {
		return false
	}

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	// No MX, but an A/AAAA record still accepts mail per RFC 5321.
	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}

// emailDomain extracts the lookup-ready domain. The split is on the
// last @ so quoted local parts containing @ survive; a trailing root
// dot is dropped before the DNS query.
func emailDomain(email string) (string, bool) {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return "", false
	}

	domain := strings.TrimSuffix(email[at+1:], ".")
	if domain == "" {
		return "", false
	}
	return strings.ToLower(domain), true
}
