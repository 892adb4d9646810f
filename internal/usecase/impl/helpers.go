package impl

import (
	"strings"
)

// normalizeEmail lowercases and trims an address. Every flow canonicalizes
// before touching storage so that lookups and unique indexes agree.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// emailDomainAllowed checks the address against the configured institutional
// domains. An empty allow-list accepts everything.
func emailDomainAllowed(email string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}

	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]

	for _, candidate := range allowed {
		if strings.EqualFold(domain, candidate) {
			return true
		}
	}

	return false
}
