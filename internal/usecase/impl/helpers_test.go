package impl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Student@IIITL.AC.IN", want: "student@iiitl.ac.in"},
		{in: "  padded@iiitl.ac.in ", want: "padded@iiitl.ac.in"},
		{in: "already@iiitl.ac.in", want: "already@iiitl.ac.in"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeEmail(tt.in))
	}
}

func TestEmailDomainAllowed(t *testing.T) {
	allowed := []string{"iiitl.ac.in"}

	tests := []struct {
		name    string
		email   string
		domains []string
		want    bool
	}{
		{name: "institutional address", email: "student@iiitl.ac.in", domains: allowed, want: true},
		{name: "case insensitive domain", email: "student@IIITL.AC.IN", domains: allowed, want: true},
		{name: "foreign domain", email: "someone@gmail.com", domains: allowed, want: false},
		{name: "subdomain is not the domain", email: "x@mail.iiitl.ac.in", domains: allowed, want: false},
		{name: "domain as suffix trick", email: "x@eviliiitl.ac.in", domains: allowed, want: false},
		{name: "no at sign", email: "not-an-email", domains: allowed, want: false},
		{name: "empty allow list accepts all", email: "anyone@example.com", domains: nil, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, emailDomainAllowed(tt.email, tt.domains))
		})
	}
}
