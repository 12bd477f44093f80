package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailDomain(t *testing.T) {
	cases := []struct {
		email string
		want  string
		ok    bool
	}{
		{"jonas@example.com", "example.com", true},
		{"jonas@Example.COM", "example.com", true},
		{"jonas@example.com.", "example.com", true},
		{`"odd@local"@example.com`, "example.com", true},
		{"no-at-sign", "", false},
		{"@example.com", "", false},
		{"jonas@", "", false},
		{"jonas@.", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		domain, ok := emailDomain(tc.email)
		assert.Equal(t, tc.ok, ok, tc.email)
		assert.Equal(t, tc.want, domain, tc.email)
	}
}
