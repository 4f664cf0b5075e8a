package wwpn

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already canonical", "10:00:00:00:c9:7b:5c:01", "10:00:00:00:c9:7b:5c:01"},
		{"uppercase", "10:00:00:00:C9:7B:5C:01", "10:00:00:00:c9:7b:5c:01"},
		{"bare digits", "10000000c97b5c01", "10:00:00:00:c9:7b:5c:01"},
		{"dash separated", "10-00-00-00-c9-7b-5c-01", "10:00:00:00:c9:7b:5c:01"},
		{"surrounding junk", "  pwwn 10:00:00:00:c9:7b:5c:01;", "10:00:00:00:c9:7b:5c:01"},
		{"too short", "10:00:00:00:c9:7b:5c", ""},
		{"too long", "10:00:00:00:c9:7b:5c:01:ff", ""},
		{"empty", "", ""},
		{"no hex at all", "zz:yy", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Canonicalize(tt.input))
		})
	}
}

func TestCanonicalize_Idempotent(t *testing.T) {
	inputs := []string{
		"10:00:00:00:c9:7b:5c:01",
		"21000024FF45A7B2",
		"50-06-01-60-3b-a0-1f-4d",
	}
	for _, in := range inputs {
		once := Canonicalize(in)
		assert.Equal(t, once, Canonicalize(once), "input %q", in)
	}
}

func TestCanonicalize_RoundTrip(t *testing.T) {
	digits := "21000024ff45a7b2"
	canon := Canonicalize(digits)
	assert.Equal(t, digits, strings.ReplaceAll(canon, ":", ""))
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("10:00:00:00:c9:7b:5c:01"))
	assert.True(t, IsValid("21000024FF45A7B2"))
	assert.False(t, IsValid("10:00:00:00"))
	assert.False(t, IsValid(""))
}

func TestPrefix(t *testing.T) {
	assert.Equal(t, "2100", Prefix("21:00:00:24:ff:45:a7:b2"))
	assert.Equal(t, "", Prefix("21:00"))
}

func TestSuffix12(t *testing.T) {
	assert.Equal(t, "0024ff45a7b2", Suffix12("21:00:00:24:ff:45:a7:b2"))
	assert.Equal(t, "", Suffix12("not a wwpn"))
}
