// Package wwpn provides canonicalization and validation of World Wide Port
// Names (64-bit Fibre Channel port identifiers).
//
// The canonical form used throughout zonewise is eight lowercase hex octets
// separated by colons, e.g. "10:00:00:00:c9:7b:5c:01". Switch dumps render
// WWPNs in several shapes (uppercase, bare 16-digit runs, dash-separated);
// Canonicalize accepts any of them.
package wwpn

import "strings"

// hexDigits is the number of hex digits in a WWPN.
const hexDigits = 16

// Canonicalize reduces any hex-bearing rendering of a WWPN to the canonical
// "xx:xx:xx:xx:xx:xx:xx:xx" form. Non-hex characters are stripped, the
// remaining digits are lowercased and regrouped into 2-character octets.
// If the input does not contain exactly 16 hex digits the empty string is
// returned. Canonicalize is idempotent: applying it to its own output is a
// no-op.
func Canonicalize(s string) string {
	hex := StripNonHex(s)
	if len(hex) != hexDigits {
		return ""
	}

	var b strings.Builder
	b.Grow(hexDigits + 7)
	for i := 0; i < hexDigits; i += 2 {
		if i > 0 {
			b.WriteByte(':')
		}
		b.WriteString(hex[i : i+2])
	}
	return b.String()
}

// StripNonHex removes every non-hex character from s and lowercases the rest.
func StripNonHex(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			b.WriteByte(c)
		case c >= 'a' && c <= 'f':
			b.WriteByte(c)
		case c >= 'A' && c <= 'F':
			b.WriteByte(c + ('a' - 'A'))
		}
	}
	return b.String()
}

// IsValid reports whether s reduces to a full 16-hex-digit WWPN.
func IsValid(s string) bool {
	return len(StripNonHex(s)) == hexDigits
}

// Prefix returns the leftmost four hex digits of the WWPN, the portion
// matched against vendor prefix rules for initiator/target detection.
// Returns the empty string if s is not a valid WWPN.
func Prefix(s string) string {
	hex := StripNonHex(s)
	if len(hex) != hexDigits {
		return ""
	}
	return hex[:4]
}

// Suffix12 returns the last twelve hex digits (six octets) of the WWPN,
// used to disambiguate names when one fc-alias maps to multiple ports.
// Returns the empty string if s is not a valid WWPN.
func Suffix12(s string) string {
	hex := StripNonHex(s)
	if len(hex) != hexDigits {
		return ""
	}
	return hex[4:]
}
