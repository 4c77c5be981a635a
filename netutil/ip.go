// Package netutil provides small network-string predicates.
package netutil

import "net/netip"

// IsIP reports whether s is a valid IPv4 or IPv6 address.
func IsIP(s string) bool {
	_, err := netip.ParseAddr(s)
	return err == nil
}

// IsCIDR reports whether s is a valid CIDR block in addr/bits form. Host
// bits may be set ("10.0.0.1/24" is accepted); a bare address with no
// prefix length is not a CIDR.
func IsCIDR(s string) bool {
	if IsIP(s) {
		return false
	}
	_, err := netip.ParsePrefix(s)
	return err == nil
}
