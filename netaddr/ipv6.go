//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// IPv6 addresses.
//

package netaddr

import (
	"bytes"
	"encoding/binary"
	"net/netip"
)

// IPv6Addr is an IPv6 address stored in network byte order.
type IPv6Addr [16]byte

var (
	// IPv6Localhost is ::1.
	IPv6Localhost = IPv6Addr{15: 1}

	// IPv6Unspecified is ::.
	IPv6Unspecified = IPv6Addr{}
)

// IPv6AddrFrom returns the address made of the given eight 16-bit groups.
func IPv6AddrFrom(a, b, c, d, e, f, g, h uint16) IPv6Addr {
	var ip IPv6Addr
	for idx, group := range [8]uint16{a, b, c, d, e, f, g, h} {
		binary.BigEndian.PutUint16(ip[2*idx:], group)
	}
	return ip
}

// IPv6AddrFrom16 returns the address with the given octets.
func IPv6AddrFrom16(octets [16]byte) IPv6Addr {
	return octets
}

// Segments returns the eight 16-bit groups of the address.
func (ip IPv6Addr) Segments() [8]uint16 {
	var out [8]uint16
	for idx := range out {
		out[idx] = binary.BigEndian.Uint16(ip[2*idx:])
	}
	return out
}

// Octets returns the sixteen octets of the address.
func (ip IPv6Addr) Octets() [16]byte {
	return ip
}

// Compare returns -1, 0 or +1 comparing the octets.
func (ip IPv6Addr) Compare(other IPv6Addr) int {
	return bytes.Compare(ip[:], other[:])
}

// IsUnspecified reports whether ip is ::.
func (ip IPv6Addr) IsUnspecified() bool {
	return ip == IPv6Unspecified
}

// IsLoopback reports whether ip is ::1.
func (ip IPv6Addr) IsLoopback() bool {
	return ip == IPv6Localhost
}

// IsMulticast reports whether ip is in ff00::/8.
func (ip IPv6Addr) IsMulticast() bool {
	return ip[0] == 0xff
}

// ToIPv4 converts IPv4-mapped (::ffff:a.b.c.d) and IPv4-compatible
// (::a.b.c.d) addresses to IPv4. Note that :: and ::1 are IPv4-compatible
// addresses and convert to 0.0.0.0 and 0.0.0.1 respectively.
func (ip IPv6Addr) ToIPv4() (IPv4Addr, bool) {
	for _, b := range ip[:10] {
		if b != 0 {
			return IPv4Addr{}, false
		}
	}
	if (ip[10] == 0 && ip[11] == 0) || (ip[10] == 0xff && ip[11] == 0xff) {
		return IPv4Addr{ip[12], ip[13], ip[14], ip[15]}, true
	}
	return IPv4Addr{}, false
}

// String returns the RFC 5952 representation.
func (ip IPv6Addr) String() string {
	return netip.AddrFrom16(ip).String()
}

// MarshalText implements [encoding.TextMarshaler].
func (ip IPv6Addr) MarshalText() ([]byte, error) {
	return []byte(ip.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (ip *IPv6Addr) UnmarshalText(text []byte) error {
	parsed, err := ParseIPv6Addr(string(text))
	if err != nil {
		return err
	}
	*ip = parsed
	return nil
}
