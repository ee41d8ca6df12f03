//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// IPv4 addresses.
//

package netaddr

import (
	"bytes"
	"encoding/binary"
	"net/netip"
)

// IPv4Addr is an IPv4 address stored in network byte order.
type IPv4Addr [4]byte

var (
	// IPv4Localhost is 127.0.0.1.
	IPv4Localhost = IPv4Addr{127, 0, 0, 1}

	// IPv4Unspecified is 0.0.0.0.
	IPv4Unspecified = IPv4Addr{0, 0, 0, 0}

	// IPv4Broadcast is 255.255.255.255.
	IPv4Broadcast = IPv4Addr{255, 255, 255, 255}
)

// IPv4AddrFrom returns the a.b.c.d address.
func IPv4AddrFrom(a, b, c, d uint8) IPv4Addr {
	return IPv4Addr{a, b, c, d}
}

// IPv4AddrFromUint32 returns the address whose big-endian
// representation is the given value.
func IPv4AddrFromUint32(v uint32) IPv4Addr {
	var ip IPv4Addr
	binary.BigEndian.PutUint32(ip[:], v)
	return ip
}

// Octets returns the four octets of the address.
func (ip IPv4Addr) Octets() [4]byte {
	return ip
}

// Uint32 returns the address as a big-endian integer.
func (ip IPv4Addr) Uint32() uint32 {
	return binary.BigEndian.Uint32(ip[:])
}

// Compare returns -1, 0 or +1 comparing the octets.
func (ip IPv4Addr) Compare(other IPv4Addr) int {
	return bytes.Compare(ip[:], other[:])
}

// IsUnspecified reports whether ip is 0.0.0.0.
func (ip IPv4Addr) IsUnspecified() bool {
	return ip == IPv4Unspecified
}

// IsLoopback reports whether ip is in 127.0.0.0/8.
func (ip IPv4Addr) IsLoopback() bool {
	return ip[0] == 127
}

// IsPrivate reports whether ip is in one of the RFC 1918 ranges.
func (ip IPv4Addr) IsPrivate() bool {
	switch {
	case ip[0] == 10:
		return true
	case ip[0] == 172 && ip[1]&0xf0 == 16:
		return true
	case ip[0] == 192 && ip[1] == 168:
		return true
	default:
		return false
	}
}

// IsLinkLocal reports whether ip is in 169.254.0.0/16.
func (ip IPv4Addr) IsLinkLocal() bool {
	return ip[0] == 169 && ip[1] == 254
}

// IsMulticast reports whether ip is in 224.0.0.0/4.
func (ip IPv4Addr) IsMulticast() bool {
	return ip[0]&0xf0 == 224
}

// IsBroadcast reports whether ip is 255.255.255.255.
func (ip IPv4Addr) IsBroadcast() bool {
	return ip == IPv4Broadcast
}

// IsDocumentation reports whether ip belongs to one of the
// TEST-NET ranges defined by RFC 5737.
func (ip IPv4Addr) IsDocumentation() bool {
	switch {
	case ip[0] == 192 && ip[1] == 0 && ip[2] == 2:
		return true
	case ip[0] == 198 && ip[1] == 51 && ip[2] == 100:
		return true
	case ip[0] == 203 && ip[1] == 0 && ip[2] == 113:
		return true
	default:
		return false
	}
}

// ToIPv6Mapped returns the ::ffff:a.b.c.d address.
func (ip IPv4Addr) ToIPv6Mapped() IPv6Addr {
	return IPv6Addr{10: 0xff, 11: 0xff, 12: ip[0], 13: ip[1], 14: ip[2], 15: ip[3]}
}

// ToIPv6Compatible returns the deprecated ::a.b.c.d address.
func (ip IPv4Addr) ToIPv6Compatible() IPv6Addr {
	return IPv6Addr{12: ip[0], 13: ip[1], 14: ip[2], 15: ip[3]}
}

// String returns the dotted-quad representation.
func (ip IPv4Addr) String() string {
	return netip.AddrFrom4(ip).String()
}

// MarshalText implements [encoding.TextMarshaler].
func (ip IPv4Addr) MarshalText() ([]byte, error) {
	return []byte(ip.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (ip *IPv4Addr) UnmarshalText(text []byte) error {
	parsed, err := ParseIPv4Addr(string(text))
	if err != nil {
		return err
	}
	*ip = parsed
	return nil
}
