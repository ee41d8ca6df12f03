//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// IPv4 or IPv6 address.
//

package netaddr

// IPAddr is either an [IPv4Addr] or an [IPv6Addr].
//
// The zero value is the IPv4 address 0.0.0.0.
type IPAddr struct {
	// is6 selects the active variant.
	is6 bool

	// v4 is the IPv4 address when is6 is false.
	v4 IPv4Addr

	// v6 is the IPv6 address when is6 is true.
	v6 IPv6Addr
}

// IPAddrFromV4 returns an [IPAddr] holding an IPv4 address.
func IPAddrFromV4(ip IPv4Addr) IPAddr {
	return IPAddr{v4: ip}
}

// IPAddrFromV6 returns an [IPAddr] holding an IPv6 address.
func IPAddrFromV6(ip IPv6Addr) IPAddr {
	return IPAddr{is6: true, v6: ip}
}

// Is4 reports whether ip holds an IPv4 address.
func (ip IPAddr) Is4() bool {
	return !ip.is6
}

// Is6 reports whether ip holds an IPv6 address.
func (ip IPAddr) Is6() bool {
	return ip.is6
}

// V4 returns the IPv4 address and true if ip is an IPv4 address.
func (ip IPAddr) V4() (IPv4Addr, bool) {
	return ip.v4, !ip.is6
}

// V6 returns the IPv6 address and true if ip is an IPv6 address.
func (ip IPAddr) V6() (IPv6Addr, bool) {
	return ip.v6, ip.is6
}

// Compare returns -1, 0 or +1. IPv4 addresses sort before IPv6 addresses.
func (ip IPAddr) Compare(other IPAddr) int {
	switch {
	case !ip.is6 && other.is6:
		return -1
	case ip.is6 && !other.is6:
		return 1
	case ip.is6:
		return ip.v6.Compare(other.v6)
	default:
		return ip.v4.Compare(other.v4)
	}
}

// IsUnspecified reports whether ip is 0.0.0.0 or ::.
func (ip IPAddr) IsUnspecified() bool {
	if ip.is6 {
		return ip.v6.IsUnspecified()
	}
	return ip.v4.IsUnspecified()
}

// IsLoopback reports whether ip is a loopback address.
func (ip IPAddr) IsLoopback() bool {
	if ip.is6 {
		return ip.v6.IsLoopback()
	}
	return ip.v4.IsLoopback()
}

// IsMulticast reports whether ip is a multicast address.
func (ip IPAddr) IsMulticast() bool {
	if ip.is6 {
		return ip.v6.IsMulticast()
	}
	return ip.v4.IsMulticast()
}

// String returns the textual representation of the active variant.
func (ip IPAddr) String() string {
	if ip.is6 {
		return ip.v6.String()
	}
	return ip.v4.String()
}

// MarshalText implements [encoding.TextMarshaler].
func (ip IPAddr) MarshalText() ([]byte, error) {
	return []byte(ip.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (ip *IPAddr) UnmarshalText(text []byte) error {
	parsed, err := ParseIPAddr(string(text))
	if err != nil {
		return err
	}
	*ip = parsed
	return nil
}
