//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Parsing of IP and socket addresses.
//

package netaddr

import (
	"net/netip"
	"strings"

	"github.com/rbmk-project/common/runtimex"
)

// ParseIPv4Addr parses a dotted-quad IPv4 address.
func ParseIPv4Addr(s string) (IPv4Addr, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil || !addr.Is4() {
		return IPv4Addr{}, ErrAddrParse
	}
	return addr.As4(), nil
}

// ParseIPv6Addr parses an IPv6 address using the colon-hex notation,
// optionally compressed with "::" and optionally ending with an embedded
// dotted-quad IPv4 address. Zones are not accepted.
func ParseIPv6Addr(s string) (IPv6Addr, error) {
	addr, err := parseAddr6(s)
	if err != nil {
		return IPv6Addr{}, err
	}
	return addr.As16(), nil
}

// ParseIPAddr parses either an IPv4 or an IPv6 address.
func ParseIPAddr(s string) (IPAddr, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return IPAddr{}, ErrAddrParse
	}
	return ipAddrFromNetIP(addr)
}

// ParseSocketAddrV4 parses an ip:port IPv4 socket address.
func ParseSocketAddrV4(s string) (SocketAddrV4, error) {
	sa, err := ParseSocketAddr(s)
	if err != nil {
		return SocketAddrV4{}, err
	}
	v4, ok := sa.V4()
	if !ok {
		return SocketAddrV4{}, ErrAddrParse
	}
	return v4, nil
}

// ParseSocketAddrV6 parses an [ip]:port IPv6 socket address.
func ParseSocketAddrV6(s string) (SocketAddrV6, error) {
	sa, err := ParseSocketAddr(s)
	if err != nil {
		return SocketAddrV6{}, err
	}
	v6, ok := sa.V6()
	if !ok {
		return SocketAddrV6{}, ErrAddrParse
	}
	return v6, nil
}

// ParseSocketAddr parses either an ip:port IPv4 socket address or
// an [ip]:port IPv6 socket address.
func ParseSocketAddr(s string) (SocketAddr, error) {
	ap, err := netip.ParseAddrPort(s)
	if err != nil {
		return SocketAddr{}, ErrAddrParse
	}
	addr := ap.Addr()
	switch {
	case addr.Zone() != "":
		return SocketAddr{}, ErrAddrParse
	case addr.Is4() && strings.HasPrefix(s, "["):
		return SocketAddr{}, ErrAddrParse
	case addr.Is4():
		return SocketAddrFromV4(SocketAddrV4From(addr.As4(), ap.Port())), nil
	default:
		return SocketAddrFromV6(SocketAddrV6From(addr.As16(), ap.Port(), 0, 0)), nil
	}
}

// parseAddr6 parses an IPv6 address without zone.
func parseAddr6(s string) (netip.Addr, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil || !addr.Is6() || addr.Zone() != "" {
		return netip.Addr{}, ErrAddrParse
	}
	return addr, nil
}

// ipAddrFromNetIP converts addr refusing zones and invalid addresses.
func ipAddrFromNetIP(addr netip.Addr) (IPAddr, error) {
	switch {
	case addr.Is4():
		return IPAddrFromV4(addr.As4()), nil
	case addr.Is6() && addr.Zone() == "":
		return IPAddrFromV6(addr.As16()), nil
	default:
		return IPAddr{}, ErrAddrParse
	}
}

// MustParseIPv4Addr is like [ParseIPv4Addr] but panics on error.
func MustParseIPv4Addr(s string) IPv4Addr {
	return runtimex.Try1(ParseIPv4Addr(s))
}

// MustParseIPv6Addr is like [ParseIPv6Addr] but panics on error.
func MustParseIPv6Addr(s string) IPv6Addr {
	return runtimex.Try1(ParseIPv6Addr(s))
}

// MustParseIPAddr is like [ParseIPAddr] but panics on error.
func MustParseIPAddr(s string) IPAddr {
	return runtimex.Try1(ParseIPAddr(s))
}

// MustParseSocketAddr is like [ParseSocketAddr] but panics on error.
func MustParseSocketAddr(s string) SocketAddr {
	return runtimex.Try1(ParseSocketAddr(s))
}
