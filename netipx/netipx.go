// SPDX-License-Identifier: GPL-3.0-or-later

// Package netipx contains [net/netip] extensions.
package netipx

import (
	"net"
	"net/netip"

	"go4.org/netipx"
)

// AddrToAddrPort converts a [net.Addr] to a [netip.AddrPort].
//
// Returns false if the input is nil, it is neither a [*net.TCPAddr] nor
// a [*net.UDPAddr] nor a [*net.IPAddr], or it contains an invalid IP
// address or port. A [*net.IPAddr] converts with port 0.
//
// IPv4-mapped IPv6 addresses are unmapped, since this is how the
// [net] package stores IPv4 addresses inside a [net.IP].
func AddrToAddrPort(addr net.Addr) (netip.AddrPort, bool) {
	switch addr := addr.(type) {
	case *net.TCPAddr:
		if addr != nil {
			return fromStd(addr.IP, addr.Zone, addr.Port)
		}
	case *net.UDPAddr:
		if addr != nil {
			return fromStd(addr.IP, addr.Zone, addr.Port)
		}
	case *net.IPAddr:
		if addr != nil {
			return fromStd(addr.IP, addr.Zone, 0)
		}
	}
	return netip.AddrPort{}, false
}

// IPToAddr converts a [net.IP] to an unmapped [netip.Addr].
func IPToAddr(ip net.IP) (netip.Addr, bool) {
	return netipx.FromStdIP(ip)
}

// fromStd builds a [netip.AddrPort] from the fields of a [net.Addr].
func fromStd(ip net.IP, zone string, port int) (netip.AddrPort, bool) {
	addr, ok := netipx.FromStdIP(ip)
	if !ok || port < 0 || port > 65535 {
		return netip.AddrPort{}, false
	}
	if zone != "" && addr.Is6() {
		addr = addr.WithZone(zone)
	}
	return netip.AddrPortFrom(addr, uint16(port)), true
}
