//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Conversion to and from the net and net/netip packages.
//

package netaddr

import (
	"net"
	"net/netip"
	"strconv"

	"github.com/rbmk-project/sockaddr/netipx"
)

// Addr converts ip to a [netip.Addr].
func (ip IPAddr) Addr() netip.Addr {
	if ip.is6 {
		return netip.AddrFrom16(ip.v6)
	}
	return netip.AddrFrom4(ip.v4)
}

// IPAddrFromNetIP converts a [netip.Addr] to an [IPAddr]. The zone, if
// any, is discarded. Returns false if addr is the zero [netip.Addr].
func IPAddrFromNetIP(addr netip.Addr) (IPAddr, bool) {
	ip, err := ipAddrFromNetIP(addr.WithZone(""))
	return ip, err == nil
}

// IPAddrFromStd converts a [net.IP] to an [IPAddr]. IPv4-mapped
// IPv6 addresses become IPv4 addresses.
func IPAddrFromStd(ip net.IP) (IPAddr, bool) {
	addr, ok := netipx.IPToAddr(ip)
	if !ok {
		return IPAddr{}, false
	}
	return IPAddrFromNetIP(addr)
}

// AddrPort converts sa to a [netip.AddrPort]. A nonzero scope ID
// becomes a numeric zone. The flow information is lost.
func (sa SocketAddr) AddrPort() netip.AddrPort {
	if !sa.is6 {
		return netip.AddrPortFrom(netip.AddrFrom4(sa.v4.ip), sa.v4.port)
	}
	addr := netip.AddrFrom16(sa.v6.ip)
	if sa.v6.scopeID != 0 {
		addr = addr.WithZone(strconv.FormatUint(uint64(sa.v6.scopeID), 10))
	}
	return netip.AddrPortFrom(addr, sa.v6.port)
}

// TCPAddr converts sa to a [*net.TCPAddr].
func (sa SocketAddr) TCPAddr() *net.TCPAddr {
	return net.TCPAddrFromAddrPort(sa.AddrPort())
}

// UDPAddr converts sa to a [*net.UDPAddr].
func (sa SocketAddr) UDPAddr() *net.UDPAddr {
	return net.UDPAddrFromAddrPort(sa.AddrPort())
}

// SocketAddrFromAddrPort converts a [netip.AddrPort] to a [SocketAddr].
//
// A numeric zone becomes the scope ID. Named zones cannot be mapped to
// a scope ID without querying the system and yield a zero scope ID.
func SocketAddrFromAddrPort(ap netip.AddrPort) (SocketAddr, bool) {
	addr := ap.Addr()
	switch {
	case addr.Is4():
		return SocketAddrFromV4(SocketAddrV4From(addr.As4(), ap.Port())), true
	case addr.Is6():
		scopeID, _ := strconv.ParseUint(addr.Zone(), 10, 32)
		return SocketAddrFromV6(SocketAddrV6From(addr.As16(), ap.Port(), 0, uint32(scopeID))), true
	default:
		return SocketAddr{}, false
	}
}

// SocketAddrFromNetAddr converts a [*net.TCPAddr], [*net.UDPAddr] or
// [*net.IPAddr] to a [SocketAddr]. Returns false for any other
// [net.Addr], including the ones that are not IP addresses.
func SocketAddrFromNetAddr(addr net.Addr) (SocketAddr, bool) {
	ap, ok := netipx.AddrToAddrPort(addr)
	if !ok {
		return SocketAddr{}, false
	}
	return SocketAddrFromAddrPort(ap)
}
