//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || windows

// SPDX-License-Identifier: GPL-3.0-or-later

package rawaddr

import (
	"encoding/binary"
	"unsafe"

	"github.com/rbmk-project/common/runtimex"
	"github.com/rbmk-project/sockaddr/netaddr"
)

// FromSocketAddrV4 returns the native form of sa.
func FromSocketAddrV4(sa netaddr.SocketAddrV4) RawSockaddrInet4 {
	var raw RawSockaddrInet4
	setFamily4(&raw)
	putPort(&raw.Port, sa.Port())
	raw.Addr = sa.IP()
	return raw
}

// ToSocketAddrV4 converts the native form back to a [netaddr.SocketAddrV4].
//
// This function panics if the address family is not [FamilyInet4].
func ToSocketAddrV4(raw *RawSockaddrInet4) netaddr.SocketAddrV4 {
	runtimex.Assert(family4(raw) == FamilyInet4, "rawaddr: expected AF_INET")
	return netaddr.SocketAddrV4From(raw.Addr, getPort(&raw.Port))
}

// FromSocketAddrV6 returns the native form of sa.
func FromSocketAddrV6(sa netaddr.SocketAddrV6) RawSockaddrInet6 {
	var raw RawSockaddrInet6
	setFamily6(&raw)
	putPort(&raw.Port, sa.Port())
	raw.Flowinfo = sa.FlowInfo()
	raw.Addr = sa.IP()
	raw.Scope_id = sa.ScopeID()
	return raw
}

// ToSocketAddrV6 converts the native form back to a [netaddr.SocketAddrV6].
//
// This function panics if the address family is not [FamilyInet6].
func ToSocketAddrV6(raw *RawSockaddrInet6) netaddr.SocketAddrV6 {
	runtimex.Assert(family6(raw) == FamilyInet6, "rawaddr: expected AF_INET6")
	return netaddr.SocketAddrV6From(raw.Addr, getPort(&raw.Port), raw.Flowinfo, raw.Scope_id)
}

// FromSocketAddr stores the native form of sa into a zeroed [*RawSockaddrAny]
// and returns it along with the length of the meaningful prefix, which is
// what bind(2), connect(2) and sendto(2) expect.
func FromSocketAddr(sa netaddr.SocketAddr) (*RawSockaddrAny, uint32) {
	storage := &RawSockaddrAny{}
	if v4, ok := sa.V4(); ok {
		raw := FromSocketAddrV4(v4)
		*(*RawSockaddrInet4)(unsafe.Pointer(storage)) = raw
		return storage, uint32(unsafe.Sizeof(raw))
	}
	v6, _ := sa.V6()
	raw := FromSocketAddrV6(v6)
	*(*RawSockaddrInet6)(unsafe.Pointer(storage)) = raw
	return storage, uint32(unsafe.Sizeof(raw))
}

// ToSocketAddr converts the native form back to a [netaddr.SocketAddr]
// after inspecting the address family.
//
// This function panics if the family is neither [FamilyInet4] nor [FamilyInet6].
func ToSocketAddr(raw *RawSockaddrAny) netaddr.SocketAddr {
	family := familyAny(raw)
	runtimex.Assert(family == FamilyInet4 || family == FamilyInet6,
		"rawaddr: unsupported address family")
	if family == FamilyInet4 {
		return netaddr.SocketAddrFromV4(ToSocketAddrV4((*RawSockaddrInet4)(unsafe.Pointer(raw))))
	}
	return netaddr.SocketAddrFromV6(ToSocketAddrV6((*RawSockaddrInet6)(unsafe.Pointer(raw))))
}

// InAddr returns the value of the s_addr field of the in_addr
// structure for ip, which holds the address in network byte order.
func InAddr(ip netaddr.IPv4Addr) uint32 {
	return binary.NativeEndian.Uint32(ip[:])
}

// IPv4AddrFromInAddr is the inverse of [InAddr].
func IPv4AddrFromInAddr(sAddr uint32) netaddr.IPv4Addr {
	var ip netaddr.IPv4Addr
	binary.NativeEndian.PutUint32(ip[:], sAddr)
	return ip
}

// In6Addr returns the s6_addr field of the in6_addr structure for ip.
func In6Addr(ip netaddr.IPv6Addr) [16]byte {
	return ip.Octets()
}

// ToSockaddr converts sa to a [Sockaddr]. The flow information of
// IPv6 socket addresses is not representable and is lost.
func ToSockaddr(sa netaddr.SocketAddr) Sockaddr {
	if v4, ok := sa.V4(); ok {
		return &SockaddrInet4{Port: int(v4.Port()), Addr: v4.IP()}
	}
	v6, _ := sa.V6()
	return &SockaddrInet6{Port: int(v6.Port()), ZoneId: v6.ScopeID(), Addr: v6.IP()}
}

// FromSockaddr converts a [*SockaddrInet4] or a [*SockaddrInet6] to a
// [netaddr.SocketAddr]. Returns false for any other [Sockaddr] and for
// ports that do not fit into 16 bits.
func FromSockaddr(sa Sockaddr) (netaddr.SocketAddr, bool) {
	switch sa := sa.(type) {
	case *SockaddrInet4:
		if sa == nil || sa.Port < 0 || sa.Port > 65535 {
			return netaddr.SocketAddr{}, false
		}
		return netaddr.SocketAddrFromV4(netaddr.SocketAddrV4From(sa.Addr, uint16(sa.Port))), true
	case *SockaddrInet6:
		if sa == nil || sa.Port < 0 || sa.Port > 65535 {
			return netaddr.SocketAddr{}, false
		}
		return netaddr.SocketAddrFromV6(netaddr.SocketAddrV6From(
			sa.Addr, uint16(sa.Port), 0, sa.ZoneId)), true
	default:
		return netaddr.SocketAddr{}, false
	}
}

// putPort stores port into dst using network byte order.
func putPort(dst *uint16, port uint16) {
	binary.BigEndian.PutUint16((*[2]byte)(unsafe.Pointer(dst))[:], port)
}

// getPort reads a port stored using network byte order.
func getPort(src *uint16) uint16 {
	return binary.BigEndian.Uint16((*[2]byte)(unsafe.Pointer(src))[:])
}
