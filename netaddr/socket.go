//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Socket addresses.
//

package netaddr

import (
	"net/netip"
	"strconv"
)

// SocketAddrV4 is an IPv4 address and a port.
type SocketAddrV4 struct {
	ip   IPv4Addr
	port uint16
}

// SocketAddrV4From returns a new [SocketAddrV4].
func SocketAddrV4From(ip IPv4Addr, port uint16) SocketAddrV4 {
	return SocketAddrV4{ip: ip, port: port}
}

// IP returns the IP address.
func (sa SocketAddrV4) IP() IPv4Addr {
	return sa.ip
}

// SetIP replaces the IP address.
func (sa *SocketAddrV4) SetIP(ip IPv4Addr) {
	sa.ip = ip
}

// Port returns the port.
func (sa SocketAddrV4) Port() uint16 {
	return sa.port
}

// SetPort replaces the port.
func (sa *SocketAddrV4) SetPort(port uint16) {
	sa.port = port
}

// String returns the ip:port representation.
func (sa SocketAddrV4) String() string {
	return sa.ip.String() + ":" + strconv.Itoa(int(sa.port))
}

// MarshalText implements [encoding.TextMarshaler].
func (sa SocketAddrV4) MarshalText() ([]byte, error) {
	return []byte(sa.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (sa *SocketAddrV4) UnmarshalText(text []byte) error {
	parsed, err := ParseSocketAddrV4(string(text))
	if err != nil {
		return err
	}
	*sa = parsed
	return nil
}

// SocketAddrV6 is an IPv6 address, a port, the flow information
// and the scope ID. The flow information and the scope ID are not
// interpreted by this package.
type SocketAddrV6 struct {
	ip       IPv6Addr
	port     uint16
	flowInfo uint32
	scopeID  uint32
}

// SocketAddrV6From returns a new [SocketAddrV6].
func SocketAddrV6From(ip IPv6Addr, port uint16, flowInfo, scopeID uint32) SocketAddrV6 {
	return SocketAddrV6{ip: ip, port: port, flowInfo: flowInfo, scopeID: scopeID}
}

// IP returns the IP address.
func (sa SocketAddrV6) IP() IPv6Addr {
	return sa.ip
}

// SetIP replaces the IP address.
func (sa *SocketAddrV6) SetIP(ip IPv6Addr) {
	sa.ip = ip
}

// Port returns the port.
func (sa SocketAddrV6) Port() uint16 {
	return sa.port
}

// SetPort replaces the port.
func (sa *SocketAddrV6) SetPort(port uint16) {
	sa.port = port
}

// FlowInfo returns the flow information (sin6_flowinfo).
func (sa SocketAddrV6) FlowInfo() uint32 {
	return sa.flowInfo
}

// SetFlowInfo replaces the flow information.
func (sa *SocketAddrV6) SetFlowInfo(flowInfo uint32) {
	sa.flowInfo = flowInfo
}

// ScopeID returns the scope ID (sin6_scope_id).
func (sa SocketAddrV6) ScopeID() uint32 {
	return sa.scopeID
}

// SetScopeID replaces the scope ID.
func (sa *SocketAddrV6) SetScopeID(scopeID uint32) {
	sa.scopeID = scopeID
}

// String returns the [ip]:port representation. The flow information
// and the scope ID are not part of the representation.
func (sa SocketAddrV6) String() string {
	return netip.AddrPortFrom(netip.AddrFrom16(sa.ip), sa.port).String()
}

// MarshalText implements [encoding.TextMarshaler]. Like String, the
// text does not include the flow information and the scope ID.
func (sa SocketAddrV6) MarshalText() ([]byte, error) {
	return []byte(sa.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler]. The flow
// information and the scope ID of the result are zero.
func (sa *SocketAddrV6) UnmarshalText(text []byte) error {
	parsed, err := ParseSocketAddrV6(string(text))
	if err != nil {
		return err
	}
	*sa = parsed
	return nil
}

// SocketAddr is either a [SocketAddrV4] or a [SocketAddrV6].
//
// The zero value is the IPv4 socket address 0.0.0.0:0.
type SocketAddr struct {
	// is6 selects the active variant.
	is6 bool

	// v4 is the IPv4 socket address when is6 is false.
	v4 SocketAddrV4

	// v6 is the IPv6 socket address when is6 is true.
	v6 SocketAddrV6
}

// SocketAddrFrom returns the socket address for ip and port. IPv6
// socket addresses have zero flow information and scope ID.
func SocketAddrFrom(ip IPAddr, port uint16) SocketAddr {
	if v6, ok := ip.V6(); ok {
		return SocketAddrFromV6(SocketAddrV6From(v6, port, 0, 0))
	}
	v4, _ := ip.V4()
	return SocketAddrFromV4(SocketAddrV4From(v4, port))
}

// SocketAddrFromV4 wraps a [SocketAddrV4].
func SocketAddrFromV4(sa SocketAddrV4) SocketAddr {
	return SocketAddr{v4: sa}
}

// SocketAddrFromV6 wraps a [SocketAddrV6].
func SocketAddrFromV6(sa SocketAddrV6) SocketAddr {
	return SocketAddr{is6: true, v6: sa}
}

// Is4 reports whether sa is an IPv4 socket address.
func (sa SocketAddr) Is4() bool {
	return !sa.is6
}

// Is6 reports whether sa is an IPv6 socket address.
func (sa SocketAddr) Is6() bool {
	return sa.is6
}

// V4 returns the [SocketAddrV4] and true if sa is an IPv4 socket address.
func (sa SocketAddr) V4() (SocketAddrV4, bool) {
	return sa.v4, !sa.is6
}

// V6 returns the [SocketAddrV6] and true if sa is an IPv6 socket address.
func (sa SocketAddr) V6() (SocketAddrV6, bool) {
	return sa.v6, sa.is6
}

// IP returns the IP address.
func (sa SocketAddr) IP() IPAddr {
	if sa.is6 {
		return IPAddrFromV6(sa.v6.ip)
	}
	return IPAddrFromV4(sa.v4.ip)
}

// SetIP replaces the IP address. When the family of ip differs from
// the current one, sa becomes a socket address of the other family
// that preserves the current port.
func (sa *SocketAddr) SetIP(ip IPAddr) {
	switch {
	case sa.is6 && ip.is6:
		sa.v6.SetIP(ip.v6)
	case !sa.is6 && !ip.is6:
		sa.v4.SetIP(ip.v4)
	default:
		*sa = SocketAddrFrom(ip, sa.Port())
	}
}

// Port returns the port.
func (sa SocketAddr) Port() uint16 {
	if sa.is6 {
		return sa.v6.port
	}
	return sa.v4.port
}

// SetPort replaces the port.
func (sa *SocketAddr) SetPort(port uint16) {
	if sa.is6 {
		sa.v6.SetPort(port)
		return
	}
	sa.v4.SetPort(port)
}

// String returns ip:port or [ip]:port depending on the family.
func (sa SocketAddr) String() string {
	if sa.is6 {
		return sa.v6.String()
	}
	return sa.v4.String()
}

// MarshalText implements [encoding.TextMarshaler].
func (sa SocketAddr) MarshalText() ([]byte, error) {
	return []byte(sa.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (sa *SocketAddr) UnmarshalText(text []byte) error {
	parsed, err := ParseSocketAddr(string(text))
	if err != nil {
		return err
	}
	*sa = parsed
	return nil
}
