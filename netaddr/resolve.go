//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Conversion of address-like values to socket addresses.
//

package netaddr

import (
	"context"
	"iter"
	"net"
	"slices"
	"strconv"
	"strings"
)

// ToSocketAddrs is implemented by values that can be converted or
// resolved to one or more [SocketAddr].
//
// This package implements it for:
//
//   - [SocketAddr], [SocketAddrV4] and [SocketAddrV6], which yield
//     themselves;
//
//   - [IPPort], [IPv4Port] and [IPv6Port], which yield the matching
//     socket address;
//
//   - [HostPort], whose host is either an IP literal or a host name;
//
//   - [Endpoint], which is either a socket address or a host:port string;
//
//   - [SocketAddrs], which yields its elements in order.
//
// Pointers to these types implement ToSocketAddrs as well.
//
// Only host names cause lookup through the [HostLookup]. When lookup
// is nil, [DefaultHostLookup] is used. The returned sequence is finite
// and meant to be consumed once.
type ToSocketAddrs interface {
	ToSocketAddrs(ctx context.Context, lookup HostLookup) (iter.Seq[SocketAddr], error)
}

// Resolve is a convenience function calling target.ToSocketAddrs
// and collecting the results into a slice.
func Resolve(ctx context.Context, lookup HostLookup, target ToSocketAddrs) ([]SocketAddr, error) {
	seq, err := target.ToSocketAddrs(ctx, lookup)
	if err != nil {
		return nil, err
	}
	return slices.Collect(seq), nil
}

// single returns a sequence yielding sa once.
func single(sa SocketAddr) iter.Seq[SocketAddr] {
	return func(yield func(SocketAddr) bool) {
		yield(sa)
	}
}

var (
	_ ToSocketAddrs = SocketAddr{}
	_ ToSocketAddrs = SocketAddrV4{}
	_ ToSocketAddrs = SocketAddrV6{}
	_ ToSocketAddrs = IPPort{}
	_ ToSocketAddrs = IPv4Port{}
	_ ToSocketAddrs = IPv6Port{}
	_ ToSocketAddrs = HostPort{}
	_ ToSocketAddrs = Endpoint("")
	_ ToSocketAddrs = SocketAddrs(nil)
)

// ToSocketAddrs implements [ToSocketAddrs].
func (sa SocketAddr) ToSocketAddrs(ctx context.Context, lookup HostLookup) (iter.Seq[SocketAddr], error) {
	return single(sa), nil
}

// ToSocketAddrs implements [ToSocketAddrs].
func (sa SocketAddrV4) ToSocketAddrs(ctx context.Context, lookup HostLookup) (iter.Seq[SocketAddr], error) {
	return single(SocketAddrFromV4(sa)), nil
}

// ToSocketAddrs implements [ToSocketAddrs].
func (sa SocketAddrV6) ToSocketAddrs(ctx context.Context, lookup HostLookup) (iter.Seq[SocketAddr], error) {
	return single(SocketAddrFromV6(sa)), nil
}

// IPPort is an [IPAddr] and a port.
type IPPort struct {
	IP   IPAddr
	Port uint16
}

// ToSocketAddrs implements [ToSocketAddrs].
func (p IPPort) ToSocketAddrs(ctx context.Context, lookup HostLookup) (iter.Seq[SocketAddr], error) {
	return single(SocketAddrFrom(p.IP, p.Port)), nil
}

// IPv4Port is an [IPv4Addr] and a port.
type IPv4Port struct {
	IP   IPv4Addr
	Port uint16
}

// ToSocketAddrs implements [ToSocketAddrs].
func (p IPv4Port) ToSocketAddrs(ctx context.Context, lookup HostLookup) (iter.Seq[SocketAddr], error) {
	return single(SocketAddrFromV4(SocketAddrV4From(p.IP, p.Port))), nil
}

// IPv6Port is an [IPv6Addr] and a port.
type IPv6Port struct {
	IP   IPv6Addr
	Port uint16
}

// ToSocketAddrs implements [ToSocketAddrs].
func (p IPv6Port) ToSocketAddrs(ctx context.Context, lookup HostLookup) (iter.Seq[SocketAddr], error) {
	return single(SocketAddrFromV6(SocketAddrV6From(p.IP, p.Port, 0, 0))), nil
}

// HostPort is a host and a port. The host is either
// an IPv4 literal, an IPv6 literal or a host name.
type HostPort struct {
	Host string
	Port uint16
}

// ToSocketAddrs implements [ToSocketAddrs].
//
// IP literals yield a single socket address without lookup. Host names
// are resolved and every result gets the port of hp.
func (hp HostPort) ToSocketAddrs(ctx context.Context, lookup HostLookup) (iter.Seq[SocketAddr], error) {
	if ip, err := ParseIPv4Addr(hp.Host); err == nil {
		return single(SocketAddrFromV4(SocketAddrV4From(ip, hp.Port))), nil
	}
	if ip, err := ParseIPv6Addr(hp.Host); err == nil {
		return single(SocketAddrFromV6(SocketAddrV6From(ip, hp.Port, 0, 0))), nil
	}
	return resolveHost(ctx, lookup, hp.Host, hp.Port)
}

// Endpoint is either a socket address like "1.2.3.4:80" and
// "[::1]:80", or a host name and a port like "localhost:80".
type Endpoint string

// ToSocketAddrs implements [ToSocketAddrs].
//
// Returns an error wrapping [ErrInvalidInput] when the endpoint does
// not contain a port or the port is not a valid 16-bit number.
func (ep Endpoint) ToSocketAddrs(ctx context.Context, lookup HostLookup) (iter.Seq[SocketAddr], error) {
	if sa, err := ParseSocketAddr(string(ep)); err == nil {
		return single(sa), nil
	}
	hp, err := splitHostPort(string(ep))
	if err != nil {
		return nil, err
	}
	return hp.ToSocketAddrs(ctx, lookup)
}

// splitHostPort splits an endpoint into a [HostPort]. Brackets
// are only valid around IPv6 literals.
func splitHostPort(endpoint string) (HostPort, error) {
	host, port, err := net.SplitHostPort(endpoint)
	if err != nil || host == "" {
		return HostPort{}, errInvalidSocketAddr
	}
	if strings.HasPrefix(endpoint, "[") {
		if _, err := ParseIPv6Addr(host); err != nil {
			return HostPort{}, errInvalidSocketAddr
		}
	}
	value, err := strconv.ParseUint(port, 10, 16)
	if err != nil {
		return HostPort{}, errInvalidPort
	}
	return HostPort{Host: host, Port: uint16(value)}, nil
}

// SocketAddrs is an ordered list of socket addresses.
type SocketAddrs []SocketAddr

// ToSocketAddrs implements [ToSocketAddrs].
func (s SocketAddrs) ToSocketAddrs(ctx context.Context, lookup HostLookup) (iter.Seq[SocketAddr], error) {
	return slices.Values(slices.Clone(s)), nil
}

// resolveHost resolves host using lookup and sets port on each result
// discarding any result that is not an IP address.
func resolveHost(ctx context.Context,
	lookup HostLookup, host string, port uint16) (iter.Seq[SocketAddr], error) {
	if lookup == nil {
		lookup = DefaultHostLookup
	}
	records, err := lookup.LookupHost(ctx, host, port)
	if err != nil {
		return nil, &LookupError{Host: host, Err: err}
	}
	addrs := make([]SocketAddr, 0, len(records))
	for _, record := range records {
		sa, ok := SocketAddrFromNetAddr(record)
		if !ok {
			continue
		}
		sa.SetPort(port)
		addrs = append(addrs, sa)
	}
	return slices.Values(addrs), nil
}
