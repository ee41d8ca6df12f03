//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Host name lookup capability.
//

package netaddr

import (
	"context"
	"net"
)

// HostLookup resolves a host name.
//
// LookupHost returns the addresses of host in the order in which they
// should be tried. The port is the one the caller is going to use; an
// implementation may embed it into the returned addresses but callers
// of LookupHost overwrite it anyway. Addresses that are not a
// [*net.TCPAddr], [*net.UDPAddr] or [*net.IPAddr] are ignored.
//
// LookupHost may block the calling goroutine.
type HostLookup interface {
	LookupHost(ctx context.Context, host string, port uint16) ([]net.Addr, error)
}

// HostLookupFunc adapts a function to the [HostLookup] interface.
type HostLookupFunc func(ctx context.Context, host string, port uint16) ([]net.Addr, error)

var _ HostLookup = HostLookupFunc(nil)

// LookupHost implements [HostLookup].
func (fx HostLookupFunc) LookupHost(ctx context.Context, host string, port uint16) ([]net.Addr, error) {
	return fx(ctx, host, port)
}

// DefaultHostLookup is the [HostLookup] used when the caller passes nil.
//
// It uses [net.DefaultResolver].
var DefaultHostLookup HostLookup = HostLookupFunc(systemLookupHost)

// systemLookupHost resolves host using [net.DefaultResolver].
func systemLookupHost(ctx context.Context, host string, port uint16) ([]net.Addr, error) {
	addrs, err := net.DefaultResolver.LookupIPAddr(ctx, host)
	if err != nil {
		return nil, err
	}
	out := make([]net.Addr, 0, len(addrs))
	for _, addr := range addrs {
		out = append(out, &net.TCPAddr{IP: addr.IP, Port: int(port), Zone: addr.Zone})
	}
	return out, nil
}
