//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: https://github.com/ooni/probe-cli/blob/v3.20.1/internal/netxlite/dialer.go
//
// Internal code for DNS lookups.
//

package netcore

import (
	"context"
	"log/slog"
	"net"
	"net/netip"
	"time"

	"github.com/rbmk-project/sockaddr/errclass"
)

// LookupHost implements [netaddr.HostLookup].
//
// The returned addresses are [*net.TCPAddr] using the given port.
func (nx *Network) LookupHost(ctx context.Context, host string, port uint16) ([]net.Addr, error) {
	addrs, err := nx.maybeLookupHost(ctx, host)
	if err != nil {
		return nil, err
	}
	return newEndpoints(addrs, port), nil
}

// newEndpoints combines the resolved addresses with the port,
// skipping the entries that are not IP addresses.
func newEndpoints(addrs []string, port uint16) []net.Addr {
	var endpoints []net.Addr
	for _, addr := range addrs {
		ipAddr, err := netip.ParseAddr(addr)
		if err != nil {
			continue
		}
		endpoints = append(endpoints, net.TCPAddrFromAddrPort(netip.AddrPortFrom(ipAddr, port)))
	}
	return endpoints
}

// maybeLookupHost resolves a domain name to IP addresses unless the domain
// is already an IP address, in which case we short circuit the lookup.
func (nx *Network) maybeLookupHost(ctx context.Context, domain string) ([]string, error) {
	// handle the case where domain is already an IP address
	if net.ParseIP(domain) != nil {
		return []string{domain}, nil
	}

	// enforce the optional lookup timeout
	if nx.LookupHostTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, nx.LookupHostTimeout)
		defer cancel()
	}

	// Emit structured event before the lookup
	t0 := nx.emitLookupHostStart(ctx, domain)

	// Perform the actual lookup
	addrs, err := nx.doLookupHost(ctx, domain)

	// Emit structured event after the lookup
	nx.emitLookupHostDone(ctx, domain, t0, addrs, err)

	// Returns results to the caller
	return addrs, err
}

// doLookupHost performs the DNS lookup.
func (nx *Network) doLookupHost(ctx context.Context, domain string) ([]string, error) {
	// if there is a custom LookupHostFunc, use it
	if nx.LookupHostFunc != nil {
		return nx.LookupHostFunc(ctx, domain)
	}

	// otherwise fallback to the system resolver
	return nx.newResolver().LookupHost(ctx, domain)
}

// emitLookupHostStart emits a structured event before the lookup.
func (nx *Network) emitLookupHostStart(ctx context.Context, domain string) time.Time {
	t0 := nx.timeNow()
	if nx.Logger != nil {
		nx.Logger.InfoContext(
			ctx,
			"lookupHostStart",
			slog.String("dnsLookupDomain", domain),
			slog.Time("t", t0),
		)
	}
	return t0
}

// emitLookupHostDone emits a structured event after the lookup.
func (nx *Network) emitLookupHostDone(ctx context.Context,
	domain string, t0 time.Time, addrs []string, err error) {
	if nx.Logger != nil {
		nx.Logger.InfoContext(
			ctx,
			"lookupHostDone",
			slog.String("dnsLookupDomain", domain),
			slog.Any("dnsResolvedAddrs", addrs),
			slog.Any("err", err),
			slog.String("errClass", errclass.New(err)),
			slog.Time("t0", t0),
			slog.Time("t", nx.timeNow()),
		)
	}
}
