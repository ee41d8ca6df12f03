// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package netcore resolves address-like values into socket addresses.

This package is designed to facilitate measuring host name lookups
via the [log/slog] package while converting the values accepted by
[netaddr.ToSocketAddrs] into [netaddr.SocketAddr].

# Features

- [*Network] implementing [netaddr.HostLookup] with optional
structured logging, timeouts and a pluggable lookup function;

- [*DNSLookup] resolving host names with A and AAAA queries sent
to a single DNS server through [github.com/rbmk-project/dnscore].

# Design Documents

This package is experimental and has no design documents for now.
*/
package netcore
