// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package netaddr contains IP and socket address value types.

The package models IPv4 and IPv6 addresses, the [IPAddr] tagged union
over both families, and the corresponding socket addresses. All types are
plain values: they are comparable with ==, freely copyable and safe for
concurrent use without synchronization.

# Parsing and Formatting

[ParseIPv4Addr], [ParseIPv6Addr], [ParseIPAddr], [ParseSocketAddrV4],
[ParseSocketAddrV6] and [ParseSocketAddr] accept the canonical textual
forms. Every failure returns [ErrAddrParse]. The String method of each
type returns a form that the corresponding parser accepts.

# Resolution

The [ToSocketAddrs] interface converts address-like values into a finite
sequence of [SocketAddr]. Literal inputs never block. Inputs containing a
host name are resolved using a [HostLookup], which is the only place
where resolution may block the calling goroutine.
*/
package netaddr
