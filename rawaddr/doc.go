//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || windows

// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package rawaddr converts [netaddr] socket addresses to and from the
fixed-layout structures used by the operating system sockets API.

The structures are the ones defined by [golang.org/x/sys/unix] and, on
Windows, by [golang.org/x/sys/windows]. Ports and IPv4 addresses are
stored in network byte order. The flow information and the scope ID of
IPv6 socket addresses are copied verbatim. Every byte we do not set
explicitly is zero.

Decoding a structure whose address family is neither IPv4 nor IPv6
is a programming error and causes a panic.
*/
package rawaddr
