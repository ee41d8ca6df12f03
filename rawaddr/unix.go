//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

// SPDX-License-Identifier: GPL-3.0-or-later

package rawaddr

import "golang.org/x/sys/unix"

type (
	// RawSockaddrInet4 is the native IPv4 socket address (sockaddr_in).
	RawSockaddrInet4 = unix.RawSockaddrInet4

	// RawSockaddrInet6 is the native IPv6 socket address (sockaddr_in6).
	RawSockaddrInet6 = unix.RawSockaddrInet6

	// RawSockaddrAny is storage large enough for any socket address.
	RawSockaddrAny = unix.RawSockaddrAny

	// Sockaddr is the socket address accepted by unix.Bind and friends.
	Sockaddr = unix.Sockaddr

	// SockaddrInet4 is the IPv4 [Sockaddr].
	SockaddrInet4 = unix.SockaddrInet4

	// SockaddrInet6 is the IPv6 [Sockaddr].
	SockaddrInet6 = unix.SockaddrInet6
)

const (
	// FamilyInet4 is the IPv4 address family (AF_INET).
	FamilyInet4 = unix.AF_INET

	// FamilyInet6 is the IPv6 address family (AF_INET6).
	FamilyInet6 = unix.AF_INET6
)
