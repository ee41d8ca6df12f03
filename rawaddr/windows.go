//go:build windows

// SPDX-License-Identifier: GPL-3.0-or-later

package rawaddr

import "golang.org/x/sys/windows"

type (
	// RawSockaddrInet4 is the native IPv4 socket address (SOCKADDR_IN).
	RawSockaddrInet4 = windows.RawSockaddrInet4

	// RawSockaddrInet6 is the native IPv6 socket address (SOCKADDR_IN6).
	RawSockaddrInet6 = windows.RawSockaddrInet6

	// RawSockaddrAny is storage large enough for any socket address.
	RawSockaddrAny = windows.RawSockaddrAny

	// Sockaddr is the socket address accepted by windows.Bind and friends.
	Sockaddr = windows.Sockaddr

	// SockaddrInet4 is the IPv4 [Sockaddr].
	SockaddrInet4 = windows.SockaddrInet4

	// SockaddrInet6 is the IPv6 [Sockaddr].
	SockaddrInet6 = windows.SockaddrInet6
)

const (
	// FamilyInet4 is the IPv4 address family (AF_INET).
	FamilyInet4 = windows.AF_INET

	// FamilyInet6 is the IPv6 address family (AF_INET6).
	FamilyInet6 = windows.AF_INET6
)

func setFamily4(raw *RawSockaddrInet4) {
	raw.Family = FamilyInet4
}

func setFamily6(raw *RawSockaddrInet6) {
	raw.Family = FamilyInet6
}

func family4(raw *RawSockaddrInet4) uint16 {
	return raw.Family
}

func family6(raw *RawSockaddrInet6) uint16 {
	return raw.Family
}

func familyAny(raw *RawSockaddrAny) uint16 {
	return raw.Addr.Family
}
