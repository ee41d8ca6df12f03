//go:build darwin || dragonfly || freebsd || netbsd || openbsd

// SPDX-License-Identifier: GPL-3.0-or-later

//
// BSD layouts starting with a length byte and an 8-bit address family.
//

package rawaddr

import "unsafe"

func setFamily4(raw *RawSockaddrInet4) {
	raw.Len = uint8(unsafe.Sizeof(*raw))
	raw.Family = FamilyInet4
}

func setFamily6(raw *RawSockaddrInet6) {
	raw.Len = uint8(unsafe.Sizeof(*raw))
	raw.Family = FamilyInet6
}

func family4(raw *RawSockaddrInet4) uint16 {
	return uint16(raw.Family)
}

func family6(raw *RawSockaddrInet6) uint16 {
	return uint16(raw.Family)
}

func familyAny(raw *RawSockaddrAny) uint16 {
	return uint16(raw.Addr.Family)
}
