//go:build linux || solaris

// SPDX-License-Identifier: GPL-3.0-or-later

//
// Layouts starting with a 16-bit address family.
//

package rawaddr

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
