// SPDX-License-Identifier: GPL-3.0-or-later

package netaddr

// MulticastScope is the scope of an IPv6 multicast address as
// defined by RFC 4291 and RFC 7346.
type MulticastScope uint8

// The values are the scope nibble of the address.
const (
	MulticastScopeReserved0         = MulticastScope(0x0)
	MulticastScopeInterfaceLocal    = MulticastScope(0x1)
	MulticastScopeLinkLocal         = MulticastScope(0x2)
	MulticastScopeRealmLocal        = MulticastScope(0x3)
	MulticastScopeAdminLocal        = MulticastScope(0x4)
	MulticastScopeSiteLocal         = MulticastScope(0x5)
	MulticastScopeOrganizationLocal = MulticastScope(0x8)
	MulticastScopeGlobal            = MulticastScope(0xe)
	MulticastScopeReservedF         = MulticastScope(0xf)
)

// MulticastScope returns the multicast scope of ip. The boolean
// is false when ip is not a multicast address.
//
// Scopes that RFC 7346 leaves unassigned are returned as their raw
// nibble value, for which [MulticastScope.IsUnassigned] returns true.
func (ip IPv6Addr) MulticastScope() (MulticastScope, bool) {
	if !ip.IsMulticast() {
		return 0, false
	}
	return MulticastScope(ip[1] & 0x0f), true
}

// IsReserved reports whether the scope value is reserved.
func (s MulticastScope) IsReserved() bool {
	return s == MulticastScopeReserved0 || s == MulticastScopeReservedF
}

// IsUnassigned reports whether the scope value is unassigned.
func (s MulticastScope) IsUnassigned() bool {
	switch s {
	case 0x6, 0x7, 0x9, 0xa, 0xb, 0xc, 0xd:
		return true
	default:
		return false
	}
}

// String returns the scope name.
func (s MulticastScope) String() string {
	switch s {
	case MulticastScopeInterfaceLocal:
		return "interface-local"
	case MulticastScopeLinkLocal:
		return "link-local"
	case MulticastScopeRealmLocal:
		return "realm-local"
	case MulticastScopeAdminLocal:
		return "admin-local"
	case MulticastScopeSiteLocal:
		return "site-local"
	case MulticastScopeOrganizationLocal:
		return "organization-local"
	case MulticastScopeGlobal:
		return "global"
	case MulticastScopeReserved0, MulticastScopeReservedF:
		return "reserved"
	default:
		return "unassigned"
	}
}
