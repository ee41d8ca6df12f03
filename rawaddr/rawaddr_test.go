//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || windows

// SPDX-License-Identifier: GPL-3.0-or-later

package rawaddr

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/rbmk-project/sockaddr/netaddr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bytesOf returns the memory backing raw.
func bytesOf[T any](raw *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(raw)), unsafe.Sizeof(*raw))
}

func TestFromSocketAddrV4(t *testing.T) {
	sa := netaddr.SocketAddrV4From(netaddr.IPv4AddrFrom(192, 0, 2, 1), 0x1f90)
	raw := FromSocketAddrV4(sa)

	assert.Equal(t, uint16(FamilyInet4), family4(&raw))
	data := bytesOf(&raw)
	assert.Equal(t, []byte{0x1f, 0x90}, data[2:4], "port must use network byte order")
	assert.Equal(t, []byte{192, 0, 2, 1}, data[4:8])
	assert.Equal(t, make([]byte, 8), data[8:16], "padding must be zero")

	assert.Equal(t, sa, ToSocketAddrV4(&raw))
}

func TestFromSocketAddrV6(t *testing.T) {
	ip := netaddr.IPv6AddrFrom(0x2a02, 0x6b8, 0, 1, 0, 0, 0, 1)
	sa := netaddr.SocketAddrV6From(ip, 53, 0xdeadbeef, 0x11223344)
	raw := FromSocketAddrV6(sa)

	assert.Equal(t, uint16(FamilyInet6), family6(&raw))
	data := bytesOf(&raw)
	assert.Equal(t, []byte{0, 53}, data[2:4], "port must use network byte order")
	assert.Equal(t, uint32(0xdeadbeef), binary.NativeEndian.Uint32(data[4:8]))
	assert.Equal(t, ip.Octets(), [16]byte(data[8:24]))
	assert.Equal(t, uint32(0x11223344), binary.NativeEndian.Uint32(data[24:28]))

	assert.Equal(t, sa, ToSocketAddrV6(&raw))
}

func TestFromSocketAddrRoundTrip(t *testing.T) {
	addrs := []netaddr.SocketAddr{
		{},
		netaddr.MustParseSocketAddr("127.0.0.1:8080"),
		netaddr.MustParseSocketAddr("255.255.255.255:65535"),
		netaddr.MustParseSocketAddr("[::1]:443"),
		netaddr.SocketAddrFromV6(netaddr.SocketAddrV6From(
			netaddr.MustParseIPv6Addr("fe80::1"), 1, 0xfffff, 3)),
		netaddr.SocketAddrFromV6(netaddr.SocketAddrV6From(
			netaddr.IPv6Unspecified, 0, 0xffffffff, 0xffffffff)),
	}
	for _, sa := range addrs {
		t.Run(sa.String(), func(t *testing.T) {
			raw, size := FromSocketAddr(sa)
			if sa.Is4() {
				assert.Equal(t, uint32(unsafe.Sizeof(RawSockaddrInet4{})), size)
				assert.Equal(t, uint16(FamilyInet4), familyAny(raw))
			} else {
				assert.Equal(t, uint32(unsafe.Sizeof(RawSockaddrInet6{})), size)
				assert.Equal(t, uint16(FamilyInet6), familyAny(raw))
			}
			data := bytesOf(raw)
			assert.Equal(t, make([]byte, len(data)-int(size)), data[size:],
				"storage past the address must be zero")
			assert.Equal(t, sa, ToSocketAddr(raw))
		})
	}
}

func TestToSocketAddrUnsupportedFamily(t *testing.T) {
	assert.Panics(t, func() {
		ToSocketAddr(&RawSockaddrAny{})
	})
	assert.Panics(t, func() {
		ToSocketAddrV4(&RawSockaddrInet4{})
	})
	assert.Panics(t, func() {
		raw := FromSocketAddrV6(netaddr.SocketAddrV6From(netaddr.IPv6Localhost, 80, 0, 0))
		ToSocketAddrV4((*RawSockaddrInet4)(unsafe.Pointer(&raw)))
	})
}

func TestInAddr(t *testing.T) {
	ip := netaddr.IPv4AddrFrom(10, 1, 2, 3)
	sAddr := InAddr(ip)
	var buf [4]byte
	binary.NativeEndian.PutUint32(buf[:], sAddr)
	assert.Equal(t, [4]byte{10, 1, 2, 3}, buf, "s_addr must be in network byte order in memory")
	assert.Equal(t, ip, IPv4AddrFromInAddr(sAddr))

	ip6 := netaddr.MustParseIPv6Addr("2001:db8::1")
	assert.Equal(t, ip6.Octets(), In6Addr(ip6))
}

func TestSockaddr(t *testing.T) {
	t.Run("IPv4", func(t *testing.T) {
		sa := netaddr.MustParseSocketAddr("192.0.2.1:53")
		native := ToSockaddr(sa)
		inet4, ok := native.(*SockaddrInet4)
		require.True(t, ok)
		assert.Equal(t, 53, inet4.Port)
		assert.Equal(t, [4]byte{192, 0, 2, 1}, inet4.Addr)

		got, ok := FromSockaddr(native)
		assert.True(t, ok)
		assert.Equal(t, sa, got)
	})

	t.Run("IPv6 keeps the scope ID", func(t *testing.T) {
		sa := netaddr.SocketAddrFromV6(netaddr.SocketAddrV6From(
			netaddr.MustParseIPv6Addr("fe80::1"), 443, 0, 2))
		native := ToSockaddr(sa)
		inet6, ok := native.(*SockaddrInet6)
		require.True(t, ok)
		assert.Equal(t, uint32(2), inet6.ZoneId)

		got, ok := FromSockaddr(native)
		assert.True(t, ok)
		assert.Equal(t, sa, got)
	})

	t.Run("invalid inputs", func(t *testing.T) {
		_, ok := FromSockaddr(&SockaddrInet4{Port: 65536})
		assert.False(t, ok)
		_, ok = FromSockaddr((*SockaddrInet6)(nil))
		assert.False(t, ok)
		_, ok = FromSockaddr(nil)
		assert.False(t, ok)
	})
}
