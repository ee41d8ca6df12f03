// SPDX-License-Identifier: GPL-3.0-or-later

package netaddr_test

import (
	"context"
	"errors"
	"fmt"
	"net"
	"slices"
	"testing"

	"github.com/rbmk-project/sockaddr/netaddr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// forbiddenLookup returns a [netaddr.HostLookup] failing the test when invoked.
func forbiddenLookup(t *testing.T) netaddr.HostLookup {
	return netaddr.HostLookupFunc(func(ctx context.Context, host string, port uint16) ([]net.Addr, error) {
		t.Fatalf("unexpected lookup for %s", host)
		return nil, nil
	})
}

// staticLookup returns a [netaddr.HostLookup] returning the given addrs.
func staticLookup(t *testing.T, wantHost string, addrs ...net.Addr) netaddr.HostLookup {
	return netaddr.HostLookupFunc(func(ctx context.Context, host string, port uint16) ([]net.Addr, error) {
		assert.Equal(t, wantHost, host)
		return addrs, nil
	})
}

func sa4(a, b, c, d uint8, port uint16) netaddr.SocketAddr {
	return netaddr.SocketAddrFromV4(netaddr.SocketAddrV4From(netaddr.IPv4AddrFrom(a, b, c, d), port))
}

func sa6(ip netaddr.IPv6Addr, port uint16) netaddr.SocketAddr {
	return netaddr.SocketAddrFromV6(netaddr.SocketAddrV6From(ip, port, 0, 0))
}

func TestToSocketAddrsLiterals(t *testing.T) {
	v6 := netaddr.SocketAddrV6From(ip6(1), 53, 10, 20)

	tests := []struct {
		name   string
		target netaddr.ToSocketAddrs
		want   []netaddr.SocketAddr
	}{
		{
			name:   "SocketAddr",
			target: sa4(127, 0, 0, 1, 443),
			want:   []netaddr.SocketAddr{sa4(127, 0, 0, 1, 443)},
		},
		{
			name:   "SocketAddrV4",
			target: netaddr.SocketAddrV4From(ip4(11), 80),
			want:   []netaddr.SocketAddr{sa4(77, 88, 21, 11, 80)},
		},
		{
			name:   "SocketAddrV6 keeps flow info and scope ID",
			target: v6,
			want:   []netaddr.SocketAddr{netaddr.SocketAddrFromV6(v6)},
		},
		{
			name:   "IPPort with IPv4",
			target: netaddr.IPPort{IP: netaddr.IPAddrFromV4(ip4(11)), Port: 12345},
			want:   []netaddr.SocketAddr{sa4(77, 88, 21, 11, 12345)},
		},
		{
			name:   "IPPort with IPv6",
			target: netaddr.IPPort{IP: netaddr.IPAddrFromV6(ip6(1)), Port: 53},
			want:   []netaddr.SocketAddr{sa6(ip6(1), 53)},
		},
		{
			name:   "IPv4Port",
			target: netaddr.IPv4Port{IP: ip4(11), Port: 12345},
			want:   []netaddr.SocketAddr{sa4(77, 88, 21, 11, 12345)},
		},
		{
			name:   "IPv6Port",
			target: netaddr.IPv6Port{IP: ip6(1), Port: 53},
			want:   []netaddr.SocketAddr{sa6(ip6(1), 53)},
		},
		{
			name:   "HostPort with IPv4 literal",
			target: netaddr.HostPort{Host: "127.0.0.1", Port: 8080},
			want:   []netaddr.SocketAddr{sa4(127, 0, 0, 1, 8080)},
		},
		{
			name:   "HostPort with IPv6 literal",
			target: netaddr.HostPort{Host: "2a02:6b8:0:1::1", Port: 53},
			want:   []netaddr.SocketAddr{sa6(ip6(1), 53)},
		},
		{
			name:   "Endpoint with IPv4 socket address",
			target: netaddr.Endpoint("77.88.21.11:24352"),
			want:   []netaddr.SocketAddr{sa4(77, 88, 21, 11, 24352)},
		},
		{
			name:   "Endpoint with IPv6 socket address",
			target: netaddr.Endpoint("[2a02:6b8:0:1::1]:53"),
			want:   []netaddr.SocketAddr{sa6(ip6(1), 53)},
		},
		{
			name:   "Endpoint built at runtime",
			target: netaddr.Endpoint(fmt.Sprintf("%s:%s", "77.88.21.11", "24352")),
			want:   []netaddr.SocketAddr{sa4(77, 88, 21, 11, 24352)},
		},
		{
			name: "SocketAddrs",
			target: netaddr.SocketAddrs{
				sa4(0, 0, 0, 0, 80),
				sa6(ip6(7), 53),
				sa4(127, 0, 0, 1, 443),
			},
			want: []netaddr.SocketAddr{
				sa4(0, 0, 0, 0, 80),
				sa6(ip6(7), 53),
				sa4(127, 0, 0, 1, 443),
			},
		},
		{
			name:   "empty SocketAddrs",
			target: netaddr.SocketAddrs{},
			want:   []netaddr.SocketAddr{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := tt.target.ToSocketAddrs(context.Background(), forbiddenLookup(t))
			require.NoError(t, err)
			got := slices.AppendSeq([]netaddr.SocketAddr{}, seq)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToSocketAddrsIndirection(t *testing.T) {
	sa := sa4(127, 0, 0, 1, 443)
	hp := &netaddr.HostPort{Host: "127.0.0.1", Port: 443}
	ep := netaddr.Endpoint("127.0.0.1:443")

	for _, target := range []netaddr.ToSocketAddrs{&sa, hp, &ep} {
		got, err := netaddr.Resolve(context.Background(), forbiddenLookup(t), target)
		require.NoError(t, err)
		assert.Equal(t, []netaddr.SocketAddr{sa}, got)
	}
}

func TestToSocketAddrsSliceIsCopied(t *testing.T) {
	addrs := netaddr.SocketAddrs{sa4(10, 0, 0, 1, 1), sa4(10, 0, 0, 2, 2)}
	seq, err := addrs.ToSocketAddrs(context.Background(), forbiddenLookup(t))
	require.NoError(t, err)
	addrs[0] = sa4(10, 0, 0, 3, 3)
	assert.Equal(t, []netaddr.SocketAddr{sa4(10, 0, 0, 1, 1), sa4(10, 0, 0, 2, 2)},
		slices.Collect(seq))
}

func TestToSocketAddrsHostNames(t *testing.T) {
	t.Run("port is forced on every record", func(t *testing.T) {
		lookup := staticLookup(t, "localhost",
			&net.TCPAddr{IP: net.ParseIP("127.0.0.1"), Port: 9999})
		got, err := netaddr.Resolve(context.Background(), lookup,
			netaddr.HostPort{Host: "localhost", Port: 23924})
		require.NoError(t, err)
		assert.Equal(t, []netaddr.SocketAddr{sa4(127, 0, 0, 1, 23924)}, got)
	})

	t.Run("order is preserved and non-IP records are dropped", func(t *testing.T) {
		lookup := staticLookup(t, "example.com",
			&net.IPAddr{IP: net.ParseIP("2001:db8::1")},
			&net.UnixAddr{Name: "/run/example.sock", Net: "unix"},
			&net.UDPAddr{IP: net.ParseIP("192.0.2.1"), Port: 1},
			nil,
			&net.TCPAddr{IP: net.ParseIP("192.0.2.2")},
		)
		got, err := netaddr.Resolve(context.Background(), lookup,
			netaddr.Endpoint("example.com:443"))
		require.NoError(t, err)
		assert.Equal(t, []netaddr.SocketAddr{
			sa6(netaddr.MustParseIPv6Addr("2001:db8::1"), 443),
			sa4(192, 0, 2, 1, 443),
			sa4(192, 0, 2, 2, 443),
		}, got)
	})

	t.Run("the lookup receives the requested port", func(t *testing.T) {
		var gotPort uint16
		lookup := netaddr.HostLookupFunc(func(ctx context.Context, host string, port uint16) ([]net.Addr, error) {
			gotPort = port
			return nil, nil
		})
		got, err := netaddr.Resolve(context.Background(), lookup, netaddr.Endpoint("localhost:23924"))
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.Equal(t, uint16(23924), gotPort)
	})

	t.Run("lookup error", func(t *testing.T) {
		expectedErr := errors.New("mocked lookup error")
		lookup := netaddr.HostLookupFunc(func(ctx context.Context, host string, port uint16) ([]net.Addr, error) {
			return nil, expectedErr
		})
		_, err := netaddr.Resolve(context.Background(), lookup, netaddr.HostPort{Host: "foo", Port: 443})
		assert.ErrorIs(t, err, expectedErr)
		var lookupErr *netaddr.LookupError
		require.ErrorAs(t, err, &lookupErr)
		assert.Equal(t, "foo", lookupErr.Host)
		assert.Equal(t, "lookup foo: mocked lookup error", err.Error())
	})
}

func TestToSocketAddrsInvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		message  string
	}{
		{"missing port", "127.0.0.1", "invalid input: invalid socket address"},
		{"missing port for host name", "localhost", "invalid input: invalid socket address"},
		{"unbracketed IPv6 with port", "2a02:6b8:0:1::1:53", "invalid input: invalid socket address"},
		{"malformed IPv6", "1200::AB00:1234::2552:7777:1313:34300", "invalid input: invalid socket address"},
		{"empty host", ":80", "invalid input: invalid socket address"},
		{"bracketed IPv4", "[1.2.3.4]:80", "invalid input: invalid socket address"},
		{"bracketed host name", "[localhost]:80", "invalid input: invalid socket address"},
		{"bracketed IPv6 with bad port", "[::1]:65536", "invalid input: invalid port value"},
		{"empty string", "", "invalid input: invalid socket address"},
		{"non-numeric port", "localhost:http", "invalid input: invalid port value"},
		{"port out of range", "localhost:65536", "invalid input: invalid port value"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := netaddr.Resolve(context.Background(), forbiddenLookup(t), netaddr.Endpoint(tt.endpoint))
			assert.ErrorIs(t, err, netaddr.ErrInvalidInput)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}
