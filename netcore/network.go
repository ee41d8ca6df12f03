//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Definition of Network.
//

package netcore

import (
	"context"
	"iter"
	"log/slog"
	"net"
	"slices"
	"time"

	"github.com/rbmk-project/sockaddr/netaddr"
)

// Network allows resolving and measuring socket addresses.
//
// The zero value is ready to use.
//
// A [*Network] is safe for concurrent use by multiple goroutines as long as
// you don't modify its fields after construction and the underlying fields you
// may set (e.g., LookupHostFunc) are also safe.
type Network struct {
	// Logger is the optional structured logger for emitting
	// structured diagnostic events. If this field is nil, we
	// will not be emitting structured logs.
	Logger *slog.Logger

	// LookupHostFunc is the optional function to resolve a domain
	// name to IP addresses. If this field is nil, we use the
	// [*net.Resolver] returned by NewResolverOrSingleton.
	//
	// Returned strings that are not IP addresses are ignored.
	LookupHostFunc func(ctx context.Context, domain string) ([]string, error)

	// TimeNow is an optional function that returns the current time.
	// If this field is nil, the [time.Now] function will be used.
	TimeNow func() time.Time

	// LookupHostTimeout is the optional timeout to use for limiting
	// the maximum time spent resolving a domain name.
	LookupHostTimeout time.Duration

	// NewResolverOrSingleton is the optional function that returns
	// the [*net.Resolver] to use when LookupHostFunc is not set. As the
	// name suggests, this function may either create a new [*net.Resolver]
	// for each call or just return a singleton instance. When this method
	// is not set, we use an internal zero-initialized, static [*net.Resolver].
	NewResolverOrSingleton func() *net.Resolver
}

// DefaultNetwork is the default [*Network] used by this package.
var DefaultNetwork = &Network{}

// NewNetwork constructs a new [*Network] with default settings.
func NewNetwork() *Network {
	return &Network{}
}

// Ensure [*Network] implements [netaddr.HostLookup].
var _ netaddr.HostLookup = &Network{}

// ResolveSocketAddrs converts target to socket addresses using
// this [*Network] to resolve host names.
func (nx *Network) ResolveSocketAddrs(
	ctx context.Context, target netaddr.ToSocketAddrs) (iter.Seq[netaddr.SocketAddr], error) {
	return target.ToSocketAddrs(ctx, nx)
}

// Resolve is like ResolveSocketAddrs but collects the results.
func (nx *Network) Resolve(ctx context.Context, target netaddr.ToSocketAddrs) ([]netaddr.SocketAddr, error) {
	seq, err := nx.ResolveSocketAddrs(ctx, target)
	if err != nil {
		return nil, err
	}
	return slices.Collect(seq), nil
}

// timeNow is a function that returns the current time.
func (nx *Network) timeNow() time.Time {
	if nx.TimeNow != nil {
		return nx.TimeNow()
	}
	return time.Now()
}

// defaultResolver is the [*net.Resolver] used when
// NewResolverOrSingleton is not set.
var defaultResolver = &net.Resolver{}

// newResolver returns the [*net.Resolver] to use.
func (nx *Network) newResolver() *net.Resolver {
	if nx.NewResolverOrSingleton != nil {
		return nx.NewResolverOrSingleton()
	}
	return defaultResolver
}
