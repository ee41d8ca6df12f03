//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Host name lookups using a single DNS server.
//

package netcore

import (
	"context"

	"github.com/rbmk-project/dnscore"
)

// DNSLookup resolves host names by sending A and AAAA queries
// to a single DNS server using a [*dnscore.Resolver], which validates
// the responses and follows CNAME chains. The LookupHost method has the
// same signature as [Network.LookupHostFunc], so you can write:
//
//	nx := &netcore.Network{LookupHostFunc: (&netcore.DNSLookup{}).LookupHost}
//
// Failures wrap the dnscore errors (e.g., [dnscore.ErrNoName]).
//
// The zero value is ready to use.
type DNSLookup struct {
	// Transport is the optional [dnscore.ResolverTransport]. If nil,
	// we use [dnscore.DefaultTransport].
	Transport dnscore.ResolverTransport

	// Server is the optional server address. If nil, we use
	// [DefaultDNSServer].
	Server *dnscore.ServerAddr
}

// DefaultDNSServer is the server used when [DNSLookup] has no Server.
var DefaultDNSServer = dnscore.NewServerAddr(dnscore.ProtocolUDP, "8.8.8.8:53")

// LookupHost returns the IP addresses of the given domain.
func (dl *DNSLookup) LookupHost(ctx context.Context, domain string) ([]string, error) {
	return dl.newResolver().LookupHost(ctx, domain)
}

// newResolver configures a [*dnscore.Resolver] for a single server.
func (dl *DNSLookup) newResolver() *dnscore.Resolver {
	reso := dnscore.NewResolver()
	reso.Config = dnscore.NewConfig()
	reso.Config.AddServer(dl.server())
	reso.Transport = dl.transport()
	return reso
}

func (dl *DNSLookup) transport() dnscore.ResolverTransport {
	if dl.Transport != nil {
		return dl.Transport
	}
	return dnscore.DefaultTransport
}

func (dl *DNSLookup) server() *dnscore.ServerAddr {
	if dl.Server != nil {
		return dl.Server
	}
	return DefaultDNSServer
}
