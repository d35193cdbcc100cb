package topology

import "context"

// SupplierFunc resolves the current set of mongos routers, typically from a
// service-discovery backend. Returning an empty list means "no routers
// currently known" and is not an error; errors are reserved for the
// discovery mechanism itself failing.
type SupplierFunc func(ctx context.Context) ([]Host, error)

// Provider yields the candidate hosts for a connection attempt.
//
// Implementations must return an empty list, not an error, when no servers
// are currently available.
type Provider interface {
	// Servers returns the candidate hosts in connection order.
	Servers(ctx context.Context) ([]Host, error)

	// Mode returns the deployment shape this provider serves.
	Mode() Mode
}

// staticProvider serves the fixed host list of single and replica-set
// topologies. It never errors and never returns an empty list.
type staticProvider struct {
	mode  Mode
	hosts []Host
}

func (p *staticProvider) Servers(context.Context) ([]Host, error) {
	return append([]Host(nil), p.hosts...), nil
}

func (p *staticProvider) Mode() Mode {
	return p.mode
}

// supplierProvider delegates to a caller-supplied resolver for sharded
// clusters.
type supplierProvider struct {
	supplier SupplierFunc
}

func (p *supplierProvider) Servers(ctx context.Context) ([]Host, error) {
	return p.supplier(ctx)
}

func (p *supplierProvider) Mode() Mode {
	return ModeSharded
}
