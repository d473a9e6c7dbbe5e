// Package fedcal resolves the historical appropriations status of U.S.
// executive departments: whether each was fully funded, under a
// continuing resolution, in a funding gap or shut down on a given day.
//
// Status data comes from static tables of continuing resolutions and
// appropriations gaps, compiled into the binary by default. A client
// indexes them in an interval tree built once, on first use, and shared
// read-only by every query afterwards.
//
// Example usage:
//
//	cal, err := fedcal.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	statuses, err := cal.Resolve("2013-10-01")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(statuses.AnyShutdown()) // true
//
//	// Restrict to some departments and a range of interest
//	cal, err = fedcal.New(fedcal.WithRange("2018-01-01", "2019-12-31"))
//	statuses, err = cal.Resolve(time.Now(), depts.DOD, depts.DHS)
package fedcal

import (
	"github.com/psuedomagi/fedcal/pkg/dates"
	"github.com/psuedomagi/fedcal/pkg/depts"
	"github.com/psuedomagi/fedcal/pkg/errors"
	"github.com/psuedomagi/fedcal/pkg/intervals"
	"github.com/psuedomagi/fedcal/pkg/resolver"
	"github.com/psuedomagi/fedcal/pkg/status"
	"github.com/psuedomagi/fedcal/pkg/statustree"
)

// Compile-time interface checks to ensure proper implementation.
var (
	_ Resolver  = (*client)(nil)
	_ Inspector = (*client)(nil)
	_ Client    = (*client)(nil)
)

// Resolver answers status questions for dates. Dates may be given as any
// value dates.Normalize accepts.
type Resolver interface {
	// Resolve returns each department's status on date, limited to
	// filter when given.
	Resolve(date any, filter ...depts.Department) (status.Statuses, error)

	// DepartmentsActiveOn returns the departments that existed on date.
	DepartmentsActiveOn(date any) (depts.Set, error)

	// Timeline returns the status changes between two dates inclusive.
	Timeline(start, end any, filter ...depts.Department) ([]resolver.Snapshot, error)
}

// Inspector exposes the built status tree.
type Inspector interface {
	// Intervals lists stored records from source overlapping bounds.
	Intervals(source resolver.Source, bounds *dates.Range) ([]intervals.Record, error)

	// Tree returns the unified status tree, building it if needed.
	Tree() (*statustree.Tree, error)

	// Built reports whether the tree has been built.
	Built() bool
}

// Client resolves appropriations statuses over one lazily built tree.
type Client interface {
	Resolver
	Inspector
}

// client is the internal implementation of the Client interface.
type client struct {
	options  *options
	handle   *statustree.Handle
	resolver *resolver.Resolver
}

// New creates a client. The tree is built on the first query unless
// WithEagerBuild is set.
func New(opts ...Option) (Client, error) {
	options, err := defaults().apply(opts...)
	if err != nil {
		return nil, errors.WrapResource("create", "client", "", err)
	}

	handle := statustree.NewHandle(options.loader(), options.bounds, statustree.WithHandleLogger(options.logger))
	c := &client{
		options:  options,
		handle:   handle,
		resolver: resolver.New(handle),
	}

	log := options.logger
	log.Debug().
		Bool("eager", options.eagerBuild).
		Str("data_path", options.dataPath).
		Bool("custom_tables", options.tables != nil).
		Msg("Created fedcal client")

	if options.eagerBuild {
		tree, err := handle.Tree()
		if err != nil {
			return nil, err
		}
		log.Debug().Int("records", tree.All().Len()).Msg("Status tree ready")
	}

	return c, nil
}

// Resolve implements Resolver.
func (c *client) Resolve(date any, filter ...depts.Department) (status.Statuses, error) {
	return c.resolver.Resolve(date, filter...)
}

// DepartmentsActiveOn implements Resolver.
func (c *client) DepartmentsActiveOn(date any) (depts.Set, error) {
	return c.resolver.DepartmentsActiveOn(date)
}

// Timeline implements Resolver.
func (c *client) Timeline(start, end any, filter ...depts.Department) ([]resolver.Snapshot, error) {
	return c.resolver.Timeline(start, end, filter...)
}

// Intervals implements Inspector.
func (c *client) Intervals(source resolver.Source, bounds *dates.Range) ([]intervals.Record, error) {
	return c.resolver.Intervals(source, bounds)
}

// Tree implements Inspector.
func (c *client) Tree() (*statustree.Tree, error) {
	return c.handle.Tree()
}

// Built implements Inspector.
func (c *client) Built() bool {
	return c.handle.Built()
}
