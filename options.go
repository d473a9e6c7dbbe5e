package fedcal

import (
	"github.com/rs/zerolog"

	"github.com/psuedomagi/fedcal/pkg/dates"
	"github.com/psuedomagi/fedcal/pkg/errors"
	"github.com/psuedomagi/fedcal/pkg/logging"
	"github.com/psuedomagi/fedcal/pkg/tables"
)

// options configures a client.
type options struct {
	tables     *tables.Tables
	dataPath   string
	bounds     *dates.Range
	logger     *zerolog.Logger
	eagerBuild bool
}

func defaults() *options {
	return &options{
		logger: logging.Default(),
	}
}

// Option is a function that configures a client.
type Option func(*options) error

func (o *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	if o.tables != nil && o.dataPath != "" {
		return nil, &errors.ValidationError{
			Field:   "tables",
			Message: "WithTables and WithDataPath are mutually exclusive",
		}
	}
	return o, nil
}

// loader returns the table source the options select: explicit tables,
// a directory on disk, or the embedded data.
func (o *options) loader() func() (tables.Tables, error) {
	switch {
	case o.tables != nil:
		t := *o.tables
		return func() (tables.Tables, error) { return t, nil }
	case o.dataPath != "":
		path := o.dataPath
		return func() (tables.Tables, error) { return tables.LoadFromPath(path) }
	default:
		return tables.Load
	}
}

// WithTables builds from the given tables instead of the embedded data.
func WithTables(t tables.Tables) Option {
	return func(o *options) error {
		o.tables = &t
		return nil
	}
}

// WithDataPath builds from continuing_resolutions.yaml and
// appropriations_gaps.yaml in dir instead of the embedded data.
func WithDataPath(dir string) Option {
	return func(o *options) error {
		if dir == "" {
			return &errors.ValidationError{
				Field:   "dataPath",
				Message: "cannot be empty",
			}
		}
		o.dataPath = dir
		return nil
	}
}

// WithRange builds the tree from entries overlapping the inclusive range
// from start to end. Queries outside it are rejected.
func WithRange(start, end any) Option {
	return func(o *options) error {
		r, err := dates.NewRange(start, end)
		if err != nil {
			return err
		}
		o.bounds = &r
		return nil
	}
}

// WithLogger sets the logger for client lifecycle events and for the
// tree build behind the client.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) error {
		o.logger = &logger
		return nil
	}
}

// WithEagerBuild builds the tree in New rather than on first query, so
// bad source data surfaces as an error from New.
func WithEagerBuild(enabled bool) Option {
	return func(o *options) error {
		o.eagerBuild = enabled
		return nil
	}
}
