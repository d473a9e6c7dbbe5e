package statustree

import (
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/psuedomagi/fedcal/pkg/dates"
	"github.com/psuedomagi/fedcal/pkg/errors"
	"github.com/psuedomagi/fedcal/pkg/logging"
	"github.com/psuedomagi/fedcal/pkg/tables"
)

// Loader supplies the source tables for a build.
type Loader func() (tables.Tables, error)

// Handle owns one lazily built unified tree. The first call to Tree loads
// the tables and builds; concurrent callers wait for that build and every
// caller afterwards receives the same tree, or the same error.
type Handle struct {
	load   Loader
	bounds *dates.Range
	logger *zerolog.Logger

	crBuilder  CRBuilder
	gapBuilder GapBuilder

	once  sync.Once
	built atomic.Bool
	tree  *Tree
	err   error
}

// HandleOption configures a Handle.
type HandleOption func(*Handle)

// WithHandleLogger sets the logger used by the build and by resolvers
// sharing the handle. The default logger is used otherwise.
func WithHandleLogger(logger *zerolog.Logger) HandleOption {
	return func(h *Handle) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// NewHandle returns a handle that builds from load, keeping only entries
// that overlap bounds when bounds is non-nil.
func NewHandle(load Loader, bounds *dates.Range, opts ...HandleOption) *Handle {
	if load == nil {
		load = tables.Load
	}
	h := &Handle{load: load, bounds: bounds, logger: logging.Default()}
	for _, opt := range opts {
		opt(h)
	}
	h.crBuilder.logger = h.logger
	h.gapBuilder.logger = h.logger
	return h
}

// Tree returns the unified tree, building it on first use.
func (h *Handle) Tree() (*Tree, error) {
	h.once.Do(func() {
		defer h.built.Store(true)

		t, err := h.load()
		if err != nil {
			h.err = errors.WrapResource("load", "source tables", "", err)
			return
		}
		h.tree, h.err = build(t, h.bounds, &h.crBuilder, &h.gapBuilder, h.logger)
		if h.err != nil {
			h.err = errors.WrapResource("build", "status tree", "", h.err)
		}
	})
	return h.tree, h.err
}

// Logger returns the handle's logger.
func (h *Handle) Logger() *zerolog.Logger {
	return h.logger
}

// Built reports whether the build has run, successfully or not.
func (h *Handle) Built() bool {
	return h.built.Load()
}

// CRBuilder returns the builder used for the CR sub-tree.
func (h *Handle) CRBuilder() *CRBuilder { return &h.crBuilder }

// GapBuilder returns the builder used for the gap sub-tree.
func (h *Handle) GapBuilder() *GapBuilder { return &h.gapBuilder }
