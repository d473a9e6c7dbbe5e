// Package status defines the funding and operational status vocabulary
// and the per-department status maps returned by the resolver.
package status

import (
	"github.com/psuedomagi/fedcal/pkg/errors"
)

// Kind is the category of a status.
type Kind int

// Status kinds.
const (
	Default Kind = iota
	ContinuingResolution
	AppropriationsGap
	Shutdown
	CRDataCutoffDefault
)

// Funding describes how a department is funded.
type Funding string

// Funding states.
const (
	FullyAppropriated       Funding = "Fully Appropriated"
	TemporarilyAppropriated Funding = "Temporarily Appropriated"
	NoAppropriations        Funding = "No Appropriations"
	FundingDataIncomplete   Funding = "Data Incomplete: Fully or Temporarily Appropriated"
)

// Operational describes whether a department is operating.
type Operational string

// Operational states.
const (
	Open                      Operational = "Open"
	OpenWithLimitations       Operational = "Open With Limitations"
	MinimallyOpen             Operational = "Minimally Open"
	Closed                    Operational = "Shutdown"
	OperationalDataIncomplete Operational = "Data Incomplete: Open or Open with Limitations"
)

// Tuple pairs a funding status with an operational status.
type Tuple struct {
	Funding     Funding     `json:"funding" yaml:"funding"`
	Operational Operational `json:"operational" yaml:"operational"`
}

type kindInfo struct {
	key      string
	name     string
	tuple    Tuple
	readable string
}

var kinds = []kindInfo{
	Default: {
		key:      "DEFAULT_STATUS",
		name:     "DEFAULT",
		tuple:    Tuple{FullyAppropriated, Open},
		readable: "open, full year approps",
	},
	ContinuingResolution: {
		key:      "CR_STATUS",
		name:     "CONTINUING_RESOLUTION",
		tuple:    Tuple{TemporarilyAppropriated, OpenWithLimitations},
		readable: "open with limits, continuing resolution",
	},
	AppropriationsGap: {
		key:      "GAP_STATUS",
		name:     "APPROPRIATIONS_GAP",
		tuple:    Tuple{NoAppropriations, MinimallyOpen},
		readable: "minimally open, no approps",
	},
	Shutdown: {
		key:      "SHUTDOWN_STATUS",
		name:     "SHUTDOWN",
		tuple:    Tuple{NoAppropriations, Closed},
		readable: "closed, shutdown",
	},
	CRDataCutoffDefault: {
		key:      "CR_DATA_CUTOFF_DEFAULT_STATUS",
		name:     "CR_DATA_CUTOFF_DEFAULT",
		tuple:    Tuple{FundingDataIncomplete, OperationalDataIncomplete},
		readable: "unknown open, either CR or full approps",
	},
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	return []Kind{Default, ContinuingResolution, AppropriationsGap, Shutdown, CRDataCutoffDefault}
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k >= 0 && int(k) < len(kinds)
}

// String returns the kind name, e.g. CONTINUING_RESOLUTION.
func (k Kind) String() string {
	if !k.Valid() {
		return "UNKNOWN"
	}
	return kinds[k].name
}

// Key returns the lookup key, e.g. CR_STATUS.
func (k Kind) Key() string {
	if !k.Valid() {
		return ""
	}
	return kinds[k].key
}

// Tuple returns the status pair for the kind.
func (k Kind) Tuple() Tuple {
	if !k.Valid() {
		return Tuple{}
	}
	return kinds[k].tuple
}

// Readable returns a short human description of the kind.
func (k Kind) Readable() string {
	if !k.Valid() {
		return ""
	}
	return kinds[k].readable
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Lookup returns the kind for a key such as CR_STATUS. Kind names such
// as CONTINUING_RESOLUTION are accepted as well.
func Lookup(key string) (Kind, error) {
	for i, info := range kinds {
		if key == info.key || key == info.name {
			return Kind(i), nil
		}
	}
	return 0, errors.NewNotFoundError("status", key)
}

// KindOf returns the kind whose tuple equals t.
func KindOf(t Tuple) (Kind, bool) {
	for i, info := range kinds {
		if info.tuple == t {
			return Kind(i), true
		}
	}
	return 0, false
}

// Kind returns the kind of the tuple, or false for tuples that are not
// in the vocabulary.
func (t Tuple) Kind() (Kind, bool) {
	return KindOf(t)
}

// Readable returns the human description of the tuple's kind.
func (t Tuple) Readable() string {
	if k, ok := t.Kind(); ok {
		return k.Readable()
	}
	return string(t.Funding) + ", " + string(t.Operational)
}

// IsFunded reports whether the tuple carries appropriations of any kind.
// Cutoff statuses count as funded: the department was open either way.
func (t Tuple) IsFunded() bool {
	return t.Funding != NoAppropriations && t.Funding != ""
}

// String formats the tuple as "funding / operational".
func (t Tuple) String() string {
	return string(t.Funding) + " / " + string(t.Operational)
}
