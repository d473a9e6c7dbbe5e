package tables

import (
	"github.com/psuedomagi/fedcal/internal/embedded"
	"github.com/psuedomagi/fedcal/pkg/constants"
	"github.com/psuedomagi/fedcal/pkg/errors"
	"github.com/psuedomagi/fedcal/pkg/logging"
)

// Load reads and validates the tables compiled into the binary.
func Load() (Tables, error) {
	return LoadFrom(&FSReader{FS: embedded.FS, Dir: embedded.Dir})
}

// LoadFromPath reads and validates tables from a directory holding
// continuing_resolutions.yaml and appropriations_gaps.yaml.
func LoadFromPath(dir string) (Tables, error) {
	return LoadFrom(&FilesystemReader{BasePath: dir})
}

// LoadFrom reads and validates both tables through reader.
func LoadFrom(reader FileReader) (Tables, error) {
	crData, err := reader.ReadFile(constants.CRTableFile)
	if err != nil {
		return Tables{}, errors.WrapIO("read", reader.Location(constants.CRTableFile), err)
	}
	cr, err := ParseCR(crData, reader.Location(constants.CRTableFile))
	if err != nil {
		return Tables{}, err
	}

	gapData, err := reader.ReadFile(constants.GapTableFile)
	if err != nil {
		return Tables{}, errors.WrapIO("read", reader.Location(constants.GapTableFile), err)
	}
	gaps, err := ParseGaps(gapData, reader.Location(constants.GapTableFile))
	if err != nil {
		return Tables{}, err
	}

	t := Tables{CR: cr, Gaps: gaps}
	if err := t.Validate(); err != nil {
		return Tables{}, err
	}

	logging.Debug().
		Int("continuing_resolutions", len(cr)).
		Int("appropriations_gaps", len(gaps)).
		Str("source", reader.Location("")).
		Msg("Loaded source tables")

	return t, nil
}
