// Package constants provides shared constants used throughout fedcal.
package constants

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Source table file names, relative to the embedded data root or a
// configured data path.
const (
	// CRTableFile holds continuing resolution intervals.
	CRTableFile = "continuing_resolutions.yaml"

	// GapTableFile holds appropriations gap and shutdown intervals.
	GapTableFile = "appropriations_gaps.yaml"
)

// Date layouts accepted on input and used on output.
const (
	// DateLayout is the canonical calendar date layout.
	DateLayout = "2006-01-02"

	// USDateLayout is the month/day/year layout accepted on input.
	USDateLayout = "01/02/2006"
)

// CLI defaults.
const (
	// ConfigName is the config file base name searched in $HOME and the working directory.
	ConfigName = ".fedcal"

	// EnvPrefix prefixes environment variables read by the CLI.
	EnvPrefix = "FEDCAL"
)
