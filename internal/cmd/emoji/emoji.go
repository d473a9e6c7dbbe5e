// Package emoji provides symbol constants for CLI output.
// These symbols give status tables a consistent visual language.
package emoji

import (
	"github.com/psuedomagi/fedcal/pkg/status"
)

// Symbol constants for CLI output.
const (
	// Success marks full-year appropriations.
	Success = "✓"

	// Warning marks operation under limits, such as a continuing resolution.
	Warning = "!"

	// Stop marks a shutdown.
	Stop = "✗"

	// Lapse marks an appropriations gap short of a shutdown.
	Lapse = "×"

	// Unknown marks statuses the data cannot pin down.
	Unknown = "?"
)

// ForKind returns the symbol shown beside a status kind.
func ForKind(k status.Kind) string {
	switch k {
	case status.Default:
		return Success
	case status.ContinuingResolution:
		return Warning
	case status.AppropriationsGap:
		return Lapse
	case status.Shutdown:
		return Stop
	default:
		return Unknown
	}
}
