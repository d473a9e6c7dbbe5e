// Package application provides the application interface for fedcal commands.
//
// The Application interface defines the contract between the application layer and
// command implementations, enabling dependency injection and testability.
//
// Usage in Commands:
//
//	func NewCommand(app application.Application) *cobra.Command {
//	    return &cobra.Command{
//	        RunE: func(cmd *cobra.Command, args []string) error {
//	            cal, err := app.Calendar()
//	            if err != nil {
//	                return err
//	            }
//	            // ... use cal
//	            return nil
//	        },
//	    }
//	}
//
// Testing with Mocks:
//
//	mock := &application.Mock{
//	    CalendarFunc: func() (fedcal.Client, error) {
//	        return fedcal.New(fedcal.WithTables(fixture))
//	    },
//	}
//	cmd := NewCommand(mock)
package application

import (
	"github.com/rs/zerolog"

	"github.com/psuedomagi/fedcal"
)

// Application provides the application interface that commands need.
// The App struct from cmd/fedcal/app implements this interface.
//
// Thread Safety: All methods must be safe for concurrent access.
type Application interface {
	// Calendar returns the fedcal client, creating it on first use.
	// The same client is returned on every call.
	Calendar() (fedcal.Client, error)

	// Logger returns the configured logger instance.
	// Commands should use this for all logging operations.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table, wide).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
