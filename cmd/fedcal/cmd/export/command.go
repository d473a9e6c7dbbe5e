// Package export provides the export command, which writes the embedded
// source tables to a directory for editing and later use with --data-path.
package export

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/psuedomagi/fedcal/cmd/application"
	"github.com/psuedomagi/fedcal/internal/embedded"
	"github.com/psuedomagi/fedcal/pkg/constants"
	"github.com/psuedomagi/fedcal/pkg/errors"
)

// NewCommand creates the export command.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "export <dir>",
		GroupID: "management",
		Short:   "Write the embedded source tables to a directory",
		Example: `  fedcal export ./data
  fedcal --data-path ./data status 2013-10-05`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			force, err := cmd.Flags().GetBool("force")
			if err != nil {
				panic("programming error: failed to get flag force: " + err.Error())
			}

			written, err := Tables(args[0], force)
			if err != nil {
				return err
			}

			for _, p := range written {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			app.Logger().Debug().Str("dir", args[0]).Int("files", len(written)).Msg("Exported source tables")
			return nil
		},
	}

	cmd.Flags().Bool("force", false, "overwrite existing files")

	return cmd
}

// Tables copies both embedded source tables into dir, creating it when
// needed, and returns the written paths. Existing files are kept unless
// force is set.
func Tables(dir string, force bool) ([]string, error) {
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return nil, errors.WrapIO("create", dir, err)
	}

	names := []string{constants.CRTableFile, constants.GapTableFile}
	if !force {
		for _, name := range names {
			target := filepath.Join(dir, name)
			if _, err := os.Stat(target); err == nil {
				return nil, errors.NewValidationError("dir", target, "file exists; use --force to overwrite")
			}
		}
	}

	var written []string
	for _, name := range names {
		target := filepath.Join(dir, name)

		data, err := fs.ReadFile(embedded.FS, path.Join(embedded.Dir, name))
		if err != nil {
			return written, errors.WrapIO("read", name, err)
		}

		if err := os.WriteFile(target, data, constants.FilePermissions); err != nil {
			return written, errors.WrapIO("write", target, err)
		}
		written = append(written, target)
	}
	return written, nil
}
