// Package completion generates shell completion scripts.
package completion

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/psuedomagi/fedcal/internal/cmd/constants"
	"github.com/psuedomagi/fedcal/pkg/errors"
)

// Shells lists the shells a script can be generated for.
func Shells() []string {
	return []string{constants.ShellBash, constants.ShellZsh, constants.ShellFish, constants.ShellPowerShell}
}

// Generate writes the completion script for shell, covering every command
// under root, to w.
func Generate(root *cobra.Command, shell string, w io.Writer) error {
	switch strings.ToLower(shell) {
	case constants.ShellBash:
		return root.GenBashCompletionV2(w, true)
	case constants.ShellZsh:
		return root.GenZshCompletion(w)
	case constants.ShellFish:
		return root.GenFishCompletion(w, true)
	case constants.ShellPowerShell:
		return root.GenPowerShellCompletionWithDesc(w)
	default:
		return errors.NewValidationError("shell", shell, "must be one of: "+strings.Join(Shells(), ", "))
	}
}
