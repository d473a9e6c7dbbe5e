// Package completion provides the completion command.
package completion

import (
	"github.com/spf13/cobra"

	"github.com/psuedomagi/fedcal/internal/cmd/completion"
)

// NewCommand creates the completion command.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion <shell>",
		Short: "Generate a shell completion script",
		Long: `Completion prints a completion script for bash, zsh, fish or powershell.

Load it in the current shell, or save it where your shell looks for
completions.`,
		Example: `  source <(fedcal completion bash)
  fedcal completion zsh > "${fpath[1]}/_fedcal"
  fedcal completion fish > ~/.config/fish/completions/fedcal.fish`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: completion.Shells(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return completion.Generate(cmd.Root(), args[0], cmd.OutOrStdout())
		},
	}
}
