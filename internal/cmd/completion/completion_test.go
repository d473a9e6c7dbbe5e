package completion

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psuedomagi/fedcal/pkg/errors"
)

func TestGenerate(t *testing.T) {
	root := &cobra.Command{Use: "fedcal"}
	root.AddCommand(&cobra.Command{Use: "status", Run: func(*cobra.Command, []string) {}})

	for _, shell := range Shells() {
		t.Run(shell, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Generate(root, shell, &buf))
			assert.Contains(t, buf.String(), "fedcal")
		})
	}
}

func TestGenerateUnknownShell(t *testing.T) {
	var buf bytes.Buffer
	err := Generate(&cobra.Command{Use: "fedcal"}, "tcsh", &buf)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidInput(err))
	assert.Empty(t, buf.String())
}
