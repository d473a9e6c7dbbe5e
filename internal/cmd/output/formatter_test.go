package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psuedomagi/fedcal/internal/cmd/table"
	"github.com/psuedomagi/fedcal/pkg/errors"
)

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"table", "JSON", "yaml", "wide", ""} {
		_, err := ParseFormat(s)
		assert.NoError(t, err, s)
	}

	_, err := ParseFormat("csv")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidInput(err))
}

func TestDetectFormatExplicit(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("YAML"))
	assert.True(t, FormatWide.IsTable())
	assert.False(t, FormatJSON.IsTable())
}

func TestTableFormatter(t *testing.T) {
	data := table.Data{
		Headers: []string{"department", "status"},
		Rows:    [][]string{{"DOD", "closed, shutdown"}},
	}

	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatTable).Format(&buf, data))
	out := buf.String()
	assert.Contains(t, strings.ToUpper(out), "DEPARTMENT")
	assert.Contains(t, out, "closed, shutdown")
}

func TestTableFormatterFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatTable).Format(&buf, map[string]int{"records": 3}))
	assert.JSONEq(t, `{"records": 3}`, buf.String())
}

func TestStructuredFormatters(t *testing.T) {
	payload := map[string]string{"DOD": "open"}

	var js bytes.Buffer
	require.NoError(t, NewFormatter(FormatJSON).Format(&js, payload))
	assert.JSONEq(t, `{"DOD":"open"}`, js.String())

	var ym bytes.Buffer
	require.NoError(t, NewFormatter(FormatYAML).Format(&ym, payload))
	assert.Equal(t, "DOD: open\n", ym.String())
}

func TestWrite(t *testing.T) {
	rows := func(wide bool) table.Data {
		headers := []string{"day"}
		if wide {
			headers = append(headers, "extra")
		}
		return table.Data{Headers: headers}
	}

	var wide bytes.Buffer
	require.NoError(t, Write(&wide, FormatWide, rows, nil))
	assert.Contains(t, strings.ToUpper(wide.String()), "EXTRA")

	var js bytes.Buffer
	require.NoError(t, Write(&js, FormatJSON, rows, []int{1, 2}))
	assert.JSONEq(t, `[1, 2]`, js.String())
}
