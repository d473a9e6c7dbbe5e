package timeline

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psuedomagi/fedcal"
	"github.com/psuedomagi/fedcal/cmd/application"
	"github.com/psuedomagi/fedcal/pkg/errors"
	"github.com/psuedomagi/fedcal/pkg/status"
)

func mockApp(t *testing.T, format string) *application.Mock {
	t.Helper()
	cal, err := fedcal.New()
	require.NoError(t, err)
	return &application.Mock{
		CalendarFunc:     func() (fedcal.Client, error) { return cal, nil },
		OutputFormatFunc: func() string { return format },
	}
}

func run(t *testing.T, app application.Application, args ...string) (string, error) {
	t.Helper()
	cmd := NewCommand(app)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestTimelineJSON(t *testing.T) {
	out, err := run(t, mockApp(t, "json"), "--from", "2013-09-25", "--to", "2013-10-20", "-d", "DOD")
	require.NoError(t, err)

	var snapshots []struct {
		Day      string                  `json:"day"`
		Through  string                  `json:"through"`
		Statuses map[string]status.Tuple `json:"statuses"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &snapshots))
	require.Len(t, snapshots, 3)

	assert.Equal(t, "2013-09-25", snapshots[0].Day)
	assert.Equal(t, "2013-09-30", snapshots[0].Through)
	assert.Equal(t, status.Default.Tuple(), snapshots[0].Statuses["DOD"])

	assert.Equal(t, "2013-10-01", snapshots[1].Day)
	assert.Equal(t, "2013-10-16", snapshots[1].Through)
	assert.Equal(t, status.Shutdown.Tuple(), snapshots[1].Statuses["DOD"])

	assert.Equal(t, "2013-10-17", snapshots[2].Day)
	assert.Equal(t, "2013-10-20", snapshots[2].Through)
	assert.Equal(t, status.ContinuingResolution.Tuple(), snapshots[2].Statuses["DOD"])
}

func TestTimelineTable(t *testing.T) {
	out, err := run(t, mockApp(t, "table"), "--from", "2013-09-25", "--to", "2013-10-20")
	require.NoError(t, err)
	assert.Contains(t, out, "2013-10-01")
	assert.Contains(t, out, "closed, shutdown")
	assert.Contains(t, out, "all")
}

func TestTimelineRequiresFrom(t *testing.T) {
	_, err := run(t, mockApp(t, "table"))
	require.Error(t, err)
	assert.True(t, errors.IsInvalidInput(err))

	_, err = run(t, mockApp(t, "table"), "--to", "2013-10-20")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidInput(err))
}

func TestTimelineReversedRange(t *testing.T) {
	_, err := run(t, mockApp(t, "table"), "--from", "2013-10-20", "--to", "2013-10-01")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidInput(err))
}
