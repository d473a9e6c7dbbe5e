package fedcal

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psuedomagi/fedcal/pkg/constants"
	"github.com/psuedomagi/fedcal/pkg/dates"
	"github.com/psuedomagi/fedcal/pkg/depts"
	"github.com/psuedomagi/fedcal/pkg/errors"
	"github.com/psuedomagi/fedcal/pkg/logging"
	"github.com/psuedomagi/fedcal/pkg/resolver"
	"github.com/psuedomagi/fedcal/pkg/status"
	"github.com/psuedomagi/fedcal/pkg/tables"
)

func smallTables() tables.Tables {
	return tables.Tables{
		CR:   tables.CRTable{{Start: 100, End: 130, Excluded: depts.NewSet(depts.DOC)}},
		Gaps: tables.GapTable{{Start: 200, End: 205, Departments: depts.NewSet(depts.VA), Shutdown: true}},
	}
}

func TestNewIsLazy(t *testing.T) {
	c, err := New(WithTables(smallTables()))
	require.NoError(t, err)
	assert.False(t, c.Built())

	got, err := c.Resolve(115, depts.DOJ)
	require.NoError(t, err)
	assert.Equal(t, status.ContinuingResolution.Tuple(), got[depts.DOJ])
	assert.True(t, c.Built())
}

func TestEagerBuild(t *testing.T) {
	capture := logging.NewTestLogger(t)

	c, err := New(WithTables(smallTables()), WithEagerBuild(true), WithLogger(*capture.Logger))
	require.NoError(t, err)
	assert.True(t, c.Built())
	capture.AssertContains(t, "Status tree ready")

	bad := smallTables()
	bad.Gaps = append(bad.Gaps, tables.GapEntry{Start: 110, End: 110, Departments: depts.NewSet(depts.DOJ)})
	_, err = New(WithTables(bad), WithEagerBuild(true))
	require.Error(t, err)
	assert.True(t, errors.IsDataIntegrity(err))
}

func TestOptionsValidation(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{"empty data path", []Option{WithDataPath("")}},
		{"inverted range", []Option{WithRange("2019-01-01", "2018-01-01")}},
		{"bad range bound", []Option{WithRange("someday", "2018-01-01")}},
		{"tables and path", []Option{WithTables(smallTables()), WithDataPath("/tmp")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opts...)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidInput(err))
		})
	}
}

func TestWithRange(t *testing.T) {
	c, err := New(WithRange("2018-12-01", "2019-02-28"))
	require.NoError(t, err)

	got, err := c.Resolve("2019-01-10", depts.DHS)
	require.NoError(t, err)
	assert.Equal(t, status.Shutdown.Tuple(), got[depts.DHS])

	_, err = c.Resolve("2013-10-01")
	assert.True(t, errors.IsInvalidInput(err))

	recs, err := c.Intervals(resolver.SourceAll, nil)
	require.NoError(t, err)
	require.NotEmpty(t, recs)
	for _, r := range recs {
		assert.Greater(t, r.End, dates.MustNormalize("2018-12-01"))
		assert.LessOrEqual(t, r.Start, dates.MustNormalize("2019-02-28"))
	}
}

func TestWithDataPath(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), constants.FilePermissions))
	}
	write(constants.CRTableFile, "- start: \"2020-10-01\"\n  end: \"2020-12-11\"\n  excluded: []\n")
	write(constants.GapTableFile, "[]\n")

	c, err := New(WithDataPath(dir))
	require.NoError(t, err)

	got, err := c.Resolve("2020-11-03")
	require.NoError(t, err)
	assert.True(t, got.AllCR())

	got, err = c.Resolve("2019-01-10", depts.DHS)
	require.NoError(t, err)
	assert.Equal(t, status.CRDataCutoffDefault.Tuple(), got[depts.DHS], "data starts in 2020")

	missing, err := New(WithDataPath(filepath.Join(dir, "nope")))
	require.NoError(t, err)
	_, err = missing.Resolve("2020-11-03")
	var ioErr *errors.IOError
	assert.ErrorAs(t, err, &ioErr)
}

func TestInspector(t *testing.T) {
	c, err := New(WithTables(smallTables()))
	require.NoError(t, err)

	tree, err := c.Tree()
	require.NoError(t, err)
	assert.Equal(t, 2, tree.All().Len())

	gaps, err := c.Intervals(resolver.SourceGap, nil)
	require.NoError(t, err)
	require.Len(t, gaps, 1)
	assert.Equal(t, status.Shutdown, gaps[0].Kind)

	timeline, err := c.Timeline(195, 210, depts.VA)
	require.NoError(t, err)
	assert.Len(t, timeline, 3)

	active, err := c.DepartmentsActiveOn("2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, depts.All(), active)
}

func TestClientsAreIsolated(t *testing.T) {
	a, err := New(WithTables(smallTables()))
	require.NoError(t, err)
	b, err := New()
	require.NoError(t, err)

	ta, err := a.Tree()
	require.NoError(t, err)
	tb, err := b.Tree()
	require.NoError(t, err)
	assert.NotSame(t, ta, tb)
}

func TestSharedConcurrentFirstUse(t *testing.T) {
	const callers = 8
	clients := make([]Client, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c, err := Shared()
			assert.NoError(t, err)
			clients[i] = c
		}()
	}
	wg.Wait()

	for _, c := range clients {
		assert.Same(t, clients[0], c)
	}

	got, err := Resolve("2013-10-01", depts.DOD)
	require.NoError(t, err)
	assert.Equal(t, status.Shutdown.Tuple(), got[depts.DOD])
}
