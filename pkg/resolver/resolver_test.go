package resolver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psuedomagi/fedcal/pkg/dates"
	"github.com/psuedomagi/fedcal/pkg/depts"
	"github.com/psuedomagi/fedcal/pkg/errors"
	"github.com/psuedomagi/fedcal/pkg/status"
	"github.com/psuedomagi/fedcal/pkg/statustree"
	"github.com/psuedomagi/fedcal/pkg/tables"
)

// fixture holds two adjacent CRs excluding DOC over days 100-130, an
// appropriations gap for DOC over days 110-112 and a VA shutdown over
// days 200-205. Continuing resolution data begins on day 100.
func fixture() tables.Tables {
	return tables.Tables{
		CR: tables.CRTable{
			{Start: 100, End: 104, Excluded: depts.NewSet(depts.DOC)},
			{Start: 105, End: 130, Excluded: depts.NewSet(depts.DOC)},
		},
		Gaps: tables.GapTable{
			{Start: 110, End: 112, Departments: depts.NewSet(depts.DOC)},
			{Start: 200, End: 205, Departments: depts.NewSet(depts.VA), Shutdown: true},
		},
	}
}

func newResolver(t *testing.T, tbl tables.Tables, bounds *dates.Range) *Resolver {
	t.Helper()
	return New(statustree.NewHandle(func() (tables.Tables, error) { return tbl, nil }, bounds))
}

func embeddedResolver() *Resolver {
	return New(statustree.NewHandle(tables.Load, nil))
}

func kindOf(t *testing.T, tuple status.Tuple) status.Kind {
	t.Helper()
	k, ok := tuple.Kind()
	require.True(t, ok, "unknown tuple %v", tuple)
	return k
}

func TestResolveScenarios(t *testing.T) {
	r := newResolver(t, fixture(), nil)

	tests := []struct {
		name string
		day  dates.Day
		dept depts.Department
		want status.Kind
	}{
		{"cr covers non excluded department", 115, depts.DOJ, status.ContinuingResolution},
		{"excluded department keeps full funding", 115, depts.DOC, status.Default},
		{"cr start is inclusive", 100, depts.DOJ, status.ContinuingResolution},
		{"cr end is inclusive", 130, depts.DOJ, status.ContinuingResolution},
		{"day after cr end", 131, depts.DOJ, status.Default},
		{"gap inside cr for excluded department", 111, depts.DOC, status.AppropriationsGap},
		{"shutdown start", 200, depts.VA, status.Shutdown},
		{"shutdown end is inclusive", 205, depts.VA, status.Shutdown},
		{"day after shutdown", 206, depts.VA, status.Default},
		{"before cr data", 99, depts.DOJ, status.CRDataCutoffDefault},
		{"far before cr data", -4000, depts.VA, status.CRDataCutoffDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(tt.day, tt.dept)
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, kindOf(t, got[tt.dept]))
		})
	}
}

func TestResolveUnion(t *testing.T) {
	r := newResolver(t, fixture(), nil)

	got, err := r.Resolve(111)
	require.NoError(t, err)

	assert.Len(t, got, 16, "DHS did not exist yet")
	assert.NotContains(t, got, depts.DHS)
	assert.Equal(t, status.AppropriationsGap.Tuple(), got[depts.DOC])
	assert.Equal(t, status.ContinuingResolution.Tuple(), got[depts.DOJ])
	assert.Equal(t, status.ContinuingResolution.Tuple(), got[depts.VA])
	assert.True(t, got.AnyCR())
	assert.True(t, got.AnyGap())
	assert.True(t, got.AnyUnfunded())
	assert.False(t, got.AllFunded())
}

func TestResolveFilterReduction(t *testing.T) {
	r := newResolver(t, fixture(), nil)

	got, err := r.Resolve(111, depts.DOJ, depts.VA, depts.DOJ)
	require.NoError(t, err)
	assert.Equal(t, depts.NewSet(depts.DOJ, depts.VA), got.Set())
	assert.True(t, got.AllCR())
}

func TestResolveRejects(t *testing.T) {
	r := newResolver(t, fixture(), nil)

	tests := []struct {
		name   string
		date   any
		filter []depts.Department
	}{
		{"unsupported date", 1.5, nil},
		{"unparseable date", "the ides of march", nil},
		{"department before it existed", 111, []depts.Department{depts.DOJ, depts.DHS}},
		{"unknown department", 111, []depts.Department{"NASA"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Resolve(tt.date, tt.filter...)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidInput(err))
		})
	}
}

func TestResolveOutsideBounds(t *testing.T) {
	r := newResolver(t, fixture(), &dates.Range{Start: 100, End: 150})

	got, err := r.Resolve(120, depts.DOJ)
	require.NoError(t, err)
	assert.Equal(t, status.ContinuingResolution.Tuple(), got[depts.DOJ])

	_, err = r.Resolve(200, depts.VA)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidInput(err))
}

func TestResolvePropagatesBuildErrors(t *testing.T) {
	tbl := fixture()
	tbl.Gaps = append(tbl.Gaps, tables.GapEntry{Start: 120, End: 121, Departments: depts.NewSet(depts.DOJ)})
	r := newResolver(t, tbl, nil)

	_, err := r.Resolve(50)
	require.Error(t, err)
	assert.True(t, errors.IsDataIntegrity(err), "a conflicting table never yields a default status")
}

func TestDepartmentsActiveOn(t *testing.T) {
	r := newResolver(t, fixture(), nil)

	before, err := r.DepartmentsActiveOn("2002-11-24")
	require.NoError(t, err)
	assert.False(t, before.Has(depts.DHS))
	assert.Equal(t, 16, before.Len())

	after, err := r.DepartmentsActiveOn(time.Date(2002, 11, 25, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, depts.All(), after)

	_, err = r.DepartmentsActiveOn(struct{}{})
	assert.True(t, errors.IsInvalidInput(err))
}

func TestResolveEmbeddedHistory(t *testing.T) {
	r := embeddedResolver()

	t.Run("2013 shutdown", func(t *testing.T) {
		got, err := r.Resolve("2013-10-05")
		require.NoError(t, err)
		assert.Len(t, got, 17)
		assert.True(t, got.AllUnfunded())
		assert.True(t, got.AnyShutdown())
	})

	t.Run("after the 2013 shutdown", func(t *testing.T) {
		got, err := r.Resolve("2013-10-17")
		require.NoError(t, err)
		assert.True(t, got.AllCR())
	})

	t.Run("2018 partial shutdown", func(t *testing.T) {
		got, err := r.Resolve(dates.YearMonthDay{Year: 2019, Month: time.January, Day: 1}, depts.DOD, depts.DHS)
		require.NoError(t, err)
		assert.Equal(t, status.Default.Tuple(), got[depts.DOD])
		assert.Equal(t, status.Shutdown.Tuple(), got[depts.DHS])
	})

	t.Run("before cr data", func(t *testing.T) {
		got, err := r.Resolve("1990-06-01")
		require.NoError(t, err)
		assert.Len(t, got, 16)
		for d, tuple := range got {
			assert.Equal(t, status.CRDataCutoffDefault.Tuple(), tuple, d)
		}
	})

	t.Run("dhs before formation", func(t *testing.T) {
		_, err := r.Resolve("2002-10-30", depts.DHS)
		assert.True(t, errors.IsInvalidInput(err))

		got, err := r.Resolve("2002-10-30")
		require.NoError(t, err)
		assert.NotContains(t, got, depts.DHS)
		assert.Equal(t, status.Default.Tuple(), got[depts.DOD])
		assert.Equal(t, status.ContinuingResolution.Tuple(), got[depts.DOJ])
	})
}

func TestIntervals(t *testing.T) {
	r := newResolver(t, fixture(), nil)

	all, err := r.Intervals(SourceAll, nil)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	cr, err := r.Intervals(SourceCR, nil)
	require.NoError(t, err)
	assert.Len(t, cr, 2)

	gaps, err := r.Intervals(SourceGap, nil)
	require.NoError(t, err)
	assert.Len(t, gaps, 2)

	bounded, err := r.Intervals(SourceAll, &dates.Range{Start: 105, End: 111})
	require.NoError(t, err)
	require.Len(t, bounded, 2)
	assert.Equal(t, dates.Day(105), bounded[0].Start)
	assert.Equal(t, dates.Day(110), bounded[1].Start)

	_, err = r.Intervals("bogus", nil)
	assert.True(t, errors.IsInvalidInput(err))
}

func TestParseSource(t *testing.T) {
	for input, want := range map[string]Source{"": SourceAll, "ALL": SourceAll, "cr": SourceCR, " Gap ": SourceGap} {
		got, err := ParseSource(input)
		require.NoError(t, err)
		assert.Equal(t, want, got, input)
	}
	_, err := ParseSource("shutdowns")
	assert.True(t, errors.IsInvalidInput(err))
}
