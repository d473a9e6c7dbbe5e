package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psuedomagi/fedcal/pkg/dates"
	"github.com/psuedomagi/fedcal/pkg/depts"
	"github.com/psuedomagi/fedcal/pkg/errors"
	"github.com/psuedomagi/fedcal/pkg/status"
)

func TestTimeline(t *testing.T) {
	r := newResolver(t, fixture(), nil)

	snapshots, err := r.Timeline(90, 210)
	require.NoError(t, err)

	want := []struct {
		day, through dates.Day
		doc, va      status.Kind
	}{
		{90, 99, status.CRDataCutoffDefault, status.CRDataCutoffDefault},
		{100, 109, status.Default, status.ContinuingResolution},
		{110, 112, status.AppropriationsGap, status.ContinuingResolution},
		{113, 130, status.Default, status.ContinuingResolution},
		{131, 199, status.Default, status.Default},
		{200, 205, status.Default, status.Shutdown},
		{206, 210, status.Default, status.Default},
	}

	require.Len(t, snapshots, len(want), "the CR boundary on day 105 changes nothing and collapses")
	for i, w := range want {
		s := snapshots[i]
		assert.Equal(t, w.day, s.Day, "snapshot %d", i)
		assert.Equal(t, w.through, s.Through, "snapshot %d", i)
		assert.Equal(t, w.doc.Tuple(), s.Statuses[depts.DOC], "snapshot %d", i)
		assert.Equal(t, w.va.Tuple(), s.Statuses[depts.VA], "snapshot %d", i)
	}
}

func TestTimelineFilter(t *testing.T) {
	r := newResolver(t, fixture(), nil)

	snapshots, err := r.Timeline(100, 130, depts.DOC)
	require.NoError(t, err)
	require.Len(t, snapshots, 3)
	for _, s := range snapshots {
		assert.Equal(t, []depts.Department{depts.DOC}, s.Statuses.Departments())
	}
	assert.Equal(t, dates.Day(110), snapshots[1].Day)
}

func TestTimelineAcrossDHSFormation(t *testing.T) {
	r := embeddedResolver()

	snapshots, err := r.Timeline("2002-11-20", "2002-11-30", depts.DHS, depts.DOD)
	require.NoError(t, err)
	require.NotEmpty(t, snapshots)

	assert.NotContains(t, snapshots[0].Statuses, depts.DHS)
	last := snapshots[len(snapshots)-1]
	assert.Contains(t, last.Statuses, depts.DHS)
	assert.Equal(t, depts.DHSFormed, last.Day)
}

func TestTimelineSingleDay(t *testing.T) {
	r := newResolver(t, fixture(), nil)

	snapshots, err := r.Timeline(111, 111)
	require.NoError(t, err)
	require.Len(t, snapshots, 1)
	assert.Equal(t, dates.Day(111), snapshots[0].Through)
}

func TestTimelineRejectsInvertedRange(t *testing.T) {
	r := newResolver(t, fixture(), nil)

	_, err := r.Timeline(210, 90)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidInput(err))
}

func TestTimelineRejectsFilterOutsideRange(t *testing.T) {
	r := embeddedResolver()

	tests := []struct {
		name   string
		filter []depts.Department
	}{
		{"not yet formed", []depts.Department{depts.DHS}},
		{"unknown", []depts.Department{depts.Department("NASA")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Timeline("1995-11-01", "1995-12-31", tt.filter...)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidInput(err))

			_, err = r.Resolve("1995-11-15", tt.filter...)
			assert.True(t, errors.IsInvalidInput(err), "Resolve agrees")
		})
	}
}
