// Package table converts fedcal results to rows for table output.
package table

import (
	"strconv"
	"strings"

	"github.com/psuedomagi/fedcal/internal/cmd/emoji"
	"github.com/psuedomagi/fedcal/pkg/depts"
	"github.com/psuedomagi/fedcal/pkg/intervals"
	"github.com/psuedomagi/fedcal/pkg/resolver"
	"github.com/psuedomagi/fedcal/pkg/status"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// StatusesToTableData converts one day's statuses to rows, one per
// department in canonical order. Wide output adds the raw funding and
// operational values.
func StatusesToTableData(statuses status.Statuses, wide bool) Data {
	headers := []string{"", "department", "status"}
	if wide {
		headers = append(headers, "name", "funding", "operational")
	}

	rows := make([][]string, 0, len(statuses))
	for _, d := range statuses.Departments() {
		tuple := statuses[d]
		row := []string{symbol(tuple), string(d), tuple.Readable()}
		if wide {
			row = append(row, d.FullName(), string(tuple.Funding), string(tuple.Operational))
		}
		rows = append(rows, row)
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: []Align{AlignCenter, AlignLeft, AlignLeft},
	}
}

// TimelineToTableData converts snapshots to rows, one per snapshot and
// status kind, listing the departments holding that kind.
func TimelineToTableData(snapshots []resolver.Snapshot, wide bool) Data {
	headers := []string{"from", "through", "", "status", "departments"}
	if wide {
		headers = append(headers, "days")
	}

	var rows [][]string
	for _, snap := range snapshots {
		byKind := make(map[status.Kind]depts.Set)
		for d, tuple := range snap.Statuses {
			k, _ := tuple.Kind()
			byKind[k] = byKind[k].Add(d)
		}

		first := true
		for _, k := range status.Kinds() {
			set, ok := byKind[k]
			if !ok {
				continue
			}
			from, through := "", ""
			if first {
				from, through = snap.Day.String(), snap.Through.String()
			}
			row := []string{from, through, emoji.ForKind(k), k.Readable(), departmentList(set)}
			if wide {
				days := ""
				if first {
					days = strconv.Itoa(int(snap.Through-snap.Day) + 1)
				}
				row = append(row, days)
			}
			rows = append(rows, row)
			first = false
		}
	}

	return Data{Headers: headers, Rows: rows}
}

// RecordsToTableData converts stored interval records to rows. Ends are
// shown inclusive.
func RecordsToTableData(records []intervals.Record, wide bool) Data {
	headers := []string{"start", "end", "kind", "departments"}
	if wide {
		headers = append(headers, "days", "funding", "operational")
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		row := []string{r.Start.String(), r.LastDay().String(), r.Kind.String(), departmentList(r.Departments)}
		if wide {
			row = append(row, strconv.Itoa(int(r.End-r.Start)), string(r.Status.Funding), string(r.Status.Operational))
		}
		rows = append(rows, row)
	}

	align := []Align{AlignLeft, AlignLeft, AlignLeft, AlignLeft}
	if wide {
		align = append(align, AlignRight, AlignLeft, AlignLeft)
	}
	return Data{Headers: headers, Rows: rows, ColumnAlignment: align}
}

// DepartmentsToTableData converts a department set to rows.
func DepartmentsToTableData(set depts.Set, wide bool) Data {
	headers := []string{"id", "abbreviation", "name"}
	if wide {
		headers = append(headers, "short name", "formed")
	}

	rows := make([][]string, 0, set.Len())
	for _, d := range set.Members() {
		row := []string{string(d), d.Abbrev(), d.FullName()}
		if wide {
			formed := "-"
			if day, ok := d.Formed(); ok {
				formed = day.String()
			}
			row = append(row, d.ShortName(), formed)
		}
		rows = append(rows, row)
	}

	return Data{Headers: headers, Rows: rows}
}

func symbol(t status.Tuple) string {
	k, ok := t.Kind()
	if !ok {
		return emoji.Unknown
	}
	return emoji.ForKind(k)
}

// departmentList shows a full set as "all" rather than seventeen names.
func departmentList(set depts.Set) string {
	if set == depts.All() {
		return "all"
	}
	return strings.Join(set.Strings(), ", ")
}
