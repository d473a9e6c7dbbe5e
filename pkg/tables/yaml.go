package tables

import (
	"github.com/goccy/go-yaml"

	"github.com/psuedomagi/fedcal/pkg/dates"
	"github.com/psuedomagi/fedcal/pkg/depts"
	"github.com/psuedomagi/fedcal/pkg/errors"
)

type crEntryYAML struct {
	Start    string   `yaml:"start"`
	End      string   `yaml:"end"`
	Excluded []string `yaml:"excluded"`
}

type gapEntryYAML struct {
	Start       string   `yaml:"start"`
	End         string   `yaml:"end"`
	Departments []string `yaml:"departments"`
	Shutdown    bool     `yaml:"shutdown"`
}

// ParseCR decodes a continuing resolution table. file names the source
// in errors.
func ParseCR(data []byte, file string) (CRTable, error) {
	var raw []crEntryYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.WrapParse("yaml", file, err)
	}

	table := make(CRTable, 0, len(raw))
	for i, r := range raw {
		start, end, err := parseSpan(r.Start, r.End)
		if err != nil {
			return nil, errors.NewParseError("yaml", file, i, err.Error(), err)
		}
		excluded, err := depts.ParseAll(r.Excluded...)
		if err != nil {
			return nil, errors.NewParseError("yaml", file, i, err.Error(), err)
		}
		table = append(table, CREntry{Start: start, End: end, Excluded: excluded})
	}
	return table, nil
}

// ParseGaps decodes an appropriations gap table. file names the source
// in errors.
func ParseGaps(data []byte, file string) (GapTable, error) {
	var raw []gapEntryYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.WrapParse("yaml", file, err)
	}

	table := make(GapTable, 0, len(raw))
	for i, r := range raw {
		start, end, err := parseSpan(r.Start, r.End)
		if err != nil {
			return nil, errors.NewParseError("yaml", file, i, err.Error(), err)
		}
		affected, err := depts.ParseAll(r.Departments...)
		if err != nil {
			return nil, errors.NewParseError("yaml", file, i, err.Error(), err)
		}
		table = append(table, GapEntry{Start: start, End: end, Departments: affected, Shutdown: r.Shutdown})
	}
	return table, nil
}

func parseSpan(start, end string) (dates.Day, dates.Day, error) {
	s, err := dates.Normalize(start)
	if err != nil {
		return 0, 0, err
	}
	e, err := dates.Normalize(end)
	if err != nil {
		return 0, 0, err
	}
	return s, e, nil
}
