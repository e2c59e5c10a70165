// Package chart classifies result-set columns and picks a chart type.
//
// Profiling is tolerant: every value is coerced best-effort and
// failures become nulls, never errors. A column is date-like or
// numeric-like when enough of its non-empty values coerce; the checks
// run as an ordered policy chain (date first, then numeric) so a
// column that looks like both is treated as a date.
package chart

import (
	"strconv"
	"strings"
	"time"
)

// Kind classifies a profiled column.
type Kind int

const (
	KindOpaque Kind = iota
	KindDate
	KindNumeric
)

func (k Kind) String() string {
	switch k {
	case KindDate:
		return "date"
	case KindNumeric:
		return "numeric"
	default:
		return "opaque"
	}
}

// ColumnProfile is the classification result for one column.
type ColumnProfile struct {
	Name         string
	Kind         Kind
	CoercionRate float64
}

// Column is a working column: raw values plus the coerced values for
// the classified kind. Valid marks per-row coercion success.
type Column struct {
	Name    string
	Kind    Kind
	Raw     []string
	Dates   []time.Time
	Numbers []float64
	Valid   []bool
}

// Table is the profiled working copy of a result set.
type Table struct {
	Columns  []Column
	Profiles []ColumnProfile
}

// Options configures the acceptance thresholds: the fraction of
// non-empty values that must coerce for a column to take a kind.
type Options struct {
	DateThreshold    float64
	NumericThreshold float64
}

// DefaultOptions returns the production thresholds.
func DefaultOptions() Options {
	return Options{DateThreshold: 0.9, NumericThreshold: 0.9}
}

// dateLayouts are tried in order for tolerant date coercion.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"01/02/2006",
	"2006/01/02",
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	return f, err == nil
}

// policy is one step of the ordered classification chain.
type policy struct {
	kind      Kind
	threshold func(Options) float64
	coerce    func(col *Column) float64 // fills typed values, returns rate
}

var policies = []policy{
	{
		kind:      KindDate,
		threshold: func(o Options) float64 { return o.DateThreshold },
		coerce:    coerceDates,
	},
	{
		kind:      KindNumeric,
		threshold: func(o Options) float64 { return o.NumericThreshold },
		coerce:    coerceNumbers,
	},
}

// Profile classifies each column of a result set and returns the
// retyped working table. Rows are row-major, as they come off the
// wire; empty strings are nulls. Zero rows classify every column as
// opaque.
func Profile(names []string, rows [][]string, opts Options) *Table {
	if opts.DateThreshold <= 0 {
		opts.DateThreshold = DefaultOptions().DateThreshold
	}
	if opts.NumericThreshold <= 0 {
		opts.NumericThreshold = DefaultOptions().NumericThreshold
	}

	t := &Table{
		Columns:  make([]Column, len(names)),
		Profiles: make([]ColumnProfile, len(names)),
	}

	for i, name := range names {
		raw := make([]string, 0, len(rows))
		for _, row := range rows {
			if i < len(row) {
				raw = append(raw, row[i])
			} else {
				raw = append(raw, "")
			}
		}

		col := Column{Name: name, Kind: KindOpaque, Raw: raw}
		rate := 0.0
		for _, p := range policies {
			r := p.coerce(&col)
			if r >= p.threshold(opts) {
				col.Kind = p.kind
				rate = r
				break
			}
			// reset typed values left by the failed attempt
			col.Dates, col.Numbers, col.Valid = nil, nil, nil
		}

		t.Columns[i] = col
		t.Profiles[i] = ColumnProfile{Name: name, Kind: col.Kind, CoercionRate: rate}
	}

	return t
}

// coerceDates fills col.Dates/Valid and returns the success rate over
// non-empty values. An all-empty column rates 0.
func coerceDates(col *Column) float64 {
	col.Dates = make([]time.Time, len(col.Raw))
	col.Valid = make([]bool, len(col.Raw))

	nonEmpty, ok := 0, 0
	for i, s := range col.Raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		nonEmpty++
		if d, parsed := parseDate(s); parsed {
			col.Dates[i] = d
			col.Valid[i] = true
			ok++
		}
	}
	if nonEmpty == 0 {
		return 0
	}
	return float64(ok) / float64(nonEmpty)
}

// coerceNumbers fills col.Numbers/Valid and returns the success rate
// over non-empty values.
func coerceNumbers(col *Column) float64 {
	col.Numbers = make([]float64, len(col.Raw))
	col.Valid = make([]bool, len(col.Raw))

	nonEmpty, ok := 0, 0
	for i, s := range col.Raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		nonEmpty++
		if f, parsed := parseNumber(s); parsed {
			col.Numbers[i] = f
			col.Valid[i] = true
			ok++
		}
	}
	if nonEmpty == 0 {
		return 0
	}
	return float64(ok) / float64(nonEmpty)
}
