// plan.go decides which chart (if any) fits a profiled table.
package chart

// PlanKind is the selected chart type.
type PlanKind int

const (
	PlanNone PlanKind = iota
	PlanLine
	PlanBar
)

func (k PlanKind) String() string {
	switch k {
	case PlanLine:
		return "line"
	case PlanBar:
		return "bar"
	default:
		return "none"
	}
}

// CannotChartMessage is surfaced to the user when no chart applies.
const CannotChartMessage = "I cannot easily chart this data."

// Plan is the selector's decision: the chart kind and the columns to
// use as axes/series.
type Plan struct {
	Kind PlanKind

	// Line chart: X is the first date column, Y lists all numeric columns.
	X string
	Y []string

	// Bar chart: Category is the single non-numeric column (used as
	// the index), Value the single numeric column.
	Category string
	Value    string
}

// Choose maps a profiled table to exactly one Plan. It is a total
// function: every input, including an empty table, yields a decision.
//
// Line takes priority over bar. A line chart needs at least one date
// and one numeric column; a bar chart needs the columns to resolve to
// exactly one numeric and exactly one non-numeric.
func Choose(t *Table) Plan {
	var dateCols, numCols, otherCols []string
	for _, c := range t.Columns {
		switch c.Kind {
		case KindDate:
			dateCols = append(dateCols, c.Name)
		case KindNumeric:
			numCols = append(numCols, c.Name)
		default:
			otherCols = append(otherCols, c.Name)
		}
	}

	if len(dateCols) >= 1 && len(numCols) >= 1 {
		return Plan{Kind: PlanLine, X: dateCols[0], Y: numCols}
	}

	// A date column alongside a numeric one was already taken by the
	// line branch, so the single non-numeric column here is opaque.
	if len(numCols) == 1 && len(dateCols)+len(otherCols) == 1 && len(otherCols) == 1 {
		return Plan{Kind: PlanBar, Category: otherCols[0], Value: numCols[0]}
	}

	return Plan{Kind: PlanNone}
}

// Lookup returns the named column, or nil.
func (t *Table) Lookup(name string) *Column {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i]
		}
	}
	return nil
}
