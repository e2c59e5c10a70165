// render.go turns rendered conversation turns into transcript lines:
// prose, SQL blocks, result tables, and terminal chart sketches.
package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/elborak3000/nessie/chart"
	"github.com/elborak3000/nessie/chat"
	"github.com/elborak3000/nessie/db"
)

const (
	maxTableRows  = 20
	maxColWidth   = 24
	maxBarRows    = 12
	sparklineWide = 60
)

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// renderTranscript lays out the whole conversation.
func renderTranscript(transcript []chat.RenderedTurn, width int) []string {
	var lines []string
	for _, rt := range transcript {
		lines = append(lines, renderTurn(rt, width)...)
		lines = append(lines, "")
	}
	return lines
}

func renderTurn(rt chat.RenderedTurn, width int) []string {
	var lines []string

	switch rt.Role {
	case chat.RoleUser:
		lines = append(lines, StyleUserLabel.Render("You: ")+firstLine(rt.Text))
		lines = append(lines, restLines(rt.Text)...)
		return lines
	default:
		lines = append(lines, StyleAssistantLabel.Render("Nessie:"))
	}

	switch rt.Kind {
	case chat.RenderedError:
		for _, l := range strings.Split(rt.Text, "\n") {
			lines = append(lines, "  "+StyleError.Render(l))
		}

	case chat.RenderedQuery:
		lines = append(lines, indent(rt.Before)...)
		lines = append(lines, "  "+StyleDimmed.Render("── SQL ──"))
		for _, l := range strings.Split(rt.SQL, "\n") {
			lines = append(lines, "  "+StyleSQL.Render(l))
		}
		lines = append(lines, "  "+StyleDimmed.Render("─────────"))
		lines = append(lines, indent(rt.After)...)
		if rt.Results != nil {
			lines = append(lines, "")
			lines = append(lines, renderResultTable(rt.Results)...)
		}
		if rt.Chart != nil {
			lines = append(lines, "")
			lines = append(lines, renderChart(rt.Table, *rt.Chart, width)...)
		}

	default:
		lines = append(lines, indent(rt.Text)...)
	}

	return lines
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func restLines(s string) []string {
	parts := strings.Split(s, "\n")
	if len(parts) <= 1 {
		return nil
	}
	out := make([]string, 0, len(parts)-1)
	for _, l := range parts[1:] {
		out = append(out, "     "+l)
	}
	return out
}

func indent(s string) []string {
	s = strings.Trim(s, "\n")
	if s == "" {
		return nil
	}
	var out []string
	for _, l := range strings.Split(s, "\n") {
		out = append(out, "  "+l)
	}
	return out
}

// renderResultTable renders a bounded ASCII table of the result set.
func renderResultTable(rs *db.ResultSet) []string {
	if len(rs.Columns) == 0 {
		return []string{StyleDimmed.Render("  (no columns)")}
	}

	widths := make([]int, len(rs.Columns))
	for i, c := range rs.Columns {
		widths[i] = min(len(c), maxColWidth)
	}
	shown := rs.Rows
	if len(shown) > maxTableRows {
		shown = shown[:maxTableRows]
	}
	for _, row := range shown {
		for i := range rs.Columns {
			if i < len(row) {
				if w := min(len(row[i]), maxColWidth); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}

	cell := func(s string, w int) string {
		if len(s) > w {
			s = s[:w-1] + "…"
		}
		return s + strings.Repeat(" ", w-len(s))
	}

	var lines []string
	header := make([]string, len(rs.Columns))
	rule := make([]string, len(rs.Columns))
	for i, c := range rs.Columns {
		header[i] = cell(c, widths[i])
		rule[i] = strings.Repeat("─", widths[i])
	}
	lines = append(lines, "  "+StyleBold.Render(strings.Join(header, " │ ")))
	lines = append(lines, "  "+StyleDimmed.Render(strings.Join(rule, "─┼─")))

	for _, row := range shown {
		cells := make([]string, len(rs.Columns))
		for i := range rs.Columns {
			val := ""
			if i < len(row) {
				val = row[i]
			}
			cells[i] = cell(val, widths[i])
		}
		lines = append(lines, "  "+strings.Join(cells, " │ "))
	}

	status := rs.Status
	if len(shown) < rs.RowCount {
		status += fmt.Sprintf(", showing first %d", len(shown))
	}
	lines = append(lines, "  "+StyleDimmed.Render(status))
	return lines
}

// renderChart sketches the selected chart, or surfaces the
// cannot-chart signal.
func renderChart(t *chart.Table, plan chart.Plan, width int) []string {
	switch plan.Kind {
	case chart.PlanLine:
		return renderLineChart(t, plan)
	case chart.PlanBar:
		return renderBarChart(t, plan, width)
	default:
		return []string{"  " + StyleDimmed.Render(chart.CannotChartMessage)}
	}
}

// renderLineChart draws one sparkline per numeric series, ordered by
// the date axis.
func renderLineChart(t *chart.Table, plan chart.Plan) []string {
	x := t.Lookup(plan.X)
	if x == nil {
		return nil
	}

	// order rows by the x-axis dates, invalid dates last
	order := make([]int, len(x.Raw))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ia, ib := order[a], order[b]
		if !x.Valid[ia] {
			return false
		}
		if !x.Valid[ib] {
			return true
		}
		return x.Dates[ia].Before(x.Dates[ib])
	})

	lines := []string{"  " + StyleTitle.Render("Line Chart") + StyleDimmed.Render(" x="+plan.X)}
	for _, name := range plan.Y {
		col := t.Lookup(name)
		if col == nil {
			continue
		}
		lines = append(lines, "  "+sparkline(col, order)+"  "+StyleDimmed.Render(name))
	}
	return lines
}

func sparkline(col *chart.Column, order []int) string {
	var vals []float64
	for _, i := range order {
		if i < len(col.Valid) && col.Valid[i] {
			vals = append(vals, col.Numbers[i])
		}
	}
	if len(vals) == 0 {
		return ""
	}
	if len(vals) > sparklineWide {
		vals = resample(vals, sparklineWide)
	}

	lo, hi := vals[0], vals[0]
	for _, v := range vals {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	var sb strings.Builder
	for _, v := range vals {
		level := 0
		if hi > lo {
			level = int((v - lo) / (hi - lo) * float64(len(sparkLevels)-1))
		}
		sb.WriteRune(sparkLevels[level])
	}
	return StyleSuccess.Render(sb.String())
}

// resample reduces a series to n points by bucket averaging.
func resample(vals []float64, n int) []float64 {
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		start := i * len(vals) / n
		end := (i + 1) * len(vals) / n
		if end <= start {
			end = start + 1
		}
		sum := 0.0
		for _, v := range vals[start:end] {
			sum += v
		}
		out[i] = sum / float64(end-start)
	}
	return out
}

// renderBarChart draws a horizontal bar per category, indexed by the
// category column.
func renderBarChart(t *chart.Table, plan chart.Plan, width int) []string {
	cat := t.Lookup(plan.Category)
	val := t.Lookup(plan.Value)
	if cat == nil || val == nil {
		return nil
	}

	type bar struct {
		label string
		value float64
	}
	var bars []bar
	for i := range cat.Raw {
		if i < len(val.Valid) && val.Valid[i] {
			bars = append(bars, bar{label: cat.Raw[i], value: val.Numbers[i]})
		}
		if len(bars) == maxBarRows {
			break
		}
	}
	if len(bars) == 0 {
		return []string{"  " + StyleDimmed.Render(chart.CannotChartMessage)}
	}

	labelW, maxVal := 0, 0.0
	for _, b := range bars {
		if len(b.label) > labelW {
			labelW = len(b.label)
		}
		if v := abs(b.value); v > maxVal {
			maxVal = v
		}
	}
	if labelW > maxColWidth {
		labelW = maxColWidth
	}

	barSpace := width - labelW - 18
	if barSpace < 10 {
		barSpace = 10
	}

	lines := []string{"  " + StyleTitle.Render("Bar Chart") + StyleDimmed.Render(" "+plan.Value+" by "+plan.Category)}
	for _, b := range bars {
		label := b.label
		if len(label) > labelW {
			label = label[:labelW-1] + "…"
		}
		n := 0
		if maxVal > 0 {
			n = int(abs(b.value) / maxVal * float64(barSpace))
		}
		lines = append(lines, fmt.Sprintf("  %-*s %s %s",
			labelW, label,
			StyleSuccess.Render(strings.Repeat("█", n)),
			StyleDimmed.Render(fmt.Sprintf("%.2f", b.value))))
	}
	return lines
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
