package chart

import "testing"

func rowsFromColumns(cols ...[]string) [][]string {
	if len(cols) == 0 {
		return nil
	}
	rows := make([][]string, len(cols[0]))
	for i := range rows {
		row := make([]string, len(cols))
		for j, col := range cols {
			row[j] = col[i]
		}
		rows[i] = row
	}
	return rows
}

func TestProfileKinds(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   Kind
	}{
		{
			name:   "ISO dates",
			values: []string{"2024-01-01", "2024-02-01", "2024-03-01"},
			want:   KindDate,
		},
		{
			name:   "timestamps",
			values: []string{"2024-01-01 10:30:00", "2024-06-15 08:00:00"},
			want:   KindDate,
		},
		{
			name:   "US-style dates",
			values: []string{"01/15/2024", "02/20/2024"},
			want:   KindDate,
		},
		{
			name:   "floats",
			values: []string{"100.50", "250", "-3.75"},
			want:   KindNumeric,
		},
		{
			name:   "names",
			values: []string{"ACME LOGISTICS", "NORTHSTAR FREIGHT"},
			want:   KindOpaque,
		},
		{
			name:   "status codes",
			values: []string{"OPEN", "CLOSED", "RE-OPENED"},
			want:   KindOpaque,
		},
		{
			name:   "mostly numeric above threshold",
			values: []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "n/a"},
			want:   KindNumeric,
		},
		{
			name:   "mixed below threshold",
			values: []string{"1", "2", "x", "y"},
			want:   KindOpaque,
		},
		{
			name:   "empties excluded from the denominator",
			values: []string{"2024-01-01", "", "", "2024-02-01"},
			want:   KindDate,
		},
		{
			name:   "all empty",
			values: []string{"", "", ""},
			want:   KindOpaque,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tab := Profile([]string{"COL"}, rowsFromColumns(tt.values), DefaultOptions())
			if got := tab.Profiles[0].Kind; got != tt.want {
				t.Errorf("kind = %v, want %v (rate %.2f)", got, tt.want, tab.Profiles[0].CoercionRate)
			}
		})
	}
}

func TestProfileZeroRows(t *testing.T) {
	tab := Profile([]string{"A", "B"}, nil, DefaultOptions())
	if len(tab.Profiles) != 2 {
		t.Fatalf("got %d profiles, want 2", len(tab.Profiles))
	}
	for _, p := range tab.Profiles {
		if p.Kind != KindOpaque {
			t.Errorf("column %s kind = %v, want opaque for zero rows", p.Name, p.Kind)
		}
	}
}

func TestProfileSlashDates(t *testing.T) {
	tab := Profile([]string{"WHEN"}, rowsFromColumns([]string{"2024/01/02", "2023/11/30"}), DefaultOptions())
	if got := tab.Profiles[0].Kind; got != KindDate {
		t.Errorf("kind = %v, want date", got)
	}
}

func TestProfileRetypesValues(t *testing.T) {
	tab := Profile(
		[]string{"CLAIM_DATE", "TOTAL"},
		rowsFromColumns(
			[]string{"2024-01-01", "", "2024-03-01"},
			[]string{"10.5", "20", "bad"},
		),
		DefaultOptions(),
	)

	dates := tab.Columns[0]
	if dates.Kind != KindDate {
		t.Fatalf("CLAIM_DATE kind = %v, want date", dates.Kind)
	}
	if !dates.Valid[0] || dates.Valid[1] || !dates.Valid[2] {
		t.Errorf("CLAIM_DATE valid = %v, want [true false true]", dates.Valid)
	}
	if dates.Dates[0].Year() != 2024 || dates.Dates[0].Month() != 1 {
		t.Errorf("CLAIM_DATE[0] = %v", dates.Dates[0])
	}

	// 2 of 3 numeric values is below the threshold.
	totals := tab.Columns[1]
	if totals.Kind != KindOpaque {
		t.Fatalf("TOTAL kind = %v, want opaque", totals.Kind)
	}
	if totals.Numbers != nil || totals.Dates != nil || totals.Valid != nil {
		t.Error("failed coercion attempts left typed values behind")
	}
}

func TestProfileThresholdOverride(t *testing.T) {
	values := []string{"1", "2", "x", "y"} // half numeric
	opts := Options{DateThreshold: 0.9, NumericThreshold: 0.5}
	tab := Profile([]string{"N"}, rowsFromColumns(values), opts)
	if got := tab.Profiles[0].Kind; got != KindNumeric {
		t.Errorf("kind = %v, want numeric at 0.5 threshold", got)
	}
}

func TestProfileRaggedRows(t *testing.T) {
	rows := [][]string{
		{"2024-01-01", "5"},
		{"2024-02-01"}, // short row, missing cell reads as empty
	}
	tab := Profile([]string{"D", "N"}, rows, DefaultOptions())
	if tab.Profiles[0].Kind != KindDate {
		t.Errorf("D kind = %v, want date", tab.Profiles[0].Kind)
	}
	if tab.Profiles[1].Kind != KindNumeric {
		t.Errorf("N kind = %v, want numeric", tab.Profiles[1].Kind)
	}
}
