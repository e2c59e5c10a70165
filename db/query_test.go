package db

import (
	"errors"
	"testing"
	"time"
)

func TestQueryErrorUnwrap(t *testing.T) {
	inner := errors.New("relation does not exist")
	err := &QueryError{Query: "SELECT * FROM nope", Err: inner}
	if !errors.Is(err, inner) {
		t.Error("errors.Is() cannot reach the wrapped error")
	}
}

func TestFormatValue(t *testing.T) {
	midnight := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	afternoon := time.Date(2024, 3, 15, 14, 5, 9, 0, time.UTC)

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil is empty", nil, ""},
		{"date at midnight", midnight, "2024-03-15"},
		{"timestamp keeps time", afternoon, "2024-03-15 14:05:09"},
		{"bytes", []byte("raw"), "raw"},
		{"int", int64(42), "42"},
		{"float", 3.5, "3.5"},
		{"string", "OPEN", "OPEN"},
		{"bool", true, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatValue(tt.in); got != tt.want {
				t.Errorf("formatValue(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPlural(t *testing.T) {
	if plural(1) != "" {
		t.Error(`plural(1) != ""`)
	}
	for _, n := range []int{0, 2, 50} {
		if plural(n) != "s" {
			t.Errorf("plural(%d) != %q", n, "s")
		}
	}
}
