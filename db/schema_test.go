package db

import (
	"errors"
	"strings"
	"testing"
)

func TestParseTableIdentifier(t *testing.T) {
	tests := []struct {
		name      string
		qualified string
		want      TableIdentifier
		wantErr   bool
	}{
		{
			name:      "three parts",
			qualified: "dw_lakehouse.loss_run.claim_facts",
			want:      TableIdentifier{Catalog: "dw_lakehouse", Schema: "loss_run", Table: "claim_facts"},
		},
		{
			name:      "two parts",
			qualified: "DB.SCH",
			wantErr:   true,
		},
		{
			name:      "four parts",
			qualified: "a.b.c.d",
			wantErr:   true,
		},
		{
			name:      "empty middle part",
			qualified: "a..c",
			wantErr:   true,
		},
		{
			name:      "blank part",
			qualified: "a. .c",
			wantErr:   true,
		},
		{
			name:      "empty string",
			qualified: "",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTableIdentifier(tt.qualified)
			if tt.wantErr {
				if err == nil {
					t.Fatal("want error, got nil")
				}
				var lookupErr *SchemaLookupError
				if !errors.As(err, &lookupErr) {
					t.Fatalf("error type = %T, want *SchemaLookupError", err)
				}
				if lookupErr.Identifier != tt.qualified {
					t.Errorf("Identifier = %q, want %q", lookupErr.Identifier, tt.qualified)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTableIdentifierString(t *testing.T) {
	id := TableIdentifier{Catalog: "dw", Schema: "lr", Table: "claims"}
	if got := id.String(); got != "dw.lr.claims" {
		t.Errorf("String() = %q", got)
	}
}

func TestSchemaLookupErrorUnwrap(t *testing.T) {
	inner := errors.New("no such table")
	err := &SchemaLookupError{Identifier: "a.b.c", Err: inner}
	if !errors.Is(err, inner) {
		t.Error("errors.Is() cannot reach the wrapped error")
	}
	if !strings.Contains(err.Error(), "a.b.c") {
		t.Errorf("Error() = %q, want it to name the identifier", err.Error())
	}
}

func TestFormatTableContext(t *testing.T) {
	cols := []ColumnDef{
		{Name: "CLAIM_NO", DataType: "character varying"},
		{Name: "IND_PAID_LOSS", DataType: "numeric"},
	}

	got := FormatTableContext("dw.loss_run.claims", "Loss run claim facts.", cols, nil)

	for _, want := range []string{
		"<tableName> dw.loss_run.claims </tableName>",
		"<tableDescription>Loss run claim facts.</tableDescription>",
		"<columns>",
		"Column Name: CLAIM_NO; Data Type: character varying",
		"Column Name: IND_PAID_LOSS; Data Type: numeric",
		"</columns>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("context missing %q\n%s", want, got)
		}
	}
	if strings.Contains(got, "Available variables") {
		t.Error("variable block present without variables")
	}

	// Column order must follow the input order.
	if strings.Index(got, "CLAIM_NO") > strings.Index(got, "IND_PAID_LOSS") {
		t.Error("columns are out of order")
	}
}

func TestFormatTableContextWithVariables(t *testing.T) {
	cols := []ColumnDef{{Name: "A", DataType: "text"}}
	vars := []VariableDef{
		{Name: "TOTAL_INCURRED", Definition: "sum of reserves and paid losses net of recoveries"},
	}

	got := FormatTableContext("dw.lr.claims", "", cols, vars)
	if !strings.Contains(got, "Available variables by VARIABLE_NAME:") {
		t.Error("missing variable block header")
	}
	if !strings.Contains(got, "Variable Name: TOTAL_INCURRED; Definition: sum of reserves and paid losses net of recoveries") {
		t.Error("missing variable definition line")
	}
}
