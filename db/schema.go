// schema.go builds the grounding context the assistant is primed with.
//
// It gathers (column name, data type) pairs for the configured table
// from information_schema and formats them into a text block suitable
// for injection into the system prompt. An optional metadata query can
// contribute (variable_name, definition) pairs.
package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/elborak3000/nessie/config"
)

// TableIdentifier is a fully-qualified catalog.schema.table reference.
type TableIdentifier struct {
	Catalog string
	Schema  string
	Table   string
}

func (t TableIdentifier) String() string {
	return t.Catalog + "." + t.Schema + "." + t.Table
}

// SchemaLookupError indicates the table identifier could not be
// resolved into column metadata.
type SchemaLookupError struct {
	Identifier string
	Err        error
}

func (e *SchemaLookupError) Error() string {
	return fmt.Sprintf("schema lookup failed for %q: %v", e.Identifier, e.Err)
}

func (e *SchemaLookupError) Unwrap() error { return e.Err }

// ParseTableIdentifier splits a qualified name into its three parts.
// Anything other than exactly catalog.schema.table is a lookup error.
func ParseTableIdentifier(qualified string) (TableIdentifier, error) {
	parts := strings.Split(qualified, ".")
	if len(parts) != 3 {
		return TableIdentifier{}, &SchemaLookupError{
			Identifier: qualified,
			Err:        fmt.Errorf("expected catalog.schema.table, got %d part(s)", len(parts)),
		}
	}
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			return TableIdentifier{}, &SchemaLookupError{
				Identifier: qualified,
				Err:        fmt.Errorf("empty identifier part"),
			}
		}
	}
	return TableIdentifier{Catalog: parts[0], Schema: parts[1], Table: parts[2]}, nil
}

// ColumnDef is one (column name, declared type) pair.
type ColumnDef struct {
	Name     string
	DataType string
}

// VariableDef is one (variable name, definition) metadata pair.
type VariableDef struct {
	Name       string
	Definition string
}

// LookupColumns fetches column definitions for the exact identifier.
// An identifier that resolves to zero columns is unknown.
func (d *DB) LookupColumns(ctx context.Context, id TableIdentifier) ([]ColumnDef, error) {
	query := `
		SELECT column_name, data_type
		FROM information_schema.columns
		WHERE table_catalog = $1 AND table_schema = $2 AND table_name = $3
		ORDER BY ordinal_position`
	rows, err := d.Pool.Query(ctx, query, id.Catalog, id.Schema, id.Table)
	if err != nil {
		return nil, &SchemaLookupError{Identifier: id.String(), Err: err}
	}
	defer rows.Close()

	var cols []ColumnDef
	for rows.Next() {
		var c ColumnDef
		if err := rows.Scan(&c.Name, &c.DataType); err != nil {
			return nil, &SchemaLookupError{Identifier: id.String(), Err: err}
		}
		cols = append(cols, c)
	}
	if err := rows.Err(); err != nil {
		return nil, &SchemaLookupError{Identifier: id.String(), Err: err}
	}
	if len(cols) == 0 {
		return nil, &SchemaLookupError{Identifier: id.String(), Err: fmt.Errorf("no such table")}
	}
	return cols, nil
}

// LookupVariables runs the configured metadata query, expected to
// return (variable_name, definition) rows.
func (d *DB) LookupVariables(ctx context.Context, metadataQuery string) ([]VariableDef, error) {
	rows, err := d.Pool.Query(ctx, metadataQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vars []VariableDef
	for rows.Next() {
		var v VariableDef
		if err := rows.Scan(&v.Name, &v.Definition); err != nil {
			return nil, err
		}
		vars = append(vars, v)
	}
	return vars, rows.Err()
}

// FormatTableContext builds the grounding block: identifier,
// description, newline-joined column list, and an optional
// variable-definition block.
func FormatTableContext(qualified, description string, cols []ColumnDef, vars []VariableDef) string {
	lines := make([]string, 0, len(cols))
	for _, c := range cols {
		lines = append(lines, fmt.Sprintf("Column Name: %s; Data Type: %s", c.Name, c.DataType))
	}
	columns := strings.Join(lines, "\n")

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Here is the table name <tableName> %s </tableName>\n\n", qualified))
	sb.WriteString(fmt.Sprintf("<tableDescription>%s</tableDescription>\n\n", description))
	sb.WriteString(fmt.Sprintf("Here are the columns of the %s\n\n", qualified))
	sb.WriteString(fmt.Sprintf("<columns>\n\n%s\n\n</columns>", columns))

	if len(vars) > 0 {
		varLines := make([]string, 0, len(vars))
		for _, v := range vars {
			varLines = append(varLines, fmt.Sprintf("Variable Name: %s; Definition: %s", v.Name, v.Definition))
		}
		sb.WriteString("\n\nAvailable variables by VARIABLE_NAME:\n\n")
		sb.WriteString(strings.Join(varLines, "\n"))
	}

	return sb.String()
}

// ContextBuilder produces the schema context for the configured table
// against a live connection.
type ContextBuilder struct {
	DB    *DB
	Table config.TableConfig
}

// TableContext implements the schema-context build: parse the
// identifier, introspect columns, optionally fetch metadata variables,
// and format the grounding block.
func (b *ContextBuilder) TableContext(ctx context.Context) (string, error) {
	id, err := ParseTableIdentifier(b.Table.QualifiedName)
	if err != nil {
		return "", err
	}

	cols, err := b.DB.LookupColumns(ctx, id)
	if err != nil {
		return "", err
	}

	// The metadata query is optional; absence is normal.
	var vars []VariableDef
	if b.Table.MetadataQuery != "" {
		vars, err = b.DB.LookupVariables(ctx, b.Table.MetadataQuery)
		if err != nil {
			return "", &SchemaLookupError{Identifier: b.Table.QualifiedName, Err: err}
		}
	}

	return FormatTableContext(b.Table.QualifiedName, b.Table.Description, cols, vars), nil
}
