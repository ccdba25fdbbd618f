package querybuilder

import (
	"errors"
	"fmt"
	"strings"
)

type setClause struct {
	column string
	value  any
	expr   *exprCondition
}

type UpdateBuilder struct {
	table     string
	sets      []setClause
	where     []Condition
	returning []string
}

func Update(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

func (b *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	b.sets = append(b.sets, setClause{column: column, value: value})
	return b
}

// SetExpr assigns a raw SQL expression using ? for arguments.
func (b *UpdateBuilder) SetExpr(column, sql string, args ...any) *UpdateBuilder {
	b.sets = append(b.sets, setClause{column: column, expr: &exprCondition{sql: sql, args: args}})
	return b
}

func (b *UpdateBuilder) Where(conditions ...Condition) *UpdateBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *UpdateBuilder) Returning(columns ...string) *UpdateBuilder {
	b.returning = append([]string(nil), columns...)
	return b
}

func (b *UpdateBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, errors.New("update table is required")
	}
	if len(b.sets) == 0 {
		return "", nil, errors.New("update sets are required")
	}

	w := &writer{}
	w.buf.WriteString("UPDATE ")
	w.buf.WriteString(b.table)
	w.buf.WriteString(" SET ")
	for i, s := range b.sets {
		if i > 0 {
			w.buf.WriteString(", ")
		}
		w.buf.WriteString(s.column)
		w.buf.WriteString(" = ")
		if s.expr != nil {
			w.expr(s.expr.sql, s.expr.args)
			continue
		}
		w.bind(s.value)
	}

	w.where(b.where)
	if len(b.returning) > 0 {
		w.buf.WriteString(" RETURNING ")
		w.buf.WriteString(strings.Join(b.returning, ", "))
	}

	return w.buf.String(), w.args, nil
}

// BulkUpdateBuilder renders UPDATE ... FROM (VALUES ...) so many rows with
// distinct values are written in one statement.
type BulkUpdateBuilder struct {
	table   string
	key     string
	columns []string
	casts   []string
	rows    [][]any
}

// BulkUpdate targets table rows matched by key. columns[0] is the key
// column, the rest are assigned. casts give the postgres type of each column.
func BulkUpdate(table, key string) *BulkUpdateBuilder {
	return &BulkUpdateBuilder{table: table, key: key}
}

func (b *BulkUpdateBuilder) Columns(columns []string, casts []string) *BulkUpdateBuilder {
	b.columns = append([]string(nil), columns...)
	b.casts = append([]string(nil), casts...)
	return b
}

func (b *BulkUpdateBuilder) Row(values ...any) *BulkUpdateBuilder {
	b.rows = append(b.rows, append([]any(nil), values...))
	return b
}

func (b *BulkUpdateBuilder) Len() int {
	return len(b.rows)
}

func (b *BulkUpdateBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" || strings.TrimSpace(b.key) == "" {
		return "", nil, errors.New("bulk update table and key are required")
	}
	if len(b.columns) < 2 || len(b.columns) != len(b.casts) {
		return "", nil, errors.New("bulk update needs a key column, at least one value column and a cast per column")
	}
	if b.columns[0] != b.key {
		return "", nil, fmt.Errorf("bulk update first column must be key %q", b.key)
	}
	if len(b.rows) == 0 {
		return "", nil, errors.New("bulk update rows are required")
	}

	w := &writer{}
	w.buf.WriteString("UPDATE ")
	w.buf.WriteString(b.table)
	w.buf.WriteString(" AS t SET ")
	for i, col := range b.columns[1:] {
		if i > 0 {
			w.buf.WriteString(", ")
		}
		w.buf.WriteString(col)
		w.buf.WriteString(" = v.")
		w.buf.WriteString(col)
	}
	w.buf.WriteString(" FROM (VALUES ")
	for rowIdx, row := range b.rows {
		if len(row) != len(b.columns) {
			return "", nil, fmt.Errorf("bulk update row %d has %d values, expected %d", rowIdx, len(row), len(b.columns))
		}
		if rowIdx > 0 {
			w.buf.WriteString(", ")
		}
		w.buf.WriteString("(")
		for colIdx, value := range row {
			if colIdx > 0 {
				w.buf.WriteString(", ")
			}
			w.bind(value)
			w.buf.WriteString("::")
			w.buf.WriteString(b.casts[colIdx])
		}
		w.buf.WriteString(")")
	}
	w.buf.WriteString(") AS v(")
	w.buf.WriteString(strings.Join(b.columns, ", "))
	w.buf.WriteString(") WHERE t.")
	w.buf.WriteString(b.key)
	w.buf.WriteString(" = v.")
	w.buf.WriteString(b.key)

	return w.buf.String(), w.args, nil
}
