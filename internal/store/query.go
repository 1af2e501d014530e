// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
)

// Query describes the filter, order and limit of a select. The zero value
// selects every row in table order. Query values are immutable; every
// builder method returns a copy.
type Query struct {
	filters []filter
	orders  []Order
	limit   int
}

type filter struct {
	column string
	value  any
}

// Order is one ORDER BY term.
type Order struct {
	Column string
	Desc   bool
}

// Asc orders by column ascending.
func Asc(column string) Order { return Order{Column: column} }

// Desc orders by column descending.
func Desc(column string) Order { return Order{Column: column, Desc: true} }

// Eq adds an equality filter. Filters are ANDed.
func (q Query) Eq(column string, value any) Query {
	q.filters = append(append([]filter(nil), q.filters...), filter{column: column, value: value})
	return q
}

// OrderBy appends ordering terms.
func (q Query) OrderBy(orders ...Order) Query {
	q.orders = append(append([]Order(nil), q.orders...), orders...)
	return q
}

// Limit caps the number of rows. Zero means no limit.
func (q Query) Limit(n int) Query {
	q.limit = n
	return q
}

// Where starts a query with a single equality filter.
func Where(column string, value any) Query {
	return Query{}.Eq(column, value)
}

// NewestFirst is the default listing order of most tables.
var NewestFirst = Query{}.OrderBy(Desc("created_at"))

func ident(name string) string {
	return pgx.Identifier{name}.Sanitize()
}

func identList(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = ident(n)
	}
	return strings.Join(quoted, ", ")
}

func placeholders(from, n int) string {
	ps := make([]string, n)
	for i := range ps {
		ps[i] = fmt.Sprintf("$%d", from+i)
	}
	return strings.Join(ps, ", ")
}

func buildSelect(table string, columns []string, q Query) (string, []any) {
	var b strings.Builder
	args := make([]any, 0, len(q.filters))

	b.WriteString("SELECT ")
	b.WriteString(identList(columns))
	b.WriteString(" FROM ")
	b.WriteString(ident(table))

	for i, f := range q.filters {
		if i == 0 {
			b.WriteString(" WHERE ")
		} else {
			b.WriteString(" AND ")
		}
		args = append(args, f.value)
		fmt.Fprintf(&b, "%s = $%d", ident(f.column), len(args))
	}

	for i, o := range q.orders {
		if i == 0 {
			b.WriteString(" ORDER BY ")
		} else {
			b.WriteString(", ")
		}
		b.WriteString(ident(o.Column))
		if o.Desc {
			b.WriteString(" DESC")
		} else {
			b.WriteString(" ASC")
		}
	}

	if q.limit > 0 {
		fmt.Fprintf(&b, " LIMIT %d", q.limit)
	}
	return b.String(), args
}

func buildInsert(table string, cols, returning []string) string {
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		ident(table), identList(cols), placeholders(1, len(cols)), identList(returning))
}

func buildUpdate(table string, cols, returning []string) string {
	sets := make([]string, len(cols))
	for i, c := range cols {
		sets[i] = fmt.Sprintf("%s = $%d", ident(c), i+1)
	}
	return fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d RETURNING %s",
		ident(table), strings.Join(sets, ", "), ident("id"), len(cols)+1, identList(returning))
}

func buildUpsert(table string, cols, returning []string) string {
	var sets []string
	for _, c := range cols {
		if c == "id" || c == "created_at" {
			continue
		}
		sets = append(sets, fmt.Sprintf("%s = EXCLUDED.%s", ident(c), ident(c)))
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (%s) DO UPDATE SET %s RETURNING %s",
		ident(table), identList(cols), placeholders(1, len(cols)), ident("id"),
		strings.Join(sets, ", "), identList(returning))
}

func buildDelete(table string) string {
	return fmt.Sprintf("DELETE FROM %s WHERE %s = $1", ident(table), ident("id"))
}

// column is one db-tagged struct field of a wire record.
type column struct {
	name  string
	index int
}

func columnsOf(t reflect.Type) []column {
	if t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("store: wire record %s is not a struct", t))
	}
	var cols []column
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := f.Tag.Get("db")
		if name == "" || name == "-" || !f.IsExported() {
			continue
		}
		cols = append(cols, column{name: name, index: i})
	}
	return cols
}

func columnNames(cols []column) []string {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.name
	}
	return names
}

type writeMode int

const (
	writeInsert writeMode = iota
	writeUpdate
)

// recordValues returns the columns and values to write for rec. Inserts skip
// an empty id and a zero created_at so the column defaults apply; updates
// never touch either.
func recordValues(cols []column, rec any, mode writeMode) ([]string, []any) {
	v := reflect.ValueOf(rec)
	names := make([]string, 0, len(cols))
	vals := make([]any, 0, len(cols))
	for _, c := range cols {
		fv := v.Field(c.index)
		if c.name == "id" || c.name == "created_at" {
			if mode == writeUpdate || isZero(fv) {
				continue
			}
		}
		names = append(names, c.name)
		vals = append(vals, fv.Interface())
	}
	return names, vals
}

func isZero(v reflect.Value) bool {
	if t, ok := v.Interface().(time.Time); ok {
		return t.IsZero()
	}
	return v.IsZero()
}
