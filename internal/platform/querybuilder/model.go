package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// Model columns come from `db` struct tags. A column tagged with the
// "readonly" option, for example `db:"id,readonly"`, is selected but never
// written by InsertModel or UpdateModel.

type modelColumn struct {
	name     string
	readonly bool
	value    any
}

// Columns lists every db column of model in field order.
func Columns(model any) []string {
	cols, err := modelColumns(model)
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(cols))
	for _, col := range cols {
		out = append(out, col.name)
	}
	return out
}

// QualifiedColumns is Columns prefixed with a table alias.
func QualifiedColumns(alias string, model any) []string {
	cols := Columns(model)
	for i := range cols {
		cols[i] = alias + "." + cols[i]
	}
	return cols
}

func InsertModel(table string, model any, suffix string) (string, []any, error) {
	cols, err := modelColumns(model)
	if err != nil {
		return "", nil, err
	}

	names := make([]string, 0, len(cols))
	values := make([]any, 0, len(cols))
	for _, col := range cols {
		if col.readonly {
			continue
		}
		names = append(names, col.name)
		values = append(values, col.value)
	}

	return InsertInto(table).
		Columns(names...).
		Values(values...).
		Suffix(suffix).
		ToSQL()
}

// UpdateModel returns an UpdateBuilder that sets every writable column of
// model. Callers add conditions and a suffix.
func UpdateModel(table string, model any) (*UpdateBuilder, error) {
	cols, err := modelColumns(model)
	if err != nil {
		return nil, err
	}

	b := Update(table)
	for _, col := range cols {
		if col.readonly {
			continue
		}
		b.Set(col.name, col.value)
	}
	return b, nil
}

func modelColumns(model any) ([]modelColumn, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, fmt.Errorf("model must be struct")
	}

	typ := value.Type()
	cols := make([]modelColumn, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.PkgPath != "" {
			continue
		}
		parts := strings.Split(strings.TrimSpace(field.Tag.Get("db")), ",")
		name := strings.TrimSpace(parts[0])
		if name == "" || name == "-" {
			continue
		}
		col := modelColumn{name: name, value: value.Field(i).Interface()}
		for _, opt := range parts[1:] {
			if strings.TrimSpace(opt) == "readonly" {
				col.readonly = true
			}
		}
		cols = append(cols, col)
	}

	if len(cols) == 0 {
		return nil, fmt.Errorf("model has no db columns")
	}
	return cols, nil
}
