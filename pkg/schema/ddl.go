package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// Quote wraps an identifier in double quotes. Both SQLite and
// PostgreSQL keep the case of quoted names.
func Quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// generateDDL creates a CREATE TABLE statement from struct tags.
// A `fk:"Table.Column"` tag adds a REFERENCES clause.
func generateDDL(model any, tableName string) string {
	v := reflect.ValueOf(model)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	t := v.Type()

	var columns []string

	for i := range t.NumField() {
		field := t.Field(i)
		dbTag := field.Tag.Get("db")
		ddlTag := field.Tag.Get("ddl")
		if dbTag == "" || ddlTag == "" {
			continue
		}

		col := fmt.Sprintf("    %s %s", Quote(dbTag), ddlTag)
		if fk := field.Tag.Get("fk"); fk != "" {
			tbl, ref, _ := strings.Cut(fk, ".")
			col += fmt.Sprintf(" REFERENCES %s(%s)", Quote(tbl), Quote(ref))
		}
		columns = append(columns, col)
	}

	ddl := fmt.Sprintf("CREATE TABLE %s (\n%s\n);",
		Quote(tableName),
		strings.Join(columns, ",\n"))

	return ddl
}

// Country DDL methods
func (c Country) TableDDL() string {
	return generateDDL(c, c.TableName())
}

func (c Country) TableName() string {
	return "Country"
}

// Trade DDL methods
func (t Trade) TableDDL() string {
	return generateDDL(t, t.TableName())
}

func (t Trade) TableName() string {
	return "Trade"
}

// Review DDL methods
func (r Review) TableDDL() string {
	return generateDDL(r, r.TableName())
}

func (r Review) TableName() string {
	return "Review"
}
