// ABOUTME: Safe SQL query builder for the article and feed listings
// ABOUTME: Enforces parameterization and validated identifiers for dynamic filters

package sqlite

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// only alphanumeric and underscore identifiers
	safeNamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

	allowedOperators = map[string]bool{
		"=":  true,
		"!=": true,
		">":  true,
		"<":  true,
		">=": true,
		"<=": true,
	}

	likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
)

// QueryBuilder builds a parameterized SELECT with AND-ed conditions
type QueryBuilder struct {
	count      bool
	columns    []string
	table      string
	conditions []string
	params     []interface{}
	orderBy    []string
	limit      int
	offset     int
}

// NewQueryBuilder starts a SELECT of columns from table. Invalid
// identifiers fall back to * for the column list.
func NewQueryBuilder(table string, columns ...string) *QueryBuilder {
	qb := &QueryBuilder{table: table}
	for _, col := range columns {
		if !validName(col) {
			qb.columns = nil
			return qb
		}
		qb.columns = append(qb.columns, col)
	}
	return qb
}

// NewCountBuilder starts a SELECT COUNT(*) from table
func NewCountBuilder(table string) *QueryBuilder {
	return &QueryBuilder{table: table, count: true}
}

func validName(name string) bool {
	return len(name) <= 64 && safeNamePattern.MatchString(name)
}

// Where adds a parameterized comparison; an unknown operator becomes =
func (qb *QueryBuilder) Where(column, operator string, value interface{}) *QueryBuilder {
	if !validName(column) {
		return qb
	}
	if !allowedOperators[operator] {
		operator = "="
	}

	qb.conditions = append(qb.conditions, column+" "+operator+" ?")
	qb.params = append(qb.params, value)
	return qb
}

// WhereIf adds the comparison only when cond is true
func (qb *QueryBuilder) WhereIf(cond bool, column, operator string, value interface{}) *QueryBuilder {
	if !cond {
		return qb
	}
	return qb.Where(column, operator, value)
}

// Contains matches column against term as a literal substring
func (qb *QueryBuilder) Contains(column, term string) *QueryBuilder {
	if !validName(column) {
		return qb
	}

	qb.conditions = append(qb.conditions, column+` LIKE ? ESCAPE '\'`)
	qb.params = append(qb.params, "%"+EscapeLike(term)+"%")
	return qb
}

// OrderBy appends a sort key; desc selects descending order
func (qb *QueryBuilder) OrderBy(column string, desc bool) *QueryBuilder {
	if !validName(column) {
		return qb
	}

	if desc {
		column += " DESC"
	}
	qb.orderBy = append(qb.orderBy, column)
	return qb
}

// Page limits the result; a non-positive limit means no limit
func (qb *QueryBuilder) Page(limit, offset int) *QueryBuilder {
	qb.limit = limit
	if offset > 0 {
		qb.offset = offset
	}
	return qb
}

// Build returns the built query and parameters
func (qb *QueryBuilder) Build() (string, []interface{}) {
	var b strings.Builder

	b.WriteString("SELECT ")
	switch {
	case qb.count:
		b.WriteString("COUNT(*)")
	case len(qb.columns) == 0:
		b.WriteString("*")
	default:
		b.WriteString(strings.Join(qb.columns, ", "))
	}
	b.WriteString(" FROM " + qb.table)

	if len(qb.conditions) > 0 {
		b.WriteString(" WHERE " + strings.Join(qb.conditions, " AND "))
	}
	if len(qb.orderBy) > 0 {
		b.WriteString(" ORDER BY " + strings.Join(qb.orderBy, ", "))
	}
	if qb.limit > 0 {
		b.WriteString(" LIMIT " + strconv.Itoa(qb.limit))
		if qb.offset > 0 {
			b.WriteString(" OFFSET " + strconv.Itoa(qb.offset))
		}
	}

	return b.String(), qb.params
}

// EscapeLike escapes LIKE wildcards so term matches literally with ESCAPE '\'
func EscapeLike(term string) string {
	return likeEscaper.Replace(term)
}
