package sqlstore

import (
	"strconv"
	"strings"
)

// Dialect captures the SQL differences between the supported drivers.
type Dialect int

const (
	DialectSQLite Dialect = iota // local modernc connection, custom functions available
	DialectLibSQL                // remote Turso connection
	DialectPostgres
)

// Placeholder returns the bind marker for the n-th (1-based) argument.
func (d Dialect) Placeholder(n int) string {
	if d == DialectPostgres {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

// Rebind rewrites every "?" marker in query into the dialect's placeholder.
// Queries passed here never contain a literal question mark.
func (d Dialect) Rebind(query string) string {
	if d != DialectPostgres {
		return query
	}
	var sb strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			sb.WriteString(d.Placeholder(n))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// containsMatch is a case-insensitive substring predicate on column with a
// single "?" pattern argument. Plain SQLite LIKE folds ASCII only, so local
// connections compare through casefold; remote libSQL connections cannot
// load it and keep the ASCII fold.
func (d Dialect) containsMatch(column string) string {
	switch d {
	case DialectPostgres:
		return column + ` ILIKE ? ESCAPE '\'`
	case DialectLibSQL:
		return column + ` LIKE ? ESCAPE '\'`
	default:
		return foldFunc + "(" + column + ") LIKE " + foldFunc + `(?) ESCAPE '\'`
	}
}

// timestampParam is a "?" marker typed for a timestamp column. Postgres
// cannot infer parameter types inside an INSERT ... SELECT list.
func (d Dialect) timestampParam() string {
	if d == DialectPostgres {
		return "CAST(? AS TIMESTAMPTZ)"
	}
	return "?"
}

// driverFor picks the database/sql driver and dialect from a connection URL.
func driverFor(dbURL string) (string, Dialect) {
	switch {
	case strings.HasPrefix(dbURL, "postgres://"), strings.HasPrefix(dbURL, "postgresql://"):
		return "pgx", DialectPostgres
	case strings.Contains(dbURL, "libsql://"), strings.Contains(dbURL, "wss://"):
		return "libsql", DialectLibSQL
	default:
		return "sqlite", DialectSQLite
	}
}

// sqliteDSN makes every pooled SQLite connection enforce foreign keys and
// write timestamps in a sortable format.
func sqliteDSN(dsn string) string {
	params := []string{}
	if !strings.Contains(dsn, "foreign_keys") {
		params = append(params, "_pragma=foreign_keys(1)")
	}
	if !strings.Contains(dsn, "_time_format") {
		params = append(params, "_time_format=sqlite")
	}
	if len(params) == 0 {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(params, "&")
}
