package sqlstore

import (
	"bytes"
	"database/sql/driver"
	"strings"

	"modernc.org/sqlite"
)

// foldFunc lower-cases text with Unicode rules. SQLite's built-in lower()
// only maps ASCII letters.
const foldFunc = "casefold"

func init() {
	if err := sqlite.RegisterDeterministicScalarFunction(foldFunc, 1, casefold); err != nil {
		panic(err)
	}
}

func casefold(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return bytes.ToLower(v), nil
	default:
		return v, nil
	}
}
