package store

import (
	"fmt"
	"strings"
)

// Backend names returned by [ParseDSN].
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

// ParseDSN picks the storage backend from the DSN and returns the
// driver-specific data source.
//
//	"", "memory", ":memory:"                  -> memory
//	postgres://..., postgresql://..., host=.. -> postgres
//	sqlite://path, file:..., *.db, *.sqlite   -> sqlite
func ParseDSN(dsn string) (backend, source string, err error) {
	dsn = strings.TrimSpace(dsn)

	switch {
	case dsn == "", dsn == "memory", dsn == ":memory:":
		return BackendMemory, "", nil
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return BackendPostgres, dsn, nil
	case strings.Contains(dsn, "host=") || strings.Contains(dsn, "dbname="):
		return BackendPostgres, dsn, nil
	case strings.HasPrefix(dsn, "sqlite://"):
		path := strings.TrimPrefix(dsn, "sqlite://")
		if path == "" {
			return "", "", fmt.Errorf("%w: empty sqlite path", ErrUnsupportedDSN)
		}
		return BackendSQLite, path, nil
	case strings.HasPrefix(dsn, "file:"), strings.HasSuffix(dsn, ".db"), strings.HasSuffix(dsn, ".sqlite"):
		return BackendSQLite, dsn, nil
	}

	return "", "", fmt.Errorf("%w: %q", ErrUnsupportedDSN, redactDSN(dsn))
}

// redactDSN drops everything after the scheme so credentials never reach
// error messages or logs.
func redactDSN(dsn string) string {
	if i := strings.Index(dsn, "://"); i >= 0 {
		return dsn[:i+3] + "***"
	}
	return "***"
}
