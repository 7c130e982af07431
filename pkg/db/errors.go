package db

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

const pgUniqueViolation = "23505"

// IsUniqueViolation reports whether err is a unique constraint violation.
// When constraintName is set the violation must come from that index.
func IsUniqueViolation(err error, constraintName string) bool {
	if err == nil {
		return false
	}
	name, ok := ViolatedUniqueIndex(err)
	if !ok {
		return false
	}
	if constraintName == "" {
		return true
	}
	return name == constraintName
}

// ViolatedUniqueIndex names the unique index behind err. Postgres reports the
// constraint directly; SQLite only lists the columns, which are matched
// against the registered indexes. An unregistered index yields ("", true).
func ViolatedUniqueIndex(err error) (string, bool) {
	if err == nil {
		return "", false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code != pgUniqueViolation {
			return "", false
		}
		return pgErr.ConstraintName, true
	}

	msg := err.Error()
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		if liteErr.ExtendedCode != sqlite3.ErrConstraintUnique && liteErr.ExtendedCode != sqlite3.ErrConstraintPrimaryKey {
			return "", false
		}
		return indexFromSQLiteMessage(msg), true
	}

	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return indexFromSQLiteMessage(msg), true
	case strings.Contains(msg, "duplicate key value"):
		for _, idx := range UniqueIndexes {
			if strings.Contains(msg, idx.Name) {
				return idx.Name, true
			}
		}
		return "", true
	}
	return "", false
}

func indexFromSQLiteMessage(msg string) string {
	const marker = "UNIQUE constraint failed: "
	pos := strings.Index(msg, marker)
	if pos < 0 {
		return ""
	}
	cols := strings.Split(msg[pos+len(marker):], ",")
	for i := range cols {
		cols[i] = strings.TrimSpace(cols[i])
	}
	for _, idx := range UniqueIndexes {
		if idx.matchesQualified(cols) {
			return idx.Name
		}
	}
	return ""
}
