package sqlite

import (
	"fmt"
	"strings"
)

// updateSet collects column assignments for a partial UPDATE in a stable order.
type updateSet struct {
	columns []string
	args    []any
}

func (u *updateSet) set(column string, value any) {
	u.columns = append(u.columns, column+" = ?")
	u.args = append(u.args, value)
}

func (u *updateSet) empty() bool {
	return len(u.columns) == 0
}

// query renders "UPDATE table SET ..., updated_at = CURRENT_TIMESTAMP WHERE where"
// and returns it with the collected args followed by whereArgs.
func (u *updateSet) query(table, where string, whereArgs ...any) (string, []any) {
	sql := fmt.Sprintf("UPDATE %s SET %s, updated_at = CURRENT_TIMESTAMP WHERE %s", table, strings.Join(u.columns, ", "), where)
	return sql, append(u.args, whereArgs...)
}

// nullIfEmpty maps an explicit empty string to NULL.
func nullIfEmpty(s *string) any {
	if s == nil || *s == "" {
		return nil
	}
	return *s
}

// nullIfZero maps a zero reference id to NULL so callers can clear it.
func nullIfZero(id *int64) any {
	if id == nil || *id == 0 {
		return nil
	}
	return *id
}
