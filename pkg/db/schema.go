package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/angelmondragon/mentormatch-backend/pkg/db/models"
)

// UniqueIndex describes a unique (optionally partial) index the domain relies on.
type UniqueIndex struct {
	Name    string
	Table   string
	Columns []string
	Where   string
}

const (
	IndexUsersEmail          = "uq_users_email"
	IndexMatchPairActive     = "uq_match_requests_pair_active"
	IndexMatchMenteePending  = "uq_match_requests_mentee_pending"
	IndexMatchMentorAccepted = "uq_match_requests_mentor_accepted"
)

// UniqueIndexes backs the match request invariants at the storage level. The
// goose migrations create the same indexes for Postgres.
var UniqueIndexes = []UniqueIndex{
	{Name: IndexUsersEmail, Table: "users", Columns: []string{"email"}},
	{Name: IndexMatchPairActive, Table: "match_requests", Columns: []string{"mentor_id", "mentee_id"}, Where: "status IN ('pending', 'accepted')"},
	{Name: IndexMatchMenteePending, Table: "match_requests", Columns: []string{"mentee_id"}, Where: "status = 'pending'"},
	{Name: IndexMatchMentorAccepted, Table: "match_requests", Columns: []string{"mentor_id"}, Where: "status = 'accepted'"},
}

// CreateSQL renders the CREATE UNIQUE INDEX statement shared by both dialects.
func (i UniqueIndex) CreateSQL() string {
	stmt := fmt.Sprintf("CREATE UNIQUE INDEX IF NOT EXISTS %s ON %s (%s)", i.Name, i.Table, strings.Join(i.Columns, ", "))
	if i.Where != "" {
		stmt += " WHERE " + i.Where
	}
	return stmt
}

func (i UniqueIndex) matchesQualified(cols []string) bool {
	if len(cols) != len(i.Columns) {
		return false
	}
	for n, col := range cols {
		if col != i.Table+"."+i.Columns[n] {
			return false
		}
	}
	return true
}

// Bootstrap creates the schema on SQLite. Postgres deployments use the goose
// migrations in pkg/migrate instead.
func (c *Client) Bootstrap(ctx context.Context) error {
	if c.dialect != DialectSQLite {
		return fmt.Errorf("bootstrap is only supported on sqlite, got %s", c.dialect)
	}
	conn := c.conn.WithContext(ctx)
	if err := conn.AutoMigrate(
		&models.User{},
		&models.MentorProfile{},
		&models.MenteeProfile{},
		&models.MatchRequest{},
	); err != nil {
		return fmt.Errorf("auto migrating schema: %w", err)
	}
	for _, idx := range UniqueIndexes {
		if err := conn.Exec(idx.CreateSQL()).Error; err != nil {
			return fmt.Errorf("creating index %s: %w", idx.Name, err)
		}
	}
	return nil
}
